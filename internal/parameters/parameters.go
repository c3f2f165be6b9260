// Package parameters handles generic configuration Params, a map[string]string that the
// user can set with a string like "strict,color=false,parallelism=4".
package parameters

import (
	"github.com/pkg/errors"
	"slices"
	"strconv"
	"strings"
)

// Params represent generic configuration parameters.
type Params map[string]string

// NewFromConfigString create params from user's configuration string.
// Empty parts are ignored, and a key without "=" has an empty value.
// See GetParamOr and PopParamOr to parse values from this map.
func NewFromConfigString(config string) Params {
	params := make(Params)
	for _, part := range strings.Split(config, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		key, value, _ := strings.Cut(part, "=") // Only the first '=' separates key and value.
		params[key] = value
	}
	return params
}

// PopParamOr is like GetParamOr, but it also deletes from the params map the retrieved parameter.
func PopParamOr[T interface {
	bool | int | string
}](params Params, key string, defaultValue T) (T, error) {
	value, err := GetParamOr(params, key, defaultValue)
	if err != nil {
		return value, err
	}
	delete(params, key)
	return value, nil
}

// GetParamOr attempts to parse a parameter to the given type if the key is present, or returns the defaultValue
// if not.
//
// For bool types, a key without a value is interpreted as true.
func GetParamOr[T interface {
	bool | int | string
}](params Params, key string, defaultValue T) (T, error) {
	value, exists := params[key]
	if !exists {
		return defaultValue, nil
	}
	var parsed any
	switch any(defaultValue).(type) {
	case string:
		parsed = value
	case int:
		if value == "" {
			return defaultValue, nil
		}
		i, err := strconv.Atoi(value)
		if err != nil {
			return defaultValue, errors.Wrapf(err, "failed to parse configuration %s=%q to int", key, value)
		}
		parsed = i
	case bool:
		switch strings.ToLower(value) {
		case "", "true", "1":
			parsed = true
		case "false", "0":
			parsed = false
		default:
			return defaultValue, errors.Errorf("failed to parse configuration %s=%q to bool", key, value)
		}
	}
	return parsed.(T), nil
}

// CheckAllConsumed returns an error listing the keys still in params, typically
// called after all known parameters were popped.
func CheckAllConsumed(params Params) error {
	if len(params) == 0 {
		return nil
	}
	keys := make([]string, 0, len(params))
	for key := range params {
		keys = append(keys, key)
	}
	slices.Sort(keys)
	return errors.Errorf("unknown configuration parameter(s): %s", strings.Join(keys, ", "))
}

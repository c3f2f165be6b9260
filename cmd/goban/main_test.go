package main

import (
	"github.com/janpfeifer/goban/internal/state"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"strings"
	"testing"
)

func TestParseConfig(t *testing.T) {
	config, err := parseConfig("")
	require.NoError(t, err)
	assert.Equal(t, Config{Color: true}, config)

	config, err = parseConfig("strict,color=false,verbose,parallelism=3")
	require.NoError(t, err)
	assert.Equal(t, Config{Strict: true, Verbose: true, Parallelism: 3}, config)

	_, err = parseConfig("strict,colour=false")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "colour")

	_, err = parseConfig("parallelism=many")
	require.Error(t, err)

	assert.Panics(t, func() { _, _ = parseConfig("parallelism=-1") })
}

func TestScanRows(t *testing.T) {
	rows, err := scanRows(strings.NewReader("// Cross.\n.#.\n\n #o# \n.#.\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{".#.", "#o#", ".#."}, rows)
}

func TestAllStones(t *testing.T) {
	goban := state.New([]string{".#.", "#o#", "..."})
	assert.Equal(t, []state.Pos{{1, 0}, {0, 1}, {1, 1}, {2, 1}}, allStones(goban))
	assert.Empty(t, allStones(state.New(nil)))
}

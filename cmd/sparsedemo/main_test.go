package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/lvsparse/sparse"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestRunDemo_Sweep(t *testing.T) {
	logger = zap.NewNop()
	var out bytes.Buffer
	require.NoError(t, runDemo(&out, 10, ""))

	lines := strings.Split(out.String(), "\n")
	assert.Equal(t, "1 0 0 0 0 0 0 1", lines[0])
	assert.Equal(t, "0 0 0 4 4 0 0 0", lines[3])
	assert.Equal(t, "8 0 0 0 0 0 0 8", lines[7])
	assert.Equal(t, "", lines[8])
	assert.Equal(t, "matrix size = 18", lines[9])
	assert.Equal(t, "[1][1] = 1", lines[11])
	assert.Equal(t, "[9][9] = 9", lines[28])
}

func TestRunDemo_BadSize(t *testing.T) {
	logger = zap.NewNop()
	require.Error(t, runDemo(&bytes.Buffer{}, 0, ""))
}

func TestRunDemo_Seed(t *testing.T) {
	logger = zap.NewNop()
	path := filepath.Join(t.TempDir(), "seed.yaml")
	doc := "cells:\n  - coord: [3, 4]\n    value: 7\n  - coord: [1, 1]\n    value: 0\n"
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))

	var out bytes.Buffer
	require.NoError(t, runDemo(&out, 10, path))

	lines := strings.Split(out.String(), "\n")
	assert.Equal(t, "0 0 0 0 0 0 0 1", lines[0], "[1][1] reset to default")
	assert.Equal(t, "0 0 3 7 0 3 0 0", lines[2])
	assert.Equal(t, "matrix size = 18", lines[9])
}

func TestDecodeSeed(t *testing.T) {
	cells, err := decodeSeed([]byte("cells:\n  - coord: [0, 2]\n    value: 3\n"))
	require.NoError(t, err)
	require.Equal(t, []seedCell{{Coord: []int{0, 2}, Value: 3}}, cells)

	cells, err = decodeSeed(nil)
	require.NoError(t, err)
	require.Empty(t, cells)

	_, err = decodeSeed([]byte("cels: []\n"))
	require.Error(t, err, "unknown keys are rejected")

	_, err = loadSeed(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestApplySeed_Malformed(t *testing.T) {
	logger = zap.NewNop()
	m := sparse.MustNew[uint](2, 0)

	err := applySeed(m, []seedCell{{Coord: []int{1, 1}, Value: 2}, {Coord: []int{1}, Value: 1}})
	require.ErrorIs(t, err, sparse.ErrArity)
	require.Equal(t, 1, m.Size(), "cells before the bad one stay written")

	err = applySeed(m, []seedCell{{Coord: []int{-1, 0}, Value: 1}})
	require.ErrorIs(t, err, sparse.ErrNegativeIndex)
}

package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/lvsparse/sparse"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// seedCell is one extra cell in a seed file.
type seedCell struct {
	Coord []int `yaml:"coord"`
	Value uint  `yaml:"value"`
}

// seedFile is the YAML seed document:
//
//	cells:
//	  - coord: [3, 4]
//	    value: 7
type seedFile struct {
	Cells []seedCell `yaml:"cells"`
}

// loadSeed reads and decodes a seed file. Unknown keys are rejected.
func loadSeed(path string) ([]seedCell, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed %s: %w", path, err)
	}

	return decodeSeed(data)
}

func decodeSeed(data []byte) ([]seedCell, error) {
	var doc seedFile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode seed: %w", err)
	}

	return doc.Cells, nil
}

// applySeed writes every cell into m. A malformed coordinate aborts with an
// error naming the offending entry; cells before it stay written.
func applySeed(m *sparse.Matrix[uint], cells []seedCell) error {
	for i, sc := range cells {
		c, err := m.Cell(sparse.Coord(sc.Coord))
		if err != nil {
			return fmt.Errorf("seed cell %d: %w", i, err)
		}
		c.Set(sc.Value)
		logger.Debug("Seed cell written", zap.Stringer("coord", sparse.Coord(sc.Coord)), zap.Uint("value", sc.Value))
	}

	return nil
}

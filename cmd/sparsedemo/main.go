// Command sparsedemo exercises the sparse matrix: it writes the diagonal and
// anti-diagonal of a square sweep into a 2-D matrix with default 0, prints
// the interior block, the number of stored cells and every stored cell.
//
//	sparsedemo --size 10
//	sparsedemo --size 10 --seed extra.yaml --verbose
package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvsparse/sparse"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	logger *zap.Logger

	size     int
	seedPath string
	verbose  bool
)

var rootCmd = &cobra.Command{
	Use:   "sparsedemo",
	Short: "Fill a sparse 2-D matrix with two diagonals and print it",
	Long: `sparsedemo writes [i][i] = i and [i][size-1-i] = i for every i in [0, size)
into a sparse matrix whose default value is 0, then prints the interior block
[1, size-1) x [1, size-1), the number of stored cells, and every stored cell.

Cells listed in an optional YAML seed file are written after the sweep.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDemo(cmd.OutOrStdout(), size, seedPath)
	},
}

func init() {
	rootCmd.Flags().IntVarP(&size, "size", "n", 10, "side of the diagonal sweep")
	rootCmd.Flags().StringVar(&seedPath, "seed", "", "YAML file with extra cells to write")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// runDemo builds the matrix and writes the report to w.
func runDemo(w io.Writer, n int, seed string) error {
	if n <= 0 {
		return fmt.Errorf("size must be > 0, got %d", n)
	}

	m := sparse.NewMatrix2[uint](0)
	for i := 0; i < n; i++ {
		m.Index(i).Index(i).Set(uint(i))
		m.Index(i).Index(n - 1 - i).Set(uint(i))
	}
	logger.Debug("Sweep written", zap.Int("side", n), zap.Int("stored", m.Size()))

	if seed != "" {
		cells, err := loadSeed(seed)
		if err != nil {
			return err
		}
		if err := applySeed(m.Unwrap(), cells); err != nil {
			return err
		}
		logger.Info("Seed applied", zap.String("path", seed), zap.Int("cells", len(cells)))
	}

	for i := 1; i < n-1; i++ {
		row := make([]string, 0, n-2)
		for j := 1; j < n-1; j++ {
			row = append(row, strconv.FormatUint(uint64(m.Index(i).Index(j).Get()), 10))
		}
		fmt.Fprintln(w, strings.Join(row, " "))
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "matrix size = %d\n", m.Size())
	fmt.Fprintln(w)

	e := m.Entries()
	for e.Next() {
		fmt.Fprintln(w, e.Entry())
	}

	return nil
}

// SPDX-License-Identifier: MIT

// Command wickcalc evaluates expectation values of one-body operator products
// and powers on a Slater determinant described in a YAML problem file.
//
//	wickcalc eval -f problem.yaml --verify --workers 4
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	verbose bool

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "wickcalc",
	Short: "Expectation values of one-body operators on Slater determinants",
	Long: `wickcalc evaluates ⟨Ψ|Ô_1⋯Ô_n|Ψ⟩ and ⟨Ψ|Ô^k|Ψ⟩ for a single Slater
determinant from its one-particle reduced density matrix alone.

Problems are YAML files naming the orbital space, the occupied orbitals,
the one-body matrices and the jobs to evaluate.`,
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
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(evalCmd)
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

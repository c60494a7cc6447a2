package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	verbose bool

	logger *zap.Logger
)

// rootCmd is the entry point for every subcommand.
var rootCmd = &cobra.Command{
	Use:   "quopt",
	Short: "Penalized boolean optimization on small combinatorial problems",
	Long: `quopt builds penalized pseudo-boolean models for vertex cover and
number partitioning, converts them to QUBO or Ising payloads, and solves
them exhaustively or with SAT backends.

Problem files are YAML:

  edges:              # vertex cover instance, string labels
    - [a, b]
    - [b, c]
  vertices: [d]       # optional isolated vertices
  weights: [3, 1, 2]  # number partitioning instance (instead of edges)`,
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

// commandContext derives a context carrying the optional time budget and
// cancelled by SIGINT/SIGTERM.
func commandContext(limit time.Duration) (context.Context, context.CancelFunc) {
	var ctx context.Context
	var cancel context.CancelFunc
	if limit > 0 {
		ctx, cancel = context.WithTimeout(context.Background(), limit)
	} else {
		ctx, cancel = context.WithCancel(context.Background())
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		logger.Info("received shutdown signal")
		cancel()
	}()

	return ctx, cancel
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(solveCmd)
	rootCmd.AddCommand(payloadCmd)
	rootCmd.AddCommand(lambdaCmd)
	rootCmd.AddCommand(partitionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

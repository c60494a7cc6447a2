package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/quopt/brute"
	"github.com/katalvlaran/quopt/exact"
)

var (
	solveInput   string
	solveSolver  string
	solveLambda  float64
	solveAll     bool
	solveWorkers int
	solveLimit   time.Duration
)

var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Find minimum vertex cover(s) of a problem file",
	Long: `Solves the vertex cover instance in the problem file.

Solvers:
  brute   exhaustive scan of the penalized model (default; every optimum with --all)
  sat     CDCL descend over a cardinality bound (one optimum)
  maxsat  weighted partial MaxSAT (one optimum)`,
	RunE: runSolve,
}

func init() {
	solveCmd.Flags().StringVarP(&solveInput, "input", "i", "", "problem file (required)")
	solveCmd.Flags().StringVar(&solveSolver, "solver", "brute", "brute|sat|maxsat")
	solveCmd.Flags().Float64Var(&solveLambda, "lambda", 2, "edge constraint weight")
	solveCmd.Flags().BoolVar(&solveAll, "all", false, "report every minimum cover (brute only)")
	solveCmd.Flags().IntVar(&solveWorkers, "workers", 0, "parallel scan shards (brute only; 0 = default)")
	solveCmd.Flags().DurationVar(&solveLimit, "time-limit", 0, "soft time budget (0 = none)")
	solveCmd.MarkFlagRequired("input")
}

func runSolve(cmd *cobra.Command, args []string) error {
	if solveAll && solveSolver != "brute" {
		return fmt.Errorf("--all requires --solver brute")
	}

	ctx, cancel := commandContext(solveLimit)
	defer cancel()

	pf, err := loadProblem(solveInput)
	if err != nil {
		return err
	}
	p, err := pf.buildCover(solveLambda)
	if err != nil {
		return err
	}

	logger.Debug("problem loaded",
		zap.Int("vertices", len(p.Vertices())),
		zap.Int("edges", len(p.Edges())))

	start := time.Now()
	var covers [][]string
	var value float64
	switch solveSolver {
	case "brute":
		var opts []brute.Option
		if solveWorkers > 0 {
			opts = append(opts, brute.WithWorkers(solveWorkers))
		}
		if solveLimit > 0 {
			opts = append(opts, brute.WithTimeLimit(solveLimit))
		}
		if !solveAll {
			opts = append(opts, brute.WithFirstOnly())
		}
		covers, value, err = p.SolveBrute(ctx, opts...)
	case "sat", "maxsat":
		backend := exact.Gini
		if solveSolver == "maxsat" {
			backend = exact.MaxSAT
		}
		var one []string
		one, err = exact.MinCover(ctx, p.Edges(), exact.WithBackend(backend))
		if err == nil {
			covers, value = [][]string{one}, float64(len(one))
		}
	default:
		return fmt.Errorf("unknown solver %q", solveSolver)
	}
	if err != nil {
		return err
	}

	logger.Info("solved",
		zap.Int("vertices", len(p.Vertices())),
		zap.Int("edges", len(p.Edges())),
		zap.Float64("lambda", solveLambda),
		zap.String("solver", solveSolver),
		zap.Duration("duration", time.Since(start)))

	fmt.Printf("value: %g\n", value)
	if len(covers) > 0 {
		fmt.Printf("size: %d\n", len(covers[0]))
	}
	for _, c := range covers {
		fmt.Printf("cover: %s\n", strings.Join(c, " "))
	}
	return nil
}

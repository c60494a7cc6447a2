package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/quopt/brute"
)

var partitionInput string

var partitionCmd = &cobra.Command{
	Use:   "partition",
	Short: "Find all perfectly balanced splits of a weight list",
	RunE:  runPartition,
}

func init() {
	partitionCmd.Flags().StringVarP(&partitionInput, "input", "i", "", "problem file (required)")
	partitionCmd.MarkFlagRequired("input")
}

func runPartition(cmd *cobra.Command, args []string) error {
	ctx, cancel := commandContext(0)
	defer cancel()

	pf, err := loadProblem(partitionInput)
	if err != nil {
		return err
	}
	p, err := pf.buildPartition()
	if err != nil {
		return err
	}

	start := time.Now()
	lefts, _, err := p.SolveBrute(ctx)
	if err != nil {
		if errors.Is(err, brute.ErrNoAdmissibleSolution) {
			return fmt.Errorf("no balanced split exists (total %d)", p.Total())
		}
		return err
	}

	logger.Info("solved",
		zap.Int("weights", len(p.Weights())),
		zap.Int64("total", p.Total()),
		zap.String("solver", "brute"),
		zap.Duration("duration", time.Since(start)))

	weights := p.Weights()
	fmt.Printf("half sum: %d\n", p.Total()/2)
	fmt.Printf("splits: %d\n", len(lefts))
	for _, left := range lefts {
		inLeft := make(map[int]struct{}, len(left))
		for _, i := range left {
			inLeft[i] = struct{}{}
		}
		l := make([]string, 0, len(left))
		r := make([]string, 0, len(weights)-len(left))
		for i, w := range weights {
			if _, ok := inLeft[i]; ok {
				l = append(l, strconv.FormatInt(w, 10))
			} else {
				r = append(r, strconv.FormatInt(w, 10))
			}
		}
		fmt.Printf("split: [%s] | [%s]\n", strings.Join(l, " "), strings.Join(r, " "))
	}
	return nil
}

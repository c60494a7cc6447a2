package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/quopt/brute"
)

var (
	lambdaInput string
	lambdaMax   int
)

var lambdaCmd = &cobra.Command{
	Use:   "lambda",
	Short: "Sweep the edge weight and check when payload minima are exactly the covers",
	Long: `For λ = 1..max, converts the cover model at that weight, enumerates the
unconstrained payload minimizers exhaustively, and compares them against
the true minimum covers. A weight is sufficient when the two sets match;
too small a weight lets constraint-violating states tie with real
covers.`,
	RunE: runLambda,
}

func init() {
	lambdaCmd.Flags().StringVarP(&lambdaInput, "input", "i", "", "problem file (required)")
	lambdaCmd.Flags().IntVar(&lambdaMax, "max", 3, "largest λ to test")
	lambdaCmd.MarkFlagRequired("input")
}

// coverSet keys label sets by their first-seen-order join.
func coverSet(covers [][]string) map[string]struct{} {
	set := make(map[string]struct{}, len(covers))
	for _, c := range covers {
		set[strings.Join(c, " ")] = struct{}{}
	}
	return set
}

// rawSample re-encodes a boolean assignment as a 0/1 raw sample.
func rawSample(bits map[int]bool) map[int]int {
	raw := make(map[int]int, len(bits))
	for id, b := range bits {
		raw[id] = 0
		if b {
			raw[id] = 1
		}
	}
	return raw
}

func runLambda(cmd *cobra.Command, args []string) error {
	ctx, cancel := commandContext(0)
	defer cancel()

	pf, err := loadProblem(lambdaInput)
	if err != nil {
		return err
	}

	smallest := 0
	for lam := 1; lam <= lambdaMax; lam++ {
		p, perr := pf.buildCover(float64(lam))
		if perr != nil {
			return perr
		}

		covers, _, berr := p.SolveBrute(ctx)
		if berr != nil {
			return berr
		}
		want := coverSet(covers)

		q, qerr := p.ToQUBO()
		if qerr != nil {
			return qerr
		}
		res, merr := brute.Minimize(ctx, q, q.Variables())
		if merr != nil {
			return merr
		}
		got := make(map[string]struct{}, len(res.Assignments))
		for _, bits := range res.Assignments {
			c, derr := p.Decode(rawSample(bits), q.Mapping)
			if derr != nil {
				return derr
			}
			got[strings.Join(c, " ")] = struct{}{}
		}

		match := len(got) == len(want)
		if match {
			for k := range want {
				if _, ok := got[k]; !ok {
					match = false
					break
				}
			}
		}
		if match && smallest == 0 {
			smallest = lam
		}
		fmt.Printf("lambda %d: payload minima %d, covers %d, exact %v\n",
			lam, len(res.Assignments), len(covers), match)
	}

	if smallest > 0 {
		fmt.Printf("smallest sufficient lambda: %d\n", smallest)
	} else {
		fmt.Printf("no sufficient lambda up to %d\n", lambdaMax)
	}
	return nil
}

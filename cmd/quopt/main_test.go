package main

import (
	"bytes"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestRunSolve_TriangleEveryCover(t *testing.T) {
	logger = zap.NewNop()
	solveInput = writeProblem(t, "edges:\n  - [a, b]\n  - [b, c]\n  - [a, c]\n")
	solveSolver = "brute"
	solveLambda = 2
	solveAll = true
	defer func() { solveAll = false }()

	out := captureOutput(t, func() {
		require.NoError(t, runSolve(&cobra.Command{}, nil))
	})

	require.Contains(t, out, "value: 2\n")
	require.Contains(t, out, "size: 2\n")
	require.Equal(t, 3, strings.Count(out, "cover: "))
}

func TestRunSolve_SATBackendSingleCover(t *testing.T) {
	logger = zap.NewNop()
	solveInput = writeProblem(t, "edges:\n  - [hub, a]\n  - [hub, b]\n  - [hub, c]\n")
	solveSolver = "sat"
	solveLambda = 2
	defer func() { solveSolver = "brute" }()

	out := captureOutput(t, func() {
		require.NoError(t, runSolve(&cobra.Command{}, nil))
	})

	require.Contains(t, out, "size: 1\n")
	require.Contains(t, out, "cover: hub\n")
}

func TestRunSolve_AllNeedsBrute(t *testing.T) {
	logger = zap.NewNop()
	solveSolver = "sat"
	solveAll = true
	defer func() {
		solveSolver = "brute"
		solveAll = false
	}()

	err := runSolve(&cobra.Command{}, nil)
	require.Error(t, err)
	require.Contains(t, err.Error(), "--all")
}

func TestRunPartition_ReportsSplits(t *testing.T) {
	logger = zap.NewNop()
	partitionInput = writeProblem(t, "weights: [1, 2, 3]\n")

	out := captureOutput(t, func() {
		require.NoError(t, runPartition(&cobra.Command{}, nil))
	})

	require.Contains(t, out, "half sum: 3\n")
	require.Contains(t, out, "splits: 2\n")
	require.Contains(t, out, "split: [1 2] | [3]\n")
	require.Contains(t, out, "split: [3] | [1 2]\n")
}

func TestRunPartition_InfeasibleTotal(t *testing.T) {
	logger = zap.NewNop()
	partitionInput = writeProblem(t, "weights: [1, 1, 1]\n")

	err := runPartition(&cobra.Command{}, nil)
	require.Error(t, err)
	require.Contains(t, err.Error(), "no balanced split exists (total 3)")
}

func TestRunPayload_QUBOTriangle(t *testing.T) {
	logger = zap.NewNop()
	payloadInput = writeProblem(t, "edges:\n  - [a, b]\n  - [b, c]\n  - [a, c]\n")
	payloadForm = "qubo"
	payloadLambda = 2

	out := captureOutput(t, func() {
		require.NoError(t, runPayload(&cobra.Command{}, nil))
	})

	require.Contains(t, out, "form: qubo\n")
	require.Contains(t, out, "offset: 6\n")
	require.Equal(t, 6, strings.Count(out, "- i:"))
}

func TestRunLambda_TriangleSweep(t *testing.T) {
	logger = zap.NewNop()
	lambdaInput = writeProblem(t, "edges:\n  - [a, b]\n  - [b, c]\n  - [a, c]\n")
	lambdaMax = 3

	out := captureOutput(t, func() {
		require.NoError(t, runLambda(&cobra.Command{}, nil))
	})

	require.Contains(t, out, "lambda 1: payload minima 6, covers 3, exact false\n")
	require.Contains(t, out, "lambda 2: payload minima 3, covers 3, exact true\n")
	require.Contains(t, out, "smallest sufficient lambda: 2\n")
}

func captureOutput(t *testing.T, fn func()) string {
	t.Helper()

	orig := os.Stdout
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stdout = w

	done := make(chan string)
	go func() {
		var buf bytes.Buffer
		_, _ = io.Copy(&buf, r)
		done <- buf.String()
	}()

	fn()

	_ = w.Close()
	os.Stdout = orig
	return <-done
}

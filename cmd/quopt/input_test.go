package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/quopt/cover"
	"github.com/katalvlaran/quopt/partition"
)

func writeProblem(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "problem.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadProblem_ReadsCoverFile(t *testing.T) {
	path := writeProblem(t, "edges:\n  - [a, b]\n  - [b, c]\nvertices: [d]\n")

	pf, err := loadProblem(path)
	require.NoError(t, err)
	require.Equal(t, [][]string{{"a", "b"}, {"b", "c"}}, pf.Edges)
	require.Equal(t, []string{"d"}, pf.Vertices)
	require.Empty(t, pf.Weights)
}

func TestLoadProblem_ReadsWeightFile(t *testing.T) {
	path := writeProblem(t, "weights: [3, 1, 2]\n")

	pf, err := loadProblem(path)
	require.NoError(t, err)
	require.Equal(t, []int64{3, 1, 2}, pf.Weights)
	require.Empty(t, pf.Edges)
}

func TestLoadProblem_ParseErrorNamesFile(t *testing.T) {
	path := writeProblem(t, "edges: [\n")

	_, err := loadProblem(path)
	require.Error(t, err)
	require.Contains(t, err.Error(), filepath.Base(path))
}

func TestLoadProblem_MissingFile(t *testing.T) {
	_, err := loadProblem(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}

func TestBuildCover_IncludesDeclaredVertices(t *testing.T) {
	pf := problemFile{Edges: [][]string{{"a", "b"}}, Vertices: []string{"z"}}

	p, err := pf.buildCover(2)
	require.NoError(t, err)
	require.Equal(t, []string{"a", "b", "z"}, p.Vertices())
	require.Len(t, p.Edges(), 1)
}

func TestBuildCover_RejectsWeightFile(t *testing.T) {
	pf := problemFile{Edges: [][]string{{"a", "b"}}, Weights: []int64{1}}

	_, err := pf.buildCover(2)
	require.ErrorIs(t, err, errProblemShape)
}

func TestBuildCover_RejectsBadEdgeArity(t *testing.T) {
	pf := problemFile{Edges: [][]string{{"a", "b"}, {"c"}}}

	_, err := pf.buildCover(2)
	require.Error(t, err)
	require.Contains(t, err.Error(), "edge 1")
}

func TestBuildPartition_Shape(t *testing.T) {
	_, err := problemFile{Weights: []int64{1, 2, 3}}.buildPartition()
	require.NoError(t, err)

	_, err = problemFile{Edges: [][]string{{"a", "b"}}, Weights: []int64{1}}.buildPartition()
	require.ErrorIs(t, err, errProblemShape)

	_, err = problemFile{}.buildPartition()
	require.ErrorIs(t, err, errProblemShape)
}

func TestBuildSource_PicksAdapterByShape(t *testing.T) {
	src, err := problemFile{Weights: []int64{1, 2, 3}}.buildSource(2)
	require.NoError(t, err)
	_, ok := src.(*partition.Problem)
	require.True(t, ok)

	src, err = problemFile{Edges: [][]string{{"a", "b"}}}.buildSource(2)
	require.NoError(t, err)
	_, ok = src.(*cover.Problem[string])
	require.True(t, ok)
}

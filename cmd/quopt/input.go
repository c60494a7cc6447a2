package main

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/quopt/coeff"
	"github.com/katalvlaran/quopt/cover"
	"github.com/katalvlaran/quopt/partition"
	"github.com/katalvlaran/quopt/quad"
)

// problemFile is the YAML schema shared by all subcommands: either an
// edge list (vertex cover) or a weight list (number partitioning).
type problemFile struct {
	Edges    [][]string `yaml:"edges"`
	Vertices []string   `yaml:"vertices"`
	Weights  []int64    `yaml:"weights"`
}

var errProblemShape = errors.New("problem file needs exactly one of edges: or weights:")

func loadProblem(path string) (problemFile, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return problemFile{}, err
	}
	var pf problemFile
	if err := yaml.Unmarshal(raw, &pf); err != nil {
		return problemFile{}, fmt.Errorf("parse %s: %w", path, err)
	}
	return pf, nil
}

func (pf problemFile) coverEdges() ([]cover.Edge[string], error) {
	if len(pf.Edges) == 0 {
		return nil, errProblemShape
	}
	edges := make([]cover.Edge[string], len(pf.Edges))
	for i, e := range pf.Edges {
		if len(e) != 2 {
			return nil, fmt.Errorf("edge %d: need [u, v], got %d labels", i, len(e))
		}
		edges[i] = cover.Edge[string]{U: e[0], V: e[1]}
	}
	return edges, nil
}

// buildCover assembles the penalized cover problem, isolated vertices
// included.
func (pf problemFile) buildCover(lambda float64) (*cover.Problem[string], error) {
	if len(pf.Weights) != 0 {
		return nil, errProblemShape
	}
	edges, err := pf.coverEdges()
	if err != nil {
		return nil, err
	}
	p, err := cover.New(edges, cover.WithLambda(coeff.Of(lambda)))
	if err != nil {
		return nil, err
	}
	if err := p.AddVertices(pf.Vertices...); err != nil {
		return nil, err
	}
	return p, nil
}

func (pf problemFile) buildPartition() (*partition.Problem, error) {
	if len(pf.Edges) != 0 || len(pf.Weights) == 0 {
		return nil, errProblemShape
	}
	return partition.New(pf.Weights)
}

// payloadSource is the conversion surface both adapters share.
type payloadSource interface {
	ToQUBO() (quad.QUBO, error)
	ToIsing() (quad.Ising, error)
}

// buildSource picks the adapter by file shape.
func (pf problemFile) buildSource(lambda float64) (payloadSource, error) {
	if len(pf.Weights) != 0 {
		return pf.buildPartition()
	}
	return pf.buildCover(lambda)
}

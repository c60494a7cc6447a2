package exact_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/quopt/cover"
	"github.com/katalvlaran/quopt/exact"
)

var backends = []exact.Backend{exact.Gini, exact.MaxSAT}

// petersen returns the 15 edges of the Petersen graph: outer 5-cycle,
// inner pentagram, five spokes. Its vertex cover number is 6.
func petersen() []cover.Edge[int] {
	edges := make([]cover.Edge[int], 0, 15)
	for i := 0; i < 5; i++ {
		edges = append(edges,
			cover.Edge[int]{U: i, V: (i + 1) % 5},
			cover.Edge[int]{U: 5 + i, V: 5 + (i+2)%5},
			cover.Edge[int]{U: i, V: 5 + i},
		)
	}

	return edges
}

func TestMinCover_AgreesWithExhaustiveSearch(t *testing.T) {
	cases := []struct {
		name  string
		edges []cover.Edge[int]
	}{
		{name: "triangle", edges: []cover.Edge[int]{{U: 0, V: 1}, {U: 1, V: 2}, {U: 0, V: 2}}},
		{name: "square", edges: []cover.Edge[int]{{U: 0, V: 1}, {U: 1, V: 2}, {U: 2, V: 3}, {U: 3, V: 0}}},
		{name: "star", edges: []cover.Edge[int]{{U: 0, V: 1}, {U: 0, V: 2}, {U: 0, V: 3}}},
		{name: "path", edges: []cover.Edge[int]{{U: 0, V: 1}, {U: 1, V: 2}, {U: 2, V: 3}}},
		{name: "disjoint_pairs", edges: []cover.Edge[int]{{U: 0, V: 1}, {U: 2, V: 3}}},
		{name: "petersen", edges: petersen()},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p, err := cover.New(tc.edges)
			require.NoError(t, err)

			_, want, err := p.SolveBrute(context.Background())
			require.NoError(t, err)

			for _, b := range backends {
				got, cerr := exact.MinCover(context.Background(), tc.edges, exact.WithBackend(b))
				require.NoError(t, cerr, "backend %s", b)
				require.Len(t, got, int(want), "backend %s", b)
				require.True(t, p.IsCoverValid(got), "backend %s", b)
			}
		})
	}
}

func TestMinCover_FirstSeenOrder(t *testing.T) {
	edges := []cover.Edge[string]{{U: "d", V: "b"}, {U: "b", V: "a"}, {U: "a", V: "d"}}
	rank := map[string]int{"d": 0, "b": 1, "a": 2}

	for _, b := range backends {
		got, err := exact.MinCover(context.Background(), edges, exact.WithBackend(b))
		require.NoError(t, err, "backend %s", b)
		require.Len(t, got, 2, "backend %s", b)
		for i := 1; i < len(got); i++ {
			require.Less(t, rank[got[i-1]], rank[got[i]], "backend %s", b)
		}
	}
}

func TestMinCover_StarUniqueOptimum(t *testing.T) {
	edges := []cover.Edge[string]{{U: "hub", V: "a"}, {U: "hub", V: "b"}, {U: "hub", V: "c"}}

	for _, b := range backends {
		got, err := exact.MinCover(context.Background(), edges, exact.WithBackend(b))
		require.NoError(t, err, "backend %s", b)
		require.Equal(t, []string{"hub"}, got, "backend %s", b)
	}
}

func TestMinCover_SelfLoopForcesVertex(t *testing.T) {
	edges := []cover.Edge[string]{{U: "a", V: "a"}, {U: "a", V: "b"}}

	for _, b := range backends {
		got, err := exact.MinCover(context.Background(), edges, exact.WithBackend(b))
		require.NoError(t, err, "backend %s", b)
		require.Equal(t, []string{"a"}, got, "backend %s", b)
	}
}

func TestMinCover_EmptyEdgeSet(t *testing.T) {
	for _, b := range backends {
		got, err := exact.MinCover[int](context.Background(), nil, exact.WithBackend(b))
		require.NoError(t, err, "backend %s", b)
		require.Empty(t, got, "backend %s", b)
	}
}

func TestMinCover_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	for _, b := range backends {
		_, err := exact.MinCover(ctx, petersen(), exact.WithBackend(b))
		require.ErrorIs(t, err, exact.ErrIncomplete, "backend %s", b)
	}
}

func TestBackend_Strings(t *testing.T) {
	require.Equal(t, "gini", exact.Gini.String())
	require.Equal(t, "maxsat", exact.MaxSAT.String())
	require.Equal(t, "backend(7)", exact.Backend(7).String())
}

func TestWithBackend_UnknownPanics(t *testing.T) {
	require.Panics(t, func() { exact.WithBackend(exact.Backend(9)) })
}

// Package brute_test exercises the exhaustive solver: optima collection,
// validator filtering, sharded determinism and budget handling.

package brute_test

import (
	"context"
	"errors"
	"testing"

	"github.com/katalvlaran/quopt/brute"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// xorEnergy is 0 exactly when x0 == x1 and 1 otherwise.
func xorEnergy(a map[int]bool) (float64, error) {
	v := 0.0
	if a[0] {
		v++
	}
	if a[1] {
		v++
	}
	if a[0] && a[1] {
		v -= 2
	}

	return v, nil
}

func TestMinimize_SingleVariable(t *testing.T) {
	obj := brute.Func(func(a map[int]bool) (float64, error) {
		if a[7] {
			return 1, nil
		}

		return -1, nil
	})

	res, err := brute.Minimize(context.Background(), obj, []int{7})
	require.NoError(t, err)
	require.Equal(t, -1.0, res.Value)
	require.Equal(t, []map[int]bool{{7: false}}, res.Assignments)
	require.Equal(t, uint64(2), res.Explored)
}

func TestMinimize_CollectsAllOptimaInOrder(t *testing.T) {
	res, err := brute.Minimize(context.Background(), brute.Func(xorEnergy), []int{0, 1})
	require.NoError(t, err)
	require.Equal(t, 0.0, res.Value)
	// Counter order: 00 before 11.
	require.Equal(t, []map[int]bool{
		{0: false, 1: false},
		{0: true, 1: true},
	}, res.Assignments)
	require.Equal(t, uint64(4), res.Explored)
}

func TestMinimize_FirstOnly(t *testing.T) {
	res, err := brute.Minimize(context.Background(), brute.Func(xorEnergy), []int{0, 1},
		brute.WithFirstOnly())
	require.NoError(t, err)
	require.Equal(t, []map[int]bool{{0: false, 1: false}}, res.Assignments)
}

func TestMinimize_EmptyVariableSet(t *testing.T) {
	obj := brute.Func(func(map[int]bool) (float64, error) { return 42, nil })

	res, err := brute.Minimize(context.Background(), obj, nil)
	require.NoError(t, err)
	require.Equal(t, 42.0, res.Value)
	require.Len(t, res.Assignments, 1)
	require.Empty(t, res.Assignments[0])
}

func TestMinimize_DuplicateIDsMerged(t *testing.T) {
	res, err := brute.Minimize(context.Background(), brute.Func(xorEnergy), []int{1, 0, 1, 0})
	require.NoError(t, err)
	require.Equal(t, uint64(4), res.Explored, "two distinct variables ⇒ four assignments")
}

func TestMinimize_TooManyVariables(t *testing.T) {
	ids := make([]int, brute.DefaultMaxVariables+1)
	for i := range ids {
		ids[i] = i
	}

	_, err := brute.Minimize(context.Background(), brute.Func(xorEnergy), ids)
	require.ErrorIs(t, err, brute.ErrTooManyVariables)
}

func TestMinimize_ValidatorRestrictsSearch(t *testing.T) {
	// Energy prefers all-ones; the validator only admits one-hot
	// assignments, so the optimum must be the cheapest single bit.
	obj := brute.Func(func(a map[int]bool) (float64, error) {
		v := 3.0
		for id := 0; id < 3; id++ {
			if a[id] {
				v -= float64(id + 1)
			}
		}

		return v, nil
	})
	oneHot := func(a map[int]bool) (bool, error) {
		n := 0
		for _, b := range a {
			if b {
				n++
			}
		}

		return n == 1, nil
	}

	res, err := brute.Minimize(context.Background(), obj, []int{0, 1, 2},
		brute.WithValidator(oneHot))
	require.NoError(t, err)
	require.Equal(t, 0.0, res.Value)
	require.Equal(t, []map[int]bool{{0: false, 1: false, 2: true}}, res.Assignments)
}

func TestMinimize_NoAdmissibleSolution(t *testing.T) {
	rejectAll := func(map[int]bool) (bool, error) { return false, nil }

	res, err := brute.Minimize(context.Background(), brute.Func(xorEnergy), []int{0, 1},
		brute.WithValidator(rejectAll))
	require.ErrorIs(t, err, brute.ErrNoAdmissibleSolution)
	require.Empty(t, res.Assignments)
	require.Equal(t, uint64(4), res.Explored, "rejected assignments still count as explored")
}

func TestMinimize_ValidatorErrorAborts(t *testing.T) {
	boom := errors.New("boom")
	failing := func(map[int]bool) (bool, error) { return false, boom }

	_, err := brute.Minimize(context.Background(), brute.Func(xorEnergy), []int{0, 1},
		brute.WithValidator(failing))
	require.ErrorIs(t, err, boom)
}

func TestMinimize_ObjectiveErrorAborts(t *testing.T) {
	boom := errors.New("bad objective")
	obj := brute.Func(func(map[int]bool) (float64, error) { return 0, boom })

	_, err := brute.Minimize(context.Background(), obj, []int{0})
	require.ErrorIs(t, err, boom)
}

// hashEnergy is a fixed pseudo-random (but fully deterministic) integer
// energy over ten variables; plenty of ties, no symmetry.
func hashEnergy(a map[int]bool) (float64, error) {
	var h uint64 = 1469598103934665603
	for id := 0; id < 10; id++ {
		h *= 1099511628211
		if a[id] {
			h ^= uint64(id) + 0x9e37
		}
	}

	return float64(h % 64), nil
}

func TestMinimize_ShardedScanMatchesSerial(t *testing.T) {
	ids := []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}

	serial, err := brute.Minimize(context.Background(), brute.Func(hashEnergy), ids)
	require.NoError(t, err)
	require.Equal(t, uint64(1024), serial.Explored)

	for _, workers := range []int{2, 4, 7, 32} {
		parallel, perr := brute.Minimize(context.Background(), brute.Func(hashEnergy), ids,
			brute.WithWorkers(workers))
		require.NoError(t, perr)
		require.Equal(t, serial, parallel, "workers=%d", workers)
	}
}

func TestMinimize_CancelledContextIsIncomplete(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// 13 variables ⇒ 8192 assignments, enough to hit the sparse check.
	ids := make([]int, 13)
	for i := range ids {
		ids[i] = i
	}
	obj := brute.Func(func(a map[int]bool) (float64, error) {
		n := 0.0
		for _, b := range a {
			if b {
				n++
			}
		}

		return n, nil
	})

	res, err := brute.Minimize(ctx, obj, ids)
	require.ErrorIs(t, err, brute.ErrIncompleteSearch)
	require.Less(t, res.Explored, uint64(1)<<13, "scan must stop early")
	require.NotEmpty(t, res.Assignments, "incumbent from the scanned prefix is still reported")
	require.Equal(t, 0.0, res.Value, "all-zero assignment sits at counter zero")
}

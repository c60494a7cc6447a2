// Package brute — exhaustive scan engine.
//
// Minimize enumerates every assignment of the given ids as a binary counter
// (the smallest id is the least-significant bit) and keeps the running
// minimum together with its eps-ties.
//
// Rationale (succinct):
//  1. Determinism first: ids are sorted and de-duplicated, each shard scans
//     a contiguous counter range in ascending order, and shards are merged
//     in range order — so the reported optima are in ascending counter
//     order no matter how many workers ran.
//  2. Sharding: the counter range [0, 2ⁿ) is cut into `workers` contiguous
//     chunks driven by errgroup; each worker owns a private assignment map,
//     so the objective is only ever read concurrently.
//  3. Soft budgets: rare deadline/context checks (every 4096 assignments)
//     keep overhead negligible; an expired budget surfaces as
//     ErrIncompleteSearch while the incumbent found so far is still
//     returned.
//
// Complexity:
//   - Time O(2ⁿ · cost(Evaluate)) worst case; memory O(n) per worker plus
//     the collected optima.

package brute

import (
	"context"
	"math"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"
)

// Objective is the minimal view of an energy function over boolean
// variables. Implementations must tolerate concurrent Evaluate calls when
// the scan runs with more than one worker.
type Objective interface {
	// Evaluate returns the energy of one full assignment.
	Evaluate(assignment map[int]bool) (float64, error)
}

// Func adapts a plain function to the Objective interface.
type Func func(assignment map[int]bool) (float64, error)

// Evaluate implements Objective.
func (f Func) Evaluate(assignment map[int]bool) (float64, error) { return f(assignment) }

// Result holds the outcome of an exhaustive scan.
type Result struct {
	// Value is the minimal energy found.
	Value float64

	// Assignments lists every admissible assignment attaining Value within
	// the configured eps, in ascending counter order. With WithFirstOnly it
	// holds exactly one entry.
	Assignments []map[int]bool

	// Explored counts the assignments visited (including ones the
	// validator rejected).
	Explored uint64
}

// engine holds the immutable scan data shared by all workers.
type engine struct {
	obj       Objective
	ids       []int // sorted ascending; bit i of the counter maps to ids[i]
	eps       float64
	validator Validator

	useDeadline bool
	deadline    time.Time
}

// shardResult is the per-worker outcome over one contiguous counter range.
type shardResult struct {
	masks      []uint64  // admissible counters kept by the running minimum
	vals       []float64 // energies parallel to masks
	explored   uint64
	incomplete bool
}

// decodeInto expands a counter value into the reusable assignment map.
func (e *engine) decodeInto(a map[int]bool, mask uint64) {
	for i, id := range e.ids {
		a[id] = mask&(uint64(1)<<uint(i)) != 0
	}
}

// scan walks counters in [lo, hi) keeping the running minimum and its
// eps-ties. It returns early (incomplete=true) on deadline or context
// cancellation; validator and objective errors abort the search.
func (e *engine) scan(ctx context.Context, lo, hi uint64) (shardResult, error) {
	var (
		res   shardResult
		best  = math.Inf(1)
		a     = make(map[int]bool, len(e.ids))
		steps int
	)
	for mask := lo; mask < hi; mask++ {
		// Sparse budget check (practically free).
		steps++
		if steps&4095 == 0 {
			if ctx.Err() != nil || (e.useDeadline && time.Now().After(e.deadline)) {
				res.incomplete = true

				return res, nil
			}
		}

		res.explored++
		e.decodeInto(a, mask)
		if e.validator != nil {
			ok, err := e.validator(a)
			if err != nil {
				return res, err
			}
			if !ok {
				continue
			}
		}

		v, err := e.obj.Evaluate(a)
		if err != nil {
			return res, err
		}
		switch {
		case v < best-e.eps:
			best = v
			res.masks = append(res.masks[:0], mask)
			res.vals = append(res.vals[:0], v)
		case math.Abs(v-best) <= e.eps:
			res.masks = append(res.masks, mask)
			res.vals = append(res.vals, v)
		}
	}

	return res, nil
}

// Minimize scans every assignment of ids and returns the minimum energy
// with all assignments attaining it.
//
// Contracts:
//   - obj must be non-nil (panics otherwise); duplicates in ids are merged.
//   - With WithWorkers(>1), obj and the validator must be safe for
//     concurrent use.
//
// Errors:
//   - ErrTooManyVariables when len(ids) exceeds the cap.
//   - ErrIncompleteSearch when the budget or ctx expired mid-scan; the
//     Result still carries the best incumbent (if any was found).
//   - ErrNoAdmissibleSolution when the full scan rejected everything.
//   - Validator/objective errors are forwarded verbatim.
func Minimize(ctx context.Context, obj Objective, ids []int, opts ...Option) (Result, error) {
	if obj == nil {
		panic(panicNilObjective)
	}
	if ctx == nil {
		ctx = context.Background()
	}
	o := gatherOptions(opts...)

	vars := make([]int, len(ids))
	copy(vars, ids)
	sort.Ints(vars)
	vars = dedupeSorted(vars)
	n := len(vars)
	if n > o.maxVariables {
		return Result{}, ErrTooManyVariables
	}

	e := engine{
		obj:       obj,
		ids:       vars,
		eps:       o.eps,
		validator: o.validator,
	}
	if o.timeLimit > 0 {
		e.useDeadline = true
		e.deadline = time.Now().Add(o.timeLimit)
	}

	total := uint64(1) << uint(n)
	workers := o.workers
	if uint64(workers) > total {
		workers = int(total)
	}

	shards := make([]shardResult, workers)
	if workers == 1 {
		var err error
		if shards[0], err = e.scan(ctx, 0, total); err != nil {
			return Result{}, err
		}
	} else {
		g, gctx := errgroup.WithContext(ctx)
		chunk := total / uint64(workers)
		rem := total % uint64(workers)
		var lo uint64
		for i := 0; i < workers; i++ {
			hi := lo + chunk
			if uint64(i) < rem {
				hi++
			}
			w, wlo, whi := i, lo, hi
			g.Go(func() error {
				var err error
				shards[w], err = e.scan(gctx, wlo, whi)

				return err
			})
			lo = hi
		}
		if err := g.Wait(); err != nil {
			return Result{}, err
		}
	}

	return e.merge(shards, o.firstOnly)
}

// dedupeSorted removes adjacent duplicates from a sorted slice in place.
func dedupeSorted(a []int) []int {
	if len(a) < 2 {
		return a
	}
	k := 1
	for i := 1; i < len(a); i++ {
		if a[i] != a[k-1] {
			a[k] = a[i]
			k++
		}
	}

	return a[:k]
}

// merge folds per-shard outcomes into the final Result. Shards cover
// ascending, disjoint counter ranges, so concatenating their kept masks in
// shard order preserves global ascending order.
func (e *engine) merge(shards []shardResult, firstOnly bool) (Result, error) {
	var (
		res        Result
		best       = math.Inf(1)
		incomplete bool
	)
	for _, s := range shards {
		res.Explored += s.explored
		incomplete = incomplete || s.incomplete
		for _, v := range s.vals {
			if v < best {
				best = v
			}
		}
	}

	if math.IsInf(best, 1) {
		if incomplete {
			return res, ErrIncompleteSearch
		}

		return res, ErrNoAdmissibleSolution
	}

	// A shard's running minimum may sit up to eps above the global one, so
	// re-filter every kept candidate against the global minimum.
	res.Value = best
	for _, s := range shards {
		for i, v := range s.vals {
			if v > best+e.eps {
				continue
			}
			a := make(map[int]bool, len(e.ids))
			e.decodeInto(a, s.masks[i])
			res.Assignments = append(res.Assignments, a)
			if firstOnly {
				break
			}
		}
		if firstOnly && len(res.Assignments) > 0 {
			break
		}
	}

	if incomplete {
		return res, ErrIncompleteSearch
	}

	return res, nil
}

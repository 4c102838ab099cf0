package field

import (
	"sort"

	"github.com/katalvlaran/lifegrid/geometry"
	"github.com/katalvlaran/lifegrid/group"
)

// Field is the whole unbounded plane: a spatial index of *group.Group
// keyed by envelope, plus an optional worker pool for StepParallel. The
// zero value is not usable; construct with New.
type Field struct {
	index        *rtree
	workers      []*worker
	minChunkSize int
}

// New bulk-loads groups into a fresh Field's spatial index.
// Complexity: O(n log n).
func New(groups []*group.Group, opts ...Option) *Field {
	cfg := newConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	f := &Field{index: newRTree(groups), minChunkSize: cfg.minChunkSize}
	if cfg.presetWorkers > 0 {
		f.ensureWorkers(cfg.presetWorkers)
	}
	return f
}

// FullPlaneEnvelope returns the sentinel AABB covering every
// representable Coord, so every Group's envelope intersects it. Step
// itself drains the index without a query.
// Complexity: O(1).
func FullPlaneEnvelope() geometry.AABB {
	return geometry.FullPlane()
}

// Step advances every resident Group one generation, single-threaded:
// drain the index, Step each Group independently, bulk-load the
// successors into a fresh index, then run the merge fixpoint so no two
// resident Groups smartly intersect afterward.
// Complexity: O(n log n) index ops + O(total Block area).
func (f *Field) Step() {
	groups := f.index.drainAll()
	var next []*group.Group
	for _, g := range groups {
		successors, ok := group.Step(g)
		if !ok {
			continue
		}
		next = append(next, successors...)
	}
	f.index = newRTree(next)
	f.mergeFixpoint()
}

// StepParallel is identical to Step except the per-Group transition is
// dispatched across a pool of jobs long-lived worker goroutines. jobs ==
// 0 falls back to Step exactly. The merge fixpoint always runs serially
// on the calling goroutine afterward, since it mutates the shared index.
// Complexity: identical to Step; the transition phase's wall-clock is
// divided across jobs goroutines.
func (f *Field) StepParallel(jobs int) {
	if jobs == 0 {
		f.Step()
		return
	}
	f.ensureWorkers(jobs)

	groups := f.index.drainAll()
	effective := jobs
	if f.minChunkSize > 1 {
		maxJobs := len(groups) / f.minChunkSize
		if maxJobs < 1 {
			maxJobs = 1
		}
		if maxJobs < effective {
			effective = maxJobs
		}
	}
	chunks := partition(groups, effective)

	for i, w := range f.workers {
		var chunk []*group.Group
		if i < len(chunks) {
			chunk = chunks[i]
		}
		w.in <- chunk
	}
	var next []*group.Group
	for _, w := range f.workers {
		result, ok := <-w.out
		if !ok {
			panic(fieldErrorf("StepParallel", ErrWorkerDied.Error()))
		}
		next = append(next, result...)
	}

	f.index = newRTree(next)
	f.mergeFixpoint()
}

// ensureWorkers lazily (re)spins a worker pool sized exactly jobs. A
// pool of a different size is torn down and replaced; a matching pool is
// left running.
func (f *Field) ensureWorkers(jobs int) {
	if len(f.workers) == jobs {
		return
	}
	closeWorkers(f.workers)
	f.workers = spawnWorkers(jobs)
}

// mergeFixpoint repeats: scan resident Groups for one whose smart-
// intersection query returns more than one hit (itself plus at least one
// other); if none, stop. Otherwise drain the canonical Group at that
// envelope plus every Group that smartly intersects it, fold the drained
// set by iterated group.Merge, and reinsert the result. Each iteration
// strictly shrinks the resident Group count or the number of conflicting
// pairs, so the loop terminates.
// Complexity: bounded by the number of conflicting pairs resolved.
func (f *Field) mergeFixpoint() {
	for {
		conflict, ok := f.findConflict()
		if !ok {
			return
		}

		canonicalSet := f.index.drainWhere(func(cand *group.Group) bool {
			return cand.Envelope().Equal(conflict)
		})
		if len(canonicalSet) == 0 {
			continue
		}
		merged := canonicalSet[0]
		rest := canonicalSet[1:]

		intersecting := f.index.drainWhere(func(cand *group.Group) bool {
			return merged.IntersectsSmart(cand)
		})

		for _, o := range rest {
			merged = group.Merge(merged, o)
		}
		for _, o := range intersecting {
			merged = group.Merge(merged, o)
		}
		f.index.insert(merged)
	}
}

// findConflict scans every resident Group once and returns the envelope
// of the first one whose smart-intersection query matches more than
// itself, or ok=false if a full pass finds none.
func (f *Field) findConflict() (geometry.AABB, bool) {
	for _, g := range f.index.all() {
		matches := f.index.query(g.Envelope(), func(cand *group.Group) bool {
			return cand == g || g.IntersectsSmart(cand)
		})
		if len(matches) > 1 {
			return g.Envelope(), true
		}
	}
	return geometry.AABB{}, false
}

// BottomLeft folds every resident Group's GlobalCoord to the
// componentwise minimum. ok is false on an empty Field.
// Complexity: O(n).
func (f *Field) BottomLeft() (geometry.Coord, bool) {
	groups := f.index.all()
	if len(groups) == 0 {
		return geometry.Coord{}, false
	}
	bl := groups[0].GlobalCoord
	for _, g := range groups[1:] {
		if g.GlobalCoord.X < bl.X {
			bl.X = g.GlobalCoord.X
		}
		if g.GlobalCoord.Y < bl.Y {
			bl.Y = g.GlobalCoord.Y
		}
	}
	return bl, true
}

// TopRight folds every resident Group's TopRight to the componentwise
// maximum. ok is false on an empty Field.
// Complexity: O(n).
func (f *Field) TopRight() (geometry.Coord, bool) {
	groups := f.index.all()
	if len(groups) == 0 {
		return geometry.Coord{}, false
	}
	tr := groups[0].TopRight()
	for _, g := range groups[1:] {
		other := g.TopRight()
		if other.X > tr.X {
			tr.X = other.X
		}
		if other.Y > tr.Y {
			tr.Y = other.Y
		}
	}
	return tr, true
}

// Groups returns a stably-sorted snapshot of every resident Group
// (sorted by Group.Less), safe for the caller to range over for
// rendering or export without aliasing the Field's index.
// Complexity: O(n log n).
func (f *Field) Groups() []*group.Group {
	groups := f.index.all()
	out := make([]*group.Group, len(groups))
	copy(out, groups)
	sort.Slice(out, func(i, j int) bool {
		return out[i].Less(out[j])
	})
	return out
}

// Close tears down the Field's worker pool, if any. Safe to call on a
// Field that never ran StepParallel, and safe to call more than once.
func (f *Field) Close() {
	closeWorkers(f.workers)
	f.workers = nil
}

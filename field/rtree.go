package field

import (
	"math"
	"sort"

	"github.com/katalvlaran/lifegrid/geometry"
	"github.com/katalvlaran/lifegrid/group"
)

// leafCapacity bounds how many entries a single rtree leaf holds. Bulk
// loading packs entries into leaves of this size using the sort-tile-
// recursive (STR) layout: sort by X, slice into column slabs of roughly
// sqrt(n/leafCapacity) leaves each, then sort every slab by Y and slice
// it into leaves. This is a minimal bulk-loadable spatial index, built by
// hand in the absence of a usable ecosystem R-tree implementation.
const leafCapacity = 8

// entry pairs a Group with its envelope, precomputed once per bulk load
// so query scans never recompute it.
type entry struct {
	g   *group.Group
	box geometry.AABB
}

// leaf is a bucket of entries plus their aggregate bounding box, letting
// a query skip an entire leaf with one AABB.Intersects test.
type leaf struct {
	box     geometry.AABB
	entries []entry
}

// rtree is a minimal bulk-loaded spatial index over *group.Group
// envelopes. It is rebuilt wholesale every generation (Field.Step
// bulk-loads a fresh rtree from that generation's successors); between
// rebuilds the merge fixpoint only removes Groups (drainWhere) and
// appends merged ones as single-entry leaves (insert), without
// rebalancing.
type rtree struct {
	leaves []leaf
}

// newRTree bulk-loads groups into a fresh rtree via STR tiling.
// Complexity: O(n log n).
func newRTree(groups []*group.Group) *rtree {
	if len(groups) == 0 {
		return &rtree{}
	}

	entries := make([]entry, len(groups))
	for i, g := range groups {
		entries[i] = entry{g: g, box: g.Envelope()}
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].box.Min.X < entries[j].box.Min.X
	})

	numLeaves := (len(entries) + leafCapacity - 1) / leafCapacity
	numSlabs := int(math.Ceil(math.Sqrt(float64(numLeaves))))
	if numSlabs < 1 {
		numSlabs = 1
	}
	slabSize := (len(entries) + numSlabs - 1) / numSlabs

	t := &rtree{}
	for s := 0; s < len(entries); s += slabSize {
		end := s + slabSize
		if end > len(entries) {
			end = len(entries)
		}
		slab := entries[s:end]
		sort.Slice(slab, func(i, j int) bool {
			return slab[i].box.Min.Y < slab[j].box.Min.Y
		})
		for l := 0; l < len(slab); l += leafCapacity {
			le := l + leafCapacity
			if le > len(slab) {
				le = len(slab)
			}
			t.leaves = append(t.leaves, newLeaf(slab[l:le]))
		}
	}
	return t
}

func newLeaf(es []entry) leaf {
	out := make([]entry, len(es))
	copy(out, es)
	box := out[0].box
	for _, e := range out[1:] {
		box = geometry.NewAABB(
			geometry.Coord{X: minI64(box.Min.X, e.box.Min.X), Y: minI64(box.Min.Y, e.box.Min.Y)},
			geometry.Coord{X: maxI64(box.Max.X, e.box.Max.X), Y: maxI64(box.Max.Y, e.box.Max.Y)},
		)
	}
	return leaf{box: box, entries: out}
}

// all returns every Group in the index, in no particular order.
// Complexity: O(n).
func (t *rtree) all() []*group.Group {
	var out []*group.Group
	for _, l := range t.leaves {
		for _, e := range l.entries {
			out = append(out, e.g)
		}
	}
	return out
}

// query returns every Group whose envelope intersects box and for which
// accept reports true, skipping leaves whose aggregate box misses
// entirely. accept may be nil, meaning "every Group whose envelope
// intersects box".
// Complexity: O(n) worst case, O(leaves touched) typical.
func (t *rtree) query(box geometry.AABB, accept func(*group.Group) bool) []*group.Group {
	var out []*group.Group
	for _, l := range t.leaves {
		if !l.box.Intersects(box) {
			continue
		}
		for _, e := range l.entries {
			if !e.box.Intersects(box) {
				continue
			}
			if accept != nil && !accept(e.g) {
				continue
			}
			out = append(out, e.g)
		}
	}
	return out
}

// drainWhere removes and returns every Group in the index for which pred
// reports true, leaving the rest in place.
// Complexity: O(n).
func (t *rtree) drainWhere(pred func(*group.Group) bool) []*group.Group {
	var drained []*group.Group
	for i := range t.leaves {
		kept := t.leaves[i].entries[:0]
		for _, e := range t.leaves[i].entries {
			if pred(e.g) {
				drained = append(drained, e.g)
			} else {
				kept = append(kept, e)
			}
		}
		t.leaves[i].entries = kept
	}
	t.compact()
	return drained
}

// drainAll empties the index and returns every Group it held.
// Complexity: O(n).
func (t *rtree) drainAll() []*group.Group {
	out := t.all()
	t.leaves = nil
	return out
}

// compact drops leaves left with no entries after a drain, so later
// queries don't keep scanning empty buckets.
func (t *rtree) compact() {
	kept := t.leaves[:0]
	for _, l := range t.leaves {
		if len(l.entries) > 0 {
			kept = append(kept, l)
		}
	}
	t.leaves = kept
}

// insert adds a single Group as its own one-entry leaf. Used by
// mergeFixpoint to reinsert a merged Group without rebuilding the whole
// tree; the rtree's query correctness does not depend on leaf balance.
// Complexity: O(1).
func (t *rtree) insert(g *group.Group) {
	t.leaves = append(t.leaves, leaf{box: g.Envelope(), entries: []entry{{g: g, box: g.Envelope()}}})
}

func minI64(a, b int64) int64 {
	if a < b {
		return a
	}
	return b
}

func maxI64(a, b int64) int64 {
	if a > b {
		return a
	}
	return b
}

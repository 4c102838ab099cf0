package group

import (
	"github.com/katalvlaran/lifegrid/block"
	"github.com/katalvlaran/lifegrid/geometry"
)

// Group is a block.Block anchored at a position on the unbounded plane.
// GlobalCoord is the Block's bottom-left corner in plane coordinates.
type Group struct {
	GlobalCoord geometry.Coord
	Block       *block.Block
}

// New anchors b at coord. b is taken by reference; callers must not share
// it with another Group afterward.
func New(coord geometry.Coord, b *block.Block) *Group {
	return &Group{GlobalCoord: coord, Block: b}
}

// TopRight returns the Group's top-right corner in plane coordinates,
// inclusive.
// Complexity: O(1).
func (g *Group) TopRight() geometry.Coord {
	return g.GlobalCoord.Add(geometry.Coord{X: int64(g.Block.XSize) - 1, Y: int64(g.Block.YSize) - 1})
}

// Envelope returns the Group's inclusive bounding box.
// Complexity: O(1).
func (g *Group) Envelope() geometry.AABB {
	return geometry.AABB{Min: g.GlobalCoord, Max: g.TopRight()}
}

// Intersects reports strict inclusive AABB overlap between g and other's
// envelopes. Two Groups whose boxes merely share an edge or corner do
// intersect under this definition.
// Complexity: O(1).
func (g *Group) Intersects(other *Group) bool {
	return g.Envelope().Intersects(other.Envelope())
}

// IntersectsSmart reports whether g and other would influence each
// other's next generation if stepped independently: it is the predicate
// Field uses to decide whether two Groups must be merged before
// stepping. It returns false for Groups that merely share bounding-box
// space without affecting each other's births or deaths.
//
// Over the inclusive overlap rectangle, for every cell this looks up
// each Block's local alive bit and Moore neighbour count (0 for a
// position outside that Block, consistent with the border invariant
// every Group-owned Block maintains) and reports interference on any of:
//
//   - both cells dead but the summed neighbour count is exactly 3 (a
//     union-only birth neither Block would produce alone);
//   - a cell that survives or is born in one Block, while the summed
//     count exceeds 3 (the union would over-crowd it);
//   - one Block has a live cell at the position and the other
//     contributes a positive neighbour count there (the live cell sees
//     alien neighbours).
//
// A cell where both Blocks contribute zero neighbours is skipped; it
// cannot interfere through that position.
// Complexity: O(overlap area).
func (g *Group) IntersectsSmart(other *Group) bool {
	if !g.Intersects(other) {
		return false
	}
	ga, oa := g.Envelope(), other.Envelope()
	minX, minY := maxI64(ga.Min.X, oa.Min.X), maxI64(ga.Min.Y, oa.Min.Y)
	maxX, maxY := minI64(ga.Max.X, oa.Max.X), minI64(ga.Max.Y, oa.Max.Y)

	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			selfAlive, selfN := g.sample(x, y)
			otherAlive, otherN := other.sample(x, y)
			if selfN == 0 && otherN == 0 {
				continue
			}

			if selfAlive == 0 && otherAlive == 0 && selfN+otherN == 3 {
				return true
			}

			selfSurvivesOrBorn := (selfAlive == 1 && selfN == 2) || selfN == 3
			otherSurvivesOrBorn := (otherAlive == 1 && otherN == 2) || otherN == 3
			if (selfSurvivesOrBorn || otherSurvivesOrBorn) && selfN+otherN > 3 {
				return true
			}

			if (selfAlive == 1 && otherN > 0) || (otherAlive == 1 && selfN > 0) {
				return true
			}
		}
	}
	return false
}

// sample reads the alive bit and neighbour count at plane position (x, y)
// in g's Block, treating a position outside the Block as dead with zero
// neighbours.
func (g *Group) sample(x, y int64) (alive, n uint8) {
	lx, ly := x-g.GlobalCoord.X, y-g.GlobalCoord.Y
	if lx < 0 || ly < 0 || lx >= int64(g.Block.XSize) || ly >= int64(g.Block.YSize) {
		return 0, 0
	}
	u := geometry.UCoord{X: uint32(lx), Y: uint32(ly)}
	return g.Block.Get(u), g.Block.NeighbourCount(u)
}

// Merge consumes a and b and produces one Group whose GlobalCoord is
// their componentwise minimum and whose Block is large enough to hold
// both, pasted with two Insert calls. Insert's OR semantics makes Merge
// idempotent on the overlap.
// Complexity: O(result area).
func Merge(a, b *Group) *Group {
	if a == nil || b == nil {
		panic(groupErrorf("Merge", "both arguments must be non-nil"))
	}
	minCoord := geometry.Coord{X: minI64(a.GlobalCoord.X, b.GlobalCoord.X), Y: minI64(a.GlobalCoord.Y, b.GlobalCoord.Y)}
	target := block.New(1, 1)
	target.Insert(geometry.UCoord{X: uint32(a.GlobalCoord.X - minCoord.X), Y: uint32(a.GlobalCoord.Y - minCoord.Y)}, a.Block)
	target.Insert(geometry.UCoord{X: uint32(b.GlobalCoord.X - minCoord.X), Y: uint32(b.GlobalCoord.Y - minCoord.Y)}, b.Block)
	return &Group{GlobalCoord: minCoord, Block: target}
}

// Split delegates to Block.Split and translates each piece's offset into
// a global coordinate. ok is false when g's Block holds no live cell.
// Complexity: O(Block area).
func Split(g *Group) ([]*Group, bool) {
	pieces, ok := g.Block.Split()
	if !ok {
		return nil, false
	}
	groups := make([]*Group, len(pieces))
	for i, p := range pieces {
		groups[i] = &Group{GlobalCoord: g.GlobalCoord.Add(p.Offset), Block: p.Block}
	}
	return groups, true
}

// Step advances g's Block one generation in place, then Splits the
// result. The returned slice may be empty (every cell died) or hold
// several Groups (the surviving pattern broke into disjoint pieces).
// Complexity: O(Block area).
func Step(g *Group) ([]*Group, bool) {
	g.Block.Step()
	return Split(g)
}

// ReverseY flips g's Block vertically and translates GlobalCoord so the
// flipped Group occupies y = -old_y - y_size + 1. Used by an external
// renderer to reconcile this engine's bottom-up Y axis with a top-down
// display convention; the engine itself never calls this.
// Complexity: O(Block area).
func ReverseY(g *Group) *Group {
	b := g.Block
	flipped := &block.Block{XSize: b.XSize, YSize: b.YSize, Cells: make([]uint8, len(b.Cells))}
	for y := uint32(0); y < b.YSize; y++ {
		srcStart := y * b.XSize
		dstY := b.YSize - 1 - y
		dstStart := dstY * b.XSize
		copy(flipped.Cells[dstStart:dstStart+b.XSize], b.Cells[srcStart:srcStart+b.XSize])
	}
	newY := -g.GlobalCoord.Y - int64(b.YSize) + 1
	return &Group{GlobalCoord: geometry.Coord{X: g.GlobalCoord.X, Y: newY}, Block: flipped}
}

// Less reports whether g sorts before other under Coord's total order.
// Supplements the original implementation's Ord derivation on
// GlobalCoord, used to produce a stably-sorted Groups snapshot.
// Complexity: O(1).
func (g *Group) Less(other *Group) bool {
	return g.GlobalCoord.Less(other.GlobalCoord)
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

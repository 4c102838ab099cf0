package geometry

import "math"

// Coord is a signed global position on the plane. Components are 64-bit so
// a Group may migrate arbitrarily far from the origin without overflow
// concerns across the generation counts this engine targets.
type Coord struct {
	X, Y int64
}

// Add returns the componentwise sum of c and other.
// Complexity: O(1).
func (c Coord) Add(other Coord) Coord {
	return Coord{X: c.X + other.X, Y: c.Y + other.Y}
}

// Compare returns -1, 0, or 1 comparing c to other under a total order
// (X major, Y minor). Only a total order is required by spec; callers
// must not depend on X being compared before Y beyond that guarantee.
// Complexity: O(1).
func (c Coord) Compare(other Coord) int {
	switch {
	case c.X < other.X:
		return -1
	case c.X > other.X:
		return 1
	case c.Y < other.Y:
		return -1
	case c.Y > other.Y:
		return 1
	default:
		return 0
	}
}

// Less reports whether c sorts before other under Compare.
// Complexity: O(1).
func (c Coord) Less(other Coord) bool {
	return c.Compare(other) < 0
}

// Tuple returns c as an (x, y) pair, the shape rstar-style envelope
// constructors and test fixtures expect.
// Complexity: O(1).
func (c Coord) Tuple() (int64, int64) {
	return c.X, c.Y
}

// CoordFromUCoord widens an unsigned local index into a signed global
// Coord. Used when translating a Block-local offset into the plane.
// Complexity: O(1).
func CoordFromUCoord(u UCoord) Coord {
	return Coord{X: int64(u.X), Y: int64(u.Y)}
}

// UCoord is an unsigned local index into a Block's cell grid.
type UCoord struct {
	X, Y uint32
}

// Add returns the componentwise sum of u and other.
// Complexity: O(1).
func (u UCoord) Add(other UCoord) UCoord {
	return UCoord{X: u.X + other.X, Y: u.Y + other.Y}
}

// AABB is an inclusive axis-aligned bounding box over Coord: both Min and
// Max are part of the box.
type AABB struct {
	Min, Max Coord
}

// NewAABB builds an AABB from two inclusive corners, normalizing so Min
// holds the componentwise minimum and Max the componentwise maximum.
// Complexity: O(1).
func NewAABB(a, b Coord) AABB {
	return AABB{
		Min: Coord{X: minI64(a.X, b.X), Y: minI64(a.Y, b.Y)},
		Max: Coord{X: maxI64(a.X, b.X), Y: maxI64(a.Y, b.Y)},
	}
}

// FullPlane returns the sentinel envelope covering every representable
// Coord: every envelope intersects it. Field exposes it as
// FullPlaneEnvelope; Field's own drains empty the index directly and do
// not query with it.
// Complexity: O(1).
func FullPlane() AABB {
	return AABB{
		Min: Coord{X: math.MinInt64, Y: math.MinInt64},
		Max: Coord{X: math.MaxInt64, Y: math.MaxInt64},
	}
}

// Intersects reports whether a and b overlap, inclusive of shared edges
// and corners (two boxes that merely touch at a single boundary cell do
// intersect under this definition).
// Complexity: O(1).
func (a AABB) Intersects(b AABB) bool {
	if a.Max.X < b.Min.X || b.Max.X < a.Min.X {
		return false
	}
	if a.Max.Y < b.Min.Y || b.Max.Y < a.Min.Y {
		return false
	}
	return true
}

// Equal reports whether a and b cover exactly the same corners.
// Complexity: O(1).
func (a AABB) Equal(b AABB) bool {
	return a.Min == b.Min && a.Max == b.Max
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

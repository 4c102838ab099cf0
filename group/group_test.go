package group_test

import (
	"testing"

	"github.com/katalvlaran/lifegrid/block"
	"github.com/katalvlaran/lifegrid/geometry"
	"github.com/katalvlaran/lifegrid/group"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func blockOf(x, y uint32, cells []uint8) *block.Block {
	return &block.Block{XSize: x, YSize: y, Cells: cells}
}

func TestTopRightEnvelope(t *testing.T) {
	g := group.New(geometry.Coord{X: 5, Y: -2}, block.New(4, 3))
	assert.Equal(t, geometry.Coord{X: 8, Y: 0}, g.TopRight())
	assert.Equal(t, geometry.AABB{Min: geometry.Coord{X: 5, Y: -2}, Max: geometry.Coord{X: 8, Y: 0}}, g.Envelope())
}

func TestIntersects(t *testing.T) {
	a := group.New(geometry.Coord{X: 0, Y: 0}, block.New(3, 3))
	b := group.New(geometry.Coord{X: 2, Y: 2}, block.New(3, 3))
	c := group.New(geometry.Coord{X: 100, Y: 100}, block.New(3, 3))
	assert.True(t, a.Intersects(b))
	assert.False(t, a.Intersects(c))
}

func TestIntersectsSmartFalseOnMereBoundingBoxTouch(t *testing.T) {
	a := group.New(geometry.Coord{X: 0, Y: 0}, blockOf(3, 3, []uint8{0, 0, 0, 0, 1, 0, 0, 0, 0}))
	b := group.New(geometry.Coord{X: 2, Y: 2}, blockOf(3, 3, []uint8{0, 0, 0, 0, 1, 0, 0, 0, 0}))
	assert.True(t, a.Intersects(b))
	assert.False(t, a.IntersectsSmart(b))
}

func TestIntersectsSmartTrueOnAlienNeighbourContact(t *testing.T) {
	a := group.New(geometry.Coord{X: 0, Y: 0}, blockOf(3, 3, []uint8{0, 0, 0, 0, 1, 0, 0, 0, 0}))
	b := group.New(geometry.Coord{X: 1, Y: 0}, blockOf(3, 3, []uint8{0, 0, 0, 0, 1, 0, 0, 0, 0}))
	assert.True(t, a.IntersectsSmart(b))
}

func TestMergeIsIdempotentOnOverlap(t *testing.T) {
	a := group.New(geometry.Coord{X: 0, Y: 0}, blockOf(3, 3, []uint8{0, 0, 0, 0, 1, 0, 0, 0, 0}))
	b := group.New(geometry.Coord{X: 1, Y: 1}, blockOf(3, 3, []uint8{0, 0, 0, 0, 1, 0, 0, 0, 0}))

	merged := group.Merge(a, b)
	require.Equal(t, geometry.Coord{X: 0, Y: 0}, merged.GlobalCoord)
	require.Equal(t, uint32(4), merged.Block.XSize)
	require.Equal(t, uint32(4), merged.Block.YSize)
	assert.Equal(t, uint8(1), merged.Block.Get(geometry.UCoord{X: 1, Y: 1}))
	assert.Equal(t, uint8(1), merged.Block.Get(geometry.UCoord{X: 2, Y: 2}))
	assert.Equal(t, uint8(0), merged.Block.Get(geometry.UCoord{X: 0, Y: 0}))

	remerged := group.Merge(merged, b)
	assert.Equal(t, merged.Block.Cells, remerged.Block.Cells)
	assert.Equal(t, merged.GlobalCoord, remerged.GlobalCoord)
}

func TestSplitTranslatesOffsetsToGlobalCoordinates(t *testing.T) {
	b1 := block.New(5, 6)
	for _, u := range []geometry.UCoord{{X: 1, Y: 2}, {X: 1, Y: 3}, {X: 2, Y: 1}, {X: 2, Y: 4}, {X: 3, Y: 2}, {X: 3, Y: 3}} {
		b1.Set(u, 1)
	}
	b2 := block.New(5, 5)
	for _, u := range []geometry.UCoord{{X: 1, Y: 2}, {X: 2, Y: 1}, {X: 2, Y: 3}, {X: 3, Y: 1}, {X: 3, Y: 2}} {
		b2.Set(u, 1)
	}
	combined := block.New(1, 1)
	combined.Insert(geometry.UCoord{X: 0, Y: 16}, b1)
	combined.Insert(geometry.UCoord{X: 3, Y: 0}, b2)

	g := group.New(geometry.Coord{X: 10, Y: 20}, combined)
	pieces, ok := group.Split(g)
	require.True(t, ok)
	require.Len(t, pieces, 2)

	byCoord := map[geometry.Coord][]uint8{}
	for _, p := range pieces {
		byCoord[p.GlobalCoord] = p.Block.Cells
	}
	assert.Equal(t, b1.Cells, byCoord[geometry.Coord{X: 10, Y: 36}])
	assert.Equal(t, b2.Cells, byCoord[geometry.Coord{X: 13, Y: 20}])
}

func TestStepBlinkerOscillatesAndReborders(t *testing.T) {
	b := blockOf(5, 3, []uint8{
		0, 0, 0, 0, 0,
		0, 1, 1, 1, 0,
		0, 0, 0, 0, 0,
	})
	g := group.New(geometry.Coord{X: 0, Y: 0}, b)

	result, ok := group.Step(g)
	require.True(t, ok)
	require.Len(t, result, 1)

	got := result[0]
	assert.Equal(t, geometry.Coord{X: 1, Y: -1}, got.GlobalCoord)
	assert.Equal(t, uint32(3), got.Block.XSize)
	assert.Equal(t, uint32(5), got.Block.YSize)
	want := []uint8{
		0, 0, 0,
		0, 1, 0,
		0, 1, 0,
		0, 1, 0,
		0, 0, 0,
	}
	assert.Equal(t, want, got.Block.Cells)
}

func TestStepOnAllDeadBlockReturnsNoGroups(t *testing.T) {
	g := group.New(geometry.Coord{X: 0, Y: 0}, block.New(4, 4))
	result, ok := group.Step(g)
	assert.False(t, ok)
	assert.Empty(t, result)
}

func TestReverseY(t *testing.T) {
	g := group.New(geometry.Coord{X: 5, Y: 10}, blockOf(2, 2, []uint8{0, 1, 1, 0}))
	flipped := group.ReverseY(g)
	assert.Equal(t, geometry.Coord{X: 5, Y: -11}, flipped.GlobalCoord)
	assert.Equal(t, []uint8{1, 0, 0, 1}, flipped.Block.Cells)
}

func TestLessOrdersByGlobalCoord(t *testing.T) {
	a := group.New(geometry.Coord{X: 0, Y: 0}, block.New(3, 3))
	b := group.New(geometry.Coord{X: 1, Y: 0}, block.New(3, 3))
	assert.True(t, a.Less(b))
	assert.False(t, b.Less(a))
}

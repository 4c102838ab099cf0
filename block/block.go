package block

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lifegrid/geometry"
)

// MinSize is the smallest edge length a Block may have. The border
// invariant (see doc.go) depends on every Block being at least this big,
// so New enforces it unconditionally.
const MinSize = 3

// Block is a dense rectangular bit grid. Cells is row-major by Y: cell
// (x, y) lives at Cells[y*XSize+x]. The origin is the bottom-left corner;
// Y increases upward.
type Block struct {
	XSize, YSize uint32
	Cells        []uint8
}

// BlockPiece pairs a Block produced by Split with its bottom-left offset
// in the coordinate frame of the Block that was split.
type BlockPiece struct {
	Block  *Block
	Offset geometry.Coord
}

// New allocates a zero-filled Block, clamping both dimensions up to
// MinSize.
// Complexity: O(x*y).
func New(x, y uint32) *Block {
	if x < MinSize {
		x = MinSize
	}
	if y < MinSize {
		y = MinSize
	}
	return newRaw(x, y)
}

// newRaw allocates a zero-filled Block without enforcing MinSize. Used
// internally by Resize/Split, whose intermediate pieces may be smaller
// than MinSize before their own Resize pass restores the border.
func newRaw(x, y uint32) *Block {
	if x == 0 {
		x = 1
	}
	if y == 0 {
		y = 1
	}
	return &Block{XSize: x, YSize: y, Cells: make([]uint8, x*y)}
}

func (b *Block) index(u geometry.UCoord) (int, bool) {
	if u.X >= b.XSize || u.Y >= b.YSize {
		return 0, false
	}
	return int(u.Y)*int(b.XSize) + int(u.X), true
}

// Get returns the cell at u. It panics if u is outside the Block: this is
// a precondition violation, not a recoverable error (see doc.go).
// Complexity: O(1).
func (b *Block) Get(u geometry.UCoord) uint8 {
	idx, ok := b.index(u)
	if !ok {
		panic(blockErrorf("Get", u, "cell out of bounds"))
	}
	return b.Cells[idx]
}

// Set assigns v at u. It panics if u is outside the Block.
// Complexity: O(1).
func (b *Block) Set(u geometry.UCoord, v uint8) {
	idx, ok := b.index(u)
	if !ok {
		panic(blockErrorf("Set", u, "cell out of bounds"))
	}
	b.Cells[idx] = v
}

// at reads cell (x, y) treating any coordinate outside the Block as dead.
// This is what makes NeighbourCount well-defined at the boundary, given
// the border invariant a Group maintains on every Block it owns.
func (b *Block) at(x, y int64) uint8 {
	if x < 0 || y < 0 || x >= int64(b.XSize) || y >= int64(b.YSize) {
		return 0
	}
	return b.Cells[y*int64(b.XSize)+x]
}

// NeighbourCount returns the Moore-neighbourhood sum (0-8) around u.
// Diagonals are enumerated explicitly rather than summed over a y-1..y+1
// range, which would double-count the four diagonal cells.
// Complexity: O(1).
func (b *Block) NeighbourCount(u geometry.UCoord) uint8 {
	x, y := int64(u.X), int64(u.Y)
	return b.at(x-1, y-1) + b.at(x, y-1) + b.at(x+1, y-1) +
		b.at(x-1, y) + b.at(x+1, y) +
		b.at(x-1, y+1) + b.at(x, y+1) + b.at(x+1, y+1)
}

// Step advances the Block one generation under rule B3/S23. XSize and
// YSize are unchanged: a cell becomes or stays alive iff its neighbour
// sum is 3, or is 2 and the cell was already alive.
// Complexity: O(XSize*YSize).
func (b *Block) Step() {
	next := make([]uint8, len(b.Cells))
	for y := uint32(0); y < b.YSize; y++ {
		for x := uint32(0); x < b.XSize; x++ {
			idx := int(y)*int(b.XSize) + int(x)
			switch b.NeighbourCount(geometry.UCoord{X: x, Y: y}) {
			case 3:
				next[idx] = 1
			case 2:
				next[idx] = b.Cells[idx]
			default:
				next[idx] = 0
			}
		}
	}
	b.Cells = next
}

// RowAlive returns the number of live cells in row y.
// Complexity: O(XSize).
func (b *Block) RowAlive(y uint32) uint32 {
	return b.rowAliveInRange(y, 0, b.XSize-1)
}

// ColumnAlive returns the number of live cells in column x.
// Complexity: O(YSize).
func (b *Block) ColumnAlive(x uint32) uint32 {
	var count uint32
	for y := uint32(0); y < b.YSize; y++ {
		count += uint32(b.at(int64(x), int64(y)))
	}
	return count
}

func (b *Block) rowAliveInRange(y, xStart, xEnd uint32) uint32 {
	var count uint32
	for x := xStart; x <= xEnd; x++ {
		count += uint32(b.at(int64(x), int64(y)))
	}
	return count
}

// NeedExpand reports whether any of the four border rows/columns holds a
// live cell.
// Complexity: O(XSize+YSize).
func (b *Block) NeedExpand() bool {
	if b.ColumnAlive(0) > 0 || b.ColumnAlive(b.XSize-1) > 0 {
		return true
	}
	if b.RowAlive(0) > 0 || b.RowAlive(b.YSize-1) > 0 {
		return true
	}
	return false
}

// Insert pastes the live cells of other into the receiver at offset
// place, using OR semantics: a live cell in other sets the target, a
// dead cell leaves the target alone. The receiver grows first if the
// pasted region would exceed its current bounds.
// Complexity: O(XSize*YSize + other.XSize*other.YSize).
func (b *Block) Insert(place geometry.UCoord, other *Block) {
	newX, newY := b.XSize, b.YSize
	if want := place.X + other.XSize; want > newX {
		newX = want
	}
	if want := place.Y + other.YSize; want > newY {
		newY = want
	}
	if newX != b.XSize || newY != b.YSize {
		grown := newRaw(newX, newY)
		for y := uint32(0); y < b.YSize; y++ {
			for x := uint32(0); x < b.XSize; x++ {
				grown.Cells[int(y)*int(newX)+int(x)] = b.Cells[int(y)*int(b.XSize)+int(x)]
			}
		}
		b.XSize, b.YSize, b.Cells = grown.XSize, grown.YSize, grown.Cells
	}
	for y := uint32(0); y < other.YSize; y++ {
		for x := uint32(0); x < other.XSize; x++ {
			if other.Cells[int(y)*int(other.XSize)+int(x)] == 0 {
				continue
			}
			idx := int(y+place.Y)*int(b.XSize) + int(x+place.X)
			b.Cells[idx] = 1
		}
	}
}

// CutEmpty trims fully-dead rows and columns from every side, preserving
// exactly one empty lane on each side that had any dead margin. ok is
// false when the Block holds no live cell at all, in which case the
// Block is left unchanged (the caller's emptiness convention).
// Complexity: O(XSize*YSize).
func (b *Block) CutEmpty() (geometry.UCoord, bool) {
	left, right, bottom, top, ok := b.liveBounds()
	if !ok {
		return geometry.UCoord{}, false
	}

	newLeft := uint32(0)
	if left > 0 {
		newLeft = left - 1
	}
	newRight := b.XSize - 1
	if right < b.XSize-1 {
		newRight = right + 1
	}
	newBottom := uint32(0)
	if bottom > 0 {
		newBottom = bottom - 1
	}
	newTop := b.YSize - 1
	if top < b.YSize-1 {
		newTop = top + 1
	}

	newXSize := newRight - newLeft + 1
	newYSize := newTop - newBottom + 1
	if newXSize == b.XSize && newYSize == b.YSize {
		return geometry.UCoord{}, true
	}

	trimmed := newRaw(newXSize, newYSize)
	for y := uint32(0); y < newYSize; y++ {
		for x := uint32(0); x < newXSize; x++ {
			trimmed.Cells[int(y)*int(newXSize)+int(x)] = b.at(int64(x+newLeft), int64(y+newBottom))
		}
	}
	b.XSize, b.YSize, b.Cells = trimmed.XSize, trimmed.YSize, trimmed.Cells
	return geometry.UCoord{X: newLeft, Y: newBottom}, true
}

// liveBounds returns the tightest [left,right]x[bottom,top] rectangle
// containing every live cell, or ok=false if the Block is entirely dead.
func (b *Block) liveBounds() (left, right, bottom, top uint32, ok bool) {
	left, bottom = b.XSize, b.YSize
	for y := uint32(0); y < b.YSize; y++ {
		for x := uint32(0); x < b.XSize; x++ {
			if b.at(int64(x), int64(y)) == 0 {
				continue
			}
			ok = true
			if x < left {
				left = x
			}
			if x > right {
				right = x
			}
			if y < bottom {
				bottom = y
			}
			if y > top {
				top = y
			}
		}
	}
	return
}

// AddBorder grows the Block by one cell on every side whose current
// border row/column holds a live cell, so that a dead border reappears.
// Returns the signed (<=0 per axis) offset applied to the interior.
// Complexity: O(XSize*YSize).
func (b *Block) AddBorder() geometry.Coord {
	growLeft := b.ColumnAlive(0) > 0
	growRight := b.ColumnAlive(b.XSize-1) > 0
	growBottom := b.RowAlive(0) > 0
	growTop := b.RowAlive(b.YSize-1) > 0
	if !growLeft && !growRight && !growBottom && !growTop {
		return geometry.Coord{}
	}

	dxLeft, dxRight, dyBottom, dyTop := uint32(0), uint32(0), uint32(0), uint32(0)
	if growLeft {
		dxLeft = 1
	}
	if growRight {
		dxRight = 1
	}
	if growBottom {
		dyBottom = 1
	}
	if growTop {
		dyTop = 1
	}

	grown := newRaw(b.XSize+dxLeft+dxRight, b.YSize+dyBottom+dyTop)
	for y := uint32(0); y < b.YSize; y++ {
		for x := uint32(0); x < b.XSize; x++ {
			grown.Cells[int(y+dyBottom)*int(grown.XSize)+int(x+dxLeft)] = b.Cells[int(y)*int(b.XSize)+int(x)]
		}
	}
	b.XSize, b.YSize, b.Cells = grown.XSize, grown.YSize, grown.Cells
	return geometry.Coord{X: -int64(dxLeft), Y: -int64(dyBottom)}
}

// Resize is CutEmpty followed by AddBorder: it returns the net signed
// offset between the old and new coordinate frames, or ok=false if the
// Block is entirely dead (left unchanged). A second call on the result
// is a no-op returning a zero offset: CutEmpty finds nothing to trim and
// AddBorder finds the border already dead.
// Complexity: O(XSize*YSize).
func (b *Block) Resize() (geometry.Coord, bool) {
	cutOffset, ok := b.CutEmpty()
	if !ok {
		return geometry.Coord{}, false
	}
	borderOffset := b.AddBorder()
	return geometry.CoordFromUCoord(cutOffset).Add(borderOffset), true
}

// Split resizes the Block, then partitions it into its maximal connected
// sub-blocks: bands separated by two consecutive fully-dead columns
// (vertical cuts, sentinel at column 0) and, within each vertical band,
// two consecutive fully-dead rows considered over that band's columns
// only (horizontal cuts). Each piece is itself resized; pieces with no
// live cell are dropped. ok is false if the whole Block is dead.
// Complexity: O(XSize*YSize).
func (b *Block) Split() ([]BlockPiece, bool) {
	netOuter, ok := b.Resize()
	if !ok {
		return nil, false
	}

	xBounds := []uint32{0}
	for x := uint32(1); x < b.XSize; x++ {
		if b.ColumnAlive(x-1) == 0 && b.ColumnAlive(x) == 0 {
			xBounds = append(xBounds, x)
		}
	}
	xBounds = append(xBounds, b.XSize)

	var pieces []BlockPiece
	for i := 0; i+1 < len(xBounds); i++ {
		xStart, xEnd := xBounds[i], xBounds[i+1]-1

		yBounds := []uint32{0}
		for y := uint32(1); y < b.YSize; y++ {
			if b.rowAliveInRange(y-1, xStart, xEnd) == 0 && b.rowAliveInRange(y, xStart, xEnd) == 0 {
				yBounds = append(yBounds, y)
			}
		}
		yBounds = append(yBounds, b.YSize)

		for j := 0; j+1 < len(yBounds); j++ {
			yStart, yEnd := yBounds[j], yBounds[j+1]-1

			live := false
			for y := yStart; y <= yEnd && !live; y++ {
				if b.rowAliveInRange(y, xStart, xEnd) > 0 {
					live = true
				}
			}
			if !live {
				continue
			}

			pw, ph := xEnd-xStart+1, yEnd-yStart+1
			piece := newRaw(pw, ph)
			for dy := uint32(0); dy < ph; dy++ {
				for dx := uint32(0); dx < pw; dx++ {
					piece.Cells[int(dy)*int(pw)+int(dx)] = b.at(int64(xStart+dx), int64(yStart+dy))
				}
			}

			pieceNet, pieceOK := piece.Resize()
			if !pieceOK {
				// Unreachable: the live check above guarantees a live cell.
				continue
			}
			offset := netOuter.
				Add(geometry.Coord{X: int64(xStart), Y: int64(yStart)}).
				Add(pieceNet)
			pieces = append(pieces, BlockPiece{Block: piece, Offset: offset})
		}
	}
	return pieces, true
}

// String renders the Block as an ASCII grid, row order top-to-bottom so
// the printed picture reads right-side-up despite the bottom-left
// origin. Diagnostic only.
func (b *Block) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Block[%dx%d]\n", b.XSize, b.YSize)
	for y := b.YSize; y > 0; y-- {
		for x := uint32(0); x < b.XSize; x++ {
			if b.at(int64(x), int64(y-1)) != 0 {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

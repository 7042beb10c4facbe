package board

import (
	"math"

	"github.com/vovakirdan/blockpilot/internal/core"
)

// Kind identifies one of the seven tetrominoes.
type Kind int

const (
	KindI Kind = iota
	KindO
	KindT
	KindS
	KindZ
	KindJ
	KindL
)

// Kinds lists every tetromino in bag order.
var Kinds = [...]Kind{KindI, KindO, KindT, KindS, KindZ, KindJ, KindL}

// String returns the single-letter name of the piece.
func (k Kind) String() string {
	switch k {
	case KindI:
		return "I"
	case KindO:
		return "O"
	case KindT:
		return "T"
	case KindS:
		return "S"
	case KindZ:
		return "Z"
	case KindJ:
		return "J"
	case KindL:
		return "L"
	default:
		return "?"
	}
}

// Color returns the display color for blocks of this kind.
func (k Kind) Color() core.Color {
	switch k {
	case KindI:
		return core.ColorBrightCyan
	case KindO:
		return core.ColorBrightYellow
	case KindT:
		return core.ColorMagenta
	case KindS:
		return core.ColorBrightGreen
	case KindZ:
		return core.ColorBrightRed
	case KindJ:
		return core.ColorBlue
	case KindL:
		return core.ColorOrange
	default:
		return core.ColorDefault
	}
}

// Point is an integer grid coordinate. Y grows downward.
type Point struct {
	X, Y int
}

// Center is the reference point a piece rotates around.
// Pieces with an even footprint (I, O) have their centre between cells,
// so both coordinates are half-integral for them.
type Center struct {
	X, Y float64
}

// BetweenColumns reports whether the horizontal centre does not line up
// with a column.
func (c Center) BetweenColumns() bool {
	return c.X != math.Trunc(c.X)
}

// shape is the spawn orientation of a tetromino, relative to its bounding box.
// Every rotation of every shape stays within rows 0..3 of the box, so a
// freshly spawned piece can be turned in place on an empty board.
type shape struct {
	cells  [4]Point
	center Center
	width  int
}

var shapes = map[Kind]shape{
	KindI: {cells: [4]Point{{0, 1}, {1, 1}, {2, 1}, {3, 1}}, center: Center{1.5, 1.5}, width: 4},
	KindO: {cells: [4]Point{{0, 0}, {1, 0}, {0, 1}, {1, 1}}, center: Center{0.5, 0.5}, width: 2},
	KindT: {cells: [4]Point{{1, 0}, {0, 1}, {1, 1}, {2, 1}}, center: Center{1, 1}, width: 3},
	KindS: {cells: [4]Point{{1, 0}, {2, 0}, {0, 1}, {1, 1}}, center: Center{1, 1}, width: 3},
	KindZ: {cells: [4]Point{{0, 0}, {1, 0}, {1, 1}, {2, 1}}, center: Center{1, 1}, width: 3},
	KindJ: {cells: [4]Point{{0, 0}, {0, 1}, {1, 1}, {2, 1}}, center: Center{1, 1}, width: 3},
	KindL: {cells: [4]Point{{2, 0}, {0, 1}, {1, 1}, {2, 1}}, center: Center{1, 1}, width: 3},
}

// Piece is a tetromino placed on a board.
type Piece struct {
	Kind   Kind
	Cells  [4]Point
	Center Center
}

// newPiece returns the spawn orientation of k with its box offset by (dx, dy).
func newPiece(k Kind, dx, dy int) Piece {
	s := shapes[k]
	p := Piece{Kind: k, Cells: s.cells, Center: s.center}
	return p.translated(dx, dy)
}

// translated returns a copy of p shifted by (dx, dy).
func (p Piece) translated(dx, dy int) Piece {
	for i := range p.Cells {
		p.Cells[i].X += dx
		p.Cells[i].Y += dy
	}
	p.Center.X += float64(dx)
	p.Center.Y += float64(dy)
	return p
}

// rotated returns a copy of p turned a quarter around its centre.
// Screen coordinates grow downward, so clockwise maps right onto down.
func (p Piece) rotated(r Rotation) Piece {
	cx, cy := p.Center.X, p.Center.Y
	for i, c := range p.Cells {
		dx := float64(c.X) - cx
		dy := float64(c.Y) - cy
		var nx, ny float64
		if r == Clockwise {
			nx, ny = cx-dy, cy+dx
		} else {
			nx, ny = cx+dy, cy-dx
		}
		p.Cells[i] = Point{X: int(math.Round(nx)), Y: int(math.Round(ny))}
	}
	return p
}

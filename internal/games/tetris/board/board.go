// Package board is the falling-block engine: a grid of locked blocks, one
// falling tetromino and the collision rules the game and the pilot share.
package board

import (
	"errors"
	"fmt"
	"iter"
	"strings"
)

// ErrIllegalPlacement is returned when a spawn, move or rotation cannot be
// applied: the piece would leave the board, overlap a locked block, or there
// is no falling piece at all.
var ErrIllegalPlacement = errors.New("board: illegal placement")

// Direction is a translation of the falling piece.
type Direction int

const (
	Left Direction = iota
	Right
	Down // one row, fails when blocked
	Drop // fall until blocked, then lock
)

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case Left:
		return "Left"
	case Right:
		return "Right"
	case Down:
		return "Down"
	case Drop:
		return "Drop"
	default:
		return "Unknown"
	}
}

// Rotation is a quarter turn of the falling piece.
type Rotation int

const (
	Clockwise Rotation = iota
	Anticlockwise
)

// String returns the rotation name.
func (r Rotation) String() string {
	if r == Clockwise {
		return "Clockwise"
	}
	return "Anticlockwise"
}

// Block is the content of a single cell. Non-empty blocks remember which
// kind of piece they came from so the renderer can colour them.
type Block int

// BlockEmpty marks a free cell.
const BlockEmpty Block = 0

// blockOf converts a piece kind into the block it leaves behind.
func blockOf(k Kind) Block {
	return Block(k) + 1
}

// Kind returns the piece kind the block came from.
func (b Block) Kind() Kind {
	return Kind(b - 1)
}

// Board is a width x height well of locked blocks plus at most one falling
// piece. Row 0 is the top.
type Board struct {
	width   int
	height  int
	grid    [][]Block
	falling *Piece
}

// New creates an empty board.
func New(width, height int) *Board {
	b := &Board{width: width, height: height}
	b.grid = make([][]Block, height)
	for y := range b.grid {
		b.grid[y] = make([]Block, width)
	}
	return b
}

// Width returns the number of columns.
func (b *Board) Width() int {
	return b.width
}

// Height returns the number of rows.
func (b *Board) Height() int {
	return b.height
}

// inBounds reports whether (x, y) is a cell of the board.
func (b *Board) inBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// At returns the locked block at (x, y), or BlockEmpty outside the board.
func (b *Board) At(x, y int) Block {
	if !b.inBounds(x, y) {
		return BlockEmpty
	}
	return b.grid[y][x]
}

// Set stores a locked block at (x, y). Out-of-bounds writes are ignored.
func (b *Board) Set(x, y int, blk Block) {
	if b.inBounds(x, y) {
		b.grid[y][x] = blk
	}
}

// Fill locks a block of kind k at (x, y).
func (b *Board) Fill(x, y int, k Kind) {
	b.Set(x, y, blockOf(k))
}

// Occupied yields the coordinates of every locked block, row by row.
// The falling piece is not included.
func (b *Board) Occupied() iter.Seq2[int, int] {
	return func(yield func(int, int) bool) {
		for y := range b.height {
			for x := range b.width {
				if b.grid[y][x] == BlockEmpty {
					continue
				}
				if !yield(x, y) {
					return
				}
			}
		}
	}
}

// Falling returns the falling piece, if any.
func (b *Board) Falling() (Piece, bool) {
	if b.falling == nil {
		return Piece{}, false
	}
	return *b.falling, true
}

// Center returns the reference point of the falling piece.
func (b *Board) Center() (Center, error) {
	if b.falling == nil {
		return Center{}, fmt.Errorf("%w: no falling piece", ErrIllegalPlacement)
	}
	return b.falling.Center, nil
}

// fits reports whether every cell of p is on the board and free.
func (b *Board) fits(p Piece) bool {
	for _, c := range p.Cells {
		if !b.inBounds(c.X, c.Y) || b.grid[c.Y][c.X] != BlockEmpty {
			return false
		}
	}
	return true
}

// Spawn places a new piece of kind k horizontally centred at the top.
// It fails when the piece does not fit, which ends the game.
func (b *Board) Spawn(k Kind) error {
	s := shapes[k]
	p := newPiece(k, (b.width-s.width)/2, 0)
	if !b.fits(p) {
		b.falling = nil
		return fmt.Errorf("%w: cannot spawn %s", ErrIllegalPlacement, k)
	}
	b.falling = &p
	return nil
}

// Move translates the falling piece. Drop locks the piece where it lands
// but does not clear completed rows; see ClearLines.
func (b *Board) Move(d Direction) error {
	if b.falling == nil {
		return fmt.Errorf("%w: no falling piece to move %s", ErrIllegalPlacement, d)
	}

	switch d {
	case Left, Right, Down:
		dx, dy := 0, 1
		if d == Left {
			dx, dy = -1, 0
		} else if d == Right {
			dx, dy = 1, 0
		}
		next := b.falling.translated(dx, dy)
		if !b.fits(next) {
			return fmt.Errorf("%w: %s blocked", ErrIllegalPlacement, d)
		}
		*b.falling = next
		return nil

	case Drop:
		for {
			next := b.falling.translated(0, 1)
			if !b.fits(next) {
				break
			}
			*b.falling = next
		}
		return b.Lock()
	}

	return fmt.Errorf("%w: unknown direction %d", ErrIllegalPlacement, d)
}

// Rotate turns the falling piece a quarter around its centre. There are no
// wall kicks: a rotation that would collide is rejected.
func (b *Board) Rotate(r Rotation) error {
	if b.falling == nil {
		return fmt.Errorf("%w: no falling piece to rotate", ErrIllegalPlacement)
	}
	next := b.falling.rotated(r)
	if !b.fits(next) {
		return fmt.Errorf("%w: %s rotation blocked", ErrIllegalPlacement, r)
	}
	*b.falling = next
	return nil
}

// Lock merges the falling piece into the grid where it currently is.
func (b *Board) Lock() error {
	if b.falling == nil {
		return fmt.Errorf("%w: no falling piece to lock", ErrIllegalPlacement)
	}
	blk := blockOf(b.falling.Kind)
	for _, c := range b.falling.Cells {
		b.grid[c.Y][c.X] = blk
	}
	b.falling = nil
	return nil
}

// Landing returns the falling piece moved as far down as it can go.
// Used to draw the ghost piece.
func (b *Board) Landing() (Piece, bool) {
	if b.falling == nil {
		return Piece{}, false
	}
	p := *b.falling
	for {
		next := p.translated(0, 1)
		if !b.fits(next) {
			return p, true
		}
		p = next
	}
}

// ClearLines removes every full row, shifts the rows above down and returns
// the number of rows removed.
func (b *Board) ClearLines() int {
	cleared := 0
	dest := b.height - 1

	for y := b.height - 1; y >= 0; y-- {
		if b.rowFull(y) {
			cleared++
			continue
		}
		if dest != y {
			copy(b.grid[dest], b.grid[y])
		}
		dest--
	}

	for y := dest; y >= 0; y-- {
		clear(b.grid[y])
	}
	return cleared
}

// rowFull reports whether every cell of row y is occupied.
func (b *Board) rowFull(y int) bool {
	for x := range b.width {
		if b.grid[y][x] == BlockEmpty {
			return false
		}
	}
	return true
}

// Clone returns a deep copy that can be mutated independently.
func (b *Board) Clone() *Board {
	c := New(b.width, b.height)
	for y := range b.grid {
		copy(c.grid[y], b.grid[y])
	}
	if b.falling != nil {
		p := *b.falling
		c.falling = &p
	}
	return c
}

// String dumps the board for debugging: '#' locked, '@' falling, '.' empty.
func (b *Board) String() string {
	falling := make(map[Point]bool, 4)
	if b.falling != nil {
		for _, c := range b.falling.Cells {
			falling[c] = true
		}
	}

	var sb strings.Builder
	sb.Grow((b.width + 1) * b.height)
	for y := range b.height {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := range b.width {
			switch {
			case falling[Point{x, y}]:
				sb.WriteByte('@')
			case b.grid[y][x] != BlockEmpty:
				sb.WriteByte('#')
			default:
				sb.WriteByte('.')
			}
		}
	}
	return sb.String()
}

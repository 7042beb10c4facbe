package bot

import (
	"iter"

	"github.com/vovakirdan/blockpilot/internal/games/tetris/board"
)

// Grid is the read-only view the evaluator scores.
type Grid interface {
	Width() int
	Height() int
	// Occupied yields every occupied cell exactly once, in any order.
	Occupied() iter.Seq2[int, int]
}

// Board is everything the search needs from the game engine.
// Move and Rotate fail with an error wrapping board.ErrIllegalPlacement
// when the falling piece cannot go there.
type Board interface {
	Grid
	Center() (board.Center, error)
	Clone() Board
	Move(d board.Direction) error
	Rotate(r board.Rotation) error
	String() string
}

// engineBoard adapts *board.Board so that Clone returns the interface.
type engineBoard struct {
	*board.Board
}

// FromEngine wraps an engine board for the pilot.
func FromEngine(b *board.Board) Board {
	return engineBoard{b}
}

// Clone returns an independent deep copy.
func (e engineBoard) Clone() Board {
	return engineBoard{e.Board.Clone()}
}

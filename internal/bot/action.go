package bot

import "github.com/vovakirdan/blockpilot/internal/games/tetris/board"

// Action is one discrete command the pilot asks the game to perform.
type Action int

const (
	Left Action = iota
	Right
	Drop
	Clockwise
	Anticlockwise
)

// String returns the action name.
func (a Action) String() string {
	switch a {
	case Left:
		return "Left"
	case Right:
		return "Right"
	case Drop:
		return "Drop"
	case Clockwise:
		return "Clockwise"
	case Anticlockwise:
		return "Anticlockwise"
	default:
		return "Unknown"
	}
}

// Apply performs the action on b through its Move or Rotate operation.
func (a Action) Apply(b Board) error {
	switch a {
	case Left:
		return b.Move(board.Left)
	case Right:
		return b.Move(board.Right)
	case Drop:
		return b.Move(board.Drop)
	case Clockwise:
		return b.Rotate(board.Clockwise)
	default:
		return b.Rotate(board.Anticlockwise)
	}
}

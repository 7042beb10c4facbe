package bot

import (
	"errors"
	"testing"

	"github.com/vovakirdan/blockpilot/internal/games/tetris/board"
)

func TestActionApply(t *testing.T) {
	b := spawned(t, board.New(10, 20), board.KindT)
	start, _ := b.Center()

	steps := []struct {
		action Action
		dx     float64
	}{
		{Left, -1},
		{Right, 0},
		{Right, 1},
		{Clockwise, 1},
		{Anticlockwise, 1},
	}
	for _, s := range steps {
		if err := s.action.Apply(b); err != nil {
			t.Fatalf("Apply(%s) failed: %v", s.action, err)
		}
		c, _ := b.Center()
		if c.X-start.X != s.dx {
			t.Errorf("after %s centre moved %v, expected %v", s.action, c.X-start.X, s.dx)
		}
	}

	if err := Drop.Apply(b); err != nil {
		t.Fatalf("Apply(Drop) failed: %v", err)
	}
	if err := Left.Apply(b); !errors.Is(err, board.ErrIllegalPlacement) {
		t.Errorf("Apply(Left) after drop = %v, expected ErrIllegalPlacement", err)
	}
}

func TestActionString(t *testing.T) {
	names := map[Action]string{
		Left:          "Left",
		Right:         "Right",
		Drop:          "Drop",
		Clockwise:     "Clockwise",
		Anticlockwise: "Anticlockwise",
		Action(99):    "Unknown",
	}
	for a, want := range names {
		if got := a.String(); got != want {
			t.Errorf("Action(%d).String() = %q, expected %q", int(a), got, want)
		}
	}
}

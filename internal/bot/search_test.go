package bot

import (
	"fmt"
	"iter"
	"slices"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/blockpilot/internal/games/tetris/board"
)

// stubBoard is an empty board whose piece centre never moves. Directions in
// rejectMove fail, and so does every rotation when rejectRotate is set.
type stubBoard struct {
	width, height int
	center        board.Center
	noPiece       bool
	rejectMove    map[board.Direction]bool
	rejectRotate  bool
}

func (s stubBoard) Width() int  { return s.width }
func (s stubBoard) Height() int { return s.height }

func (s stubBoard) Occupied() iter.Seq2[int, int] {
	return func(func(int, int) bool) {}
}

func (s stubBoard) Center() (board.Center, error) {
	if s.noPiece {
		return board.Center{}, fmt.Errorf("%w: no falling piece", board.ErrIllegalPlacement)
	}
	return s.center, nil
}

func (s stubBoard) Clone() Board { return s }

func (s stubBoard) Move(d board.Direction) error {
	if s.rejectMove[d] {
		return board.ErrIllegalPlacement
	}
	return nil
}

func (s stubBoard) Rotate(board.Rotation) error {
	if s.rejectRotate {
		return board.ErrIllegalPlacement
	}
	return nil
}

func (s stubBoard) String() string { return "stub" }

func spawned(t *testing.T, b *board.Board, k board.Kind) Board {
	t.Helper()
	if err := b.Spawn(k); err != nil {
		t.Fatalf("Spawn(%s) failed: %v", k, err)
	}
	return FromEngine(b)
}

func TestMovesFor(t *testing.T) {
	tests := []struct {
		name     string
		r, x     int
		center   board.Center
		expected []Action
	}{
		{"in place", 0, 4, board.Center{X: 4, Y: 1}, []Action{Drop}},
		{"left", 0, 1, board.Center{X: 4, Y: 1}, []Action{Left, Left, Left, Drop}},
		{"right", 0, 6, board.Center{X: 4, Y: 1}, []Action{Right, Right, Drop}},
		{"one turn", 1, 4, board.Center{X: 4, Y: 1}, []Action{Clockwise, Drop}},
		{"two turns", 2, 5, board.Center{X: 4, Y: 1}, []Action{Clockwise, Clockwise, Right, Drop}},
		{"fourth orientation", 3, 4, board.Center{X: 4, Y: 1}, []Action{Anticlockwise, Drop}},
		{"half centre left edge", 0, 0, board.Center{X: 4.5, Y: 0.5}, []Action{Left, Left, Left, Left, Drop}},
		{"half centre own column", 0, 4, board.Center{X: 4.5, Y: 0.5}, []Action{Drop}},
		{"half centre right", 0, 8, board.Center{X: 4.5, Y: 0.5}, []Action{Right, Right, Right, Right, Drop}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := movesFor(tc.r, tc.x, tc.center)
			if !slices.Equal(got, tc.expected) {
				t.Errorf("movesFor(%d, %d, %+v) = %v, expected %v", tc.r, tc.x, tc.center, got, tc.expected)
			}
		})
	}
}

func TestCandidatesOrder(t *testing.T) {
	cands := candidates(board.Center{X: 2, Y: 1}, 5)
	if len(cands) != 4*5 {
		t.Fatalf("len(candidates) = %d, expected 20", len(cands))
	}
	for i, c := range cands {
		if c.rotation != i/5 || c.column != i%5 {
			t.Errorf("candidate %d = (%d, %d), expected (%d, %d)", i, c.rotation, c.column, i/5, i%5)
		}
		drops := 0
		for _, m := range c.moves {
			if m == Drop {
				drops++
			}
		}
		if drops != 1 || c.moves[len(c.moves)-1] != Drop {
			t.Errorf("candidate %d moves %v must end with a single Drop", i, c.moves)
		}
		if c.rotation == 3 && (c.moves[0] != Anticlockwise || slices.Contains(c.moves, Clockwise)) {
			t.Errorf("candidate %d moves %v, expected one Anticlockwise", i, c.moves)
		}
	}
}

func TestChooseActionsPrefersEdgeForO(t *testing.T) {
	b := spawned(t, board.New(10, 20), board.KindO)

	got := NewHeuristic(Options{}).ChooseActions(b)
	expected := []Action{Left, Left, Left, Left, Drop}
	if !slices.Equal(got, expected) {
		t.Errorf("ChooseActions() = %v, expected %v", got, expected)
	}
}

func TestChooseActionsCompletesRow(t *testing.T) {
	e := gridOf(
		"....",
		"....",
		"....",
		"....",
		"....",
		".###",
	)
	b := spawned(t, e, board.KindI)

	// Only the anticlockwise turn puts the vertical I next to the gap.
	got := NewHeuristic(Options{}).ChooseActions(b)
	expected := []Action{Anticlockwise, Left, Drop}
	if !slices.Equal(got, expected) {
		t.Fatalf("ChooseActions() = %v, expected %v", got, expected)
	}

	for _, a := range got {
		if err := a.Apply(b); err != nil {
			t.Fatalf("Apply(%s) failed: %v", a, err)
		}
	}
	if f := Measure(b); f.CompleteRows != 1 || f.Holes != 0 {
		t.Errorf("after placement Measure() = %+v", f)
	}
}

func TestChooseActionsDoesNotMutateBoard(t *testing.T) {
	e := gridOf(
		"......",
		"......",
		"......",
		"......",
		"#.##..",
		"##.###",
	)
	b := spawned(t, e, board.KindT)
	before := b.String()
	center, _ := b.Center()

	NewHeuristic(Options{}).ChooseActions(b)

	if after := b.String(); after != before {
		t.Errorf("board changed:\n%s\nexpected:\n%s", after, before)
	}
	if c, _ := b.Center(); c != center {
		t.Errorf("Center() = %+v, expected %+v", c, center)
	}
}

func TestChooseActionsDeterministic(t *testing.T) {
	for _, k := range board.Kinds {
		t.Run(k.String(), func(t *testing.T) {
			e := gridOf(
				"........",
				"........",
				"........",
				"........",
				"#.......",
				"##..#..#",
				"###.##.#",
			)
			b := spawned(t, e, k)
			h := NewHeuristic(Options{})

			first := h.ChooseActions(b)
			second := h.ChooseActions(b)
			third := NewHeuristic(Options{}).ChooseActions(b.Clone())
			if !slices.Equal(first, second) || !slices.Equal(first, third) {
				t.Errorf("ChooseActions() not deterministic: %v, %v, %v", first, second, third)
			}
			if len(first) == 0 || first[len(first)-1] != Drop {
				t.Errorf("ChooseActions() = %v, expected a trailing Drop", first)
			}
		})
	}
}

func TestChooseActionsTieKeepsFirst(t *testing.T) {
	b := stubBoard{width: 5, height: 4, center: board.Center{X: 2, Y: 1}}

	got := NewHeuristic(Options{}).ChooseActions(b)
	expected := []Action{Left, Left, Drop}
	if !slices.Equal(got, expected) {
		t.Errorf("ChooseActions() = %v, expected %v", got, expected)
	}
}

func TestChooseActionsSkipsRejectedCandidates(t *testing.T) {
	b := stubBoard{
		width:        5,
		height:       4,
		center:       board.Center{X: 2, Y: 1},
		rejectMove:   map[board.Direction]bool{board.Left: true},
		rejectRotate: true,
	}

	got := NewHeuristic(Options{}).ChooseActions(b)
	expected := []Action{Drop}
	if !slices.Equal(got, expected) {
		t.Errorf("ChooseActions() = %v, expected %v", got, expected)
	}
}

func TestChooseActionsNothingPossible(t *testing.T) {
	tests := []struct {
		name string
		b    Board
	}{
		{"no falling piece", FromEngine(board.New(10, 20))},
		{"stub without piece", stubBoard{width: 4, height: 4, noPiece: true}},
		{"every drop rejected", stubBoard{
			width:      4,
			height:     4,
			center:     board.Center{X: 1, Y: 1},
			rejectMove: map[board.Direction]bool{board.Drop: true},
		}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			for _, p := range []Player{NewHeuristic(Options{}), NewRandom(Options{Seed: 1})} {
				if got := p.ChooseActions(tc.b); got != nil {
					t.Errorf("%s.ChooseActions() = %v, expected nil", p.Name(), got)
				}
			}
		})
	}
}

func TestChooseActionsNearlyFullBoard(t *testing.T) {
	e := gridOf(
		"....",
		"....",
		"####",
		"####",
	)
	b := spawned(t, e, board.KindO)

	got := NewHeuristic(Options{}).ChooseActions(b)
	if len(got) == 0 || got[len(got)-1] != Drop {
		t.Errorf("ChooseActions() = %v, expected a placement ending in Drop", got)
	}
}

func TestChooseActionsWithTrace(t *testing.T) {
	var buf strings.Builder
	logger := log.New(&buf)
	logger.SetLevel(log.DebugLevel)

	b := spawned(t, board.New(6, 8), board.KindT)
	got := NewHeuristic(Options{Logger: logger, DumpBoards: true}).ChooseActions(b)
	if got == nil {
		t.Fatal("ChooseActions() = nil")
	}
	out := buf.String()
	if !strings.Contains(out, "candidate") || !strings.Contains(out, "chose placement") {
		t.Errorf("trace missing entries:\n%s", out)
	}
	if !strings.Contains(out, "#") {
		t.Errorf("trace missing board dump:\n%s", out)
	}
}

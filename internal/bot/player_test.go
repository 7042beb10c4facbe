package bot

import (
	"slices"
	"strings"
	"testing"

	"github.com/vovakirdan/blockpilot/internal/games/tetris/board"
)

func TestNew(t *testing.T) {
	for _, name := range Names() {
		p, err := New(name, Options{})
		if err != nil {
			t.Fatalf("New(%q) failed: %v", name, err)
		}
		if p.Name() != name {
			t.Errorf("New(%q).Name() = %q", name, p.Name())
		}
	}

	_, err := New("oracle", Options{})
	if err == nil {
		t.Fatal("New(oracle) should fail")
	}
	if !strings.Contains(err.Error(), HeuristicName) {
		t.Errorf("error %q should list known players", err)
	}
}

func TestNames(t *testing.T) {
	expected := []string{HeuristicName, RandomName}
	if got := Names(); !slices.Equal(got, expected) {
		t.Errorf("Names() = %v, expected %v", got, expected)
	}
}

func TestRandomIsSeeded(t *testing.T) {
	b := spawned(t, board.New(10, 20), board.KindT)

	run := func(seed int64) [][]Action {
		p := NewRandom(Options{Seed: seed})
		var out [][]Action
		for range 20 {
			out = append(out, p.ChooseActions(b))
		}
		return out
	}

	first, second := run(7), run(7)
	for i := range first {
		if !slices.Equal(first[i], second[i]) {
			t.Fatalf("choice %d differs for the same seed: %v vs %v", i, first[i], second[i])
		}
	}

	distinct := map[string]bool{}
	for _, moves := range first {
		if len(moves) == 0 || moves[len(moves)-1] != Drop {
			t.Fatalf("ChooseActions() = %v, expected a trailing Drop", moves)
		}
		if _, ok := simulate(b, moves); !ok {
			t.Errorf("random choice %v is not a legal placement", moves)
		}
		distinct[fmtActions(moves)] = true
	}
	if len(distinct) < 2 {
		t.Errorf("20 random choices produced %d distinct placements", len(distinct))
	}
}

func fmtActions(moves []Action) string {
	parts := make([]string, len(moves))
	for i, m := range moves {
		parts[i] = m.String()
	}
	return strings.Join(parts, ",")
}

package bot

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/blockpilot/internal/games/tetris/board"
)

// HeuristicName is the registered name of the heuristic search player.
const HeuristicName = "heuristic"

// orientations is the number of rotation indices tried per piece.
const orientations = 4

// candidate is one (rotation, column) hypothesis and the moves that reach it.
type candidate struct {
	rotation int
	column   int
	moves    []Action
}

// candidates enumerates every hypothesis for a piece centred at c on a board
// of the given width: rotation outer, column inner.
func candidates(c board.Center, width int) []candidate {
	out := make([]candidate, 0, orientations*width)
	for r := range orientations {
		for x := range width {
			out = append(out, candidate{rotation: r, column: x, moves: movesFor(r, x, c)})
		}
	}
	return out
}

// movesFor builds the action sequence that rotates the piece to index r,
// shifts its centre to column x and drops it.
func movesFor(r, x int, c board.Center) []Action {
	var moves []Action

	// The fourth orientation is reached the short way round.
	if r < 3 {
		for range r {
			moves = append(moves, Clockwise)
		}
	} else {
		moves = append(moves, Anticlockwise)
	}

	offset := float64(x) - c.X
	if c.BetweenColumns() {
		offset += 0.5
	}
	steps := int(offset)
	if steps < 0 {
		steps = -steps
	}
	shift := Left
	if offset > 0 {
		shift = Right
	}
	for range steps {
		moves = append(moves, shift)
	}

	return append(moves, Drop)
}

// simulate applies moves to a clone of b. It reports false when any move
// is rejected by the engine.
func simulate(b Board, moves []Action) (Board, bool) {
	sim := b.Clone()
	for _, m := range moves {
		if err := m.Apply(sim); err != nil {
			return nil, false
		}
	}
	return sim, true
}

// Heuristic picks the placement whose resulting board scores highest.
type Heuristic struct {
	logger *log.Logger
	dump   bool
}

// NewHeuristic creates the heuristic search player.
func NewHeuristic(opts Options) *Heuristic {
	return &Heuristic{
		logger: opts.logger(),
		dump:   opts.DumpBoards,
	}
}

// Name returns "heuristic".
func (h *Heuristic) Name() string {
	return HeuristicName
}

// ChooseActions evaluates every candidate on a private clone of b.
// Ties keep the earliest candidate in enumeration order.
func (h *Heuristic) ChooseActions(b Board) []Action {
	center, err := b.Center()
	if err != nil {
		h.logger.Debug("nothing to place", "err", err)
		return nil
	}

	var (
		best      []Action
		bestScore int
		found     bool
	)

	for _, cand := range candidates(center, b.Width()) {
		sim, ok := simulate(b, cand.moves)
		if !ok {
			continue
		}

		score := Evaluate(sim)
		h.logger.Debug("candidate", "rotation", cand.rotation, "column", cand.column, "score", score)
		if h.dump {
			h.logger.Debug("simulated board\n" + sim.String())
		}

		if !found || score > bestScore {
			best, bestScore, found = cand.moves, score, true
		}
	}

	if found {
		h.logger.Debug("chose placement", "score", bestScore, "moves", len(best))
	}
	return best
}

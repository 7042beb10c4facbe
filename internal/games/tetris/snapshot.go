package tetris

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StatePaused      GameStateType = "paused"
	StateGameOver    GameStateType = "game_over"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick     uint64
	Score    int
	Lines    int
	Level    int
	Pieces   int
	Interval int // Ticks per gravity step
	Falling  string
	Next     string
	Autoplay bool
	Pilot    string
	Board    string // Debug dump of the well
	State    GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.gameOver:
		state = StateGameOver
	case g.paused:
		state = StatePaused
	}

	falling := ""
	if p, ok := g.board.Falling(); ok {
		falling = p.Kind.String()
	}

	return Snapshot{
		Tick:     g.tick,
		Score:    g.score,
		Lines:    g.lines,
		Level:    g.level,
		Pieces:   g.pieces,
		Interval: g.interval,
		Falling:  falling,
		Next:     g.next.String(),
		Autoplay: g.autoplay,
		Pilot:    g.pilot.Name(),
		Board:    g.board.String(),
		State:    state,
	}
}

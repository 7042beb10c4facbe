// Package tetris implements the falling-block game on top of the board
// engine, including the autoplay mode where the pilot takes control.
package tetris

import (
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/blockpilot/internal/bot"
	"github.com/vovakirdan/blockpilot/internal/config"
	"github.com/vovakirdan/blockpilot/internal/core"
	"github.com/vovakirdan/blockpilot/internal/games/tetris/board"
	"github.com/vovakirdan/blockpilot/internal/registry"
)

// Game IDs. Scores are stored under the autoplay ID as soon as the pilot
// has placed a piece, so human and pilot records never mix.
const (
	IDManual   = "tetris"
	IDAutoplay = "tetris_autoplay"
)

func init() {
	registry.Register(IDManual, "Blockpilot", func(opts registry.Options) (registry.Game, error) {
		return FromOptions(opts, false)
	})
	registry.Register(IDAutoplay, "Blockpilot (Pilot)", func(opts registry.Options) (registry.Game, error) {
		return FromOptions(opts, true)
	})
}

// Game implements the falling-block game.
type Game struct {
	cfg        config.TetrisConfig
	difficulty *config.DifficultyManager
	pilot      bot.Player
	logger     *log.Logger
	autoStart  bool

	rng   *rand.Rand
	bag   []board.Kind
	next  board.Kind
	board *board.Board

	tick          uint64
	score         int
	lines         int
	level         int
	pieces        int
	interval      int
	gravityTicker int

	// Pilot state
	autoplay     bool
	piloted      bool // The pilot placed at least one piece this game
	queue        []bot.Action
	actionTicker int

	// Screen dimensions
	screenW int
	screenH int

	gameOver bool
	paused   bool
	tooSmall bool
}

// New creates a game with the given configuration and pilot.
// A nil logger discards output.
func New(cfg config.TetrisConfig, pilot bot.Player, logger *log.Logger) *Game {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Game{
		cfg:        cfg,
		difficulty: config.NewDifficultyManager(cfg.Difficulty),
		pilot:      pilot,
		logger:     logger,
	}
}

// FromOptions loads the configuration, applies the difficulty preset and
// builds the pilot named in opts or in the config.
func FromOptions(opts registry.Options, autoplay bool) (*Game, error) {
	cfg, err := config.LoadTetris(opts.ConfigPath)
	if err != nil {
		return nil, err
	}

	preset, err := config.ParsePreset(opts.Difficulty)
	if err != nil {
		return nil, err
	}
	if preset != "" {
		config.ApplyTetrisPreset(&cfg, preset)
	}

	name := cfg.Bot.Player
	if opts.Player != "" {
		name = opts.Player
	}
	pilot, err := bot.New(name, bot.Options{
		Logger:     opts.Logger,
		DumpBoards: cfg.Bot.Trace,
	})
	if err != nil {
		return nil, err
	}

	g := New(cfg, pilot, opts.Logger)
	g.autoStart = autoplay
	return g, nil
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.autoStart || g.piloted {
		return IDAutoplay
	}
	return IDManual
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.autoStart {
		return "Blockpilot (Pilot)"
	}
	return "Blockpilot"
}

// Pilot returns the player used for autoplay.
func (g *Game) Pilot() bot.Player {
	return g.pilot
}

// Reset initializes/restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.bag = nil
	g.board = board.New(g.cfg.Board.Width, g.cfg.Board.Height)
	g.tick = 0
	g.score = 0
	g.lines = 0
	g.level = 1
	g.pieces = 0
	g.gravityTicker = 0
	g.interval = g.gravityInterval()
	g.autoplay = g.autoStart
	g.piloted = false
	g.queue = nil
	g.actionTicker = 0
	g.gameOver = false
	g.paused = false
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.tooSmall = g.screenW < g.requiredWidth() || g.screenH < g.requiredHeight()

	g.next = g.draw()
	g.spawnNext()
}

// draw takes the next kind from the 7-bag, refilling it when empty.
func (g *Game) draw() board.Kind {
	if len(g.bag) == 0 {
		g.bag = make([]board.Kind, len(board.Kinds))
		for i, j := range g.rng.Perm(len(board.Kinds)) {
			g.bag[i] = board.Kinds[j]
		}
	}
	k := g.bag[0]
	g.bag = g.bag[1:]
	return k
}

// spawnNext puts the queued piece on the board. A piece that does not fit
// ends the game.
func (g *Game) spawnNext() {
	kind := g.next
	g.next = g.draw()
	if err := g.board.Spawn(kind); err != nil {
		g.logger.Debug("spawn failed", "kind", kind, "err", err)
		g.gameOver = true
	}
}

// gravityInterval returns the current ticks per row.
func (g *Game) gravityInterval() int {
	return g.difficulty.Interval(g.cfg.Gravity.BaseInterval, g.cfg.Gravity.MinInterval, config.Progress{
		Lines: g.lines,
		Score: g.score,
		Ticks: int(g.tick),
	})
}

// Step advances the game by one tick.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	g.tick++

	// Handle restart
	if input.Has(core.ActionRestart) && g.gameOver {
		g.Reset(core.RuntimeConfig{
			Seed:    g.rng.Int63(),
			ScreenW: g.screenW,
			ScreenH: g.screenH,
		})
		return core.StepResult{State: g.State()}
	}

	if g.gameOver || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if input.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if input.Has(core.ActionAutoplay) {
		g.SetAutoplay(!g.autoplay)
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	var cleared int
	if g.autoplay {
		cleared = g.stepPilot()
	} else {
		cleared = g.stepPlayer(input)
	}

	if !g.gameOver {
		cleared += g.stepGravity()
	}

	return core.StepResult{State: g.State(), LinesCleared: cleared}
}

// SetAutoplay hands control to the pilot or back to the player.
func (g *Game) SetAutoplay(on bool) {
	if g.autoplay == on {
		return
	}
	g.autoplay = on
	g.queue = nil
	g.actionTicker = 0
	g.logger.Debug("autoplay toggled", "on", on, "pilot", g.pilot.Name())
}

// stepPlayer applies human input to the falling piece.
func (g *Game) stepPlayer(input core.InputFrame) int {
	switch {
	case input.Has(core.ActionHardDrop):
		if err := g.board.Move(board.Drop); err == nil {
			return g.settle()
		}
		return 0
	case input.Has(core.ActionDown):
		if err := g.board.Move(board.Down); err != nil {
			return g.lockPiece()
		}
		g.score += g.cfg.Scoring.SoftDropPoints
		g.gravityTicker = 0
	}

	if input.Has(core.ActionLeft) {
		_ = g.board.Move(board.Left)
	}
	if input.Has(core.ActionRight) {
		_ = g.board.Move(board.Right)
	}
	if input.Has(core.ActionRotateCW) {
		_ = g.board.Rotate(board.Clockwise)
	}
	if input.Has(core.ActionRotateCCW) {
		_ = g.board.Rotate(board.Anticlockwise)
	}
	return 0
}

// stepPilot feeds one queued pilot action every action interval, asking the
// pilot for a new plan when the queue runs dry.
func (g *Game) stepPilot() int {
	g.actionTicker++
	if g.actionTicker < g.cfg.Bot.ActionInterval {
		return 0
	}
	g.actionTicker = 0

	if len(g.queue) == 0 {
		g.queue = g.plan()
	}

	action := g.queue[0]
	g.queue = g.queue[1:]
	if err := action.Apply(bot.FromEngine(g.board)); err != nil {
		// Gravity may have moved the piece since the plan was made.
		g.logger.Debug("pilot action rejected", "action", action, "err", err)
	}

	if _, falling := g.board.Falling(); !falling {
		g.piloted = true
		return g.settle()
	}
	return 0
}

// plan asks the pilot where to put the falling piece. When no placement is
// possible the piece is dropped where it is.
func (g *Game) plan() []bot.Action {
	moves := g.pilot.ChooseActions(bot.FromEngine(g.board))
	if moves == nil {
		g.logger.Debug("pilot found no placement, dropping in place")
		return []bot.Action{bot.Drop}
	}
	return moves
}

// stepGravity moves the piece down one row every interval ticks and locks
// it when it cannot fall any further.
func (g *Game) stepGravity() int {
	g.gravityTicker++
	if g.gravityTicker < g.interval {
		return 0
	}
	g.gravityTicker = 0

	if err := g.board.Move(board.Down); err != nil {
		return g.lockPiece()
	}
	return 0
}

// lockPiece locks the falling piece in place and settles the board.
func (g *Game) lockPiece() int {
	if err := g.board.Lock(); err != nil {
		return 0
	}
	return g.settle()
}

// settle runs after a piece has locked: clear rows, score them, update the
// level and gravity, then spawn the next piece.
func (g *Game) settle() int {
	n := g.board.ClearLines()
	g.pieces++
	g.queue = nil
	g.actionTicker = 0

	if n > 0 {
		g.score += g.cfg.Scoring.Points(n, g.level)
		g.lines += n
		if per := g.cfg.Scoring.LinesPerLevel; per > 0 {
			g.level = 1 + g.lines/per
		}
	}
	g.interval = g.gravityInterval()
	g.gravityTicker = 0

	g.spawnNext()
	return n
}

// PlaceNext lets the pilot place the falling piece immediately, without
// waiting for ticks. The bench uses it to play games headlessly.
func (g *Game) PlaceNext() core.StepResult {
	if g.gameOver {
		return core.StepResult{State: g.State()}
	}

	b := bot.FromEngine(g.board)
	for _, action := range g.plan() {
		if err := action.Apply(b); err != nil {
			g.logger.Debug("pilot action rejected", "action", action, "err", err)
		}
	}
	if _, falling := g.board.Falling(); falling {
		_ = g.board.Move(board.Drop)
	}

	g.tick++
	g.piloted = true
	cleared := g.settle()
	return core.StepResult{State: g.State(), LinesCleared: cleared}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Lines:    g.lines,
		Level:    g.level,
		GameOver: g.gameOver,
		Paused:   g.paused,
		Autoplay: g.autoplay,
	}
}

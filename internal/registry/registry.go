// Package registry maps game IDs to factories. Game packages register
// themselves from init, so the platform and CLI never import them by name.
package registry

import (
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/samber/lo"

	"github.com/vovakirdan/blockpilot/internal/core"
)

// Game is a fixed-tick simulation driven by the platform.
// Implementations must not depend on Bubble Tea.
type Game interface {
	// ID names the game in the CLI and on scoreboards.
	ID() string
	Title() string

	// Reset starts a fresh game. It is called before the first Step
	// and again whenever the platform restarts the game.
	Reset(cfg core.RuntimeConfig)

	// Step advances one tick with the actions gathered since the last one.
	Step(in core.InputFrame) core.StepResult

	// Render draws the game into dst.
	Render(dst *core.Screen)

	State() core.GameState
}

// Resizable games adapt to a new terminal size in place.
// Games without it are restarted on resize.
type Resizable interface {
	Resize(width, height int)
}

// Options are handed to a factory. Zero values select the game's defaults.
type Options struct {
	ConfigPath string      // Config file, empty for the search order
	Difficulty string      // Preset name
	Player     string      // Pilot name, empty for the configured one
	Logger     *log.Logger // Nil discards game logs
}

// Factory builds a game.
type Factory func(opts Options) (Game, error)

// GameInfo describes a registered game.
type GameInfo struct {
	ID    string
	Title string
}

var (
	mu    sync.RWMutex
	games = map[string]registration{}
)

type registration struct {
	title   string
	factory Factory
}

// Register adds a game. Registering an ID twice panics.
func Register(id, title string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, dup := games[id]; dup {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	games[id] = registration{title: title, factory: f}
}

// List returns every registered game ordered by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	infos := lo.MapToSlice(games, func(id string, r registration) GameInfo {
		return GameInfo{ID: id, Title: r.title}
	})
	slices.SortFunc(infos, func(a, b GameInfo) int { return strings.Compare(a.ID, b.ID) })
	return infos
}

// Create builds a new instance of the game registered as id.
func Create(id string, opts Options) (Game, error) {
	mu.RLock()
	r, ok := games[id]
	mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}

	g, err := r.factory(opts)
	if err != nil {
		return nil, fmt.Errorf("registry: create %s: %w", id, err)
	}
	return g, nil
}

// Exists reports whether id is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()
	_, ok := games[id]
	return ok
}

// Title returns the display name of id, or id itself when unknown.
func Title(id string) string {
	mu.RLock()
	defer mu.RUnlock()
	if r, ok := games[id]; ok {
		return r.title
	}
	return id
}

// Package bot is the automated pilot: it searches every placement of the
// falling piece, scores the resulting boards and returns the action
// sequence for the best one.
package bot

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/samber/lo"
)

// Player decides how to place the falling piece.
type Player interface {
	// Name identifies the player in configs, the CLI and stored runs.
	Name() string

	// ChooseActions returns the rotate/shift/drop sequence for the falling
	// piece, or nil if no placement is possible. It must not modify b.
	ChooseActions(b Board) []Action
}

// Options configure player construction.
type Options struct {
	// Seed drives players that make random choices.
	Seed int64

	// Logger receives per-candidate traces at debug level.
	// Nil discards them.
	Logger *log.Logger

	// DumpBoards adds the simulated board of every candidate to the trace.
	DumpBoards bool
}

// logger returns the configured logger or one that discards output.
func (o Options) logger() *log.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return log.New(io.Discard)
}

// factories maps player names to constructors.
var factories = map[string]func(Options) Player{
	HeuristicName: func(o Options) Player { return NewHeuristic(o) },
	RandomName:    func(o Options) Player { return NewRandom(o) },
}

// New creates the player registered under name.
func New(name string, opts Options) (Player, error) {
	f, ok := factories[name]
	if !ok {
		return nil, fmt.Errorf("bot: unknown player %q (available: %s)", name, strings.Join(Names(), ", "))
	}
	return f(opts), nil
}

// Names returns the registered player names, sorted.
func Names() []string {
	names := lo.Keys(factories)
	slices.Sort(names)
	return names
}

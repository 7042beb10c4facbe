package registry

import (
	"errors"
	"strings"
	"testing"

	"github.com/vovakirdan/blockpilot/internal/core"
)

type fakeGame struct {
	id   string
	opts Options
}

func (f *fakeGame) ID() string                           { return f.id }
func (f *fakeGame) Title() string                        { return "Fake" }
func (f *fakeGame) Reset(core.RuntimeConfig)             {}
func (f *fakeGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (f *fakeGame) Render(*core.Screen)                  {}
func (f *fakeGame) State() core.GameState                { return core.GameState{} }

func TestRegisterAndCreate(t *testing.T) {
	Register("zz_fake", "Fake Game", func(opts Options) (Game, error) {
		return &fakeGame{id: "zz_fake", opts: opts}, nil
	})

	if !Exists("zz_fake") {
		t.Fatal("Exists() = false after Register")
	}
	if got := Title("zz_fake"); got != "Fake Game" {
		t.Errorf("Title() = %q", got)
	}
	if got := Title("missing"); got != "missing" {
		t.Errorf("Title(missing) = %q, expected the ID", got)
	}

	g, err := Create("zz_fake", Options{Player: "random"})
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if fg := g.(*fakeGame); fg.opts.Player != "random" {
		t.Errorf("options not passed to factory: %+v", fg.opts)
	}

	found := false
	for _, info := range List() {
		if info.ID == "zz_fake" {
			found = info.Title == "Fake Game"
		}
	}
	if !found {
		t.Errorf("List() missing zz_fake: %+v", List())
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	f := func(Options) (Game, error) { return &fakeGame{}, nil }
	Register("zz_dup", "Dup", f)

	defer func() {
		if recover() == nil {
			t.Error("second Register() should panic")
		}
	}()
	Register("zz_dup", "Dup", f)
}

func TestCreateErrors(t *testing.T) {
	if _, err := Create("zz_unknown", Options{}); err == nil || !strings.Contains(err.Error(), "unknown game") {
		t.Errorf("Create(unknown) error = %v", err)
	}

	boom := errors.New("boom")
	Register("zz_broken", "Broken", func(Options) (Game, error) { return nil, boom })
	if _, err := Create("zz_broken", Options{}); !errors.Is(err, boom) {
		t.Errorf("Create(broken) error = %v, expected wrapped boom", err)
	}
}

func TestListSorted(t *testing.T) {
	Register("zz_b", "B", func(Options) (Game, error) { return &fakeGame{}, nil })
	Register("zz_a", "A", func(Options) (Game, error) { return &fakeGame{}, nil })

	list := List()
	for i := 1; i < len(list); i++ {
		if list[i-1].ID > list[i].ID {
			t.Errorf("List() not sorted: %q before %q", list[i-1].ID, list[i].ID)
		}
	}
}

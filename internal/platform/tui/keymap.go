package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/blockpilot/internal/core"
)

// MenuAction is what a key means on the title menu.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionScoreboard
	MenuActionQuit
)

type actionBinding struct {
	action core.Action
	key.Binding
}

type menuBinding struct {
	action MenuAction
	key.Binding
}

// KeyMapper turns key presses into game and menu actions.
// Q and Ctrl+C quit on every screen.
type KeyMapper struct {
	quit key.Binding
	game []actionBinding
	menu []menuBinding
}

func bind(keys ...string) key.Binding {
	return key.NewBinding(key.WithKeys(keys...))
}

// NewKeyMapper returns the default bindings: arrows or HJKL to move and
// rotate, Z for the other way, Space to drop.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{
		quit: bind("q", "ctrl+c"),
		game: []actionBinding{
			{core.ActionLeft, bind("left", "h")},
			{core.ActionRight, bind("right", "l")},
			{core.ActionDown, bind("down", "j")},
			{core.ActionRotateCW, bind("up", "k", "x")},
			{core.ActionRotateCCW, bind("z")},
			{core.ActionHardDrop, bind(" ")},
			{core.ActionAutoplay, bind("a")},
			{core.ActionConfirm, bind("enter")},
			{core.ActionBack, bind("b", "esc")},
			{core.ActionPause, bind("p")},
			{core.ActionRestart, bind("r")},
		},
		menu: []menuBinding{
			{MenuActionUp, bind("up", "k", "w")},
			{MenuActionDown, bind("down", "j", "s")},
			{MenuActionSelect, bind("enter", " ")},
			{MenuActionBack, bind("b", "esc")},
			{MenuActionScoreboard, bind("tab")},
		},
	}
}

// MapKey returns the game action for msg, or ActionNone, and whether msg
// asks to quit.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (core.Action, bool) {
	if key.Matches(msg, km.quit) {
		return core.ActionQuit, true
	}
	for _, b := range km.game {
		if key.Matches(msg, b.Binding) {
			return b.action, false
		}
	}
	return core.ActionNone, false
}

// MapKeyToFrame records the action for msg in frame and reports a quit.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action, quit := km.MapKey(msg)
	frame.Set(action)
	return quit
}

// MapKeyToMenuAction returns the menu action for msg.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	if key.Matches(msg, km.quit) {
		return MenuActionQuit
	}
	for _, b := range km.menu {
		if key.Matches(msg, b.Binding) {
			return b.action
		}
	}
	return MenuActionNone
}

package core

import "strings"

// Action is a player intent, decoupled from the key that produced it.
type Action int

// Key hints list the default bindings.
const (
	ActionNone      Action = iota
	ActionLeft             // H, Left
	ActionRight            // L, Right
	ActionDown             // J, Down: soft drop one row
	ActionRotateCW         // K, Up, X
	ActionRotateCCW        // Z
	ActionHardDrop         // Space
	ActionAutoplay         // A: hand control to the pilot and back
	ActionConfirm          // Enter
	ActionBack             // B, Esc
	ActionRestart          // R
	ActionQuit             // Q, Ctrl+C
	ActionPause            // P

	actionCount
)

var actionNames = [actionCount]string{
	"None", "Left", "Right", "Down", "RotateCW", "RotateCCW", "HardDrop",
	"Autoplay", "Confirm", "Back", "Restart", "Quit", "Pause",
}

func (a Action) String() string {
	if a < 0 || a >= actionCount {
		return "Unknown"
	}
	return actionNames[a]
}

// InputFrame collects the actions triggered during one simulation tick.
// The zero value is an empty frame. ActionNone is never recorded.
type InputFrame struct {
	set uint32
}

// NewInputFrame returns an empty frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// Set records a.
func (f *InputFrame) Set(a Action) {
	if a > ActionNone && a < actionCount {
		f.set |= 1 << a
	}
}

// Has reports whether a was recorded.
func (f InputFrame) Has(a Action) bool {
	return a > ActionNone && a < actionCount && f.set&(1<<a) != 0
}

// Empty reports whether nothing was recorded.
func (f InputFrame) Empty() bool {
	return f.set == 0
}

// Clear forgets every action.
func (f *InputFrame) Clear() {
	f.set = 0
}

func (f InputFrame) String() string {
	var names []string
	for a := ActionNone + 1; a < actionCount; a++ {
		if f.Has(a) {
			names = append(names, a.String())
		}
	}
	return "[" + strings.Join(names, " ") + "]"
}

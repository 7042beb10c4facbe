// Package config provides YAML-based game configuration loading and
// difficulty management for blockpilot.
package config

import "fmt"

// TetrisConfig contains all configuration for the falling-block game.
type TetrisConfig struct {
	Board      TetrisBoard      `yaml:"board"`
	Gravity    TetrisGravity    `yaml:"gravity"`
	Scoring    TetrisScoring    `yaml:"scoring"`
	Bot        TetrisBot        `yaml:"bot"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// TetrisBoard defines the well dimensions in cells.
type TetrisBoard struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// TetrisGravity defines how fast pieces fall, in ticks per row.
type TetrisGravity struct {
	BaseInterval int `yaml:"base_interval"`
	MinInterval  int `yaml:"min_interval"`
}

// TetrisScoring defines points and level progression.
type TetrisScoring struct {
	LinePoints     []int `yaml:"line_points"` // Indexed by rows cleared at once
	LinesPerLevel  int   `yaml:"lines_per_level"`
	SoftDropPoints int   `yaml:"soft_drop_points"` // Per row moved down by the player
}

// TetrisBot defines how the pilot plays when autoplay is on.
type TetrisBot struct {
	Player         string `yaml:"player"`
	ActionInterval int    `yaml:"action_interval"` // Ticks between pilot actions
	Trace          bool   `yaml:"trace"`           // Dump every simulated board at debug level
}

// Points returns the score for clearing n rows at the given level.
func (s TetrisScoring) Points(n, level int) int {
	if n <= 0 {
		return 0
	}
	if n >= len(s.LinePoints) {
		n = len(s.LinePoints) - 1
	}
	if n < 0 {
		return 0
	}
	return s.LinePoints[n] * level
}

// Validate reports configuration values the game cannot run with.
func (c TetrisConfig) Validate() error {
	if c.Board.Width < 4 || c.Board.Height < 4 {
		return fmt.Errorf("config: board %dx%d is too small (minimum 4x4)", c.Board.Width, c.Board.Height)
	}
	if c.Gravity.BaseInterval < 1 || c.Gravity.MinInterval < 1 {
		return fmt.Errorf("config: gravity intervals must be positive")
	}
	if c.Gravity.MinInterval > c.Gravity.BaseInterval {
		return fmt.Errorf("config: gravity min_interval %d exceeds base_interval %d",
			c.Gravity.MinInterval, c.Gravity.BaseInterval)
	}
	if c.Bot.ActionInterval < 1 {
		return fmt.Errorf("config: bot action_interval must be positive")
	}
	return nil
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases during a game.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "lines", "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Lines/score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Multiplier added to fall speed at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// Presets lists the known difficulty presets.
var Presets = []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed}

// ParsePreset converts a CLI value into a preset. Empty means no preset.
func ParsePreset(s string) (DifficultyPreset, error) {
	if s == "" {
		return "", nil
	}
	for _, p := range Presets {
		if string(p) == s {
			return p, nil
		}
	}
	return "", fmt.Errorf("config: unknown difficulty %q (use easy, normal, hard or fixed)", s)
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

package config

import (
	_ "embed"
)

//go:embed defaults/tetris.yaml
var defaultTetrisYAML []byte

// DefaultTetrisConfig returns the default game configuration.
func DefaultTetrisConfig() TetrisConfig {
	return TetrisConfig{
		Board: TetrisBoard{
			Width:  10,
			Height: 20,
		},
		Gravity: TetrisGravity{
			BaseInterval: 48, // 0.8s per row at 60 FPS
			MinInterval:  4,
		},
		Scoring: TetrisScoring{
			LinePoints:     []int{0, 100, 300, 500, 800},
			LinesPerLevel:  10,
			SoftDropPoints: 1,
		},
		Bot: TetrisBot{
			Player:         "heuristic",
			ActionInterval: 6,
			Trace:          false,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "lines",
				MaxAt: 150,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 8.0,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "tetris", "tetris_autoplay":
		return defaultTetrisYAML
	default:
		return nil
	}
}

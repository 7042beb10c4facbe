package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadTetris loads the game configuration.
// Search order: customPath -> ~/.blockpilot/configs/tetris.yaml -> ./configs/tetris.yaml -> embedded default.
// Fields missing from a file keep their default values.
func LoadTetris(customPath string) (TetrisConfig, error) {
	cfg := DefaultTetrisConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, cfg.Validate()
	}

	// Try user config directory
	if userCfgPath := userConfigPath("tetris.yaml"); userCfgPath != "" {
		if loaded, ok := tryLoad(userCfgPath); ok {
			return loaded, nil
		}
	}

	// Try local configs directory
	if loaded, ok := tryLoad(filepath.Join("configs", "tetris.yaml")); ok {
		return loaded, nil
	}

	// Use embedded default YAML
	embedded := DefaultTetrisConfig()
	if err := yaml.Unmarshal(defaultTetrisYAML, &embedded); err != nil || embedded.Validate() != nil {
		return DefaultTetrisConfig(), nil // Fallback to hardcoded if embed fails
	}
	return embedded, nil
}

// tryLoad reads an optional config file. Unreadable or invalid files are skipped.
func tryLoad(path string) (TetrisConfig, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return TetrisConfig{}, false
	}
	cfg := DefaultTetrisConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return TetrisConfig{}, false
	}
	if cfg.Validate() != nil {
		return TetrisConfig{}, false
	}
	return cfg, true
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".blockpilot", "configs", filename)
}

// ApplyTetrisPreset modifies the config based on a difficulty preset.
func ApplyTetrisPreset(cfg *TetrisConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}
}

package config

import "testing"

func TestDifficultyLevel(t *testing.T) {
	cfg := DifficultyConfig{
		Enabled:     true,
		Progression: ProgressionConfig{Type: "lines", MaxAt: 100},
		Scaling:     ScalingConfig{SpeedMultiplier: 3},
	}

	tests := []struct {
		name     string
		typ      string
		progress Progress
		expected float64
	}{
		{"lines start", "lines", Progress{}, 0},
		{"lines half", "lines", Progress{Lines: 50}, 0.5},
		{"lines clamped", "lines", Progress{Lines: 500}, 1},
		{"score", "score", Progress{Score: 25, Lines: 90}, 0.25},
		{"time", "time", Progress{Ticks: 100}, 1},
		{"none", "none", Progress{Lines: 50}, 0},
		{"unknown", "bogus", Progress{Lines: 50}, 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := cfg
			c.Progression.Type = tc.typ
			d := NewDifficultyManager(c)
			if got := d.Level(tc.progress); got != tc.expected {
				t.Errorf("Level(%+v) = %v, expected %v", tc.progress, got, tc.expected)
			}
		})
	}
}

func TestDifficultyInitialLevel(t *testing.T) {
	tests := []struct {
		name     string
		initial  float64
		enabled  bool
		progress Progress
		expected float64
	}{
		{"halfway from half", 0.5, true, Progress{Lines: 5}, 0.75},
		{"clamped high", 4, true, Progress{}, 1},
		{"clamped low", -2, true, Progress{}, 0},
		{"disabled ignores progress", 0.25, false, Progress{Lines: 10}, 0.25},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			d := NewDifficultyManager(DifficultyConfig{
				Enabled:      tc.enabled,
				InitialLevel: tc.initial,
				Progression:  ProgressionConfig{Type: "lines", MaxAt: 10},
			})
			if got := d.Level(tc.progress); got != tc.expected {
				t.Errorf("Level(%+v) = %v, expected %v", tc.progress, got, tc.expected)
			}
		})
	}
}

func TestDifficultyInterval(t *testing.T) {
	d := NewDifficultyManager(DefaultTetrisConfig().Difficulty)

	prev := d.Interval(48, 4, Progress{})
	if prev != 48 {
		t.Fatalf("Interval() at start = %d, expected 48", prev)
	}
	for lines := 10; lines <= 200; lines += 10 {
		got := d.Interval(48, 4, Progress{Lines: lines})
		if got > prev {
			t.Errorf("Interval() grew from %d to %d at %d lines", prev, got, lines)
		}
		if got < 4 {
			t.Errorf("Interval() = %d below minimum", got)
		}
		prev = got
	}
	if prev != 5 {
		t.Errorf("Interval() at max difficulty = %d, expected 5", prev)
	}

	fast := NewDifficultyManager(DifficultyConfig{
		Enabled:      true,
		InitialLevel: 1,
		Progression:  ProgressionConfig{Type: "none"},
		Scaling:      ScalingConfig{SpeedMultiplier: 100},
	})
	if got := fast.Interval(48, 4, Progress{}); got != 4 {
		t.Errorf("Interval() = %d, expected floor of 4", got)
	}
}

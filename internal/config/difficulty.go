package config

import "math"

// Progress holds the counters a game has reached so far.
type Progress struct {
	Lines int
	Score int
	Ticks int
}

// fraction returns how far p has come towards maxAt on the counter named
// by kind, in [0, 1]. Unknown kinds report false.
func (p Progress) fraction(kind string, maxAt int) (float64, bool) {
	var n int
	switch kind {
	case "lines":
		n = p.Lines
	case "score":
		n = p.Score
	case "time":
		n = p.Ticks
	default:
		return 0, false
	}
	return math.Min(float64(n)/float64(max(maxAt, 1)), 1), true
}

// DifficultyManager turns game progress into gravity speed.
type DifficultyManager struct {
	cfg DifficultyConfig
}

// NewDifficultyManager clamps the initial level of cfg to [0, 1].
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	cfg.InitialLevel = math.Max(0, math.Min(cfg.InitialLevel, 1))
	return &DifficultyManager{cfg: cfg}
}

// Level rises linearly from the initial level to 1 as the configured
// counter approaches MaxAt. Without progression it stays at the initial level.
func (d *DifficultyManager) Level(p Progress) float64 {
	start := d.cfg.InitialLevel
	if !d.cfg.Enabled {
		return start
	}
	f, ok := p.fraction(d.cfg.Progression.Type, d.cfg.Progression.MaxAt)
	if !ok {
		return start
	}
	return start + f*(1-start)
}

// Interval returns the ticks between gravity steps. Speed grows to
// 1+SpeedMultiplier times the base at level 1; the result stays within
// [minInterval, base].
func (d *DifficultyManager) Interval(base, minInterval int, p Progress) int {
	speed := 1 + d.Level(p)*d.cfg.Scaling.SpeedMultiplier
	if speed <= 0 {
		return base
	}
	return max(minInterval, min(base, int(math.Round(float64(base)/speed))))
}

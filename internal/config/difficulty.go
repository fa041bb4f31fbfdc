package config

import "math"

// DifficultyManager turns a run's score or elapsed ticks into a difficulty
// level and scales game parameters with it.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: clampF(cfg.InitialLevel, 0, 1),
	}
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// Level returns the current difficulty level (0.0 to 1.0).
func (d *DifficultyManager) Level(score, ticks int) float64 {
	if !d.IsEnabled() {
		return d.initialLevel
	}

	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1
	}

	var progress float64
	switch d.cfg.Progression.Type {
	case "score":
		progress = float64(score) / maxAt
	case "time":
		progress = float64(ticks) / maxAt
	default:
		return d.initialLevel
	}
	progress = clampF(progress, 0, 1)

	// Interpolate from the initial level up to 1.0.
	return d.initialLevel + progress*(1-d.initialLevel)
}

// Speed scales base from base up to base*(1+SpeedMultiplier).
func (d *DifficultyManager) Speed(base float64, score, ticks int) float64 {
	return base * (1 + d.Level(score, ticks)*d.cfg.Scaling.SpeedMultiplier)
}

// Gap shrinks base by up to GapReduction, never below min.
func (d *DifficultyManager) Gap(base, min float64, score, ticks int) float64 {
	gap := base - d.Level(score, ticks)*d.cfg.Scaling.GapReduction
	return math.Max(gap, min)
}

func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}

package config

import (
	"math"
	"testing"
)

func approx(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestDifficultyLevel(t *testing.T) {
	cfg := DifficultyConfig{
		Enabled:      true,
		InitialLevel: 0.2,
		Progression:  ProgressionConfig{Type: "score", MaxAt: 10},
		Scaling:      ScalingConfig{SpeedMultiplier: 1, GapReduction: 40},
	}

	tests := []struct {
		name  string
		cfg   DifficultyConfig
		score int
		ticks int
		want  float64
	}{
		{"start", cfg, 0, 0, 0.2},
		{"half", cfg, 5, 0, 0.6},
		{"capped", cfg, 50, 0, 1.0},
		{"time ignores score", DifficultyConfig{Enabled: true, Progression: ProgressionConfig{Type: "time", MaxAt: 100}}, 99, 25, 0.25},
		{"disabled", DifficultyConfig{InitialLevel: 0.4, Progression: ProgressionConfig{Type: "score", MaxAt: 1}}, 100, 0, 0.4},
		{"none", DifficultyConfig{Enabled: true, Progression: ProgressionConfig{Type: "none"}}, 100, 100, 0},
		{"zero max", DifficultyConfig{Enabled: true, Progression: ProgressionConfig{Type: "score"}}, 1, 0, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewDifficultyManager(tt.cfg)
			if got := d.Level(tt.score, tt.ticks); !approx(got, tt.want) {
				t.Errorf("Level(%d, %d) = %v, want %v", tt.score, tt.ticks, got, tt.want)
			}
		})
	}
}

func TestDifficultyScaling(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{
		Enabled:     true,
		Progression: ProgressionConfig{Type: "score", MaxAt: 10},
		Scaling:     ScalingConfig{SpeedMultiplier: 0.5, GapReduction: 40},
	})

	if got := d.Speed(2, 0, 0); !approx(got, 2) {
		t.Errorf("Speed at level 0 = %v, want 2", got)
	}
	if got := d.Speed(2, 10, 0); !approx(got, 3) {
		t.Errorf("Speed at level 1 = %v, want 3", got)
	}
	if got := d.Gap(120, 100, 5, 0); !approx(got, 100) {
		t.Errorf("Gap at level 0.5 = %v, want 100", got)
	}
	if got := d.Gap(120, 100, 10, 0); !approx(got, 100) {
		t.Errorf("Gap must not drop below min, got %v", got)
	}
}

package config

import "embed"

//go:embed defaults/*.yaml
var defaultFS embed.FS

// Game IDs with YAML tuning. They match the catalog slugs.
const (
	FlappyID      = "flappy-jetpack"
	GeoDashID     = "geo-dash"
	SkyDodgeID    = "sky-dodge"
	CubeRunnerID  = "cube-runner"
	EndlessRoadID = "endless-road"
	BreakoutID    = "brick-buster"
)

// Tunable lists the game IDs that read a YAML tuning file.
func Tunable() []string {
	return []string{BreakoutID, CubeRunnerID, EndlessRoadID, FlappyID, GeoDashID, SkyDodgeID}
}

// DefaultFlappyConfig returns the built-in flappy-jetpack tuning.
func DefaultFlappyConfig() FlappyConfig {
	return FlappyConfig{
		Physics: FlappyPhysics{
			Gravity:      0.3,
			Lift:         -6,
			MaxFallSpeed: 8,
			PipeSpeed:    2,
		},
		Pipes: FlappyPipes{
			Count:   3,
			Width:   60,
			Gap:     120,
			MinGap:  80,
			Spacing: 250,
			Margin:  50,
		},
		Player:     PlayerBox{X: 100, Width: 20, Height: 20},
		ScoreEvery: 125,
		Difficulty: DifficultyConfig{
			Enabled:     false,
			Progression: ProgressionConfig{Type: "score", MaxAt: 40},
			Scaling:     ScalingConfig{SpeedMultiplier: 0.5, GapReduction: 30},
		},
	}
}

// DefaultGeoDashConfig returns the built-in geo-dash tuning.
func DefaultGeoDashConfig() GeoDashConfig {
	return GeoDashConfig{
		Physics: GeoDashPhysics{
			Gravity:     0.8,
			JumpImpulse: -15,
			BaseSpeed:   5,
			SpeedStep:   0.1,
		},
		Obstacles: GeoDashObstacles{
			Count:     3,
			Spacing:   300,
			Jitter:    100,
			MinWidth:  30,
			MaxWidth:  50,
			MinHeight: 30,
			MaxHeight: 70,
		},
		Player: PlayerBox{X: 50, Width: 30, Height: 30},
		Ground: 20,
		Difficulty: DifficultyConfig{
			Enabled:     false,
			Progression: ProgressionConfig{Type: "score", MaxAt: 60},
			Scaling:     ScalingConfig{SpeedMultiplier: 0.3},
		},
	}
}

// DefaultSkyDodgeConfig returns the built-in sky-dodge tuning.
func DefaultSkyDodgeConfig() SkyDodgeConfig {
	return SkyDodgeConfig{
		Player: SkyDodgePlayer{Size: 30, Step: 20},
		Spawn: SkyDodgeSpawn{
			Interval:       60,
			IntervalStep:   5,
			MinInterval:    20,
			MinSize:        10,
			MaxSize:        30,
			MinSpeed:       1,
			MaxSpeed:       3,
			MultiplierStep: 0.1,
			PointsPerStep:  10,
		},
		Difficulty: DifficultyConfig{
			Enabled:     false,
			Progression: ProgressionConfig{Type: "time", MaxAt: 3600},
			Scaling:     ScalingConfig{SpeedMultiplier: 0.3},
		},
	}
}

// DefaultCubeRunnerConfig returns the built-in cube-runner tuning.
func DefaultCubeRunnerConfig() CubeRunnerConfig {
	return CubeRunnerConfig{
		Field: CubeField{
			Cubes:        50,
			FOV:          300,
			Depth:        1000,
			RespawnDepth: 500,
			MinSize:      10,
			MaxSize:      40,
			HitNear:      10,
			HitFar:       30,
		},
		Speed:      CubeSpeed{Base: 5, Step: 0.5, Every: 500},
		Player:     PlayerBox{Width: 20, Height: 20},
		ScoreEvery: 10,
		Difficulty: DifficultyConfig{
			Enabled:     false,
			Progression: ProgressionConfig{Type: "time", MaxAt: 5000},
			Scaling:     ScalingConfig{SpeedMultiplier: 0.3},
		},
	}
}

// DefaultEndlessRoadConfig returns the built-in endless-road tuning.
func DefaultEndlessRoadConfig() EndlessRoadConfig {
	return EndlessRoadConfig{
		Road: RoadConfig{
			Width:         300,
			SegmentHeight: 10,
			Drift:         5,
			MaxOffset:     120,
			BaseSpeed:     5,
			SpeedStep:     0.01,
		},
		Traffic: TrafficConfig{Chance: 0.02, Width: 40, Height: 60},
		Player:  RoadPlayer{Width: 40, Height: 60, Bottom: 20, Step: 20},
		Difficulty: DifficultyConfig{
			Enabled:     false,
			Progression: ProgressionConfig{Type: "score", MaxAt: 500},
			Scaling:     ScalingConfig{SpeedMultiplier: 0.3},
		},
	}
}

// DefaultBreakoutConfig returns the built-in brick-buster tuning.
func DefaultBreakoutConfig() BreakoutConfig {
	return BreakoutConfig{
		Paddle: BreakoutPaddle{Width: 100, Height: 10, MarginBottom: 30, Step: 24},
		Ball:   BreakoutBall{Radius: 8, Speed: 3, Steer: 5},
		Bricks: BreakoutBricks{
			Rows:       5,
			Cols:       8,
			Width:      60,
			Height:     20,
			Padding:    10,
			RowPitch:   40,
			OffsetTop:  40,
			OffsetLeft: 30,
		},
		Difficulty: DifficultyConfig{
			Enabled:     false,
			Progression: ProgressionConfig{Type: "score", MaxAt: 40},
			Scaling:     ScalingConfig{SpeedMultiplier: 0.5},
		},
	}
}

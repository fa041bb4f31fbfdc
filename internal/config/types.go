// Package config holds process settings read from the environment, the
// per-game YAML tuning files and the difficulty progression shared by the
// runner games.
//
// All tuning values are expressed in the 600x400 virtual playfield the games
// simulate in, not in terminal cells.
package config

import "fmt"

// FlappyConfig tunes flappy-jetpack.
type FlappyConfig struct {
	Physics    FlappyPhysics    `yaml:"physics"`
	Pipes      FlappyPipes      `yaml:"pipes"`
	Player     PlayerBox        `yaml:"player"`
	ScoreEvery int              `yaml:"score_every"` // ticks survived per point
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// FlappyPhysics defines the jetpack physics.
type FlappyPhysics struct {
	Gravity      float64 `yaml:"gravity"`
	Lift         float64 `yaml:"lift"`
	MaxFallSpeed float64 `yaml:"max_fall_speed"`
	PipeSpeed    float64 `yaml:"pipe_speed"`
}

// FlappyPipes defines the recycled pipe pairs.
type FlappyPipes struct {
	Count   int     `yaml:"count"`
	Width   float64 `yaml:"width"`
	Gap     float64 `yaml:"gap"`
	MinGap  float64 `yaml:"min_gap"`
	Spacing float64 `yaml:"spacing"`
	Margin  float64 `yaml:"margin"`
}

// PlayerBox places a square or rectangular player sprite.
type PlayerBox struct {
	X      float64 `yaml:"x"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// GeoDashConfig tunes geo-dash.
type GeoDashConfig struct {
	Physics    GeoDashPhysics   `yaml:"physics"`
	Obstacles  GeoDashObstacles `yaml:"obstacles"`
	Player     PlayerBox        `yaml:"player"`
	Ground     float64          `yaml:"ground"` // distance of the floor from the bottom edge
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// GeoDashPhysics defines jump and scroll behaviour.
type GeoDashPhysics struct {
	Gravity     float64 `yaml:"gravity"`
	JumpImpulse float64 `yaml:"jump_impulse"`
	BaseSpeed   float64 `yaml:"base_speed"`
	SpeedStep   float64 `yaml:"speed_step"` // added for every obstacle passed
}

// GeoDashObstacles defines obstacle generation.
type GeoDashObstacles struct {
	Count     int     `yaml:"count"`
	Spacing   float64 `yaml:"spacing"`
	Jitter    float64 `yaml:"jitter"`
	MinWidth  float64 `yaml:"min_width"`
	MaxWidth  float64 `yaml:"max_width"`
	MinHeight float64 `yaml:"min_height"`
	MaxHeight float64 `yaml:"max_height"`
}

// SkyDodgeConfig tunes sky-dodge.
type SkyDodgeConfig struct {
	Player     SkyDodgePlayer   `yaml:"player"`
	Spawn      SkyDodgeSpawn    `yaml:"spawn"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// SkyDodgePlayer defines the ship at the bottom of the field.
type SkyDodgePlayer struct {
	Size float64 `yaml:"size"`
	Step float64 `yaml:"step"`
}

// SkyDodgeSpawn defines falling block generation. The multiplier grows by
// MultiplierStep every PointsPerStep points and both shortens the spawn
// interval and speeds blocks up.
type SkyDodgeSpawn struct {
	Interval       int     `yaml:"interval"`
	IntervalStep   int     `yaml:"interval_step"`
	MinInterval    int     `yaml:"min_interval"`
	MinSize        float64 `yaml:"min_size"`
	MaxSize        float64 `yaml:"max_size"`
	MinSpeed       float64 `yaml:"min_speed"`
	MaxSpeed       float64 `yaml:"max_speed"`
	MultiplierStep float64 `yaml:"multiplier_step"`
	PointsPerStep  int     `yaml:"points_per_step"`
}

// CubeRunnerConfig tunes cube-runner.
type CubeRunnerConfig struct {
	Field      CubeField        `yaml:"field"`
	Speed      CubeSpeed        `yaml:"speed"`
	Player     PlayerBox        `yaml:"player"`
	ScoreEvery int              `yaml:"score_every"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// CubeField defines the cube cloud in front of the player.
type CubeField struct {
	Cubes        int     `yaml:"cubes"`
	FOV          float64 `yaml:"fov"`
	Depth        float64 `yaml:"depth"`
	RespawnDepth float64 `yaml:"respawn_depth"`
	MinSize      float64 `yaml:"min_size"`
	MaxSize      float64 `yaml:"max_size"`
	HitNear      float64 `yaml:"hit_near"`
	HitFar       float64 `yaml:"hit_far"`
}

// CubeSpeed defines forward speed and its growth.
type CubeSpeed struct {
	Base  float64 `yaml:"base"`
	Step  float64 `yaml:"step"`
	Every int     `yaml:"every"`
}

// EndlessRoadConfig tunes endless-road.
type EndlessRoadConfig struct {
	Road       RoadConfig       `yaml:"road"`
	Traffic    TrafficConfig    `yaml:"traffic"`
	Player     RoadPlayer       `yaml:"player"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// RoadConfig defines the drifting road.
type RoadConfig struct {
	Width         float64 `yaml:"width"`
	SegmentHeight float64 `yaml:"segment_height"`
	Drift         float64 `yaml:"drift"`
	MaxOffset     float64 `yaml:"max_offset"`
	BaseSpeed     float64 `yaml:"base_speed"`
	SpeedStep     float64 `yaml:"speed_step"`
}

// TrafficConfig defines oncoming cars.
type TrafficConfig struct {
	Chance float64 `yaml:"chance"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// RoadPlayer defines the player's car.
type RoadPlayer struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Bottom float64 `yaml:"bottom"`
	Step   float64 `yaml:"step"`
}

// BreakoutConfig tunes brick-buster.
type BreakoutConfig struct {
	Paddle     BreakoutPaddle   `yaml:"paddle"`
	Ball       BreakoutBall     `yaml:"ball"`
	Bricks     BreakoutBricks   `yaml:"bricks"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// BreakoutPaddle defines the paddle.
type BreakoutPaddle struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	MarginBottom float64 `yaml:"margin_bottom"`
	Step         float64 `yaml:"step"`
}

// BreakoutBall defines the ball.
type BreakoutBall struct {
	Radius float64 `yaml:"radius"`
	Speed  float64 `yaml:"speed"`
	Steer  float64 `yaml:"steer"` // horizontal speed at the paddle's edge
}

// BreakoutBricks defines the brick wall.
type BreakoutBricks struct {
	Rows       int     `yaml:"rows"`
	Cols       int     `yaml:"cols"`
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
	Padding    float64 `yaml:"padding"`
	RowPitch   float64 `yaml:"row_pitch"`
	OffsetTop  float64 `yaml:"offset_top"`
	OffsetLeft float64 `yaml:"offset_left"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over a run.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // score or ticks at which the level reaches 1.0
}

// ScalingConfig defines the magnitude of difficulty changes at level 1.0.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"`
	GapReduction    float64 `yaml:"gap_reduction"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset validates a preset name. The empty string is accepted and
// means "keep whatever the YAML says".
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	}
	return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// Apply rewrites the difficulty block for a preset.
func (d *DifficultyConfig) Apply(preset DifficultyPreset) {
	switch preset {
	case "":
		return
	case DifficultyFixed:
		d.Enabled = false
	default:
		d.Enabled = true
		d.InitialLevel = InitialLevelForPreset(preset)
	}
}

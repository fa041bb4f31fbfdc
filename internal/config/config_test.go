package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points the user and local search paths at empty directories.
func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(t.TempDir())
	t.Cleanup(ResetOverrides)
	return home
}

func TestEmbeddedDefaultsMatchBuiltins(t *testing.T) {
	isolate(t)

	flappy, err := Load(FlappyID, "", DefaultFlappyConfig)
	require.NoError(t, err)
	assert.Equal(t, DefaultFlappyConfig(), flappy)

	geo, err := Load(GeoDashID, "", DefaultGeoDashConfig)
	require.NoError(t, err)
	assert.Equal(t, DefaultGeoDashConfig(), geo)

	sky, err := Load(SkyDodgeID, "", DefaultSkyDodgeConfig)
	require.NoError(t, err)
	assert.Equal(t, DefaultSkyDodgeConfig(), sky)

	cube, err := Load(CubeRunnerID, "", DefaultCubeRunnerConfig)
	require.NoError(t, err)
	assert.Equal(t, DefaultCubeRunnerConfig(), cube)

	road, err := Load(EndlessRoadID, "", DefaultEndlessRoadConfig)
	require.NoError(t, err)
	assert.Equal(t, DefaultEndlessRoadConfig(), road)

	brick, err := Load(BreakoutID, "", DefaultBreakoutConfig)
	require.NoError(t, err)
	assert.Equal(t, DefaultBreakoutConfig(), brick)
}

func TestEveryTunableGameHasEmbeddedFile(t *testing.T) {
	for _, id := range Tunable() {
		_, err := defaultFS.ReadFile("defaults/" + id + ".yaml")
		assert.NoError(t, err, id)
	}
}

func TestLoadCustomPathKeepsMissingFields(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "flappy.yaml")
	require.NoError(t, os.WriteFile(path, []byte("physics:\n  gravity: 0.5\n"), 0o644))

	cfg, err := Load(FlappyID, path, DefaultFlappyConfig)
	require.NoError(t, err)
	assert.Equal(t, 0.5, cfg.Physics.Gravity)
	assert.Equal(t, -6.0, cfg.Physics.Lift)
	assert.Equal(t, 3, cfg.Pipes.Count)
}

func TestLoadCustomPathErrors(t *testing.T) {
	isolate(t)
	dir := t.TempDir()

	_, err := Load(FlappyID, filepath.Join(dir, "missing.yaml"), DefaultFlappyConfig)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config: read")

	typo := filepath.Join(dir, "typo.yaml")
	require.NoError(t, os.WriteFile(typo, []byte("physics:\n  gravty: 1\n"), 0o644))
	cfg, err := Load(FlappyID, typo, DefaultFlappyConfig)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config: parse")
	assert.Equal(t, DefaultFlappyConfig(), cfg)
}

func TestLoadSearchOrder(t *testing.T) {
	home := isolate(t)

	require.NoError(t, os.MkdirAll("configs", 0o755))
	require.NoError(t, os.WriteFile(filepath.Join("configs", "geo-dash.yaml"), []byte("ground: 40\n"), 0o644))

	cfg, err := Load(GeoDashID, "", DefaultGeoDashConfig)
	require.NoError(t, err)
	assert.Equal(t, 40.0, cfg.Ground)

	userDir := filepath.Join(home, ".retrovault", "configs")
	require.NoError(t, os.MkdirAll(userDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(userDir, "geo-dash.yaml"), []byte("ground: 60\n"), 0o644))

	cfg, err = Load(GeoDashID, "", DefaultGeoDashConfig)
	require.NoError(t, err)
	assert.Equal(t, 60.0, cfg.Ground)
}

func TestLoadSkipsBrokenSearchFile(t *testing.T) {
	isolate(t)
	require.NoError(t, os.MkdirAll("configs", 0o755))
	require.NoError(t, os.WriteFile(filepath.Join("configs", "sky-dodge.yaml"), []byte("player: [\n"), 0o644))

	cfg, err := Load(SkyDodgeID, "", DefaultSkyDodgeConfig)
	require.NoError(t, err)
	assert.Equal(t, DefaultSkyDodgeConfig(), cfg)
}

func TestOverridesApplyPreset(t *testing.T) {
	isolate(t)

	SetOverride(FlappyID, Override{Preset: DifficultyHard})
	cfg, err := Flappy()
	require.NoError(t, err)
	assert.True(t, cfg.Difficulty.Enabled)
	assert.Equal(t, 0.7, cfg.Difficulty.InitialLevel)

	SetPresetAll(DifficultyFixed)
	cfg, err = Flappy()
	require.NoError(t, err)
	assert.False(t, cfg.Difficulty.Enabled)

	road, err := EndlessRoad()
	require.NoError(t, err)
	assert.False(t, road.Difficulty.Enabled)

	ResetOverrides()
	cfg, err = Flappy()
	require.NoError(t, err)
	assert.False(t, cfg.Difficulty.Enabled, "progression is opt-in")
	assert.Equal(t, 0.0, cfg.Difficulty.InitialLevel)
}

func TestCheck(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "brick.yaml")
	require.NoError(t, os.WriteFile(path, []byte("ball:\n  speed: 4\n"), 0o644))

	assert.NoError(t, Check(BreakoutID, path))
	assert.Error(t, Check(BreakoutID, path+".missing"))
	assert.Error(t, Check("snake-classic", path))
}

func TestParsePreset(t *testing.T) {
	tests := []struct {
		in      string
		want    DifficultyPreset
		wantErr bool
	}{
		{"", "", false},
		{"easy", DifficultyEasy, false},
		{"normal", DifficultyNormal, false},
		{"hard", DifficultyHard, false},
		{"fixed", DifficultyFixed, false},
		{"nightmare", "", true},
	}
	for _, tt := range tests {
		got, err := ParsePreset(tt.in)
		if tt.wantErr {
			assert.Error(t, err, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got)
	}
}

func TestDifficultyApply(t *testing.T) {
	d := DifficultyConfig{Enabled: true, InitialLevel: 0.2}
	d.Apply("")
	assert.Equal(t, 0.2, d.InitialLevel)

	d.Apply(DifficultyNormal)
	assert.Equal(t, 0.3, d.InitialLevel)
	assert.True(t, d.Enabled)

	d.Apply(DifficultyFixed)
	assert.False(t, d.Enabled)
}

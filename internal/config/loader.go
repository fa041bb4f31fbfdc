package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"
)

// Load reads the tuning for gameID into a copy of fallback().
// Search order: customPath -> ~/.retrovault/configs/<id>.yaml ->
// ./configs/<id>.yaml -> embedded default -> fallback.
// Fields missing from a file keep their built-in value. Only an explicit
// customPath may fail; broken files found by the search are skipped.
func Load[T any](gameID, customPath string, fallback func() T) (T, error) {
	cfg := fallback()

	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return fallback(), fmt.Errorf("config: read %s: %w", customPath, err)
		}
		if err := decode(data, &cfg); err != nil {
			return fallback(), fmt.Errorf("config: parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	name := gameID + ".yaml"
	for _, path := range []string{userConfigPath(name), filepath.Join("configs", name)} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if err := decode(data, &cfg); err == nil {
			return cfg, nil
		}
		cfg = fallback()
	}

	if data, err := defaultFS.ReadFile("defaults/" + name); err == nil {
		if err := decode(data, &cfg); err == nil {
			return cfg, nil
		}
	}
	return fallback(), nil
}

// decode rejects unknown keys so typos in a tuning file are reported.
func decode(data []byte, out any) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(out); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".retrovault", "configs", filename)
}

// Override is a per-game tuning choice made on the command line.
type Override struct {
	Path   string
	Preset DifficultyPreset
}

var (
	overridesMu sync.RWMutex
	overrides   = map[string]Override{}
)

// SetOverride records the tuning file and preset used the next time gameID
// is reset.
func SetOverride(gameID string, o Override) {
	overridesMu.Lock()
	defer overridesMu.Unlock()
	overrides[gameID] = o
}

// SetPresetAll applies one preset to every tunable game, keeping any
// custom paths already set.
func SetPresetAll(preset DifficultyPreset) {
	overridesMu.Lock()
	defer overridesMu.Unlock()
	for _, id := range Tunable() {
		o := overrides[id]
		o.Preset = preset
		overrides[id] = o
	}
}

// ResetOverrides forgets every override.
func ResetOverrides() {
	overridesMu.Lock()
	defer overridesMu.Unlock()
	overrides = map[string]Override{}
}

func lookupOverride(gameID string) Override {
	overridesMu.RLock()
	defer overridesMu.RUnlock()
	return overrides[gameID]
}

type tuning[T any] interface {
	*T
	difficulty() *DifficultyConfig
}

func (c *FlappyConfig) difficulty() *DifficultyConfig { return &c.Difficulty }
func (c *GeoDashConfig) difficulty() *DifficultyConfig { return &c.Difficulty }
func (c *SkyDodgeConfig) difficulty() *DifficultyConfig { return &c.Difficulty }
func (c *CubeRunnerConfig) difficulty() *DifficultyConfig { return &c.Difficulty }
func (c *EndlessRoadConfig) difficulty() *DifficultyConfig { return &c.Difficulty }
func (c *BreakoutConfig) difficulty() *DifficultyConfig { return &c.Difficulty }

func resolve[T any, P tuning[T]](gameID string, fallback func() T) (T, error) {
	o := lookupOverride(gameID)
	cfg, err := Load(gameID, o.Path, fallback)
	P(&cfg).difficulty().Apply(o.Preset)
	return cfg, err
}

// Flappy resolves the active flappy-jetpack tuning. On error the built-in
// tuning is returned alongside it.
func Flappy() (FlappyConfig, error) { return resolve[FlappyConfig](FlappyID, DefaultFlappyConfig) }

// GeoDash resolves the active geo-dash tuning.
func GeoDash() (GeoDashConfig, error) { return resolve[GeoDashConfig](GeoDashID, DefaultGeoDashConfig) }

// SkyDodge resolves the active sky-dodge tuning.
func SkyDodge() (SkyDodgeConfig, error) {
	return resolve[SkyDodgeConfig](SkyDodgeID, DefaultSkyDodgeConfig)
}

// CubeRunner resolves the active cube-runner tuning.
func CubeRunner() (CubeRunnerConfig, error) {
	return resolve[CubeRunnerConfig](CubeRunnerID, DefaultCubeRunnerConfig)
}

// EndlessRoad resolves the active endless-road tuning.
func EndlessRoad() (EndlessRoadConfig, error) {
	return resolve[EndlessRoadConfig](EndlessRoadID, DefaultEndlessRoadConfig)
}

// Breakout resolves the active brick-buster tuning.
func Breakout() (BreakoutConfig, error) {
	return resolve[BreakoutConfig](BreakoutID, DefaultBreakoutConfig)
}

// Check loads path as the tuning file for gameID and reports any error.
// It is used to validate --config before a game starts.
func Check(gameID, path string) error {
	var err error
	switch gameID {
	case FlappyID:
		_, err = Load(gameID, path, DefaultFlappyConfig)
	case GeoDashID:
		_, err = Load(gameID, path, DefaultGeoDashConfig)
	case SkyDodgeID:
		_, err = Load(gameID, path, DefaultSkyDodgeConfig)
	case CubeRunnerID:
		_, err = Load(gameID, path, DefaultCubeRunnerConfig)
	case EndlessRoadID:
		_, err = Load(gameID, path, DefaultEndlessRoadConfig)
	case BreakoutID:
		_, err = Load(gameID, path, DefaultBreakoutConfig)
	default:
		return fmt.Errorf("config: %s has no tuning file", gameID)
	}
	return err
}

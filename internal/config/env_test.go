package config

import (
	"strings"
	"testing"
)

type envTestConfig struct {
	Port int `env:"RETROVAULT_TEST_PORT" envDefault:"123"`
}

func TestParseEnvDefaults(t *testing.T) {
	var cfg envTestConfig

	if err := ParseEnv(&cfg); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.Port != 123 {
		t.Fatalf("expected default port 123, got %d", cfg.Port)
	}
}

func TestParseEnvError(t *testing.T) {
	var cfg envTestConfig
	t.Setenv("RETROVAULT_TEST_PORT", "not-an-int")

	err := ParseEnv(&cfg)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "parse env:") {
		t.Fatalf("expected parse env prefix, got %v", err)
	}
}

func TestLoadSettings(t *testing.T) {
	t.Setenv("RETROVAULT_FPS", "30")
	t.Setenv("RETROVAULT_DIFFICULTY", "hard")
	t.Setenv("RETROVAULT_SEED", "42")

	s, err := LoadSettings()
	if err != nil {
		t.Fatalf("LoadSettings: %v", err)
	}
	if s.FPS != 30 || s.Seed != 42 || s.Difficulty != "hard" {
		t.Fatalf("unexpected settings %+v", s)
	}
	if s.SSHAddr != ":2222" || s.LogLevel != "info" {
		t.Fatalf("defaults not applied: %+v", s)
	}
}

func TestLoadSettingsRejectsBadValues(t *testing.T) {
	t.Setenv("RETROVAULT_DIFFICULTY", "impossible")
	if _, err := LoadSettings(); err == nil {
		t.Fatal("expected error for unknown difficulty")
	}

	t.Setenv("RETROVAULT_DIFFICULTY", "")
	t.Setenv("RETROVAULT_FPS", "0")
	if _, err := LoadSettings(); err == nil {
		t.Fatal("expected error for zero fps")
	}
}

package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadEmbeddedDefault(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") failed: %v", err)
	}

	// Embedded defaults must match the hardcoded fallback
	want := DefaultGameConfig()
	if cfg != want {
		t.Errorf("embedded default = %+v, expected %+v", cfg, want)
	}
}

func TestLoadCustomPath(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "custom.yaml")

	content := []byte(`
ship:
  thrust_accel: 99.0
  fire_cooldown: 0.1
hazards:
  initial_count: 2
`)
	if err := os.WriteFile(path, content, 0o600); err != nil {
		t.Fatalf("cannot write test config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Ship.ThrustAccel != 99.0 {
		t.Errorf("ThrustAccel = %f, expected 99.0", cfg.Ship.ThrustAccel)
	}
	if cfg.Ship.FireCooldown != 0.1 {
		t.Errorf("FireCooldown = %f, expected 0.1", cfg.Ship.FireCooldown)
	}
	if cfg.Hazards.InitialCount != 2 {
		t.Errorf("InitialCount = %d, expected 2", cfg.Hazards.InitialCount)
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	_, err := Load("/nonexistent/path/config.yaml")
	if err == nil {
		t.Error("Load with missing custom path should return an error")
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "broken.yaml")

	if err := os.WriteFile(path, []byte("ship: [not: a: map"), 0o600); err != nil {
		t.Fatalf("cannot write test config: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Error("Load with invalid YAML should return an error")
	}
}

func TestApplyPreset(t *testing.T) {
	tests := []struct {
		preset    DifficultyPreset
		wantCount int
	}{
		{DifficultyEasy, 3},
		{DifficultyNormal, 5}, // unchanged
		{DifficultyHard, 8},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultGameConfig()
			ApplyPreset(&cfg, tc.preset)
			if cfg.Hazards.InitialCount != tc.wantCount {
				t.Errorf("InitialCount = %d, expected %d", cfg.Hazards.InitialCount, tc.wantCount)
			}
		})
	}
}

func TestGameID(t *testing.T) {
	if GameID(DifficultyNormal) != "cacaroids" {
		t.Errorf("GameID(normal) = %q, expected cacaroids", GameID(DifficultyNormal))
	}
	if GameID(DifficultyHard) != "cacaroids_hard" {
		t.Errorf("GameID(hard) = %q, expected cacaroids_hard", GameID(DifficultyHard))
	}
	if GameID("") != "cacaroids" {
		t.Errorf("GameID(\"\") = %q, expected cacaroids", GameID(""))
	}
}

func TestGetDefaultYAML(t *testing.T) {
	data := GetDefaultYAML()
	if len(data) == 0 {
		t.Fatal("GetDefaultYAML returned empty data")
	}

	// Writing it out and loading it back must reproduce the defaults
	path := filepath.Join(t.TempDir(), "cacaroids.yaml")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load of default YAML failed: %v", err)
	}
	if cfg != DefaultGameConfig() {
		t.Errorf("default YAML loaded as %+v, expected %+v", cfg, DefaultGameConfig())
	}
}

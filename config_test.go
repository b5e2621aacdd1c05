package yars

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "yars.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefaultConfigIsValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatal(err)
	}
}

func TestDefaultCannonMatchesArcade(t *testing.T) {
	cfg := DefaultConfig()
	if got := cfg.CannonSpeed / 60; got != 6 {
		t.Errorf("cannon moves %v per frame, want 6", got)
	}
	if b := cfg.CannonBounds(); b.X() != 16*cfg.ScreenScale || b.Y() != 16*cfg.ScreenScale {
		t.Errorf("cannon bounds %v", b)
	}
	if cfg.CannonSprite != 23 {
		t.Errorf("cannon sprite %d, want 23", cfg.CannonSprite)
	}
}

func TestLoadConfigOverridesDefaults(t *testing.T) {
	path := writeConfig(t, "cannon_speed: 120\nshield_rows: 4\nrespawn_delay: 0.5\n")

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.CannonSpeed != 120 || cfg.ShieldRows != 4 || cfg.RespawnDelay != 0.5 {
		t.Errorf("overrides not applied: %+v", cfg)
	}
	if cfg.ScreenWidth != DefaultConfig().ScreenWidth {
		t.Errorf("default screen width lost: %v", cfg.ScreenWidth)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	var tests = []struct {
		name string
		body string
		want error
	}{
		{"bad screen", "screen_scale: 0\n", ErrBadScreen},
		{"bad shield", "shield_cols: 0\n", ErrBadShield},
		{"bad speed", "yar_speed: -1\n", ErrBadSpeed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfig(writeConfig(t, tt.body))
			if !errors.Is(err, tt.want) {
				t.Errorf("got %v, want %v", err, tt.want)
			}
		})
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("got %v, want a not exist error", err)
	}
}

func TestLoadConfigBadYAML(t *testing.T) {
	_, err := LoadConfig(writeConfig(t, "cannon_speed: [fast\n"))
	if err == nil {
		t.Errorf("expected a parse error")
	}
}

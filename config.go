package yars

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-gl/mathgl/mgl32"
	"gopkg.in/yaml.v3"
)

var (
	ErrBadScreen = errors.New("screen size and scale must be positive")
	ErrBadShield = errors.New("shield must have at least one row and column")
	ErrBadSpeed  = errors.New("speeds must be positive")
)

// Config holds the tunables of a game. Sizes are in unscaled sprite pixels,
// speeds in screen pixels per second, delays in seconds.
type Config struct {
	ScreenScale  float32 `yaml:"screen_scale"`
	ScreenWidth  float32 `yaml:"screen_width"`
	ScreenHeight float32 `yaml:"screen_height"`
	FPS          int     `yaml:"fps"`

	SpriteSheet string `yaml:"sprite_sheet"`
	SpriteCell  int    `yaml:"sprite_cell"`

	YarSprite    int `yaml:"yar_sprite"`
	QotileSprite int `yaml:"qotile_sprite"`
	ShieldSprite int `yaml:"shield_sprite"`
	CannonSprite int `yaml:"cannon_sprite"`

	YarSize    float32 `yaml:"yar_size"`
	QotileSize float32 `yaml:"qotile_size"`
	ShieldSize float32 `yaml:"shield_size"`
	CannonSize float32 `yaml:"cannon_size"`

	YarSpeed        float32 `yaml:"yar_speed"`
	QotileSpeed     float32 `yaml:"qotile_speed"`
	QotileTurnEvery float32 `yaml:"qotile_turn_every"`
	CannonSpeed     float32 `yaml:"cannon_speed"`

	ShieldRows   int `yaml:"shield_rows"`
	ShieldCols   int `yaml:"shield_cols"`
	ShieldHealth int `yaml:"shield_health"`
	ShieldDamage int `yaml:"shield_damage"`

	Lives          int     `yaml:"lives"`
	TronsForCannon int     `yaml:"trons_for_cannon"`
	QotilePoints   int     `yaml:"qotile_points"`
	ShieldPoints   int     `yaml:"shield_points"`
	RespawnDelay   float32 `yaml:"respawn_delay"`
}

func DefaultConfig() Config {
	return Config{
		ScreenScale:  3,
		ScreenWidth:  960,
		ScreenHeight: 720,
		FPS:          60,

		SpriteSheet: "sprites.png",
		SpriteCell:  16,

		YarSprite:    0,
		QotileSprite: 16,
		ShieldSprite: 20,
		CannonSprite: 23,

		YarSize:    16,
		QotileSize: 16,
		ShieldSize: 8,
		CannonSize: 16,

		YarSpeed:        240,
		QotileSpeed:     120,
		QotileTurnEvery: 3,
		// 6 pixels a frame at 60 frames a second.
		CannonSpeed: 360,

		ShieldRows:   8,
		ShieldCols:   3,
		ShieldHealth: 10,
		ShieldDamage: 5,

		Lives:          4,
		TronsForCannon: 5,
		QotilePoints:   1000,
		ShieldPoints:   69,
		RespawnDelay:   2,
	}
}

// LoadConfig reads a yaml file over the defaults, so a file only needs the
// keys it wants to change.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.ScreenScale <= 0 || c.ScreenWidth <= 0 || c.ScreenHeight <= 0 {
		return ErrBadScreen
	}
	if c.ShieldRows <= 0 || c.ShieldCols <= 0 {
		return ErrBadShield
	}
	if c.YarSpeed <= 0 || c.QotileSpeed <= 0 || c.CannonSpeed <= 0 {
		return ErrBadSpeed
	}
	return nil
}

func (c Config) Screen() mgl32.Vec2 {
	return mgl32.Vec2{c.ScreenWidth, c.ScreenHeight}
}

func (c Config) scaled(size float32) mgl32.Vec2 {
	return mgl32.Vec2{size * c.ScreenScale, size * c.ScreenScale}
}

func (c Config) YarBounds() mgl32.Vec2    { return c.scaled(c.YarSize) }
func (c Config) QotileBounds() mgl32.Vec2 { return c.scaled(c.QotileSize) }
func (c Config) ShieldBounds() mgl32.Vec2 { return c.scaled(c.ShieldSize) }
func (c Config) CannonBounds() mgl32.Vec2 { return c.scaled(c.CannonSize) }

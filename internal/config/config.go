// Package config holds every tunable the game exposes. The compiled
// defaults reproduce the stock look and feel; an optional TOML file
// overrides any subset of them.
package config

import (
	"fmt"
	"time"

	"github.com/BurntSushi/toml"
	"golang.org/x/image/colornames"

	"pongxelflut/internal/canvas"
	"pongxelflut/internal/game"
	"pongxelflut/internal/render"
)

// Config is the full tuning surface.
type Config struct {
	BallSize             int     `toml:"ball_size"`
	BallSpeed            float64 `toml:"ball_speed"`
	PaddleWidth          int     `toml:"paddle_width"`
	PaddleSpeed          int     `toml:"paddle_speed"`
	PaddleHeightFraction float64 `toml:"paddle_height_fraction"`
	PaddleGapFraction    float64 `toml:"paddle_gap_fraction"`
	BorderWidth          int     `toml:"border_width"`
	TickMillis           int     `toml:"tick_millis"`
	ObjectColor          string  `toml:"object_color"` // RRGGBB or RRGGBBAA hex
	BorderColor          string  `toml:"border_color"`
	Keys                 KeyCodes `toml:"keys"`
}

// KeyCodes are raw evdev key codes for the five controls.
type KeyCodes struct {
	P1Up   uint16 `toml:"p1_up"`
	P1Down uint16 `toml:"p1_down"`
	P2Up   uint16 `toml:"p2_up"`
	P2Down uint16 `toml:"p2_down"`
	Start  uint16 `toml:"start"`
}

// Default returns the stock tuning: magenta sprites with black borders,
// 30 ticks per second, W/S and arrow keys.
func Default() Config {
	return Config{
		BallSize:             58,
		BallSpeed:            30,
		PaddleWidth:          47,
		PaddleSpeed:          17,
		PaddleHeightFraction: 1.0 / 7.0,
		PaddleGapFraction:    1.0 / 9.0,
		BorderWidth:          6,
		TickMillis:           1000 / 30,
		ObjectColor:          canvas.Hex(colornames.Magenta),
		BorderColor:          canvas.Hex(colornames.Black),
		Keys:                 KeyCodes{P1Up: 17, P1Down: 31, P2Up: 103, P2Down: 108, Start: 57},
	}
}

// Load returns the defaults overridden by the TOML file at path. An empty
// path means pure defaults; a present but malformed file is a startup
// error.
func Load(path string) (Config, error) {
	c := Default()
	if path == "" {
		return c, nil
	}
	if _, err := toml.DecodeFile(path, &c); err != nil {
		return Config{}, fmt.Errorf("config: %s: %w", path, err)
	}
	return c, nil
}

// Params converts to the physics tuning.
func (c Config) Params() game.Params {
	return game.Params{
		PaddleWidth:          c.PaddleWidth,
		PaddleSpeed:          c.PaddleSpeed,
		BallSpeed:            c.BallSpeed,
		PaddleHeightFraction: c.PaddleHeightFraction,
		PaddleGapFraction:    c.PaddleGapFraction,
	}
}

// TickInterval converts the tick rate to a duration.
func (c Config) TickInterval() time.Duration {
	return time.Duration(c.TickMillis) * time.Millisecond
}

// Style resolves the sprite style, parsing the color strings.
func (c Config) Style() (render.Style, error) {
	fill, err := canvas.ParseColor(c.ObjectColor)
	if err != nil {
		return render.Style{}, err
	}
	border, err := canvas.ParseColor(c.BorderColor)
	if err != nil {
		return render.Style{}, err
	}
	return render.Style{
		BallSize:    c.BallSize,
		BorderWidth: c.BorderWidth,
		Fill:        fill,
		Border:      border,
	}, nil
}

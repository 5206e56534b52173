// Package config resolves runtime settings from the environment, an optional
// .env file and command-line flags, in increasing order of precedence.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/lixenwraith/vi-sweeper/constants"
)

// Glyph sets
const (
	GlyphsEmoji = "emoji"
	GlyphsASCII = "ascii"
)

// Sentinel errors
var (
	ErrUnknownLevel   = errors.New("unknown level")
	ErrUnknownGlyphs  = errors.New("unknown glyph set")
	ErrIncompleteSize = errors.New("custom size needs both rows and cols")
)

// Config holds all runtime settings
type Config struct {
	Level string `env:"LEVEL"`

	// Custom size, used instead of Level when rows and cols are both set
	Rows  int `env:"SWEEPER_ROWS"`
	Cols  int `env:"SWEEPER_COLS"`
	Mines int `env:"SWEEPER_MINES"`

	// Seed 0 means a random layout each game
	Seed uint64 `env:"SWEEPER_SEED"`

	Audio  bool   `env:"SWEEPER_AUDIO" envDefault:"true"`
	Volume int    `env:"SWEEPER_VOLUME"`
	Glyphs string `env:"SWEEPER_GLYPHS" envDefault:"emoji"`

	Debug    bool   `env:"SWEEPER_DEBUG"`
	LogLevel string `env:"SWEEPER_LOG_LEVEL" envDefault:"info"`
}

// Load reads envFile if it exists, then parses the environment
// An empty envFile or a missing file is not an error
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	// Unset variables leave these values in place
	cfg := &Config{Volume: constants.DefaultVolume}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// BindFlags registers command-line overrides using the current values as defaults
// Call after Load and before flags.Parse
func (c *Config) BindFlags(flags *flag.FlagSet) {
	flags.StringVar(&c.Level, "level", c.Level, "Difficulty: easy, medium, hard")
	flags.IntVar(&c.Rows, "rows", c.Rows, "Custom board rows (with -cols)")
	flags.IntVar(&c.Cols, "cols", c.Cols, "Custom board columns (with -rows)")
	flags.IntVar(&c.Mines, "mines", c.Mines, "Custom mine count")
	flags.Uint64Var(&c.Seed, "seed", c.Seed, "Mine layout seed, 0 for random")
	flags.IntVar(&c.Volume, "volume", c.Volume, "Master volume 0-100")
	flags.BoolVar(&c.Debug, "debug", c.Debug, "Write debug log to logs/")
	flags.BoolFunc("mute", "Disable audio", func(string) error {
		c.Audio = false
		return nil
	})
	flags.BoolFunc("ascii", "Use ASCII glyphs instead of emoji", func(string) error {
		c.Glyphs = GlyphsASCII
		return nil
	})
}

// Validate clamps volume and checks enumerated fields
func (c *Config) Validate() error {
	c.Volume = max(0, min(c.Volume, 100))

	switch c.Glyphs {
	case GlyphsEmoji, GlyphsASCII:
	case "":
		c.Glyphs = GlyphsEmoji
	default:
		return fmt.Errorf("%w: %q", ErrUnknownGlyphs, c.Glyphs)
	}
	return nil
}

// Difficulty resolves the board size
// Custom rows/cols take precedence over Level. An unrecognized level or a
// custom size with only one dimension yields the level preset together with
// ErrUnknownLevel or ErrIncompleteSize so callers can warn and continue.
func (c *Config) Difficulty() (constants.Difficulty, error) {
	if c.Rows > 0 && c.Cols > 0 {
		return constants.Difficulty{
			Name:  "custom",
			Rows:  c.Rows,
			Cols:  c.Cols,
			Mines: c.Mines,
		}, nil
	}

	d, ok := constants.LookupLevel(c.Level)
	if !ok {
		return d, fmt.Errorf("%w: %q", ErrUnknownLevel, c.Level)
	}
	if c.Rows > 0 || c.Cols > 0 {
		return d, fmt.Errorf("%w: got %dx%d, using %s", ErrIncompleteSize, c.Rows, c.Cols, d.Name)
	}
	return d, nil
}

// MasterVolume returns the volume as a 0..1 gain
func (c *Config) MasterVolume() float64 {
	return float64(c.Volume) / 100.0
}

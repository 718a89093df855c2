package game

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/samdwyer/snake/internal/sim"
)

// Config holds game configuration options.
type Config struct {
	// TileCount is the number of cells along each side of the square board.
	TileCount int `yaml:"tile_count"`

	// TickInterval is the real time between simulation steps.
	TickInterval time.Duration `yaml:"tick_interval"`

	// ScorePerFood is added to the score for each food eaten.
	ScorePerFood int `yaml:"score_per_food"`

	// Seed for random number generation. Used for reproducible food placement.
	// A seed of 0 means a random seed will be generated.
	Seed int64 `yaml:"seed"`

	// Theme is the ID of an embedded theme; empty selects the default.
	Theme string `yaml:"theme"`
}

// DefaultConfig returns the classic settings: a 20x20 board stepping
// every 100ms and scoring 10 per food.
func DefaultConfig() Config {
	rules := sim.DefaultRules()
	return Config{
		TileCount:    rules.TileCount,
		TickInterval: 100 * time.Millisecond,
		ScorePerFood: rules.ScorePerFood,
	}
}

// LoadConfig builds a Config from defaults, then the YAML file at path (if
// it exists), then SNAKE_* environment variables.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		content, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
			// optional
		case err != nil:
			return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
		default:
			if err := yaml.Unmarshal(content, &cfg); err != nil {
				return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
			}
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// applyEnv overrides fields from SNAKE_* environment variables.
func (c *Config) applyEnv() error {
	if v, ok := os.LookupEnv("SNAKE_TILE_COUNT"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid SNAKE_TILE_COUNT %q: %w", v, err)
		}
		c.TileCount = n
	}
	if v, ok := os.LookupEnv("SNAKE_TICK_MS"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid SNAKE_TICK_MS %q: %w", v, err)
		}
		c.TickInterval = time.Duration(n) * time.Millisecond
	}
	if v, ok := os.LookupEnv("SNAKE_SCORE_PER_FOOD"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid SNAKE_SCORE_PER_FOOD %q: %w", v, err)
		}
		c.ScorePerFood = n
	}
	if v, ok := os.LookupEnv("SNAKE_SEED"); ok {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid SNAKE_SEED %q: %w", v, err)
		}
		c.Seed = n
	}
	if v, ok := os.LookupEnv("SNAKE_THEME"); ok {
		c.Theme = v
	}
	return nil
}

// Validate checks that the configuration describes a playable game.
func (c Config) Validate() error {
	if c.TileCount < 4 || c.TileCount > 200 {
		return fmt.Errorf("tile count %d out of range [4, 200]", c.TileCount)
	}
	if c.TickInterval <= 0 {
		return fmt.Errorf("tick interval must be positive, got %v", c.TickInterval)
	}
	if c.ScorePerFood <= 0 {
		return fmt.Errorf("score per food must be positive, got %d", c.ScorePerFood)
	}
	return nil
}

// Rules converts the configuration into simulation rules.
func (c Config) Rules() sim.Rules {
	return sim.Rules{
		TileCount:    c.TileCount,
		ScorePerFood: c.ScorePerFood,
	}
}

// seed returns the configured seed, or a time-based one for 0.
func (c Config) seed() int64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return time.Now().UnixNano()
}

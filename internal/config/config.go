// Package config loads game settings from the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/samdwyer/thefloor/internal/duel"
	"github.com/samdwyer/thefloor/internal/floor"
)

// Config holds every tunable setting.
type Config struct {
	GridSize int `env:"THEFLOOR_GRID_SIZE" envDefault:"3"`

	RandomizerDuration    time.Duration `env:"THEFLOOR_RANDOMIZER_DURATION" envDefault:"5s"`
	RandomizerMinInterval time.Duration `env:"THEFLOOR_RANDOMIZER_MIN_INTERVAL" envDefault:"200ms"`
	RandomizerMaxInterval time.Duration `env:"THEFLOOR_RANDOMIZER_MAX_INTERVAL" envDefault:"600ms"`

	DuelInitialTime time.Duration `env:"THEFLOOR_DUEL_INITIAL_TIME" envDefault:"10s"`
	RevealPause     time.Duration `env:"THEFLOOR_REVEAL_PAUSE" envDefault:"3s"`
	PassPenalty     time.Duration `env:"THEFLOOR_PASS_PENALTY" envDefault:"3s"`

	// TilesCSV is the roster file. Empty means the embedded roster.
	TilesCSV  string `env:"THEFLOOR_TILES_CSV"`
	ImagesDir string `env:"THEFLOOR_IMAGES_DIR" envDefault:"images"`
	// CreateImageFolders makes an empty folder per roster category under ImagesDir at startup.
	CreateImageFolders bool `env:"THEFLOOR_CREATE_IMAGE_FOLDERS" envDefault:"false"`

	// Seed for the randomizer start tile. A seed of 0 means a random seed will be generated.
	Seed int64 `env:"THEFLOOR_SEED" envDefault:"0"`
	FPS  int   `env:"THEFLOOR_FPS" envDefault:"60"`

	LogFile string `env:"THEFLOOR_LOG_FILE" envDefault:"thefloor.log"`

	Telemetry        bool   `env:"THEFLOOR_TELEMETRY" envDefault:"false"`
	HoneycombAPIKey  string `env:"HONEYCOMB_THEFLOOR_API_KEY"`
	HoneycombDataset string `env:"HONEYCOMB_THEFLOOR_DATASET" envDefault:"thefloor"`
}

// Load reads an optional .env file and then the process environment.
// A missing .env file is not an error.
func Load(files ...string) (Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", f, err)
		}
	}
	return Parse()
}

// Parse reads the configuration from environment variables and validates it.
func Parse() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Default returns the built-in settings, ignoring the environment.
func Default() Config {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Environment: map[string]string{}}); err != nil {
		panic(err)
	}
	return cfg
}

// Validate rejects settings the game cannot run with.
func (c Config) Validate() error {
	var errs []error
	if c.GridSize < 2 {
		errs = append(errs, fmt.Errorf("grid size must be at least 2, got %d", c.GridSize))
	}
	if c.RandomizerDuration <= 0 {
		errs = append(errs, errors.New("randomizer duration must be positive"))
	}
	if c.RandomizerMinInterval <= 0 {
		errs = append(errs, errors.New("randomizer min interval must be positive"))
	}
	if c.RandomizerMaxInterval < c.RandomizerMinInterval {
		errs = append(errs, errors.New("randomizer max interval must not be below min interval"))
	}
	if c.DuelInitialTime <= 0 {
		errs = append(errs, errors.New("duel initial time must be positive"))
	}
	if c.RevealPause < 0 || c.PassPenalty < 0 {
		errs = append(errs, errors.New("reveal pause and pass penalty must not be negative"))
	}
	if c.FPS <= 0 {
		errs = append(errs, fmt.Errorf("fps must be positive, got %d", c.FPS))
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}

// Randomizer returns the floor sweep settings.
func (c Config) Randomizer() floor.RandomizerConfig {
	return floor.RandomizerConfig{
		Duration:    c.RandomizerDuration,
		MinInterval: c.RandomizerMinInterval,
		MaxInterval: c.RandomizerMaxInterval,
	}
}

// Duel returns the duel timings.
func (c Config) Duel() duel.Config {
	return duel.Config{
		InitialTime: c.DuelInitialTime,
		RevealPause: c.RevealPause,
		PassPenalty: c.PassPenalty,
	}
}

// FrameInterval returns the time between frames.
func (c Config) FrameInterval() time.Duration {
	return time.Second / time.Duration(c.FPS)
}

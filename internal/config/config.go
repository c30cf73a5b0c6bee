package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	mb "github.com/saeidalz13/battleship-offline/models/battleship"
)

const (
	StageProd = "prod"
	StageDev  = "dev"
)

type Config struct {
	Stage            string `env:"STAGE" envDefault:"dev"`
	Difficulty       uint8  `env:"BATTLESHIP_DIFFICULTY" envDefault:"0"`
	SideLength       int    `env:"BATTLESHIP_SIDE_LENGTH" envDefault:"0"`
	ShowBoundary     bool   `env:"BATTLESHIP_SHOW_BOUNDARY" envDefault:"false"`
	MaxShipAttempts  int    `env:"BATTLESHIP_MAX_SHIP_ATTEMPTS" envDefault:"1000"`
	MaxBuildAttempts int    `env:"BATTLESHIP_MAX_BUILD_ATTEMPTS" envDefault:"10"`
	Seed             int64  `env:"BATTLESHIP_SEED" envDefault:"0"`
}

// Load parses the process environment into a Config and validates it.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.Stage != StageProd && c.Stage != StageDev {
		return fmt.Errorf("stage must be either %s or %s, got: %q", StageDev, StageProd, c.Stage)
	}
	if c.SideLength < 0 {
		return fmt.Errorf("side length must not be negative, got: %d", c.SideLength)
	}
	if c.MaxShipAttempts < 1 {
		return fmt.Errorf("max ship attempts must be positive, got: %d", c.MaxShipAttempts)
	}
	if c.MaxBuildAttempts < 1 {
		return fmt.Errorf("max build attempts must be positive, got: %d", c.MaxBuildAttempts)
	}
	return nil
}

// Rules resolves the difficulty and applies the side length override.
func (c Config) Rules() (mb.Rules, error) {
	rules, err := mb.RulesForDifficulty(c.Difficulty)
	if err != nil {
		return mb.Rules{}, err
	}
	if c.SideLength > 0 {
		rules.SideLength = c.SideLength
	}
	if err := rules.Validate(); err != nil {
		return mb.Rules{}, err
	}
	return rules, nil
}

// FleetOptions carries the retry budgets into a fleet builder.
func (c Config) FleetOptions() []mb.FleetOption {
	return []mb.FleetOption{
		mb.WithMaxShipAttempts(c.MaxShipAttempts),
		mb.WithMaxBuildAttempts(c.MaxBuildAttempts),
	}
}

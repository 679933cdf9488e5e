// Package config loads CLI generator defaults from YAML.
package config

import (
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"os"

	"gopkg.in/yaml.v3"

	skema "github.com/reoring/skema"
)

// Generation modes.
const (
	ModeSequential = "sequential"
	ModeRandom     = "random"
)

// Config holds defaults shared by the CLI subcommands.
type Config struct {
	MaxAmount int    `yaml:"maxAmount"`
	Mode      string `yaml:"mode"`
	// Seed 0 means unseeded.
	Seed     uint64 `yaml:"seed"`
	Pretty   bool   `yaml:"pretty"`
	Language string `yaml:"language"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		MaxAmount: skema.DefaultMaxAmount,
		Mode:      ModeSequential,
		Language:  "en",
	}
}

// Load reads path on top of Default. An empty path returns Default.
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()
	cfg, err := Decode(f)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Decode parses a single YAML document on top of Default. Unknown keys are
// rejected. An empty document yields Default.
func Decode(r io.Reader) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports settings the CLI cannot honour.
func (c Config) Validate() error {
	var errs []error
	if c.MaxAmount < 0 {
		errs = append(errs, fmt.Errorf("maxAmount must not be negative, got %d", c.MaxAmount))
	}
	switch c.Mode {
	case ModeSequential, ModeRandom:
	default:
		errs = append(errs, fmt.Errorf("mode must be %q or %q, got %q", ModeSequential, ModeRandom, c.Mode))
	}
	switch c.Language {
	case "en", "ja":
	default:
		errs = append(errs, fmt.Errorf("language must be \"en\" or \"ja\", got %q", c.Language))
	}
	return errors.Join(errs...)
}

// GenOpt converts the generator settings, seeding a PCG source when Seed is
// non-zero.
func (c Config) GenOpt() skema.GenOpt {
	opt := skema.GenOpt{MaxAmount: c.MaxAmount}
	if c.Seed != 0 {
		opt.Rand = rand.New(rand.NewPCG(c.Seed, c.Seed))
	}
	return opt
}

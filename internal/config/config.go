// Package config loads the demonstration command's settings.
package config

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/mel2oo/go-reverse/optionals"
	"github.com/mel2oo/go-reverse/reverse"
)

// DefaultSamples are the texts shown when no input is given.
var DefaultSamples = []string{
	"hello",
	"Python",
	"12345",
	"A man a plan a canal Panama",
	"",
	"a",
}

type Config struct {
	Samples           []string
	Strategies        []reverse.Strategy
	LogLevel          string
	MaxRecursionDepth int
	Check             bool
}

func Default() Config {
	return Config{
		Samples:           append([]string(nil), DefaultSamples...),
		Strategies:        reverse.Strategies(),
		LogLevel:          "info",
		MaxRecursionDepth: reverse.DefaultMaxRecursionDepth,
	}
}

// File mirrors the YAML layout. Keys left out keep their defaults.
type File struct {
	Samples           []string                 `yaml:"samples"`
	Strategies        []string                 `yaml:"strategies"`
	LogLevel          string                   `yaml:"log_level"`
	MaxRecursionDepth optionals.Optional[int]  `yaml:"max_recursion_depth"`
	Check             optionals.Optional[bool] `yaml:"check"`
}

func Load(path string) (Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrapf(err, "failed to read config %s", path)
	}
	return Parse(b)
}

func Parse(b []byte) (Config, error) {
	var f File
	if err := yaml.Unmarshal(b, &f); err != nil {
		return Config{}, errors.Wrap(err, "failed to parse config")
	}
	return f.Apply(Default())
}

// Apply overlays the values present in f onto base.
func (f File) Apply(base Config) (Config, error) {
	cfg := base

	if f.Samples != nil {
		cfg.Samples = f.Samples
	}
	if len(f.Strategies) > 0 {
		strategies, err := ParseStrategies(f.Strategies)
		if err != nil {
			return Config{}, err
		}
		cfg.Strategies = strategies
	}
	if f.LogLevel != "" {
		cfg.LogLevel = f.LogLevel
	}
	if depth, ok := f.MaxRecursionDepth.Get(); ok {
		if depth < 1 {
			return Config{}, errors.Errorf("max_recursion_depth must be at least 1, got %d", depth)
		}
		cfg.MaxRecursionDepth = depth
	}
	cfg.Check = f.Check.GetOrDefault(cfg.Check)

	return cfg, nil
}

package config

import "github.com/majkprpik/kina/internal/generator"

// DefaultFile is looked up in the working directory when --config is not set.
const DefaultFile = "kina.yaml"

// Config is the kina configuration loaded from kina.yaml.
type Config struct {
	Board     Board
	Generator Generator
	Paths     Paths
}

type Board struct {
	Width  int
	Height int
}

type Generator struct {
	Seed        int64
	MaxAttempts int
	ScaleBudget bool
}

type Paths struct {
	SnapshotsDir string
}

// Default provides sane defaults if kina.yaml is missing or partial.
func Default() Config {
	return Config{
		Board: Board{Width: 8, Height: 8},
		Generator: Generator{
			Seed:        0,
			MaxAttempts: generator.DefaultMaxAttempts,
		},
		Paths: Paths{SnapshotsDir: "snapshots"},
	}
}

// GeneratorOptions converts the generator section into generator options.
func (c Config) GeneratorOptions() *generator.Options {
	return &generator.Options{
		Seed:        c.Generator.Seed,
		MaxAttempts: c.Generator.MaxAttempts,
		ScaleBudget: c.Generator.ScaleBudget,
	}
}

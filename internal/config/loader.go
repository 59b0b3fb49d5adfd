package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/majkprpik/kina/internal/board"
)

var ErrInvalidConfig = errors.New("invalid config")

// Load reads path and overlays it on Default. A missing file is not an error.
func Load(path string) (Config, error) {
	b, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	return Parse(path, b)
}

// Parse decodes YAML bytes; path is only used in error messages.
func Parse(path string, data []byte) (Config, error) {
	var dto YAMLConfig
	if err := yaml.Unmarshal(data, &dto); err != nil {
		return Config{}, fmt.Errorf("%w (path=%s): %v", ErrInvalidConfig, path, err)
	}
	cfg, err := Map(dto)
	if err != nil {
		return Config{}, fmt.Errorf("%w (path=%s)", err, path)
	}
	return cfg, nil
}

// Map overlays the DTO on Default and validates the result.
func Map(dto YAMLConfig) (Config, error) {
	cfg := Default()

	if dto.Board.Width != nil {
		cfg.Board.Width = *dto.Board.Width
	}
	if dto.Board.Height != nil {
		cfg.Board.Height = *dto.Board.Height
	}
	if dto.Generator.Seed != nil {
		cfg.Generator.Seed = *dto.Generator.Seed
	}
	if dto.Generator.MaxAttempts != nil {
		cfg.Generator.MaxAttempts = *dto.Generator.MaxAttempts
	}
	if dto.Generator.ScaleBudget != nil {
		cfg.Generator.ScaleBudget = *dto.Generator.ScaleBudget
	}
	if dto.Paths.Snapshots != nil {
		cfg.Paths.SnapshotsDir = strings.TrimSpace(*dto.Paths.Snapshots)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks value ranges; the error names the offending field.
func (c Config) Validate() error {
	switch {
	case c.Board.Width <= 0:
		return fmt.Errorf("%w: board.width must be positive, got %d", ErrInvalidConfig, c.Board.Width)
	case c.Board.Height <= 0:
		return fmt.Errorf("%w: board.height must be positive, got %d", ErrInvalidConfig, c.Board.Height)
	case board.CheckDimensions(c.Board.Width, c.Board.Height) != nil:
		return fmt.Errorf("%w: board.width x board.height must not exceed %d cells, got %dx%d",
			ErrInvalidConfig, board.MaxArea, c.Board.Width, c.Board.Height)
	case c.Generator.MaxAttempts <= 0:
		return fmt.Errorf("%w: generator.max_attempts must be positive, got %d", ErrInvalidConfig, c.Generator.MaxAttempts)
	case c.Paths.SnapshotsDir == "":
		return fmt.Errorf("%w: paths.snapshots must not be empty", ErrInvalidConfig)
	}
	return nil
}

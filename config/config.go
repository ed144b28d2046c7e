// SPDX-License-Identifier: MIT

package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/segimage/segerr"
)

// ErrInvalid indicates a configuration that cannot be parsed or fails validation.
var ErrInvalid = segerr.Wrap(segerr.ErrInput, "config: invalid configuration")

// validate is shared; validator.Validate caches struct metadata and is safe
// for concurrent use.
var validate = validator.New()

// SegmentationConfig configures the SLIC segmenter.
type SegmentationConfig struct {
	Segments    int     `yaml:"n_segments" validate:"min=1"`
	Compactness float64 `yaml:"compactness" validate:"gt=0"`
	Sigma       float64 `yaml:"sigma" validate:"gte=0"`
	Iterations  int     `yaml:"iterations" validate:"min=1"`
}

// PartitionConfig configures community detection. One output image is
// produced per resolution.
type PartitionConfig struct {
	Algorithm   string    `yaml:"algorithm" validate:"oneof=louvain"`
	Resolutions []float64 `yaml:"resolutions" validate:"required,min=1,dive,gt=0"`
	Seed        uint64    `yaml:"seed"`
}

// ColorConfig configures community coloring.
type ColorConfig struct {
	Seed int64 `yaml:"seed"`
}

// OutputConfig configures written artifacts. An empty Format keeps the
// input's extension.
type OutputConfig struct {
	Dir         string `yaml:"dir" validate:"required"`
	Format      string `yaml:"format" validate:"omitempty,oneof=png jpg jpeg tif tiff bmp"`
	JPEGQuality int    `yaml:"jpeg_quality" validate:"min=1,max=100"`
	GraphDOT    bool   `yaml:"graph_dot"`
}

// LogConfig configures the slog handler.
type LogConfig struct {
	Level  string `yaml:"level" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" validate:"oneof=json text"`
}

// MetricsConfig configures the Prometheus textfile dump. Empty disables it.
type MetricsConfig struct {
	Textfile string `yaml:"textfile"`
}

// Config is the complete run configuration.
type Config struct {
	Segmentation SegmentationConfig `yaml:"segmentation"`
	Partition    PartitionConfig    `yaml:"partition"`
	Color        ColorConfig        `yaml:"color"`
	Output       OutputConfig       `yaml:"output"`
	Log          LogConfig          `yaml:"log"`
	Metrics      MetricsConfig      `yaml:"metrics"`
	Workers      int                `yaml:"workers" validate:"min=1,max=256"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Segmentation: SegmentationConfig{Segments: 280, Compactness: 2, Sigma: 1, Iterations: 10},
		Partition:    PartitionConfig{Algorithm: "louvain", Resolutions: []float64{1}},
		Output:       OutputConfig{Dir: ".", JPEGQuality: 95},
		Log:          LogConfig{Level: "info", Format: "json"},
		Workers:      1,
	}
}

// Load builds a Config from defaults, the YAML file at path (skipped when
// path is empty) and SEGIMAGE_* environment variables, then validates it.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		if err := cfg.decode(data); err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
	}
	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// decode overlays YAML onto c; unknown keys are rejected.
func (c *Config) decode(data []byte) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return segerr.Errorf("yaml", ErrInvalid, "%v", err)
	}
	return nil
}

// LoadDotEnv exports the variables of the given .env files (default ".env")
// into the process environment without overriding variables already set.
// Missing files are ignored.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return segerr.Errorf("LoadDotEnv", ErrInvalid, "%s: %v", f, err)
		}
	}
	return nil
}

// Validate checks every struct tag and reports the first violation.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return formatValidationError(err)
	}
	return nil
}

func formatValidationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return segerr.Errorf("Validate", ErrInvalid, "%v", err)
	}
	e := verrs[0]
	field := e.Namespace()
	switch e.Tag() {
	case "required":
		return segerr.Errorf("Validate", ErrInvalid, "%s: field is required", field)
	case "min", "gte":
		return segerr.Errorf("Validate", ErrInvalid, "%s: must be at least %s", field, e.Param())
	case "max":
		return segerr.Errorf("Validate", ErrInvalid, "%s: must not exceed %s", field, e.Param())
	case "gt":
		return segerr.Errorf("Validate", ErrInvalid, "%s: must be greater than %s", field, e.Param())
	case "oneof":
		return segerr.Errorf("Validate", ErrInvalid, "%s: must be one of [%s], got %v", field, e.Param(), e.Value())
	default:
		return segerr.Errorf("Validate", ErrInvalid, "%s: validation failed (%s)", field, e.Tag())
	}
}

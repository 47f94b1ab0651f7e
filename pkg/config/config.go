// Package config loads the YAML configuration shared by the c4model tools.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/dd0wney/cluso-c4/pkg/logging"
	"github.com/dd0wney/cluso-c4/pkg/metrics"
	"github.com/dd0wney/cluso-c4/pkg/model"
	"github.com/dd0wney/cluso-c4/pkg/validation"
)

// ID strategies
const (
	IDStrategySequential = "sequential"
	IDStrategyUUID       = "uuid"
)

// Config is the top-level configuration document.
type Config struct {
	Logging LoggingConfig `yaml:"logging"`
	Model   ModelConfig   `yaml:"model"`
	Metrics MetricsConfig `yaml:"metrics"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

type ModelConfig struct {
	// IDStrategy is "sequential" (default) or "uuid".
	IDStrategy string `yaml:"id_strategy"`
}

type MetricsConfig struct {
	Enabled   bool   `yaml:"enabled"`
	Namespace string `yaml:"namespace"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Logging: LoggingConfig{Level: "info"},
		Model:   ModelConfig{IDStrategy: IDStrategySequential},
		Metrics: MetricsConfig{Namespace: metrics.DefaultNamespace},
	}
}

// Load reads and validates the YAML file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML on top of Default and validates the result. Unknown
// keys are rejected.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks every field and reports all problems at once.
func (c *Config) Validate() error {
	return validation.NewConfigValidator("Config").
		OneOf("Logging.Level", c.Logging.Level, []string{"debug", "info", "warn", "warning", "error"}).
		OneOf("Model.IDStrategy", c.Model.IDStrategy, []string{IDStrategySequential, IDStrategyUUID}).
		When(c.Metrics.Enabled, func(cv *validation.ConfigValidator) {
			cv.Required("Metrics.Namespace", c.Metrics.Namespace).
				Pattern("Metrics.Namespace", c.Metrics.Namespace, "alphanum")
		}).
		Validate()
}

// IDGenerator returns the generator selected by Model.IDStrategy.
func (c *Config) IDGenerator() model.IDGenerator {
	if c.Model.IDStrategy == IDStrategyUUID {
		return model.UUIDGenerator{}
	}
	return model.NewSequentialIDGenerator()
}

// ModelOptions builds the model options for this configuration. reg may be
// nil when metrics are disabled.
func (c *Config) ModelOptions(logger logging.Logger, reg *metrics.Registry) []model.Option {
	logger.SetLevel(logging.ParseLevel(c.Logging.Level))
	opts := []model.Option{
		model.WithIDGenerator(c.IDGenerator()),
		model.WithLogger(logger),
	}
	if c.Metrics.Enabled && reg != nil {
		opts = append(opts, model.WithRecorder(reg))
	}
	return opts
}

// SPDX-License-Identifier: MIT
//
// Package config holds the settings of the linegraph command: where the
// segment document lives, which assembly strategy to build with, logging
// and metrics output.
//
// Resolution order (later wins): Default(), the YAML file given to Load,
// then command-line flags applied by the caller. Validate runs last.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/linegraph/metrics"
)

// Strategy names accepted in Config.Strategy.
const (
	StrategyOpt       = "opt"
	StrategyAdjacency = "adjacency"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the resolved command configuration.
type Config struct {
	// Input is the path of the segment document (YAML or JSON).
	Input string `yaml:"input" validate:"required"`
	// Strategy selects the assembly strategy.
	Strategy string `yaml:"strategy" validate:"required,oneof=opt adjacency"`
	// LogLevel is a zap level name.
	LogLevel string `yaml:"log_level" validate:"required,oneof=debug info warn error"`
	// MetricsNamespace prefixes every metric name.
	MetricsNamespace string `yaml:"metrics_namespace" validate:"required,alphanum"`
	// MetricsOut, if set, receives the metrics in Prometheus text format.
	MetricsOut string `yaml:"metrics_out"`
}

// Default returns the deterministic defaults. Input has no default.
func Default() Config {
	return Config{
		Strategy:         StrategyOpt,
		LogLevel:         "info",
		MetricsNamespace: metrics.DefaultNamespace,
	}
}

// Load overlays the YAML file at path onto Default(). Unknown keys are rejected.
// Load does not validate; call Validate after applying flag overrides.
func Load(path string) (Config, error) {
	cfg := Default()
	f, err := os.Open(path)
	if err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return cfg, fmt.Errorf("config: %s: %w", path, err)
	}

	return cfg, nil
}

var validate = validator.New()

// Validate checks every field against its tag rules.
func (c Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, formatFieldError(fe))
	}

	return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(msgs, "; "))
}

func formatFieldError(fe validator.FieldError) string {
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, fe.Param())
	case "alphanum":
		return field + " must be alphanumeric"
	default:
		return field + " is invalid"
	}
}

// Logger builds a production JSON logger at the configured level.
func (c Config) Logger() (*zap.Logger, error) {
	level, err := zap.ParseAtomicLevel(c.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("config: log level: %w", err)
	}
	zc := zap.NewProductionConfig()
	zc.Level = level

	return zc.Build()
}

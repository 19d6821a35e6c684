// Package logging builds the structured loggers used by the daemon.
package logging

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Environment controls the baseline logger profile.
type Environment string

const (
	EnvironmentProduction  Environment = "production"
	EnvironmentDevelopment Environment = "development"
	EnvironmentLocal       Environment = "local"
)

// Config contains the logger initialization inputs. The zero Config is a
// production logger at info level.
type Config struct {
	Environment Environment `yaml:"environment"`
	Level       string      `yaml:"level"`
}

func (c Config) Validate() error {
	switch c.Environment {
	case "", EnvironmentProduction, EnvironmentDevelopment, EnvironmentLocal:
	default:
		return fmt.Errorf("invalid environment %q", c.Environment)
	}
	_, err := resolveLevel(c)
	return err
}

// New creates a structured logger and returns it with a runtime-adjustable
// level handle.
func New(cfg Config) (*zap.Logger, zap.AtomicLevel, error) {
	if err := cfg.Validate(); err != nil {
		return nil, zap.AtomicLevel{}, fmt.Errorf("invalid logging config: %w", err)
	}
	level, err := resolveLevel(cfg)
	if err != nil {
		return nil, zap.AtomicLevel{}, err
	}

	base := buildConfigByEnvironment(cfg.Environment)
	base.Level = level
	base.DisableStacktrace = true

	built, err := base.Build()
	if err != nil {
		return nil, zap.AtomicLevel{}, fmt.Errorf("failed to build logger: %w", err)
	}
	return built, level, nil
}

func resolveLevel(cfg Config) (zap.AtomicLevel, error) {
	if strings.TrimSpace(cfg.Level) != "" {
		var parsed zapcore.Level
		if err := parsed.Set(cfg.Level); err != nil {
			return zap.AtomicLevel{}, fmt.Errorf("invalid level %q: %w", cfg.Level, err)
		}
		return zap.NewAtomicLevelAt(parsed), nil
	}
	if cfg.Environment == EnvironmentDevelopment || cfg.Environment == EnvironmentLocal {
		return zap.NewAtomicLevelAt(zapcore.DebugLevel), nil
	}
	return zap.NewAtomicLevelAt(zapcore.InfoLevel), nil
}

func buildConfigByEnvironment(environment Environment) zap.Config {
	if environment == EnvironmentDevelopment || environment == EnvironmentLocal {
		cfg := zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		return cfg
	}
	cfg := zap.NewProductionConfig()
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	return cfg
}

// Package logging builds the zap logger shared by the service and CLI.
package logging

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New returns a logger for mode: "production" (JSON, info), "development"
// (console, debug) or "quiet" (warnings only, console).
func New(mode string) (*zap.Logger, error) {
	var cfg zap.Config
	switch mode {
	case "", "production", "prod":
		cfg = zap.NewProductionConfig()
	case "development", "dev":
		cfg = zap.NewDevelopmentConfig()
	case "quiet":
		cfg = zap.NewDevelopmentConfig()
		cfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
		cfg.DisableStacktrace = true
	default:
		return nil, fmt.Errorf("unknown log mode %q", mode)
	}
	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return logger.With(zap.String("service", "aiplan")), nil
}

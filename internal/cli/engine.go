package cli

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/ffi-clamav/clamav-go/internal/config"
	"github.com/ffi-clamav/clamav-go/pkg/clamav"
)

// newEngine allocates an engine and applies the configured fields.
func newEngine(cfg config.RuntimeConfig) (*clamav.Engine, error) {
	engine, err := clamav.NewEngine()
	if err != nil {
		return nil, err
	}
	if err := cfg.Engine.Apply(engine); err != nil {
		_ = engine.Close()
		return nil, err
	}
	return engine, nil
}

// loadEngine builds an engine, loads the configured databases and compiles
// it.
func loadEngine(ctx context.Context, cfg config.RuntimeConfig, logger *zap.Logger) (*clamav.Engine, uint32, error) {
	dir, err := cfg.ResolveDBDir()
	if err != nil {
		return nil, 0, err
	}
	opts, err := cfg.DatabaseOptions()
	if err != nil {
		return nil, 0, err
	}

	engine, err := newEngine(cfg)
	if err != nil {
		return nil, 0, err
	}

	sigs, err := engine.Load(dir, opts)
	if err != nil {
		_ = engine.Close()
		return nil, 0, err
	}
	if err := ctx.Err(); err != nil {
		_ = engine.Close()
		return nil, 0, err
	}
	if err := engine.Compile(); err != nil {
		_ = engine.Close()
		return nil, 0, fmt.Errorf("compile: %w", err)
	}
	logger.Info("engine ready", zap.String("db_dir", dir), zap.Uint32("signatures", sigs), zap.Stringer("db_options", opts))
	return engine, sigs, nil
}

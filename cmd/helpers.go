package cmd

import (
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"github.com/ziadkadry99/bilingo/internal/config"
	"github.com/ziadkadry99/bilingo/internal/loader"
	"github.com/ziadkadry99/bilingo/internal/logging"
	"github.com/ziadkadry99/bilingo/internal/site"
)

// loadConfig loads and validates the config, providing a user-friendly error.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w\nRun `bilingo init` to create a config file", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", cfgFile, err)
	}
	return cfg, nil
}

// newLogger builds the zap logger for a command. --verbose forces debug.
func newLogger(cfg *config.Config) (*zap.Logger, error) {
	level := cfg.LogLevel
	if verbose {
		level = "debug"
	}
	return logging.New(level, cfg.LogFormat)
}

// newLoader builds the content loader for the configured source.
func newLoader(cfg *config.Config, logger *zap.Logger) *loader.Loader {
	client := &http.Client{Timeout: cfg.RequestTimeout}
	return loader.New(loader.NewSource(cfg.Source, client),
		loader.WithRetry(loader.RetryPolicy{
			Attempts:  cfg.Retry.Attempts,
			BaseDelay: cfg.Retry.BaseDelay,
			MaxDelay:  cfg.Retry.MaxDelay,
		}),
		loader.WithLogger(logger))
}

// assetOptions maps the asset settings onto the site generator's options.
func assetOptions(cfg *config.Config) site.AssetOptions {
	return site.AssetOptions{
		Dir:     cfg.AssetsDir,
		Include: cfg.AssetsInclude,
		Exclude: cfg.AssetsExclude,
	}
}

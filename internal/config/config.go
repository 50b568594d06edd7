package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"

	"github.com/ziadkadry99/bilingo/internal/content"
)

// EnvPrefix prefixes environment overrides. A double underscore descends into
// nested keys: BILINGO_RETRY__ATTEMPTS -> retry.attempts.
const EnvPrefix = "BILINGO_"

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides (BILINGO_*).
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	// Start from defaults.
	cfg := DefaultConfig()

	// Load YAML file if it exists.
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("accessing config %s: %w", path, err)
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
		return strings.ReplaceAll(key, "__", ".")
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return cfg, nil
}

// Save writes the configuration to the given YAML file path.
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

// validLogLevels is the set of recognized log_level values.
var validLogLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// Validate checks that the configuration contains valid values.
func (c *Config) Validate() error {
	if c.Source == "" {
		return fmt.Errorf("source is required")
	}

	if len(c.Variants) == 0 {
		return fmt.Errorf("at least one variant is required")
	}
	if _, err := c.ContentVariants(); err != nil {
		return err
	}

	if c.OutputDir == "" {
		return fmt.Errorf("output_dir is required")
	}

	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port %d", c.Port)
	}

	if c.RequestTimeout < 0 {
		return fmt.Errorf("request_timeout must be non-negative")
	}

	if c.Retry.Attempts < 1 {
		return fmt.Errorf("retry.attempts must be at least 1")
	}
	if c.Retry.BaseDelay < 0 || c.Retry.MaxDelay < 0 {
		return fmt.Errorf("retry delays must be non-negative")
	}

	if !validLogLevels[c.LogLevel] {
		return fmt.Errorf("invalid log_level %q: must be one of debug, info, warn, error", c.LogLevel)
	}

	return nil
}

// LoadBudget is the longest a single content load can take under the retry
// policy: every attempt running to request_timeout plus the backoff waits
// between attempts.
func (c *Config) LoadBudget() time.Duration {
	attempts := c.Retry.Attempts
	if attempts < 1 {
		attempts = 1
	}
	budget := time.Duration(attempts) * c.RequestTimeout
	delay := c.Retry.BaseDelay
	for i := 1; i < attempts; i++ {
		if c.Retry.MaxDelay > 0 && delay > c.Retry.MaxDelay {
			delay = c.Retry.MaxDelay
		}
		budget += delay
		delay *= 2
	}
	return budget
}

// ContentVariants parses the configured variant names.
func (c *Config) ContentVariants() ([]content.Variant, error) {
	variants := make([]content.Variant, 0, len(c.Variants))
	for _, name := range c.Variants {
		v, err := content.ParseVariant(strings.TrimSpace(name))
		if err != nil {
			return nil, err
		}
		variants = append(variants, v)
	}
	return variants, nil
}

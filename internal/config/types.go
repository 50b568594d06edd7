package config

import "time"

// Config is the top-level bilingo configuration, corresponding to .bilingo.yml.
type Config struct {
	Source          string        `yaml:"source" koanf:"source"`
	Variants        []string      `yaml:"variants" koanf:"variants"`
	OutputDir       string        `yaml:"output_dir" koanf:"output_dir"`
	AssetsDir       string        `yaml:"assets_dir" koanf:"assets_dir"`
	AssetsInclude   []string      `yaml:"assets_include" koanf:"assets_include"`
	AssetsExclude   []string      `yaml:"assets_exclude" koanf:"assets_exclude"`
	Port            int           `yaml:"port" koanf:"port"`
	AllowAllOrigins bool          `yaml:"allow_all_origins" koanf:"allow_all_origins"`
	RequestTimeout  time.Duration `yaml:"request_timeout" koanf:"request_timeout"`
	Retry           RetryConfig   `yaml:"retry" koanf:"retry"`
	LogLevel        string        `yaml:"log_level" koanf:"log_level"`
	LogFormat       string        `yaml:"log_format" koanf:"log_format"`
}

// RetryConfig bounds retries of failed content fetches.
type RetryConfig struct {
	Attempts  int           `yaml:"attempts" koanf:"attempts"`
	BaseDelay time.Duration `yaml:"base_delay" koanf:"base_delay"`
	MaxDelay  time.Duration `yaml:"max_delay" koanf:"max_delay"`
}

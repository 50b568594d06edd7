package config

import "time"

// DefaultAssetsInclude selects the files copied from the assets directory by default.
var DefaultAssetsInclude = []string{"**/*.css", "**/*.js", "**/*.svg", "**/*.png", "**/*.ico", "**/*.woff2"}

// DefaultAssetsExclude are never copied.
var DefaultAssetsExclude = []string{
	".git/**",
	"node_modules/**",
	"**/.DS_Store",
	"**/*.map",
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Source:         ".",
		Variants:       []string{"posts", "tools"},
		OutputDir:      "public",
		AssetsDir:      "assets",
		AssetsInclude:  append([]string(nil), DefaultAssetsInclude...),
		AssetsExclude:  append([]string(nil), DefaultAssetsExclude...),
		Port:           8080,
		RequestTimeout: 20 * time.Second,
		Retry: RetryConfig{
			Attempts:  3,
			BaseDelay: 200 * time.Millisecond,
			MaxDelay:  2 * time.Second,
		},
		LogLevel:  "info",
		LogFormat: "console",
	}
}

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/ziadkadry99/bilingo/internal/content"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Source != "." {
		t.Errorf("expected default source %q, got %q", ".", cfg.Source)
	}
	if cfg.OutputDir != "public" {
		t.Errorf("expected default output_dir %q, got %q", "public", cfg.OutputDir)
	}
	if cfg.Port != 8080 {
		t.Errorf("expected default port 8080, got %d", cfg.Port)
	}
	if cfg.Retry.Attempts != 3 {
		t.Errorf("expected default retry.attempts 3, got %d", cfg.Retry.Attempts)
	}
	if len(cfg.Variants) != 2 {
		t.Errorf("expected both variants by default, got %v", cfg.Variants)
	}
}

func TestSaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.bilingo.yml")

	original := DefaultConfig()
	original.Source = "https://example.com/site"
	original.Variants = []string{"tools"}
	original.OutputDir = "out"
	original.Port = 9090
	original.AssetsInclude = []string{"**/*.css"}
	original.Retry.Attempts = 5
	original.Retry.BaseDelay = 50 * time.Millisecond

	// Save.
	if err := original.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	// Load back.
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	// Verify round-trip.
	if loaded.Source != original.Source {
		t.Errorf("source: got %q, want %q", loaded.Source, original.Source)
	}
	if loaded.OutputDir != original.OutputDir {
		t.Errorf("output_dir: got %q, want %q", loaded.OutputDir, original.OutputDir)
	}
	if loaded.Port != original.Port {
		t.Errorf("port: got %d, want %d", loaded.Port, original.Port)
	}
	if loaded.Retry.Attempts != 5 || loaded.Retry.BaseDelay != 50*time.Millisecond {
		t.Errorf("retry: got %+v", loaded.Retry)
	}
	if len(loaded.Variants) != 1 || loaded.Variants[0] != "tools" {
		t.Errorf("variants: got %v", loaded.Variants)
	}
	if len(loaded.AssetsInclude) != 1 || loaded.AssetsInclude[0] != "**/*.css" {
		t.Errorf("assets_include: got %v", loaded.AssetsInclude)
	}
}

func TestLoadDurationStrings(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "durations.yml")
	data := "request_timeout: 5s\nretry:\n  attempts: 2\n  base_delay: 150ms\n  max_delay: 1s\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.RequestTimeout != 5*time.Second {
		t.Errorf("request_timeout = %v", cfg.RequestTimeout)
	}
	if cfg.Retry.Attempts != 2 || cfg.Retry.BaseDelay != 150*time.Millisecond || cfg.Retry.MaxDelay != time.Second {
		t.Errorf("retry = %+v", cfg.Retry)
	}
}

func TestLoadMissingFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nonexistent.yml")

	// Loading a missing file should return defaults, not an error.
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load should not fail for missing file: %v", err)
	}
	if cfg.OutputDir != "public" {
		t.Errorf("expected default output_dir, got %q", cfg.OutputDir)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.yml")

	cfg := DefaultConfig()
	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	t.Setenv("BILINGO_SOURCE", "https://cdn.example.com")
	t.Setenv("BILINGO_PORT", "9999")
	t.Setenv("BILINGO_RETRY__ATTEMPTS", "7")

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.Source != "https://cdn.example.com" {
		t.Errorf("env override failed: got %q", loaded.Source)
	}
	if loaded.Port != 9999 {
		t.Errorf("port override failed: got %d", loaded.Port)
	}
	if loaded.Retry.Attempts != 7 {
		t.Errorf("nested override failed: got %d", loaded.Retry.Attempts)
	}
}

func TestValidateValid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Errorf("DefaultConfig should be valid, got: %v", err)
	}
}

func TestValidateErrors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty source", func(c *Config) { c.Source = "" }},
		{"no variants", func(c *Config) { c.Variants = nil }},
		{"unknown variant", func(c *Config) { c.Variants = []string{"pages"} }},
		{"empty output dir", func(c *Config) { c.OutputDir = "" }},
		{"bad port", func(c *Config) { c.Port = 70000 }},
		{"negative timeout", func(c *Config) { c.RequestTimeout = -time.Second }},
		{"zero attempts", func(c *Config) { c.Retry.Attempts = 0 }},
		{"negative delay", func(c *Config) { c.Retry.BaseDelay = -1 }},
		{"bad log level", func(c *Config) { c.LogLevel = "loud" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Errorf("expected validation error for %s", tt.name)
			}
		})
	}
}

func TestContentVariants(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Variants = []string{"tools", " posts "}
	got, err := cfg.ContentVariants()
	if err != nil {
		t.Fatalf("ContentVariants: %v", err)
	}
	if len(got) != 2 || got[0] != content.VariantTools || got[1] != content.VariantPosts {
		t.Errorf("ContentVariants = %v", got)
	}
}

func TestDetectVariants(t *testing.T) {
	dir := t.TempDir()
	if got := detectVariants(dir); len(got) != 0 {
		t.Errorf("empty dir detected %v", got)
	}
	if err := os.WriteFile(filepath.Join(dir, "tools.json"), []byte("[]"), 0o644); err != nil {
		t.Fatal(err)
	}
	if got := detectVariants(dir); len(got) != 1 || got[0] != "tools" {
		t.Errorf("detectVariants = %v, want [tools]", got)
	}

	if err := os.MkdirAll(filepath.Join(dir, "posts"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "posts", "index.json"), []byte("[]"), 0o644); err != nil {
		t.Fatal(err)
	}
	// Repeated to catch any dependence on map iteration order.
	for i := 0; i < 20; i++ {
		if got := detectVariants(dir); len(got) != 2 || got[0] != "posts" || got[1] != "tools" {
			t.Fatalf("detectVariants = %v, want [posts tools]", got)
		}
	}
}

func TestSplitAndTrim(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"a,b,c", []string{"a", "b", "c"}},
		{" a , b , c ", []string{"a", "b", "c"}},
		{"**/*.css", []string{"**/*.css"}},
		{"", nil},
		{"  ,  , ", nil},
	}
	for _, tt := range tests {
		got := splitAndTrim(tt.input)
		if len(got) != len(tt.want) {
			t.Errorf("splitAndTrim(%q) len = %d, want %d", tt.input, len(got), len(tt.want))
			continue
		}
		for i, v := range got {
			if v != tt.want[i] {
				t.Errorf("splitAndTrim(%q)[%d] = %q, want %q", tt.input, i, v, tt.want[i])
			}
		}
	}
}

func TestLoadBudget(t *testing.T) {
	tests := []struct {
		name  string
		retry RetryConfig
		want  time.Duration
	}{
		{"defaults", RetryConfig{Attempts: 3, BaseDelay: 200 * time.Millisecond, MaxDelay: 2 * time.Second},
			3*20*time.Second + 200*time.Millisecond + 400*time.Millisecond},
		{"single attempt", RetryConfig{Attempts: 1, BaseDelay: time.Second}, 20 * time.Second},
		{"capped backoff", RetryConfig{Attempts: 4, BaseDelay: time.Second, MaxDelay: 1500 * time.Millisecond},
			4*20*time.Second + time.Second + 1500*time.Millisecond + 1500*time.Millisecond},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.Retry = tt.retry
			if got := cfg.LoadBudget(); got != tt.want {
				t.Errorf("LoadBudget = %v, want %v", got, tt.want)
			}
		})
	}
}

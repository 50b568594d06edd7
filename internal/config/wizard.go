package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/manifoldco/promptui"
)

// variantMarkers lists the content list file of each variant, in prompt order.
var variantMarkers = []struct {
	marker  string
	variant string
}{
	{filepath.Join("posts", "index.json"), "posts"},
	{"tools.json", "tools"},
}

// detectVariants checks dir for content list files and returns the variants found.
func detectVariants(dir string) []string {
	var found []string
	for _, m := range variantMarkers {
		if _, err := os.Stat(filepath.Join(dir, m.marker)); err == nil {
			found = append(found, m.variant)
		}
	}
	return found
}

// RunWizard runs an interactive configuration wizard, saves the result to
// path and returns it.
func RunWizard(path string) (*Config, error) {
	fmt.Println("Welcome to bilingo! Let's configure your site.")
	fmt.Println()

	cfg := DefaultConfig()

	// 1. Content source.
	sourcePrompt := promptui.Prompt{
		Label:   "Site source (directory or http(s) URL holding site.config.json)",
		Default: cfg.Source,
	}
	source, err := sourcePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("source: %w", err)
	}
	cfg.Source = strings.TrimSpace(source)

	if !strings.HasPrefix(cfg.Source, "http://") && !strings.HasPrefix(cfg.Source, "https://") {
		if _, err := os.Stat(filepath.Join(cfg.Source, "site.config.json")); err != nil {
			fmt.Printf("Note: %s has no site.config.json yet.\n\n", cfg.Source)
		}
	}

	// 2. Variants.
	choices := []string{"posts + tools", "posts", "tools"}
	cursor := 0
	if detected := detectVariants(cfg.Source); len(detected) == 1 {
		cursor = 1
		if detected[0] == "tools" {
			cursor = 2
		}
		fmt.Printf("Detected content: %s\n\n", detected[0])
	}
	variantPrompt := promptui.Select{
		Label:     "Which pages should be rendered",
		Items:     choices,
		CursorPos: cursor,
	}
	idx, _, err := variantPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("variant selection: %w", err)
	}
	switch idx {
	case 1:
		cfg.Variants = []string{"posts"}
	case 2:
		cfg.Variants = []string{"tools"}
	}

	// 3. Output directory.
	outputPrompt := promptui.Prompt{
		Label:   "Output directory for built pages",
		Default: cfg.OutputDir,
	}
	outputDir, err := outputPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("output dir: %w", err)
	}
	cfg.OutputDir = outputDir

	// 4. Extra asset patterns.
	assetsPrompt := promptui.Prompt{
		Label:   "Extra asset patterns (comma-separated globs, leave blank for defaults)",
		Default: "",
	}
	assetsStr, err := assetsPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("asset patterns: %w", err)
	}
	if assetsStr != "" {
		cfg.AssetsInclude = append(append([]string{}, DefaultAssetsInclude...), splitAndTrim(assetsStr)...)
	}

	// 5. Server port.
	portPrompt := promptui.Prompt{
		Label:   "Port for bilingo serve",
		Default: strconv.Itoa(cfg.Port),
		Validate: func(s string) error {
			p, err := strconv.Atoi(s)
			if err != nil || p < 1 || p > 65535 {
				return fmt.Errorf("port must be a number between 1 and 65535")
			}
			return nil
		},
	}
	portStr, err := portPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("port: %w", err)
	}
	cfg.Port, _ = strconv.Atoi(portStr)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	if err := cfg.Save(path); err != nil {
		return nil, fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("\nConfiguration saved to %s\n", path)
	return cfg, nil
}

// splitAndTrim splits a comma-separated string and trims whitespace.
func splitAndTrim(s string) []string {
	var result []string
	for _, part := range strings.Split(s, ",") {
		if token := strings.TrimSpace(part); token != "" {
			result = append(result, token)
		}
	}
	return result
}

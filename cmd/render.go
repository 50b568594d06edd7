package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/bilingo/internal/content"
	"github.com/ziadkadry99/bilingo/internal/site"
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render a single page to stdout or a file",
	Long: `Runs the pipeline once (config, content, projection, filter) and writes
the resulting page. Without --lang the site's default language is used.`,
	RunE: runRender,
}

func init() {
	renderCmd.Flags().String("variant", string(content.VariantPosts), "content variant (posts or tools)")
	renderCmd.Flags().String("lang", "", "page language (ar or en)")
	renderCmd.Flags().StringP("query", "q", "", "search query (tools only)")
	renderCmd.Flags().Bool("fragment", false, "write only the rendered list")
	renderCmd.Flags().StringP("output", "o", "", "write to this file instead of stdout")
	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer logger.Sync()

	rawVariant, _ := cmd.Flags().GetString("variant")
	variant, err := content.ParseVariant(rawVariant)
	if err != nil {
		return err
	}
	lang, _ := cmd.Flags().GetString("lang")
	query, _ := cmd.Flags().GetString("query")
	fragment, _ := cmd.Flags().GetBool("fragment")
	if query != "" && !variant.Searchable() {
		return fmt.Errorf("--query is only supported for the %s variant", content.VariantTools)
	}

	out := os.Stdout
	if path, _ := cmd.Flags().GetString("output"); path != "" {
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("creating %s: %w", path, err)
		}
		defer f.Close()
		out = f
	}

	w := bufio.NewWriter(out)
	err = site.RenderPage(context.Background(), newLoader(cfg, logger), w, site.RenderOptions{
		Variant:  variant,
		Lang:     lang,
		Query:    query,
		Fragment: fragment,
		Logger:   logger,
	})
	if err != nil {
		return fmt.Errorf("rendering %s: %w", variant, err)
	}
	return w.Flush()
}

package cmd

import (
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "bilingo",
	Short: "Bilingual (Arabic/English) content site renderer",
	Long: `bilingo renders a bilingual content site from its JSON data: the site
configuration plus a list of posts or tools. Pages can be rendered once,
built into a static site, or served live with an in-page language toggle
and tool search.`,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", ".bilingo.yml", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

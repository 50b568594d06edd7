package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ziadkadry99/bilingo/internal/config"
	"github.com/ziadkadry99/bilingo/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the site with a live language toggle and search",
	Long: `Starts a local HTTP server that renders pages on request and keeps a
WebSocket session per page for the language toggle and tool search.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().Int("port", 0, "port to listen on (defaults to the config port)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if port, _ := cmd.Flags().GetInt("port"); port > 0 {
		cfg.Port = port
	}
	variants, err := cfg.ContentVariants()
	if err != nil {
		return err
	}
	logger, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer logger.Sync()

	srv := server.New(server.Config{
		Port:           cfg.Port,
		AllowAll:       cfg.AllowAllOrigins,
		Variants:       variants,
		Assets:         assetOptions(cfg),
		RequestTimeout: pageTimeout(cfg),
	}, newLoader(cfg, logger), logger)

	// Graceful shutdown.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()
		fmt.Fprintln(os.Stderr, "\nShutting down server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Warn("shutdown", zap.Error(err))
		}
	}()

	fmt.Fprintf(os.Stderr, "bilingo %s serving %s on http://localhost:%d\n", Version, cfg.Source, cfg.Port)
	if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// pageLoads is the most content loads one page request makes in sequence:
// the site config for negotiation, then the config and list it renders.
const pageLoads = 3

// pageTimeout lets every load of a page run through all of its retries
// before the request is cut off. Without a request_timeout the server's
// default applies.
func pageTimeout(cfg *config.Config) time.Duration {
	if cfg.RequestTimeout == 0 {
		return 0
	}
	return pageLoads*cfg.LoadBudget() + 5*time.Second
}

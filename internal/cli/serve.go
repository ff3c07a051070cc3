package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/darasoba/iconset-builder/pkg/bridge"
	"github.com/darasoba/iconset-builder/pkg/pipeline"
	"github.com/darasoba/iconset-builder/pkg/scene"
)

// serveCommand creates the serve command for the editor bridge.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr       string
		noCache    bool
		configPath string
	)

	cmd := &cobra.Command{
		Use:   "serve [document.json]",
		Short: "Run the editor bridge HTTP server",
		Long: `Run the editor bridge HTTP server.

The bridge exposes the generation pipeline over HTTP for editor plugins:
POST /message accepts generate and cancel messages, GET /document returns
the current document, and GET /preview/{id} renders node previews. Only
one generation run is in flight at a time; concurrent requests are
refused.

Without a document argument the server starts with an empty document.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := LoadConfig(configPath)
			if err != nil {
				return err
			}

			doc := scene.NewDocument("untitled")
			if len(args) == 1 {
				doc, err = readDocumentFile(args[0])
				if err != nil {
					return err
				}
			}

			runner, err := c.newRunner(cmd.Context(), cfg, noCache)
			if err != nil {
				return fmt.Errorf("initialize runner: %w", err)
			}

			if addr == "" {
				addr = cfg.serveAddr()
			}
			return c.runServe(cmd.Context(), doc, runner, addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config, then localhost:7341)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().StringVar(&configPath, "config", "", "config file (default: ~/.config/iconset/iconset.toml)")

	return cmd
}

// runServe starts the bridge server and blocks until ctx is cancelled.
func (c *CLI) runServe(ctx context.Context, doc *scene.Document, runner *pipeline.Runner, addr string) error {
	server := bridge.NewServer(doc, runner, c.Logger)

	httpServer := &http.Server{
		Addr:              addr,
		Handler:           server.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- httpServer.ListenAndServe()
	}()

	printInfo("Bridge listening on %s", addr)
	c.Logger.Info("bridge started", "addr", addr)

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		c.Logger.Info("bridge stopped")
		return ctx.Err()
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

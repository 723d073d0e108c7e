package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"brandcraft/internal/handlers"
	"brandcraft/internal/render"
	"brandcraft/internal/router"
	"brandcraft/web"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the web interface and JSON API",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(os.Stdout)
		if err != nil {
			return err
		}
		defer a.Close()

		renderer, err := render.New()
		if err != nil {
			return err
		}

		// A nil *HistoryCache must not become a non-nil interface.
		var historyCache handlers.HistoryCache
		if a.history != nil {
			historyCache = a.history
		}

		brand := handlers.NewBrand(renderer, a.generator, a.store, historyCache, a.cfg.AIAPIKey != "")
		r := router.New(brand, web.Static())

		// WriteTimeout must cover the model call plus the fallback.
		srv := &http.Server{
			Addr:         a.cfg.Addr(),
			Handler:      r,
			ReadTimeout:  5 * time.Second,
			WriteTimeout: a.cfg.AITimeout + 30*time.Second,
			IdleTimeout:  120 * time.Second,
		}

		errCh := make(chan error, 1)
		go func() {
			slog.Info("server starting", "addr", a.cfg.Addr())
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errCh <- err
			}
			close(errCh)
		}()

		// Graceful shutdown: wait for SIGINT or SIGTERM, then drain connections.
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		select {
		case err := <-errCh:
			return err
		case sig := <-quit:
			slog.Info("shutdown signal received", "signal", sig)
		}

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			return err
		}

		slog.Info("server stopped gracefully")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

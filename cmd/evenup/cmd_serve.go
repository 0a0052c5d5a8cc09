package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"
	"golang.org/x/sync/errgroup"

	"github.com/mmynk/evenup/internal/httpapi"
	"github.com/mmynk/evenup/internal/service"
	"github.com/mmynk/evenup/internal/storage/jsonfile"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the ledger over HTTP",
	Long: `Serves a JSON API for the ledger, plus /healthz and /metrics.

  GET    /v1/people              list with differences
  POST   /v1/people              {"name": "Max", "money": 100}
  PUT    /v1/people/{id}/money   {"money": 42.5}
  DELETE /v1/people/{id}         remove one person
  DELETE /v1/people              remove everybody`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&cfg.Addr, "addr", cfg.Addr, "listen address")
}

func runServe(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()
	slog.Info("Storage initialized", "store", cfg.Store)

	board := service.NewBoard(store, nil, service.WithMessageDuration(cfg.MessageDuration))
	board.Start(cmd.Context())

	// Wrap with h2c for HTTP/2 without TLS
	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           h2c.NewHandler(httpapi.New(board).Handler(), &http2.Server{}),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, ctx := errgroup.WithContext(cmd.Context())

	g.Go(func() error {
		slog.Info("Server starting", "address", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		slog.Info("Server shutting down")
		return srv.Shutdown(shutdownCtx)
	})

	if fs, ok := store.(*jsonfile.Store); ok {
		g.Go(func() error {
			return fs.Watch(ctx, func() { board.Reload(ctx) })
		})
	}

	return g.Wait()
}

package cli

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	mem "shelter-admin/internal/adapters/storage/memory"
	pg "shelter-admin/internal/adapters/storage/postgres"
	"shelter-admin/internal/router"
)

func serveCmd(a *app) *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server (API + frontend)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if port > 0 {
				a.cfg.Server.Port = port
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return a.serve(ctx)
		},
	}

	cmd.Flags().IntVar(&port, "port", 0, "override PORT")
	return cmd
}

func (a *app) serve(ctx context.Context) error {
	opts := router.Options{Logger: a.log, HTTP: a.cfg.HTTP}

	if a.cfg.DB.HasDatabase() {
		db, err := pg.Open(ctx, a.cfg.DB, a.log)
		if err != nil {
			return err
		}
		defer db.Close()
		opts.DB = db
	} else {
		a.log.Warn("no database configured, serving sample data from memory", nil)
		opts.Store = mem.NewSeededStore()
	}

	srv := &http.Server{
		Addr:         a.cfg.Server.Addr(),
		Handler:      router.NewRouter(opts),
		ReadTimeout:  a.cfg.Server.ReadTimeout,
		WriteTimeout: a.cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		a.log.Info("starting server", map[string]any{"addr": srv.Addr})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	a.log.Info("shutting down", nil)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return <-errCh
}

// Package cli arma los comandos cobra del binario: serve, check-db y client.
package cli

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"shelter-admin/internal/config"
	"shelter-admin/internal/platform/logger"
)

// app es el estado compartido entre comandos; se completa en PersistentPreRunE.
type app struct {
	cfg config.Config
	log logger.Logger

	logLevel string
}

func RootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "shelter-admin",
		Short:         "Animal shelter administration service",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if a.logLevel != "" {
				cfg.Log.Level = a.logLevel
			}
			a.cfg = cfg
			a.log = logger.New(logger.Options{
				Level:  logger.ParseLevel(cfg.Log.Level),
				Format: logger.ParseFormat(cfg.Log.Format),
				App:    cfg.Log.App,
				Output: cmd.ErrOrStderr(),
			})
			return nil
		},
	}

	// Sin subcomando se comporta como serve.
	root.RunE = func(cmd *cobra.Command, _ []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()
		return a.serve(ctx)
	}

	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "override LOG_LEVEL (debug|info|warn|error)")

	root.AddCommand(
		serveCmd(a),
		checkDBCmd(a),
		clientCmd(a),
	)

	return root
}

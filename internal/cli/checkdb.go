package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	pg "shelter-admin/internal/adapters/storage/postgres"
)

var errNoDatabase = errors.New("no database configured (set DB_DSN or DB_HOST)")

func checkDBCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "check-db",
		Short: "Open a pool against the configured database and ping it",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !a.cfg.DB.HasDatabase() {
				return errNoDatabase
			}
			out := cmd.OutOrStdout()
			db, err := pg.Open(cmd.Context(), a.cfg.DB, a.log)
			if err != nil {
				fmt.Fprintln(out, "unable to connect")
				return err
			}
			defer db.Close()

			if err := db.Ping(cmd.Context()); err != nil {
				fmt.Fprintln(out, "unable to connect")
				return err
			}
			fmt.Fprintln(out, "connected")
			return nil
		},
	}
}

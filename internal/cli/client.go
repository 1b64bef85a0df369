package cli

import (
	"fmt"
	"io"
	"net/http"
	"text/tabwriter"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"shelter-admin/internal/platform/httpclient"
)

// clientCmd habla con un servidor ya levantado usando los mismos endpoints que el frontend.
func clientCmd(a *app) *cobra.Command {
	var baseURL string

	cmd := &cobra.Command{
		Use:   "client",
		Short: "Call a running shelter-admin server",
	}
	cmd.PersistentFlags().StringVar(&baseURL, "base-url", "", "server base URL (default CLIENT_BASE_URL)")

	newClient := func() (*httpclient.Client, error) {
		u := a.cfg.Client.BaseURL
		if baseURL != "" {
			u = baseURL
		}
		return httpclient.New(u, a.cfg.Client.Timeout)
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "ping",
			Short: "Report server health and database connectivity",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				c, err := newClient()
				if err != nil {
					return err
				}
				health, err := c.DoText(cmd.Context(), http.MethodGet, "/health")
				if err != nil {
					return err
				}
				db, err := c.DoText(cmd.Context(), http.MethodGet, "/check-db-connection")
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "server: %s\ndatabase: %s\n", health, db)
				return nil
			},
		},
		&cobra.Command{
			Use:     "rows <path>",
			Short:   "GET a report endpoint and print its JSON",
			Example: "  shelter-admin client rows /top-donors",
			Args:    cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				c, err := newClient()
				if err != nil {
					return err
				}
				var out json.RawMessage
				if err := c.DoJSON(cmd.Context(), http.MethodGet, args[0], nil, &out); err != nil {
					return err
				}
				pretty, err := json.MarshalIndent(out, "", "  ")
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(pretty))
				return nil
			},
		},
		&cobra.Command{
			Use:     "project <table> <column>...",
			Short:   "Project columns of a table",
			Example: "  shelter-admin client project Adopter adopterName email",
			Args:    cobra.MinimumNArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				c, err := newClient()
				if err != nil {
					return err
				}
				req := map[string]any{"table_name": args[0], "attributes": args[1:]}
				var res projectionResult
				if err := c.DoJSON(cmd.Context(), http.MethodPut, "/projection", req, &res); err != nil {
					return err
				}
				return res.writeTable(cmd.OutOrStdout())
			},
		},
	)

	return cmd
}

type projectionResult struct {
	Columns []string         `json:"columns"`
	Rows    []map[string]any `json:"rows"`
}

func (p projectionResult) writeTable(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for i, c := range p.Columns {
		if i > 0 {
			fmt.Fprint(tw, "\t")
		}
		fmt.Fprint(tw, c)
	}
	fmt.Fprintln(tw)
	for _, row := range p.Rows {
		for i, c := range p.Columns {
			if i > 0 {
				fmt.Fprint(tw, "\t")
			}
			fmt.Fprint(tw, row[c])
		}
		fmt.Fprintln(tw)
	}
	return tw.Flush()
}

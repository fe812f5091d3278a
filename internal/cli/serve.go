package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/sash/pkg/httpapi"
)

// serveCommand creates the serve command for running the layout API.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr    string
		maxBody int64
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the layout pipeline over HTTP",
		Long: `Serve the layout pipeline over HTTP.

POST a TOML manifest (or a JSON options envelope) to /api/v1/layout and the
response body is the rendered artifact in the requested format. The server
shuts down gracefully when the command is interrupted.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			srv := httpapi.NewServer(httpapi.Config{
				Addr:         addr,
				MaxBodyBytes: maxBody,
				Logger:       c.Logger,
			})
			printInfo("Listening on %s", addr)
			return srv.ListenAndServe(cmd.Context())
		},
	}

	cmd.Flags().StringVar(&addr, "addr", httpapi.DefaultAddr, "listen address")
	cmd.Flags().Int64Var(&maxBody, "max-body", httpapi.DefaultMaxBodyBytes, "maximum request body size in bytes")

	return cmd
}

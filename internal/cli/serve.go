package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/releaseorder/pkg/server"
)

// serveCommand creates the serve command.
func (c *CLI) serveCommand() *cobra.Command {
	settings := server.DefaultSettings()

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the ordering API over HTTP",
		Long: `Serve the ordering API over HTTP until interrupted.

POST a manifest to /v1/order to receive its order, or 409 with every cycle.
The listen address defaults to $` + envAddr + ` or ` + server.DefaultAddr + `.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s := server.New(c.newRunner(), c.Logger, settings)
			printInfo(cmd.ErrOrStderr(), "Serving the ordering API on %s (Ctrl+C to stop)", settings.Addr)
			return s.Run(cmd.Context())
		},
	}

	cmd.Flags().StringVar(&settings.Addr, "addr", defaultAddr(), "listen address")
	cmd.Flags().Int64Var(&settings.MaxBodyBytes, "max-body", server.DefaultMaxBodyBytes, "maximum request body size in bytes")
	cmd.Flags().DurationVar(&settings.ReadTimeout, "read-timeout", settings.ReadTimeout, "request read timeout")
	cmd.Flags().DurationVar(&settings.WriteTimeout, "write-timeout", settings.WriteTimeout, "response write timeout")
	cmd.Flags().IntVar(&settings.MaxItems, "max-items", server.DefaultMaxItems, "maximum items per manifest")
	cmd.Flags().DurationVar(&settings.OrderTimeout, "order-timeout", server.DefaultOrderTimeout, "time limit for one ordering run")

	return cmd
}

package cmd

import (
	"io/fs"
	"os"
	"os/signal"
	"syscall"

	"github.com/hance08/teller/internal/app"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

func NewSandboxCmd(a *app.App, migrations fs.FS) *cobra.Command {
	var listen string

	cmd := &cobra.Command{
		Use:   "sandbox",
		Short: "Serve a local banking API backed by sqlite",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if listen == "" {
				listen = a.Config.Sandbox.Listen
			}

			srv, cleanup, err := app.NewSandbox(a.Config, a.Logger, migrations)
			if err != nil {
				return err
			}
			defer cleanup()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			pterm.Info.Printf("Sandbox listening on %s (Ctrl+C to stop)\n", listen)
			return srv.ListenAndServe(ctx, listen)
		},
	}

	cmd.Flags().StringVarP(&listen, "listen", "l", "", "Listen address (default sandbox.listen)")

	return cmd
}

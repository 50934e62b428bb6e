package cmd

import (
	"github.com/hance08/teller/internal/app"
	"github.com/hance08/teller/internal/ui/views"
	"github.com/spf13/cobra"
)

type infoRunner struct {
	app *app.App
}

func NewInfoCmd(a *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Display application information",
		Long:  `Display the current configuration: API endpoint, mode, user and sandbox settings.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &infoRunner{
				app: a,
			}

			return runner.Run()
		},
	}
}

func (r *infoRunner) Run() error {
	cfg := r.app.Config

	dbPath, err := app.SandboxDBPath(cfg)
	if err != nil {
		dbPath = "Unknown"
	}

	items := views.SystemInfoItem{
		ConfigPath: cfg.ConfigPath,
		BaseURL:    r.app.Gateway.BaseURL(),
		Production: cfg.API.Production,
		UserID:     cfg.User.ID,
		LogLevel:   cfg.Log.Level,
		Listen:     cfg.Sandbox.Listen,
		SandboxDB:  dbPath,
	}

	return views.RenderSystemInfo(items)
}

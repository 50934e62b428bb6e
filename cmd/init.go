package cmd

import (
	"github.com/hance08/teller/internal/app"
	"github.com/hance08/teller/internal/ui/prompts"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func NewInitCmd(a *app.App, v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Set the API endpoint and user interactively",
		RunE: func(cmd *cobra.Command, args []string) error {
			current := prompts.InitSettings{
				BaseURL:    a.Config.API.BaseURL,
				UserID:     a.Config.User.ID,
				Production: a.Config.API.Production,
			}

			settings, err := prompts.PromptInitSettings(current)
			if err != nil {
				return err
			}

			v.Set("api.base_url", settings.BaseURL)
			v.Set("api.production", settings.Production)
			v.Set("user.id", settings.UserID)

			path, err := writeConfig(v, a.Config.ConfigPath)
			if err != nil {
				return err
			}

			pterm.Success.Printf("Configuration saved to %s\n", path)
			return nil
		},
	}
}

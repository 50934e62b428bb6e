package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/hance08/teller/cmd/cd"
	"github.com/hance08/teller/cmd/loan"
	"github.com/hance08/teller/internal/app"
	"github.com/hance08/teller/internal/config"
	"github.com/hance08/teller/internal/errhandler"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

func Execute(migrations fs.FS) {
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " ERROR ",
		Style: pterm.NewStyle(pterm.BgLightRed, pterm.FgBlack),
	}

	if err := NewRootCmd(migrations).Execute(); err != nil {
		errhandler.HandleError(err)
	}
}

// NewRootCmd builds the command tree. application is filled in by the
// persistent pre-run hook once flags and configuration are known.
func NewRootCmd(migrations fs.FS) *cobra.Command {
	v := viper.New()
	application := &app.App{}

	rootCmd := &cobra.Command{
		Use:   "teller",
		Short: "teller is a CLI client for the banking API",
		Long: `teller is a CLI client for the banking API.

It lists accounts and transactions, runs deposits, withdrawals and
transfers, drives loan and term certificate accounts, and can serve a
local sandbox of the API for development.`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := initConfig(v)
			if err != nil {
				return err
			}

			built, err := app.NewApp(cfg)
			if err != nil {
				return err
			}
			*application = *built

			return nil
		},
	}

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "set the config file path")
	rootCmd.PersistentFlags().Int64P("user", "u", 0, "user id (overrides user.id)")
	_ = v.BindPFlag("user.id", rootCmd.PersistentFlags().Lookup("user"))

	rootCmd.AddCommand(NewInfoCmd(application))
	rootCmd.AddCommand(NewInitCmd(application, v))
	rootCmd.AddCommand(NewAccountsCmd(application))
	rootCmd.AddCommand(NewAccountCmd(application))
	rootCmd.AddCommand(NewTransactionsCmd(application))
	rootCmd.AddCommand(NewTypesCmd(application))
	rootCmd.AddCommand(NewOpenCmd(application))
	rootCmd.AddCommand(NewDepositCmd(application))
	rootCmd.AddCommand(NewWithdrawCmd(application))
	rootCmd.AddCommand(NewTransferCmd(application))
	rootCmd.AddCommand(NewDeleteCmd(application))
	rootCmd.AddCommand(NewViewCmd(application))
	rootCmd.AddCommand(NewSandboxCmd(application, migrations))

	rootCmd.AddCommand(loan.NewLoanCmd(application))
	rootCmd.AddCommand(cd.NewCDCmd(application))

	return rootCmd
}

func initConfig(v *viper.Viper) (*config.Config, error) {
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		appDir, err := app.AppDataDir()
		if err != nil {
			return nil, fmt.Errorf("error getting app dir: %w", err)
		}

		v.AddConfigPath(appDir)
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	cfg, err := config.Load(v, cfgFile != "")
	if err != nil {
		return nil, err
	}

	return cfg, nil
}

// writeConfig saves v to the file in use, or to config.yaml in the app
// data dir when none was found.
func writeConfig(v *viper.Viper, used string) (string, error) {
	path := used
	if path == "" {
		appDir, err := app.AppDataDir()
		if err != nil {
			return "", err
		}
		if err := os.MkdirAll(appDir, 0755); err != nil {
			return "", fmt.Errorf("failed to create config directory: %w", err)
		}
		path = filepath.Join(appDir, "config.yaml")
	}

	if err := v.WriteConfigAs(path); err != nil {
		return "", fmt.Errorf("failed to write config file: %w", err)
	}

	return path, nil
}

func requireUser(a *app.App) (int64, error) {
	if a.Config.User.ID <= 0 {
		return 0, errors.New("no user id configured, run `teller init` or pass --user")
	}
	return a.Config.User.ID, nil
}

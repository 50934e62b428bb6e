package cmd

import (
	"github.com/hance08/teller/internal/app"
	"github.com/hance08/teller/internal/model"
	"github.com/hance08/teller/internal/ui/views"
	"github.com/spf13/cobra"
)

func NewTypesCmd(a *app.App) *cobra.Command {
	var (
		typeID int64
		name   string
	)

	cmd := &cobra.Command{
		Use:   "types",
		Short: "List account types, or look one up by id or name",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			gw := a.Gateway

			var (
				types []model.AccountType
				err   error
			)
			switch {
			case typeID > 0:
				var t model.AccountType
				t, err = fetch(ctx, gw.GetAccountTypeByID(ctx, typeID), "account type")
				types = []model.AccountType{t}
			case name != "":
				var t model.AccountType
				t, err = fetch(ctx, gw.GetAccountTypeByName(ctx, name), "account type")
				types = []model.AccountType{t}
			default:
				types, err = fetch(ctx, gw.GetAccountTypes(ctx), "account types")
			}
			if err != nil {
				return err
			}

			return views.RenderAccountTypes(types)
		},
	}

	cmd.Flags().Int64Var(&typeID, "id", 0, "Look up an account type by id")
	cmd.Flags().StringVar(&name, "name", "", "Look up an account type by name")
	cmd.MarkFlagsMutuallyExclusive("id", "name")

	return cmd
}

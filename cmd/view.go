package cmd

import (
	"context"
	"os"

	"github.com/hance08/teller/internal/app"
	"github.com/hance08/teller/internal/model"
	"github.com/hance08/teller/internal/ui"
	"github.com/hance08/teller/internal/ui/prompts"
	"github.com/hance08/teller/internal/ui/views"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

func NewViewCmd(a *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "view",
		Short: "Browse accounts interactively",
		Long: `Pick one of your accounts, see it in the view for its kind and run
the operations that kind supports.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			userID, err := requireUser(a)
			if err != nil {
				return err
			}
			ctx := cmd.Context()

			router := views.NewAccountView(a.Gateway)
			source, accounts, err := router.Load(ctx, userID)
			if err != nil {
				return err
			}
			if len(accounts) == 0 {
				pterm.Warning.Printf("No accounts found for user %d\n", userID)
				return nil
			}

			acc, err := prompts.PromptAccount("Account:", accounts)
			if err != nil {
				return err
			}

			router.ShowDetails(acc)
			variant, err := router.Select(ctx, acc, source)
			if err != nil {
				return err
			}
			if err := router.Render(ctx, os.Stdout); err != nil {
				return err
			}

			return runActions(ctx, variant)
		},
	}
}

// runActions lets the user run one of the variant's actions.
func runActions(ctx context.Context, variant views.AccountVariant) error {
	action, err := prompts.PromptAction(variant.Actions())
	if err != nil || action == nil {
		return err
	}

	var targets []model.Account
	if action.NeedsTarget {
		list, err := variant.Accounts().Await(ctx)
		if err != nil {
			return err
		}
		targets = views.Others(variant.Account().ID, list.Body)
	}

	in, err := prompts.PromptActionInput(*action, targets)
	if err != nil {
		return err
	}

	if action.Destructive {
		confirmed, err := ui.Confirm(action.Label + "? This action cannot be undone.")
		if err != nil {
			return err
		}
		if !confirmed {
			pterm.Info.Println("Cancelled")
			return nil
		}
	}

	out, err := action.Run(ctx, in)
	if err != nil {
		return err
	}

	if err := views.RenderOutcome(action.Label, out); err != nil {
		return err
	}
	ui.Separator()
	return nil
}

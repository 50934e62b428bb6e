package prompts

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/hance08/teller/internal/validation"
)

type InitSettings struct {
	BaseURL    string
	UserID     int64
	Production bool
}

// PromptInitSettings runs the first-time setup form.
func PromptInitSettings(current InitSettings) (InitSettings, error) {
	baseURL := current.BaseURL
	userID := fmt.Sprint(current.UserID)
	production := current.Production

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Welcome to Teller! Banking API base URL:").
				Description("Scheme and host, e.g. http://localhost:5000").
				Value(&baseURL).
				Validate(func(s string) error {
					u, err := url.Parse(strings.TrimSpace(s))
					if err != nil || u.Scheme == "" || u.Host == "" {
						return errors.New("a full URL such as http://localhost:5000 is required")
					}
					return nil
				}),
			huh.NewInput().
				Title("User ID:").
				Description("Accounts are listed for this user.").
				Value(&userID).
				Validate(func(s string) error {
					_, err := validation.ParseID(s)
					return err
				}),
			huh.NewConfirm().
				Title("Production mode?").
				Description("Development mode logs every response body.").
				Affirmative("Yes").
				Negative("No").
				Value(&production),
		),
	)

	if err := form.Run(); err != nil {
		return InitSettings{}, err
	}

	id, err := validation.ParseID(userID)
	if err != nil {
		return InitSettings{}, err
	}

	return InitSettings{
		BaseURL:    strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		UserID:     id,
		Production: production,
	}, nil
}

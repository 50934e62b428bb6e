package prompts

import (
	"github.com/charmbracelet/huh"
	"github.com/hance08/teller/internal/validation"
)

// PromptAmount prompts for a positive amount with at most two decimals
func PromptAmount(message string, helpText string) (float64, error) {
	var raw string

	err := huh.NewInput().
		Title(message).
		Description(helpText).
		Value(&raw).
		Validate(validation.ValidateAmount).
		Run()
	if err != nil {
		return 0, err
	}

	return validation.ParseAmount(raw)
}

// PromptConfirm prompts for yes/no confirmation
func PromptConfirm(message string, defaultValue bool) (bool, error) {
	confirm := defaultValue

	err := huh.NewConfirm().
		Title(message).
		Affirmative("Yes").
		Negative("No").
		Value(&confirm).
		Run()

	return confirm, err
}

// PromptInput prompts for a generic text input with optional default and validator
func PromptInput(message string, defaultValue string, validator func(string) error) (string, error) {
	var inputVal string

	input := huh.NewInput().
		Title(message).
		Value(&inputVal)

	if defaultValue != "" {
		input.Placeholder(defaultValue)
	}

	if validator != nil {
		input.Validate(func(s string) error {
			if s == "" && defaultValue != "" {
				return nil
			}
			return validator(s)
		})
	}

	err := input.Run()
	if err != nil {
		return "", err
	}

	if inputVal == "" && defaultValue != "" {
		return defaultValue, nil
	}

	return inputVal, nil
}

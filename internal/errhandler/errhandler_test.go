package errhandler

import (
	"errors"
	"fmt"
	"testing"

	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/charmbracelet/huh"
)

func TestIsCancelled(t *testing.T) {
	tt := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"survey interrupt", terminal.InterruptErr, true},
		{"wrapped huh abort", fmt.Errorf("input cancelled: %w", huh.ErrUserAborted), true},
		{"other", errors.New("status 500"), false},
		{"transport fault", fmt.Errorf("failed to get accounts: %w", errors.New("read tcp: interrupted system call")), false},
	}

	for _, tc := range tt {
		if got := IsCancelled(tc.err); got != tc.want {
			t.Errorf("%s: IsCancelled = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestCapitalize(t *testing.T) {
	if got := Capitalize("failed to load accounts"); got != "Failed to load accounts" {
		t.Errorf("Capitalize = %q", got)
	}
	if got := Capitalize(""); got != "" {
		t.Errorf("Capitalize empty = %q", got)
	}
}

package ui

import (
	"fmt"

	"github.com/pterm/pterm"
)

func L1Title(format string, a ...interface{}) string {
	style := pterm.NewStyle(pterm.BgCyan, pterm.FgBlack, pterm.Bold)
	return style.Sprint(fmt.Sprintf(" %s   ", fmt.Sprintf(format, a...)))
}

func L2Title(format string, a ...interface{}) string {
	style := pterm.NewStyle(pterm.FgCyan, pterm.Bold)
	return style.Sprint(fmt.Sprintf("# %s   ", fmt.Sprintf(format, a...)))
}

// Separator prints a green separator line to the console.
func Separator() {
	pterm.Println(pterm.Green("----------------------------------------"))
}

package internal

import (
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

const errorPrefix = "ERROR:"

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// InitColor disables colored output when asked to or when stderr isn't a terminal.
func InitColor(noColor bool) {
	if noColor || !isTerminal(os.Stderr) {
		color.NoColor = true
	}
}

func ErrorPrefix() string {
	return color.RedString(errorPrefix)
}

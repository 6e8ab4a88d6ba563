package output

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// colorEnabled reports whether stdout is a terminal that should receive
// colored output. NO_COLOR is honored.
func colorEnabled() bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}

func colorize(text string, color lipgloss.Color) string {
	if !colorEnabled() {
		return text
	}
	return lipgloss.NewStyle().Foreground(color).Render(text)
}

// ColorGreen colors text green, used for step banners
func ColorGreen(text string) string {
	return colorize(text, lipgloss.Color("2"))
}

// ColorBlue colors text blue, used for follow-up instructions
func ColorBlue(text string) string {
	return colorize(text, lipgloss.Color("4"))
}

// ColorRed colors text red, used for step failures
func ColorRed(text string) string {
	return colorize(text, lipgloss.Color("1"))
}

// ColorDim makes text dim/gray
func ColorDim(text string) string {
	return colorize(text, lipgloss.Color("8"))
}

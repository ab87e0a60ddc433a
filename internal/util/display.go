package util

import (
	"fmt"
	"os"
	"strings"

	"github.com/mattn/go-runewidth"
	"golang.org/x/term"
)

// Terminal control sequences
const (
	ColorReset   = "\033[0m"
	ColorCyan    = "\033[36m"
	ColorGreen   = "\033[32m"
	ColorYellow  = "\033[33m"
	ColorRed     = "\033[31m"
	ColorMagenta = "\033[35m"
	ColorBold    = "\033[1m"
)

const defaultTerminalWidth = 100

var colorEnabled = term.IsTerminal(int(os.Stdout.Fd()))

// SetColorEnabled forces ANSI styling on or off
func SetColorEnabled(enabled bool) {
	colorEnabled = enabled
}

// TerminalWidth returns the stdout width, or a default when stdout is not a terminal
func TerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return defaultTerminalWidth
	}
	return width
}

// GetDisplayWidth calculates the display width of a string
func GetDisplayWidth(text string) int {
	return runewidth.StringWidth(text)
}

// PadRight pads text with spaces to the given display width
func PadRight(text string, width int) string {
	return runewidth.FillRight(text, width)
}

// PadLeft right-aligns text within the given display width
func PadLeft(text string, width int) string {
	return runewidth.FillLeft(text, width)
}

func style(codes, text string) string {
	if !colorEnabled {
		return text
	}
	return fmt.Sprintf("%s%s%s", codes, text, ColorReset)
}

// FormatHeaderTitle formats main header titles (Magenta + Bold)
func FormatHeaderTitle(title string) string {
	return style(ColorBold+ColorMagenta, title)
}

// FormatDiagnosticTitle formats diagnostic titles (Yellow + Bold)
func FormatDiagnosticTitle(title string) string {
	return style(ColorBold+ColorYellow, title)
}

// FormatDataTitle formats data section titles (Green + Bold)
func FormatDataTitle(title string) string {
	return style(ColorBold+ColorGreen, title)
}

// FormatErrorText highlights failures in red
func FormatErrorText(text string) string {
	return style(ColorRed, text)
}

// FormatSectionSeparator creates a separator line no wider than the terminal
func FormatSectionSeparator() string {
	width := TerminalWidth()
	if width > 80 {
		width = 80
	}
	return style(ColorBold+ColorCyan, strings.Repeat("─", width))
}

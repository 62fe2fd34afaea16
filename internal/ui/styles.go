package ui

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// ------- minimal styling helpers (Lip Gloss) -------
var (
	Title    = lipgloss.NewStyle().Bold(true)
	Success  = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	Pending  = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	Accent   = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	Muted    = lipgloss.NewStyle().Faint(true)
	Error    = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	Selected = lipgloss.NewStyle().Bold(true).Reverse(true)
	Help     = lipgloss.NewStyle().Faint(true)

	// Ledger colors: positive balances are owed money, negative owe it.
	Positive = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	Negative = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

// SetColorEnabled toggles all rendering between color and plain text.
func SetColorEnabled(enabled bool) {
	if !enabled {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
}

func OK(msg string) {
	fmt.Println(Success.Render("✔ " + msg))
}

func Fail(msg string) {
	fmt.Fprintln(os.Stderr, Error.Render("✖ " + msg))
}

// Panel draws a rounded framed box around the given content.
func Panel(inner string) string {
	border := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("8")).
		Padding(0, 1)
	return border.Render(inner)
}

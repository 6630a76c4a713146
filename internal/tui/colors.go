package tui

import "github.com/charmbracelet/lipgloss"

// ColorBranchName renders a branch name in the standard branch color
func ColorBranchName(name string) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("6")).
		Render(name)
}

// ColorCommand renders a shell command the user is expected to run
func ColorCommand(command string) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("3")).
		Bold(true).
		Render(command)
}

// ColorRed colors text red
func ColorRed(text string) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("1")).
		Render(text)
}

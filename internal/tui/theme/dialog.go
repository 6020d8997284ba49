package theme

import (
	"github.com/charmbracelet/lipgloss"
)

// CreatePromptStyle creates a style for prompt text in dialogs
func CreatePromptStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorBrightYellow)).
		Bold(true)
}

// CreateDialogHintStyle creates a style for the key hints under a dialog
func CreateDialogHintStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorBrightBlack)).
		Italic(true).
		MarginTop(1)
}

package theme

import (
	"github.com/charmbracelet/lipgloss"
)

// CreateInfoPanelStyle creates the style of the right hand information panel.
// width includes the left border.
func CreateInfoPanelStyle(width int) lipgloss.Style {
	return lipgloss.NewStyle().
		Width(max(0, width-1)).
		Padding(0, 1).
		Border(BorderInfoPanel, false, false, false, true).
		BorderForeground(lipgloss.Color(ColorBrightBlue))
}

// CreateSectionHeaderStyle creates a consistent section header style
func CreateSectionHeaderStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorBrightCyan)).
		MarginBottom(1)
}

// CreateInfoTextStyle creates a consistent info text style
func CreateInfoTextStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorWhite))
}

// CreateSecondaryTextStyle creates a consistent secondary text style
func CreateSecondaryTextStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorBrightBlack)).
		Italic(true)
}

// CreateDialogStyle creates a consistent dialog style
func CreateDialogStyle(width int, borderColor string) lipgloss.Style {
	style := lipgloss.NewStyle().
		Border(BorderStyleUnified).
		Padding(1, 2).
		Width(width).
		Foreground(lipgloss.Color(ColorWhite))

	if borderColor != "" {
		style = style.BorderForeground(lipgloss.Color(borderColor))
	} else {
		style = style.BorderForeground(lipgloss.Color(ColorBrightBlue))
	}

	return style
}

// CreateHeaderStyle creates a consistent header style
func CreateHeaderStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorBrightGreen))
}

// CreateColumnHeaderStyle creates the style of the column titles line
func CreateColumnHeaderStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Bold(true).
		Underline(true).
		Foreground(lipgloss.Color(ColorBrightCyan))
}

// CreateFooterStyle creates a consistent footer style
func CreateFooterStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorBrightBlack))
}

// CreateRowStyle creates the background of a row by selection and cursor state
func CreateRowStyle(selected, cursor bool) lipgloss.Style {
	style := lipgloss.NewStyle()
	switch {
	case selected:
		return style.Background(lipgloss.Color(ColorSelectedBackground)).Bold(cursor)
	case cursor:
		return style.Background(lipgloss.Color(ColorCursorBackground))
	default:
		return style
	}
}

// CreateFileNameStyle colors a file name by its category
func CreateFileNameStyle(category string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(GetFileColor(category)))
}

// CreateLoadingStyle creates a consistent loading state style
func CreateLoadingStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(ColorBrightYellow))
}

// CreateErrorStyle creates a consistent error style
func CreateErrorStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(ColorBrightRed))
}

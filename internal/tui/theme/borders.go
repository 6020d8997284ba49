package theme

import "github.com/charmbracelet/lipgloss"

// Border styles using Unicode box drawing characters
var (
	BorderStyleUnified = lipgloss.Border{
		Top:         "─",
		Bottom:      "─",
		Left:        "│",
		Right:       "│",
		TopLeft:     "┌",
		TopRight:    "┐",
		BottomLeft:  "└",
		BottomRight: "┘",
	}

	// BorderInfoPanel separates the row list from the information panel
	BorderInfoPanel = lipgloss.Border{Left: "│"}
)

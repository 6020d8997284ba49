package config

import "time"

// Layout constants
const (
	// Panel layout
	LeftPanelWidthRatio = 0.65
	MinInfoPanelWidth   = 28

	// Row layout, in terminal cells
	RowIconGap = 2
	ColumnGap  = 4

	// Lines above the first row: title, blank line, column titles
	ListTopLines = 3
	// Lines below the rows: blank line, status, footer
	ListBottomLines = 3

	// Dialog dimensions
	DialogDefaultWidth = 50
	DialogLargeWidth   = 70

	// Status messages disappear after this long
	StatusMessageTimeout = 5 * time.Second

	// Icons
	IconFolder = "📁"
	IconFile   = "📄"
)

// Mouse handling
const (
	DoubleClickInterval = 500 * time.Millisecond
	WheelStep           = 3
)

// Column titles, in display order
var ColumnTitles = [...]string{"Name", "Type", "Size", "Date Modified", "Date Created"}

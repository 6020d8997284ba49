package tui

import (
	"strings"

	"github.com/mattn/go-runewidth"

	tuiconfig "github.com/HaiFongPan/fmgr/internal/tui/config"
)

// MaxColumnWidths returns the widest cell of every column over rows, never below floor
func MaxColumnWidths(rows []*Row, floor ColumnWidths) ColumnWidths {
	widths := floor
	for _, row := range rows {
		for c, w := range row.ColumnWidths() {
			if w > widths[c] {
				widths[c] = w
			}
		}
	}
	return widths
}

// AlignColumns lays every row out with the same column widths.
// It must run again whenever the row set changes.
func AlignColumns(rows []*Row, floor ColumnWidths) ColumnWidths {
	widths := MaxColumnWidths(rows, floor)
	for _, row := range rows {
		row.AdjustColumns(widths)
	}
	return widths
}

// TitleWidths returns the width of every column title
func TitleWidths() ColumnWidths {
	var widths ColumnWidths
	for c, title := range tuiconfig.ColumnTitles {
		widths[c] = runewidth.StringWidth(title)
	}
	return widths
}

// HeaderLine renders the column titles at the offsets rows laid out with widths use
func HeaderLine(widths ColumnWidths) string {
	offsets, _ := layoutColumns(runewidth.StringWidth(tuiconfig.IconFile), widths)

	var b strings.Builder
	b.WriteString(strings.Repeat(" ", offsets[ColumnName]))
	gap := strings.Repeat(" ", tuiconfig.ColumnGap)
	for c, title := range tuiconfig.ColumnTitles {
		b.WriteString(runewidth.FillRight(runewidth.Truncate(title, widths[c], "…"), widths[c]))
		b.WriteString(gap)
	}
	return b.String()
}

package tui

import (
	"testing"

	"github.com/mattn/go-runewidth"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HaiFongPan/fmgr/internal/config"
	tuiconfig "github.com/HaiFongPan/fmgr/internal/tui/config"
)

func newAlignRows(t *testing.T) []*Row {
	t.Helper()
	mem := afero.NewMemMapFs()
	require.NoError(t, mem.MkdirAll("/w/a-much-longer-directory-name", 0755))
	require.NoError(t, afero.WriteFile(mem, "/w/x", []byte("1"), 0644))
	require.NoError(t, afero.WriteFile(mem, "/w/setup.exe", make([]byte, 1234567), 0644))
	require.NoError(t, afero.WriteFile(mem, "/w/installer.msi", make([]byte, 42), 0644))
	require.NoError(t, afero.WriteFile(mem, "/w/photo.jpeg", make([]byte, 999999), 0644))

	insp := newTestInspector(mem)
	names := []string{"x", "setup.exe", "installer.msi", "photo.jpeg", "a-much-longer-directory-name"}
	rows := make([]*Row, len(names))
	for i, name := range names {
		rows[i] = NewRow(insp, "/w", name, config.DefaultDateFormat)
	}
	return rows
}

func TestAlignColumns_SharedOffsets(t *testing.T) {
	rows := newAlignRows(t)

	widths := AlignColumns(rows, ColumnWidths{})

	assert.Equal(t, len("a-much-longer-directory-name"), widths[ColumnName])
	assert.Equal(t, len("Windows Installer Package"), widths[ColumnType])
	assert.Equal(t, len("999.999 KB"), widths[ColumnSize])

	left := runewidth.StringWidth(tuiconfig.IconFile) + tuiconfig.RowIconGap
	var want [columnCount]int
	running := left
	for c := ColumnName; c < columnCount; c++ {
		want[c] = running
		running += widths[c] + tuiconfig.ColumnGap
	}

	for _, row := range rows {
		assert.Equal(t, want, row.Offsets(), row.Name())
		assert.Equal(t, running, row.Width(), row.Name())
		assert.Equal(t, widths, row.Widths())
	}
}

func TestAlignColumns_Floor(t *testing.T) {
	rows := newAlignRows(t)

	widths := AlignColumns(rows, TitleWidths())
	assert.GreaterOrEqual(t, widths[ColumnSize], len("Size"))
	assert.Equal(t, len("01/02/2006 03:04 PM"), widths[ColumnModified])
}

func TestAlignColumns_RecomputeAfterRowSetChange(t *testing.T) {
	rows := newAlignRows(t)
	AlignColumns(rows, ColumnWidths{})

	// dropping the widest name shrinks the name column on the next pass
	rows = rows[:4]
	widths := AlignColumns(rows, ColumnWidths{})
	assert.Equal(t, len("installer.msi"), widths[ColumnName])
	for _, row := range rows {
		assert.Equal(t, widths, row.Widths())
	}
}

func TestAlignColumns_Empty(t *testing.T) {
	assert.Equal(t, TitleWidths(), AlignColumns(nil, TitleWidths()))
}

func TestHeaderLine(t *testing.T) {
	rows := newAlignRows(t)
	widths := AlignColumns(rows, TitleWidths())

	header := HeaderLine(widths)
	assert.Equal(t, rows[0].Width(), runewidth.StringWidth(header))
	for c, title := range tuiconfig.ColumnTitles {
		offset := rows[0].Offsets()[c]
		assert.Equal(t, title, header[offset:offset+len(title)])
	}
}

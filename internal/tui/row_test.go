package tui

import (
	"io/fs"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/mattn/go-runewidth"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HaiFongPan/fmgr/internal/config"
	"github.com/HaiFongPan/fmgr/internal/files"
	tuiconfig "github.com/HaiFongPan/fmgr/internal/tui/config"
)

var (
	testModified = time.Date(2024, 3, 5, 14, 30, 0, 0, time.UTC)
	testCreated  = time.Date(2023, 11, 20, 9, 5, 0, 0, time.UTC)
)

// deniedFs fails Stat with a permission error for the listed paths
type deniedFs struct {
	afero.Fs
	denied map[string]bool
}

func (d *deniedFs) Stat(name string) (os.FileInfo, error) {
	if d.denied[name] {
		return nil, &fs.PathError{Op: "stat", Path: name, Err: fs.ErrPermission}
	}
	return d.Fs.Stat(name)
}

func newTestFs(t *testing.T) afero.Fs {
	t.Helper()
	mem := afero.NewMemMapFs()
	require.NoError(t, mem.MkdirAll("/work/projects", 0755))
	require.NoError(t, afero.WriteFile(mem, "/work/notes.txt", []byte("hello world"), 0644))
	require.NoError(t, afero.WriteFile(mem, "/work/report.pdf", make([]byte, 1500), 0644))
	require.NoError(t, afero.WriteFile(mem, "/work/Makefile", []byte("all:"), 0644))
	for _, p := range []string{"/work/notes.txt", "/work/report.pdf", "/work/Makefile", "/work/projects"} {
		require.NoError(t, mem.Chtimes(p, testModified, testModified))
	}
	return mem
}

func newTestInspector(fsys afero.Fs) *files.Inspector {
	return files.NewInspector(fsys).WithBirthTime(func(string) (time.Time, error) {
		return testCreated, nil
	})
}

func newTestRow(t *testing.T, name string) *Row {
	t.Helper()
	return NewRow(newTestInspector(newTestFs(t)), "/work", name, config.DefaultDateFormat)
}

func TestRow_File(t *testing.T) {
	row := newTestRow(t, "notes.txt")

	assert.Equal(t, "notes.txt", row.Name())
	assert.Equal(t, "/work", row.BasePath())
	assert.Equal(t, "/work/notes.txt", row.FullPath())
	assert.False(t, row.IsDir())
	assert.False(t, row.Selected())
	assert.Equal(t, ".txt", row.FileType())
	assert.Equal(t, "Text", row.TypeText())
	assert.True(t, row.SizeVisible())
	assert.Equal(t, files.SizeLabel{Text: "11 B", Tooltip: "11 bytes"}, row.SizeLabel())
	assert.Equal(t, "03/05/2024 02:30 PM", row.ModifiedText())
	assert.Equal(t, "11/20/2023 09:05 AM", row.CreatedText())
	assert.Equal(t, "11 bytes", row.Tooltip(ColumnSize))
	assert.Equal(t, "notes.txt", row.Tooltip(ColumnName))
	assert.Equal(t, "File Type", row.Tooltip(ColumnType))
}

func TestRow_KilobyteFile(t *testing.T) {
	row := newTestRow(t, "report.pdf")

	assert.Equal(t, "Document", row.TypeText())
	assert.Equal(t, "1.5 KB", row.SizeLabel().Text)
	assert.Equal(t, "1.5 kilobytes", row.SizeLabel().Tooltip)
}

func TestRow_NoExtension(t *testing.T) {
	row := newTestRow(t, "Makefile")

	assert.Equal(t, "?", row.FileType())
	assert.Equal(t, "Unknown File Type", row.TypeText())
}

func TestRow_Directory(t *testing.T) {
	row := newTestRow(t, "projects")

	assert.True(t, row.IsDir())
	assert.False(t, row.SizeVisible())
	assert.Equal(t, "?", row.FileType())
	assert.Equal(t, "File Folder", row.TypeText())
	assert.Equal(t, 0, row.ColumnWidths()[ColumnSize])
	assert.Equal(t, tuiconfig.IconFolder, row.icon)

	size := row.FileSize()
	assert.True(t, size.Ok())
	assert.Equal(t, uint64(0), size.Value)

	// a directory named like a file still is a folder
	row.SetName("projects.txt")
	assert.Equal(t, "?", row.FileType())
	assert.Equal(t, "File Folder", row.TypeText())
}

func TestRow_MissingEntry(t *testing.T) {
	row := newTestRow(t, "gone.txt")

	assert.False(t, row.IsDir())
	assert.Equal(t, "null", row.SizeLabel().Text)
	assert.Equal(t, tooltipSizeUnhandled, row.SizeLabel().Tooltip)
	assert.Equal(t, "null", row.ModifiedText())
	assert.Equal(t, "null", row.CreatedText())
	assert.Equal(t, files.KindNotFound, row.Metadata().Size.Kind)
}

func TestRow_PermissionDenied(t *testing.T) {
	guarded := &deniedFs{Fs: newTestFs(t), denied: map[string]bool{"/work/notes.txt": true}}
	row := NewRow(newTestInspector(guarded), "/work", "notes.txt", config.DefaultDateFormat)

	assert.Equal(t, "null", row.SizeLabel().Text)
	assert.Equal(t, tooltipSizeSecurity, row.SizeLabel().Tooltip)
	assert.Equal(t, "null", row.ModifiedText())
	assert.Equal(t, files.KindPermission, row.Metadata().Modified.Kind)
}

func TestRow_CreatedUnsupported(t *testing.T) {
	row := NewRow(files.NewInspector(newTestFs(t)), "/work", "notes.txt", config.DefaultDateFormat)

	assert.Equal(t, "null", row.CreatedText())
	assert.Equal(t, "03/05/2024 02:30 PM", row.ModifiedText())
	assert.Equal(t, "11 B", row.SizeLabel().Text)
}

func TestRow_RequeryReflectsChanges(t *testing.T) {
	mem := newTestFs(t)
	row := NewRow(newTestInspector(mem), "/work", "notes.txt", config.DefaultDateFormat)

	require.NoError(t, afero.WriteFile(mem, "/work/notes.txt", make([]byte, 2000), 0644))
	size := row.FileSize()
	require.True(t, size.Ok())
	assert.Equal(t, uint64(2000), size.Value)
	assert.Equal(t, "2.0 KB", row.SizeLabel().Text)

	require.NoError(t, mem.Remove("/work/notes.txt"))
	assert.Equal(t, files.KindNotFound, row.FileSize().Kind)
	assert.Equal(t, "null", row.SizeLabel().Text)
	assert.Equal(t, files.KindNotFound, row.DateModified().Kind)
	assert.Equal(t, "null", row.ModifiedText())
	assert.Equal(t, files.KindNotFound, row.DateCreated().Kind)
	assert.Equal(t, "null", row.CreatedText())
}

func TestRow_RequeryRestoresDatesAfterFailure(t *testing.T) {
	mem := newTestFs(t)
	row := NewRow(newTestInspector(mem), "/work", "notes.txt", config.DefaultDateFormat)

	require.NoError(t, mem.Remove("/work/notes.txt"))
	row.DateModified()
	row.DateCreated()
	require.Equal(t, "null", row.ModifiedText())
	require.Equal(t, "null", row.CreatedText())

	later := testModified.Add(24 * time.Hour)
	require.NoError(t, afero.WriteFile(mem, "/work/notes.txt", []byte("back"), 0644))
	require.NoError(t, mem.Chtimes("/work/notes.txt", later, later))

	assert.True(t, row.DateModified().Ok())
	assert.Equal(t, "03/06/2024 02:30 PM", row.ModifiedText())
	assert.True(t, row.DateCreated().Ok())
	assert.Equal(t, "11/20/2023 09:05 AM", row.CreatedText())
}

func TestRow_SetNameAndSelect(t *testing.T) {
	row := newTestRow(t, "notes.txt")

	row.SetName("notes.mp3")
	assert.Equal(t, "notes.mp3", row.Name())
	assert.Equal(t, ".mp3", row.FileType())
	assert.Equal(t, "Audio", row.TypeText())
	assert.Equal(t, "/work/notes.mp3", row.FullPath())

	row.Select(true)
	assert.True(t, row.Selected())
	row.Select(false)
	assert.False(t, row.Selected())
}

func TestRow_LayoutAndHitTest(t *testing.T) {
	row := newTestRow(t, "notes.txt")
	widths := ColumnWidths{10, 6, 8, 19, 19}
	row.AdjustColumns(widths)

	iconWidth := runewidth.StringWidth(tuiconfig.IconFile)
	left := iconWidth + tuiconfig.RowIconGap
	gap := tuiconfig.ColumnGap
	assert.Equal(t, [columnCount]int{
		left,
		left + 10 + gap,
		left + 10 + 6 + 2*gap,
		left + 10 + 6 + 8 + 3*gap,
		left + 10 + 6 + 8 + 19 + 4*gap,
	}, row.Offsets())
	assert.Equal(t, left+10+6+8+19+19+5*gap, row.Width())
	assert.Equal(t, widths, row.Widths())

	assert.Equal(t, CellIcon, row.CellAt(0))
	assert.Equal(t, CellGap, row.CellAt(iconWidth))
	assert.Equal(t, ColumnName, row.CellAt(left))
	assert.Equal(t, ColumnName, row.CellAt(left+9))
	assert.Equal(t, CellGap, row.CellAt(left+10))
	assert.Equal(t, ColumnType, row.CellAt(row.Offsets()[ColumnType]))
	assert.Equal(t, ColumnCreated, row.CellAt(row.Offsets()[ColumnCreated]+18))
	assert.Equal(t, CellOutside, row.CellAt(row.Width()))
	assert.Equal(t, CellOutside, row.CellAt(-1))
	assert.True(t, row.HasSource(0))
	assert.False(t, row.HasSource(row.Width()))
}

func TestRow_PlainView(t *testing.T) {
	row := newTestRow(t, "notes.txt")

	line := row.PlainView()
	assert.Equal(t, row.Width(), runewidth.StringWidth(line))
	assert.True(t, strings.HasPrefix(line, tuiconfig.IconFile))
	assert.Contains(t, line, "notes.txt")
	assert.Contains(t, line, "11 B")
	assert.Contains(t, line, "03/05/2024 02:30 PM")

	row.AdjustColumns(ColumnWidths{5, 4, 4, 19, 19})
	truncated := row.PlainView()
	assert.Contains(t, truncated, "note…")
	assert.Equal(t, row.Width(), runewidth.StringWidth(truncated))
}

func TestRow_View(t *testing.T) {
	row := newTestRow(t, "notes.txt")
	row.Select(true)

	assert.Contains(t, row.View(true), "notes.txt")
	assert.Contains(t, row.View(false), "11 B")
}

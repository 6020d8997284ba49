package tui

import (
	"path/filepath"
	"strings"
	"time"

	"github.com/mattn/go-runewidth"

	"github.com/HaiFongPan/fmgr/internal/files"
	tuiconfig "github.com/HaiFongPan/fmgr/internal/tui/config"
	"github.com/HaiFongPan/fmgr/internal/tui/theme"
)

// Column identifies a cell of a row, in display order
type Column int

// Columns of a row
const (
	ColumnName Column = iota
	ColumnType
	ColumnSize
	ColumnModified
	ColumnCreated
	columnCount
)

// Hit test results that are not a column
const (
	CellIcon    Column = -1
	CellGap     Column = -2
	CellOutside Column = -3
)

// ColumnWidths holds one width per column, in terminal cells
type ColumnWidths [columnCount]int

// nullText is shown for a field whose lookup failed
const nullText = "null"

// Tooltips for fields without a value specific tooltip
const (
	tooltipType          = "File Type"
	tooltipModified      = "Date Modified"
	tooltipCreated       = "Date Created"
	tooltipSizeSecurity  = "A security error occurred and the file's size could not be read."
	tooltipSizeUnhandled = "An error occurred and the file's size could not be read."
)

// Row renders one filesystem entry as a line of aligned cells
type Row struct {
	inspector  *files.Inspector
	name       string
	basePath   string
	dateFormat string

	isDir    bool
	selected bool
	icon     string
	typeText string
	size     files.SizeLabel
	modified string
	created  string
	meta     files.Metadata

	widths  ColumnWidths
	offsets [columnCount]int
	width   int
}

// NewRow builds the row for name inside basePath and reads its metadata
func NewRow(inspector *files.Inspector, basePath, name, dateFormat string) *Row {
	r := &Row{
		inspector:  inspector,
		name:       name,
		basePath:   basePath,
		dateFormat: dateFormat,
	}
	r.configure()
	r.AdjustColumns(r.ColumnWidths())
	r.Select(false)
	return r
}

// configure fills the cells from the entry's metadata
func (r *Row) configure() {
	r.meta = r.inspector.Inspect(r.FullPath())
	r.isDir = r.meta.IsDir

	if r.isDir {
		r.icon = tuiconfig.IconFolder
		r.size = files.SizeLabel{}
	} else {
		r.icon = tuiconfig.IconFile
		r.configureSize(r.meta.Size)
	}

	r.typeText = files.TypeText(r.FileType(), r.isDir)
	r.modified = r.formatDate(r.meta.Modified)
	r.created = r.formatDate(r.meta.Created)
}

func (r *Row) configureSize(size files.Attr[uint64]) {
	if r.isDir {
		return
	}
	switch size.Kind {
	case files.KindNone:
		r.size = files.FormatSize(size.Value)
	case files.KindPermission:
		r.size = files.SizeLabel{Text: nullText, Tooltip: tooltipSizeSecurity}
	default:
		r.size = files.SizeLabel{Text: nullText, Tooltip: tooltipSizeUnhandled}
	}
}

func (r *Row) formatDate(t files.Attr[time.Time]) string {
	if !t.Ok() {
		return nullText
	}
	return t.Value.Format(r.dateFormat)
}

// Name returns the displayed file name
func (r *Row) Name() string {
	return r.name
}

// SetName changes the displayed name; the type cell follows the new extension
func (r *Row) SetName(name string) {
	r.name = name
	r.typeText = files.TypeText(r.FileType(), r.isDir)
}

// BasePath returns the directory holding the entry
func (r *Row) BasePath() string {
	return r.basePath
}

// FullPath returns the entry's path
func (r *Row) FullPath() string {
	return filepath.Join(r.basePath, r.name)
}

// IsDir reports whether the entry is a directory
func (r *Row) IsDir() bool {
	return r.isDir
}

// Selected reports whether the row is highlighted
func (r *Row) Selected() bool {
	return r.selected
}

// Select highlights or clears the row
func (r *Row) Select(selected bool) {
	r.selected = selected
}

// FileType returns the extension including its dot, or "?"
func (r *Row) FileType() string {
	return files.Extension(r.name, r.isDir)
}

// TypeText returns the type cell
func (r *Row) TypeText() string {
	return r.typeText
}

// SizeVisible reports whether the size cell is shown
func (r *Row) SizeVisible() bool {
	return !r.isDir
}

// SizeLabel returns the size cell and its tooltip
func (r *Row) SizeLabel() files.SizeLabel {
	return r.size
}

// ModifiedText returns the modified cell
func (r *Row) ModifiedText() string {
	return r.modified
}

// CreatedText returns the created cell
func (r *Row) CreatedText() string {
	return r.created
}

// Metadata returns what was read when the row was built
func (r *Row) Metadata() files.Metadata {
	return r.meta
}

// FileSize reads the current size again. Directories report zero.
// A failed lookup turns the size cell into "null".
func (r *Row) FileSize() files.Attr[uint64] {
	if r.isDir {
		return files.Attr[uint64]{}
	}
	size := r.inspector.Size(r.FullPath())
	r.configureSize(size)
	return size
}

// DateModified reads the current modification time again and updates the cell
func (r *Row) DateModified() files.Attr[time.Time] {
	modified := r.inspector.Modified(r.FullPath())
	r.modified = r.formatDate(modified)
	return modified
}

// DateCreated reads the current creation time again and updates the cell
func (r *Row) DateCreated() files.Attr[time.Time] {
	created := r.inspector.Created(r.FullPath())
	r.created = r.formatDate(created)
	return created
}

// Tooltip returns the verbose text of a column
func (r *Row) Tooltip(c Column) string {
	switch c {
	case ColumnName:
		return r.name
	case ColumnType:
		return tooltipType
	case ColumnSize:
		return r.size.Tooltip
	case ColumnModified:
		return tooltipModified
	case ColumnCreated:
		return tooltipCreated
	default:
		return ""
	}
}

func (r *Row) cellText(c Column) string {
	switch c {
	case ColumnName:
		return r.name
	case ColumnType:
		return r.typeText
	case ColumnSize:
		if !r.SizeVisible() {
			return ""
		}
		return r.size.Text
	case ColumnModified:
		return r.modified
	case ColumnCreated:
		return r.created
	default:
		return ""
	}
}

func (r *Row) iconWidth() int {
	return runewidth.StringWidth(r.icon)
}

// ColumnWidths returns the natural width of every cell
func (r *Row) ColumnWidths() ColumnWidths {
	var widths ColumnWidths
	for c := ColumnName; c < columnCount; c++ {
		widths[c] = runewidth.StringWidth(r.cellText(c))
	}
	return widths
}

// AdjustColumns lays the cells out with the given widths and grows the row to fit them
func (r *Row) AdjustColumns(widths ColumnWidths) {
	r.widths = widths
	r.offsets, r.width = layoutColumns(r.iconWidth(), widths)
}

// Widths returns the widths the row is laid out with
func (r *Row) Widths() ColumnWidths {
	return r.widths
}

// Offsets returns the first cell of every column
func (r *Row) Offsets() [columnCount]int {
	return r.offsets
}

// Width returns the row width
func (r *Row) Width() int {
	return r.width
}

// CellAt returns the column under horizontal position x
func (r *Row) CellAt(x int) Column {
	if x < 0 || x >= r.width {
		return CellOutside
	}
	if x < r.iconWidth() {
		return CellIcon
	}
	for c := ColumnName; c < columnCount; c++ {
		if x >= r.offsets[c] && x < r.offsets[c]+r.widths[c] {
			return c
		}
	}
	return CellGap
}

// HasSource reports whether x falls on the row at all
func (r *Row) HasSource(x int) bool {
	return r.CellAt(x) != CellOutside
}

// segments returns the padded cells of the row, icon first, gaps included
func (r *Row) segments() []string {
	segs := make([]string, 0, 2*int(columnCount)+1)
	segs = append(segs, runewidth.FillRight(r.icon, r.offsets[ColumnName]))
	gap := strings.Repeat(" ", tuiconfig.ColumnGap)
	for c := ColumnName; c < columnCount; c++ {
		text := runewidth.Truncate(r.cellText(c), r.widths[c], "…")
		segs = append(segs, runewidth.FillRight(text, r.widths[c]), gap)
	}
	return segs
}

// PlainView renders the row without styling
func (r *Row) PlainView() string {
	return strings.Join(r.segments(), "")
}

// View renders the row; cursor marks the row under the keyboard cursor
func (r *Row) View(cursor bool) string {
	base := theme.CreateRowStyle(r.selected, cursor)
	nameStyle := theme.CreateFileNameStyle(files.Category(r.typeText)).Inherit(base)

	var b strings.Builder
	for i, seg := range r.segments() {
		// segment 1 is the name cell
		if i == 1 {
			b.WriteString(nameStyle.Render(seg))
			continue
		}
		b.WriteString(base.Render(seg))
	}
	return b.String()
}

// layoutColumns places the columns after an icon of iconWidth cells.
// It returns the start of every column and the total width.
func layoutColumns(iconWidth int, widths ColumnWidths) ([columnCount]int, int) {
	var offsets [columnCount]int
	hsum := iconWidth + tuiconfig.RowIconGap
	for c := ColumnName; c < columnCount; c++ {
		offsets[c] = hsum
		hsum += widths[c] + tuiconfig.ColumnGap
	}
	return offsets, hsum
}

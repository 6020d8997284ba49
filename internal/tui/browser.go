package tui

import (
	"fmt"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sirupsen/logrus"

	"github.com/HaiFongPan/fmgr/internal/config"
	"github.com/HaiFongPan/fmgr/internal/files"
	tuiconfig "github.com/HaiFongPan/fmgr/internal/tui/config"
	"github.com/HaiFongPan/fmgr/internal/tui/messaging"
	"github.com/HaiFongPan/fmgr/internal/tui/theme"
	"github.com/HaiFongPan/fmgr/internal/utils"
)

// reloadDelay groups bursts of watcher events into one reload
const reloadDelay = 200 * time.Millisecond

// SortOrder is the order rows are listed in; directories always come first
type SortOrder int

// Sort orders, in the order the sort key cycles through them
const (
	SortByName SortOrder = iota
	SortBySize
	SortByModified
	SortByCreated
	sortOrderCount
)

func (s SortOrder) String() string {
	switch s {
	case SortByName:
		return "name"
	case SortBySize:
		return "size"
	case SortByModified:
		return "date modified"
	case SortByCreated:
		return "date created"
	default:
		return "unknown"
	}
}

// details holds the values shown in the information panel for the cursor row
type details struct {
	path     string
	size     files.Attr[uint64]
	modified files.Attr[time.Time]
	created  files.Attr[time.Time]
}

// BrowserModel lists a directory as aligned rows
type BrowserModel struct {
	manager   *files.Manager
	inspector *files.Inspector
	config    *config.Config
	title     string

	rows         []*Row
	rowsDir      string
	contentTypes map[string]string
	widths       ColumnWidths
	cursor       int
	viewport     int
	loading      bool
	error        error
	sortOrder    SortOrder
	details      details

	renaming     bool
	renameTarget string
	renameInput  textinput.Model

	showHelp     bool
	windowWidth  int
	windowHeight int

	keyMap  KeyMap
	help    help.Model
	spinner spinner.Model
	status  messaging.StatusManager

	watcher       *files.Watcher
	reloadPending bool

	lastClick    time.Time
	lastClickRow int

	now             func() time.Time
	copyToClipboard func(string) error
}

// Message types for tea.Cmd communication
type rowsLoadedMsg struct {
	dir          string
	rows         []*Row
	contentTypes map[string]string
	focus        string
	err          error
}

type dirChangedMsg struct {
	dir string
}

type reloadDueMsg struct{}

// NewBrowserModel creates a browser showing the manager's current directory
func NewBrowserModel(manager *files.Manager, inspector *files.Inspector, cfg *config.Config, title string) *BrowserModel {
	// Initialize spinner for loading states
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = theme.CreateLoadingStyle()

	// Initialize help
	h := help.New()
	h.ShowAll = false

	ti := textinput.New()
	ti.CharLimit = 255
	ti.Prompt = "> "

	return &BrowserModel{
		manager:         manager,
		inspector:       inspector,
		config:          cfg,
		title:           title,
		loading:         true,
		windowWidth:     80,
		windowHeight:    24,
		keyMap:          DefaultKeyMap(),
		help:            h,
		spinner:         s,
		renameInput:     ti,
		status:          messaging.NewStatusManager(),
		lastClickRow:    -1,
		now:             time.Now,
		copyToClipboard: utils.CopyToClipboard,
	}
}

// SetWatcher makes the browser reload when the shown directory changes
func (m *BrowserModel) SetWatcher(w *files.Watcher) {
	m.watcher = w
}

// Init implements the bubbletea.Model interface
func (m *BrowserModel) Init() tea.Cmd {
	cmds := []tea.Cmd{m.loadRows(""), m.spinner.Tick, tea.SetWindowTitle(m.title)}
	if m.watcher != nil {
		cmds = append(cmds, m.waitForChange())
	}
	return tea.Batch(cmds...)
}

// Update implements the bubbletea.Model interface
func (m *BrowserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.renaming {
			return m.handleRename(msg)
		}
		if m.showHelp {
			return m.handleHelp(msg)
		}
		return m.handleNavigation(msg)

	case tea.MouseMsg:
		if m.renaming || m.showHelp {
			return m, nil
		}
		return m.handleMouse(msg)

	case rowsLoadedMsg:
		return m, m.applyRows(msg)

	case dirChangedMsg:
		cmds := []tea.Cmd{m.waitForChange()}
		if msg.dir == m.manager.Dir() && !m.reloadPending {
			m.reloadPending = true
			cmds = append(cmds, tea.Tick(reloadDelay, func(time.Time) tea.Msg { return reloadDueMsg{} }))
		}
		return m, tea.Batch(cmds...)

	case reloadDueMsg:
		m.reloadPending = false
		return m, m.loadRows(m.cursorName())

	case tea.WindowSizeMsg:
		m.windowWidth = msg.Width
		m.windowHeight = msg.Height
		m.help.Width = msg.Width
		m.adjustViewport()
		return m, nil

	case spinner.TickMsg:
		if m.status.HasMessage() && m.status.Since() > tuiconfig.StatusMessageTimeout {
			m.status.ClearMessage()
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

// handleNavigation handles keyboard navigation
func (m *BrowserModel) handleNavigation(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keyMap.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keyMap.Up):
		m.moveCursor(-1)

	case key.Matches(msg, m.keyMap.Down):
		m.moveCursor(1)

	case key.Matches(msg, m.keyMap.PageUp):
		m.moveCursor(-m.listHeight())

	case key.Matches(msg, m.keyMap.PageDown):
		m.moveCursor(m.listHeight())

	case key.Matches(msg, m.keyMap.Home):
		m.navigate(0)

	case key.Matches(msg, m.keyMap.End):
		m.navigate(len(m.rows) - 1)

	case key.Matches(msg, m.keyMap.Open):
		if row := m.cursorRow(); row != nil {
			return m, m.open(row)
		}

	case key.Matches(msg, m.keyMap.Parent):
		return m, m.parent()

	case key.Matches(msg, m.keyMap.Select):
		if row := m.cursorRow(); row != nil {
			row.Select(!row.Selected())
			m.moveCursor(1)
		}

	case key.Matches(msg, m.keyMap.Refresh):
		m.status.ClearMessage()
		return m, m.reload(m.cursorName())

	case key.Matches(msg, m.keyMap.Sort):
		m.sortOrder = (m.sortOrder + 1) % sortOrderCount
		focus := m.cursorName()
		m.sortRows()
		m.focus(focus)
		m.status.SetMessage(fmt.Sprintf("Sorted by %s", m.sortOrder), messaging.MessageInfo)

	case key.Matches(msg, m.keyMap.Hidden):
		m.manager.SetShowHidden(!m.manager.ShowHidden())
		if m.manager.ShowHidden() {
			m.status.SetMessage("Showing hidden files", messaging.MessageInfo)
		} else {
			m.status.SetMessage("Hiding hidden files", messaging.MessageInfo)
		}
		return m, m.reload(m.cursorName())

	case key.Matches(msg, m.keyMap.Rename):
		if row := m.cursorRow(); row != nil {
			return m, m.startRename(row)
		}

	case key.Matches(msg, m.keyMap.CopyPath):
		if row := m.cursorRow(); row != nil {
			m.copyPath(row)
		}

	case key.Matches(msg, m.keyMap.Help):
		m.showHelp = true
		m.help.ShowAll = true
	}

	return m, nil
}

// handleHelp closes the help dialog
func (m *BrowserModel) handleHelp(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keyMap.Help), key.Matches(msg, m.keyMap.Cancel):
		m.showHelp = false
		m.help.ShowAll = false
	case msg.Type == tea.KeyCtrlC:
		return m, tea.Quit
	}
	return m, nil
}

// handleRename drives the rename dialog
func (m *BrowserModel) handleRename(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keyMap.Confirm):
		m.commitRename()
		return m, nil

	case key.Matches(msg, m.keyMap.Cancel):
		m.renaming = false
		m.renameTarget = ""
		m.renameInput.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.renameInput, cmd = m.renameInput.Update(msg)
	return m, cmd
}

// handleMouse maps clicks and the wheel onto rows
func (m *BrowserModel) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.moveCursor(-tuiconfig.WheelStep)
		return m, nil
	case tea.MouseButtonWheelDown:
		m.moveCursor(tuiconfig.WheelStep)
		return m, nil
	case tea.MouseButtonLeft:
		if msg.Action != tea.MouseActionPress {
			return m, nil
		}
	default:
		return m, nil
	}

	index, ok := m.rowAt(msg.X, msg.Y)
	if !ok {
		m.selectOnly(-1)
		m.lastClickRow = -1
		return m, nil
	}
	row := m.rows[index]
	now := m.now()

	if index == m.lastClickRow && now.Sub(m.lastClick) <= tuiconfig.DoubleClickInterval {
		m.lastClickRow = -1
		return m, m.open(row)
	}
	m.lastClick = now
	m.lastClickRow = index

	if row.Selected() && index == m.cursor && row.CellAt(msg.X) == ColumnName {
		return m, m.startRename(row)
	}

	m.selectOnly(index)
	m.navigate(index)
	return m, nil
}

// rowAt returns the index of the row drawn at screen position x, y
func (m *BrowserModel) rowAt(x, y int) (int, bool) {
	line := y - tuiconfig.ListTopLines
	if line < 0 || line >= m.listHeight() {
		return 0, false
	}
	index := m.viewport + line
	if index >= len(m.rows) {
		return 0, false
	}
	if !m.rows[index].HasSource(x) {
		return 0, false
	}
	return index, true
}

// selectOnly selects the row at index and clears all others; -1 clears every row
func (m *BrowserModel) selectOnly(index int) {
	for i, row := range m.rows {
		row.Select(i == index)
	}
}

// open enters a directory row; other rows only report their path
func (m *BrowserModel) open(row *Row) tea.Cmd {
	if !row.IsDir() {
		m.status.SetMessage(fmt.Sprintf("%s is not a folder", row.FullPath()), messaging.MessageInfo)
		return nil
	}
	if err := m.manager.Enter(row.Name()); err != nil {
		m.status.SetError("Open", err)
		return nil
	}
	m.status.ClearMessage()
	return m.reload("")
}

// parent moves to the parent directory and keeps the cursor on the directory just left
func (m *BrowserModel) parent() tea.Cmd {
	left := filepath.Base(m.manager.Dir())
	if !m.manager.Parent() {
		m.status.SetMessage("Already at the top level", messaging.MessageWarning)
		return nil
	}
	m.status.ClearMessage()
	return m.reload(left)
}

// startRename opens the rename dialog for row
func (m *BrowserModel) startRename(row *Row) tea.Cmd {
	m.renaming = true
	m.renameTarget = row.Name()
	m.renameInput.SetValue(row.Name())
	m.renameInput.CursorEnd()
	return m.renameInput.Focus()
}

// commitRename renames the target on disk and in place
func (m *BrowserModel) commitRename() {
	m.renaming = false
	m.renameInput.Blur()
	oldName := m.renameTarget
	newName := strings.TrimSpace(m.renameInput.Value())
	m.renameTarget = ""

	if err := m.manager.Rename(oldName, newName); err != nil {
		m.status.SetError("Rename", err)
		return
	}
	if newName == oldName {
		return
	}

	for _, row := range m.rows {
		if row.Name() == oldName {
			row.SetName(newName)
			break
		}
	}
	if ct, ok := m.contentTypes[oldName]; ok {
		delete(m.contentTypes, oldName)
		m.contentTypes[newName] = ct
	}
	m.sortRows()
	m.realign()
	m.focus(newName)
	m.status.SetMessage(fmt.Sprintf("Renamed %s to %s", oldName, newName), messaging.MessageSuccess)
}

// copyPath puts the row's full path on the clipboard
func (m *BrowserModel) copyPath(row *Row) {
	if err := m.copyToClipboard(row.FullPath()); err != nil {
		m.status.SetError("Copy path", err)
		return
	}
	m.status.SetMessage(fmt.Sprintf("Copied %s", row.FullPath()), messaging.MessageSuccess)
}

// reload starts listing the current directory again
func (m *BrowserModel) reload(focus string) tea.Cmd {
	m.loading = true
	m.error = nil
	return m.loadRows(focus)
}

// loadRows lists the current directory in the background
func (m *BrowserModel) loadRows(focus string) tea.Cmd {
	snapshot := m.manager.Snapshot()
	inspector := m.inspector
	dateFormat := m.config.UI.DateFormat
	return func() tea.Msg {
		dir := snapshot.Dir()
		names, err := snapshot.List()
		if err != nil {
			return rowsLoadedMsg{dir: dir, focus: focus, err: err}
		}

		rows := make([]*Row, 0, len(names))
		contentTypes := make(map[string]string, len(names))
		for _, name := range names {
			row := NewRow(inspector, dir, name, dateFormat)
			rows = append(rows, row)

			contentType, err := utils.DetectContentType(inspector.Fs(), row.FullPath())
			if err != nil {
				logrus.Debugf("Failed to detect content type for %s: %v", row.FullPath(), err)
				continue
			}
			contentTypes[name] = contentType
		}
		return rowsLoadedMsg{dir: dir, rows: rows, contentTypes: contentTypes, focus: focus}
	}
}

// applyRows installs a finished listing; listings of a directory left meanwhile are dropped
func (m *BrowserModel) applyRows(msg rowsLoadedMsg) tea.Cmd {
	if msg.dir != m.manager.Dir() {
		logrus.Debugf("Dropping stale listing of %s", msg.dir)
		return nil
	}
	m.loading = false

	if msg.err != nil {
		m.error = msg.err
		m.rows = nil
		m.rowsDir = msg.dir
		m.cursor = 0
		m.viewport = 0
		m.status.SetError("List directory", msg.err)
		return nil
	}
	m.error = nil

	// Keep the selection across reloads of the same directory
	if msg.dir == m.rowsDir {
		selected := make(map[string]bool)
		for _, row := range m.rows {
			if row.Selected() {
				selected[row.Name()] = true
			}
		}
		for _, row := range msg.rows {
			row.Select(selected[row.Name()])
		}
	} else {
		m.cursor = 0
		m.viewport = 0
	}

	m.rows = msg.rows
	m.rowsDir = msg.dir
	m.contentTypes = msg.contentTypes
	m.sortRows()
	m.realign()
	if !m.focus(msg.focus) {
		m.setCursor(m.cursor)
	}

	if m.watcher != nil && m.config.UI.Watch {
		if err := m.watcher.Watch(msg.dir); err != nil {
			logrus.Warnf("Directory watch disabled: %v", err)
		}
	}
	return nil
}

// waitForChange waits for the next watcher event
func (m *BrowserModel) waitForChange() tea.Cmd {
	w := m.watcher
	if w == nil {
		return nil
	}
	return func() tea.Msg {
		dir, ok := w.Next()
		if !ok {
			return nil
		}
		return dirChangedMsg{dir: dir}
	}
}

// sortRows orders the rows by the current sort order, directories first
func (m *BrowserModel) sortRows() {
	order := m.sortOrder
	slices.SortStableFunc(m.rows, func(a, b *Row) int {
		if a.IsDir() != b.IsDir() {
			if a.IsDir() {
				return -1
			}
			return 1
		}
		switch order {
		case SortBySize:
			if c := compareDesc(a.Metadata().Size.Value, b.Metadata().Size.Value); c != 0 {
				return c
			}
		case SortByModified:
			if c := b.Metadata().Modified.Value.Compare(a.Metadata().Modified.Value); c != 0 {
				return c
			}
		case SortByCreated:
			if c := b.Metadata().Created.Value.Compare(a.Metadata().Created.Value); c != 0 {
				return c
			}
		}
		return strings.Compare(strings.ToLower(a.Name()), strings.ToLower(b.Name()))
	})
}

func compareDesc(a, b uint64) int {
	switch {
	case a > b:
		return -1
	case a < b:
		return 1
	default:
		return 0
	}
}

// realign lays every row out with shared column widths; the name column is capped
func (m *BrowserModel) realign() {
	titles := TitleWidths()
	widths := MaxColumnWidths(m.rows, titles)
	if limit := max(m.config.UI.MaxNameWidth, titles[ColumnName]); widths[ColumnName] > limit {
		widths[ColumnName] = limit
	}
	for _, row := range m.rows {
		row.AdjustColumns(widths)
	}
	m.widths = widths
}

// focus moves the cursor to the row called name
func (m *BrowserModel) focus(name string) bool {
	if name == "" {
		return false
	}
	for i, row := range m.rows {
		if row.Name() == name {
			m.setCursor(i)
			return true
		}
	}
	return false
}

func (m *BrowserModel) cursorRow() *Row {
	if m.cursor < 0 || m.cursor >= len(m.rows) {
		return nil
	}
	return m.rows[m.cursor]
}

func (m *BrowserModel) cursorName() string {
	if row := m.cursorRow(); row != nil {
		return row.Name()
	}
	return ""
}

func (m *BrowserModel) moveCursor(delta int) {
	m.navigate(m.cursor + delta)
}

// navigate moves the cursor on user request and clears the status line
func (m *BrowserModel) navigate(index int) {
	if index != m.cursor {
		m.status.ClearMessage()
	}
	m.setCursor(index)
}

// setCursor clamps the cursor to the rows and keeps it visible
func (m *BrowserModel) setCursor(index int) {
	if index >= len(m.rows) {
		index = len(m.rows) - 1
	}
	if index < 0 {
		index = 0
	}
	m.cursor = index
	m.adjustViewport()
	m.refreshDetails()
}

// refreshDetails reads the cursor row's size and dates again for the information panel
func (m *BrowserModel) refreshDetails() {
	row := m.cursorRow()
	if row == nil {
		m.details = details{}
		return
	}
	m.details = details{
		path:     row.FullPath(),
		size:     row.FileSize(),
		modified: row.DateModified(),
		created:  row.DateCreated(),
	}
}

// listHeight returns how many rows fit on screen
func (m *BrowserModel) listHeight() int {
	return max(1, m.windowHeight-tuiconfig.ListTopLines-tuiconfig.ListBottomLines)
}

// adjustViewport adjusts the viewport to show the cursor
func (m *BrowserModel) adjustViewport() {
	height := m.listHeight()
	if m.cursor < m.viewport {
		m.viewport = m.cursor
	} else if m.cursor >= m.viewport+height {
		m.viewport = m.cursor - height + 1
	}
	if m.viewport > max(0, len(m.rows)-height) {
		m.viewport = max(0, len(m.rows)-height)
	}
}

// Rows returns the rows in display order
func (m *BrowserModel) Rows() []*Row {
	return m.rows
}

// SortOrder returns the current sort order
func (m *BrowserModel) SortOrder() SortOrder {
	return m.sortOrder
}

// leftPanelWidth returns the width of the row list; the information panel takes the rest
func (m *BrowserModel) leftPanelWidth() int {
	left := int(float64(m.windowWidth) * tuiconfig.LeftPanelWidthRatio)
	if m.windowWidth-left < tuiconfig.MinInfoPanelWidth {
		return m.windowWidth
	}
	return left
}

// renderFloatingDialog centers a dialog on the screen
func (m *BrowserModel) renderFloatingDialog(dialog string) string {
	return lipgloss.Place(
		m.windowWidth,
		m.windowHeight,
		lipgloss.Center,
		lipgloss.Center,
		dialog,
		lipgloss.WithWhitespaceChars(" "),
	)
}

package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/HaiFongPan/fmgr/internal/files"
	tuiconfig "github.com/HaiFongPan/fmgr/internal/tui/config"
	"github.com/HaiFongPan/fmgr/internal/tui/theme"
)

// View implements the bubbletea.Model interface
func (m *BrowserModel) View() string {
	if m.showHelp {
		return m.renderFloatingDialog(m.renderHelpDialog())
	}
	if m.renaming {
		return m.renderFloatingDialog(m.renderRenameDialog())
	}

	headerLine := theme.CreateHeaderStyle().
		MaxWidth(m.windowWidth).
		Render(fmt.Sprintf("%s - %s", m.title, m.manager.Dir()))

	leftWidth := m.leftPanelWidth()
	content := m.renderLeftPanel(leftWidth)
	if infoWidth := m.windowWidth - leftWidth; infoWidth > 0 {
		info := lipgloss.NewStyle().MaxHeight(m.listHeight() + 1).Render(m.renderRightPanel(infoWidth))
		content = lipgloss.JoinHorizontal(lipgloss.Top, content, info)
	}

	var b strings.Builder
	b.WriteString(headerLine)
	b.WriteString("\n\n")
	b.WriteString(content)
	b.WriteString("\n\n")
	b.WriteString(m.status.RenderMessage(m.windowWidth))
	b.WriteString("\n")
	b.WriteString(m.renderFooter())
	return b.String()
}

// renderLeftPanel renders the column titles and the visible rows.
// Every row stays on one screen line so mouse positions map straight to rows.
func (m *BrowserModel) renderLeftPanel(width int) string {
	height := m.listHeight()
	clip := lipgloss.NewStyle().MaxWidth(width).Inline(true)

	lines := make([]string, 0, height+1)
	lines = append(lines, clip.Render(theme.CreateColumnHeaderStyle().Render(HeaderLine(m.widths))))

	switch {
	case m.loading && len(m.rows) == 0:
		lines = append(lines, clip.Render(theme.CreateLoadingStyle().Render(fmt.Sprintf("%s Loading files...", m.spinner.View()))))
	case m.error != nil:
		lines = append(lines, clip.Render(theme.CreateErrorStyle().Render(fmt.Sprintf("Error: %v", m.error))))
	case len(m.rows) == 0:
		lines = append(lines, clip.Render(theme.CreateSecondaryTextStyle().Render("This folder is empty")))
	default:
		end := min(m.viewport+height, len(m.rows))
		for i := m.viewport; i < end; i++ {
			lines = append(lines, clip.Render(m.rows[i].View(i == m.cursor)))
		}
	}

	// Lines are already clipped, so Width only pads them
	return lipgloss.NewStyle().Width(width).Height(height + 1).Render(strings.Join(lines, "\n"))
}

// renderRightPanel renders the information panel for the cursor row
func (m *BrowserModel) renderRightPanel(width int) string {
	var b strings.Builder
	b.WriteString(theme.CreateSectionHeaderStyle().Render("File Information"))
	b.WriteString("\n")

	row := m.cursorRow()
	if row == nil {
		b.WriteString(theme.CreateSecondaryTextStyle().Render("Select a file to view details"))
		return theme.CreateInfoPanelStyle(width).Render(b.String())
	}

	infoStyle := theme.CreateInfoTextStyle()
	hintStyle := theme.CreateSecondaryTextStyle()
	line := func(label, value string) {
		b.WriteString(infoStyle.Render(fmt.Sprintf("%s: %s", label, value)))
		b.WriteString("\n")
	}

	line("Name", row.Name())
	line(row.Tooltip(ColumnType), row.TypeText())

	if row.SizeVisible() {
		if m.details.size.Ok() {
			line("Size", fmt.Sprintf("%s (%s bytes)", row.SizeLabel().Text, humanize.Comma(int64(m.details.size.Value))))
		} else {
			line("Size", row.SizeLabel().Text)
		}
		if tooltip := row.Tooltip(ColumnSize); tooltip != "" {
			b.WriteString(hintStyle.Render(tooltip))
			b.WriteString("\n")
		}
	}

	line(row.Tooltip(ColumnModified), m.dateDetail(row.ModifiedText(), m.details.modified))
	line(row.Tooltip(ColumnCreated), m.dateDetail(row.CreatedText(), m.details.created))

	if contentType, ok := m.contentTypes[row.Name()]; ok {
		line("Content-Type", contentType)
	}
	b.WriteString("\n")
	b.WriteString(hintStyle.Render(row.FullPath()))

	return theme.CreateInfoPanelStyle(width).Render(b.String())
}

// dateDetail appends the relative time to a date cell
func (m *BrowserModel) dateDetail(text string, t files.Attr[time.Time]) string {
	if !t.Ok() {
		if t.Kind == files.KindUnsupported {
			return fmt.Sprintf("%s (%s)", text, t.Kind)
		}
		return text
	}
	return fmt.Sprintf("%s (%s)", text, humanize.RelTime(t.Value, m.now(), "ago", "from now"))
}

// renderFooter renders the key help and the listing summary
func (m *BrowserModel) renderFooter() string {
	footerStyle := theme.CreateFooterStyle().MaxWidth(m.windowWidth)
	summary := fmt.Sprintf("%d items • sorted by %s", len(m.rows), m.sortOrder)
	if m.manager.ShowHidden() {
		summary += " • hidden shown"
	}

	// The key help gives way to the summary on narrow screens
	h := m.help
	h.Width = max(1, m.windowWidth-lipgloss.Width(summary)-2)
	return footerStyle.Render(h.ShortHelpView(m.keyMap.ShortHelp()) + "  " + summary)
}

// renderRenameDialog renders the rename prompt
func (m *BrowserModel) renderRenameDialog() string {
	var b strings.Builder
	b.WriteString(theme.CreatePromptStyle().Render(fmt.Sprintf("Rename %s", m.renameTarget)))
	b.WriteString("\n\n")
	b.WriteString(m.renameInput.View())
	b.WriteString("\n")
	b.WriteString(theme.CreateDialogHintStyle().Render("enter to confirm • esc to cancel"))

	width := min(tuiconfig.DialogDefaultWidth, max(20, m.windowWidth-4))
	return theme.CreateDialogStyle(width, theme.ColorBrightYellow).Render(b.String())
}

// renderHelpDialog renders the help dialog using bubbles components
func (m *BrowserModel) renderHelpDialog() string {
	title := theme.CreateSectionHeaderStyle().Render(fmt.Sprintf("%s - Help", m.title))
	helpContent := m.help.FullHelpView(m.keyMap.FullHelp())
	hint := theme.CreateDialogHintStyle().Render("Press ? or esc to close help")

	width := min(tuiconfig.DialogLargeWidth, max(20, m.windowWidth-10))
	return theme.CreateDialogStyle(width, theme.ColorBrightYellow).
		Render(lipgloss.JoinVertical(lipgloss.Left, title, helpContent, hint))
}

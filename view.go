package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"putscope/internal/browse"
	"putscope/internal/utils"
)

func (m model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}
	if m.session.Quitting {
		return ""
	}

	// Header
	header := m.renderHeader()

	// Main content area
	var mainContent string
	switch modal := m.session.Modal.(type) {
	case browse.ModalConfirmDelete:
		mainContent = m.renderConfirmDelete(modal)
	case browse.ModalFileActions:
		mainContent = m.renderFileActions(modal)
	case browse.ModalSearchInput:
		mainContent = m.renderSearchDialog()
	case browse.ModalError:
		mainContent = m.renderNotice("Error", modal.Message, "196")
	case browse.ModalSuccess:
		mainContent = m.renderNotice("Done", modal.Message, "34")
	default:
		mainContent = m.renderFileList()
	}

	footer := m.renderFooter()

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		mainContent,
		footer,
	)
}

func (m model) renderHeader() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("99")).
		Background(lipgloss.Color("235")).
		Padding(0, 1).
		Width(m.width)

	names := make([]string, len(m.session.Breadcrumbs))
	for i, crumb := range m.session.Breadcrumbs {
		names[i] = crumb.Name
	}
	title := utils.Truncate("☁ "+strings.Join(names, " › "), m.width-2)

	return titleStyle.Render(title)
}

// renderFileList renders the listing with the cursor row highlighted and a
// scroll window sized to the terminal.
func (m model) renderFileList() string {
	availableHeight := m.height - 4 // header, status bar, padding
	if availableHeight < 3 {
		availableHeight = 3
	}

	if len(m.session.Entries) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("243")).
			Padding(1, 2).
			Height(availableHeight)
		if _, loading := m.session.Modal.(browse.ModalLoading); loading {
			return emptyStyle.Render("")
		}
		return emptyStyle.Render("Empty folder")
	}

	m.session.EnsureVisible(availableHeight)

	cursorStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("0")).
		Background(lipgloss.Color("99"))
	nameStyle := lipgloss.NewStyle()
	highlightStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("0")).
		Background(lipgloss.Color("226"))
	sizeStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("243"))

	end := m.session.ScrollOffset + availableHeight
	if end > len(m.session.Entries) {
		end = len(m.session.Entries)
	}

	var rows []string
	for i := m.session.ScrollOffset; i < end; i++ {
		entry := m.session.Entries[i]

		icon := utils.KindIcon(entry.Kind)
		size := "—"
		if !entry.IsFolder() {
			size = utils.FormatFileSize(entry.Size)
		}

		nameWidth := m.width - lipgloss.Width(icon) - 14
		if nameWidth < 8 {
			nameWidth = 8
		}
		name := utils.Truncate(entry.Name, nameWidth)

		if i == m.session.Cursor {
			row := fmt.Sprintf(">> %s %-*s %8s", icon, nameWidth, name, size)
			rows = append(rows, cursorStyle.Render(utils.Truncate(row, m.width-2)))
			continue
		}

		kindStyle := lipgloss.NewStyle().
			Foreground(utils.KindColor(entry.Kind)).
			Bold(entry.IsFolder())
		styledName := kindStyle.Render(fmt.Sprintf("%-*s", nameWidth, name))
		if m.session.LastSearch != "" {
			styledName = utils.HighlightSubstring(
				fmt.Sprintf("%-*s", nameWidth, name),
				m.session.LastSearch, kindStyle, highlightStyle)
		}
		sizeCell := sizeStyle.Render(fmt.Sprintf("%8s", size))
		if !entry.IsFolder() {
			pad := 8 - len(size)
			if pad < 0 {
				pad = 0
			}
			sizeCell = strings.Repeat(" ", pad) + utils.FormatFileSizeColored(entry.Size)
		}
		row := "  " + icon + " " + styledName + " " + sizeCell
		rows = append(rows, nameStyle.Render(row))
	}

	listStyle := lipgloss.NewStyle().
		Padding(0, 1).
		Height(availableHeight)

	return listStyle.Render(strings.Join(rows, "\n"))
}

// renderFooter is the two-row help bar. While a remote call is in flight it
// becomes the spinner line, and during Find it becomes the '/query' bar.
func (m model) renderFooter() string {
	footerStyle := lipgloss.NewStyle().
		Width(m.width).
		Height(2)

	switch modal := m.session.Modal.(type) {
	case browse.ModalLoading:
		line := m.spinner.View() + " " + modal.Label
		return footerStyle.Padding(0, 1).Render(line)

	case browse.ModalFind:
		hintStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("243"))
		line := "/" + m.input.View()
		return footerStyle.Padding(0, 1).Render(
			line + "\n" + hintStyle.Render("enter: jump to match | esc: cancel"))
	}

	keyStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("255"))
	labelStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("243"))

	sortLabel := m.session.SortField.Label()
	if m.session.SortDirection == browse.SortDesc {
		sortLabel += " ↓"
	}

	col := func(key, label string) string {
		return keyStyle.Render(key) + labelStyle.Render(" "+label)
	}
	sep := "    "

	row1 := col("↑↓/jk", "Navigate") + sep +
		col("Enter/^O", "Open") + sep +
		col("s", sortLabel) + sep +
		col("^U/^D", "Scroll")
	row2 := col("Bksp", "Back") + sep +
		col("x", "Delete") + sep +
		col("r", "Reverse") + sep +
		col("/", "Find") + sep +
		col("^F", "Search") + sep +
		col("q", "Quit")

	centered := lipgloss.NewStyle().Width(m.width).Align(lipgloss.Center)
	return footerStyle.Render(centered.Render(row1) + "\n" + centered.Render(row2))
}

func (m model) renderConfirmDelete(modal browse.ModalConfirmDelete) string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("196"))
	contentStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252")).
		Padding(1, 0)
	promptStyle := lipgloss.NewStyle().
		Bold(true)

	title := titleStyle.Render("⚠ Delete file?")
	content := contentStyle.Render(fmt.Sprintf("Are you sure you want to delete:\n\n%s\n\nThis cannot be undone.", modal.Name))
	prompt := promptStyle.Render("Press 'y' to confirm, 'n' or ESC to cancel")

	return m.centerDialog(title+"\n"+content+"\n"+prompt, "196")
}

func (m model) renderFileActions(modal browse.ModalFileActions) string {
	actions := browse.ActionsFor(modal.Kind, m.session.InSearchResults)

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("99"))
	selectedStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("0")).
		Background(lipgloss.Color("99"))
	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("243"))

	var b strings.Builder
	b.WriteString(titleStyle.Render(utils.Truncate(modal.Name, 50)))
	b.WriteString("\n\n")
	for i, action := range actions {
		line := fmt.Sprintf(" %c  %s", action.Key, action.Label)
		if i == modal.Selected {
			b.WriteString(selectedStyle.Render("> " + line))
		} else {
			b.WriteString("  " + keyStyle.Render(string(action.Key)) + line[2:])
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(keyStyle.Render("enter: run | esc: close"))

	return m.centerDialog(b.String(), "99")
}

func (m model) renderSearchDialog() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("105"))
	hintStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("243"))

	content := titleStyle.Render("Search put.io") + "\n\n" +
		m.input.View() + "\n\n" +
		hintStyle.Render("enter: search | esc: cancel")

	return m.centerDialog(content, "105")
}

func (m model) renderNotice(title, message, color string) string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(color))
	contentStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252")).
		Padding(1, 0)
	hintStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("243"))

	content := titleStyle.Render(title) + "\n" +
		contentStyle.Render(message) + "\n" +
		hintStyle.Render("press any key")

	return m.centerDialog(content, color)
}

// centerDialog wraps content in a rounded border and centers it in the main
// content area.
func (m model) centerDialog(content, borderColor string) string {
	dialogStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(borderColor)).
		Padding(1, 2)

	dialog := dialogStyle.Render(content)

	areaHeight := m.height - 2
	if areaHeight < lipgloss.Height(dialog) {
		areaHeight = lipgloss.Height(dialog)
	}

	return lipgloss.Place(m.width, areaHeight, lipgloss.Center, lipgloss.Center, dialog)
}

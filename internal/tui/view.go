package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"stockpick/internal/domain"
	"stockpick/internal/panel"
	"stockpick/internal/tui/styles"
)

// View renders the full panel
func (m Model) View() string {
	if m.width == 0 {
		return "loading..."
	}

	var b strings.Builder
	b.WriteString(m.headerView())
	b.WriteString("\n")
	b.WriteString(m.bodyView())
	b.WriteString("\n")
	b.WriteString(m.footerView())
	return b.String()
}

// headerView renders the kind tabs, search bar, and selection count
func (m Model) headerView() string {
	imgTab := styles.InactiveTabStyle.Render("Images")
	vidTab := styles.InactiveTabStyle.Render("Videos")
	if m.query.Kind() == domain.AssetKindVideo {
		vidTab = styles.ActiveTabStyle.Render("Videos")
	} else {
		imgTab = styles.ActiveTabStyle.Render("Images")
	}

	left := lipgloss.JoinHorizontal(lipgloss.Center, imgTab, " ", vidTab, "  ", m.search.View())

	right := ""
	if n := m.sel.VisibleCount(m.loadedIDs()); n > 0 {
		right = styles.AccentStyle.Render(fmt.Sprintf("%d selected", n))
		if m.sel.AllLoadedSelected(m.loadedIDs()) {
			right += styles.DimStyle.Render(" (all)")
		}
	}

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right + "\n" +
		styles.DimStyle.Render(strings.Repeat("─", maxWidth(m.width, 1)))
}

// bodyView renders rows or grid depending on the derived mode
func (m Model) bodyView() string {
	if m.query.Mode() == panel.ModeCategoryRows {
		return m.rowsView.View(m.cellState, m.spinner())
	}
	return m.gridBodyView()
}

func (m Model) gridBodyView() string {
	var b strings.Builder

	b.WriteString(m.gridTitleView())
	b.WriteString("\n")

	switch {
	case m.grid.Loading() && !m.grid.LoadingMore():
		b.WriteString(styles.DimStyle.Render(m.spinner() + " loading..."))
	case m.grid.LoadErr() != "" && m.grid.Len() == 0:
		b.WriteString(styles.ErrorStyle.Render("✗ " + m.grid.LoadErr()))
		b.WriteString(styles.DimStyle.Render("  (r to retry)"))
	default:
		b.WriteString(m.gridView.View(m.cellState, m.grid.LoadingMore(), m.spinner()))
		if m.grid.LoadErr() != "" {
			b.WriteString("\n" + styles.ErrorStyle.Render("✗ "+m.grid.LoadErr()) +
				styles.DimStyle.Render("  (r to retry)"))
		}
	}
	return b.String()
}

// gridTitleView names the expanded category or echoes the search query
func (m Model) gridTitleView() string {
	var title string
	if m.query.Mode() == panel.ModeSearchGrid {
		title = fmt.Sprintf("results for %q", m.query.Query())
	} else if p, ok := domain.FindCategory(m.query.Kind(), m.query.Category()); ok {
		title = p.Title
	}

	count := ""
	if total := m.grid.Total(); total >= 0 {
		count = fmt.Sprintf("  %d of %d", m.grid.Len(), total)
	} else if m.grid.Len() > 0 {
		count = fmt.Sprintf("  %d loaded", m.grid.Len())
	}
	return styles.TitleStyle.Render(title) + styles.DimStyle.Render(count)
}

// footerView renders errors, transient status, or the key help line
func (m Model) footerView() string {
	if m.importer.Busy() {
		return styles.PendingStyle.Render(m.spinner() + " importing...")
	}
	if msg := m.importer.Err(); msg != "" {
		return styles.ErrorStyle.Render("✗ " + msg)
	}
	if m.statusMsg != "" {
		if m.statusIsErr {
			return styles.ErrorStyle.Render(m.statusMsg)
		}
		return styles.SuccessStyle.Render("✓ " + m.statusMsg)
	}
	return styles.HelpStyle.Render("↑↓←→ move · space select · a all · i import · c canvas · / search · tab kind · q quit")
}

func maxWidth(a, b int) int {
	if a > b {
		return a
	}
	return b
}

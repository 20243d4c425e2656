package components

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"stockpick/internal/domain"
	"stockpick/internal/panel"
	"stockpick/internal/tui/styles"
)

// Layout constants for the grid
const (
	cellWidth = 30 // fixed cell width, markers included

	// "↓ loading more" / "↑ more" indicator lines
	scrollIndicatorLines = 1
)

// CellState carries the per-asset render state injected by the model.
type CellState struct {
	Selected  bool
	Importing bool // mid import-only
	Adding    bool // mid add-to-canvas
}

// AssetGrid renders loaded catalog assets as a multi-column grid with a
// cursor, multi-select markers, and an optional client-side fuzzy filter
// over the loaded items.
type AssetGrid struct {
	assets []domain.LibraryAsset

	cursor int // index into visible()
	offset int // first visible grid row

	width  int
	height int

	// Filter state (client-side narrowing of loaded assets)
	filterActive bool
	filterInput  textinput.Model
	filteredIdx  []int // indices into assets, nil = unfiltered
}

// NewAssetGrid creates an empty grid component
func NewAssetGrid() AssetGrid {
	ti := textinput.New()
	ti.Placeholder = "type to filter loaded..."
	ti.Prompt = "f "
	ti.PromptStyle = styles.FilterPromptStyle
	ti.TextStyle = styles.FilterStyle

	return AssetGrid{filterInput: ti}
}

// SetAssets replaces the displayed assets. The cursor is preserved when
// preserve is true (append loads), reset otherwise.
func (g *AssetGrid) SetAssets(assets []domain.LibraryAsset, preserve bool) {
	g.assets = assets
	g.applyFilter()
	if !preserve {
		g.cursor = 0
		g.offset = 0
	}
	g.clampCursor()
}

// SetSize updates the component dimensions
func (g *AssetGrid) SetSize(width, height int) {
	g.width = width
	g.height = height
	g.clampCursor()
}

// Cursor returns the cursor position within the loaded (unfiltered) list,
// which is what the prefetch check wants. Returns -1 when nothing is loaded.
func (g *AssetGrid) Cursor() int {
	visible := g.visible()
	if len(visible) == 0 {
		return -1
	}
	return visible[g.cursor]
}

// CursorAsset returns the asset under the cursor
func (g *AssetGrid) CursorAsset() (domain.LibraryAsset, bool) {
	i := g.Cursor()
	if i < 0 {
		return domain.LibraryAsset{}, false
	}
	return g.assets[i], true
}

// Move shifts the cursor by dx columns and dy rows
func (g *AssetGrid) Move(dx, dy int) {
	cols := g.columns()
	next := g.cursor + dx + dy*cols
	if next < 0 {
		next = 0
	}
	if max := len(g.visible()) - 1; next > max {
		next = max
	}
	if next >= 0 {
		g.cursor = next
	}
	g.scrollToCursor()
}

// FilterActive reports whether the filter input owns key events
func (g *AssetGrid) FilterActive() bool { return g.filterActive }

// StartFilter opens the filter input
func (g *AssetGrid) StartFilter() tea.Cmd {
	g.filterActive = true
	return g.filterInput.Focus()
}

// StopFilter closes the filter input; clear drops the query too
func (g *AssetGrid) StopFilter(clear bool) {
	g.filterActive = false
	g.filterInput.Blur()
	if clear {
		g.filterInput.SetValue("")
		g.applyFilter()
		g.clampCursor()
	}
}

// UpdateFilter forwards a key event to the filter input
func (g *AssetGrid) UpdateFilter(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	g.filterInput, cmd = g.filterInput.Update(msg)
	g.applyFilter()
	g.clampCursor()
	return cmd
}

func (g *AssetGrid) applyFilter() {
	query := g.filterInput.Value()
	if strings.TrimSpace(query) == "" {
		g.filteredIdx = nil
		return
	}
	g.filteredIdx = panel.FilterAssets(query, g.assets)
}

// visible returns indices into assets in display order
func (g *AssetGrid) visible() []int {
	if g.filteredIdx != nil {
		return g.filteredIdx
	}
	all := make([]int, len(g.assets))
	for i := range g.assets {
		all[i] = i
	}
	return all
}

func (g *AssetGrid) columns() int {
	cols := g.width / cellWidth
	if cols < 1 {
		cols = 1
	}
	return cols
}

func (g *AssetGrid) visibleRows() int {
	rows := g.height - scrollIndicatorLines
	if g.filterActive || g.filterInput.Value() != "" {
		rows--
	}
	if rows < 1 {
		rows = 1
	}
	return rows
}

func (g *AssetGrid) clampCursor() {
	if max := len(g.visible()) - 1; g.cursor > max {
		g.cursor = max
	}
	if g.cursor < 0 {
		g.cursor = 0
	}
	g.scrollToCursor()
}

func (g *AssetGrid) scrollToCursor() {
	cols := g.columns()
	row := g.cursor / cols
	if row < g.offset {
		g.offset = row
	}
	if bottom := g.offset + g.visibleRows() - 1; row > bottom {
		g.offset = row - g.visibleRows() + 1
	}
	if g.offset < 0 {
		g.offset = 0
	}
}

// View renders the grid. state supplies per-asset selection/pending marks;
// loadingMore appends a footer indicator while an append load is in flight.
func (g *AssetGrid) View(state func(id string) CellState, loadingMore bool, spinner string) string {
	var b strings.Builder

	if g.filterActive || g.filterInput.Value() != "" {
		b.WriteString(g.filterInput.View())
		b.WriteString("\n")
	}

	visible := g.visible()
	if len(visible) == 0 {
		b.WriteString(styles.DimStyle.Render("no assets"))
		return b.String()
	}

	cols := g.columns()
	rows := g.visibleRows()

	for row := g.offset; row < g.offset+rows; row++ {
		start := row * cols
		if start >= len(visible) {
			break
		}
		var cells []string
		for col := 0; col < cols && start+col < len(visible); col++ {
			i := start + col
			cells = append(cells, g.renderCell(g.assets[visible[i]], i == g.cursor, state))
		}
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cells...))
		b.WriteString("\n")
	}

	if loadingMore {
		b.WriteString(styles.DimStyle.Render(spinner + " loading more..."))
	}

	return b.String()
}

func (g *AssetGrid) renderCell(asset domain.LibraryAsset, isCursor bool, state func(id string) CellState) string {
	st := state(asset.ID)

	marker := styles.UnselectedDot
	if st.Selected {
		marker = styles.SelectedDot
	}

	suffix := ""
	switch {
	case st.Adding:
		suffix = styles.PendingStyle.Render(" +canvas")
	case st.Importing:
		suffix = styles.PendingStyle.Render(" import")
	}

	meta := asset.Resolution()
	if d := asset.FormattedDuration(); d != "" {
		if meta != "" {
			meta += " "
		}
		meta += d
	}

	budget := cellWidth - 6 - lipgloss.Width(meta)
	if budget < 4 {
		budget = 4
	}
	name := truncateName(asset.DisplayName(), budget)

	label := name
	if meta != "" {
		label = fmt.Sprintf("%s %s", name, styles.DimStyle.Render(meta))
	}

	body := marker + " " + label + suffix
	if isCursor {
		return styles.CursorStyle.Width(cellWidth - 2).Render(body)
	}
	return styles.CellStyle.Width(cellWidth).Render(body)
}

// truncateName caps a display name at max runes, ellipsizing. Byte slicing
// would split multi-byte runes in provider-supplied names.
func truncateName(s string, max int) string {
	if max < 1 {
		return ""
	}
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	runes := []rune(s)
	return string(runes[:max-1]) + "…"
}

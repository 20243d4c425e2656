package components

import (
	"fmt"
	"strings"

	"stockpick/internal/domain"
	"stockpick/internal/panel"
	"stockpick/internal/tui/styles"
)

// rowItemWidth is the fixed width of one preview slot in a category row.
const rowItemWidth = 24

// CategoryRows renders the per-category preview rows: a vertical list of
// horizontally scrollable strips, one per preset category. Each row scrolls
// independently and shows its own loading/error state.
type CategoryRows struct {
	rows []panel.CategoryRow

	rowCursor  int
	colCursors map[string]int // per-category horizontal cursor, survives reloads of other rows

	width  int
	height int
	scroll int // first visible row
}

// NewCategoryRows creates an empty rows component
func NewCategoryRows() CategoryRows {
	return CategoryRows{colCursors: make(map[string]int)}
}

// SetRows replaces the displayed rows, clamping cursors to the new content.
func (c *CategoryRows) SetRows(rows []panel.CategoryRow) {
	c.rows = rows
	if c.rowCursor >= len(rows) {
		c.rowCursor = len(rows) - 1
	}
	if c.rowCursor < 0 {
		c.rowCursor = 0
	}
	for _, row := range rows {
		if c.colCursors[row.Preset.Key] >= len(row.Assets) {
			c.colCursors[row.Preset.Key] = maxInt(len(row.Assets)-1, 0)
		}
	}
	c.scrollToCursor()
}

// Reset drops all cursor state (used when the row generation changes)
func (c *CategoryRows) Reset() {
	c.rowCursor = 0
	c.scroll = 0
	c.colCursors = make(map[string]int)
}

// SetSize updates the component dimensions
func (c *CategoryRows) SetSize(width, height int) {
	c.width = width
	c.height = height
	c.scrollToCursor()
}

// MoveVertical shifts the row cursor
func (c *CategoryRows) MoveVertical(dy int) {
	c.rowCursor += dy
	if c.rowCursor < 0 {
		c.rowCursor = 0
	}
	if max := len(c.rows) - 1; c.rowCursor > max {
		c.rowCursor = max
	}
	c.scrollToCursor()
}

// MoveHorizontal shifts the current row's item cursor
func (c *CategoryRows) MoveHorizontal(dx int) {
	row := c.currentRow()
	if row == nil || len(row.Assets) == 0 {
		return
	}
	cur := c.colCursors[row.Preset.Key] + dx
	if cur < 0 {
		cur = 0
	}
	if max := len(row.Assets) - 1; cur > max {
		cur = max
	}
	c.colCursors[row.Preset.Key] = cur
}

// CurrentRowKey returns the preset key of the row under the cursor
func (c *CategoryRows) CurrentRowKey() string {
	if row := c.currentRow(); row != nil {
		return row.Preset.Key
	}
	return ""
}

// CursorAsset returns the asset under the cursor
func (c *CategoryRows) CursorAsset() (domain.LibraryAsset, bool) {
	row := c.currentRow()
	if row == nil || len(row.Assets) == 0 {
		return domain.LibraryAsset{}, false
	}
	return row.Assets[c.colCursors[row.Preset.Key]], true
}

func (c *CategoryRows) currentRow() *panel.CategoryRow {
	if c.rowCursor < 0 || c.rowCursor >= len(c.rows) {
		return nil
	}
	return &c.rows[c.rowCursor]
}

// visibleRowCount returns how many category strips fit; each takes 2 lines
// (title + items).
func (c *CategoryRows) visibleRowCount() int {
	n := c.height / 2
	if n < 1 {
		n = 1
	}
	return n
}

func (c *CategoryRows) scrollToCursor() {
	if c.rowCursor < c.scroll {
		c.scroll = c.rowCursor
	}
	if bottom := c.scroll + c.visibleRowCount() - 1; c.rowCursor > bottom {
		c.scroll = c.rowCursor - c.visibleRowCount() + 1
	}
	if c.scroll < 0 {
		c.scroll = 0
	}
}

// View renders the visible category strips. state supplies per-asset marks;
// spinner animates rows still loading.
func (c *CategoryRows) View(state func(id string) CellState, spinner string) string {
	if len(c.rows) == 0 {
		return styles.DimStyle.Render("no categories")
	}

	var b strings.Builder
	end := c.scroll + c.visibleRowCount()
	for i := c.scroll; i < end && i < len(c.rows); i++ {
		c.renderRow(&b, i, state, spinner)
	}
	return strings.TrimRight(b.String(), "\n")
}

func (c *CategoryRows) renderRow(b *strings.Builder, i int, state func(id string) CellState, spinner string) {
	row := c.rows[i]
	focused := i == c.rowCursor

	title := row.Preset.Title
	if focused {
		b.WriteString(styles.AccentStyle.Render("▸ " + title))
	} else {
		b.WriteString(styles.TitleStyle.Render("  " + title))
	}
	b.WriteString("\n")

	switch {
	case row.Loading:
		b.WriteString("  " + styles.DimStyle.Render(spinner+" loading..."))
	case row.Err != "":
		b.WriteString("  " + styles.ErrorStyle.Render("✗ "+row.Err) +
			styles.DimStyle.Render("  (r to retry)"))
	case len(row.Assets) == 0:
		b.WriteString("  " + styles.DimStyle.Render("empty"))
	default:
		b.WriteString(c.renderStrip(row, focused, state))
	}
	b.WriteString("\n")
}

// renderStrip renders one row's horizontally scrolled item list
func (c *CategoryRows) renderStrip(row panel.CategoryRow, focused bool, state func(id string) CellState) string {
	perScreen := c.width / rowItemWidth
	if perScreen < 1 {
		perScreen = 1
	}

	cur := c.colCursors[row.Preset.Key]
	start := 0
	if cur >= perScreen {
		start = cur - perScreen + 1
	}

	var cells []string
	for j := start; j < start+perScreen && j < len(row.Assets); j++ {
		asset := row.Assets[j]
		st := state(asset.ID)

		marker := styles.UnselectedDot
		if st.Selected {
			marker = styles.SelectedDot
		}

		name := truncateName(asset.DisplayName(), rowItemWidth-5)

		cell := fmt.Sprintf("%s %s", marker, name)
		if focused && j == cur {
			cell = styles.CursorStyle.Render(fmt.Sprintf("%s %s", marker, name))
		}
		cells = append(cells, cell)
	}

	out := "  " + strings.Join(cells, "  ")
	if start+perScreen < len(row.Assets) {
		out += styles.DimStyle.Render(" →")
	}
	return out
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"stockpick/internal/domain"
	"stockpick/internal/panel"
)

// Update is the single owner of all panel state mutation
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		bodyHeight := m.height - headerLines - footerLines
		m.gridView.SetSize(m.width, bodyHeight)
		m.rowsView.SetSize(m.width, bodyHeight)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case GridPageMsg:
		if !m.grid.ApplyPage(msg.Generation, msg.Page) {
			// A reset was requested while this fetch was in flight; it
			// runs now that the superseded result has resolved.
			return m.resolveStaleGridLoad()
		}
		m.gridView.SetAssets(m.grid.Assets(), !msg.Reset)
		// Bottom-proximity re-check: a short first page may not fill the
		// viewport, so another load fires under the usual guards.
		if m.grid.ShouldPrefetch(m.gridView.Cursor()) {
			if page, ok := m.grid.BeginLoad(false); ok {
				return m, LoadGridPageCmd(m.catalog, m.grid.Generation(), m.listRequest(page), false)
			}
		}
		return m, nil

	case GridLoadFailedMsg:
		if !m.grid.Fail(msg.Generation, msg.Reset, msg.Err) {
			return m.resolveStaleGridLoad()
		}
		m.gridView.SetAssets(m.grid.Assets(), !msg.Reset)
		m.logger.Warn("grid load failed", "reset", msg.Reset, "error", msg.Err)
		return m, nil

	case RowLoadedMsg:
		// Apply discards results from superseded generations
		if m.rows.Apply(msg.Generation, msg.Key, msg.Assets, msg.Err) {
			m.rowsView.SetRows(m.rows.Rows())
		}
		return m, nil

	case ImportDoneMsg:
		m.importer.Finish(msg.Err)
		if msg.Err != nil {
			m.logger.Error("import batch failed", "toCanvas", msg.ToCanvas, "error", msg.Err)
			return m, nil
		}
		m.sel.Clear()
		verb := "imported"
		if msg.ToCanvas {
			verb = "added to canvas"
		}
		m.setStatus(fmt.Sprintf("%d asset(s) %s", msg.Count, verb), false)
		return m, ClearStatusCmd(3 * time.Second)

	case StatusNoteMsg:
		m.setStatus(msg.Message, msg.IsError)
		return m, ClearStatusCmd(3 * time.Second)

	case ClearStatusMsg:
		m.statusMsg = ""
		m.statusIsErr = false
		return m, nil

	case SpinnerTickMsg:
		m.spinnerFrame++
		return m, SpinnerTickCmd()
	}

	return m, nil
}

// handleKey routes keyboard input
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Search bar owns keys while focused
	if m.search.Focused() {
		switch msg.String() {
		case "enter":
			m.search.Blur()
			return m.commitQuery(m.search.Value())
		case "esc":
			m.search.Blur()
			m.search.SetValue(m.query.Query()) // revert the edit
			return m, nil
		default:
			return m, m.search.Update(msg)
		}
	}

	// Grid filter input owns keys while open
	if m.query.Mode() != panel.ModeCategoryRows && m.gridView.FilterActive() {
		switch msg.String() {
		case "enter":
			m.gridView.StopFilter(false)
			return m, nil
		case "esc":
			m.gridView.StopFilter(true)
			return m, nil
		default:
			return m, m.gridView.UpdateFilter(msg)
		}
	}

	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit

	case "/":
		return m, m.search.Focus()

	case "tab":
		return m.switchKind()

	case "esc":
		if m.query.Query() != "" {
			m.search.SetValue("")
			return m.commitQuery("")
		}
		if m.query.CloseCategory() {
			m.rowsView.SetRows(m.rows.Rows())
		}
		return m, nil

	case "enter":
		if m.query.Mode() == panel.ModeCategoryRows {
			if m.query.OpenCategory(m.rowsView.CurrentRowKey()) {
				return m.reloadGrid()
			}
		}
		return m, nil

	case " ":
		if a, ok := m.cursorAsset(); ok {
			m.sel.Toggle(a.ID)
		}
		return m, nil

	case "a":
		m.sel.ToggleAllLoaded(m.loadedIDs())
		return m, nil

	case "x":
		m.sel.Clear()
		return m, nil

	case "i":
		return m.startImport(false)

	case "c":
		return m.startImport(true)

	case "f":
		if m.query.Mode() != panel.ModeCategoryRows {
			return m, m.gridView.StartFilter()
		}
		return m, nil

	case "r":
		return m.retry()

	case "up", "k":
		return m.moveCursor(0, -1)
	case "down", "j":
		return m.moveCursor(0, 1)
	case "left", "h":
		return m.moveCursor(-1, 0)
	case "right", "l":
		return m.moveCursor(1, 0)
	}

	return m, nil
}

// commitQuery applies a committed search value. A non-empty query enters
// search-grid mode; clearing restores category rows under a new generation.
func (m Model) commitQuery(query string) (tea.Model, tea.Cmd) {
	if !m.query.SetQuery(query) {
		return m, nil
	}
	if query != "" {
		return m.reloadGrid()
	}
	m.query.CloseCategory()
	return m.activateRows()
}

// switchKind toggles between images and videos. Category selection resets;
// rows reload when the query is empty, the grid otherwise.
func (m Model) switchKind() (tea.Model, tea.Cmd) {
	kind := domain.AssetKindVideo
	if m.query.Kind() == domain.AssetKindVideo {
		kind = domain.AssetKindImage
	}
	if !m.query.SetKind(kind) {
		return m, nil
	}
	if m.query.Query() == "" {
		return m.activateRows()
	}
	return m.reloadGrid()
}

// reloadGrid starts a reset load for the current mode's effective query.
// Strict serialization: while a fetch is pending the reset is deferred —
// BeginLoad bumps the generation so the pending result gets discarded, and
// the completion handler re-issues this reset.
func (m Model) reloadGrid() (tea.Model, tea.Cmd) {
	page, ok := m.grid.BeginLoad(true)
	if !ok {
		return m, nil
	}
	m.gridView.SetAssets(nil, false)
	m.gridView.StopFilter(true)
	return m, LoadGridPageCmd(m.catalog, m.grid.Generation(), m.listRequest(page), true)
}

// resolveStaleGridLoad runs after a superseded grid fetch resolves: the
// deferred reset for the current mode starts now. Nothing to reload when
// the panel has since returned to category rows.
func (m Model) resolveStaleGridLoad() (tea.Model, tea.Cmd) {
	if m.query.Mode() == panel.ModeCategoryRows {
		return m, nil
	}
	return m.reloadGrid()
}

// activateRows re-initializes all category rows under a fresh generation
// and fans out one fetch per category.
func (m Model) activateRows() (tea.Model, tea.Cmd) {
	gen, presets := m.rows.Activate(m.query.Kind())
	m.rowsView.Reset()
	m.rowsView.SetRows(m.rows.Rows())
	return m, LoadRowsCmd(m.catalog, gen, m.query.Kind(), presets)
}

// retry re-issues the failed fetch for the current scope
func (m Model) retry() (tea.Model, tea.Cmd) {
	if m.query.Mode() == panel.ModeCategoryRows {
		gen, preset, ok := m.rows.Retry(m.rowsView.CurrentRowKey())
		if !ok {
			return m, nil
		}
		m.rowsView.SetRows(m.rows.Rows())
		return m, LoadRowCmd(m.catalog, gen, m.query.Kind(), preset)
	}
	return m.reloadGrid()
}

// moveCursor navigates the active view, prefetching the next grid page when
// the cursor nears the end of the loaded list.
func (m Model) moveCursor(dx, dy int) (tea.Model, tea.Cmd) {
	if m.query.Mode() == panel.ModeCategoryRows {
		if dy != 0 {
			m.rowsView.MoveVertical(dy)
		}
		if dx != 0 {
			m.rowsView.MoveHorizontal(dx)
		}
		return m, nil
	}

	m.gridView.Move(dx, dy)
	if m.grid.ShouldPrefetch(m.gridView.Cursor()) {
		if page, ok := m.grid.BeginLoad(false); ok {
			return m, LoadGridPageCmd(m.catalog, m.grid.Generation(), m.listRequest(page), false)
		}
	}
	return m, nil
}

// startImport launches an import/add batch over the visible selection
// (cursor asset when nothing is selected). No-op while one is running.
func (m Model) startImport(toCanvas bool) (tea.Model, tea.Cmd) {
	assets := m.selectedAssets()
	if !m.importer.Begin(assets, toCanvas) {
		return m, nil
	}
	return m, ImportCmd(m.importer, assets, toCanvas)
}

// listRequest builds the fetch request for the given page
func (m *Model) listRequest(page int) domain.ListRequest {
	return domain.ListRequest{
		Kind:    m.query.Kind(),
		Page:    page,
		PerPage: m.pageSize,
		Query:   m.query.EffectiveQuery(),
	}
}

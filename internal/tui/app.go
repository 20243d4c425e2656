package tui

import (
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"stockpick/internal/domain"
	"stockpick/internal/panel"
	"stockpick/internal/tui/components"
	"stockpick/internal/tui/styles"
)

// Chrome line counts around the content area
const (
	headerLines = 2
	footerLines = 1
)

// Model is the main Bubble Tea model for the browsing panel
type Model struct {
	// Collaborators
	catalog domain.Catalog
	logger  *slog.Logger

	// Panel state core
	query    *panel.QueryState
	grid     *panel.GridState
	rows     *panel.RowsState
	sel      *panel.Selection
	importer *panel.Importer

	pageSize int

	// First fan-out, prepared at construction and issued from Init
	initGen     uint64
	initPresets []domain.CategoryPreset

	// UI components
	search   components.SearchBar
	gridView components.AssetGrid
	rowsView components.CategoryRows

	// Dimensions
	width  int
	height int

	// UI state
	statusMsg    string
	statusIsErr  bool
	spinnerFrame int
}

// NewModel creates the application model, primed to load category rows for
// the configured default kind on Init.
func NewModel(catalog domain.Catalog, importer *panel.Importer, kind domain.AssetKind, pageSize int, logger *slog.Logger) Model {
	if logger == nil {
		logger = slog.Default()
	}
	if pageSize <= 0 {
		pageSize = 24
	}

	m := Model{
		catalog:  catalog,
		logger:   logger,
		query:    panel.NewQueryState(kind),
		grid:     panel.NewGridState(pageSize),
		rows:     panel.NewRowsState(),
		importer: importer,
		pageSize: pageSize,
		search:   components.NewSearchBar(),
		gridView: components.NewAssetGrid(),
		rowsView: components.NewCategoryRows(),
	}
	m.sel = panel.NewSelection(importer.Busy)

	m.initGen, m.initPresets = m.rows.Activate(m.query.Kind())
	m.rowsView.SetRows(m.rows.Rows())
	return m
}

// Init issues the first category fan-out and starts the spinner
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		LoadRowsCmd(m.catalog, m.initGen, m.query.Kind(), m.initPresets),
		SpinnerTickCmd(),
	)
}

// spinner returns the current spinner frame
func (m *Model) spinner() string {
	return styles.SpinnerFrames[m.spinnerFrame%len(styles.SpinnerFrames)]
}

// loadedAssets returns the selection scope for the active source: the grid
// list in grid modes, the deduplicated row union in rows mode.
func (m *Model) loadedAssets() []domain.LibraryAsset {
	if m.query.Mode() == panel.ModeCategoryRows {
		return m.rows.LoadedAssets()
	}
	return m.grid.Assets()
}

// loadedIDs returns the external identifiers of the active source
func (m *Model) loadedIDs() []string {
	assets := m.loadedAssets()
	ids := make([]string, len(assets))
	for i, a := range assets {
		ids[i] = a.ID
	}
	return ids
}

// cursorAsset returns the asset under the cursor in the active view
func (m *Model) cursorAsset() (domain.LibraryAsset, bool) {
	if m.query.Mode() == panel.ModeCategoryRows {
		return m.rowsView.CursorAsset()
	}
	return m.gridView.CursorAsset()
}

// selectedAssets resolves the visible selection into assets in selection
// order, falling back to the asset under the cursor when nothing is selected.
func (m *Model) selectedAssets() []domain.LibraryAsset {
	loaded := m.loadedAssets()
	byID := make(map[string]domain.LibraryAsset, len(loaded))
	ids := make([]string, len(loaded))
	for i, a := range loaded {
		byID[a.ID] = a
		ids[i] = a.ID
	}

	visible := m.sel.Visible(ids)
	if len(visible) == 0 {
		if a, ok := m.cursorAsset(); ok {
			return []domain.LibraryAsset{a}
		}
		return nil
	}

	out := make([]domain.LibraryAsset, 0, len(visible))
	for _, id := range visible {
		out = append(out, byID[id])
	}
	return out
}

// cellState supplies per-asset render state to the components
func (m *Model) cellState(id string) components.CellState {
	return components.CellState{
		Selected:  m.sel.Has(id),
		Importing: m.importer.ImportingID(id),
		Adding:    m.importer.AddingID(id),
	}
}

// setStatus records a transient status line
func (m *Model) setStatus(msg string, isErr bool) {
	m.statusMsg = msg
	m.statusIsErr = isErr
}

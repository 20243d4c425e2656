package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"stockpick/internal/domain"
	"stockpick/internal/panel"
)

// Command factories for async operations

// LoadGridPageCmd fetches one grid page, tagged with the grid generation it
// was issued under so a superseded fetch can be discarded
func LoadGridPageCmd(catalog domain.Catalog, gen uint64, req domain.ListRequest, reset bool) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		page, err := catalog.ListAssets(ctx, req)
		if err != nil {
			return GridLoadFailedMsg{Generation: gen, Reset: reset, Err: err}
		}
		return GridPageMsg{Generation: gen, Reset: reset, Page: page}
	}
}

// LoadRowCmd fetches one category row's first page, tagged with the
// generation it was issued under so stale results can be discarded
func LoadRowCmd(catalog domain.Catalog, gen uint64, kind domain.AssetKind, preset domain.CategoryPreset) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		page, err := catalog.ListAssets(ctx, domain.ListRequest{
			Kind:    kind,
			Page:    1,
			PerPage: panel.RowPageSize,
			Query:   preset.Query,
		})
		if err != nil {
			return RowLoadedMsg{Generation: gen, Key: preset.Key, Err: err}
		}
		return RowLoadedMsg{Generation: gen, Key: preset.Key, Assets: page.Assets}
	}
}

// LoadRowsCmd fans out one fetch per category, all under the same generation
func LoadRowsCmd(catalog domain.Catalog, gen uint64, kind domain.AssetKind, presets []domain.CategoryPreset) tea.Cmd {
	cmds := make([]tea.Cmd, len(presets))
	for i, p := range presets {
		cmds[i] = LoadRowCmd(catalog, gen, kind, p)
	}
	return tea.Batch(cmds...)
}

// ImportCmd runs an import/add batch. The importer must have been claimed
// with Begin before this command is issued.
func ImportCmd(importer *panel.Importer, assets []domain.LibraryAsset, toCanvas bool) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
		defer cancel()

		err := importer.Run(ctx, assets, toCanvas)
		return ImportDoneMsg{ToCanvas: toCanvas, Count: len(assets), Err: err}
	}
}

// SpinnerTickCmd drives the spinner animation
func SpinnerTickCmd() tea.Cmd {
	return tea.Tick(100*time.Millisecond, func(time.Time) tea.Msg {
		return SpinnerTickMsg{}
	})
}

// ClearStatusCmd clears the status line after a delay
func ClearStatusCmd(delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return ClearStatusMsg{}
	})
}

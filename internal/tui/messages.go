package tui

import "stockpick/internal/domain"

// Message types for the TUI

// GridPageMsg signals that a grid page fetch succeeded, tagged with the
// grid generation it was issued under
type GridPageMsg struct {
	Generation uint64
	Reset      bool
	Page       *domain.AssetPage
}

// GridLoadFailedMsg signals that a grid page fetch failed
type GridLoadFailedMsg struct {
	Generation uint64
	Reset      bool
	Err        error
}

// RowLoadedMsg carries one category row's fetch result, tagged with the
// generation it was issued under
type RowLoadedMsg struct {
	Generation uint64
	Key        string
	Assets     []domain.LibraryAsset
	Err        error
}

// ImportDoneMsg signals that an import/add batch finished
type ImportDoneMsg struct {
	ToCanvas bool
	Count    int
	Err      error
}

// StatusNoteMsg sets a temporary status message
type StatusNoteMsg struct {
	Message string
	IsError bool
}

// ClearStatusMsg clears the status bar message
type ClearStatusMsg struct{}

// SpinnerTickMsg advances the spinner animation
type SpinnerTickMsg struct{}

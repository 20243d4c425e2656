package panel

import "stockpick/internal/domain"

// Mode is the panel's display mode, derived from query state.
type Mode int

const (
	// ModeCategoryRows shows one horizontally scrollable row per preset category
	ModeCategoryRows Mode = iota
	// ModeCategoryGrid shows a single category expanded into a paginated grid
	ModeCategoryGrid
	// ModeSearchGrid shows free-text search results as a paginated grid
	ModeSearchGrid
)

// String returns a human-readable mode name
func (m Mode) String() string {
	switch m {
	case ModeCategoryRows:
		return "rows"
	case ModeCategoryGrid:
		return "category"
	case ModeSearchGrid:
		return "search"
	default:
		return "unknown"
	}
}

// QueryState tracks the free-text query, asset kind, and active category,
// and derives the panel mode from them. Precedence: a non-empty query always
// wins, then an active category, then category rows.
type QueryState struct {
	kind     domain.AssetKind
	query    string
	category string // active category key, empty = none
}

// NewQueryState starts in category-rows mode for the given kind.
func NewQueryState(kind domain.AssetKind) *QueryState {
	if !kind.Valid() {
		kind = domain.AssetKindImage
	}
	return &QueryState{kind: kind}
}

// Mode derives the current display mode.
func (q *QueryState) Mode() Mode {
	if q.query != "" {
		return ModeSearchGrid
	}
	if q.category != "" {
		return ModeCategoryGrid
	}
	return ModeCategoryRows
}

// Kind returns the active asset kind.
func (q *QueryState) Kind() domain.AssetKind { return q.kind }

// Query returns the free-text query.
func (q *QueryState) Query() string { return q.query }

// Category returns the active category key, empty when none.
func (q *QueryState) Category() string { return q.category }

// SetKind switches between image and video. The category selection resets;
// reports whether anything changed (the caller then reloads rows or grid).
func (q *QueryState) SetKind(kind domain.AssetKind) bool {
	if !kind.Valid() || kind == q.kind {
		return false
	}
	q.kind = kind
	q.category = ""
	return true
}

// SetQuery updates the free-text query; reports whether it changed.
// Clearing a non-empty query drops back to category-rows mode (or the
// active category grid, if one is still open).
func (q *QueryState) SetQuery(query string) bool {
	if query == q.query {
		return false
	}
	q.query = query
	return true
}

// OpenCategory expands a category into grid mode. Unknown keys are ignored.
func (q *QueryState) OpenCategory(key string) bool {
	if _, ok := domain.FindCategory(q.kind, key); !ok {
		return false
	}
	if q.category == key {
		return false
	}
	q.category = key
	return true
}

// CloseCategory returns from an expanded category to the rows view.
func (q *QueryState) CloseCategory() bool {
	if q.category == "" {
		return false
	}
	q.category = ""
	return true
}

// EffectiveQuery returns the provider query for the current mode: the
// free-text query in search mode, the preset query in category mode,
// empty (curated feed) otherwise.
func (q *QueryState) EffectiveQuery() string {
	switch q.Mode() {
	case ModeSearchGrid:
		return q.query
	case ModeCategoryGrid:
		if p, ok := domain.FindCategory(q.kind, q.category); ok {
			return p.Query
		}
	}
	return ""
}

package panel

import "stockpick/internal/domain"

// RowPageSize is how many assets each category row fetches.
const RowPageSize = 12

// CategoryRow is one preset category plus its isolated load state.
type CategoryRow struct {
	Preset  domain.CategoryPreset
	Assets  []domain.LibraryAsset
	Loading bool
	Err     string
}

// RowsState manages the per-category row loaders. Every activation bumps a
// generation counter; results are applied only when their issue-time
// generation still matches, so a superseded fan-out can never overwrite a
// newer one with data or error state.
type RowsState struct {
	generation uint64
	kind       domain.AssetKind
	rows       []CategoryRow
}

// NewRowsState creates an inactive row loader.
func NewRowsState() *RowsState {
	return &RowsState{}
}

// Activate resets all rows to loading/empty for the given kind and starts a
// new generation. The caller issues one fetch per returned preset, all
// tagged with the returned generation.
func (r *RowsState) Activate(kind domain.AssetKind) (gen uint64, presets []domain.CategoryPreset) {
	r.generation++
	r.kind = kind

	presets = domain.CategoryPresets(kind)
	r.rows = make([]CategoryRow, len(presets))
	for i, p := range presets {
		r.rows[i] = CategoryRow{Preset: p, Loading: true}
	}
	return r.generation, presets
}

// Generation returns the current load generation.
func (r *RowsState) Generation() uint64 { return r.generation }

// Kind returns the kind the rows were last activated for.
func (r *RowsState) Kind() domain.AssetKind { return r.kind }

// Apply lands one row's fetch result. Returns false (and mutates nothing)
// when the result belongs to a superseded generation or an unknown row.
func (r *RowsState) Apply(gen uint64, key string, assets []domain.LibraryAsset, err error) bool {
	if gen != r.generation {
		return false
	}
	row := r.row(key)
	if row == nil {
		return false
	}

	row.Loading = false
	if err != nil {
		row.Assets = nil
		row.Err = err.Error()
		return true
	}
	row.Assets = assets
	row.Err = ""
	return true
}

// Retry re-arms a single failed (or empty) row under the current generation.
// Returns the generation and preset to fetch with, or ok=false when the row
// does not exist or is still loading.
func (r *RowsState) Retry(key string) (gen uint64, preset domain.CategoryPreset, ok bool) {
	row := r.row(key)
	if row == nil || row.Loading {
		return 0, domain.CategoryPreset{}, false
	}
	row.Loading = true
	row.Err = ""
	return r.generation, row.Preset, true
}

// Rows returns the row list in preset order.
func (r *RowsState) Rows() []CategoryRow { return r.rows }

// AnyLoading reports whether at least one row fetch is still in flight.
func (r *RowsState) AnyLoading() bool {
	for i := range r.rows {
		if r.rows[i].Loading {
			return true
		}
	}
	return false
}

// LoadedAssets returns the union of all row assets, deduplicated by external
// identifier with the first-seen copy winning. This is the selection scope
// while category rows are the active source.
func (r *RowsState) LoadedAssets() []domain.LibraryAsset {
	seen := make(map[string]struct{})
	var out []domain.LibraryAsset
	for i := range r.rows {
		for _, a := range r.rows[i].Assets {
			if _, dup := seen[a.ID]; dup {
				continue
			}
			seen[a.ID] = struct{}{}
			out = append(out, a)
		}
	}
	return out
}

func (r *RowsState) row(key string) *CategoryRow {
	for i := range r.rows {
		if r.rows[i].Preset.Key == key {
			return &r.rows[i]
		}
	}
	return nil
}

package panel

import "stockpick/internal/domain"

// PrefetchThreshold is how close (in assets) the cursor may get to the end
// of the loaded list before the next page is requested.
const PrefetchThreshold = 8

// GridState is the paginated loader state for the main asset grid. One
// instance serves both search mode and an expanded category. Loads are
// strictly serialized: a new load cannot start while one is pending. A
// reset requested mid-flight instead bumps the generation, so the pending
// fetch's result is discarded on arrival and the caller re-issues the
// reset from its completion handler.
type GridState struct {
	assets []domain.LibraryAsset
	seen   map[string]struct{} // external IDs already merged

	generation uint64 // bumped per reset request; stale results are discarded

	page    int // next page to request (1-based)
	perPage int
	total   *int // nil until the provider reports one
	hasMore bool

	loading     bool // reset load in flight
	loadingMore bool // append load in flight
	loadErr     string
}

// NewGridState creates an empty grid loader requesting perPage items per fetch.
func NewGridState(perPage int) *GridState {
	return &GridState{
		perPage: perPage,
		seen:    make(map[string]struct{}),
		page:    1,
	}
}

// BeginLoad applies the load guards and marks a fetch as in flight.
// Returns the page to request and whether a fetch should be issued.
// Reset loads clear all asset/error/pagination state up front. A reset
// denied because a fetch is pending still bumps the generation; the
// pending result then fails the ApplyPage/Fail generation check.
func (g *GridState) BeginLoad(reset bool) (page int, ok bool) {
	if g.loading || g.loadingMore {
		if reset {
			g.generation++
		}
		return 0, false
	}
	if !reset && !g.hasMore {
		return 0, false
	}

	if reset {
		g.generation++
		g.assets = nil
		g.seen = make(map[string]struct{})
		g.page = 1
		g.total = nil
		g.hasMore = false
		g.loadErr = ""
		g.loading = true
	} else {
		g.loadingMore = true
	}
	return g.page, true
}

// ApplyPage merges a successful fetch into the loaded list. Returns false,
// merging nothing but releasing the in-flight flags, when the result belongs
// to a superseded generation. Duplicate external IDs keep the first-seen
// copy; the page counter advances unconditionally.
func (g *GridState) ApplyPage(gen uint64, pg *domain.AssetPage) bool {
	g.loading = false
	g.loadingMore = false
	if gen != g.generation {
		return false
	}

	for _, a := range pg.Assets {
		if _, dup := g.seen[a.ID]; dup {
			continue
		}
		g.seen[a.ID] = struct{}{}
		g.assets = append(g.assets, a)
	}

	g.page++
	if pg.Total != nil {
		g.total = pg.Total
	}

	if g.total != nil {
		g.hasMore = len(g.assets) < *g.total
	} else {
		// Unknown-total providers: a full page implies more may exist
		g.hasMore = len(pg.Assets) >= g.perPage
	}

	g.loadErr = ""
	return true
}

// Fail records a fetch failure. Returns false, recording nothing but
// releasing the in-flight flags, for a superseded generation. Reset
// failures clear the list and total; append failures keep existing items
// but stop further loading.
func (g *GridState) Fail(gen uint64, reset bool, err error) bool {
	g.loading = false
	g.loadingMore = false
	if gen != g.generation {
		return false
	}

	if reset {
		g.assets = nil
		g.seen = make(map[string]struct{})
		g.total = nil
	}
	g.hasMore = false
	if err != nil {
		g.loadErr = err.Error()
	} else {
		g.loadErr = "load failed"
	}
	return true
}

// ShouldPrefetch reports whether another page should be requested given the
// current cursor position. Bounded by the in-flight and has-more guards, so
// re-checking after every completed load cannot recurse unboundedly.
func (g *GridState) ShouldPrefetch(cursor int) bool {
	if g.loading || g.loadingMore || !g.hasMore {
		return false
	}
	return cursor >= len(g.assets)-PrefetchThreshold
}

// Generation returns the current load generation.
func (g *GridState) Generation() uint64 { return g.generation }

// Assets returns the merged loaded list in first-seen order.
func (g *GridState) Assets() []domain.LibraryAsset { return g.assets }

// AssetIDs returns the external identifiers of all loaded assets, in order.
func (g *GridState) AssetIDs() []string {
	ids := make([]string, len(g.assets))
	for i, a := range g.assets {
		ids[i] = a.ID
	}
	return ids
}

// Len returns the loaded asset count.
func (g *GridState) Len() int { return len(g.assets) }

// HasMore reports whether more pages are believed to exist.
func (g *GridState) HasMore() bool { return g.hasMore }

// Loading reports whether any load (reset or append) is in flight.
func (g *GridState) Loading() bool { return g.loading || g.loadingMore }

// LoadingMore reports whether an append load is in flight.
func (g *GridState) LoadingMore() bool { return g.loadingMore }

// LoadErr returns the last load error message, empty when none.
func (g *GridState) LoadErr() string { return g.loadErr }

// Total returns the provider-reported total, or -1 when unknown.
func (g *GridState) Total() int {
	if g.total == nil {
		return -1
	}
	return *g.total
}

// Page returns the next page number to be requested.
func (g *GridState) Page() int { return g.page }

package panel

import (
	"strings"

	"github.com/sahilm/fuzzy"

	"stockpick/internal/domain"
)

// assetIndex implements fuzzy.Source over loaded assets for zero-allocation
// matching against pre-computed lowercase display names.
type assetIndex struct {
	assets     []domain.LibraryAsset
	lowerNames []string
}

// String returns the lowercase name at index i (implements fuzzy.Source)
func (idx *assetIndex) String(i int) string { return idx.lowerNames[i] }

// Len returns the number of indexed assets (implements fuzzy.Source)
func (idx *assetIndex) Len() int { return len(idx.assets) }

// FilterAssets narrows the loaded list with a client-side fuzzy match over
// display names. An empty query returns the indices of all assets.
func FilterAssets(query string, assets []domain.LibraryAsset) []int {
	query = strings.TrimSpace(query)
	if query == "" {
		indices := make([]int, len(assets))
		for i := range assets {
			indices[i] = i
		}
		return indices
	}

	idx := &assetIndex{
		assets:     assets,
		lowerNames: make([]string, len(assets)),
	}
	for i, a := range assets {
		idx.lowerNames[i] = strings.ToLower(a.DisplayName())
	}

	matches := fuzzy.FindFrom(strings.ToLower(query), idx)
	indices := make([]int, len(matches))
	for i, m := range matches {
		indices[i] = m.Index
	}
	return indices
}

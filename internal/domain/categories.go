package domain

// CategoryPreset is a static category descriptor. The query string is what
// gets sent to the provider when the category's row or expanded grid loads;
// an empty query means the provider's curated feed.
type CategoryPreset struct {
	Key   string // Stable identifier, unique within a kind
	Title string // Display title
	Query string // Provider query string
}

var imageCategories = []CategoryPreset{
	{Key: "curated", Title: "Curated", Query: ""},
	{Key: "nature", Title: "Nature", Query: "nature landscape"},
	{Key: "people", Title: "People", Query: "people portrait"},
	{Key: "business", Title: "Business", Query: "business office"},
	{Key: "food", Title: "Food", Query: "food cooking"},
	{Key: "travel", Title: "Travel", Query: "travel city"},
	{Key: "abstract", Title: "Abstract", Query: "abstract texture"},
}

var videoCategories = []CategoryPreset{
	{Key: "curated", Title: "Curated", Query: ""},
	{Key: "nature", Title: "Nature", Query: "nature aerial"},
	{Key: "people", Title: "People", Query: "people lifestyle"},
	{Key: "urban", Title: "Urban", Query: "city street"},
	{Key: "slowmo", Title: "Slow Motion", Query: "slow motion"},
	{Key: "backgrounds", Title: "Backgrounds", Query: "background loop"},
	{Key: "technology", Title: "Technology", Query: "technology screen"},
}

// CategoryPresets returns the compile-time category list for a kind.
func CategoryPresets(kind AssetKind) []CategoryPreset {
	if kind == AssetKindVideo {
		return videoCategories
	}
	return imageCategories
}

// FindCategory looks up a preset by key within a kind.
func FindCategory(kind AssetKind, key string) (CategoryPreset, bool) {
	for _, p := range CategoryPresets(kind) {
		if p.Key == key {
			return p, true
		}
	}
	return CategoryPreset{}, false
}

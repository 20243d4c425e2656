package domain

import (
	"fmt"
	"strings"
)

// AssetKind distinguishes catalog content types
type AssetKind string

const (
	AssetKindImage AssetKind = "image"
	AssetKindVideo AssetKind = "video"
)

// Valid reports whether the kind is one the provider understands.
func (k AssetKind) Valid() bool {
	return k == AssetKindImage || k == AssetKindVideo
}

// LibraryAsset represents a single item from a stock-media provider catalog.
// Immutable once fetched; the external ID is the dedup/selection key.
type LibraryAsset struct {
	ID         string    // Provider-assigned unique identifier
	Kind       AssetKind // Image or video
	SrcURL     string    // Full-resolution source URL
	PreviewURL string    // Thumbnail/preview URL
	Width      int       // Pixel width (0 = unknown)
	Height     int       // Pixel height (0 = unknown)
	DurationMs int64     // Video runtime in milliseconds (0 for images)
	Name       string    // Display name
	Author     string    // Credited creator (optional)
}

// DisplayName returns the name shown in lists, falling back to the author
// and finally the external ID when the provider sends no title.
func (a LibraryAsset) DisplayName() string {
	if a.Name != "" {
		return a.Name
	}
	if a.Author != "" {
		return fmt.Sprintf("%s by %s", a.Kind, a.Author)
	}
	return string(a.Kind) + " " + a.ID
}

// Resolution returns a human-readable resolution string based on asset height
func (a LibraryAsset) Resolution() string {
	switch {
	case a.Height >= 2160:
		return "4K"
	case a.Height >= 1080:
		return "1080p"
	case a.Height >= 720:
		return "720p"
	case a.Height >= 480:
		return "480p"
	case a.Height > 0:
		return fmt.Sprintf("%dp", a.Height)
	default:
		return ""
	}
}

// FormattedDuration returns the video runtime in a human-readable format
func (a LibraryAsset) FormattedDuration() string {
	if a.DurationMs <= 0 {
		return ""
	}
	totalSecs := a.DurationMs / 1000
	m := totalSecs / 60
	s := totalSecs % 60
	return fmt.Sprintf("%d:%02d", m, s)
}

// AssetPage is one page of a catalog listing.
type AssetPage struct {
	Provider string
	Kind     AssetKind
	Page     int
	PerPage  int
	Total    *int // nil when the provider does not report totals
	Assets   []LibraryAsset
}

// ListRequest describes one page fetch against the catalog.
type ListRequest struct {
	Kind    AssetKind
	Page    int
	PerPage int
	Query   string // free-text or category preset query; empty = curated feed
}

// MediaEntryType distinguishes local media library entry types
type MediaEntryType string

const (
	MediaEntryImage MediaEntryType = "image"
	MediaEntryVideo MediaEntryType = "video"
)

// MediaEntry is an item in the local media library, created from a catalog
// asset's source URL. Video entries carry mutable duration and resolution
// fields settable after creation.
type MediaEntry struct {
	ID         string         // Local identifier (uuid)
	Type       MediaEntryType // Image or video
	Name       string         // Display name
	URL        string         // Source URL the entry was created from
	DurationMs int64          // Video duration (0 until set)
	Width      int            // Video width (0 until set)
	Height     int            // Video height (0 until set)
	AddedAt    int64          // Unix timestamp when added
}

// TimelineClip is one placed asset on the editor timeline.
type TimelineClip struct {
	ID         string // Clip identifier (uuid)
	AssetID    string // Media library entry ID
	StartMs    int64  // Placement start, milliseconds from timeline origin
	DurationMs int64  // Clip duration in milliseconds
}

// End returns the clip's end position in milliseconds.
func (c TimelineClip) End() int64 {
	return c.StartMs + c.DurationMs
}

// ClipPlacement describes a requested timeline insertion.
type ClipPlacement struct {
	AssetID    string
	StartMs    int64
	DurationMs int64
}

// nameFromURL derives a fallback display name from a source URL.
func nameFromURL(rawURL string) string {
	trimmed := strings.TrimRight(rawURL, "/")
	if i := strings.LastIndex(trimmed, "/"); i >= 0 {
		trimmed = trimmed[i+1:]
	}
	if i := strings.IndexAny(trimmed, "?#"); i >= 0 {
		trimmed = trimmed[:i]
	}
	return trimmed
}

// EntryName returns name when non-empty, else a name derived from url.
func EntryName(name, url string) string {
	if name != "" {
		return name
	}
	if derived := nameFromURL(url); derived != "" {
		return derived
	}
	return "untitled"
}

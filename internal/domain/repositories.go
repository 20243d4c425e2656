package domain

import "context"

// Catalog is the read-side interface to a stock-media provider.
type Catalog interface {
	// ListAssets fetches one page of catalog results.
	ListAssets(ctx context.Context, req ListRequest) (*AssetPage, error)
}

// MediaStore creates and mutates local media library entries.
type MediaStore interface {
	// CreateImageFromURL adds an image entry referencing the given source URL.
	CreateImageFromURL(ctx context.Context, url, name string) (*MediaEntry, error)

	// CreateVideoFromURL adds a video entry referencing the given source URL.
	// Duration and resolution are settable post-creation.
	CreateVideoFromURL(ctx context.Context, url, name string) (*MediaEntry, error)

	// SetVideoDuration updates the duration of a video entry.
	SetVideoDuration(ctx context.Context, entryID string, durationMs int64) error

	// SetVideoResolution updates the resolution metadata of a video entry.
	SetVideoResolution(ctx context.Context, entryID string, width, height int) error
}

// Timeline places media library entries on the editor timeline.
type Timeline interface {
	// AddClip inserts an asset at the requested position. May fail.
	AddClip(ctx context.Context, placement ClipPlacement) error
}

// EditorState exposes the editor session signals the panel depends on.
type EditorState interface {
	// AwaitReady blocks until the editor is ready for timeline mutation
	// or the context is cancelled.
	AwaitReady(ctx context.Context) error

	// PlayheadMs returns the current playhead position in milliseconds.
	PlayheadMs() int64
}

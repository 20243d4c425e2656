package panel

import (
	"context"
	"log/slog"

	"stockpick/internal/domain"
)

// Canvas placement defaults, in milliseconds.
const (
	DefaultImageDurationMs int64 = 3000
	DefaultVideoDurationMs int64 = 5000
)

// Importer converts catalog assets into media library entries and optionally
// places them on the timeline. A single in-flight flag serializes all
// import/add operations; the per-operation pending sets only exist so the UI
// can show a distinct affordance for "importing" vs "adding to canvas".
//
// Begin/Finish mutate importer state and must run on the UI loop; Run only
// talks to the collaborators and is safe to call from a tea.Cmd.
type Importer struct {
	store    domain.MediaStore
	timeline domain.Timeline
	editor   domain.EditorState
	logger   *slog.Logger

	busy      bool
	importing map[string]struct{} // asset IDs mid import-only
	adding    map[string]struct{} // asset IDs mid add-to-canvas
	errMsg    string
}

// NewImporter creates an importer over the given collaborators.
func NewImporter(store domain.MediaStore, timeline domain.Timeline, editor domain.EditorState, logger *slog.Logger) *Importer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Importer{
		store:     store,
		timeline:  timeline,
		editor:    editor,
		logger:    logger,
		importing: make(map[string]struct{}),
		adding:    make(map[string]struct{}),
	}
}

// Busy reports whether an import/add operation is in flight.
func (im *Importer) Busy() bool { return im.busy }

// ImportingID reports whether the asset is mid import-only.
func (im *Importer) ImportingID(id string) bool {
	_, ok := im.importing[id]
	return ok
}

// AddingID reports whether the asset is mid add-to-canvas.
func (im *Importer) AddingID(id string) bool {
	_, ok := im.adding[id]
	return ok
}

// Err returns the last import error message, empty when none.
func (im *Importer) Err() string { return im.errMsg }

// Begin claims the in-flight flag and marks the batch's assets pending.
// Returns false (and changes nothing) when an operation is already running
// or the batch is empty.
func (im *Importer) Begin(assets []domain.LibraryAsset, toCanvas bool) bool {
	if im.busy || len(assets) == 0 {
		return false
	}
	im.busy = true
	im.errMsg = ""
	pending := im.importing
	if toCanvas {
		pending = im.adding
	}
	for _, a := range assets {
		pending[a.ID] = struct{}{}
	}
	return true
}

// Finish releases the in-flight flag and all pending markers, capturing the
// batch error if any. Fail-fast: a mid-batch failure leaves earlier
// successes applied and surfaces a single message.
func (im *Importer) Finish(err error) {
	im.busy = false
	im.importing = make(map[string]struct{})
	im.adding = make(map[string]struct{})
	if err == nil {
		im.errMsg = ""
		return
	}
	msg := err.Error()
	if msg == "" {
		msg = "import failed"
	}
	im.errMsg = msg
}

// Run executes the batch against the collaborators, stopping at the first
// failure. toCanvas additionally places each created entry on the timeline
// at the current playhead, after the editor signals readiness.
func (im *Importer) Run(ctx context.Context, assets []domain.LibraryAsset, toCanvas bool) error {
	for _, asset := range assets {
		entry, err := im.createEntry(ctx, asset)
		if err != nil {
			im.logger.Error("media import failed", "assetID", asset.ID, "error", err)
			return err
		}
		im.logger.Debug("media entry created", "assetID", asset.ID, "entryID", entry.ID)

		if !toCanvas {
			continue
		}
		if err := im.placeOnCanvas(ctx, asset, entry); err != nil {
			im.logger.Error("canvas placement failed", "assetID", asset.ID, "error", err)
			return err
		}
	}
	return nil
}

// createEntry adds one catalog asset to the media library.
func (im *Importer) createEntry(ctx context.Context, asset domain.LibraryAsset) (*domain.MediaEntry, error) {
	name := domain.EntryName(asset.Name, asset.SrcURL)
	if asset.Kind == domain.AssetKindVideo {
		return im.store.CreateVideoFromURL(ctx, asset.SrcURL, name)
	}
	return im.store.CreateImageFromURL(ctx, asset.SrcURL, name)
}

// placeOnCanvas inserts the created entry into the timeline at the playhead.
func (im *Importer) placeOnCanvas(ctx context.Context, asset domain.LibraryAsset, entry *domain.MediaEntry) error {
	if err := im.editor.AwaitReady(ctx); err != nil {
		return err
	}

	durationMs := DefaultImageDurationMs
	if asset.Kind == domain.AssetKindVideo {
		durationMs = DefaultVideoDurationMs
		if asset.DurationMs > 0 {
			durationMs = asset.DurationMs
		}
		if err := im.store.SetVideoDuration(ctx, entry.ID, durationMs); err != nil {
			return err
		}
		if asset.Width > 0 && asset.Height > 0 {
			if err := im.store.SetVideoResolution(ctx, entry.ID, asset.Width, asset.Height); err != nil {
				return err
			}
		}
	}

	return im.timeline.AddClip(ctx, domain.ClipPlacement{
		AssetID:    entry.ID,
		StartMs:    im.editor.PlayheadMs(),
		DurationMs: durationMs,
	})
}

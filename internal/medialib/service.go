package medialib

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lithammer/fuzzysearch/fuzzy"

	"stockpick/internal/domain"
	"stockpick/internal/store"
)

// Service implements domain.MediaStore over the project store. It is the
// local media library that imported catalog assets land in.
type Service struct {
	store  *store.ProjectStore
	logger *slog.Logger
	now    func() int64 // injectable for tests
}

// NewService creates a media library service.
func NewService(st *store.ProjectStore, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		store:  st,
		logger: logger,
		now:    func() int64 { return time.Now().Unix() },
	}
}

// CreateImageFromURL adds an image entry referencing the given source URL.
func (s *Service) CreateImageFromURL(ctx context.Context, url, name string) (*domain.MediaEntry, error) {
	return s.create(ctx, domain.MediaEntryImage, url, name)
}

// CreateVideoFromURL adds a video entry referencing the given source URL.
func (s *Service) CreateVideoFromURL(ctx context.Context, url, name string) (*domain.MediaEntry, error) {
	return s.create(ctx, domain.MediaEntryVideo, url, name)
}

func (s *Service) create(ctx context.Context, typ domain.MediaEntryType, url, name string) (*domain.MediaEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if url == "" {
		return nil, fmt.Errorf("source URL is required")
	}

	entry := &domain.MediaEntry{
		ID:      uuid.NewString(),
		Type:    typ,
		Name:    domain.EntryName(name, url),
		URL:     url,
		AddedAt: s.now(),
	}
	if err := s.store.SaveEntry(entry); err != nil {
		return nil, fmt.Errorf("failed to save media entry: %w", err)
	}

	s.logger.Info("media entry created", "id", entry.ID, "type", typ, "name", entry.Name)
	return entry, nil
}

// SetVideoDuration updates the duration of a video entry.
func (s *Service) SetVideoDuration(ctx context.Context, entryID string, durationMs int64) error {
	return s.mutateVideo(ctx, entryID, func(e *domain.MediaEntry) {
		e.DurationMs = durationMs
	})
}

// SetVideoResolution updates the resolution metadata of a video entry.
func (s *Service) SetVideoResolution(ctx context.Context, entryID string, width, height int) error {
	return s.mutateVideo(ctx, entryID, func(e *domain.MediaEntry) {
		e.Width = width
		e.Height = height
	})
}

func (s *Service) mutateVideo(ctx context.Context, entryID string, mutate func(*domain.MediaEntry)) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	entry, ok := s.store.GetEntry(entryID)
	if !ok {
		return domain.ErrEntryNotFound
	}
	if entry.Type != domain.MediaEntryVideo {
		return fmt.Errorf("entry %s is not a video", entryID)
	}
	mutate(entry)
	return s.store.SaveEntry(entry)
}

// Get loads one entry by ID.
func (s *Service) Get(entryID string) (*domain.MediaEntry, error) {
	entry, ok := s.store.GetEntry(entryID)
	if !ok {
		return nil, domain.ErrEntryNotFound
	}
	return entry, nil
}

// Entries returns all library entries in insertion order.
func (s *Service) Entries() []*domain.MediaEntry {
	return s.store.ListEntries()
}

// Search ranks library entries against a name query. An empty query returns
// everything.
func (s *Service) Search(query string) []*domain.MediaEntry {
	entries := s.store.ListEntries()
	query = strings.TrimSpace(query)
	if query == "" {
		return entries
	}

	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name
	}

	ranks := fuzzy.RankFindNormalizedFold(query, names)
	sort.Sort(ranks)

	out := make([]*domain.MediaEntry, 0, len(ranks))
	for _, r := range ranks {
		out = append(out, entries[r.OriginalIndex])
	}
	return out
}

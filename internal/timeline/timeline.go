package timeline

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"stockpick/internal/domain"
)

// Session is the editor session state: a readiness gate plus the current
// playhead position. Timeline mutation must wait for readiness.
type Session struct {
	mu         sync.Mutex
	ready      chan struct{}
	readyOnce  sync.Once
	playheadMs int64
}

// NewSession creates a not-yet-ready session with the playhead at zero.
func NewSession() *Session {
	return &Session{ready: make(chan struct{})}
}

// MarkReady opens the readiness gate. Safe to call more than once.
func (s *Session) MarkReady() {
	s.readyOnce.Do(func() { close(s.ready) })
}

// AwaitReady blocks until the session is ready or the context is cancelled.
func (s *Session) AwaitReady(ctx context.Context) error {
	select {
	case <-s.ready:
		return nil
	case <-ctx.Done():
		return domain.ErrEditorNotReady
	}
}

// PlayheadMs returns the current playhead position in milliseconds.
func (s *Session) PlayheadMs() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.playheadMs
}

// SetPlayhead moves the playhead. Negative positions clamp to zero.
func (s *Session) SetPlayhead(ms int64) {
	if ms < 0 {
		ms = 0
	}
	s.mu.Lock()
	s.playheadMs = ms
	s.mu.Unlock()
}

// ClipStore is the slice of the persistence layer the timeline needs.
type ClipStore interface {
	SaveClip(clip *domain.TimelineClip) error
	ListClips() []*domain.TimelineClip
}

// Service implements domain.Timeline over the project store.
type Service struct {
	store  ClipStore
	logger *slog.Logger
}

// NewService creates a timeline service.
func NewService(store ClipStore, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{store: store, logger: logger}
}

// AddClip inserts an asset at the requested position.
func (s *Service) AddClip(ctx context.Context, placement domain.ClipPlacement) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if placement.AssetID == "" {
		return fmt.Errorf("clip requires an asset ID")
	}
	if placement.DurationMs <= 0 {
		return fmt.Errorf("clip duration must be positive, got %d", placement.DurationMs)
	}
	if placement.StartMs < 0 {
		return fmt.Errorf("clip start must not be negative, got %d", placement.StartMs)
	}

	clip := &domain.TimelineClip{
		ID:         uuid.NewString(),
		AssetID:    placement.AssetID,
		StartMs:    placement.StartMs,
		DurationMs: placement.DurationMs,
	}
	if err := s.store.SaveClip(clip); err != nil {
		return fmt.Errorf("failed to save clip: %w", err)
	}

	s.logger.Info("clip added", "clipID", clip.ID, "assetID", clip.AssetID,
		"startMs", clip.StartMs, "durationMs", clip.DurationMs)
	return nil
}

// Clips returns all placed clips ordered by start position.
func (s *Service) Clips() []*domain.TimelineClip {
	return s.store.ListClips()
}

package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stockpick/internal/domain"
)

func TestEntryRoundTripAndReopen(t *testing.T) {
	dir := t.TempDir()

	s, err := NewProjectStore(dir)
	require.NoError(t, err)

	entry := &domain.MediaEntry{
		ID:      "e1",
		Type:    domain.MediaEntryVideo,
		Name:    "Clip",
		URL:     "https://cdn.example.com/clip.mp4",
		AddedAt: 100,
	}
	require.NoError(t, s.SaveEntry(entry))

	got, ok := s.GetEntry("e1")
	require.True(t, ok)
	assert.Equal(t, entry, got)

	_, ok = s.GetEntry("missing")
	assert.False(t, ok)

	require.NoError(t, s.Close())

	// Reopen: data must survive the process boundary
	s2, err := NewProjectStore(dir)
	require.NoError(t, err)
	defer s2.Close()

	got, ok = s2.GetEntry("e1")
	require.True(t, ok)
	assert.Equal(t, "Clip", got.Name)
}

func TestListEntriesOrdering(t *testing.T) {
	s, err := NewProjectStore(t.TempDir())
	require.NoError(t, err)
	defer s.Close()

	require.NoError(t, s.SaveEntry(&domain.MediaEntry{ID: "b", AddedAt: 200}))
	require.NoError(t, s.SaveEntry(&domain.MediaEntry{ID: "c", AddedAt: 100}))
	require.NoError(t, s.SaveEntry(&domain.MediaEntry{ID: "a", AddedAt: 200}))

	entries := s.ListEntries()
	require.Len(t, entries, 3)
	assert.Equal(t, "c", entries[0].ID, "oldest first")
	assert.Equal(t, "a", entries[1].ID, "ID breaks AddedAt ties")
	assert.Equal(t, "b", entries[2].ID)
}

func TestDeleteEntry(t *testing.T) {
	s, err := NewProjectStore(t.TempDir())
	require.NoError(t, err)
	defer s.Close()

	require.NoError(t, s.SaveEntry(&domain.MediaEntry{ID: "e1"}))
	s.DeleteEntry("e1")

	_, ok := s.GetEntry("e1")
	assert.False(t, ok)
	assert.Empty(t, s.ListEntries())
}

func TestUpdateOverwrites(t *testing.T) {
	s, err := NewProjectStore(t.TempDir())
	require.NoError(t, err)
	defer s.Close()

	require.NoError(t, s.SaveEntry(&domain.MediaEntry{ID: "e1", Type: domain.MediaEntryVideo}))
	require.NoError(t, s.SaveEntry(&domain.MediaEntry{ID: "e1", Type: domain.MediaEntryVideo, DurationMs: 5000, Width: 1920, Height: 1080}))

	got, ok := s.GetEntry("e1")
	require.True(t, ok)
	assert.Equal(t, int64(5000), got.DurationMs)
	assert.Equal(t, 1920, got.Width)
	assert.Len(t, s.ListEntries(), 1)
}

func TestClipOrdering(t *testing.T) {
	s, err := NewProjectStore(t.TempDir())
	require.NoError(t, err)
	defer s.Close()

	require.NoError(t, s.SaveClip(&domain.TimelineClip{ID: "y", AssetID: "e1", StartMs: 3000, DurationMs: 1000}))
	require.NoError(t, s.SaveClip(&domain.TimelineClip{ID: "x", AssetID: "e2", StartMs: 0, DurationMs: 5000}))
	require.NoError(t, s.SaveClip(&domain.TimelineClip{ID: "z", AssetID: "e3", StartMs: 0, DurationMs: 2000}))

	clips := s.ListClips()
	require.Len(t, clips, 3)
	assert.Equal(t, "x", clips[0].ID, "earliest start first")
	assert.Equal(t, "z", clips[1].ID, "ID breaks start ties")
	assert.Equal(t, "y", clips[2].ID)

	s.DeleteClip("x")
	assert.Len(t, s.ListClips(), 2)
}

func TestMemoryOnlyMode(t *testing.T) {
	s, err := NewProjectStore("")
	require.NoError(t, err)
	defer s.Close()

	require.NoError(t, s.SaveEntry(&domain.MediaEntry{ID: "e1", Name: "ephemeral", AddedAt: 1}))
	require.NoError(t, s.SaveEntry(&domain.MediaEntry{ID: "e2", Name: "also", AddedAt: 2}))

	got, ok := s.GetEntry("e1")
	require.True(t, ok)
	assert.Equal(t, "ephemeral", got.Name)

	entries := s.ListEntries()
	require.Len(t, entries, 2)
	assert.Equal(t, "e1", entries[0].ID)

	s.DeleteEntry("e1")
	assert.Len(t, s.ListEntries(), 1)
}

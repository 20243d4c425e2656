package medialib

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stockpick/internal/domain"
	"stockpick/internal/log"
	"stockpick/internal/store"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	st, err := store.NewProjectStore("")
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })

	svc := NewService(st, log.NullLogger())
	clock := int64(0)
	svc.now = func() int64 { clock++; return clock }
	return svc
}

func TestCreateEntries(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	img, err := svc.CreateImageFromURL(ctx, "https://cdn.example.com/photo.jpg", "Sunset")
	require.NoError(t, err)
	assert.NotEmpty(t, img.ID)
	assert.Equal(t, domain.MediaEntryImage, img.Type)
	assert.Equal(t, "Sunset", img.Name)
	assert.Equal(t, int64(1), img.AddedAt)

	vid, err := svc.CreateVideoFromURL(ctx, "https://cdn.example.com/clip.mp4", "Waves")
	require.NoError(t, err)
	assert.Equal(t, domain.MediaEntryVideo, vid.Type)
	assert.NotEqual(t, img.ID, vid.ID)
	assert.Zero(t, vid.DurationMs, "duration is unknown until set")

	entries := svc.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, img.ID, entries[0].ID, "insertion order preserved")
}

func TestCreateNameFallsBackToURL(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	entry, err := svc.CreateImageFromURL(ctx, "https://cdn.example.com/assets/beach-day.jpg?w=1920", "")
	require.NoError(t, err)
	assert.Equal(t, "beach-day.jpg", entry.Name)

	_, err = svc.CreateImageFromURL(ctx, "", "")
	assert.Error(t, err, "a source URL is required")
}

func TestSetVideoDuration(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	vid, err := svc.CreateVideoFromURL(ctx, "https://cdn.example.com/clip.mp4", "Clip")
	require.NoError(t, err)

	require.NoError(t, svc.SetVideoDuration(ctx, vid.ID, 8000))
	got, err := svc.Get(vid.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(8000), got.DurationMs)
}

func TestSetVideoResolution(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	vid, err := svc.CreateVideoFromURL(ctx, "https://cdn.example.com/clip.mp4", "Clip")
	require.NoError(t, err)

	require.NoError(t, svc.SetVideoResolution(ctx, vid.ID, 1920, 1080))
	got, err := svc.Get(vid.ID)
	require.NoError(t, err)
	assert.Equal(t, 1920, got.Width)
	assert.Equal(t, 1080, got.Height)
}

func TestVideoMutationsRejectImages(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	img, err := svc.CreateImageFromURL(ctx, "https://cdn.example.com/photo.jpg", "Photo")
	require.NoError(t, err)

	err = svc.SetVideoDuration(ctx, img.ID, 3000)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a video")

	err = svc.SetVideoDuration(ctx, "missing-id", 3000)
	assert.ErrorIs(t, err, domain.ErrEntryNotFound)
}

func TestGetUnknownEntry(t *testing.T) {
	svc := newTestService(t)
	_, err := svc.Get("nope")
	assert.ErrorIs(t, err, domain.ErrEntryNotFound)
}

func TestSearchRanksByName(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.CreateImageFromURL(ctx, "https://cdn.example.com/1.jpg", "Mountain Lake")
	require.NoError(t, err)
	_, err = svc.CreateImageFromURL(ctx, "https://cdn.example.com/2.jpg", "City Skyline")
	require.NoError(t, err)
	_, err = svc.CreateImageFromURL(ctx, "https://cdn.example.com/3.jpg", "Lake House")
	require.NoError(t, err)

	got := svc.Search("lake")
	require.Len(t, got, 2)
	names := []string{got[0].Name, got[1].Name}
	assert.ElementsMatch(t, []string{"Mountain Lake", "Lake House"}, names)

	assert.Len(t, svc.Search(""), 3, "empty query returns everything")
	assert.Empty(t, svc.Search("zebra"))
}

package tui

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stockpick/internal/domain"
	"stockpick/internal/log"
	"stockpick/internal/panel"
)

// scriptedCatalog serves canned pages per kind and records every request.
type scriptedCatalog struct {
	requests []domain.ListRequest
	pages    map[domain.AssetKind]*domain.AssetPage
}

func (s *scriptedCatalog) ListAssets(_ context.Context, req domain.ListRequest) (*domain.AssetPage, error) {
	s.requests = append(s.requests, req)
	if pg, ok := s.pages[req.Kind]; ok {
		return pg, nil
	}
	return &domain.AssetPage{Kind: req.Kind, PerPage: req.PerPage}, nil
}

func newTestModel(catalog domain.Catalog) Model {
	importer := panel.NewImporter(nil, nil, nil, log.NullLogger())
	return NewModel(catalog, importer, domain.AssetKindImage, 24, log.NullLogger())
}

func staleImagePage(gen uint64) GridPageMsg {
	return GridPageMsg{
		Generation: gen,
		Reset:      true,
		Page: &domain.AssetPage{
			Kind:    domain.AssetKindImage,
			PerPage: 24,
			Assets:  []domain.LibraryAsset{{ID: "img-1", Kind: domain.AssetKindImage}},
		},
	}
}

func TestKindSwitchDiscardsInFlightGridPage(t *testing.T) {
	total := 1
	catalog := &scriptedCatalog{pages: map[domain.AssetKind]*domain.AssetPage{
		domain.AssetKindVideo: {
			Kind:    domain.AssetKindVideo,
			PerPage: 24,
			Total:   &total,
			Assets:  []domain.LibraryAsset{{ID: "vid-1", Kind: domain.AssetKindVideo}},
		},
	}}
	m := newTestModel(catalog)

	// Commit a search; the image grid fetch goes in flight (its command is
	// never executed, simulating a slow response)
	model, cmd := m.commitQuery("sunset")
	m = model.(Model)
	require.NotNil(t, cmd)
	staleGen := m.grid.Generation()

	// Switch kind before the fetch resolves: the reload defers but
	// supersedes the pending fetch
	model, cmd = m.switchKind()
	m = model.(Model)
	assert.Nil(t, cmd)
	require.Equal(t, domain.AssetKindVideo, m.query.Kind())
	require.NotEqual(t, staleGen, m.grid.Generation())

	// The superseded image page resolves: nothing of it may land
	model, cmd = m.Update(staleImagePage(staleGen))
	m = model.(Model)
	assert.Zero(t, m.grid.Len(), "stale image page must be discarded")
	require.NotNil(t, cmd, "the deferred video reset must be issued")

	// The deferred fetch targets the video query and lands cleanly
	msg := cmd()
	pageMsg, ok := msg.(GridPageMsg)
	require.True(t, ok)
	require.Len(t, catalog.requests, 1)
	assert.Equal(t, domain.AssetKindVideo, catalog.requests[0].Kind)
	assert.Equal(t, "sunset", catalog.requests[0].Query)

	model, _ = m.Update(pageMsg)
	m = model.(Model)
	require.Equal(t, 1, m.grid.Len())
	assert.Equal(t, "vid-1", m.grid.Assets()[0].ID)
}

func TestKindSwitchDiscardsInFlightGridFailure(t *testing.T) {
	m := newTestModel(&scriptedCatalog{})

	model, cmd := m.commitQuery("sunset")
	m = model.(Model)
	require.NotNil(t, cmd)
	staleGen := m.grid.Generation()

	model, _ = m.switchKind()
	m = model.(Model)

	model, cmd = m.Update(GridLoadFailedMsg{Generation: staleGen, Reset: true, Err: errors.New("old failure")})
	m = model.(Model)
	assert.Empty(t, m.grid.LoadErr(), "a superseded failure must not surface")
	assert.NotNil(t, cmd, "the deferred reset must be issued")
}

func TestStaleGridResultInRowsModeIssuesNoReload(t *testing.T) {
	catalog := &scriptedCatalog{}
	m := newTestModel(catalog)

	model, cmd := m.commitQuery("sunset")
	m = model.(Model)
	require.NotNil(t, cmd)
	staleGen := m.grid.Generation()

	// A second search supersedes the pending fetch, then the user clears
	// back to category rows
	model, _ = m.commitQuery("beach")
	m = model.(Model)
	model, _ = m.commitQuery("")
	m = model.(Model)
	require.Equal(t, panel.ModeCategoryRows, m.query.Mode())
	gridFetches := len(catalog.requests)

	model, cmd = m.Update(staleImagePage(staleGen))
	m = model.(Model)
	assert.Zero(t, m.grid.Len())
	assert.Nil(t, cmd, "no grid fetch while category rows are active")
	assert.Len(t, catalog.requests, gridFetches)
}

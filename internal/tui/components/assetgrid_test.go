package components

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stockpick/internal/domain"
)

func TestTruncateNameKeepsRunesIntact(t *testing.T) {
	name := "crème brûlée à la plage"

	got := truncateName(name, 10)
	assert.True(t, utf8.ValidString(got))
	assert.Equal(t, 10, utf8.RuneCountInString(got))
	assert.Equal(t, '…', []rune(got)[9])

	assert.Equal(t, "short", truncateName("short", 10))
	assert.Equal(t, "", truncateName("anything", 0))
}

func TestRenderCellShowsMetaUnderCursor(t *testing.T) {
	g := NewAssetGrid()
	asset := domain.LibraryAsset{
		ID:         "a",
		Kind:       domain.AssetKindVideo,
		Name:       "Surf",
		Height:     1080,
		DurationMs: 65000,
	}
	none := func(string) CellState { return CellState{} }

	plain := g.renderCell(asset, false, none)
	focused := g.renderCell(asset, true, none)

	require.Contains(t, plain, "1080p")
	require.Contains(t, plain, "1:05")
	assert.Contains(t, focused, "1080p", "cursor cell keeps the meta column")
	assert.Contains(t, focused, "1:05")
}

package panel

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSelectionToggleAndOrder(t *testing.T) {
	s := NewSelection(nil)

	s.Toggle("b")
	s.Toggle("a")
	s.Toggle("c")
	s.Toggle("a") // deselect

	assert.True(t, s.Has("b"))
	assert.False(t, s.Has("a"))
	assert.Equal(t, []string{"b", "c"}, s.Visible([]string{"a", "b", "c"}))
}

func TestSelectionStaleFilteredAtReadTime(t *testing.T) {
	s := NewSelection(nil)

	// Selected under a previous query; "old" is no longer loaded
	s.Toggle("old")
	s.Toggle("kept")

	loaded := []string{"kept", "new"}
	assert.Equal(t, []string{"kept"}, s.Visible(loaded))
	assert.Equal(t, 1, s.VisibleCount(loaded))

	// The stale entry is not purged: it counts again if its asset reloads
	assert.Equal(t, 2, s.VisibleCount([]string{"old", "kept"}))
}

func TestSelectionAllLoadedSelected(t *testing.T) {
	s := NewSelection(nil)

	assert.False(t, s.AllLoadedSelected(nil), "false when nothing is loaded")
	assert.False(t, s.AllLoadedSelected([]string{"a"}))

	s.Toggle("a")
	assert.True(t, s.AllLoadedSelected([]string{"a"}))
	assert.False(t, s.AllLoadedSelected([]string{"a", "b"}))
}

func TestSelectionToggleAllLoaded(t *testing.T) {
	s := NewSelection(nil)
	loaded := []string{"a", "b", "c"}

	s.ToggleAllLoaded(loaded)
	assert.True(t, s.AllLoadedSelected(loaded))

	// Toggling again clears everything
	s.ToggleAllLoaded(loaded)
	assert.Equal(t, 0, s.VisibleCount(loaded))
	assert.False(t, s.Has("a"))

	// Partial selection upgrades to full, keeping earlier order
	s.Toggle("b")
	s.ToggleAllLoaded(loaded)
	assert.Equal(t, []string{"b", "a", "c"}, s.Visible(loaded))
}

func TestSelectionNoOpWhileImporting(t *testing.T) {
	busy := false
	s := NewSelection(func() bool { return busy })
	loaded := []string{"a", "b"}

	s.Toggle("a")
	busy = true

	s.Toggle("b")
	s.ToggleAllLoaded(loaded)
	s.Clear()

	assert.True(t, s.Has("a"), "mutators are no-ops mid-import")
	assert.False(t, s.Has("b"))
	assert.Equal(t, 1, s.VisibleCount(loaded))

	busy = false
	s.Clear()
	assert.Equal(t, 0, s.VisibleCount(loaded))
}

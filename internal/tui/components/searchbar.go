package components

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"stockpick/internal/tui/styles"
)

// SearchBar wraps the free-text query input. The committed value drives the
// panel's search-grid mode; editing state stays local until enter.
type SearchBar struct {
	input   textinput.Model
	focused bool
}

// NewSearchBar creates the search input
func NewSearchBar() SearchBar {
	ti := textinput.New()
	ti.Placeholder = "search stock media..."
	ti.Prompt = "/ "
	ti.PromptStyle = styles.FilterPromptStyle
	ti.TextStyle = styles.FilterStyle
	ti.CharLimit = 120

	return SearchBar{input: ti}
}

// Focus grabs keyboard input
func (s *SearchBar) Focus() tea.Cmd {
	s.focused = true
	return s.input.Focus()
}

// Blur releases keyboard input
func (s *SearchBar) Blur() {
	s.focused = false
	s.input.Blur()
}

// Focused reports whether the bar owns key events
func (s *SearchBar) Focused() bool { return s.focused }

// Value returns the current (possibly uncommitted) text
func (s *SearchBar) Value() string { return s.input.Value() }

// SetValue replaces the text
func (s *SearchBar) SetValue(v string) { s.input.SetValue(v) }

// Update forwards a message to the underlying input
func (s *SearchBar) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return cmd
}

// View renders the bar, dimming the prompt when unfocused
func (s *SearchBar) View() string {
	if !s.focused && s.input.Value() == "" {
		return styles.DimStyle.Render("/ search")
	}
	return s.input.View()
}

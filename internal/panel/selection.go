package panel

// Selection tracks selected external identifiers across whichever asset
// source is active. Stale entries from a previous query are never purged;
// they are filtered against the loaded set at read time. All mutators are
// no-ops while the supplied busy check reports an import/add in flight.
type Selection struct {
	ids    []string // insertion order
	member map[string]struct{}
	busy   func() bool
}

// NewSelection creates an empty selection. busy gates every mutator; nil
// means never busy.
func NewSelection(busy func() bool) *Selection {
	if busy == nil {
		busy = func() bool { return false }
	}
	return &Selection{
		member: make(map[string]struct{}),
		busy:   busy,
	}
}

// Toggle flips one identifier's membership.
func (s *Selection) Toggle(id string) {
	if s.busy() || id == "" {
		return
	}
	if _, ok := s.member[id]; ok {
		s.remove(id)
		return
	}
	s.member[id] = struct{}{}
	s.ids = append(s.ids, id)
}

// Clear removes all selections.
func (s *Selection) Clear() {
	if s.busy() {
		return
	}
	s.ids = nil
	s.member = make(map[string]struct{})
}

// ToggleAllLoaded selects every currently loaded identifier, or clears the
// selection when all loaded identifiers are already selected.
func (s *Selection) ToggleAllLoaded(loaded []string) {
	if s.busy() {
		return
	}
	if s.AllLoadedSelected(loaded) {
		s.ids = nil
		s.member = make(map[string]struct{})
		return
	}
	for _, id := range loaded {
		if _, ok := s.member[id]; ok {
			continue
		}
		s.member[id] = struct{}{}
		s.ids = append(s.ids, id)
	}
}

// AllLoadedSelected reports whether every loaded identifier is selected.
// False when nothing is loaded.
func (s *Selection) AllLoadedSelected(loaded []string) bool {
	if len(loaded) == 0 {
		return false
	}
	for _, id := range loaded {
		if _, ok := s.member[id]; !ok {
			return false
		}
	}
	return true
}

// Has reports whether an identifier is selected.
func (s *Selection) Has(id string) bool {
	_, ok := s.member[id]
	return ok
}

// Visible returns the selected identifiers that are present in the loaded
// set, preserving selection order.
func (s *Selection) Visible(loaded []string) []string {
	loadedSet := make(map[string]struct{}, len(loaded))
	for _, id := range loaded {
		loadedSet[id] = struct{}{}
	}
	var out []string
	for _, id := range s.ids {
		if _, ok := loadedSet[id]; ok {
			out = append(out, id)
		}
	}
	return out
}

// VisibleCount returns how many selected identifiers are currently loaded.
func (s *Selection) VisibleCount(loaded []string) int {
	return len(s.Visible(loaded))
}

func (s *Selection) remove(id string) {
	delete(s.member, id)
	for i, v := range s.ids {
		if v == id {
			s.ids = append(s.ids[:i], s.ids[i+1:]...)
			return
		}
	}
}

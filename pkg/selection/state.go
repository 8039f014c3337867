package selection

// State is the current selection. The zero value has nothing selected.
type State struct {
	current MaterialID
	set     bool
}

// Current returns the selected material, if any.
func (s State) Current() (MaterialID, bool) {
	return s.current, s.set
}

// IsSelected reports whether id is the current selection.
func (s State) IsSelected(id MaterialID) bool {
	return s.set && s.current == id
}

// Replace selects id and returns the state it replaced.
func (s *State) Replace(id MaterialID) State {
	prev := *s
	*s = State{current: id, set: true}
	return prev
}

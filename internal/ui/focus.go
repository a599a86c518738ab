package ui

// Focus targets. Keys go to the keybind system and the active tab under
// FocusNav, and to the matching text input otherwise.
const (
	FocusNav    = "nav"
	FocusSearch = "search"
	FocusChat   = "chat"
)

// FocusManager tracks which region receives key presses.
type FocusManager struct {
	Current  string   // ID of the focused region
	Order    []string // Known focus targets
	OnChange func(from, to string)
}

// NewFocusManager starts with navigation focused.
func NewFocusManager() *FocusManager {
	return &FocusManager{
		Current: FocusNav,
		Order:   []string{FocusNav, FocusSearch, FocusChat},
	}
}

// SetFocus sets focus to the given ID.
// Returns true if the ID exists in order.
func (f *FocusManager) SetFocus(id string) bool {
	for _, o := range f.Order {
		if o == id {
			from := f.Current
			f.Current = id
			if f.OnChange != nil && from != id {
				f.OnChange(from, id)
			}
			return true
		}
	}
	return false
}

// Typing reports whether a text input has focus.
func (f *FocusManager) Typing() bool {
	return f.Current != FocusNav
}

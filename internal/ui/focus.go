package ui

// Focus targets for keyboard navigation.
const (
	focusYes = "yes"
	focusNo  = "no"
)

// FocusManager tracks and rotates keyboard focus across the buttons.
// Current is empty until the first Next or Prev.
type FocusManager struct {
	Current  string   // ID of the focused button
	Order    []string // Tab order for focus rotation
	OnChange func(from, to string)
}

// newButtonFocus returns a manager rotating Yes then No.
func newButtonFocus() *FocusManager {
	return &FocusManager{Order: []string{focusYes, focusNo}}
}

// Next advances focus to the next button in order.
// Returns the new current focus ID.
func (f *FocusManager) Next() string {
	return f.step(1)
}

// Prev moves focus to the previous button in order.
func (f *FocusManager) Prev() string {
	return f.step(-1)
}

func (f *FocusManager) step(delta int) string {
	n := len(f.Order)
	if n == 0 {
		return ""
	}
	idx := f.index(f.Current)
	var next int
	switch {
	case idx < 0 && delta > 0:
		next = 0
	case idx < 0:
		next = n - 1
	default:
		next = ((idx+delta)%n + n) % n
	}
	f.set(f.Order[next])
	return f.Current
}

// SetFocus sets focus to the given ID.
// Returns true if the ID exists in order.
func (f *FocusManager) SetFocus(id string) bool {
	if f.index(id) < 0 {
		return false
	}
	f.set(id)
	return true
}

// Is reports whether id currently has focus.
func (f *FocusManager) Is(id string) bool {
	return f != nil && f.Current == id
}

func (f *FocusManager) index(id string) int {
	for i, o := range f.Order {
		if o == id {
			return i
		}
	}
	return -1
}

func (f *FocusManager) set(id string) {
	from := f.Current
	f.Current = id
	if f.OnChange != nil && from != id {
		f.OnChange(from, id)
	}
}

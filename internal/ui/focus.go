package ui

import (
	"moviegrid/internal/navigation"
)

// focusHooks are notified as the registry moves focus
type focusHooks struct {
	// Reveal runs on every accepted focus, also when the element already had it
	Reveal  func(id navigation.ElementID)
	Focused func(id navigation.ElementID)
	Blurred func(id navigation.ElementID)
}

// FocusRegistry is the terminal's notion of the focused element. An element
// can take focus only while the current layout contains it and it is enabled.
type FocusRegistry struct {
	focusable func(id navigation.ElementID) bool
	hooks     focusHooks

	active    navigation.ElementID
	hasActive bool
}

// NewFocusRegistry creates a registry that consults focusable on every Focus
func NewFocusRegistry(focusable func(id navigation.ElementID) bool, hooks focusHooks) *FocusRegistry {
	return &FocusRegistry{focusable: focusable, hooks: hooks}
}

// Focus implements navigation.Surface
func (r *FocusRegistry) Focus(id navigation.ElementID) bool {
	if r.focusable == nil || !r.focusable(id) {
		return false
	}
	changed := !r.hasActive || r.active != id
	if changed && r.hasActive && r.hooks.Blurred != nil {
		r.hooks.Blurred(r.active)
	}
	r.active = id
	r.hasActive = true
	if changed && r.hooks.Focused != nil {
		r.hooks.Focused(id)
	}
	if r.hooks.Reveal != nil {
		r.hooks.Reveal(id)
	}
	return true
}

// Blur implements navigation.Surface
func (r *FocusRegistry) Blur() {
	if !r.hasActive {
		return
	}
	prev := r.active
	r.hasActive = false
	if r.hooks.Blurred != nil {
		r.hooks.Blurred(prev)
	}
}

// Active returns the focused element
func (r *FocusRegistry) Active() (navigation.ElementID, bool) {
	return r.active, r.hasActive
}

var _ navigation.Surface = (*FocusRegistry)(nil)

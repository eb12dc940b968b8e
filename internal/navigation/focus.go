package navigation

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidElementID is returned when a string is not a navigation identifier
var ErrInvalidElementID = errors.New("invalid navigation id")

const (
	tabTag  = "tab"
	itemTag = "item"
	idSep   = "-"
)

// ElementKind tags the two identifier shapes
type ElementKind int

const (
	ElementTab ElementKind = iota
	ElementItem
)

// ElementID names a focusable element: Tab(index) or Item(section, index).
// Tab is unused for items and Section/Item are unused for tabs.
type ElementID struct {
	Kind    ElementKind
	Tab     int
	Section int
	Item    int
}

// TabID returns the identifier of a tab
func TabID(index int) ElementID {
	return ElementID{Kind: ElementTab, Tab: index}
}

// ItemID returns the identifier of a content slot, footer slots included
func ItemID(section, item int) ElementID {
	return ElementID{Kind: ElementItem, Section: section, Item: item}
}

// IDForState returns the identifier of the element that should hold focus in s
func IDForState(s State) ElementID {
	if s.Zone == ZoneTabs {
		return TabID(s.TabIndex)
	}
	return ItemID(s.SectionIndex, s.ItemIndex)
}

// String encodes the identifier as "tab-<i>" or "item-<s>-<i>"
func (id ElementID) String() string {
	if id.Kind == ElementTab {
		return tabTag + idSep + strconv.Itoa(id.Tab)
	}
	return itemTag + idSep + strconv.Itoa(id.Section) + idSep + strconv.Itoa(id.Item)
}

// ParseElementID decodes an identifier produced by ElementID.String
func ParseElementID(raw string) (ElementID, error) {
	parts := strings.Split(raw, idSep)
	nums := make([]int, 0, len(parts)-1)
	for _, p := range parts[1:] {
		n, err := strconv.Atoi(p)
		if err != nil || n < 0 || p != strconv.Itoa(n) {
			return ElementID{}, fmt.Errorf("%w: %q", ErrInvalidElementID, raw)
		}
		nums = append(nums, n)
	}

	switch {
	case parts[0] == tabTag && len(nums) == 1:
		return TabID(nums[0]), nil
	case parts[0] == itemTag && len(nums) == 2:
		return ItemID(nums[0], nums[1]), nil
	}
	return ElementID{}, fmt.Errorf("%w: %q", ErrInvalidElementID, raw)
}

// Surface is the platform focus the engine drives
type Surface interface {
	// Focus moves focus to the element carrying id and reports whether it
	// was accepted. Missing or unfocusable elements return false.
	Focus(id ElementID) bool
	Blur()
}

// Target is an element hit by a pointer event. Parent walks outward and
// returns nil at the root.
type Target interface {
	NavID() (string, bool)
	Parent() Target
}

// FocusBridge applies navigation state to a Surface and maps clicks back
type FocusBridge struct {
	surface Surface
}

// NewFocusBridge creates a bridge over surface. A nil surface makes Apply a no-op.
func NewFocusBridge(surface Surface) *FocusBridge {
	return &FocusBridge{surface: surface}
}

// Apply focuses the element for s. A rejected focus blurs the current
// holder so a hidden element cannot keep receiving keys.
func (b *FocusBridge) Apply(s State) bool {
	if b.surface == nil {
		return false
	}
	if b.surface.Focus(IDForState(s)) {
		return true
	}
	b.surface.Blur()
	return false
}

// StateFromClick returns the state addressed by the nearest identified
// ancestor of target. Item clicks keep the tab index of current.
func StateFromClick(target Target, current State) (State, bool) {
	for t := target; t != nil; t = t.Parent() {
		raw, ok := t.NavID()
		if !ok {
			continue
		}
		id, err := ParseElementID(raw)
		if err != nil {
			// an unrelated marker, keep walking
			continue
		}
		if id.Kind == ElementTab {
			return State{Zone: ZoneTabs, TabIndex: id.Tab}, true
		}
		return State{
			Zone:         ZoneContent,
			TabIndex:     current.TabIndex,
			SectionIndex: id.Section,
			ItemIndex:    id.Item,
		}, true
	}
	return current, false
}

package navigation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type node struct {
	id     string
	parent *node
}

func (n *node) NavID() (string, bool) { return n.id, n.id != "" }

func (n *node) Parent() Target {
	if n.parent == nil {
		return nil
	}
	return n.parent
}

type fakeSurface struct {
	hidden  map[string]bool
	focused []string
	blurs   int
}

func (s *fakeSurface) Focus(id ElementID) bool {
	if s.hidden[id.String()] {
		return false
	}
	s.focused = append(s.focused, id.String())
	return true
}

func (s *fakeSurface) Blur() { s.blurs++ }

func (s *fakeSurface) last() string {
	if len(s.focused) == 0 {
		return ""
	}
	return s.focused[len(s.focused)-1]
}

func TestElementIDRoundTrip(t *testing.T) {
	for section := 0; section < 6; section++ {
		for item := 0; item < 40; item++ {
			id := IDForState(content(section, item))
			parsed, err := ParseElementID(id.String())
			require.NoError(t, err)
			assert.Equal(t, ElementItem, parsed.Kind)
			assert.Equal(t, section, parsed.Section)
			assert.Equal(t, item, parsed.Item)
		}
	}

	parsed, err := ParseElementID(TabID(3).String())
	require.NoError(t, err)
	assert.Equal(t, TabID(3), parsed)
}

func TestElementIDEncoding(t *testing.T) {
	assert.Equal(t, "tab-2", IDForState(State{Zone: ZoneTabs, TabIndex: 2, SectionIndex: 1}).String())
	assert.Equal(t, "item-1-12", IDForState(content(1, 12)).String())
	assert.NotEqual(t, ItemID(1, 12).String(), ItemID(11, 2).String())
}

func TestParseElementIDRejects(t *testing.T) {
	for _, raw := range []string{"", "tab", "tab-", "tab-1-2", "item-1", "item-a-2", "item--1-2", "poster-1-2", "tab-01", "item-1-+2"} {
		_, err := ParseElementID(raw)
		assert.ErrorIs(t, err, ErrInvalidElementID, raw)
	}
}

func TestFocusBridgeApply(t *testing.T) {
	surface := &fakeSurface{hidden: map[string]bool{"item-0-5": true}}
	bridge := NewFocusBridge(surface)

	assert.True(t, bridge.Apply(content(0, 1)))
	assert.Equal(t, "item-0-1", surface.last())
	assert.Zero(t, surface.blurs)

	assert.False(t, bridge.Apply(content(0, 5)))
	assert.Equal(t, 1, surface.blurs, "a rejected focus blurs the stale element")

	assert.False(t, NewFocusBridge(nil).Apply(content(0, 0)))
}

func TestStateFromClick(t *testing.T) {
	current := State{Zone: ZoneTabs, TabIndex: 2}

	card := &node{id: "item-0-4"}
	poster := &node{id: "poster-0-4", parent: card}
	image := &node{parent: poster}

	s, ok := StateFromClick(image, current)
	require.True(t, ok)
	assert.Equal(t, State{Zone: ZoneContent, TabIndex: 2, SectionIndex: 0, ItemIndex: 4}, s)

	s, ok = StateFromClick(&node{id: "tab-1"}, content(0, 3))
	require.True(t, ok)
	assert.Equal(t, State{Zone: ZoneTabs, TabIndex: 1}, s)

	s, ok = StateFromClick(&node{parent: &node{}}, current)
	assert.False(t, ok)
	assert.Equal(t, current, s)

	_, ok = StateFromClick(nil, current)
	assert.False(t, ok)
}

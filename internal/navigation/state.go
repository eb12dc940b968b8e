package navigation

import "fmt"

// Zone is one of the two mutually exclusive focus regions
type Zone int

const (
	ZoneTabs Zone = iota
	ZoneContent
)

func (z Zone) String() string {
	if z == ZoneContent {
		return "content"
	}
	return "tabs"
}

// State is the keyboard cursor. It is replaced wholesale on every transition.
type State struct {
	Zone         Zone
	TabIndex     int
	SectionIndex int
	ItemIndex    int
}

// InitialState returns the state a freshly mounted engine starts in
func InitialState(zone Zone, tabIndex int) State {
	return State{Zone: zone, TabIndex: tabIndex}
}

func (s State) String() string {
	if s.Zone == ZoneTabs {
		return fmt.Sprintf("tabs[%d]", s.TabIndex)
	}
	return fmt.Sprintf("content[%d:%d]", s.SectionIndex, s.ItemIndex)
}

// Focus is the projection of State handed to presentation code.
// Indices of the inactive zone are -1.
type Focus struct {
	Tab     int
	Section int
	Item    int
}

// Project returns the externally visible focus triple
func (s State) Project() Focus {
	if s.Zone == ZoneTabs {
		return Focus{Tab: s.TabIndex, Section: -1, Item: -1}
	}
	return Focus{Tab: -1, Section: s.SectionIndex, Item: s.ItemIndex}
}

// ItemIn returns the focused item index when section is focused, otherwise -1
func (f Focus) ItemIn(section int) int {
	if f.Section != section {
		return -1
	}
	return f.Item
}

// Section describes one navigable grid. When HasFooter is set the index
// ItemCount addresses the footer slot below the last row.
type Section struct {
	ItemCount int
	Columns   int
	HasFooter bool
}

// IsFooter reports whether index addresses the footer slot
func (s Section) IsFooter(index int) bool {
	return s.HasFooter && index == s.ItemCount
}

func (s Section) columns() int {
	if s.Columns < 1 {
		return 1
	}
	return s.Columns
}

// Config is the layout a single resolution runs against
type Config struct {
	TabCount int
	Sections []Section
	// ActiveTabIndex is the tab Escape snaps back to. Nil keeps the current tab.
	ActiveTabIndex *int
}

func (c Config) section(index int) (Section, bool) {
	if index < 0 || index >= len(c.Sections) {
		return Section{}, false
	}
	return c.Sections[index], true
}

// clamp pulls a content cursor back inside cfg after the sections shrank.
// With nothing left to point at the cursor returns to the tabs.
func (s State) clamp(cfg Config) State {
	if s.Zone != ZoneContent {
		return s
	}
	if s.SectionIndex >= len(cfg.Sections) {
		s.SectionIndex = len(cfg.Sections) - 1
	}
	if s.SectionIndex < 0 {
		return s.toTabs(cfg)
	}
	section := cfg.Sections[s.SectionIndex]
	last := section.ItemCount - 1
	if section.HasFooter {
		last = section.ItemCount
	}
	if last < 0 {
		return s.toTabs(cfg)
	}
	s.ItemIndex = max(0, min(s.ItemIndex, last))
	return s
}

func (s State) toTabs(cfg Config) State {
	tab := s.TabIndex
	if cfg.ActiveTabIndex != nil {
		tab = *cfg.ActiveTabIndex
	}
	return State{Zone: ZoneTabs, TabIndex: tab}
}

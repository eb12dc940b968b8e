package navigation

// Resolve is the pure transition function of the engine. Enter and Tab are
// not transitions and leave the state unchanged.
func Resolve(state State, key Intent, cfg Config) State {
	if key == IntentEscape {
		tab := state.TabIndex
		if cfg.ActiveTabIndex != nil {
			tab = *cfg.ActiveTabIndex
		}
		return State{Zone: ZoneTabs, TabIndex: tab}
	}

	if state.Zone == ZoneTabs {
		return resolveTabs(state, key, cfg)
	}
	return resolveContent(state, key, cfg)
}

func resolveTabs(state State, key Intent, cfg Config) State {
	switch key {
	case IntentLeft, IntentRight:
		state.TabIndex = NextTabIndex(state.TabIndex, key, cfg.TabCount)
		return state
	case IntentDown:
		if first, ok := cfg.section(0); ok && first.ItemCount > 0 {
			return State{Zone: ZoneContent, TabIndex: state.TabIndex}
		}
	}
	// up: tabs is the topmost zone
	return state
}

func resolveContent(state State, key Intent, cfg Config) State {
	section, ok := cfg.section(state.SectionIndex)
	if !ok {
		return state
	}

	if section.IsFooter(state.ItemIndex) {
		return resolveFooter(state, key, cfg, section)
	}

	move := NextGridIndex(state.ItemIndex, key, section)
	col := state.ItemIndex % section.columns()

	switch move.Kind {
	case MoveTo:
		state.ItemIndex = move.Index
		return state

	case MoveExitUp:
		prev, ok := cfg.section(state.SectionIndex - 1)
		if !ok {
			state.Zone = ZoneTabs
			return state
		}
		if prev.HasFooter {
			return state.at(state.SectionIndex-1, prev.ItemCount)
		}
		if landing := LastRowLanding(col, prev); landing >= 0 {
			return state.at(state.SectionIndex-1, landing)
		}
		return state

	case MoveExitDown:
		// the footer sits inside its section, so it wins over the next section
		if section.HasFooter {
			state.ItemIndex = section.ItemCount
			return state
		}
		return enterNext(state, cfg, col)
	}
	return state
}

func resolveFooter(state State, key Intent, cfg Config, section Section) State {
	switch key {
	case IntentUp:
		if section.ItemCount == 0 {
			return state
		}
		state.ItemIndex = section.ItemCount - 1
		return state
	case IntentDown:
		return enterNext(state, cfg, 0)
	}
	// the footer is a single focusable unit
	return state
}

// enterNext moves into the section below, landing on its first row. A next
// section without items can only be entered through its footer.
func enterNext(state State, cfg Config, col int) State {
	next, ok := cfg.section(state.SectionIndex + 1)
	if !ok {
		return state
	}
	if next.ItemCount > 0 {
		return state.at(state.SectionIndex+1, FirstRowLanding(col, next))
	}
	if next.HasFooter {
		return state.at(state.SectionIndex+1, next.ItemCount)
	}
	return state
}

func (s State) at(section, item int) State {
	s.SectionIndex = section
	s.ItemIndex = item
	return s
}

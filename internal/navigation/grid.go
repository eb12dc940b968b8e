package navigation

// MoveKind tags the outcome of a grid movement
type MoveKind int

const (
	MoveNone MoveKind = iota
	MoveTo
	MoveExitUp
	MoveExitDown
)

// GridMove is the result of NextGridIndex. Index is only meaningful for MoveTo.
type GridMove struct {
	Kind  MoveKind
	Index int
}

func moveTo(index int) GridMove { return GridMove{Kind: MoveTo, Index: index} }

// NextTabIndex moves horizontally across the tab bar, wrapping at both ends
func NextTabIndex(current int, dir Intent, total int) int {
	if total <= 0 {
		return current
	}
	switch dir {
	case IntentRight:
		return (current + 1) % total
	case IntentLeft:
		return (current - 1 + total) % total
	default:
		return current
	}
}

// NextGridIndex moves within a row/column layout. Left and right stop at
// row edges, up from the first row and down past the last item report an exit.
func NextGridIndex(current int, dir Intent, section Section) GridMove {
	columns := section.columns()
	row := current / columns
	col := current % columns

	switch dir {
	case IntentRight:
		if col == columns-1 {
			return GridMove{Kind: MoveNone, Index: current}
		}
		if next := current + 1; next < section.ItemCount {
			return moveTo(next)
		}
		return GridMove{Kind: MoveNone, Index: current}
	case IntentLeft:
		if col == 0 {
			return GridMove{Kind: MoveNone, Index: current}
		}
		return moveTo(current - 1)
	case IntentDown:
		if next := current + columns; next < section.ItemCount {
			return moveTo(next)
		}
		return GridMove{Kind: MoveExitDown}
	case IntentUp:
		if row == 0 {
			return GridMove{Kind: MoveExitUp}
		}
		return moveTo(current - columns)
	default:
		return GridMove{Kind: MoveNone, Index: current}
	}
}

// FirstRowLanding is the index reached when entering target from above,
// keeping the column and clamping to the last item.
func FirstRowLanding(col int, target Section) int {
	return min(col, target.ItemCount-1)
}

// LastRowLanding is the index reached when entering target from below
func LastRowLanding(col int, target Section) int {
	columns := target.columns()
	lastRowStart := (target.ItemCount - 1) / columns * columns
	return min(lastRowStart+col, target.ItemCount-1)
}

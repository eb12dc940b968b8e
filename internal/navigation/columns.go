package navigation

import "sort"

// Breakpoint switches the grid to Columns once the available width reaches MinWidth
type Breakpoint struct {
	MinWidth int `toml:"min_width" json:"min_width"`
	Columns  int `toml:"columns" json:"columns"`
}

// DefaultBreakpoints lays out two columns on narrow terminals and up to four on wide ones
var DefaultBreakpoints = []Breakpoint{
	{MinWidth: 0, Columns: 2},
	{MinWidth: 64, Columns: 3},
	{MinWidth: 96, Columns: 4},
}

// ColumnsForWidth picks the column count of the widest breakpoint that fits
func ColumnsForWidth(width int, breakpoints []Breakpoint) int {
	if len(breakpoints) == 0 {
		breakpoints = DefaultBreakpoints
	}
	sorted := make([]Breakpoint, len(breakpoints))
	copy(sorted, breakpoints)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].MinWidth < sorted[j].MinWidth })

	columns := 1
	for _, bp := range sorted {
		if width < bp.MinWidth {
			break
		}
		if bp.Columns > 0 {
			columns = bp.Columns
		}
	}
	return columns
}

package views

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"moviegrid/internal/navigation"
)

// TabBar is the state of the tab row
type TabBar struct {
	Titles []string
	// Active is the tab whose view is shown, -1 for none
	Active int
	// Focused is the tab under the keyboard cursor, -1 when content has focus
	Focused int
}

// RenderTabs renders the tab row. Each tab is marked with its navigation id.
func (r *Renderer) RenderTabs(bar TabBar) string {
	cells := make([]string, 0, len(bar.Titles))
	for i, title := range bar.Titles {
		style := r.styles.Tab
		switch {
		case i == bar.Focused:
			style = r.styles.TabFocused
		case i == bar.Active:
			style = r.styles.TabActive
		}
		cells = append(cells, r.marker.Mark(navigation.TabID(i).String(), style.Render(title)))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cells...)
}

// SearchBar is the state of the search line
type SearchBar struct {
	// Input is the rendered text input, shown while searching
	Input   string
	Active  bool
	Query   string
	Results int
}

// RenderSearch renders the search line
func (r *Renderer) RenderSearch(bar SearchBar) string {
	switch {
	case bar.Active:
		return r.styles.SearchPrompt.Render("Search: ") + r.styles.SearchBox.Render(bar.Input)
	case bar.Query != "":
		return r.styles.SearchPrompt.Render("Search: ") +
			r.styles.SearchBox.Render(bar.Query) +
			r.styles.Dim.Render(fmt.Sprintf("  %d results  (/ edit, x clear)", bar.Results))
	default:
		return r.styles.Dim.Render("/ search")
	}
}

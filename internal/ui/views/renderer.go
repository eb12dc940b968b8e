package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Renderer handles all view rendering. Every navigable element is passed
// through the marker under its navigation id.
type Renderer struct {
	styles *Styles
	marker Marker
}

// NewRenderer creates a renderer. A nil marker leaves content unmarked.
func NewRenderer(styles *Styles, marker Marker) *Renderer {
	if marker == nil {
		marker = PlainMarker{}
	}
	if styles == nil {
		styles = NewStyles("")
	}
	return &Renderer{styles: styles, marker: marker}
}

// Styles returns the renderer's styles
func (r *Renderer) Styles() *Styles { return r.styles }

// Frame contains the state of the screen around the content area
type Frame struct {
	Width   int
	Tabs    TabBar
	Search  SearchBar
	Loading string
	Status  string
	Error   bool
	Help    string
}

// Header renders the title, tab bar and search line
func (r *Renderer) Header(f Frame) string {
	title := r.styles.Title.Render("moviegrid")
	if f.Loading != "" {
		loading := r.styles.Dim.Render(f.Loading)
		pad := f.Width - lipgloss.Width(title) - lipgloss.Width(loading)
		if pad < 2 {
			pad = 2
		}
		title += strings.Repeat(" ", pad) + loading
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		r.RenderTabs(f.Tabs),
		r.RenderSearch(f.Search),
		"",
	)
}

// Footer renders the status line and the help bar
func (r *Renderer) Footer(f Frame) string {
	status := r.styles.Status.Render(f.Status)
	if f.Error {
		status = r.styles.StatusError.Render(f.Status)
	}
	if f.Help == "" {
		return status
	}
	return lipgloss.JoinVertical(lipgloss.Left, status, r.styles.Help.Render(f.Help))
}

// Render stacks header, body and footer into the complete view
func (r *Renderer) Render(header, body, footer string) string {
	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}

// truncate shortens s to width cells, ending with an ellipsis when cut
func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if lipgloss.Width(s) <= width {
		return s
	}
	runes := []rune(s)
	for len(runes) > 0 && lipgloss.Width(string(runes))+1 > width {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + "…"
}

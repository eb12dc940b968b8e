package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"moviegrid/internal/domain"
	"moviegrid/internal/navigation"
)

// DetailsPage is the state of the details page
type DetailsPage struct {
	Details         domain.MovieDetails
	Loaded          bool
	Favorite        bool
	Recommendations []domain.Movie
	BackFocused     bool
	Spinner         string
}

// BackSection is the only navigable section of the details page
const BackSection = 0

// RenderDetails renders the back button followed by the movie's details.
// Only the back button is marked.
func (r *Renderer) RenderDetails(page DetailsPage, width int) Block {
	style := r.styles.Footer
	if page.BackFocused {
		style = r.styles.FooterFocused
	}
	backID := navigation.ItemID(BackSection, 0).String()
	back := r.marker.Mark(backID, style.Render("← Back"))
	block := Block{
		Spans: map[string]Span{backID: {Top: 0, Bottom: lipgloss.Height(back)}},
	}

	if !page.Loaded {
		block.Text = lipgloss.JoinVertical(lipgloss.Left, back, "", r.styles.Dim.Render(strings.TrimSpace(page.Spinner+" Loading details…")))
		return block
	}

	d := page.Details
	body := width
	if body < 20 {
		body = 20
	}
	wrap := r.styles.Body.Width(body)

	title := r.styles.DetailsTitle.Render(d.Title)
	if page.Favorite {
		title += " " + r.styles.Favorite.Render("♥")
	}
	meta := fmt.Sprintf("%d · %d min · ", d.Year, d.Runtime) + r.styles.Rating.Render(fmt.Sprintf("★ %.1f", d.Rating))

	lines := []string{
		back,
		"",
		title,
		meta,
		r.field("Genres", strings.Join(d.Genres, ", ")),
		r.field("Director", d.Director),
		"",
		wrap.Render(d.Overview),
	}

	if len(d.Cast) > 0 {
		lines = append(lines, "", r.styles.Label.Render("Cast"))
		for _, c := range d.Cast {
			lines = append(lines, fmt.Sprintf("  %s %s", c.Name, r.styles.Dim.Render("as "+c.Character)))
		}
	}
	if len(page.Recommendations) > 0 {
		lines = append(lines, "", r.styles.Label.Render("Recommended"))
		for _, m := range page.Recommendations {
			lines = append(lines, fmt.Sprintf("  %s %s", m.Title, r.styles.Dim.Render(fmt.Sprintf("(%d)", m.Year))))
		}
	}

	block.Text = lipgloss.JoinVertical(lipgloss.Left, lines...)
	return block
}

func (r *Renderer) field(label, value string) string {
	if value == "" {
		return ""
	}
	return r.styles.Label.Render(label+": ") + r.styles.Body.Render(value)
}

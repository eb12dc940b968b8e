package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"moviegrid/internal/domain"
	"moviegrid/internal/navigation"
)

const (
	cardGap      = 1
	minCardWidth = 12
	// border and horizontal padding of a card
	cardChrome = 4
)

// FooterState is what the slot below a section's last row shows
type FooterState int

const (
	FooterNone FooterState = iota
	FooterReady
	// FooterLoading renders a disabled button that cannot take focus
	FooterLoading
)

// Card is one movie in a grid
type Card struct {
	Movie    domain.Movie
	Favorite bool
}

// GridSection is one navigable section of cards
type GridSection struct {
	Index   int
	Title   string
	Cards   []Card
	Columns int
	// Focused is the focused slot in this section, -1 for none
	Focused int
	Footer  FooterState
	Spinner string
}

// PosterID returns the id of the poster region inside a card. It is not a
// navigation id, clicks on it resolve to the enclosing card.
func PosterID(section, item int) string {
	return fmt.Sprintf("poster-%d-%d", section, item)
}

// CardWidth returns the outer width of a card when columns share width
func CardWidth(width, columns int) int {
	if columns < 1 {
		columns = 1
	}
	w := (width - (columns-1)*cardGap) / columns
	if w < minCardWidth {
		w = minCardWidth
	}
	return w
}

// RenderSection renders the title, the card rows and the footer of a section
func (r *Renderer) RenderSection(sec GridSection, width int) Block {
	columns := sec.Columns
	if columns < 1 {
		columns = 1
	}
	cardWidth := CardWidth(width, columns)

	block := Block{Spans: make(map[string]Span)}
	var parts []string
	line := 0
	if sec.Title != "" {
		title := r.styles.SectionTitle.Render(sec.Title)
		parts = append(parts, title)
		line += lipgloss.Height(title)
	}

	for start := 0; start < len(sec.Cards); start += columns {
		end := start + columns
		if end > len(sec.Cards) {
			end = len(sec.Cards)
		}
		cells := make([]string, 0, end-start)
		for i := start; i < end; i++ {
			if i > start {
				cells = append(cells, strings.Repeat(" ", cardGap))
			}
			cells = append(cells, r.renderCard(sec.Index, i, sec.Cards[i], i == sec.Focused, cardWidth))
		}
		row := lipgloss.JoinHorizontal(lipgloss.Top, cells...)
		height := lipgloss.Height(row)
		for i := start; i < end; i++ {
			block.Spans[navigation.ItemID(sec.Index, i).String()] = Span{Top: line, Bottom: line + height}
		}
		parts = append(parts, row)
		line += height
	}

	if footer := r.renderFooter(sec); footer != "" {
		height := lipgloss.Height(footer)
		if sec.Footer == FooterReady {
			id := navigation.ItemID(sec.Index, len(sec.Cards)).String()
			block.Spans[id] = Span{Top: line, Bottom: line + height}
		}
		parts = append(parts, footer)
	}

	block.Text = strings.Join(parts, "\n")
	return block
}

func (r *Renderer) renderCard(section, index int, card Card, focused bool, width int) string {
	inner := width - cardChrome
	if inner < 1 {
		inner = 1
	}

	poster := r.marker.Mark(PosterID(section, index),
		r.styles.Poster.Render(strings.Repeat("▒", inner)))

	meta := fmt.Sprintf("%d ", card.Movie.Year) + r.styles.Rating.Render(fmt.Sprintf("★ %.1f", card.Movie.Rating))
	if card.Favorite {
		meta += " " + r.styles.Favorite.Render("♥")
	}

	style := r.styles.Card
	if focused {
		style = r.styles.CardFocused
	}
	body := lipgloss.JoinVertical(lipgloss.Left,
		poster,
		truncate(card.Movie.Title, inner),
		meta,
	)
	return r.marker.Mark(navigation.ItemID(section, index).String(), style.Width(width-2).Render(body))
}

func (r *Renderer) renderFooter(sec GridSection) string {
	switch sec.Footer {
	case FooterReady:
		style := r.styles.Footer
		if sec.Focused == len(sec.Cards) {
			style = r.styles.FooterFocused
		}
		return r.marker.Mark(navigation.ItemID(sec.Index, len(sec.Cards)).String(), style.Render("Load more"))
	case FooterLoading:
		label := "Loading…"
		if sec.Spinner != "" {
			label = sec.Spinner + " " + label
		}
		return r.styles.FooterDisabled.Render(label)
	}
	return ""
}

// RenderEmpty renders the placeholder shown when a view has no sections
func (r *Renderer) RenderEmpty(message string) Block {
	return Text(r.styles.Dim.Render(message))
}

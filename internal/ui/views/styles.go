package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title       lipgloss.Style
	Dim         lipgloss.Style
	Status      lipgloss.Style
	StatusError lipgloss.Style
	Help        lipgloss.Style

	Tab        lipgloss.Style
	TabActive  lipgloss.Style
	TabFocused lipgloss.Style

	SectionTitle lipgloss.Style
	Card         lipgloss.Style
	CardFocused  lipgloss.Style
	Poster       lipgloss.Style
	Rating       lipgloss.Style
	Favorite     lipgloss.Style

	Footer         lipgloss.Style
	FooterFocused  lipgloss.Style
	FooterDisabled lipgloss.Style

	SearchPrompt lipgloss.Style
	SearchBox    lipgloss.Style

	DetailsTitle lipgloss.Style
	Label        lipgloss.Style
	Body         lipgloss.Style
}

type palette struct {
	accent, focus, text, muted, border, poster string
}

var palettes = map[string]palette{
	"dark":  {accent: "99", focus: "212", text: "252", muted: "241", border: "238", poster: "60"},
	"light": {accent: "57", focus: "161", text: "235", muted: "245", border: "250", poster: "146"},
}

// NewStyles creates the styles for theme. Unknown themes use dark.
func NewStyles(theme string) *Styles {
	p, ok := palettes[theme]
	if !ok {
		p = palettes["dark"]
	}

	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(p.border)).
		Padding(0, 1)
	footer := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color(p.border)).
		Padding(0, 2)
	tab := lipgloss.NewStyle().Padding(0, 2).Foreground(lipgloss.Color(p.muted))

	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(p.accent)),
		Dim:         lipgloss.NewStyle().Faint(true),
		Status:      lipgloss.NewStyle().Foreground(lipgloss.Color(p.muted)),
		StatusError: lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
		Help:        lipgloss.NewStyle().Faint(true),

		Tab:        tab,
		TabActive:  tab.Foreground(lipgloss.Color(p.text)).Bold(true).Underline(true),
		TabFocused: tab.Foreground(lipgloss.Color(p.focus)).Bold(true).Reverse(true),

		SectionTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39")).
			MarginTop(1),
		Card:        card,
		CardFocused: card.BorderForeground(lipgloss.Color(p.focus)).Border(lipgloss.ThickBorder()),
		Poster:      lipgloss.NewStyle().Foreground(lipgloss.Color(p.poster)),
		Rating:      lipgloss.NewStyle().Foreground(lipgloss.Color("220")), // yellow
		Favorite:    lipgloss.NewStyle().Foreground(lipgloss.Color("203")),

		Footer:         footer,
		FooterFocused:  footer.BorderForeground(lipgloss.Color(p.focus)).Foreground(lipgloss.Color(p.focus)),
		FooterDisabled: footer.Faint(true),

		SearchPrompt: lipgloss.NewStyle().Foreground(lipgloss.Color("214")), // yellow
		SearchBox:    lipgloss.NewStyle().Foreground(lipgloss.Color(p.text)),

		DetailsTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(p.accent)),
		Label: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		Body:  lipgloss.NewStyle().Foreground(lipgloss.Color(p.text)),
	}
}

package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Marker wraps s in a clickable region named id
type Marker interface {
	Mark(id, s string) string
}

// PlainMarker returns content unchanged. Used where no hit testing is needed.
type PlainMarker struct{}

func (PlainMarker) Mark(_, s string) string { return s }

// Span is the line range [Top, Bottom) an element occupies inside a Block
type Span struct {
	Top    int
	Bottom int
}

// Height returns the number of lines in the span
func (s Span) Height() int { return s.Bottom - s.Top }

// Block is rendered content together with the line spans of its elements
type Block struct {
	Text  string
	Spans map[string]Span
}

// Lines returns the rendered height of the block
func (b Block) Lines() int {
	if b.Text == "" {
		return 0
	}
	return lipgloss.Height(b.Text)
}

// Stack joins blocks top to bottom and shifts their spans accordingly
func Stack(blocks ...Block) Block {
	out := Block{Spans: make(map[string]Span)}
	var parts []string
	offset := 0
	for _, b := range blocks {
		if b.Text == "" {
			continue
		}
		for id, s := range b.Spans {
			out.Spans[id] = Span{Top: s.Top + offset, Bottom: s.Bottom + offset}
		}
		parts = append(parts, b.Text)
		offset += b.Lines()
	}
	out.Text = strings.Join(parts, "\n")
	return out
}

// Text returns a block without any spans
func Text(s string) Block {
	return Block{Text: s}
}

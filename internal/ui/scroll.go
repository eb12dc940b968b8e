package ui

import (
	"math"

	"github.com/charmbracelet/bubbles/viewport"

	"moviegrid/internal/navigation"
)

// wheelStep is the number of lines one mouse wheel notch scrolls
const wheelStep = 3

// viewportScroller adapts a bubbles viewport to navigation.Scrollable. The
// viewport only holds whole lines, so the fractional offset of a running
// animation is kept here and dropped when something else moved the viewport.
type viewportScroller struct {
	vp     *viewport.Model
	offset float64
}

func newViewportScroller(vp *viewport.Model) *viewportScroller {
	return &viewportScroller{vp: vp, offset: float64(vp.YOffset)}
}

func (s *viewportScroller) ScrollOffset() float64 {
	if int(math.Round(s.offset)) != s.vp.YOffset {
		s.offset = float64(s.vp.YOffset)
	}
	return s.offset
}

func (s *viewportScroller) SetScrollOffset(offset float64) {
	s.offset = offset
	s.vp.SetYOffset(int(math.Round(offset)))
}

func (s *viewportScroller) MaxScrollOffset() float64 {
	return float64(max(0, s.vp.TotalLineCount()-s.vp.Height))
}

// wheel scrolls by whole notches and stops any animation first
func (s *viewportScroller) wheel(controller *navigation.ScrollController, notches int) {
	controller.Cancel()
	next := s.ScrollOffset() + float64(notches*wheelStep)
	s.SetScrollOffset(math.Max(0, math.Min(next, s.MaxScrollOffset())))
}

var _ navigation.Scrollable = (*viewportScroller)(nil)

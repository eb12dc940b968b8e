package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"moviegrid/internal/navigation"
)

// frameMsg is delivered once per display frame while animations run
type frameMsg time.Time

// TickScheduler runs frame callbacks on bubbletea ticks. At most one tick is
// in flight; callbacks requested during a frame run on the next one.
type TickScheduler struct {
	interval time.Duration
	next     navigation.FrameID
	pending  map[navigation.FrameID]func()
	order    []navigation.FrameID
	inFlight bool
}

// NewTickScheduler creates a scheduler running at frameRate frames per second
func NewTickScheduler(frameRate int) *TickScheduler {
	if frameRate < 1 {
		frameRate = 60
	}
	return &TickScheduler{
		interval: time.Second / time.Duration(frameRate),
		pending:  make(map[navigation.FrameID]func()),
	}
}

// RequestFrame implements navigation.FrameScheduler
func (s *TickScheduler) RequestFrame(fn func()) navigation.FrameID {
	s.next++
	s.pending[s.next] = fn
	s.order = append(s.order, s.next)
	return s.next
}

// CancelFrame implements navigation.FrameScheduler
func (s *TickScheduler) CancelFrame(id navigation.FrameID) {
	delete(s.pending, id)
}

// Pending reports the number of callbacks waiting for a frame
func (s *TickScheduler) Pending() int {
	return len(s.pending)
}

// Cmd returns the tick for the next frame, or nil when nothing is waiting
// or a tick is already scheduled
func (s *TickScheduler) Cmd() tea.Cmd {
	if len(s.pending) == 0 || s.inFlight {
		return nil
	}
	s.inFlight = true
	return tea.Tick(s.interval, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

// Fire runs the callbacks that were waiting when the frame arrived
func (s *TickScheduler) Fire() {
	s.inFlight = false
	order := s.order
	s.order = nil
	for _, id := range order {
		fn, ok := s.pending[id]
		if !ok {
			continue
		}
		delete(s.pending, id)
		fn()
	}
}

var _ navigation.FrameScheduler = (*TickScheduler)(nil)

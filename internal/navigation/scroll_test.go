package navigation

import (
	"math"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// manualScheduler queues frames until Tick is called
type manualScheduler struct {
	next    FrameID
	pending map[FrameID]func()
}

func newManualScheduler() *manualScheduler {
	return &manualScheduler{pending: make(map[FrameID]func())}
}

func (s *manualScheduler) RequestFrame(fn func()) FrameID {
	s.next++
	s.pending[s.next] = fn
	return s.next
}

func (s *manualScheduler) CancelFrame(id FrameID) {
	delete(s.pending, id)
}

// Tick runs the frames queued before the call and reports how many ran
func (s *manualScheduler) Tick() int {
	ids := make([]FrameID, 0, len(s.pending))
	for id := range s.pending {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	for _, id := range ids {
		fn := s.pending[id]
		delete(s.pending, id)
		fn()
	}
	return len(ids)
}

func (s *manualScheduler) Drain(limit int) int {
	frames := 0
	for frames < limit && len(s.pending) > 0 {
		frames += s.Tick()
	}
	return frames
}

type fakeScrollable struct {
	offset float64
	max    float64
	writes int
}

func (f *fakeScrollable) ScrollOffset() float64 { return f.offset }
func (f *fakeScrollable) SetScrollOffset(offset float64) {
	f.offset = offset
	f.writes++
}
func (f *fakeScrollable) MaxScrollOffset() float64 { return f.max }

func TestScrollToConverges(t *testing.T) {
	sched := newManualScheduler()
	ctrl := NewScrollController(sched)
	el := &fakeScrollable{max: 1000}

	ctrl.ScrollTo(el, 600)
	frames := sched.Drain(1000)

	moving := int(math.Ceil(math.Log(DefaultSnapThreshold/600) / math.Log(1-DefaultScrollEase)))
	assert.Equal(t, moving+1, frames, "moving frames plus the snapping frame")
	assert.Equal(t, 600.0, el.offset)
	assert.False(t, ctrl.Animating())
	assert.Empty(t, sched.pending)
}

func TestScrollToEasesOut(t *testing.T) {
	sched := newManualScheduler()
	ctrl := NewScrollController(sched)
	el := &fakeScrollable{max: 1000}

	ctrl.ScrollTo(el, 100)
	sched.Tick()
	assert.InDelta(t, 12.0, el.offset, 1e-9)
	sched.Tick()
	assert.InDelta(t, 12.0+88*0.12, el.offset, 1e-9)
}

func TestScrollToWhileAnimatingReplacesTarget(t *testing.T) {
	sched := newManualScheduler()
	ctrl := NewScrollController(sched)
	el := &fakeScrollable{max: 1000}

	ctrl.ScrollTo(el, 100)
	sched.Tick()
	ctrl.ScrollTo(el, 300)
	assert.Len(t, sched.pending, 1, "the running loop is reused")
	assert.Equal(t, 300.0, ctrl.Target())

	sched.Drain(1000)
	assert.Equal(t, 300.0, el.offset)
}

func TestScrollCancelKeepsOffset(t *testing.T) {
	sched := newManualScheduler()
	ctrl := NewScrollController(sched)
	el := &fakeScrollable{max: 1000}

	ctrl.ScrollTo(el, 500)
	sched.Tick()
	sched.Tick()
	at := el.offset

	ctrl.Cancel()
	assert.False(t, ctrl.Animating())
	assert.Empty(t, sched.pending)
	assert.Zero(t, sched.Tick())
	assert.Equal(t, at, el.offset)
}

func TestScrollOptions(t *testing.T) {
	sched := newManualScheduler()
	ctrl := NewScrollController(sched, WithEase(0.5), WithSnapThreshold(2.5), WithEase(7))
	el := &fakeScrollable{max: 100}

	ctrl.ScrollTo(el, 8)
	sched.Tick()
	assert.Equal(t, 4.0, el.offset)
	sched.Tick()
	assert.Equal(t, 6.0, el.offset)
	sched.Tick()
	assert.Equal(t, 8.0, el.offset, "snaps once within the threshold")
}

func TestHandleKey(t *testing.T) {
	t.Run("down scrolls and clamps", func(t *testing.T) {
		sched := newManualScheduler()
		ctrl := NewScrollController(sched)
		el := &fakeScrollable{offset: 8, max: 10}

		require.True(t, ctrl.HandleKey(IntentDown, el, 3))
		assert.Equal(t, 10.0, ctrl.Target())
	})

	t.Run("steps accumulate from the pending target", func(t *testing.T) {
		sched := newManualScheduler()
		ctrl := NewScrollController(sched)
		el := &fakeScrollable{max: 100}

		ctrl.HandleKey(IntentDown, el, 3)
		ctrl.HandleKey(IntentDown, el, 3)
		assert.Equal(t, 6.0, ctrl.Target())
		ctrl.HandleKey(IntentUp, el, 3)
		assert.Equal(t, 3.0, ctrl.Target())
	})

	t.Run("up scrolls back", func(t *testing.T) {
		sched := newManualScheduler()
		ctrl := NewScrollController(sched)
		el := &fakeScrollable{offset: 2, max: 100}

		require.True(t, ctrl.HandleKey(IntentUp, el, 3))
		assert.Equal(t, 0.0, ctrl.Target())
	})

	t.Run("up at top falls through", func(t *testing.T) {
		sched := newManualScheduler()
		ctrl := NewScrollController(sched)
		el := &fakeScrollable{offset: 0.4, max: 100}

		assert.False(t, ctrl.HandleKey(IntentUp, el, 3))
		assert.Equal(t, 0.0, el.offset)
		assert.False(t, ctrl.Animating())
	})

	t.Run("one unit below the top still scrolls", func(t *testing.T) {
		sched := newManualScheduler()
		ctrl := NewScrollController(sched)
		el := &fakeScrollable{offset: 1, max: 100}

		require.True(t, ctrl.HandleKey(IntentUp, el, 3))
		assert.Equal(t, 0.0, ctrl.Target())
		assert.True(t, ctrl.Animating())
		sched.Drain(100)
		assert.Equal(t, 0.0, el.offset)

		assert.False(t, ctrl.HandleKey(IntentUp, el, 3))
	})

	t.Run("other keys are not consumed", func(t *testing.T) {
		ctrl := NewScrollController(newManualScheduler())
		assert.False(t, ctrl.HandleKey(IntentLeft, &fakeScrollable{max: 10}, 3))
		assert.False(t, ctrl.HandleKey(IntentDown, nil, 3))
	})
}

package navigation

import (
	"math"
	"reflect"
)

const (
	// DefaultScrollEase is the fraction of the remaining distance covered per frame
	DefaultScrollEase = 0.12
	// DefaultSnapThreshold is the remaining distance below which the animation snaps
	DefaultSnapThreshold = 0.5
	// atTopTolerance is how close to zero counts as already scrolled to the
	// top. It stays below one scroll unit so a line-based region one line
	// down still scrolls before Up leaves it.
	atTopTolerance = 0.5
)

// Scrollable is a region whose vertical offset can be driven programmatically.
// Implementations are expected to be pointers. Regions of a type that cannot
// be compared never count as the same region twice.
type Scrollable interface {
	ScrollOffset() float64
	SetScrollOffset(offset float64)
	MaxScrollOffset() float64
}

// FrameID identifies a requested animation frame
type FrameID uint64

// FrameScheduler runs callbacks on the next display frame
type FrameScheduler interface {
	RequestFrame(fn func()) FrameID
	CancelFrame(id FrameID)
}

// ScrollOption configures a ScrollController
type ScrollOption func(*ScrollController)

// WithEase sets the per-frame easing factor. Values outside (0, 1] are ignored.
func WithEase(ease float64) ScrollOption {
	return func(c *ScrollController) {
		if ease > 0 && ease <= 1 {
			c.ease = ease
		}
	}
}

// WithSnapThreshold sets the distance at which the animation snaps to its target
func WithSnapThreshold(threshold float64) ScrollOption {
	return func(c *ScrollController) {
		if threshold > 0 {
			c.snap = threshold
		}
	}
}

// ScrollController eases one Scrollable toward a moving target, one step per frame.
// It is independent of the navigation state and is not safe for concurrent use.
type ScrollController struct {
	scheduler FrameScheduler
	ease      float64
	snap      float64

	el      Scrollable
	target  float64
	frame   FrameID
	running bool
}

// NewScrollController creates a controller that animates on the given scheduler
func NewScrollController(scheduler FrameScheduler, opts ...ScrollOption) *ScrollController {
	c := &ScrollController{
		scheduler: scheduler,
		ease:      DefaultScrollEase,
		snap:      DefaultSnapThreshold,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ScrollTo starts animating el toward target. When an animation on the same
// element is already running only its target moves.
func (c *ScrollController) ScrollTo(el Scrollable, target float64) {
	if el == nil {
		return
	}
	c.target = target
	if c.running && sameScrollable(c.el, el) {
		return
	}
	c.Cancel()
	c.el = el
	c.running = true
	c.frame = c.scheduler.RequestFrame(c.step)
}

func (c *ScrollController) step() {
	if !c.running {
		return
	}
	current := c.el.ScrollOffset()
	delta := c.target - current
	if math.Abs(delta) < c.snap {
		c.el.SetScrollOffset(c.target)
		c.running = false
		c.frame = 0
		return
	}
	c.el.SetScrollOffset(current + delta*c.ease)
	c.frame = c.scheduler.RequestFrame(c.step)
}

// Cancel stops any animation in flight. The current offset is left as is.
func (c *ScrollController) Cancel() {
	if c.running {
		c.scheduler.CancelFrame(c.frame)
	}
	c.running = false
	c.frame = 0
}

// Animating reports whether a frame loop is in progress
func (c *ScrollController) Animating() bool {
	return c.running
}

// Target returns the offset the current or last animation aims at
func (c *ScrollController) Target() float64 {
	return c.target
}

// HandleKey applies an up/down scroll step to el and reports whether the key
// was consumed. Up at the top snaps to zero and is left for navigation.
func (c *ScrollController) HandleKey(key Intent, el Scrollable, step float64) bool {
	if el == nil {
		return false
	}
	base := el.ScrollOffset()
	if c.running && sameScrollable(c.el, el) {
		base = c.target
	}

	switch key {
	case IntentDown:
		c.ScrollTo(el, math.Min(base+step, el.MaxScrollOffset()))
		return true
	case IntentUp:
		if el.ScrollOffset() <= atTopTolerance && base <= atTopTolerance {
			el.SetScrollOffset(0)
			c.Cancel()
			return false
		}
		c.ScrollTo(el, math.Max(base-step, 0))
		return true
	}
	return false
}

// sameScrollable compares two regions by identity without panicking on
// dynamic types that do not support ==
func sameScrollable(a, b Scrollable) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb || !ta.Comparable() {
		return false
	}
	return a == b
}

package navigation

import (
	"io"

	"github.com/sirupsen/logrus"
)

// DefaultScrollStep is the scroll-mode distance per arrow press
const DefaultScrollStep = 3

// KeyEvent is a key press delivered by an EventSource
type KeyEvent struct {
	Key       string
	prevented bool
}

// PreventDefault marks the key as handled so the host skips its own behaviour
func (e *KeyEvent) PreventDefault() { e.prevented = true }

// DefaultPrevented reports whether a listener claimed the key
func (e *KeyEvent) DefaultPrevented() bool { return e.prevented }

// ClickEvent is a primary-button click on Target
type ClickEvent struct {
	Target Target
}

// EventSource is a global input hub. Each Add call returns its removal func.
type EventSource interface {
	AddKeyListener(fn func(*KeyEvent)) (remove func())
	AddClickListener(fn func(*ClickEvent)) (remove func())
}

// Callbacks are the activation hooks the host supplies. Nil hooks are skipped.
type Callbacks struct {
	OnTabActivate    func(tab int)
	OnItemActivate   func(section, item int)
	OnFooterActivate func(section int)
	OnEscape         func()
}

// Props is the per-render input of the engine
type Props struct {
	TabCount   int
	Sections   []Section
	ContentKey string
	// ActiveTabIndex is the tab Escape returns to, nil keeps the focused tab
	ActiveTabIndex *int
	Enabled        bool
	// ScrollTarget enables scroll mode for Up/Down in the content zone. Pass a
	// pointer so successive renders compare as the same region.
	ScrollTarget Scrollable
	Callbacks
}

func (p Props) config() Config {
	return Config{TabCount: p.TabCount, Sections: p.Sections, ActiveTabIndex: p.ActiveTabIndex}
}

// Options are fixed for the lifetime of an engine
type Options struct {
	InitialZone   Zone
	InitialTab    int
	ScrollStep    float64
	ScrollEase    float64
	SnapThreshold float64
	Surface       Surface
	Scheduler     FrameScheduler
	Logger        logrus.FieldLogger
}

// Engine owns the navigation state of one mounted scope. Input listeners are
// registered once per enable and read the latest props on every event.
type Engine struct {
	source EventSource
	bridge *FocusBridge
	scroll *ScrollController
	step   float64
	log    logrus.FieldLogger

	state   State
	props   Props
	mounted bool

	removeKey   func()
	removeClick func()
}

// NewEngine creates an unmounted engine listening on source
func NewEngine(source EventSource, opts Options) *Engine {
	logger := opts.Logger
	if logger == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		logger = l
	}
	step := opts.ScrollStep
	if step <= 0 {
		step = DefaultScrollStep
	}
	scheduler := opts.Scheduler
	if scheduler == nil {
		scheduler = immediateScheduler{}
	}

	return &Engine{
		source: source,
		bridge: NewFocusBridge(opts.Surface),
		scroll: NewScrollController(scheduler,
			WithEase(opts.ScrollEase),
			WithSnapThreshold(opts.SnapThreshold)),
		step:  step,
		log:   logger.WithField("component", "navigation"),
		state: InitialState(opts.InitialZone, opts.InitialTab),
	}
}

// Mount attaches the engine with its first props
func (e *Engine) Mount(props Props) {
	if e.mounted {
		e.Render(props)
		return
	}
	e.mounted = true
	e.props = props
	if props.Enabled {
		e.listen()
		e.bridge.Apply(e.state)
	}
}

// Render swaps in the latest props. A new content key resets the content
// cursor and toggling Enabled adds or removes the listeners. A cursor left
// outside shrunken sections is clamped back in.
func (e *Engine) Render(props Props) {
	if !e.mounted {
		e.Mount(props)
		return
	}
	prev := e.props
	e.props = props

	reset := prev.ContentKey != props.ContentKey
	if reset {
		e.state.SectionIndex = 0
		e.state.ItemIndex = 0
		e.log.WithField("content", props.ContentKey).Debug("content changed, cursor reset")
	}

	moved := false
	if clamped := e.state.clamp(props.config()); clamped != e.state {
		e.log.WithFields(logrus.Fields{
			"from": e.state.String(),
			"to":   clamped.String(),
		}).Debug("sections shrank, cursor clamped")
		e.state = clamped
		moved = true
	}

	switch {
	case prev.Enabled && !props.Enabled:
		e.unlisten()
		e.scroll.Cancel()
	case !prev.Enabled && props.Enabled:
		e.listen()
		e.bridge.Apply(e.state)
	case props.Enabled && (reset || moved):
		e.sync()
	}

	if !sameScrollable(prev.ScrollTarget, props.ScrollTarget) {
		e.scroll.Cancel()
	}
}

// Unmount removes the listeners and stops any scroll animation
func (e *Engine) Unmount() {
	if !e.mounted {
		return
	}
	e.unlisten()
	e.scroll.Cancel()
	e.mounted = false
}

// State returns the current navigation state
func (e *Engine) State() State { return e.state }

// Focus returns the projection presentation code renders from
func (e *Engine) Focus() Focus { return e.state.Project() }

// Scroll exposes the scroll controller so the host can cancel it on manual scrolling
func (e *Engine) Scroll() *ScrollController { return e.scroll }

func (e *Engine) listen() {
	if e.removeKey != nil {
		return
	}
	e.removeKey = e.source.AddKeyListener(e.handleKey)
	e.removeClick = e.source.AddClickListener(e.handleClick)
}

func (e *Engine) unlisten() {
	if e.removeKey != nil {
		e.removeKey()
		e.removeKey = nil
	}
	if e.removeClick != nil {
		e.removeClick()
		e.removeClick = nil
	}
}

func (e *Engine) handleKey(ev *KeyEvent) {
	intent, ok := Classify(ev.Key)
	if !ok {
		return
	}
	ev.PreventDefault()
	if intent == IntentTab {
		return
	}

	if intent == IntentEnter {
		e.activate()
		return
	}

	if e.state.Zone == ZoneContent && e.props.ScrollTarget != nil &&
		(intent == IntentUp || intent == IntentDown) {
		if e.scroll.HandleKey(intent, e.props.ScrollTarget, e.step) {
			return
		}
	}

	cfg := e.props.config()
	current := e.state
	if intent == IntentEscape && e.props.OnEscape != nil {
		e.props.OnEscape()
	}
	e.commit(Resolve(current, intent, cfg), intent)
}

func (e *Engine) activate() {
	s := e.state
	cb := e.props.Callbacks
	if s.Zone == ZoneTabs {
		if cb.OnTabActivate != nil {
			cb.OnTabActivate(s.TabIndex)
		}
		return
	}
	if section, ok := e.props.config().section(s.SectionIndex); ok && section.IsFooter(s.ItemIndex) {
		if cb.OnFooterActivate != nil {
			cb.OnFooterActivate(s.SectionIndex)
		}
		return
	}
	if cb.OnItemActivate != nil {
		cb.OnItemActivate(s.SectionIndex, s.ItemIndex)
	}
}

func (e *Engine) handleClick(ev *ClickEvent) {
	next, ok := StateFromClick(ev.Target, e.state)
	if !ok {
		return
	}
	e.commit(next, IntentNone)
}

func (e *Engine) commit(next State, cause Intent) {
	if next == e.state {
		return
	}
	e.log.WithFields(logrus.Fields{
		"key":     cause.String(),
		"zone":    next.Zone.String(),
		"tab":     next.TabIndex,
		"section": next.SectionIndex,
		"item":    next.ItemIndex,
	}).Debug("navigation state changed")
	e.state = next
	e.sync()
}

func (e *Engine) sync() {
	if !e.mounted || !e.props.Enabled {
		return
	}
	if !e.bridge.Apply(e.state) {
		e.log.WithField("id", IDForState(e.state).String()).Warn("focus rejected, blurred active element")
	}
}

// immediateScheduler runs frames synchronously. Used when no scheduler is given.
type immediateScheduler struct{}

func (immediateScheduler) RequestFrame(fn func()) FrameID {
	fn()
	return 0
}

func (immediateScheduler) CancelFrame(FrameID) {}

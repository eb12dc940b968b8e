package input

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"moviegrid/internal/navigation"
)

// HitTester finds the innermost element under a screen cell
type HitTester interface {
	TargetAt(x, y int) navigation.Target
}

type keyListener struct {
	id int
	fn func(*navigation.KeyEvent)
}

type clickListener struct {
	id int
	fn func(*navigation.ClickEvent)
}

// Dispatcher is the program-wide input hub. It turns bubbletea messages into
// key and click events and delivers them to every registered listener.
type Dispatcher struct {
	keys   KeyMap
	hit    HitTester
	nextID int

	keyListeners   []keyListener
	clickListeners []clickListener
}

// NewDispatcher creates a dispatcher. hit may be nil until the first frame is rendered.
func NewDispatcher(keys KeyMap, hit HitTester) *Dispatcher {
	return &Dispatcher{keys: keys, hit: hit}
}

// SetHitTester replaces the hit tester
func (d *Dispatcher) SetHitTester(hit HitTester) {
	d.hit = hit
}

// AddKeyListener implements navigation.EventSource
func (d *Dispatcher) AddKeyListener(fn func(*navigation.KeyEvent)) func() {
	d.nextID++
	id := d.nextID
	d.keyListeners = append(d.keyListeners, keyListener{id: id, fn: fn})
	return func() {
		for i, l := range d.keyListeners {
			if l.id == id {
				d.keyListeners = append(d.keyListeners[:i:i], d.keyListeners[i+1:]...)
				return
			}
		}
	}
}

// AddClickListener implements navigation.EventSource
func (d *Dispatcher) AddClickListener(fn func(*navigation.ClickEvent)) func() {
	d.nextID++
	id := d.nextID
	d.clickListeners = append(d.clickListeners, clickListener{id: id, fn: fn})
	return func() {
		for i, l := range d.clickListeners {
			if l.id == id {
				d.clickListeners = append(d.clickListeners[:i:i], d.clickListeners[i+1:]...)
				return
			}
		}
	}
}

// ListenerCount reports the registered key and click listeners
func (d *Dispatcher) ListenerCount() (keys, clicks int) {
	return len(d.keyListeners), len(d.clickListeners)
}

// KeyName returns the navigation key name for msg, or its bubbletea name
func (d *Dispatcher) KeyName(msg tea.KeyMsg) string {
	for _, nb := range d.keys.navBindings() {
		if key.Matches(msg, nb.binding) {
			return nb.name
		}
	}
	return msg.String()
}

// DispatchKey delivers msg to the key listeners
func (d *Dispatcher) DispatchKey(msg tea.KeyMsg) *navigation.KeyEvent {
	ev := &navigation.KeyEvent{Key: d.KeyName(msg)}
	listeners := make([]keyListener, len(d.keyListeners))
	copy(listeners, d.keyListeners)
	for _, l := range listeners {
		l.fn(ev)
	}
	return ev
}

// DispatchMouse delivers left-button presses to the click listeners. Other
// mouse events return nil.
func (d *Dispatcher) DispatchMouse(msg tea.MouseMsg) *navigation.ClickEvent {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return nil
	}
	ev := &navigation.ClickEvent{}
	if d.hit != nil {
		ev.Target = d.hit.TargetAt(msg.X, msg.Y)
	}
	listeners := make([]clickListener, len(d.clickListeners))
	copy(listeners, d.clickListeners)
	for _, l := range listeners {
		l.fn(ev)
	}
	return ev
}

var _ navigation.EventSource = (*Dispatcher)(nil)

package ui

import (
	"sort"

	zone "github.com/lrstanley/bubblezone"

	"moviegrid/internal/navigation"
)

// rect is an inclusive cell rectangle
type rect struct {
	x0, y0, x1, y1 int
}

func (r rect) contains(x, y int) bool {
	return x >= r.x0 && x <= r.x1 && y >= r.y0 && y <= r.y1
}

func (r rect) area() int {
	return (r.x1 - r.x0 + 1) * (r.y1 - r.y0 + 1)
}

// zoneBounds looks up where a marked region was drawn in the last frame
type zoneBounds interface {
	Bounds(id string) (rect, bool)
}

// managerBounds reads bounds from a bubblezone manager
type managerBounds struct {
	manager *zone.Manager
}

func (b managerBounds) Bounds(id string) (rect, bool) {
	z := b.manager.Get(id)
	if z.IsZero() {
		return rect{}, false
	}
	return rect{x0: z.StartX, y0: z.StartY, x1: z.EndX, y1: z.EndY}, true
}

// recordingMarker marks regions with bubblezone and remembers which ids were
// marked, since zones cannot be listed
type recordingMarker struct {
	mark func(id, s string) string
	ids  []string
}

func (m *recordingMarker) Mark(id, s string) string {
	m.ids = append(m.ids, id)
	return m.mark(id, s)
}

// reset forgets the ids of the previous frame
func (m *recordingMarker) reset() {
	m.ids = m.ids[:0]
}

func (m *recordingMarker) marked() []string {
	return m.ids
}

// hitLayer is one surface scanned for zones. translate maps a screen cell
// into the layer's own coordinates and reports whether the layer shows that
// cell. A nil translate means the layer was scanned at screen coordinates.
type hitLayer struct {
	bounds    zoneBounds
	ids       func() []string
	translate func(x, y int) (int, int, bool)
}

func (l hitLayer) at(x, y int) (int, int, bool) {
	if l.translate == nil {
		return x, y, true
	}
	return l.translate(x, y)
}

// zoneHitTester resolves a screen cell to the chain of marked regions
// containing it, innermost first
type zoneHitTester struct {
	layers []hitLayer
}

func (h *zoneHitTester) TargetAt(x, y int) navigation.Target {
	type hit struct {
		id   string
		area int
	}
	var hits []hit
	seen := make(map[string]bool)
	for _, layer := range h.layers {
		lx, ly, ok := layer.at(x, y)
		if !ok {
			continue
		}
		for _, id := range layer.ids() {
			if seen[id] {
				continue
			}
			seen[id] = true
			r, ok := layer.bounds.Bounds(id)
			if !ok || !r.contains(lx, ly) {
				continue
			}
			hits = append(hits, hit{id: id, area: r.area()})
		}
	}
	if len(hits) == 0 {
		return nil
	}
	sort.SliceStable(hits, func(i, j int) bool { return hits[i].area < hits[j].area })

	var outer *zoneTarget
	for i := len(hits) - 1; i >= 0; i-- {
		outer = &zoneTarget{id: hits[i].id, parent: outer}
	}
	return outer
}

// zoneTarget is one region in a hit chain
type zoneTarget struct {
	id     string
	parent *zoneTarget
}

func (t *zoneTarget) NavID() (string, bool) { return t.id, t.id != "" }

func (t *zoneTarget) Parent() navigation.Target {
	if t.parent == nil {
		return nil
	}
	return t.parent
}

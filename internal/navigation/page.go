package navigation

// Page derives engine sections from per-section item slices and maps
// activations back to items.
type Page[T any] struct {
	Items     [][]T
	Columns   int
	HasFooter []bool
}

// Sections returns one Section per item slice
func (p Page[T]) Sections() []Section {
	sections := make([]Section, len(p.Items))
	for i, items := range p.Items {
		sections[i] = Section{
			ItemCount: len(items),
			Columns:   p.Columns,
			HasFooter: i < len(p.HasFooter) && p.HasFooter[i],
		}
	}
	return sections
}

// Item returns the item at (section, index)
func (p Page[T]) Item(section, index int) (T, bool) {
	var zero T
	if section < 0 || section >= len(p.Items) {
		return zero, false
	}
	items := p.Items[section]
	if index < 0 || index >= len(items) {
		return zero, false
	}
	return items[index], true
}

// ItemActivator adapts fn to Callbacks.OnItemActivate. Pairs that do not
// address an item are dropped.
func (p Page[T]) ItemActivator(fn func(T)) func(section, index int) {
	return func(section, index int) {
		if item, ok := p.Item(section, index); ok {
			fn(item)
		}
	}
}

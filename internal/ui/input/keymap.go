package input

import (
	"github.com/charmbracelet/bubbles/key"

	"moviegrid/internal/navigation"
)

// KeyMap binds terminal keys to the navigation key names
type KeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Left   key.Binding
	Right  key.Binding
	Enter  key.Binding
	Escape key.Binding
	Tab    key.Binding

	Search   key.Binding
	Favorite key.Binding
	Help     key.Binding
	Quit     key.Binding
}

// DefaultKeyMap returns the bindings, with h/j/k/l aliases when vim is set
func DefaultKeyMap(vim bool) KeyMap {
	up, down, left, right := []string{"up"}, []string{"down"}, []string{"left"}, []string{"right"}
	upHelp, downHelp, leftHelp, rightHelp := "↑", "↓", "←", "→"
	if vim {
		up, down, left, right = append(up, "k"), append(down, "j"), append(left, "h"), append(right, "l")
		upHelp, downHelp, leftHelp, rightHelp = "↑/k", "↓/j", "←/h", "→/l"
	}

	return KeyMap{
		Up:     key.NewBinding(key.WithKeys(up...), key.WithHelp(upHelp, "up")),
		Down:   key.NewBinding(key.WithKeys(down...), key.WithHelp(downHelp, "down")),
		Left:   key.NewBinding(key.WithKeys(left...), key.WithHelp(leftHelp, "left")),
		Right:  key.NewBinding(key.WithKeys(right...), key.WithHelp(rightHelp, "right")),
		Enter:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),
		Escape: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back to tabs")),
		Tab:    key.NewBinding(key.WithKeys("tab", "shift+tab"), key.WithHelp("tab", "disabled")),

		Search:   key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		Favorite: key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "favorite")),
		Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Left, k.Right, k.Enter, k.Escape, k.Search, k.Favorite, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Enter, k.Escape, k.Tab},
		{k.Search, k.Favorite, k.Help, k.Quit},
	}
}

// navBindings pairs each navigation key name with its binding, in match order
func (k KeyMap) navBindings() []struct {
	name    string
	binding key.Binding
} {
	return []struct {
		name    string
		binding key.Binding
	}{
		{navigation.KeyArrowUp, k.Up},
		{navigation.KeyArrowDown, k.Down},
		{navigation.KeyArrowLeft, k.Left},
		{navigation.KeyArrowRight, k.Right},
		{navigation.KeyEnter, k.Enter},
		{navigation.KeyEscape, k.Escape},
		{navigation.KeyTab, k.Tab},
	}
}

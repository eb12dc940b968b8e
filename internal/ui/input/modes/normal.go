package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"moviegrid/internal/ui/input/types"
)

// NormalMode handles application shortcuts. Arrow keys, Enter, Escape and
// Tab never reach it because the navigation engine claims them first.
type NormalMode struct{}

func NewNormalMode() *NormalMode {
	return &NormalMode{}
}

func (m *NormalMode) Name() string {
	return "normal"
}

func (m *NormalMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *NormalMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *NormalMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	if msg.Type == tea.KeyCtrlC {
		return []types.Action{types.QuitAction{Force: true}}, true
	}

	switch msg.String() {
	case "/":
		return []types.Action{types.ChangeModeAction{Mode: types.ModeSearch}}, true

	case "f":
		if movie, ok := ctx.FocusedMovie(); ok {
			return []types.Action{types.ToggleFavoriteAction{MovieID: movie.ID}}, true
		}
		return nil, false

	case "x":
		// clears a finished search and returns to the tabs
		if ctx.SearchQuery() != "" {
			return []types.Action{types.ClearSearchAction{}}, true
		}
		return nil, false

	case "?":
		return []types.Action{types.ToggleHelpAction{}}, true

	case "H":
		return []types.Action{types.ShowPagerHelpAction{}}, true

	case "q":
		return []types.Action{types.QuitAction{}}, true
	}

	return nil, false
}

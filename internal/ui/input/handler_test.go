package input

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"

	"moviegrid/internal/domain"
	"moviegrid/internal/ui/input/types"
)

type fakeContext struct {
	view  domain.ViewID
	movie *domain.Movie
	query string
}

func (c fakeContext) CurrentView() domain.ViewID { return c.view }
func (c fakeContext) SearchQuery() string        { return c.query }
func (c fakeContext) FocusedMovie() (domain.Movie, bool) {
	if c.movie == nil {
		return domain.Movie{}, false
	}
	return *c.movie, true
}

func TestNormalModeShortcuts(t *testing.T) {
	h := New()
	ctx := fakeContext{view: domain.ViewHome, movie: &domain.Movie{ID: 7}}

	actions, _ := h.HandleKey(runes("f"), ctx)
	assert.Equal(t, []types.Action{types.ToggleFavoriteAction{MovieID: 7}}, actions)

	actions, _ = h.HandleKey(runes("f"), fakeContext{})
	assert.Empty(t, actions, "nothing to favorite")

	actions, _ = h.HandleKey(runes("q"), ctx)
	assert.Equal(t, []types.Action{types.QuitAction{}}, actions)

	actions, _ = h.HandleKey(tea.KeyMsg{Type: tea.KeyCtrlC}, ctx)
	assert.Equal(t, []types.Action{types.QuitAction{Force: true}}, actions)

	actions, _ = h.HandleKey(runes("x"), ctx)
	assert.Empty(t, actions)
	actions, _ = h.HandleKey(runes("x"), fakeContext{query: "alpha"})
	assert.Equal(t, []types.Action{types.ClearSearchAction{}}, actions)
}

func TestSearchModeEditsAndSubmits(t *testing.T) {
	h := New()
	ctx := fakeContext{}

	_, cmd := h.HandleKey(runes("/"), ctx)
	assert.NotNil(t, cmd, "entering search starts the cursor blink")
	assert.Equal(t, types.ModeSearch, h.CurrentMode())
	assert.Equal(t, "Search: ", h.Prompt())

	h.HandleKey(runes("a"), ctx)
	actions, _ := h.HandleKey(runes("b"), ctx)
	assert.Equal(t, []types.Action{types.UpdateTextAction{Text: "ab"}}, actions)

	actions, _ = h.HandleKey(tea.KeyMsg{Type: tea.KeyEnter}, ctx)
	assert.Equal(t, []types.Action{types.SubmitTextAction{Text: "ab", Mode: types.ModeSearch}}, actions)
	assert.Equal(t, types.ModeNormal, h.CurrentMode())
	assert.Equal(t, "ab", h.TextInput().Value(), "the query survives leaving the input")
	assert.False(t, h.TextInput().Focused())
}

func TestSearchModeEscape(t *testing.T) {
	h := New()
	h.SetMode(types.ModeSearch, fakeContext{})

	actions, _ := h.HandleKey(tea.KeyMsg{Type: tea.KeyEsc}, fakeContext{})
	assert.Equal(t, []types.Action{types.CancelTextAction{}}, actions)
	assert.Equal(t, types.ModeNormal, h.CurrentMode())
}

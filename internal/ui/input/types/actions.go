package types

// Mode transition actions
type ChangeModeAction struct {
	Mode Mode
}

func (a ChangeModeAction) Type() string { return "change_mode" }

// Text input actions
type UpdateTextAction struct {
	Text string
}

func (a UpdateTextAction) Type() string { return "update_text" }

type SubmitTextAction struct {
	Text string
	Mode Mode // Which mode submitted the text
}

func (a SubmitTextAction) Type() string { return "submit_text" }

type CancelTextAction struct{}

func (a CancelTextAction) Type() string { return "cancel_text" }

// Movie actions
type ToggleFavoriteAction struct {
	MovieID int
}

func (a ToggleFavoriteAction) Type() string { return "toggle_favorite" }

type ClearSearchAction struct{}

func (a ClearSearchAction) Type() string { return "clear_search" }

// UI actions
type ToggleHelpAction struct{}

func (a ToggleHelpAction) Type() string { return "toggle_help" }

type ShowPagerHelpAction struct{}

func (a ShowPagerHelpAction) Type() string { return "show_pager_help" }

type QuitAction struct {
	Force bool
}

func (a QuitAction) Type() string { return "quit" }

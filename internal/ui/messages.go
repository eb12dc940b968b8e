package ui

import (
	"moviegrid/internal/catalog"
	"moviegrid/internal/domain"
	"moviegrid/internal/eventbus"
)

// EventMsg wraps a domain event for the UI
type EventMsg struct {
	Event eventbus.DomainEvent
}

// pageLoadedMsg carries one page of a movie list
type pageLoadedMsg struct {
	list  listKey
	query string
	page  catalog.Page
	err   error
}

// detailsLoadedMsg carries the details of a movie and its recommendations
type detailsLoadedMsg struct {
	id              int
	details         domain.MovieDetails
	recommendations []domain.Movie
	err             error
}

// searchDebounceMsg fires when the search input has been idle long enough
type searchDebounceMsg struct {
	seq   int
	query string
}

// tabFocusMsg fires when a tab kept focus for the auto-switch delay
type tabFocusMsg struct {
	seq int
	tab int
}

// clearStatusMsg clears the status line unless a newer status replaced it
type clearStatusMsg struct {
	seq int
}

// helpPagerMsg contains the result of a help pager command
type helpPagerMsg struct {
	err error
}

// pauseRenderingMsg signals to pause Bubble Tea rendering
type pauseRenderingMsg struct{}

// resumeRenderingMsg signals to resume Bubble Tea rendering
type resumeRenderingMsg struct{}

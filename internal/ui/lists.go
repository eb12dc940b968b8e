package ui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"moviegrid/internal/catalog"
	"moviegrid/internal/domain"
)

// catalogTimeout bounds every catalog request
const catalogTimeout = 5 * time.Second

// listKey identifies a paged list in load messages
type listKey string

const (
	listPopular listKey = "popular"
	listAiring  listKey = "airing_now"
	listSearch  listKey = "search"
)

// listState accumulates the pages of one movie list
type listState struct {
	movies     []domain.Movie
	page       int
	totalPages int
	// firstPage is the size of page 1, the home preview
	firstPage int
	loading   bool
	err       error
}

func (l *listState) loaded() bool {
	return l.page > 0
}

func (l *listState) hasMore() bool {
	return l.loaded() && l.page < l.totalPages
}

func (l *listState) preview() []domain.Movie {
	return l.movies[:l.firstPage]
}

// apply appends p, or replaces the list when p is the first page
func (l *listState) apply(p catalog.Page) {
	if p.Page <= 1 {
		l.movies = append([]domain.Movie(nil), p.Movies...)
		l.firstPage = len(p.Movies)
	} else {
		l.movies = append(l.movies, p.Movies...)
	}
	l.page = p.Page
	l.totalPages = p.TotalPages
	l.err = nil
}

// loadPage requests page of list. Search pages are tagged with the query so
// late results of an older query can be dropped.
func (m *Model) loadPage(key listKey, page int) tea.Cmd {
	l := m.lists[key]
	l.loading = true
	query := m.query
	cat := m.catalog
	m.startSpinner()

	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), catalogTimeout)
		defer cancel()

		var (
			p   catalog.Page
			err error
		)
		switch key {
		case listPopular:
			p, err = cat.List(ctx, catalog.ListPopular, page)
		case listAiring:
			p, err = cat.List(ctx, catalog.ListNowPlaying, page)
		case listSearch:
			p, err = cat.Search(ctx, query, page)
		}
		return pageLoadedMsg{list: key, query: query, page: p, err: err}
	}
}

// loadDetails requests the details of id and the movies it recommends
func (m *Model) loadDetails(id int) tea.Cmd {
	cat := m.catalog
	m.startSpinner()

	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), catalogTimeout)
		defer cancel()

		details, err := cat.Details(ctx, id)
		if err != nil {
			return detailsLoadedMsg{id: id, err: err}
		}
		recs, err := cat.Movies(ctx, details.Recommendations)
		return detailsLoadedMsg{id: id, details: details, recommendations: recs, err: err}
	}
}

// anyLoading reports whether a catalog request is outstanding
func (m *Model) anyLoading() bool {
	for _, l := range m.lists {
		if l.loading {
			return true
		}
	}
	return m.details != nil && !m.details.loaded && m.details.err == nil
}

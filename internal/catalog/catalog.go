// Package catalog serves movie lists, search results and details.
package catalog

import (
	"context"
	"errors"

	"moviegrid/internal/domain"
)

var (
	// ErrNotFound is returned for unknown movie ids
	ErrNotFound = errors.New("movie not found")
	// ErrQueryTooShort is returned for searches under the minimum length
	ErrQueryTooShort = errors.New("search query too short")
	// ErrUnknownList is returned for list kinds the catalog does not carry
	ErrUnknownList = errors.New("unknown movie list")
	// ErrInvalidPage is returned for page numbers below 1
	ErrInvalidPage = errors.New("invalid page number")
)

// ListKind names a curated list
type ListKind string

const (
	ListPopular    ListKind = "popular"
	ListNowPlaying ListKind = "now_playing"
)

// Page is one page of results. Pages are numbered from 1.
type Page struct {
	Movies     []domain.Movie
	Page       int
	TotalPages int
}

// HasMore reports whether a later page exists
func (p Page) HasMore() bool {
	return p.Page < p.TotalPages
}

// Catalog is the movie data source the UI browses
type Catalog interface {
	List(ctx context.Context, kind ListKind, page int) (Page, error)
	Search(ctx context.Context, query string, page int) (Page, error)
	Details(ctx context.Context, id int) (domain.MovieDetails, error)
	Movies(ctx context.Context, ids []int) ([]domain.Movie, error)
}

package catalog

import (
	"context"
	_ "embed"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"moviegrid/internal/domain"
)

//go:embed data/catalog.yaml
var builtin []byte

type fixture struct {
	Movies []domain.MovieDetails `yaml:"movies"`
	Lists  map[ListKind][]int    `yaml:"lists"`
}

// Memory is a Catalog held entirely in memory
type Memory struct {
	pageSize int
	minQuery int
	order    []int
	byID     map[int]domain.MovieDetails
	lists    map[ListKind][]int
}

// Option configures a Memory catalog
type Option func(*Memory)

// WithPageSize sets the number of movies per page
func WithPageSize(n int) Option {
	return func(m *Memory) {
		if n > 0 {
			m.pageSize = n
		}
	}
}

// WithMinQueryLength sets the shortest accepted search query
func WithMinQueryLength(n int) Option {
	return func(m *Memory) {
		if n > 0 {
			m.minQuery = n
		}
	}
}

// Builtin returns the catalog compiled into the binary
func Builtin(opts ...Option) (*Memory, error) {
	return Parse(builtin, opts...)
}

// Load reads a YAML catalog from path
func Load(path string, opts ...Option) (*Memory, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}
	return Parse(data, opts...)
}

// Parse builds a catalog from YAML. List entries must reference known movies.
func Parse(data []byte, opts ...Option) (*Memory, error) {
	var f fixture
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}

	m := &Memory{
		pageSize: 8,
		minQuery: 2,
		byID:     make(map[int]domain.MovieDetails, len(f.Movies)),
		lists:    make(map[ListKind][]int, len(f.Lists)),
	}
	for _, opt := range opts {
		opt(m)
	}

	for _, movie := range f.Movies {
		if _, dup := m.byID[movie.ID]; dup {
			return nil, fmt.Errorf("failed to parse catalog: duplicate movie id %d", movie.ID)
		}
		m.byID[movie.ID] = movie
		m.order = append(m.order, movie.ID)
	}
	for kind, ids := range f.Lists {
		for _, id := range ids {
			if _, ok := m.byID[id]; !ok {
				return nil, fmt.Errorf("failed to parse catalog: list %s references %d: %w", kind, id, ErrNotFound)
			}
		}
		m.lists[kind] = ids
	}
	return m, nil
}

// List returns one page of a curated list
func (m *Memory) List(ctx context.Context, kind ListKind, page int) (Page, error) {
	if err := ctx.Err(); err != nil {
		return Page{}, err
	}
	ids, ok := m.lists[kind]
	if !ok {
		return Page{}, fmt.Errorf("%w: %s", ErrUnknownList, kind)
	}
	return m.paginate(ids, page)
}

// Search matches the query against titles, genres and directors, case-insensitively
func (m *Memory) Search(ctx context.Context, query string, page int) (Page, error) {
	if err := ctx.Err(); err != nil {
		return Page{}, err
	}
	q := strings.ToLower(strings.TrimSpace(query))
	if len([]rune(q)) < m.minQuery {
		return Page{}, ErrQueryTooShort
	}

	var ids []int
	for _, id := range m.order {
		if matches(m.byID[id], q) {
			ids = append(ids, id)
		}
	}
	return m.paginate(ids, page)
}

func matches(movie domain.MovieDetails, q string) bool {
	if strings.Contains(strings.ToLower(movie.Title), q) ||
		strings.Contains(strings.ToLower(movie.Director), q) {
		return true
	}
	for _, g := range movie.Genres {
		if strings.ToLower(g) == q {
			return true
		}
	}
	return false
}

// Details returns the full record of a movie
func (m *Memory) Details(ctx context.Context, id int) (domain.MovieDetails, error) {
	if err := ctx.Err(); err != nil {
		return domain.MovieDetails{}, err
	}
	movie, ok := m.byID[id]
	if !ok {
		return domain.MovieDetails{}, fmt.Errorf("%w: %d", ErrNotFound, id)
	}
	return movie, nil
}

// Movies resolves ids to summaries, skipping unknown ids
func (m *Memory) Movies(ctx context.Context, ids []int) ([]domain.Movie, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	movies := make([]domain.Movie, 0, len(ids))
	for _, id := range ids {
		if movie, ok := m.byID[id]; ok {
			movies = append(movies, movie.Movie)
		}
	}
	return movies, nil
}

func (m *Memory) paginate(ids []int, page int) (Page, error) {
	if page < 1 {
		return Page{}, fmt.Errorf("%w: %d", ErrInvalidPage, page)
	}
	total := (len(ids) + m.pageSize - 1) / m.pageSize
	start := (page - 1) * m.pageSize
	end := min(start+m.pageSize, len(ids))

	p := Page{Page: page, TotalPages: total}
	for i := start; i < end; i++ {
		p.Movies = append(p.Movies, m.byID[ids[i]].Movie)
	}
	return p, nil
}

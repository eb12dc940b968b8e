// Package favorites persists the user's favorite movies.
package favorites

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/pelletier/go-toml/v2"

	"moviegrid/internal/domain"
	"moviegrid/internal/eventbus"
)

type document struct {
	Favorites []domain.Movie `toml:"favorites"`
}

// Store keeps favorites in insertion order and writes them to a TOML file
// on every change.
type Store struct {
	mu    sync.RWMutex
	path  string
	bus   eventbus.EventBus
	items []domain.Movie
}

// Open loads the store at path. A missing file is an empty store.
func Open(path string, bus eventbus.EventBus) (*Store, error) {
	s := &Store{path: path, bus: bus}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read favorites: %w", err)
	}

	var doc document
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse favorites: %w", err)
	}
	s.items = doc.Favorites
	return s, nil
}

// Toggle adds or removes movie and reports whether it is now a favorite.
// When the file cannot be written the list is left unchanged.
func (s *Store) Toggle(movie domain.Movie) (bool, error) {
	s.mu.Lock()
	prev := s.items
	idx := s.indexOf(movie.ID)
	if idx >= 0 {
		s.items = append(s.items[:idx:idx], s.items[idx+1:]...)
	} else {
		s.items = append(s.items, movie)
	}
	favorite := idx < 0
	err := s.saveLocked()
	if err != nil {
		s.items = prev
	}
	s.mu.Unlock()

	if err != nil {
		return !favorite, err
	}
	if s.bus != nil {
		s.bus.Publish(eventbus.FavoriteToggledEvent{Movie: movie, Favorite: favorite})
	}
	return favorite, nil
}

// IsFavorite reports whether id is stored
func (s *Store) IsFavorite(id int) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.indexOf(id) >= 0
}

// List returns a copy of the favorites in the order they were added
func (s *Store) List() []domain.Movie {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Movie, len(s.items))
	copy(out, s.items)
	return out
}

func (s *Store) indexOf(id int) int {
	for i, m := range s.items {
		if m.ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) saveLocked() error {
	if s.path == "" {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("failed to create favorites directory: %w", err)
	}
	data, err := toml.Marshal(document{Favorites: s.items})
	if err != nil {
		return fmt.Errorf("failed to marshal favorites: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write favorites: %w", err)
	}
	return nil
}

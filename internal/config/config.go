package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"moviegrid/internal/eventbus"
	"moviegrid/internal/navigation"
)

const appDir = "moviegrid"

// Config represents the application configuration
type Config struct {
	Version    int              `toml:"version" jsonschema:"default=1"`
	Catalog    CatalogConfig    `toml:"catalog"`
	Favorites  FavoritesConfig  `toml:"favorites"`
	Navigation NavigationConfig `toml:"navigation"`
	Grid       GridConfig       `toml:"grid"`
	Search     SearchConfig     `toml:"search"`
	Log        LogConfig        `toml:"log"`
	UI         UIConfig         `toml:"ui"`
}

// CatalogConfig selects the movie catalog
type CatalogConfig struct {
	// Path to a YAML catalog. Empty uses the built-in catalog.
	Path     string `toml:"path" jsonschema:"description=YAML catalog file; empty uses the built-in catalog"`
	PageSize int    `toml:"page_size" jsonschema:"minimum=1,default=8"`
}

// FavoritesConfig locates the favorites store
type FavoritesConfig struct {
	Path string `toml:"path"`
}

// NavigationConfig tunes keyboard navigation and scroll animation
type NavigationConfig struct {
	ScrollStep      float64 `toml:"scroll_step" jsonschema:"default=3"`
	ScrollEase      float64 `toml:"scroll_ease" jsonschema:"minimum=0,maximum=1,default=0.12"`
	SnapThreshold   float64 `toml:"snap_threshold" jsonschema:"default=0.5"`
	FrameRate       int     `toml:"frame_rate" jsonschema:"minimum=1,default=60"`
	TabFocusDelayMs int     `toml:"tab_focus_delay_ms" jsonschema:"default=2000"`
	VimKeys         bool    `toml:"vim_keys" jsonschema:"default=true"`
}

// GridConfig maps terminal widths to column counts
type GridConfig struct {
	Breakpoints []navigation.Breakpoint `toml:"breakpoints"`
}

// SearchConfig tunes the search input
type SearchConfig struct {
	MinQueryLength int `toml:"min_query_length" jsonschema:"minimum=1,default=2"`
	DebounceMs     int `toml:"debounce_ms" jsonschema:"default=500"`
}

// LogConfig selects the log destination
type LogConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level" jsonschema:"enum=trace,enum=debug,enum=info,enum=warn,enum=error"`
}

// UIConfig holds presentation settings
type UIConfig struct {
	Theme string `toml:"theme" jsonschema:"enum=dark,enum=light"`
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
	Path() string
}

// configService is the concrete implementation
type configService struct {
	bus      eventbus.EventBus
	filePath string
}

// DefaultDir returns the moviegrid directory under the user config dir
func DefaultDir() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		home, err := os.UserHomeDir()
		if err != nil {
			home = "."
		}
		configDir = filepath.Join(home, ".config")
	}
	return filepath.Join(configDir, appDir)
}

// NewConfigService creates a config service for path. An empty path uses
// config.toml in DefaultDir.
func NewConfigService(path string) ConfigService {
	if path == "" {
		path = filepath.Join(DefaultDir(), "config.toml")
	}
	return &configService{filePath: path}
}

// NewConfigServiceWithBus creates a config service with event bus support
func NewConfigServiceWithBus(path string, bus eventbus.EventBus) ConfigService {
	cs := NewConfigService(path).(*configService)
	cs.bus = bus
	return cs
}

func (cs *configService) Path() string { return cs.filePath }

// Load loads the configuration file, falling back to defaults when it is missing
func (cs *configService) Load() (*Config, error) {
	cfg, err := cs.LoadFromPath(cs.filePath)
	if errors.Is(err, os.ErrNotExist) {
		cfg, err = DefaultConfig(), nil
	}
	if err != nil {
		return nil, err
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigLoadedEvent{Path: cs.filePath})
	}
	return cfg, nil
}

// Save writes the configuration file
func (cs *configService) Save(config *Config) error {
	if err := cs.SaveToPath(config, cs.filePath); err != nil {
		return err
	}
	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigSavedEvent{Path: cs.filePath})
	}
	return nil
}

// LoadFromPath loads configuration from a specific path. Keys missing from
// the file keep their default values.
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("config file not found: %s: %w", path, err)
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	// breakpoints from the file replace the defaults instead of merging
	cfg.Grid.Breakpoints = nil
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	cfg.Validate()
	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	dir := DefaultDir()
	breakpoints := make([]navigation.Breakpoint, len(navigation.DefaultBreakpoints))
	copy(breakpoints, navigation.DefaultBreakpoints)

	return &Config{
		Version: 1,
		Catalog: CatalogConfig{PageSize: 8},
		Favorites: FavoritesConfig{
			Path: filepath.Join(dir, "favorites.toml"),
		},
		Navigation: NavigationConfig{
			ScrollStep:      navigation.DefaultScrollStep,
			ScrollEase:      navigation.DefaultScrollEase,
			SnapThreshold:   navigation.DefaultSnapThreshold,
			FrameRate:       60,
			TabFocusDelayMs: 2000,
			VimKeys:         true,
		},
		Grid:   GridConfig{Breakpoints: breakpoints},
		Search: SearchConfig{MinQueryLength: 2, DebounceMs: 500},
		Log: LogConfig{
			File:  filepath.Join(dir, "moviegrid.log"),
			Level: "info",
		},
		UI: UIConfig{Theme: "dark"},
	}
}

// Validate replaces out-of-range values with their defaults
func (c *Config) Validate() {
	def := DefaultConfig()
	if c.Catalog.PageSize < 1 {
		c.Catalog.PageSize = def.Catalog.PageSize
	}
	if c.Navigation.ScrollStep <= 0 {
		c.Navigation.ScrollStep = def.Navigation.ScrollStep
	}
	if c.Navigation.ScrollEase <= 0 || c.Navigation.ScrollEase > 1 {
		c.Navigation.ScrollEase = def.Navigation.ScrollEase
	}
	if c.Navigation.SnapThreshold <= 0 {
		c.Navigation.SnapThreshold = def.Navigation.SnapThreshold
	}
	if c.Navigation.FrameRate < 1 {
		c.Navigation.FrameRate = def.Navigation.FrameRate
	}
	if c.Navigation.TabFocusDelayMs < 0 {
		c.Navigation.TabFocusDelayMs = def.Navigation.TabFocusDelayMs
	}
	if len(c.Grid.Breakpoints) == 0 {
		c.Grid.Breakpoints = def.Grid.Breakpoints
	}
	if c.Search.MinQueryLength < 1 {
		c.Search.MinQueryLength = def.Search.MinQueryLength
	}
	if c.Search.DebounceMs < 0 {
		c.Search.DebounceMs = def.Search.DebounceMs
	}
	if c.UI.Theme != "light" {
		c.UI.Theme = "dark"
	}
}

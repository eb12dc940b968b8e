package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"moviegrid/internal/eventbus"
	"moviegrid/internal/navigation"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	svc := NewConfigService(filepath.Join(t.TempDir(), "config.toml"))

	cfg, err := svc.Load()
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
	assert.Equal(t, 0.12, cfg.Navigation.ScrollEase)
	assert.Equal(t, 2000, cfg.Navigation.TabFocusDelayMs)
}

func TestLoadMergesFileOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	data := `
[navigation]
scroll_step = 5
scroll_ease = 4.0

[[grid.breakpoints]]
min_width = 0
columns = 1

[search]
min_query_length = 3
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cfg, err := NewConfigService(path).Load()
	require.NoError(t, err)
	assert.Equal(t, 5.0, cfg.Navigation.ScrollStep)
	assert.Equal(t, navigation.DefaultScrollEase, cfg.Navigation.ScrollEase, "out of range values are reset")
	assert.Equal(t, []navigation.Breakpoint{{MinWidth: 0, Columns: 1}}, cfg.Grid.Breakpoints)
	assert.Equal(t, 3, cfg.Search.MinQueryLength)
	assert.Equal(t, 500, cfg.Search.DebounceMs)
	assert.Equal(t, 60, cfg.Navigation.FrameRate)
}

func TestLoadRejectsMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[navigation\nscroll_step ="), 0o644))

	_, err := NewConfigService(path).Load()
	assert.ErrorContains(t, err, "failed to parse config")
}

func TestLoadFromPathMissing(t *testing.T) {
	_, err := NewConfigService("").LoadFromPath(filepath.Join(t.TempDir(), "nope.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	bus := eventbus.New(nil)
	defer bus.Close()

	saved := make(chan eventbus.DomainEvent, 1)
	bus.Subscribe(eventbus.EventConfigSaved, func(e eventbus.DomainEvent) { saved <- e })

	svc := NewConfigServiceWithBus(path, bus)
	cfg := DefaultConfig()
	cfg.UI.Theme = "light"
	cfg.Navigation.VimKeys = false
	require.NoError(t, svc.Save(cfg))

	loaded, err := svc.Load()
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)

	select {
	case e := <-saved:
		assert.Equal(t, path, e.(eventbus.ConfigSavedEvent).Path)
	case <-time.After(time.Second):
		t.Fatal("ConfigSaved not published")
	}
}

func TestSchema(t *testing.T) {
	data, err := Schema()
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(data, &doc))
	props, ok := doc["properties"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, props, "navigation")
	assert.Contains(t, props, "grid")
}

package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"moviegrid/internal/ui/input"
)

func TestLoadConfigAppliesFlagOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[log]\nlevel = \"warn\"\nfile = \"/tmp/a.log\"\n"), 0o644))

	cfg, svc, err := loadConfig(&options{configPath: path, logLevel: "debug", catalogPath: "movies.yaml"})
	require.NoError(t, err)

	assert.Equal(t, path, svc.Path())
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "/tmp/a.log", cfg.Log.File)
	assert.Equal(t, "movies.yaml", cfg.Catalog.Path)
}

func TestOpenCatalogDefaultsToBuiltin(t *testing.T) {
	cfg, _, err := loadConfig(&options{configPath: filepath.Join(t.TempDir(), "missing.toml")})
	require.NoError(t, err)

	cat, err := openCatalog(cfg)
	require.NoError(t, err)
	assert.NotNil(t, cat)

	cfg.Catalog.Path = filepath.Join(t.TempDir(), "missing.yaml")
	_, err = openCatalog(cfg)
	assert.Error(t, err)
}

func TestSchemaCommand(t *testing.T) {
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"schema"})
	require.NoError(t, cmd.Execute())

	var schema map[string]any
	require.NoError(t, json.Unmarshal(out.Bytes(), &schema))
	props, ok := schema["properties"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, props, "navigation")
}

func TestKeysTable(t *testing.T) {
	out := keysTable(input.DefaultKeyMap(true))

	assert.Contains(t, out, "up, k")
	assert.Contains(t, out, "back to tabs")
	assert.Contains(t, out, "ACTION")

	out = keysTable(input.DefaultKeyMap(false))
	assert.NotContains(t, out, "up, k")
}

func TestRunFlags(t *testing.T) {
	opts := &options{}
	flags := pflag.NewFlagSet("run", pflag.ContinueOnError)
	bindRunFlags(flags, opts)
	require.NoError(t, flags.Parse([]string{"--no-mouse", "--catalog", "movies.yaml"}))
	assert.True(t, opts.noMouse)
	assert.Equal(t, "movies.yaml", opts.catalogPath)
}

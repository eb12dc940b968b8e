//go:build e2e && unix

package main

import (
	"os/exec"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHelpCommand(t *testing.T) {
	t.Parallel()

	out, err := exec.Command(binPath, "--help").CombinedOutput()
	require.NoError(t, err, "Help command should run without error")

	output := string(out)
	assert.Contains(t, output, "Usage")
	assert.Contains(t, output, "--catalog")
	assert.Contains(t, output, "--no-mouse")
	assert.Contains(t, output, "schema")
	assert.Contains(t, output, "keys")
}

func TestKeysCommand(t *testing.T) {
	t.Parallel()

	cmd := exec.Command(binPath, "keys", "--config", t.TempDir()+"/none.toml")
	out, err := cmd.CombinedOutput()
	require.NoError(t, err)

	output := string(out)
	assert.Contains(t, output, "ACTION")
	assert.Contains(t, output, "down, j")
	assert.Contains(t, output, "back to tabs")
}

func TestSchemaCommand(t *testing.T) {
	t.Parallel()

	out, err := exec.Command(binPath, "schema").Output()
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(strings.TrimSpace(string(out)), "{"))
	assert.Contains(t, string(out), "tab_focus_delay_ms")
}

func TestRefusesWithoutTerminal(t *testing.T) {
	t.Parallel()

	out, err := exec.Command(binPath).CombinedOutput()
	require.Error(t, err)
	assert.Contains(t, string(out), "interactive terminal")
}

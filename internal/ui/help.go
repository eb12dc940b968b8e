package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/noborus/ov/oviewer"

	"moviegrid/internal/ui/input"
)

// HelpRenderer handles help content rendering
type HelpRenderer struct {
	title   lipgloss.Style
	section lipgloss.Style
	key     lipgloss.Style
	desc    lipgloss.Style
	note    lipgloss.Style
}

// NewHelpRenderer creates a new help renderer
func NewHelpRenderer() *HelpRenderer {
	return &HelpRenderer{
		title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")).
			MarginBottom(1),
		section: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39")).
			MarginTop(1),
		key:  lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
		desc: lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		note: lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("241")),
	}
}

type helpSection struct {
	title    string
	bindings []key.Binding
	notes    []string
}

// RenderHelpContent renders the full help for the pager
func (r *HelpRenderer) RenderHelpContent(keys input.KeyMap) string {
	sections := []helpSection{
		{
			title:    "Navigation",
			bindings: []key.Binding{keys.Up, keys.Down, keys.Left, keys.Right},
			notes: []string{
				"Focus moves between the tab bar and the movie grids.",
				"On a details page up/down scroll the page.",
			},
		},
		{
			title:    "Activation",
			bindings: []key.Binding{keys.Enter, keys.Escape, keys.Tab},
			notes: []string{
				"Enter on the shown tab goes back to Home.",
				"A tab that keeps focus for a moment opens on its own.",
			},
		},
		{
			title:    "Movies",
			bindings: []key.Binding{keys.Search, keys.Favorite},
			notes:    []string{"x clears the current search."},
		},
		{
			title:    "Other",
			bindings: []key.Binding{keys.Help, keys.Quit},
			notes:    []string{"H opens this help in a pager."},
		},
	}

	var help strings.Builder
	help.WriteString(r.title.Render("moviegrid Help"))
	help.WriteString("\n")

	for _, s := range sections {
		help.WriteString(r.section.Render(s.title))
		help.WriteString("\n")
		for _, b := range s.bindings {
			h := b.Help()
			help.WriteString("  " + r.key.Width(12).Render(h.Key) + r.desc.Render(h.Desc) + "\n")
		}
		for _, n := range s.notes {
			help.WriteString(r.note.Render("  " + n))
			help.WriteString("\n")
		}
	}
	return strings.TrimRight(help.String(), "\n")
}

// HelpOps handles help operations
type HelpOps struct {
	program *tea.Program // reference to Bubble Tea program for terminal management
}

// NewHelpOps creates a new help operations instance
func NewHelpOps(program *tea.Program) *HelpOps {
	return &HelpOps{
		program: program,
	}
}

// ShowHelpInPager shows help content using ov pager
func (h *HelpOps) ShowHelpInPager(helpContent string) error {
	if h.program == nil {
		return fmt.Errorf("program not set")
	}

	if err := h.program.ReleaseTerminal(); err != nil {
		return err
	}

	defer func() {
		// Small delay to ensure ov has fully exited before restoring terminal
		time.Sleep(100 * time.Millisecond)
		_ = h.program.RestoreTerminal()
	}()

	root, err := oviewer.NewRoot(strings.NewReader(helpContent))
	if err != nil {
		return err
	}

	// Configure ov to not write on exit (to avoid messing with our screen)
	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)

	return root.Run()
}

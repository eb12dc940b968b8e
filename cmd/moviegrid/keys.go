package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"moviegrid/internal/ui/input"
)

var (
	keysHeaderStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255")).
			Bold(true).
			Padding(0, 1)
	keysCellStyle = lipgloss.NewStyle().Padding(0, 1)
	keysNameStyle = keysCellStyle.Foreground(lipgloss.Color("39"))
)

func newKeysCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "keys",
		Short: "Print the key bindings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := loadConfig(opts)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), keysTable(input.DefaultKeyMap(cfg.Navigation.VimKeys)))
			return nil
		},
	}
}

// keysTable renders one row per binding, grouped the way the help bar groups them
func keysTable(keys input.KeyMap) string {
	groups := []string{"Navigation", "Activation", "Movies"}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("240"))).
		Headers("GROUP", "KEYS", "ACTION").
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return keysHeaderStyle
			case col == 1:
				return keysNameStyle
			}
			return keysCellStyle
		})

	for i, bindings := range keys.FullHelp() {
		for _, b := range bindings {
			t.Row(groups[i], strings.Join(b.Keys(), ", "), describe(b))
		}
	}
	return t.Render()
}

func describe(b key.Binding) string {
	if !b.Enabled() {
		return "(disabled)"
	}
	return b.Help().Desc
}

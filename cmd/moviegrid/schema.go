package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"moviegrid/internal/config"
)

func newSchemaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Print the JSON schema of config.toml",
		Long: `Print the JSON schema of the configuration file.

Editors that understand JSON schema for TOML (taplo, Even Better TOML) can use
it to complete and validate config.toml.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := config.Schema()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return nil
		},
	}
}

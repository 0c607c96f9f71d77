package main

import "github.com/spf13/cobra"

func newTerrainsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "terrains",
		Short: "List the terrain table",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			renderTerrains(cmd.OutOrStdout())
		},
	}
}

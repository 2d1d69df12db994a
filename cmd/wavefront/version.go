package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func newVersionCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the wavefront version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			name := color.New(color.FgYellow, color.Bold)
			if a.render.Color {
				name.EnableColor()
			} else {
				name.DisableColor()
			}
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", name.Sprint("wavefront"), Version)
			return err
		},
	}
}

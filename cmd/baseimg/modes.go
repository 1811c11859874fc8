package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/srlehn/baseimg/resize"
	"github.com/srlehn/baseimg/surface"
)

func init() {
	rootCmd.AddCommand(modesCmd)
	rootCmd.AddCommand(resizersCmd)
}

var modesCmd = &cobra.Command{
	Use:   `modes`,
	Short: `list drawing modes`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		run(func(*slog.Logger) error {
			for _, m := range surface.Modes() {
				fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\n", int(m), m)
			}
			return nil
		})
	},
}

var resizersCmd = &cobra.Command{
	Use:   `resizers`,
	Short: `list smooth scaling backends`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		run(func(*slog.Logger) error {
			for _, name := range resize.Names() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		})
	},
}

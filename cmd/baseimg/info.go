package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"code.cloudfoundry.org/bytefmt"
	"github.com/spf13/cobra"

	"github.com/srlehn/baseimg/internal/errors"
)

func init() { rootCmd.AddCommand(infoCmd) }

var infoCmd = &cobra.Command{
	Use:   `info <image>...`,
	Short: `print image properties`,
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		run(infoFunc(cmd.OutOrStdout(), args))
	},
}

func infoFunc(w io.Writer, args []string) func(*slog.Logger) error {
	return func(logger *slog.Logger) error {
		for _, arg := range args {
			stat, err := os.Stat(arg)
			if err != nil {
				return errors.New(err)
			}
			img, err := load(arg, logger)
			if err != nil {
				return err
			}
			fmt.Fprintf(w, "path:      %s\n", img.Path())
			fmt.Fprintf(w, "name:      %s\n", img.FileName())
			fmt.Fprintf(w, "extension: %s\n", img.Extension())
			fmt.Fprintf(w, "size:      %dx%d\n", img.Width(), img.Height())
			fmt.Fprintf(w, "bit size:  %d\n", img.BitSize())
			fmt.Fprintf(w, "file size: %s\n", bytefmt.ByteSize(uint64(stat.Size())))
			if len(args) > 1 {
				fmt.Fprintln(w)
			}
		}
		return nil
	}
}

package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/srlehn/baseimg"
	"github.com/srlehn/baseimg/internal/errors"
	"github.com/srlehn/baseimg/internal/logx"
	"github.com/srlehn/baseimg/surface"
)

var rootCmd = &cobra.Command{
	Use:              filepath.Base(os.Args[0]),
	Short:            "baseimg transform and draw images",
	Long:             "baseimg loads images, transforms them and draws them onto canvases",
	SilenceUsage:     true,
	TraverseChildren: true,
	Run: func(cmd *cobra.Command, args []string) {
		_ = cmd.Help()
		os.Exit(1)
	},
}

func init() {
	cobra.EnablePrefixMatching = true
	rootCmd.PersistentFlags().BoolVarP(&debugFlag, `debug`, `d`, false, `debug errors`)
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, `verbose`, `v`, false, `log debug messages`)
	rootCmd.PersistentFlags().StringVarP(&logFileFlag, `log-file`, `l`, ``, `log file`)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var (
	debugFlag   bool
	verboseFlag bool
	logFileFlag string
)

// run executes fn with a logger configured from the global flags.
func run(fn func(logger *slog.Logger) error) {
	var err error
	var exitCode int
	defer func() { os.Exit(exitCode) }()
	if fn == nil {
		err = errors.NilParam()
	}
	logger, closeLog, errLog := newLogger()
	if errLog != nil {
		err = errLog
	}
	if err == nil {
		err = fn(logger)
		logx.IsErr(err, logx.Prov(logger), slog.LevelError)
		if errClose := closeLog(); err == nil && errClose != nil {
			err = errors.New(errClose)
		}
	}
	if err != nil {
		exitCode = 1
		if stackFramer, ok := err.(interface{ ErrorStack() string }); debugFlag && ok {
			fmt.Fprintln(os.Stderr, "\n"+stackFramer.ErrorStack())
		} else {
			fmt.Fprintln(os.Stderr, err.Error())
		}
	}
}

func newLogger() (_ *slog.Logger, closeFn func() error, _ error) {
	var w io.Writer = os.Stderr
	closeFn = func() error { return nil }
	if len(logFileFlag) > 0 {
		f, err := os.OpenFile(logFileFlag, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o600)
		if err != nil {
			return nil, closeFn, errors.New(err)
		}
		w = f
		closeFn = f.Close
	}
	lvl := slog.LevelWarn
	if verboseFlag {
		lvl = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl})), closeFn, nil
}

// load opens an image with the library defaults and the command's logger.
func load(imgFile string, logger *slog.Logger, opts ...surface.Option) (*surface.Image, error) {
	return baseimg.Load(imgFile, append([]surface.Option{surface.SetLogger(logger)}, opts...)...)
}

package logx

import (
	"context"
	"log/slog"
	"runtime"
	"time"

	"github.com/srlehn/baseimg/internal/errors"
)

type LoggerProvider interface{ Logger() *slog.Logger }

var _ LoggerProvider = (*loggerProvider)(nil)

type loggerProvider struct{ logger *slog.Logger }

func (p *loggerProvider) Logger() *slog.Logger { return p.logger }

func Prov(logger *slog.Logger) LoggerProvider { return &loggerProvider{logger: logger} }

// Log records msg with the caller skip frames up the stack as source.
func Log(msg string, logger *slog.Logger, lvl slog.Level, skip int, args ...any) {
	if logger == nil || !logger.Enabled(context.Background(), lvl) {
		return
	}
	var pcs [1]uintptr
	runtime.Callers(skip, pcs[:])
	r := slog.NewRecord(time.Now(), lvl, msg, pcs[0])
	r.Add(args...)
	_ = logger.Handler().Handle(context.Background(), r)
}

func logProv(msg string, loggerProv LoggerProvider, lvl slog.Level, args ...any) {
	if loggerProv == nil {
		return
	}
	Log(msg, loggerProv.Logger(), lvl, 4, args...)
}

func Debug(msg string, loggerProv LoggerProvider, args ...any) {
	logProv(msg, loggerProv, slog.LevelDebug, args...)
}
func Info(msg string, loggerProv LoggerProvider, args ...any) {
	logProv(msg, loggerProv, slog.LevelInfo, args...)
}
func Warn(msg string, loggerProv LoggerProvider, args ...any) {
	logProv(msg, loggerProv, slog.LevelWarn, args...)
}
func Error(msg string, loggerProv LoggerProvider, args ...any) {
	logProv(msg, loggerProv, slog.LevelError, args...)
}

// IsErr logs a non-nil err (every member of a joined error separately)
// and reports whether err was non-nil.
func IsErr(err error, loggerProv LoggerProvider, lvl slog.Level, args ...any) bool {
	if err == nil {
		return false
	}
	if loggerProv == nil {
		return true
	}
	logger := loggerProv.Logger()
	if errs, ok := err.(interface{ Unwrap() []error }); ok {
		for _, err := range errs.Unwrap() {
			Log(err.Error(), logger, lvl, 3, args...)
		}
	} else {
		Log(err.Error(), logger, lvl, 3, args...)
	}
	return true
}

func TimeIt(fn func() error, msg string, loggerProv LoggerProvider, args ...any) error {
	if fn == nil {
		return errors.NilParam()
	}
	if len(msg) == 0 {
		msg = `duration measurement for function`
	}
	start := time.Now()
	err := fn()
	logProv(msg, loggerProv, slog.LevelDebug, append([]any{`duration`, time.Since(start)}, args...)...)
	return err
}

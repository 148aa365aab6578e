// Package logger holds the [slog.Logger] shared by btxt and its
// subpackages. It discards everything until a logger is set.
package logger

import "context"
import "log/slog"
import "sync/atomic"

type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(slog.New(nopHandler{}))
}

// Set replaces the shared logger. A nil logger restores the
// silent default. Safe for concurrent use.
func Set(l *slog.Logger) {
	if l == nil { l = slog.New(nopHandler{}) }
	loggerPtr.Store(l)
}

// Get returns the shared logger.
func Get() *slog.Logger {
	return loggerPtr.Load()
}

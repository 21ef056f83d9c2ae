package clamav

import (
	"context"
	"strings"
	"sync/atomic"

	"github.com/ffi-clamav/clamav-go/pkg/clamav/logging"
)

type loggerBox struct{ logging.Logger }

type messageBox struct {
	fn func(level MsgLevel, full, msg string)
}

var (
	pkgLogger      atomic.Value // loggerBox
	messageHandler atomic.Value // messageBox
)

func init() {
	pkgLogger.Store(loggerBox{logging.New(nil)})
	messageHandler.Store(messageBox{})
}

// SetLogger replaces the package logger. Passing nil restores the default
// slog-backed logger. libclamav's own messages are routed here unless a
// message handler is installed with SetMessageHandler.
func SetLogger(l logging.Logger) {
	if l == nil {
		l = logging.New(nil)
	}
	pkgLogger.Store(loggerBox{l})
}

func currentLogger() logging.Logger {
	return pkgLogger.Load().(loggerBox).Logger
}

// SetMessageHandler takes over libclamav's log messages. Passing nil sends
// them to the package logger again. The handler is process-wide and may be
// called from any goroutine that is inside a libclamav call.
func SetMessageHandler(fn func(level MsgLevel, full, msg string)) {
	messageHandler.Store(messageBox{fn})
}

func dispatchMessage(severity int32, full, msg string) {
	level := MsgLevel(severity)
	if h := messageHandler.Load().(messageBox).fn; h != nil {
		h(level, full, msg)
		return
	}
	ctx := context.Background()
	msg = strings.TrimRight(msg, "\n")
	l := currentLogger().With("source", "libclamav")
	switch {
	case level >= MsgError:
		l.Error(ctx, msg)
	case level >= MsgWarn:
		l.Warn(ctx, msg)
	default:
		l.Debug(ctx, msg)
	}
}

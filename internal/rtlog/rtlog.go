package rtlog

import (
	"sync"

	"github.com/joeycumines/izerolog"
	"github.com/joeycumines/logiface"
	"github.com/rs/zerolog"
)

// Logger is the concrete logger type every runtime package logs through.
type Logger = logiface.Logger[*izerolog.Event]

var global struct {
	sync.RWMutex
	logger *Logger
}

// Default returns the current package-level logger. Before SetBackend or
// SetLogger is called, it returns a logger with no writer configured, which
// makes every Build/Log call on it a safe, allocation-free no-op: this is
// logiface's own behaviour, not a hand-rolled stand-in for it.
func Default() *Logger {
	global.RLock()
	l := global.logger
	global.RUnlock()
	if l != nil {
		return l
	}
	return logiface.New[*izerolog.Event]()
}

// SetBackend points the package-level logger at a zerolog.Logger, via
// izerolog.WithZerolog. This is the common case for embedding applications
// that already configure zerolog for their own output.
func SetBackend(zl zerolog.Logger) {
	SetLogger(logiface.New[*izerolog.Event](izerolog.WithZerolog(zl)))
}

// SetLogger installs an arbitrary, already-configured logger as the
// package-level default, for embedders who want finer control than
// SetBackend offers (custom level, writer chaining, and so on).
func SetLogger(l *Logger) {
	global.Lock()
	global.logger = l
	global.Unlock()
}

// Reset restores the no-op default, primarily for tests.
func Reset() {
	SetLogger(nil)
}

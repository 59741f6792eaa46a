package pooled

import (
	"sync"

	"go.uber.org/zap"
)

var (
	pkgLogger *zap.Logger
	loggerMu  sync.RWMutex
)

// Logger returns the package logger. It is a no-op logger unless SetLogger
// was called.
func Logger() *zap.Logger {
	loggerMu.RLock()
	l := pkgLogger
	loggerMu.RUnlock()
	if l == nil {
		return zap.NewNop()
	}
	return l
}

// SetLogger configures the package logger. Pools capture the logger when
// they are created, so call it before the first Shared pool is used.
func SetLogger(l *zap.Logger) {
	loggerMu.Lock()
	pkgLogger = l
	loggerMu.Unlock()
}

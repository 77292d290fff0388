package log

import (
	"sync/atomic"

	"go.uber.org/zap"
)

var current atomic.Pointer[zap.Logger]

func init() {
	current.Store(zap.NewNop())
}

// Logger returns the logger used by every package of this module.
// It is a no-op logger until Set is called.
func Logger() *zap.Logger {
	return current.Load()
}

// Set replaces the module logger and returns a function restoring the
// previous one. A nil logger installs a no-op logger.
//
// Usage:
//
//	restore := log.Set(zapLogger)
//	defer restore()
func Set(logger *zap.Logger) func() {
	if logger == nil {
		logger = zap.NewNop()
	}
	prev := current.Swap(logger)
	return func() {
		if err := logger.Sync(); err != nil {
			logger.Debug("failed to sync logger", zap.Error(err))
		}
		current.Store(prev)
	}
}

// Debugf is a shorthand for Logger().Sugar().Debugf.
func Debugf(template string, args ...interface{}) {
	Logger().Sugar().Debugf(template, args...)
}

package log

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewTestLogger builds a development console logger writing debug output
// to stdout. Tests install it with Set to see what the library is doing.
func NewTestLogger() *zap.Logger {
	consoleCore := zapcore.NewCore(
		zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
		zapcore.Lock(os.Stdout),
		zap.DebugLevel,
	)
	return zap.New(consoleCore)
}

// WithTestLogger installs NewTestLogger and returns the restore function.
func WithTestLogger() func() {
	return Set(NewTestLogger())
}

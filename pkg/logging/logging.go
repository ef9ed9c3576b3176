// Package logging provides the shared zap logger.
package logging

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// L is the global logger. It is a no-op until Init runs.
	L = zap.NewNop()

	// S is the sugared logger for convenience.
	S = L.Sugar()
)

// Init configures the global logger to write console-encoded output to
// stderr at the given level. Unknown level names fall back to warn.
func Init(level string) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		lvl = zapcore.WarnLevel
	}
	enc := zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	L = zap.New(zapcore.NewCore(enc, zapcore.Lock(os.Stderr), lvl))
	S = L.Sugar()
}

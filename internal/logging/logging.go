// Package logging builds the zap loggers used by the CLI and server.
package logging

import (
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Options configures New.
type Options struct {
	// Verbose lowers the level from warn to debug.
	Verbose bool

	// Writer receives log output. Defaults to stderr.
	Writer io.Writer
}

// New returns a console logger. Only warnings and errors are written unless
// Verbose is set.
func New(opts Options) *zap.Logger {
	writer := opts.Writer
	if writer == nil {
		writer = os.Stderr
	}

	level := zapcore.WarnLevel
	if opts.Verbose {
		level = zapcore.DebugLevel
	}

	encoderConfig := zap.NewDevelopmentEncoderConfig()
	encoderConfig.TimeKey = ""
	encoderConfig.CallerKey = ""
	encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderConfig),
		zapcore.AddSync(writer),
		zap.NewAtomicLevelAt(level),
	)
	return zap.New(core)
}

package logger

import (
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Global logger instance
	Logger *zap.SugaredLogger
	// Flag to track if JSON output is enabled
	JSONOutput bool
)

func init() {
	// No-op until Initialize so library code can log unconditionally
	Logger = zap.NewNop().Sugar()
}

// Options configures the global logger
type Options struct {
	// JSON switches to zap's production JSON encoder for machine consumption
	JSON bool
	// Verbosity is the -v flag count, see VerbosityToLevel
	Verbosity int
	// Writer receives log output (default: stderr). Generated content and
	// command results go to stdout, so logs stay out of the way of pipes.
	Writer io.Writer
}

// Initialize sets up the global logger
func Initialize(opts Options) error {
	JSONOutput = opts.JSON

	w := opts.Writer
	if w == nil {
		w = os.Stderr
	}
	level := VerbosityToLevel(opts.Verbosity)

	var encoder zapcore.Encoder
	if opts.JSON {
		encoder = zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	} else {
		// Human-readable console output with minimal, calm formatting
		encoder = newMinimalEncoder()
	}

	zapLogger := zap.New(zapcore.NewCore(encoder, zapcore.AddSync(w), level))
	Logger = zapLogger.Sugar()
	return nil
}

// Named returns a child logger for a component (e.g. "watch", "generator")
func Named(name string) *zap.SugaredLogger {
	return Logger.Named(name)
}

// Cleanup flushes any buffered log entries
func Cleanup() {
	if Logger != nil {
		_ = Logger.Sync()
	}
}

// Infow logs an info message with structured fields
func Infow(msg string, keysAndValues ...interface{}) {
	if Logger != nil {
		Logger.Infow(msg, keysAndValues...)
	}
}

// Errorw logs an error message with structured fields
func Errorw(msg string, keysAndValues ...interface{}) {
	if Logger != nil {
		Logger.Errorw(msg, keysAndValues...)
	}
}

// Warnw logs a warning message with structured fields
func Warnw(msg string, keysAndValues ...interface{}) {
	if Logger != nil {
		Logger.Warnw(msg, keysAndValues...)
	}
}

// Debugw logs a debug message with structured fields
func Debugw(msg string, keysAndValues ...interface{}) {
	if Logger != nil {
		Logger.Debugw(msg, keysAndValues...)
	}
}

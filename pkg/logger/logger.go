package logger

import (
	"io"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Leveled JSON logger for the registry service, built on zap.
// Init(level) adjusts the global level at runtime; default is Info.

var (
	atom  = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	sugar *zap.SugaredLogger
)

func init() {
	rebuild(os.Stdout)
}

// rebuild swaps the output sink; tests point it at a buffer.
func rebuild(w io.Writer) {
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "timestamp"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder

	core := zapcore.NewCore(zapcore.NewJSONEncoder(encoderConfig), zapcore.AddSync(w), atom)
	sugar = zap.New(core).Sugar()
}

// Init sets the global log level (case-insensitive: debug, info, warn, error, fatal).
// Call early during startup. Unknown or empty input falls back to Info.
func Init(l string) {
	lvl, err := zapcore.ParseLevel(strings.ToLower(strings.TrimSpace(l)))
	if err != nil || lvl > zapcore.FatalLevel || lvl < zapcore.DebugLevel {
		lvl = zapcore.InfoLevel
	}
	atom.SetLevel(lvl)
}

func Debugf(format string, v ...interface{}) { sugar.Debugf(format, v...) }
func Infof(format string, v ...interface{})  { sugar.Infof(format, v...) }
func Warnf(format string, v ...interface{})  { sugar.Warnf(format, v...) }
func Errorf(format string, v ...interface{}) { sugar.Errorf(format, v...) }
func Fatalf(format string, v ...interface{}) { sugar.Fatalf(format, v...) }

// Debug/Info/Warn/Error helpers that accept a single string
func Debug(v string) { sugar.Debug(v) }
func Info(v string)  { sugar.Info(v) }
func Warn(v string)  { sugar.Warn(v) }
func Error(v string) { sugar.Error(v) }

// Sync flushes buffered entries; call on shutdown.
func Sync() { _ = sugar.Sync() }

// LevelString returns the current level as text.
func LevelString() string {
	return atom.Level().String()
}

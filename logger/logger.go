package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	sugar       = zap.NewNop().Sugar()
	base        = zap.NewNop()
	logFile     *os.File
	logLevel    string
	initialized bool
)

// ParseLevel maps the config level names (DEBUG, INFO, WARN, ERROR) onto zap
// levels. Unknown names fall back to INFO.
func ParseLevel(level string) zapcore.Level {
	switch strings.ToUpper(strings.TrimSpace(level)) {
	case "DEBUG":
		return zap.DebugLevel
	case "WARN", "WARNING":
		return zap.WarnLevel
	case "ERROR":
		return zap.ErrorLevel
	default:
		return zap.InfoLevel
	}
}

// InitGlobalLoggers points the package logger at logPath. When the file cannot
// be opened, logs are discarded and the reason goes to stderr.
func InitGlobalLoggers(logPath, level string) error {
	if initialized && logFile != nil && strings.ToUpper(level) == logLevel {
		return nil
	}
	CloseLogFiles()

	logLevel = strings.ToUpper(level)
	if logLevel == "" {
		logLevel = "INFO"
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "time"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder

	var sink zapcore.WriteSyncer = zapcore.AddSync(io.Discard)
	if err := os.MkdirAll(filepath.Dir(logPath), 0750); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create log directory %s: %v. Logs will be discarded.\n", filepath.Dir(logPath), err)
	} else if f, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0640); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open log file %s: %v. Logs will be discarded.\n", logPath, err)
	} else {
		logFile = f
		sink = zapcore.Lock(f)
	}

	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encoderConfig), sink, ParseLevel(logLevel))
	SetLogger(zap.New(core, zap.AddCaller(), zap.AddCallerSkip(1)))

	if !initialized {
		Debug("Logger initialized. Log level: %s. Output file: %s", logLevel, logPath)
	}
	initialized = true
	return nil
}

// SetLogger replaces the package logger. Tests use it to install zap.NewNop
// or an observer.
func SetLogger(l *zap.Logger) {
	base = l
	sugar = l.Sugar()
}

// L returns the underlying structured logger.
func L() *zap.Logger {
	return base
}

func Info(format string, v ...interface{}) {
	sugar.Infof(format, v...)
}

func Debug(format string, v ...interface{}) {
	sugar.Debugf(format, v...)
}

func Warn(format string, v ...interface{}) {
	sugar.Warnf(format, v...)
}

func Error(format string, v ...interface{}) {
	sugar.Errorf(format, v...)
}

func Fatal(format string, v ...interface{}) {
	sugar.Fatalf(format, v...)
}

func CloseLogFiles() {
	_ = base.Sync()
	if logFile != nil {
		logFile.Close()
		logFile = nil // Prevent double close
	}
	SetLogger(zap.NewNop())
	initialized = false
}

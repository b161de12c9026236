package common

import (
	"fmt"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Logger is the global logger instance. No-op until InitLogger runs.
	Logger  = zap.NewNop()
	LogMode string

	levelColors = map[zapcore.Level]string{
		zapcore.DebugLevel: "\033[36m", // cyan
		zapcore.InfoLevel:  "\033[32m", // green
		zapcore.WarnLevel:  "\033[33m", // yellow
		zapcore.ErrorLevel: "\033[31m", // red
		zapcore.FatalLevel: "\033[35m", // magenta
	}
	resetColor = "\033[0m"
)

func getEncoderConfig() zapcore.EncoderConfig {
	return zapcore.EncoderConfig{
		TimeKey:        "time",
		LevelKey:       "level",
		NameKey:        "",
		CallerKey:      "",
		MessageKey:     "msg",
		StacktraceKey:  "",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    customLevelEncoder,
		EncodeTime:     customTimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeCaller:   nil,
	}
}

func customTimeEncoder(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString(t.Format("15:04:05.000"))
}

func customLevelEncoder(l zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
	color := levelColors[l]
	level := l.String()
	switch l {
	case zapcore.DebugLevel:
		level = "DBG"
	case zapcore.InfoLevel:
		level = "INF"
	case zapcore.WarnLevel:
		level = "WRN"
	case zapcore.ErrorLevel:
		level = "ERR"
	case zapcore.FatalLevel:
		level = "FAT"
	}
	enc.AppendString(color + level + resetColor)
}

// InitLogger initializes the logging system. Must run after the .env file is
// loaded so LOG_MODE is visible.
func InitLogger(logLevel string) error {
	var level zapcore.Level
	switch strings.ToLower(logLevel) {
	case "debug":
		level = zapcore.DebugLevel
	case "info":
		level = zapcore.InfoLevel
	case "warn":
		level = zapcore.WarnLevel
	case "error":
		level = zapcore.ErrorLevel
	case "fatal":
		level = zapcore.FatalLevel
	default:
		level = zapcore.InfoLevel
	}

	LogMode = os.Getenv("LOG_MODE")

	if err := os.MkdirAll("logs", 0755); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}

	logFile, err := os.OpenFile("logs/app.log", os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}

	fileWriter := zapcore.AddSync(logFile)
	consoleWriter := zapcore.AddSync(os.Stdout)

	fileCore := zapcore.NewCore(
		zapcore.NewJSONEncoder(getEncoderConfig()),
		fileWriter,
		level,
	)
	consoleCore := zapcore.NewCore(
		zapcore.NewConsoleEncoder(getEncoderConfig()),
		consoleWriter,
		level,
	)

	core := zapcore.NewTee(fileCore, consoleCore)

	Logger = zap.New(core,
		zap.AddCallerSkip(1),
		zap.Fields(
			zap.String("service", "smart-shopping"),
		),
	)

	zap.ReplaceGlobals(Logger)

	return nil
}

// LogInfo logs an info message. In concise mode only the request-completed
// line and server lifecycle messages go through.
func LogInfo(msg string, fields ...zap.Field) {
	if LogMode == "concise" {
		if msg != "request completed" && msg != "starting application" && msg != "server exited" && msg != "shutting down server" {
			return
		}
	}
	Logger.Info(msg, fields...)
}

// LogError logs an error message.
func LogError(msg string, fields ...zap.Field) {
	Logger.Error(msg, fields...)
}

// LogWarn logs a warning message.
func LogWarn(msg string, fields ...zap.Field) {
	Logger.Warn(msg, fields...)
}

// LogDebug logs a debug message.
func LogDebug(msg string, fields ...zap.Field) {
	Logger.Debug(msg, fields...)
}

// LogFatal logs a fatal message and exits.
func LogFatal(msg string, fields ...zap.Field) {
	Logger.Fatal(msg, fields...)
}

// Sync flushes buffered log entries.
func Sync() {
	if Logger != nil {
		_ = Logger.Sync()
	}
}

// LogCacheHit records a cache hit.
func LogCacheHit(cacheType, key string) {
	LogInfo("cache hit", zap.String("type", cacheType), zap.String("key", key))
}

// LogCacheMiss records a cache miss.
func LogCacheMiss(cacheType, key string) {
	LogInfo("cache miss", zap.String("type", cacheType), zap.String("key", key))
}

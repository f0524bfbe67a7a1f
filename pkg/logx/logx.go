package logx

import (
	"fmt"
	"log"
	"os"
	"sync/atomic"
)

// Level represents logging severity
type Level int32

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

var currentLevel atomic.Int32

var std = log.New(os.Stdout, "", log.LstdFlags)

func init() {
	currentLevel.Store(int32(LevelInfo))
}

// SetLevel sets the minimum level that will be logged
func SetLevel(level Level) {
	currentLevel.Store(int32(level))
}

// GetLevel returns the current logging level
func GetLevel() Level {
	return Level(currentLevel.Load())
}

func logAt(level Level, prefix, msg string) {
	if level < GetLevel() {
		return
	}
	std.Printf("%s %s", prefix, msg)
}

// Debug logs a message at debug level
func Debug(msg string) { logAt(LevelDebug, "[DEBUG]", msg) }

// Debugf logs a formatted message at debug level
func Debugf(format string, args ...any) { logAt(LevelDebug, "[DEBUG]", fmt.Sprintf(format, args...)) }

// Info logs a message at info level
func Info(msg string) { logAt(LevelInfo, "[INFO]", msg) }

// Infof logs a formatted message at info level
func Infof(format string, args ...any) { logAt(LevelInfo, "[INFO]", fmt.Sprintf(format, args...)) }

// Warn logs a message at warn level
func Warn(msg string) { logAt(LevelWarn, "[WARN]", msg) }

// Warnf logs a formatted message at warn level
func Warnf(format string, args ...any) { logAt(LevelWarn, "[WARN]", fmt.Sprintf(format, args...)) }

// Error logs a message at error level
func Error(msg string) { logAt(LevelError, "[ERROR]", msg) }

// Errorf logs a formatted message at error level
func Errorf(format string, args ...any) { logAt(LevelError, "[ERROR]", fmt.Sprintf(format, args...)) }

// Fatal logs a message and exits the process
func Fatal(msg string) {
	std.Printf("[FATAL] %s", msg)
	os.Exit(1)
}

// Fatalf logs a formatted message and exits the process
func Fatalf(format string, args ...any) {
	std.Printf("[FATAL] %s", fmt.Sprintf(format, args...))
	os.Exit(1)
}

// Package errlog provides the process-wide diagnostic logging facility.
//
// Messages are leveled and printf-style. Output goes to stderr by default
// and can be redirected to any writer or an append-only file, or intercepted
// wholesale by a callback. Nothing in this package terminates the process;
// fatal-level messages are logged and control returns to the caller.
package errlog

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/rs/zerolog"
)

// Level is a message severity.
type Level int8

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
	LevelFatal
)

// String returns the level's name as accepted by SetLevelString.
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	case LevelFatal:
		return "FATAL"
	}
	return "UNKNOWN"
}

func (l Level) zerolog() zerolog.Level {
	switch l {
	case LevelDebug:
		return zerolog.DebugLevel
	case LevelInfo:
		return zerolog.InfoLevel
	case LevelWarn:
		return zerolog.WarnLevel
	case LevelError:
		return zerolog.ErrorLevel
	default:
		return zerolog.FatalLevel
	}
}

var state = struct {
	sync.Mutex
	logger   zerolog.Logger
	min      Level
	callback func(Level, string)
	logFile  *os.File
}{
	logger: zerolog.New(os.Stderr).With().Timestamp().Logger(),
	min:    LevelInfo,
}

// SetLevel sets the minimum level that will be logged and returns the
// previous minimum.
func SetLevel(l Level) Level {
	state.Lock()
	defer state.Unlock()
	prev := state.min
	state.min = l
	return prev
}

// SetLevelString sets the minimum level by name, case-insensitive, and
// returns the previous level's name.
func SetLevelString(name string) (string, error) {
	var l Level
	switch strings.ToUpper(name) {
	case "DEBUG":
		l = LevelDebug
	case "INFO":
		l = LevelInfo
	case "WARN":
		l = LevelWarn
	case "ERROR":
		l = LevelError
	case "FATAL":
		l = LevelFatal
	default:
		return "", fmt.Errorf("unknown log level %q", name)
	}
	return SetLevel(l).String(), nil
}

// SetOutput directs log output to w, closing any log file opened by
// SetLogFile. A nil writer disables logging entirely.
func SetOutput(w io.Writer) {
	state.Lock()
	defer state.Unlock()
	closeLogFileLocked()
	if w == nil {
		state.logger = zerolog.Nop()
		return
	}
	state.logger = zerolog.New(w).With().Timestamp().Logger()
}

// SetLogFile appends log output to the named file, creating it if needed.
// Any previously opened log file is closed.
func SetLogFile(path string) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return err
	}
	state.Lock()
	defer state.Unlock()
	closeLogFileLocked()
	state.logFile = f
	state.logger = zerolog.New(f).With().Timestamp().Logger()
	return nil
}

// SetCallback routes all messages at or above the minimum level to fn
// instead of the configured writer. A nil fn restores writer output.
func SetCallback(fn func(Level, string)) {
	state.Lock()
	defer state.Unlock()
	state.callback = fn
}

func closeLogFileLocked() {
	if state.logFile != nil {
		state.logFile.Close()
		state.logFile = nil
	}
}

func logf(l Level, format string, args ...any) {
	state.Lock()
	min, cb, logger := state.min, state.callback, state.logger
	state.Unlock()
	if l < min {
		return
	}
	if cb != nil {
		cb(l, fmt.Sprintf(format, args...))
		return
	}
	logger.WithLevel(l.zerolog()).Msgf(format, args...)
}

// Debugf logs a debug-level message.
func Debugf(format string, args ...any) { logf(LevelDebug, format, args...) }

// Infof logs an info-level message.
func Infof(format string, args ...any) { logf(LevelInfo, format, args...) }

// Warnf logs a warning message.
func Warnf(format string, args ...any) { logf(LevelWarn, format, args...) }

// Errorf logs an error message.
func Errorf(format string, args ...any) { logf(LevelError, format, args...) }

// Fatalf logs a fatal-severity message. It does not exit; whether a fatal
// condition aborts the process is the caller's decision.
func Fatalf(format string, args ...any) { logf(LevelFatal, format, args...) }

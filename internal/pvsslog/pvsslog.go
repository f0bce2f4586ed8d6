// Package pvsslog provides the structured logging used across the module:
// group construction, key generation, distribution, extraction and
// reconstruction each log one event at Info level; verification failures and
// Lagrange degeneracies log at Warn.
package pvsslog

import (
	"io"
	"os"
	"sync"

	"github.com/rs/zerolog"
)

var (
	mu     sync.RWMutex
	logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}).With().Timestamp().Logger()
)

// Init replaces the package logger. level is one of zerolog's level names
// ("debug", "info", "warn", "error", "disabled"); an unrecognized value
// leaves the current level unchanged. out defaults to os.Stderr when nil.
func Init(level string, out io.Writer) {
	if out == nil {
		out = os.Stderr
	}

	parsed, err := zerolog.ParseLevel(level)

	mu.Lock()
	defer mu.Unlock()

	previous := logger.GetLevel()
	logger = zerolog.New(zerolog.ConsoleWriter{Out: out, NoColor: true, TimeFormat: "15:04:05"}).With().Timestamp().Logger()
	if err == nil {
		logger = logger.Level(parsed)
	} else {
		logger = logger.Level(previous)
	}
}

func current() zerolog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return logger
}

// Info logs msg at Info level with the given alternating key/value fields.
func Info(msg string, kv ...any) {
	withFields(current().Info(), kv).Msg(msg)
}

// Warn logs msg at Warn level with the given alternating key/value fields.
func Warn(msg string, kv ...any) {
	withFields(current().Warn(), kv).Msg(msg)
}

// Error logs msg at Error level with the given alternating key/value fields.
func Error(msg string, kv ...any) {
	withFields(current().Error(), kv).Msg(msg)
}

func withFields(event *zerolog.Event, kv []any) *zerolog.Event {
	for i := 0; i+1 < len(kv); i += 2 {
		key, ok := kv[i].(string)
		if !ok {
			continue
		}
		event = event.Interface(key, kv[i+1])
	}
	return event
}

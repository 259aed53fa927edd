package logger

import (
	"sync"

	"github.com/loaderkit/diaglog/config"
	"github.com/loaderkit/diaglog/recorder"
)

var (
	instance *Logger
	once     sync.Once
)

// NewWithDefaults creates a logger pre-populated the way the shared
// instance is: an error-only stderr recorder, plus a stdout recorder
// when the LOADER_DEBUG keyword selects one.
func NewWithDefaults() *Logger {
	l := New()

	// Always keep errors visible on stderr.
	l.AddRecorder(recorder.NewStdErrRecorder())

	if severities, ok := config.Verbosity(); ok {
		l.AddRecorder(recorder.NewStdOutRecorder(severities))
	}
	return l
}

// Instance returns the process-wide logger, constructing it exactly
// once no matter how many goroutines race here first. It lives until
// process exit; there is no teardown.
func Instance() *Logger {
	once.Do(func() {
		instance = NewWithDefaults()
	})
	return instance
}

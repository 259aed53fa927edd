package recorder

import (
	"io"
	"os"
	"sync"

	"github.com/loaderkit/diaglog/core"
	"github.com/loaderkit/diaglog/formatter"
)

// ConsoleRecorder writes diagnostic messages to a stream. Writes are
// synchronous and serialized by an internal mutex; a failed write is
// swallowed (the message is simply lost on that sink).
type ConsoleRecorder struct {
	id              uint64
	severities      core.Severity
	categories      core.Category
	writer          io.Writer
	formatter       formatter.Formatter
	writerFormatter formatter.WriterFormatter
	mu              sync.Mutex
}

// ConsoleConfig holds configuration for a console recorder
type ConsoleConfig struct {
	// Writer to write to (default: os.Stdout)
	Writer io.Writer
	// Formatter to use (default: TextFormatter)
	Formatter formatter.Formatter
	// Severities this recorder accepts (default: AllSeverities)
	Severities core.Severity
	// Categories this recorder accepts (default: AllCategories)
	Categories core.Category
}

// NewConsoleRecorder creates a console recorder from the given config.
func NewConsoleRecorder(cfg ConsoleConfig) *ConsoleRecorder {
	if cfg.Writer == nil {
		cfg.Writer = os.Stdout
	}
	if cfg.Formatter == nil {
		cfg.Formatter = formatter.NewTextFormatter()
	}
	if cfg.Severities == 0 {
		cfg.Severities = core.AllSeverities
	}
	if cfg.Categories == 0 {
		cfg.Categories = core.AllCategories
	}

	r := &ConsoleRecorder{
		id:         NewID(),
		severities: cfg.Severities,
		categories: cfg.Categories,
		writer:     cfg.Writer,
		formatter:  cfg.Formatter,
	}

	// Cache WriterFormatter to skip the intermediate byte slice
	r.writerFormatter, _ = cfg.Formatter.(formatter.WriterFormatter)

	return r
}

// NewStdErrRecorder creates the default error-only recorder that keeps
// errors visible on stderr even with no other recorder registered.
func NewStdErrRecorder() *ConsoleRecorder {
	return NewConsoleRecorder(ConsoleConfig{
		Writer:     os.Stderr,
		Severities: core.SeverityError,
	})
}

// NewStdOutRecorder creates a stdout recorder accepting the given
// severities and every category.
func NewStdOutRecorder(severities core.Severity) *ConsoleRecorder {
	return NewConsoleRecorder(ConsoleConfig{
		Writer:     os.Stdout,
		Severities: severities,
	})
}

// ID returns the recorder identifier.
func (r *ConsoleRecorder) ID() uint64 { return r.id }

// Kind returns KindStandard.
func (r *ConsoleRecorder) Kind() Kind { return KindStandard }

// Severities returns the severity filter.
func (r *ConsoleRecorder) Severities() core.Severity { return r.severities }

// Categories returns the category filter.
func (r *ConsoleRecorder) Categories() core.Category { return r.categories }

// Record formats the message and writes it to the stream. Console
// recorders never request termination.
func (r *ConsoleRecorder) Record(msg *core.Message) bool {
	if r.writerFormatter != nil {
		r.mu.Lock()
		_ = r.writerFormatter.FormatTo(msg, r.writer)
		r.mu.Unlock()
		return false
	}

	data, err := r.formatter.Format(msg)
	if err != nil {
		return false
	}

	r.mu.Lock()
	_, _ = r.writer.Write(data)
	r.mu.Unlock()
	return false
}

// RecordDebugUtils is a no-op; console recorders are standard kind.
func (r *ConsoleRecorder) RecordDebugUtils(core.DebugUtilsSeverity, core.DebugUtilsType, *core.CallbackData) bool {
	return false
}

package recorder

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/loaderkit/diaglog/core"
)

func TestConsoleRecorderWritesMessage(t *testing.T) {
	var buf bytes.Buffer
	r := NewConsoleRecorder(ConsoleConfig{Writer: &buf})

	exit := r.Record(&core.Message{
		Severity: core.SeverityInfo,
		Category: core.CategoryGeneral,
		ID:       "LOADER-001",
		Command:  "xrCreateInstance",
		Text:     "instance created",
	})
	if exit {
		t.Error("console recorder requested termination")
	}

	out := buf.String()
	if !strings.Contains(out, "instance created") {
		t.Errorf("expected message text in output, got: %s", out)
	}
	if !strings.Contains(out, "INFO") {
		t.Errorf("expected severity in output, got: %s", out)
	}
}

func TestConsoleRecorderDefaults(t *testing.T) {
	r := NewConsoleRecorder(ConsoleConfig{})

	if r.Severities() != core.AllSeverities {
		t.Errorf("Severities() = %v, want all", r.Severities())
	}
	if r.Categories() != core.AllCategories {
		t.Errorf("Categories() = %v, want all", r.Categories())
	}
	if r.Kind() != KindStandard {
		t.Errorf("Kind() = %v, want standard", r.Kind())
	}
}

func TestStdErrRecorderFilters(t *testing.T) {
	r := NewStdErrRecorder()

	if r.Severities() != core.SeverityError {
		t.Errorf("Severities() = %v, want ERROR only", r.Severities())
	}
	if r.Categories() != core.AllCategories {
		t.Errorf("Categories() = %v, want all", r.Categories())
	}
}

func TestStdOutRecorderFilters(t *testing.T) {
	want := core.SeverityError | core.SeverityWarning
	r := NewStdOutRecorder(want)

	if r.Severities() != want {
		t.Errorf("Severities() = %v, want %v", r.Severities(), want)
	}
	if r.Categories() != core.AllCategories {
		t.Errorf("Categories() = %v, want all", r.Categories())
	}
}

func TestRecorderIDsUnique(t *testing.T) {
	seen := make(map[uint64]bool)
	for i := 0; i < 16; i++ {
		r := NewConsoleRecorder(ConsoleConfig{Writer: &bytes.Buffer{}})
		if seen[r.ID()] {
			t.Fatalf("duplicate recorder id %d", r.ID())
		}
		seen[r.ID()] = true
	}
}

// failingWriter errors on every write.
type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("write failed")
}

func TestConsoleRecorderSwallowsWriteFailure(t *testing.T) {
	r := NewConsoleRecorder(ConsoleConfig{Writer: failingWriter{}})

	exit := r.Record(&core.Message{
		Severity: core.SeverityError,
		Category: core.CategoryGeneral,
		ID:       "X",
		Text:     "lost",
	})
	if exit {
		t.Error("write failure must not request termination")
	}
}

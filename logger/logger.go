package logger

import (
	"sync"

	"github.com/loaderkit/diaglog/auxdata"
	"github.com/loaderkit/diaglog/core"
	"github.com/loaderkit/diaglog/recorder"
)

// Logger is the dispatch hub: an ordered recorder registry plus the
// auxiliary context store. All methods are safe for concurrent use.
type Logger struct {
	mu        sync.Mutex
	recorders []recorder.Recorder
	data      *auxdata.Store
}

// New creates a logger with no recorders registered.
func New() *Logger {
	return &Logger{data: auxdata.NewStore()}
}

// AddRecorder appends a recorder to the registry. Recorders fire in
// insertion order.
func (l *Logger) AddRecorder(r recorder.Recorder) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.recorders = append(l.recorders, r)
}

// RemoveRecorder removes the recorder with the given identifier.
// Removing an unknown identifier is a no-op.
func (l *Logger) RemoveRecorder(id uint64) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for i, r := range l.recorders {
		if r.ID() == id {
			l.recorders = append(l.recorders[:i], l.recorders[i+1:]...)
			return
		}
	}
}

// snapshot copies the registry so recorders are invoked outside the
// lock; a slow sink must not block Add/RemoveRecorder.
func (l *Logger) snapshot() []recorder.Recorder {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]recorder.Recorder, len(l.recorders))
	copy(out, l.recorders)
	return out
}

// LogMessage builds a generic message, enriches it with resolved
// object names and active session labels, and fans it out to every
// recorder whose filters accept it. The returned boolean aggregates
// the recorders' terminate requests.
func (l *Logger) LogMessage(severity core.Severity, category core.Category, id, command, text string, objects []core.ObjectInfo) bool {
	resolved, labels := l.data.PopulateNamesAndLabels(objects)
	msg := core.Message{
		Severity: severity,
		Category: category,
		ID:       id,
		Command:  command,
		Text:     text,
		Objects:  resolved,
		Labels:   labels,
	}

	exit := false
	for _, r := range l.snapshot() {
		if r.Severities()&severity != severity || r.Categories()&category != category {
			continue
		}
		exit = r.Record(&msg) || exit
	}
	return exit
}

// LogDebugUtilsMessage dispatches a debug-utils payload. Only
// debug-utils-kind recorders whose filters accept the translated bits
// receive it; standard recorders are skipped outright.
func (l *Logger) LogDebugUtilsMessage(severity core.DebugUtilsSeverity, types core.DebugUtilsType, data *core.CallbackData) bool {
	nativeSeverity := core.SeverityFromDebugUtils(severity)
	nativeCategory := core.CategoryFromDebugUtilsTypes(types)

	augmented := l.data.AugmentCallbackData(data)

	exit := false
	for _, r := range l.snapshot() {
		if r.Kind() != recorder.KindDebugUtils ||
			r.Severities()&nativeSeverity != nativeSeverity ||
			r.Categories()&nativeCategory != nativeCategory {
			continue
		}
		exit = r.RecordDebugUtils(severity, types, &augmented) || exit
	}
	return exit
}

// LogError logs a general error message.
func (l *Logger) LogError(id, command, text string, objects ...core.ObjectInfo) bool {
	return l.LogMessage(core.SeverityError, core.CategoryGeneral, id, command, text, objects)
}

// LogWarning logs a general warning message.
func (l *Logger) LogWarning(id, command, text string, objects ...core.ObjectInfo) bool {
	return l.LogMessage(core.SeverityWarning, core.CategoryGeneral, id, command, text, objects)
}

// LogInfo logs a general informational message.
func (l *Logger) LogInfo(id, command, text string, objects ...core.ObjectInfo) bool {
	return l.LogMessage(core.SeverityInfo, core.CategoryGeneral, id, command, text, objects)
}

// LogVerbose logs a general verbose message.
func (l *Logger) LogVerbose(id, command, text string, objects ...core.ObjectInfo) bool {
	return l.LogMessage(core.SeverityVerbose, core.CategoryGeneral, id, command, text, objects)
}

// LogValidationError logs a specification-conformance error.
func (l *Logger) LogValidationError(id, command, text string, objects ...core.ObjectInfo) bool {
	return l.LogMessage(core.SeverityError, core.CategoryGeneral|core.CategorySpecification, id, command, text, objects)
}

// LogValidationWarning logs a specification-conformance warning.
func (l *Logger) LogValidationWarning(id, command, text string, objects ...core.ObjectInfo) bool {
	return l.LogMessage(core.SeverityWarning, core.CategoryGeneral|core.CategorySpecification, id, command, text, objects)
}

// AddObjectName binds a human-readable name to an object handle.
func (l *Logger) AddObjectName(handle uint64, objectType core.ObjectType, name string) {
	l.data.AddObjectName(handle, objectType, name)
}

// BeginLabelRegion opens a label region on the session.
func (l *Logger) BeginLabelRegion(session core.Session, name string) {
	l.data.BeginLabelRegion(session, name)
}

// EndLabelRegion closes the session's innermost label region.
func (l *Logger) EndLabelRegion(session core.Session) {
	l.data.EndLabelRegion(session)
}

// InsertLabel places an individual label on the session.
func (l *Logger) InsertLabel(session core.Session, name string) {
	l.data.InsertLabel(session, name)
}

// DeleteSessionLabels discards all label state of a session. The
// session teardown path must call this before reusing the identifier.
func (l *Logger) DeleteSessionLabels(session core.Session) {
	l.data.DeleteSessionLabels(session)
}

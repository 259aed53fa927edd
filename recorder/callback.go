package recorder

import "github.com/loaderkit/diaglog/core"

// DebugUtilsCallback is the externally registered function a
// DebugUtilsRecorder forwards to. Returning true requests that the
// hosting process terminate.
type DebugUtilsCallback func(severity core.DebugUtilsSeverity, types core.DebugUtilsType, data *core.CallbackData) bool

// DebugUtilsRecorder forwards messages to a caller-supplied callback
// in the debug-utils payload shape. The registering caller owns the
// identifier (conventionally the messenger handle it hands back to the
// application) and uses it for removal.
type DebugUtilsRecorder struct {
	id         uint64
	severities core.Severity
	categories core.Category
	callback   DebugUtilsCallback
}

// NewDebugUtilsRecorder creates a recorder for an externally
// registered callback. The filters arrive in the extension's
// vocabulary and are translated to native bits once, at construction.
func NewDebugUtilsRecorder(id uint64, severities core.DebugUtilsSeverity, types core.DebugUtilsType, callback DebugUtilsCallback) *DebugUtilsRecorder {
	return &DebugUtilsRecorder{
		id:         id,
		severities: core.SeverityFromDebugUtils(severities),
		categories: core.CategoryFromDebugUtilsTypes(types),
		callback:   callback,
	}
}

// ID returns the externally assigned identifier.
func (r *DebugUtilsRecorder) ID() uint64 { return r.id }

// Kind returns KindDebugUtils.
func (r *DebugUtilsRecorder) Kind() Kind { return KindDebugUtils }

// Severities returns the severity filter in the native vocabulary.
func (r *DebugUtilsRecorder) Severities() core.Severity { return r.severities }

// Categories returns the category filter in the native vocabulary.
func (r *DebugUtilsRecorder) Categories() core.Category { return r.categories }

// Record converts a generic message into the debug-utils shape and
// forwards it, so callback sinks also see loader-originated messages.
func (r *DebugUtilsRecorder) Record(msg *core.Message) bool {
	data := core.CallbackData{
		MessageID:   msg.ID,
		CommandName: msg.Command,
		Message:     msg.Text,
		Objects:     msg.Objects,
	}
	for _, name := range msg.Labels {
		data.Labels = append(data.Labels, core.Label{Name: name, Region: true})
	}
	return r.RecordDebugUtils(core.SeverityToDebugUtils(msg.Severity), core.CategoryToDebugUtilsTypes(msg.Category), &data)
}

// RecordDebugUtils invokes the callback. The payload and every string
// it references stay valid only for the duration of the call.
func (r *DebugUtilsRecorder) RecordDebugUtils(severity core.DebugUtilsSeverity, types core.DebugUtilsType, data *core.CallbackData) bool {
	if r.callback == nil {
		return false
	}
	return r.callback(severity, types, data)
}

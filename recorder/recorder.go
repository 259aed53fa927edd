package recorder

import (
	"sync/atomic"

	"github.com/loaderkit/diaglog/core"
)

// Kind discriminates recorder flavors. The debug-utils dispatch path
// delivers only to KindDebugUtils recorders; everything else is
// KindStandard.
type Kind uint8

const (
	// KindStandard receives generic messages only
	KindStandard Kind = iota
	// KindDebugUtils additionally receives debug-utils payloads
	KindDebugUtils
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindStandard:
		return "standard"
	case KindDebugUtils:
		return "debug-utils"
	default:
		return "unknown"
	}
}

// Recorder is a registered sink for diagnostic messages. The boolean
// returned by the record methods reports whether the hosting process
// should now terminate; it is the only failure signal a recorder has.
type Recorder interface {
	// ID returns the identifier used to remove this recorder later.
	// Identifiers are unique within a registry at any instant.
	ID() uint64

	// Kind returns the recorder flavor.
	Kind() Kind

	// Severities returns the severity bits this recorder accepts.
	Severities() core.Severity

	// Categories returns the category bits this recorder accepts.
	Categories() core.Category

	// Record forwards a generic message.
	Record(msg *core.Message) bool

	// RecordDebugUtils forwards a debug-utils payload. Standard-kind
	// recorders never receive this call from dispatch and may treat it
	// as a no-op.
	RecordDebugUtils(severity core.DebugUtilsSeverity, types core.DebugUtilsType, data *core.CallbackData) bool
}

// nextID allocates identifiers for recorders constructed locally.
// Externally registered callback recorders bring their own id instead.
var nextID atomic.Uint64

// NewID returns a process-unique recorder identifier.
func NewID() uint64 {
	return nextID.Add(1)
}

package core

// Session identifies an external execution context. Handles are opaque
// to this subsystem; they scope label regions and are never
// dereferenced.
type Session uint64

// ObjectType enumerates the kinds of API objects a message can
// reference.
type ObjectType uint32

const (
	ObjectTypeUnknown ObjectType = iota
	ObjectTypeInstance
	ObjectTypeSession
	ObjectTypeSwapchain
	ObjectTypeActionSet
	ObjectTypeAction
)

// String returns the object type name.
func (t ObjectType) String() string {
	switch t {
	case ObjectTypeInstance:
		return "Instance"
	case ObjectTypeSession:
		return "Session"
	case ObjectTypeSwapchain:
		return "Swapchain"
	case ObjectTypeActionSet:
		return "ActionSet"
	case ObjectTypeAction:
		return "Action"
	default:
		return "Unknown"
	}
}

// ObjectInfo references an API object by handle. Name is the
// human-readable name assigned to the handle, or empty when none has
// been assigned. Handles are not owned by this subsystem.
type ObjectInfo struct {
	Handle uint64
	Type   ObjectType
	Name   string
}

// Label is a named marker on a session's label stack. Region labels
// are pushed by a begin/end pair and stay active until ended;
// non-region labels are inserted individually and are replaced by the
// next label operation on the same session.
type Label struct {
	Name   string
	Region bool
}

// Message is the generic shape delivered to recorders: one severity
// bit, one or more category bits, a short message identifier, the name
// of the originating command, free text, the referenced objects with
// their resolved names, and the active label names of any referenced
// sessions, oldest first. Messages are built per dispatch and never
// retained.
type Message struct {
	Severity Severity
	Category Category
	ID       string
	Command  string
	Text     string
	Objects  []ObjectInfo
	Labels   []string
}

// CallbackData is the debug-utils shape delivered to debug-utils
// recorders. It mirrors the extension's callback payload: the object
// and label slices carry their own per-entry names. Augmented values
// are self-contained copies; recorders must not retain them past the
// invocation.
type CallbackData struct {
	MessageID   string
	CommandName string
	Message     string
	Objects     []ObjectInfo
	Labels      []Label
}

// Clone returns a deep copy whose slices share no storage with the
// receiver.
func (d *CallbackData) Clone() CallbackData {
	out := CallbackData{
		MessageID:   d.MessageID,
		CommandName: d.CommandName,
		Message:     d.Message,
	}
	if len(d.Objects) > 0 {
		out.Objects = make([]ObjectInfo, len(d.Objects))
		copy(out.Objects, d.Objects)
	}
	if len(d.Labels) > 0 {
		out.Labels = make([]Label, len(d.Labels))
		copy(out.Labels, d.Labels)
	}
	return out
}

package auxdata

import (
	"sync"

	"github.com/loaderkit/diaglog/core"
)

// Store is the object-name table plus the per-session label stacks.
// The zero value is not usable; construct with NewStore.
type Store struct {
	mu     sync.Mutex
	names  map[uint64]core.ObjectInfo
	labels map[core.Session][]core.Label
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		names:  make(map[uint64]core.ObjectInfo),
		labels: make(map[core.Session][]core.Label),
	}
}

// AddObjectName binds a name to an object handle, replacing any prior
// binding regardless of its recorded type. An empty name removes the
// binding.
func (s *Store) AddObjectName(handle uint64, objectType core.ObjectType, name string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if name == "" {
		delete(s.names, handle)
		return
	}
	s.names[handle] = core.ObjectInfo{Handle: handle, Type: objectType, Name: name}
}

// BeginLabelRegion pushes a region label onto the session's stack. Any
// individual label still pending from InsertLabel is replaced first.
func (s *Store) BeginLabelRegion(session core.Session, name string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stack := removePendingIndividual(s.labels[session])
	s.labels[session] = append(stack, core.Label{Name: name, Region: true})
}

// InsertLabel places an individual label on the session's stack. It
// stays only until the next label operation on the same session.
func (s *Store) InsertLabel(session core.Session, name string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stack := removePendingIndividual(s.labels[session])
	s.labels[session] = append(stack, core.Label{Name: name, Region: false})
}

// EndLabelRegion pops the session's innermost region label. Ending on
// an empty stack is a no-op.
func (s *Store) EndLabelRegion(session core.Session) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stack := removePendingIndividual(s.labels[session])
	if len(stack) > 0 {
		stack = stack[:len(stack)-1]
	}
	if len(stack) == 0 {
		delete(s.labels, session)
		return
	}
	s.labels[session] = stack
}

// DeleteSessionLabels discards the session's entire stack. The session
// teardown path must call this before the identifier may be reused;
// idempotent.
func (s *Store) DeleteSessionLabels(session core.Session) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.labels, session)
}

// PopulateNamesAndLabels resolves the given objects against the name
// table and collects the active label names of every session the
// objects reference. The returned object slice preserves input order
// and count; unknown handles resolve to an empty name. Labels are
// ordered oldest-pushed first. The store is not mutated.
func (s *Store) PopulateNamesAndLabels(objects []core.ObjectInfo) ([]core.ObjectInfo, []string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	resolved := make([]core.ObjectInfo, len(objects))
	var labelNames []string
	for i, obj := range objects {
		resolved[i] = obj
		if stored, ok := s.names[obj.Handle]; ok {
			resolved[i].Name = stored.Name
		} else {
			resolved[i].Name = ""
		}
		if obj.Type == core.ObjectTypeSession {
			for _, label := range s.labels[core.Session(obj.Handle)] {
				labelNames = append(labelNames, label.Name)
			}
		}
	}
	return resolved, labelNames
}

// AugmentCallbackData clones the payload and enriches the copy: object
// names the caller left empty are filled from the table (caller-supplied
// names are never overwritten), and the active labels of any referenced
// sessions are appended after the labels the payload already carries.
func (s *Store) AugmentCallbackData(data *core.CallbackData) core.CallbackData {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := data.Clone()
	for i := range out.Objects {
		if out.Objects[i].Name != "" {
			continue
		}
		if stored, ok := s.names[out.Objects[i].Handle]; ok {
			out.Objects[i].Name = stored.Name
		}
	}
	for _, obj := range out.Objects {
		if obj.Type != core.ObjectTypeSession {
			continue
		}
		out.Labels = append(out.Labels, s.labels[core.Session(obj.Handle)]...)
	}
	return out
}

// removePendingIndividual strips an individual label left on top of
// the stack by InsertLabel. Region labels are never removed here.
func removePendingIndividual(stack []core.Label) []core.Label {
	if n := len(stack); n > 0 && !stack[n-1].Region {
		return stack[:n-1]
	}
	return stack
}

package position

import (
	"log/slog"
	"sync/atomic"
)

// sharedHierarchy is the reference-counted body behind one or more Shared handles.
type sharedHierarchy struct {
	h    *Hierarchy
	refs atomic.Int32
}

// Shared is a copy-on-write handle to a Hierarchy. Any number of handles can
// view the same hierarchy at no cost; a handle that needs to mutate asks for
// Mut, which copies the hierarchy first if another handle still sees it.
//
// This lets a renderer keep reading last frame's hierarchy while the
// simulation mutates the next one, without locks: a handle's view never
// changes underneath it unless that handle mutates it.
//
// Reference counts are atomic, so handles may be cloned and released from
// different goroutines. A single handle must still be used by one goroutine
// at a time.
type Shared struct {
	body *sharedHierarchy
}

// Share wraps h in a new handle with a reference count of one. The handle
// takes ownership: h must not be used directly afterwards.
func Share(h *Hierarchy) *Shared {
	body := &sharedHierarchy{h: h}
	body.refs.Store(1)
	return &Shared{body: body}
}

// Clone returns another handle viewing the same hierarchy.
func (s *Shared) Clone() *Shared {
	s.body.refs.Add(1)
	return &Shared{body: s.body}
}

// Refs returns the number of handles currently viewing this handle's hierarchy.
func (s *Shared) Refs() int {
	return int(s.body.refs.Load())
}

// Get returns a read-only view of the hierarchy. Callers must not mutate it;
// use Mut for that.
func (s *Shared) Get() *Hierarchy {
	return s.body.h
}

// Mut returns a hierarchy this handle owns exclusively. If other handles
// still view the current one, it is deep-copied first and this handle moves
// to the copy, leaving the other handles untouched.
func (s *Shared) Mut() *Hierarchy {
	if s.body.refs.Load() == 1 {
		return s.body.h
	}
	old := s.body
	h := old.h.Clone()
	if debugEnabled() {
		Logger().Debug("position: copy-on-write clone",
			slog.Int("nodes", h.Len()),
			slog.Int("generations", h.Depth()))
	}
	body := &sharedHierarchy{h: h}
	body.refs.Store(1)
	s.body = body
	old.refs.Add(-1)
	return h
}

// Release drops this handle's reference so remaining handles can mutate
// without copying. The handle must not be used after Release.
func (s *Shared) Release() {
	if s.body == nil {
		return
	}
	s.body.refs.Add(-1)
	s.body = nil
}

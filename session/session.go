// Package session models the per-tab session store as one explicit
// context object: the current identity (uid, sig) plus the cached rol
// and the uid that rol is bound to. Invariant: the rol cache is only
// ever readable for the uid it was stored under; asking for a
// different uid clears it.
package session

import "sync"

type Context struct {
	mu     sync.Mutex
	uid    uint
	sig    string
	rol    string
	rolUID uint
}

func NewContext(uid uint, sig string) *Context {
	return &Context{uid: uid, sig: sig}
}

func (s *Context) Identity() (uint, string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.uid, s.sig
}

// SetIdentity replaces the bound identity. A stale rol cache from a
// previous uid is dropped on the next Rol lookup.
func (s *Context) SetIdentity(uid uint, sig string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.uid = uid
	s.sig = sig
}

// SetRol caches the rol for uid.
func (s *Context) SetRol(uid uint, rol string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rolUID = uid
	s.rol = rol
}

// Rol returns the cached rol for uid. If the cache is bound to a
// different uid it is invalidated and "" is returned.
func (s *Context) Rol(uid uint) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.rolUID != uid {
		s.rol = ""
		s.rolUID = 0
		return ""
	}

	return s.rol
}

// Clear resets the whole context, identity and rol cache. Used on
// logout; a forbidden result never calls it (identity stays valid).
func (s *Context) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.uid = 0
	s.sig = ""
	s.rol = ""
	s.rolUID = 0
}

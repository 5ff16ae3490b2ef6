package session

import "sync"

// Store is the in-memory session map, the sole mutable shared state of
// the system. The map itself is safe for concurrent access; the
// *Session values it hands out are not, and must only be touched from
// the per-user dispatch goroutine that owns them.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewStore returns an empty Store.
func NewStore() *Store {
	return &Store{sessions: make(map[string]*Session)}
}

// Get returns the session for userID, or nil if none exists.
func (st *Store) Get(userID string) *Session {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return st.sessions[userID]
}

// GetOrCreate returns the session for userID, creating a fresh one in
// ModeNone on first contact.
func (st *Store) GetOrCreate(userID string) *Session {
	st.mu.Lock()
	defer st.mu.Unlock()
	if s, ok := st.sessions[userID]; ok {
		return s
	}
	s := New(userID)
	st.sessions[userID] = s
	return s
}

// Replace discards any existing session for userID and installs a
// fresh one. Used when the user restarts topic selection: the session
// is fully replaced, never merged.
func (st *Store) Replace(userID string) *Session {
	st.mu.Lock()
	defer st.mu.Unlock()
	s := New(userID)
	st.sessions[userID] = s
	return s
}

// Len returns the number of live sessions.
func (st *Store) Len() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.sessions)
}

package memory

import "sync"

// SessionLocker serializes turns for the same session id. Two concurrent
// turns would otherwise race on the session's read-modify-write cycle and
// lose cart updates. Locks are independent per session; no cross-session
// ordering is implied.
//
// Mutexes are never evicted, so the map grows with the number of distinct
// session ids seen by this process. At one sync.Mutex per session that is
// acceptable for the expected traffic; revisit if sessions ever gain a
// deletion path.
type SessionLocker struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewSessionLocker() *SessionLocker {
	return &SessionLocker{
		locks: make(map[string]*sync.Mutex),
	}
}

func (l *SessionLocker) Lock(sessionId string) {
	l.mutexFor(sessionId).Lock()
}

func (l *SessionLocker) Unlock(sessionId string) {
	l.mutexFor(sessionId).Unlock()
}

func (l *SessionLocker) mutexFor(sessionId string) *sync.Mutex {
	l.mu.Lock()
	defer l.mu.Unlock()
	m, ok := l.locks[sessionId]
	if !ok {
		m = &sync.Mutex{}
		l.locks[sessionId] = m
	}
	return m
}

package workspace

import (
    "errors"
    "sync"
    "time"

    "github.com/google/uuid"
)

var ErrSessionNotFound = errors.New("session not found")

// Store keeps workspaces in memory keyed by session ID.
type Store struct {
    mu       sync.RWMutex
    sessions map[string]*Workspace
}

func NewStore() *Store {
    return &Store{sessions: map[string]*Workspace{}}
}

// Create starts a new session and returns its ID.
func (s *Store) Create() (string, *Workspace) {
    id := uuid.NewString()
    w := New()
    s.mu.Lock()
    s.sessions[id] = w
    s.mu.Unlock()
    return id, w
}

func (s *Store) Get(id string) (*Workspace, error) {
    s.mu.RLock()
    w, ok := s.sessions[id]
    s.mu.RUnlock()
    if !ok {
        return nil, ErrSessionNotFound
    }
    return w, nil
}

func (s *Store) Delete(id string) {
    s.mu.Lock()
    delete(s.sessions, id)
    s.mu.Unlock()
}

func (s *Store) Len() int {
    s.mu.RLock()
    defer s.mu.RUnlock()
    return len(s.sessions)
}

// Sweep drops sessions idle for longer than maxIdle and returns how many went.
func (s *Store) Sweep(maxIdle time.Duration) int {
    cutoff := time.Now().Add(-maxIdle)
    s.mu.Lock()
    defer s.mu.Unlock()
    n := 0
    for id, w := range s.sessions {
        if w.idleSince().Before(cutoff) {
            delete(s.sessions, id)
            n++
        }
    }
    return n
}

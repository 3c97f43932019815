// Package session holds the single operator session: the bearer token and
// user profile for the catalogue API, mirrored to a local sqlite store so a
// console restart does not log the operator out. Mutation goes through the
// lifecycle operations only; nothing else writes session state.
package session

import (
	"encoding/json"
	"sync"

	"github.com/gTurboflex/supermarket-console/internal/domain"
)

type Session struct {
	mu    sync.RWMutex
	token string
	user  *domain.User

	// editTarget is the product id of the one in-progress edit. Starting a
	// second edit overwrites it; logout and 401 handling reset it.
	editTarget int

	store *Store
}

func New(store *Store) *Session {
	return &Session{store: store}
}

// Load restores a persisted session. Partial or unreadable rows are wiped
// and treated as logged out.
func (s *Session) Load() error {
	if s.store == nil {
		return nil
	}
	token, userJSON, ok, err := s.store.Load()
	if err != nil {
		return err
	}
	if !ok {
		return s.store.Clear()
	}
	var u domain.User
	if err := json.Unmarshal([]byte(userJSON), &u); err != nil {
		return s.store.Clear()
	}
	s.mu.Lock()
	s.token = token
	s.user = &u
	s.mu.Unlock()
	return nil
}

// Establish records a fresh login or registration, in memory and durably.
func (s *Session) Establish(token string, user *domain.User) error {
	s.mu.Lock()
	s.token = token
	s.user = user
	s.mu.Unlock()
	if s.store == nil {
		return nil
	}
	b, err := json.Marshal(user)
	if err != nil {
		return err
	}
	return s.store.Save(token, string(b))
}

// Clear drops token, user and the edit target, memory and store together.
// The transport calls this on any 401 before surfacing the error, so a
// caller observing the failure can assume the session is already gone.
func (s *Session) Clear() error {
	s.mu.Lock()
	s.token = ""
	s.user = nil
	s.editTarget = 0
	s.mu.Unlock()
	if s.store == nil {
		return nil
	}
	return s.store.Clear()
}

func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// User returns a copy of the profile, nil when logged out.
func (s *Session) User() *domain.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

func (s *Session) Authenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token != ""
}

// SetEditTarget remembers which product the edit form targets, discarding
// any previously remembered id.
func (s *Session) SetEditTarget(id int) {
	s.mu.Lock()
	s.editTarget = id
	s.mu.Unlock()
}

// EditTarget returns the remembered id, 0 when none.
func (s *Session) EditTarget() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.editTarget
}

func (s *Session) ClearEditTarget() {
	s.mu.Lock()
	s.editTarget = 0
	s.mu.Unlock()
}

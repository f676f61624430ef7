// Package store holds the in-memory activity catalog. It replaces a
// database layer: the catalog is seeded once at startup and only the
// participant lists of existing activities change afterwards.
package store

import (
	"errors"
	"sync"

	"github.com/mergington-hs/activities/internal/model"
)

// ErrActivityNotFound is returned when a requested activity does not exist.
var ErrActivityNotFound = errors.New("activity not found")

// ErrActivityFull is returned when an activity has no remaining capacity.
var ErrActivityFull = errors.New("activity is full")

// ErrAlreadySignedUp is returned when the same email signs up twice.
var ErrAlreadySignedUp = errors.New("student already signed up")

// ErrNotSignedUp is returned when unregistering an email that is not enrolled.
var ErrNotSignedUp = errors.New("student is not signed up for this activity")

// Store owns the catalog and guards every read-check-mutate sequence
// with a single RWMutex, so two concurrent signups can never both pass
// the capacity or duplicate check.
type Store struct {
	mu         sync.RWMutex
	activities map[string]*model.Activity
}

// New builds a Store from the given activities. Participant slices are
// copied so callers cannot alias internal state.
func New(activities ...model.Activity) *Store {
	catalog := make(map[string]*model.Activity, len(activities))
	for _, a := range activities {
		a := a // per-iteration copy; &a below must not alias across iterations under go <1.22
		a.Participants = append([]string{}, a.Participants...)
		catalog[a.Name] = &a
	}
	return &Store{activities: catalog}
}

// List returns a snapshot of the whole catalog keyed by activity name.
// Participant slices are deep-copied.
func (s *Store) List() map[string]model.Activity {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[string]model.Activity, len(s.activities))
	for name, a := range s.activities {
		cp := *a
		cp.Participants = append([]string{}, a.Participants...)
		out[name] = cp
	}
	return out
}

// Get returns a snapshot of a single activity.
func (s *Store) Get(name string) (model.Activity, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	a, ok := s.activities[name]
	if !ok {
		return model.Activity{}, false
	}
	cp := *a
	cp.Participants = append([]string{}, a.Participants...)
	return cp, true
}

// Exists reports whether the activity is in the catalog.
func (s *Store) Exists(name string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.activities[name]
	return ok
}

// Signup appends email to the activity's participant list. The
// duplicate and capacity checks run under the write lock together with
// the append, so the operation is atomic.
func (s *Store) Signup(name, email string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.activities[name]
	if !ok {
		return ErrActivityNotFound
	}
	if a.HasParticipant(email) {
		return ErrAlreadySignedUp
	}
	if a.IsFull() {
		return ErrActivityFull
	}
	a.Participants = append(a.Participants, email)
	return nil
}

// Unregister removes email from the activity's participant list.
func (s *Store) Unregister(name, email string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.activities[name]
	if !ok {
		return ErrActivityNotFound
	}
	for i, p := range a.Participants {
		if p == email {
			a.Participants = append(a.Participants[:i], a.Participants[i+1:]...)
			return nil
		}
	}
	return ErrNotSignedUp
}

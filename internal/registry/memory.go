// Package registry provides the in-memory activity store.
package registry

import (
	"context"
	"sync"

	"example.com/signup/internal/domain"
)

// MemoryStore keeps the activity registry in process memory. All mutations
// are serialized behind the store lock, so concurrent callers see
// linearizable check-then-mutate semantics.
type MemoryStore struct {
	mu         sync.RWMutex
	activities map[string]*domain.Activity
}

// NewMemoryStore constructs a store populated with the given activities.
func NewMemoryStore(seed []domain.Activity) *MemoryStore {
	store := &MemoryStore{activities: make(map[string]*domain.Activity, len(seed))}
	for _, activity := range seed {
		copied := activity
		copied.Participants = append([]string{}, activity.Participants...)
		store.activities[copied.Name] = &copied
	}
	return store
}

// List returns a deep snapshot of the registry. Callers may mutate the
// result freely without affecting registry state.
func (s *MemoryStore) List(ctx context.Context) (map[string]domain.Activity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[string]domain.Activity, len(s.activities))
	for name, activity := range s.activities {
		copied := *activity
		copied.Participants = append([]string{}, activity.Participants...)
		out[name] = copied
	}
	return out, nil
}

// Signup appends email to the activity's roster.
func (s *MemoryStore) Signup(ctx context.Context, activity, email string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	record, ok := s.activities[activity]
	if !ok {
		return domain.ErrActivityNotFound
	}
	for _, existing := range record.Participants {
		if existing == email {
			return domain.ErrAlreadySignedUp
		}
	}
	record.Participants = append(record.Participants, email)
	return nil
}

// Unregister removes email from the activity's roster, preserving the
// order of the remaining participants.
func (s *MemoryStore) Unregister(ctx context.Context, activity, email string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	record, ok := s.activities[activity]
	if !ok {
		return domain.ErrActivityNotFound
	}
	for i, existing := range record.Participants {
		if existing == email {
			record.Participants = append(record.Participants[:i], record.Participants[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotRegistered
}

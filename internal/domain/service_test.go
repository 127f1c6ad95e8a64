package domain

import (
	"context"
	"errors"
	"io"
	"log"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSignupPublishesRosterChange(t *testing.T) {
	store := &stubStore{}
	publisher := &stubPublisher{}
	service := NewService(store, WithPublisher(publisher))

	err := service.Signup(context.Background(), "Chess Club", "newstudent@mergington.edu")
	require.NoError(t, err)

	require.Len(t, publisher.changes, 1)
	change := publisher.changes[0]
	require.Equal(t, "Chess Club", change.Activity)
	require.Equal(t, "newstudent@mergington.edu", change.Email)
	require.Equal(t, ActionSignedUp, change.Action)
	require.False(t, change.OccurredAt.IsZero())
}

func TestUnregisterPublishesRosterChange(t *testing.T) {
	store := &stubStore{}
	publisher := &stubPublisher{}
	service := NewService(store, WithPublisher(publisher))

	err := service.Unregister(context.Background(), "Chess Club", "michael@mergington.edu")
	require.NoError(t, err)

	require.Len(t, publisher.changes, 1)
	require.Equal(t, ActionUnregistered, publisher.changes[0].Action)
}

func TestStoreFailureSkipsPublish(t *testing.T) {
	store := &stubStore{signupErr: ErrAlreadySignedUp}
	publisher := &stubPublisher{}
	service := NewService(store, WithPublisher(publisher))

	err := service.Signup(context.Background(), "Chess Club", "michael@mergington.edu")
	require.ErrorIs(t, err, ErrAlreadySignedUp)
	require.Empty(t, publisher.changes)
}

func TestPublishFailureDoesNotFailOperation(t *testing.T) {
	store := &stubStore{}
	publisher := &stubPublisher{err: errors.New("broker unavailable")}
	service := NewService(store,
		WithPublisher(publisher),
		WithLogger(log.New(io.Discard, "", 0)),
	)

	err := service.Signup(context.Background(), "Chess Club", "newstudent@mergington.edu")
	require.NoError(t, err)
	require.Len(t, publisher.changes, 1)
}

func TestListActivitiesReflectsStore(t *testing.T) {
	store := &stubStore{
		activities: map[string]Activity{
			"Chess Club": {
				Name:            "Chess Club",
				Description:     "Learn strategies and compete in chess tournaments",
				Schedule:        "Fridays, 3:30 PM - 5:00 PM",
				MaxParticipants: 12,
				Participants:    []string{"michael@mergington.edu"},
			},
		},
	}
	service := NewService(store)

	activities, err := service.ListActivities(context.Background())
	require.NoError(t, err)
	require.Len(t, activities, 1)
	require.Equal(t, 12, activities["Chess Club"].MaxParticipants)
}

type stubStore struct {
	activities    map[string]Activity
	signupErr     error
	unregisterErr error
}

func (s *stubStore) List(ctx context.Context) (map[string]Activity, error) {
	return s.activities, nil
}

func (s *stubStore) Signup(ctx context.Context, activity, email string) error {
	return s.signupErr
}

func (s *stubStore) Unregister(ctx context.Context, activity, email string) error {
	return s.unregisterErr
}

type stubPublisher struct {
	changes []RosterChange
	err     error
}

func (p *stubPublisher) PublishRosterChanged(ctx context.Context, change RosterChange) error {
	p.changes = append(p.changes, change)
	return p.err
}

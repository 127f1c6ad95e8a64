// Package domain defines the business logic for the signup service.
package domain

import (
	"context"
	"errors"
	"log"
	"time"

	"example.com/signup/internal/observability"
)

var (
	// ErrActivityNotFound is returned when the activity name is not a registry key.
	ErrActivityNotFound = errors.New("activity not found")
	// ErrAlreadySignedUp indicates the email is already on the activity's roster.
	ErrAlreadySignedUp = errors.New("participant already signed up")
	// ErrNotRegistered indicates the email is not on the activity's roster.
	ErrNotRegistered = errors.New("participant not registered")
)

// Roster change actions carried on published events.
const (
	ActionSignedUp     = "signed_up"
	ActionUnregistered = "unregistered"
)

// RosterStore captures registry operations. Implementations must make each
// check-then-mutate step atomic per activity.
type RosterStore interface {
	List(ctx context.Context) (map[string]Activity, error)
	Signup(ctx context.Context, activity, email string) error
	Unregister(ctx context.Context, activity, email string) error
}

// RosterChange describes a committed roster mutation.
type RosterChange struct {
	Activity   string
	Email      string
	Action     string
	OccurredAt time.Time
}

// ChangePublisher emits roster changes to downstream consumers.
type ChangePublisher interface {
	PublishRosterChanged(ctx context.Context, change RosterChange) error
}

// Service orchestrates registry workflows.
type Service struct {
	store     RosterStore
	publisher ChangePublisher
	logger    *log.Logger
}

// Option configures optional Service collaborators.
type Option func(*Service)

// WithPublisher attaches a roster-change publisher.
func WithPublisher(publisher ChangePublisher) Option {
	return func(s *Service) { s.publisher = publisher }
}

// WithLogger overrides the default logger.
func WithLogger(logger *log.Logger) Option {
	return func(s *Service) { s.logger = logger }
}

// NewService constructs a Service.
func NewService(store RosterStore, opts ...Option) *Service {
	s := &Service{store: store, logger: log.Default()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ListActivities returns a snapshot of the registry reflecting all prior
// mutations.
func (s *Service) ListActivities(ctx context.Context) (map[string]Activity, error) {
	return s.store.List(ctx)
}

// Signup adds email to the activity's roster.
func (s *Service) Signup(ctx context.Context, activity, email string) error {
	if err := s.store.Signup(ctx, activity, email); err != nil {
		observability.RecordRejection("signup", rejectionReason(err))
		return err
	}

	observability.RecordSignup(activity)
	s.publish(ctx, RosterChange{
		Activity:   activity,
		Email:      email,
		Action:     ActionSignedUp,
		OccurredAt: time.Now().UTC(),
	})
	return nil
}

// Unregister removes email from the activity's roster. Not idempotent: a
// second call for the same email fails with ErrNotRegistered.
func (s *Service) Unregister(ctx context.Context, activity, email string) error {
	if err := s.store.Unregister(ctx, activity, email); err != nil {
		observability.RecordRejection("unregister", rejectionReason(err))
		return err
	}

	observability.RecordUnregistration(activity)
	s.publish(ctx, RosterChange{
		Activity:   activity,
		Email:      email,
		Action:     ActionUnregistered,
		OccurredAt: time.Now().UTC(),
	})
	return nil
}

// publish is best-effort: eventing is not part of the signup contract, so
// failures are logged rather than surfaced to the caller.
func (s *Service) publish(ctx context.Context, change RosterChange) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.PublishRosterChanged(ctx, change); err != nil {
		s.logger.Printf("failed to publish roster change for %q: %v", change.Activity, err)
	}
}

func rejectionReason(err error) string {
	switch {
	case errors.Is(err, ErrActivityNotFound):
		return "not_found"
	case errors.Is(err, ErrAlreadySignedUp), errors.Is(err, ErrNotRegistered):
		return "conflict"
	default:
		return "error"
	}
}

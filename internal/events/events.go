// Package events publishes roster changes for downstream consumers.
package events

import "time"

// RosterChanged is the wire payload emitted after a committed roster
// mutation.
type RosterChanged struct {
	EventID    string    `json:"event_id"`
	Activity   string    `json:"activity"`
	Email      string    `json:"email"`
	Action     string    `json:"action"`
	OccurredAt time.Time `json:"occurred_at"`
}

// EventTypeRosterChanged is carried as a message header so consumers can
// route without decoding the payload.
const EventTypeRosterChanged = "activity.roster_changed"

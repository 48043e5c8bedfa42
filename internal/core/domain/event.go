package domain

import "time"

// Event is a hospitality event an organiser is hiring staff for.
type Event struct {
	ID          string    `json:"id" bson:"_id"`
	OrganiserID string    `json:"organiser_id,omitempty" bson:"organiser_id,omitempty"`
	Name        string    `json:"name" bson:"name"`
	EventDate   time.Time `json:"event_date" bson:"event_date"`
	Location    string    `json:"location" bson:"location"`
	Notes       string    `json:"notes,omitempty" bson:"notes,omitempty"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at"`
}

// Position is one staffing line on an event, e.g. 4 waiters.
type Position struct {
	ID       string `json:"id" bson:"_id"`
	EventID  string `json:"event_id" bson:"event_id"`
	Title    string `json:"title" bson:"title"`
	Quantity int    `json:"quantity" bson:"quantity"`
}

// AuthOutcome classifies a login attempt for the audit trail.
type AuthOutcome string

const (
	AuthOutcomeSuccess      AuthOutcome = "success"
	AuthOutcomeFailed       AuthOutcome = "authentication_failed"
	AuthOutcomeMissingRole  AuthOutcome = "missing_role"
	AuthOutcomeRoleMismatch AuthOutcome = "role_mismatch"
)

// AuthEvent records a single login attempt.
type AuthEvent struct {
	Email        string
	AccountID    string
	AssertedRole Role
	Outcome      AuthOutcome
	Timestamp    time.Time
}

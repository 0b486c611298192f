package models

import (
	"time"
)

// Pairing is one santa-to-recipient edge in an event. The full set of
// pairings for an event forms a single derangement: every participant
// gives exactly once, receives exactly once, and never draws themselves.
type Pairing struct {
	// ID is the unique identifier for the pairing
	ID string

	// EventID is the event the pairing belongs to
	EventID string

	// SantaID is the participant ID of the gift giver
	SantaID string

	// RecipientID is the participant ID of the gift receiver
	RecipientID string

	// NotifiedAt is when the santa's assignment DM succeeded, nil until then
	NotifiedAt *time.Time

	// CreatedAt is when the pairing was drawn
	CreatedAt time.Time
}

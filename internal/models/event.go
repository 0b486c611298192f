package models

import (
	"time"
)

// EventStatus represents the current stage of a Ratmas event's lifecycle
type EventStatus string

const (
	// EventStatusOpen indicates signups are open
	EventStatusOpen EventStatus = "open"

	// EventStatusLocked indicates signups are closed but pairings have not been drawn
	EventStatusLocked EventStatus = "locked"

	// EventStatusMatched indicates pairings have been drawn
	EventStatusMatched EventStatus = "matched"

	// EventStatusNotified indicates every santa has received their assignment DM
	EventStatusNotified EventStatus = "notified"

	// EventStatusCompleted indicates the event has been revealed and closed
	EventStatusCompleted EventStatus = "completed"

	// EventStatusCancelled indicates the event was called off
	EventStatusCancelled EventStatus = "cancelled"
)

// statusTransitions is the one source of truth for legal status changes.
// Locked may revert to open so signups can be reopened before matching.
var statusTransitions = map[EventStatus][]EventStatus{
	EventStatusOpen:      {EventStatusLocked, EventStatusCancelled},
	EventStatusLocked:    {EventStatusMatched, EventStatusOpen, EventStatusCancelled},
	EventStatusMatched:   {EventStatusNotified, EventStatusCancelled},
	EventStatusNotified:  {EventStatusCompleted, EventStatusCancelled},
	EventStatusCompleted: {},
	EventStatusCancelled: {},
}

// CanTransitionTo reports whether a status change from s to next is legal
func (s EventStatus) CanTransitionTo(next EventStatus) bool {
	for _, allowed := range statusTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// ValidNextStatuses returns the statuses reachable from s
func (s EventStatus) ValidNextStatuses() []EventStatus {
	return statusTransitions[s]
}

// IsTerminal reports whether the event can no longer change status
func (s EventStatus) IsTerminal() bool {
	return len(statusTransitions[s]) == 0
}

// IsOpen reports whether signups are open
func (s EventStatus) IsOpen() bool {
	return s == EventStatusOpen
}

// IsMatched reports whether pairings have been drawn
func (s EventStatus) IsMatched() bool {
	return s == EventStatusMatched
}

// Event represents one Ratmas event in a guild
type Event struct {
	// ID is the unique identifier for the event
	ID string

	// GuildID is the Discord guild the event belongs to. At most one
	// non-terminal event may exist per guild.
	GuildID string

	// Status is the current lifecycle stage
	Status EventStatus

	// RoleID is the Discord role linking members to the participant pool
	RoleID string

	// StartDate is when the event kicks off
	StartDate time.Time

	// PurchaseDeadline is when gifts must be bought by
	PurchaseDeadline time.Time

	// RevealDate is when santas are revealed
	RevealDate time.Time

	// EndDate is when the event wraps up, if set
	EndDate *time.Time

	// Timezone is the IANA timezone name used when rendering dates
	Timezone string

	// AnnounceChannelID is the channel for event announcements, if set
	AnnounceChannelID string

	// CreatedAt is when the event was created
	CreatedAt time.Time

	// UpdatedAt is when the event was last updated
	UpdatedAt time.Time
}

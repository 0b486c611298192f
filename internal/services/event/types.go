package event

import (
	"time"

	"ratmas/internal/common/clock"
	"ratmas/internal/common/uuid"
	"ratmas/internal/models"
	eventRepo "ratmas/internal/repositories/event"
	pairingRepo "ratmas/internal/repositories/pairing"
	participantRepo "ratmas/internal/repositories/participant"
	"ratmas/internal/services/messaging"
	"ratmas/internal/shuffle"
)

// defaultMinParticipants is the smallest pool a derangement makes sense for
const defaultMinParticipants = 3

// Config holds configuration for the event service
type Config struct {
	// MinParticipants required before pairings can be drawn
	MinParticipants int

	// Repository dependencies
	EventRepo       eventRepo.Repository
	ParticipantRepo participantRepo.Repository
	PairingRepo     pairingRepo.Repository

	// Service dependencies
	Shuffler         shuffle.Shuffler
	Clock            clock.Clock
	UUIDGenerator    uuid.UUID
	Messenger        Messenger
	MemberFetcher    MemberFetcher
	MessagingService messaging.Service
}

// CreateEventInput contains parameters for opening a new event
type CreateEventInput struct {
	// GuildID is the Discord guild the event belongs to
	GuildID string

	// RoleID is the role linking members to the participant pool
	RoleID string

	// StartDate is when the event kicks off
	StartDate time.Time

	// PurchaseDeadline is when gifts must be bought by
	PurchaseDeadline time.Time

	// RevealDate is when santas are revealed
	RevealDate time.Time

	// EndDate is when the event wraps up, optional
	EndDate *time.Time

	// Timezone is the IANA timezone used when rendering dates
	Timezone string

	// AnnounceChannelID is the channel for announcements, optional
	AnnounceChannelID string
}

// CreateEventOutput contains the created event
type CreateEventOutput struct {
	Event *models.Event
}

// GetEventInput contains parameters for retrieving an event
type GetEventInput struct {
	EventID string
}

// GetEventOutput contains the retrieved event
type GetEventOutput struct {
	Event *models.Event
}

// GetActiveEventInput contains parameters for retrieving a guild's event
type GetActiveEventInput struct {
	GuildID string
}

// GetActiveEventOutput contains the guild's active event
type GetActiveEventOutput struct {
	Event *models.Event
}

// UpdateEventStatusInput contains parameters for a lifecycle transition
type UpdateEventStatusInput struct {
	EventID   string
	NewStatus models.EventStatus
}

// UpdateEventStatusOutput contains the updated event
type UpdateEventStatusOutput struct {
	Event *models.Event
}

// AddParticipantInput contains parameters for enrolling a user
type AddParticipantInput struct {
	EventID     string
	UserID      string
	DisplayName string

	// WishlistURL is optional
	WishlistURL string
}

// AddParticipantOutput contains the enrollment record
type AddParticipantOutput struct {
	Participant *models.Participant
}

// RemoveParticipantInput contains parameters for withdrawing a user
type RemoveParticipantInput struct {
	EventID string
	UserID  string
}

// RemoveParticipantOutput contains the result of withdrawing a user
type RemoveParticipantOutput struct {
	Success bool
}

// UpdateParticipantInput contains the fields to update. Nil fields are
// left untouched.
type UpdateParticipantInput struct {
	EventID     string
	UserID      string
	DisplayName *string
	WishlistURL *string
}

// UpdateParticipantOutput contains the updated enrollment record
type UpdateParticipantOutput struct {
	Participant *models.Participant
}

// ListParticipantsInput contains parameters for listing participants
type ListParticipantsInput struct {
	EventID string
}

// ListParticipantsOutput contains the event's participants in join order
type ListParticipantsOutput struct {
	Participants []*models.Participant
}

// SyncParticipantsInput contains parameters for a role sync
type SyncParticipantsInput struct {
	EventID string
}

// SyncParticipantsOutput contains the result of a role sync
type SyncParticipantsOutput struct {
	// Added is the number of newly enrolled members
	Added int
}

// GeneratePairingsInput contains parameters for drawing pairings
type GeneratePairingsInput struct {
	EventID string
}

// GeneratePairingsOutput contains the result of drawing pairings
type GeneratePairingsOutput struct {
	// PairingsCreated is the size of the new pairing set
	PairingsCreated int
}

// NotifyPairingsInput contains parameters for the notification run
type NotifyPairingsInput struct {
	EventID string
}

// NotifyPairingsOutput contains the result of one notification run
type NotifyPairingsOutput struct {
	// Sent is the number of DMs delivered in this run, not the cumulative total
	Sent int

	// Outstanding is the number of pairings still awaiting a successful DM
	Outstanding int

	// EventNotified reports whether the event advanced to the notified status
	EventNotified bool
}

// GetPairingForSantaInput identifies a santa by user
type GetPairingForSantaInput struct {
	EventID string
	UserID  string
}

// GetPairingForSantaOutput contains the santa's pairing and recipient
type GetPairingForSantaOutput struct {
	Pairing   *models.Pairing
	Recipient *models.Participant
}

// RelayAnonymousMessageInput contains a santa's note for their recipient
type RelayAnonymousMessageInput struct {
	EventID     string
	SantaUserID string
	Text        string
}

// RelayAnonymousMessageOutput contains the result of relaying a note
type RelayAnonymousMessageOutput struct {
	Success bool
}

// RevealPairingsInput contains parameters for completing an event
type RevealPairingsInput struct {
	EventID string
}

// RevealPairingsOutput contains the reveal post and the completed event
type RevealPairingsOutput struct {
	Message string
	Event   *models.Event
}

// PurgeEventInput contains parameters for hard-deleting an event
type PurgeEventInput struct {
	EventID string
}

// PurgeEventOutput contains the result of purging an event
type PurgeEventOutput struct {
	Success bool
}

package event

import "context"

// Service defines the interface for Ratmas event operations. It is the
// single entry point command handlers use.
type Service interface {
	// CreateEvent opens a new event for a guild
	CreateEvent(ctx context.Context, input *CreateEventInput) (*CreateEventOutput, error)

	// GetEvent retrieves an event by ID
	GetEvent(ctx context.Context, input *GetEventInput) (*GetEventOutput, error)

	// GetActiveEvent retrieves a guild's current non-terminal event
	GetActiveEvent(ctx context.Context, input *GetActiveEventInput) (*GetActiveEventOutput, error)

	// UpdateEventStatus applies a lifecycle transition after validating it
	UpdateEventStatus(ctx context.Context, input *UpdateEventStatusInput) (*UpdateEventStatusOutput, error)

	// AddParticipant enrolls a user while signups are open
	AddParticipant(ctx context.Context, input *AddParticipantInput) (*AddParticipantOutput, error)

	// RemoveParticipant withdraws a user while signups are open
	RemoveParticipant(ctx context.Context, input *RemoveParticipantInput) (*RemoveParticipantOutput, error)

	// UpdateParticipant updates a participant's display name or wishlist
	UpdateParticipant(ctx context.Context, input *UpdateParticipantInput) (*UpdateParticipantOutput, error)

	// ListParticipants retrieves an event's participants in join order
	ListParticipants(ctx context.Context, input *ListParticipantsInput) (*ListParticipantsOutput, error)

	// SyncParticipants enrolls role holders who haven't joined yet
	SyncParticipants(ctx context.Context, input *SyncParticipantsInput) (*SyncParticipantsOutput, error)

	// GeneratePairings draws the santa/recipient derangement for a locked event
	GeneratePairings(ctx context.Context, input *GeneratePairingsInput) (*GeneratePairingsOutput, error)

	// NotifyPairings DMs every santa their assignment; safe to re-run
	NotifyPairings(ctx context.Context, input *NotifyPairingsInput) (*NotifyPairingsOutput, error)

	// GetPairingForSanta resolves the recipient a user is gifting
	GetPairingForSanta(ctx context.Context, input *GetPairingForSantaInput) (*GetPairingForSantaOutput, error)

	// RelayAnonymousMessage forwards a santa's note to their recipient
	// without revealing the sender
	RelayAnonymousMessage(ctx context.Context, input *RelayAnonymousMessageInput) (*RelayAnonymousMessageOutput, error)

	// RevealPairings completes the event and returns the reveal post
	RevealPairings(ctx context.Context, input *RevealPairingsInput) (*RevealPairingsOutput, error)

	// PurgeEvent hard-deletes an event with its participants and pairings
	PurgeEvent(ctx context.Context, input *PurgeEventInput) (*PurgeEventOutput, error)
}

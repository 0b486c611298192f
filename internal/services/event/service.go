package event

import (
	"context"
	"errors"
	"fmt"
	"log"

	"ratmas/internal/common/clock"
	"ratmas/internal/common/uuid"
	"ratmas/internal/models"
	eventRepo "ratmas/internal/repositories/event"
	pairingRepo "ratmas/internal/repositories/pairing"
	participantRepo "ratmas/internal/repositories/participant"
	"ratmas/internal/services/messaging"
	"ratmas/internal/shuffle"
)

// service implements the Service interface
type service struct {
	minParticipants int
	eventRepo       eventRepo.Repository
	participantRepo participantRepo.Repository
	pairingRepo     pairingRepo.Repository
	shuffler        shuffle.Shuffler
	clock           clock.Clock
	uuider          uuid.UUID
	messenger       Messenger
	memberFetcher   MemberFetcher
	messagingSvc    messaging.Service
}

// New creates a new event service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.EventRepo == nil {
		return nil, ErrNilEventRepo
	}
	if cfg.ParticipantRepo == nil {
		return nil, ErrNilParticipantRepo
	}
	if cfg.PairingRepo == nil {
		return nil, ErrNilPairingRepo
	}
	if cfg.Shuffler == nil {
		return nil, ErrNilShuffler
	}
	if cfg.Clock == nil {
		return nil, ErrNilClock
	}
	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}
	if cfg.Messenger == nil {
		return nil, ErrNilMessenger
	}
	if cfg.MemberFetcher == nil {
		return nil, ErrNilMemberFetcher
	}
	if cfg.MessagingService == nil {
		return nil, ErrNilMessagingService
	}

	minParticipants := cfg.MinParticipants
	if minParticipants <= 0 {
		minParticipants = defaultMinParticipants
	}

	return &service{
		minParticipants: minParticipants,
		eventRepo:       cfg.EventRepo,
		participantRepo: cfg.ParticipantRepo,
		pairingRepo:     cfg.PairingRepo,
		shuffler:        cfg.Shuffler,
		clock:           cfg.Clock,
		uuider:          cfg.UUIDGenerator,
		messenger:       cfg.Messenger,
		memberFetcher:   cfg.MemberFetcher,
		messagingSvc:    cfg.MessagingService,
	}, nil
}

// getEvent loads an event, mapping the repository's not-found error
func (s *service) getEvent(ctx context.Context, eventID string) (*models.Event, error) {
	event, err := s.eventRepo.GetEvent(ctx, &eventRepo.GetEventInput{
		EventID: eventID,
	})
	if err != nil {
		if errors.Is(err, eventRepo.ErrEventNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, err
	}
	return event, nil
}

// transition mutates the event's status after validating the change against
// the transition table. Callers must persist the event afterwards.
func (s *service) transition(event *models.Event, next models.EventStatus) error {
	if !event.Status.CanTransitionTo(next) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, event.Status, next)
	}

	event.Status = next
	event.UpdatedAt = s.clock.Now()
	return nil
}

// CreateEvent opens a new event for a guild
func (s *service) CreateEvent(ctx context.Context, input *CreateEventInput) (*CreateEventOutput, error) {
	if input == nil || input.GuildID == "" {
		return nil, errors.New("input and guild ID cannot be empty")
	}

	// One non-terminal event per guild
	existing, err := s.eventRepo.GetActiveEventByGuild(ctx, &eventRepo.GetActiveEventByGuildInput{
		GuildID: input.GuildID,
	})
	if err == nil && existing != nil {
		return nil, fmt.Errorf("%w: event %s has status %s", ErrEventAlreadyActive, existing.ID, existing.Status)
	}
	if err != nil && !errors.Is(err, eventRepo.ErrEventNotFound) {
		return nil, err
	}

	now := s.clock.Now()
	timezone := input.Timezone
	if timezone == "" {
		timezone = "UTC"
	}

	event := &models.Event{
		ID:                s.uuider.NewUUID(),
		GuildID:           input.GuildID,
		Status:            models.EventStatusOpen,
		RoleID:            input.RoleID,
		StartDate:         input.StartDate,
		PurchaseDeadline:  input.PurchaseDeadline,
		RevealDate:        input.RevealDate,
		EndDate:           input.EndDate,
		Timezone:          timezone,
		AnnounceChannelID: input.AnnounceChannelID,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	if err := s.eventRepo.SaveEvent(ctx, &eventRepo.SaveEventInput{Event: event}); err != nil {
		return nil, err
	}

	return &CreateEventOutput{Event: event}, nil
}

// GetEvent retrieves an event by ID
func (s *service) GetEvent(ctx context.Context, input *GetEventInput) (*GetEventOutput, error) {
	if input == nil || input.EventID == "" {
		return nil, errors.New("input and event ID cannot be empty")
	}

	event, err := s.getEvent(ctx, input.EventID)
	if err != nil {
		return nil, err
	}

	return &GetEventOutput{Event: event}, nil
}

// GetActiveEvent retrieves a guild's current non-terminal event
func (s *service) GetActiveEvent(ctx context.Context, input *GetActiveEventInput) (*GetActiveEventOutput, error) {
	if input == nil || input.GuildID == "" {
		return nil, errors.New("input and guild ID cannot be empty")
	}

	event, err := s.eventRepo.GetActiveEventByGuild(ctx, &eventRepo.GetActiveEventByGuildInput{
		GuildID: input.GuildID,
	})
	if err != nil {
		if errors.Is(err, eventRepo.ErrEventNotFound) {
			return nil, ErrNoActiveEvent
		}
		return nil, err
	}

	return &GetActiveEventOutput{Event: event}, nil
}

// UpdateEventStatus applies a lifecycle transition after validating it
func (s *service) UpdateEventStatus(ctx context.Context, input *UpdateEventStatusInput) (*UpdateEventStatusOutput, error) {
	if input == nil || input.EventID == "" {
		return nil, errors.New("input and event ID cannot be empty")
	}

	event, err := s.getEvent(ctx, input.EventID)
	if err != nil {
		return nil, err
	}

	if err := s.transition(event, input.NewStatus); err != nil {
		return nil, err
	}

	if err := s.eventRepo.SaveEvent(ctx, &eventRepo.SaveEventInput{Event: event}); err != nil {
		return nil, err
	}

	return &UpdateEventStatusOutput{Event: event}, nil
}

// AddParticipant enrolls a user while signups are open
func (s *service) AddParticipant(ctx context.Context, input *AddParticipantInput) (*AddParticipantOutput, error) {
	if input == nil || input.EventID == "" || input.UserID == "" {
		return nil, errors.New("input, event ID and user ID cannot be empty")
	}

	event, err := s.getEvent(ctx, input.EventID)
	if err != nil {
		return nil, err
	}

	if !event.Status.IsOpen() {
		return nil, fmt.Errorf("%w: cannot join event with status: %s", ErrInvalidEventStatus, event.Status)
	}

	existing, err := s.participantRepo.GetParticipantByEventAndUser(ctx, &participantRepo.GetParticipantByEventAndUserInput{
		EventID: input.EventID,
		UserID:  input.UserID,
	})
	if err == nil && existing != nil {
		return nil, fmt.Errorf("%w: %s", ErrAlreadyParticipant, input.UserID)
	}
	if err != nil && !errors.Is(err, participantRepo.ErrParticipantNotFound) {
		return nil, err
	}

	now := s.clock.Now()
	participant := &models.Participant{
		ID:          s.uuider.NewUUID(),
		EventID:     input.EventID,
		UserID:      input.UserID,
		DisplayName: input.DisplayName,
		WishlistURL: input.WishlistURL,
		JoinedAt:    now,
		UpdatedAt:   now,
	}

	if err := s.participantRepo.SaveParticipant(ctx, &participantRepo.SaveParticipantInput{Participant: participant}); err != nil {
		return nil, err
	}

	return &AddParticipantOutput{Participant: participant}, nil
}

// RemoveParticipant withdraws a user while signups are open
func (s *service) RemoveParticipant(ctx context.Context, input *RemoveParticipantInput) (*RemoveParticipantOutput, error) {
	if input == nil || input.EventID == "" || input.UserID == "" {
		return nil, errors.New("input, event ID and user ID cannot be empty")
	}

	event, err := s.getEvent(ctx, input.EventID)
	if err != nil {
		return nil, err
	}

	if !event.Status.IsOpen() {
		return nil, fmt.Errorf("%w: cannot leave event with status: %s", ErrInvalidEventStatus, event.Status)
	}

	participant, err := s.participantRepo.GetParticipantByEventAndUser(ctx, &participantRepo.GetParticipantByEventAndUserInput{
		EventID: input.EventID,
		UserID:  input.UserID,
	})
	if err != nil {
		if errors.Is(err, participantRepo.ErrParticipantNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrNotAParticipant, input.UserID)
		}
		return nil, err
	}

	if err := s.participantRepo.DeleteParticipant(ctx, &participantRepo.DeleteParticipantInput{
		ParticipantID: participant.ID,
	}); err != nil {
		return nil, err
	}

	return &RemoveParticipantOutput{Success: true}, nil
}

// UpdateParticipant updates a participant's display name or wishlist. No
// status gate: wishlists may change right up until the reveal.
func (s *service) UpdateParticipant(ctx context.Context, input *UpdateParticipantInput) (*UpdateParticipantOutput, error) {
	if input == nil || input.EventID == "" || input.UserID == "" {
		return nil, errors.New("input, event ID and user ID cannot be empty")
	}

	participant, err := s.participantRepo.GetParticipantByEventAndUser(ctx, &participantRepo.GetParticipantByEventAndUserInput{
		EventID: input.EventID,
		UserID:  input.UserID,
	})
	if err != nil {
		if errors.Is(err, participantRepo.ErrParticipantNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrNotAParticipant, input.UserID)
		}
		return nil, err
	}

	if input.DisplayName != nil {
		participant.DisplayName = *input.DisplayName
	}
	if input.WishlistURL != nil {
		participant.WishlistURL = *input.WishlistURL
	}
	participant.UpdatedAt = s.clock.Now()

	if err := s.participantRepo.SaveParticipant(ctx, &participantRepo.SaveParticipantInput{Participant: participant}); err != nil {
		return nil, err
	}

	return &UpdateParticipantOutput{Participant: participant}, nil
}

// ListParticipants retrieves an event's participants in join order
func (s *service) ListParticipants(ctx context.Context, input *ListParticipantsInput) (*ListParticipantsOutput, error) {
	if input == nil || input.EventID == "" {
		return nil, errors.New("input and event ID cannot be empty")
	}

	participants, err := s.participantRepo.ListParticipants(ctx, &participantRepo.ListParticipantsInput{
		EventID: input.EventID,
	})
	if err != nil {
		return nil, err
	}

	return &ListParticipantsOutput{Participants: participants}, nil
}

// SyncParticipants enrolls role holders who haven't joined yet. Adds are
// best-effort: one failed save is logged and skipped, not fatal.
func (s *service) SyncParticipants(ctx context.Context, input *SyncParticipantsInput) (*SyncParticipantsOutput, error) {
	if input == nil || input.EventID == "" {
		return nil, errors.New("input and event ID cannot be empty")
	}

	event, err := s.getEvent(ctx, input.EventID)
	if err != nil {
		return nil, err
	}

	if !event.Status.IsOpen() {
		return nil, fmt.Errorf("%w: cannot sync participants for event with status: %s", ErrInvalidEventStatus, event.Status)
	}

	fetched, err := s.memberFetcher.FetchMembersWithRole(ctx, &FetchMembersWithRoleInput{
		GuildID: event.GuildID,
		RoleID:  event.RoleID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch role members: %w", err)
	}

	existing, err := s.participantRepo.ListParticipants(ctx, &participantRepo.ListParticipantsInput{
		EventID: input.EventID,
	})
	if err != nil {
		return nil, err
	}

	enrolled := make(map[string]bool, len(existing))
	for _, p := range existing {
		enrolled[p.UserID] = true
	}

	added := 0
	for _, member := range fetched.Members {
		if enrolled[member.UserID] {
			continue
		}

		now := s.clock.Now()
		participant := &models.Participant{
			ID:          s.uuider.NewUUID(),
			EventID:     input.EventID,
			UserID:      member.UserID,
			DisplayName: member.DisplayName,
			JoinedAt:    now,
			UpdatedAt:   now,
		}

		if err := s.participantRepo.SaveParticipant(ctx, &participantRepo.SaveParticipantInput{Participant: participant}); err != nil {
			log.Printf("Failed to sync member %s into event %s: %v", member.UserID, input.EventID, err)
			continue
		}

		added++
	}

	return &SyncParticipantsOutput{Added: added}, nil
}

// PurgeEvent hard-deletes an event with its participants and pairings
func (s *service) PurgeEvent(ctx context.Context, input *PurgeEventInput) (*PurgeEventOutput, error) {
	if input == nil || input.EventID == "" {
		return nil, errors.New("input and event ID cannot be empty")
	}

	if _, err := s.getEvent(ctx, input.EventID); err != nil {
		return nil, err
	}

	if err := s.pairingRepo.DeletePairingsByEvent(ctx, &pairingRepo.DeletePairingsByEventInput{
		EventID: input.EventID,
	}); err != nil {
		return nil, err
	}

	if err := s.participantRepo.DeleteParticipantsByEvent(ctx, &participantRepo.DeleteParticipantsByEventInput{
		EventID: input.EventID,
	}); err != nil {
		return nil, err
	}

	if err := s.eventRepo.DeleteEvent(ctx, &eventRepo.DeleteEventInput{
		EventID: input.EventID,
	}); err != nil {
		return nil, err
	}

	return &PurgeEventOutput{Success: true}, nil
}

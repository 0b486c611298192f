package event

import (
	"context"
	"errors"
	"fmt"

	"ratmas/internal/models"
	eventRepo "ratmas/internal/repositories/event"
	pairingRepo "ratmas/internal/repositories/pairing"
	participantRepo "ratmas/internal/repositories/participant"
)

// GeneratePairings draws a fresh derangement over a locked event's
// participants and replaces any prior pairing set. On failure the event's
// status and stored pairings are left as they were.
func (s *service) GeneratePairings(ctx context.Context, input *GeneratePairingsInput) (*GeneratePairingsOutput, error) {
	if input == nil || input.EventID == "" {
		return nil, errors.New("input and event ID cannot be empty")
	}

	event, err := s.getEvent(ctx, input.EventID)
	if err != nil {
		return nil, err
	}

	if event.Status != models.EventStatusLocked {
		return nil, fmt.Errorf("%w: cannot generate pairings for event with status: %s", ErrInvalidEventStatus, event.Status)
	}

	participants, err := s.participantRepo.ListParticipants(ctx, &participantRepo.ListParticipantsInput{
		EventID: input.EventID,
	})
	if err != nil {
		return nil, err
	}

	if len(participants) < s.minParticipants {
		return nil, fmt.Errorf("%w: have %d, need %d", ErrInsufficientParticipants, len(participants), s.minParticipants)
	}

	perm, err := s.shuffler.Derange(len(participants))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDerangementFailed, err)
	}

	now := s.clock.Now()
	pairings := make([]*models.Pairing, 0, len(participants))
	for i, p := range participants {
		pairings = append(pairings, &models.Pairing{
			ID:          s.uuider.NewUUID(),
			EventID:     input.EventID,
			SantaID:     p.ID,
			RecipientID: participants[perm[i]].ID,
			CreatedAt:   now,
		})
	}

	if err := s.pairingRepo.ReplacePairings(ctx, &pairingRepo.ReplacePairingsInput{
		EventID:  input.EventID,
		Pairings: pairings,
	}); err != nil {
		return nil, err
	}

	if err := s.transition(event, models.EventStatusMatched); err != nil {
		return nil, err
	}

	if err := s.eventRepo.SaveEvent(ctx, &eventRepo.SaveEventInput{Event: event}); err != nil {
		return nil, err
	}

	return &GeneratePairingsOutput{PairingsCreated: len(pairings)}, nil
}

package event

import (
	"context"
	"errors"
	"fmt"
	"log"

	"ratmas/internal/models"
	eventRepo "ratmas/internal/repositories/event"
	pairingRepo "ratmas/internal/repositories/pairing"
	participantRepo "ratmas/internal/repositories/participant"
	"ratmas/internal/services/messaging"
)

// NotifyPairings DMs each santa their assignment. Safe to rerun: pairings
// that already have a delivered DM are skipped, and only once every pairing
// is delivered does the event advance to notified.
func (s *service) NotifyPairings(ctx context.Context, input *NotifyPairingsInput) (*NotifyPairingsOutput, error) {
	if input == nil || input.EventID == "" {
		return nil, errors.New("input and event ID cannot be empty")
	}

	event, err := s.getEvent(ctx, input.EventID)
	if err != nil {
		return nil, err
	}

	if event.Status != models.EventStatusMatched {
		return nil, fmt.Errorf("%w: cannot notify pairings for event with status: %s", ErrInvalidEventStatus, event.Status)
	}

	pairings, err := s.pairingRepo.ListPairings(ctx, &pairingRepo.ListPairingsInput{
		EventID: input.EventID,
	})
	if err != nil {
		return nil, err
	}

	participants, err := s.participantRepo.ListParticipants(ctx, &participantRepo.ListParticipantsInput{
		EventID: input.EventID,
	})
	if err != nil {
		return nil, err
	}

	byID := make(map[string]*models.Participant, len(participants))
	for _, p := range participants {
		byID[p.ID] = p
	}

	sent := 0
	outstanding := 0
	records := make([]pairingRepo.NotifiedRecord, 0, len(pairings))

	for _, pairing := range pairings {
		if pairing.NotifiedAt != nil {
			continue
		}

		santa, ok := byID[pairing.SantaID]
		if !ok {
			log.Printf("Pairing %s references missing santa %s, skipping", pairing.ID, pairing.SantaID)
			outstanding++
			continue
		}
		recipient, ok := byID[pairing.RecipientID]
		if !ok {
			log.Printf("Pairing %s references missing recipient %s, skipping", pairing.ID, pairing.RecipientID)
			outstanding++
			continue
		}

		msg, err := s.messagingSvc.GetAssignmentMessage(ctx, &messaging.GetAssignmentMessageInput{
			RecipientName:    recipient.DisplayName,
			WishlistURL:      recipient.WishlistURL,
			PurchaseDeadline: event.PurchaseDeadline,
			RevealDate:       event.RevealDate,
			Timezone:         event.Timezone,
		})
		if err != nil {
			return nil, err
		}

		if err := s.messenger.SendDirectMessage(ctx, &SendDirectMessageInput{
			UserID:  santa.UserID,
			Content: msg.Message,
		}); err != nil {
			log.Printf("Failed to DM santa %s for pairing %s: %v", santa.UserID, pairing.ID, err)
			outstanding++
			continue
		}

		records = append(records, pairingRepo.NotifiedRecord{
			PairingID:  pairing.ID,
			NotifiedAt: s.clock.Now(),
		})
		sent++
	}

	if len(records) > 0 {
		if err := s.pairingRepo.MarkPairingsNotified(ctx, &pairingRepo.MarkPairingsNotifiedInput{
			Records: records,
		}); err != nil {
			return nil, err
		}
	}

	notified := false
	if outstanding == 0 && len(pairings) > 0 {
		if err := s.transition(event, models.EventStatusNotified); err != nil {
			return nil, err
		}
		if err := s.eventRepo.SaveEvent(ctx, &eventRepo.SaveEventInput{Event: event}); err != nil {
			return nil, err
		}
		notified = true
	}

	return &NotifyPairingsOutput{
		Sent:          sent,
		Outstanding:   outstanding,
		EventNotified: notified,
	}, nil
}

// GetPairingForSanta retrieves a santa's own assignment
func (s *service) GetPairingForSanta(ctx context.Context, input *GetPairingForSantaInput) (*GetPairingForSantaOutput, error) {
	if input == nil || input.EventID == "" || input.UserID == "" {
		return nil, errors.New("input, event ID and user ID cannot be empty")
	}

	event, err := s.getEvent(ctx, input.EventID)
	if err != nil {
		return nil, err
	}

	switch event.Status {
	case models.EventStatusMatched, models.EventStatusNotified, models.EventStatusCompleted:
	default:
		return nil, fmt.Errorf("%w: no pairings exist for event with status: %s", ErrInvalidEventStatus, event.Status)
	}

	pairing, recipient, err := s.lookupPairing(ctx, input.EventID, input.UserID)
	if err != nil {
		return nil, err
	}

	return &GetPairingForSantaOutput{
		Pairing:   pairing,
		Recipient: recipient,
	}, nil
}

// RelayAnonymousMessage passes a santa's note to their recipient without
// exposing who sent it
func (s *service) RelayAnonymousMessage(ctx context.Context, input *RelayAnonymousMessageInput) (*RelayAnonymousMessageOutput, error) {
	if input == nil || input.EventID == "" || input.SantaUserID == "" || input.Text == "" {
		return nil, errors.New("input, event ID, santa user ID and text cannot be empty")
	}

	event, err := s.getEvent(ctx, input.EventID)
	if err != nil {
		return nil, err
	}

	switch event.Status {
	case models.EventStatusMatched, models.EventStatusNotified:
	default:
		return nil, fmt.Errorf("%w: cannot relay messages for event with status: %s", ErrInvalidEventStatus, event.Status)
	}

	_, recipient, err := s.lookupPairing(ctx, input.EventID, input.SantaUserID)
	if err != nil {
		return nil, err
	}

	msg, err := s.messagingSvc.GetRelayMessage(ctx, &messaging.GetRelayMessageInput{
		Text: input.Text,
	})
	if err != nil {
		return nil, err
	}

	if err := s.messenger.SendDirectMessage(ctx, &SendDirectMessageInput{
		UserID:  recipient.UserID,
		Content: msg.Message,
	}); err != nil {
		return nil, fmt.Errorf("failed to relay message: %w", err)
	}

	return &RelayAnonymousMessageOutput{Success: true}, nil
}

// RevealPairings completes a notified event and returns the post naming
// every santa
func (s *service) RevealPairings(ctx context.Context, input *RevealPairingsInput) (*RevealPairingsOutput, error) {
	if input == nil || input.EventID == "" {
		return nil, errors.New("input and event ID cannot be empty")
	}

	event, err := s.getEvent(ctx, input.EventID)
	if err != nil {
		return nil, err
	}

	if event.Status != models.EventStatusNotified {
		return nil, fmt.Errorf("%w: cannot reveal pairings for event with status: %s", ErrInvalidEventStatus, event.Status)
	}

	pairings, err := s.pairingRepo.ListPairings(ctx, &pairingRepo.ListPairingsInput{
		EventID: input.EventID,
	})
	if err != nil {
		return nil, err
	}

	participants, err := s.participantRepo.ListParticipants(ctx, &participantRepo.ListParticipantsInput{
		EventID: input.EventID,
	})
	if err != nil {
		return nil, err
	}

	byID := make(map[string]*models.Participant, len(participants))
	for _, p := range participants {
		byID[p.ID] = p
	}

	entries := make([]messaging.RevealEntry, 0, len(pairings))
	for _, pairing := range pairings {
		santa, ok := byID[pairing.SantaID]
		if !ok {
			continue
		}
		recipient, ok := byID[pairing.RecipientID]
		if !ok {
			continue
		}
		entries = append(entries, messaging.RevealEntry{
			SantaName:     santa.DisplayName,
			RecipientName: recipient.DisplayName,
		})
	}

	msg, err := s.messagingSvc.GetRevealMessage(ctx, &messaging.GetRevealMessageInput{
		Entries: entries,
	})
	if err != nil {
		return nil, err
	}

	if err := s.transition(event, models.EventStatusCompleted); err != nil {
		return nil, err
	}

	if err := s.eventRepo.SaveEvent(ctx, &eventRepo.SaveEventInput{Event: event}); err != nil {
		return nil, err
	}

	return &RevealPairingsOutput{
		Message: msg.Message,
		Event:   event,
	}, nil
}

// lookupPairing resolves a user to their enrollment, their pairing as santa,
// and the recipient's enrollment
func (s *service) lookupPairing(ctx context.Context, eventID, userID string) (*models.Pairing, *models.Participant, error) {
	santa, err := s.participantRepo.GetParticipantByEventAndUser(ctx, &participantRepo.GetParticipantByEventAndUserInput{
		EventID: eventID,
		UserID:  userID,
	})
	if err != nil {
		if errors.Is(err, participantRepo.ErrParticipantNotFound) {
			return nil, nil, fmt.Errorf("%w: %s", ErrNotAParticipant, userID)
		}
		return nil, nil, err
	}

	pairing, err := s.pairingRepo.GetPairingBySanta(ctx, &pairingRepo.GetPairingBySantaInput{
		EventID: eventID,
		SantaID: santa.ID,
	})
	if err != nil {
		if errors.Is(err, pairingRepo.ErrPairingNotFound) {
			return nil, nil, fmt.Errorf("%w: no pairing for %s", ErrPairingNotFound, userID)
		}
		return nil, nil, err
	}

	recipient, err := s.participantRepo.GetParticipant(ctx, &participantRepo.GetParticipantInput{
		ParticipantID: pairing.RecipientID,
	})
	if err != nil {
		return nil, nil, err
	}

	return pairing, recipient, nil
}

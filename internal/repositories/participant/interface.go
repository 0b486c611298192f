package participant

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go ratmas/internal/repositories/participant Repository

import (
	"context"

	"ratmas/internal/models"
)

// Repository defines the interface for participant data persistence
type Repository interface {
	// SaveParticipant persists a participant
	SaveParticipant(ctx context.Context, input *SaveParticipantInput) error

	// GetParticipant retrieves a participant by ID
	GetParticipant(ctx context.Context, input *GetParticipantInput) (*models.Participant, error)

	// GetParticipantByEventAndUser retrieves a participant by (event, user)
	GetParticipantByEventAndUser(ctx context.Context, input *GetParticipantByEventAndUserInput) (*models.Participant, error)

	// ListParticipants retrieves all participants for an event in join order
	ListParticipants(ctx context.Context, input *ListParticipantsInput) ([]*models.Participant, error)

	// DeleteParticipant removes a participant
	DeleteParticipant(ctx context.Context, input *DeleteParticipantInput) error

	// DeleteParticipantsByEvent removes every participant of an event
	DeleteParticipantsByEvent(ctx context.Context, input *DeleteParticipantsByEventInput) error
}

package event

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go ratmas/internal/repositories/event Repository

import (
	"context"

	"ratmas/internal/models"
)

// Repository defines the interface for event data persistence
type Repository interface {
	// SaveEvent persists an event and maintains the guild's active-event index
	SaveEvent(ctx context.Context, input *SaveEventInput) error

	// GetEvent retrieves an event by ID
	GetEvent(ctx context.Context, input *GetEventInput) (*models.Event, error)

	// GetActiveEventByGuild retrieves the guild's non-terminal event, if any
	GetActiveEventByGuild(ctx context.Context, input *GetActiveEventByGuildInput) (*models.Event, error)

	// DeleteEvent removes an event
	DeleteEvent(ctx context.Context, input *DeleteEventInput) error
}

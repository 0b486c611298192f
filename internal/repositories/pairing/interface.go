package pairing

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go ratmas/internal/repositories/pairing Repository

import (
	"context"

	"ratmas/internal/models"
)

// Repository defines the interface for pairing data persistence
type Repository interface {
	// ReplacePairings atomically swaps an event's full pairing set. Readers
	// never observe a partially written set.
	ReplacePairings(ctx context.Context, input *ReplacePairingsInput) error

	// ListPairings retrieves all pairings for an event
	ListPairings(ctx context.Context, input *ListPairingsInput) ([]*models.Pairing, error)

	// GetPairingBySanta retrieves the pairing where the given participant gives
	GetPairingBySanta(ctx context.Context, input *GetPairingBySantaInput) (*models.Pairing, error)

	// MarkPairingsNotified records successful assignment DMs in one batch
	MarkPairingsNotified(ctx context.Context, input *MarkPairingsNotifiedInput) error

	// DeletePairingsByEvent removes every pairing of an event
	DeletePairingsByEvent(ctx context.Context, input *DeletePairingsByEventInput) error
}

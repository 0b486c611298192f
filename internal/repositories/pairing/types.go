package pairing

import (
	"time"

	"ratmas/internal/models"
)

type ReplacePairingsInput struct {
	EventID  string
	Pairings []*models.Pairing
}

type ListPairingsInput struct {
	EventID string
}

type GetPairingBySantaInput struct {
	EventID string
	SantaID string
}

// NotifiedRecord marks one pairing's assignment DM as delivered
type NotifiedRecord struct {
	PairingID  string
	NotifiedAt time.Time
}

type MarkPairingsNotifiedInput struct {
	Records []NotifiedRecord
}

type DeletePairingsByEventInput struct {
	EventID string
}

package pairing

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"ratmas/internal/models"
)

const (
	// Key prefixes for Redis
	pairingKeyPrefix       = "pairing:"
	eventPairingsKeyPrefix = "event_pairings:"      // zset scored by creation time
	santaIndexPrefix       = "event_pairing_santa:" // santa -> pairing lookup
)

// ErrPairingNotFound is returned when a pairing is not found
var ErrPairingNotFound = errors.New("pairing not found")

// Config holds configuration for the Redis pairing repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed pairing repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	// Test connection
	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
	}, nil
}

func santaKey(eventID, santaID string) string {
	return fmt.Sprintf("%s%s:%s", santaIndexPrefix, eventID, santaID)
}

// ReplacePairings atomically swaps an event's full pairing set in one
// MULTI/EXEC transaction: the old records, indexes and set are removed and
// the new records written in a single step.
func (r *redisRepository) ReplacePairings(ctx context.Context, input *ReplacePairingsInput) error {
	if input == nil || input.EventID == "" {
		return errors.New("input and event ID cannot be empty")
	}

	for _, p := range input.Pairings {
		if p.EventID != input.EventID {
			return fmt.Errorf("pairing %s belongs to event %s, not %s", p.ID, p.EventID, input.EventID)
		}
	}

	// Read the outgoing set before the transaction
	old, err := r.ListPairings(ctx, &ListPairingsInput{EventID: input.EventID})
	if err != nil {
		return err
	}

	eventKey := fmt.Sprintf("%s%s", eventPairingsKeyPrefix, input.EventID)

	pipe := r.client.TxPipeline()

	for _, p := range old {
		pipe.Del(ctx, fmt.Sprintf("%s%s", pairingKeyPrefix, p.ID))
		pipe.Del(ctx, santaKey(p.EventID, p.SantaID))
	}
	pipe.Del(ctx, eventKey)

	for _, p := range input.Pairings {
		pairingJSON, err := json.Marshal(p)
		if err != nil {
			return fmt.Errorf("failed to marshal pairing: %w", err)
		}

		pipe.Set(ctx, fmt.Sprintf("%s%s", pairingKeyPrefix, p.ID), pairingJSON, 0)
		pipe.ZAdd(ctx, eventKey, redis.Z{
			Score:  float64(p.CreatedAt.UnixNano()),
			Member: p.ID,
		})
		pipe.Set(ctx, santaKey(p.EventID, p.SantaID), p.ID, 0)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to replace pairings: %w", err)
	}

	return nil
}

// ListPairings retrieves all pairings for an event from Redis
func (r *redisRepository) ListPairings(ctx context.Context, input *ListPairingsInput) ([]*models.Pairing, error) {
	if input == nil || input.EventID == "" {
		return nil, errors.New("input and event ID cannot be empty")
	}

	eventKey := fmt.Sprintf("%s%s", eventPairingsKeyPrefix, input.EventID)
	pairingIDs, err := r.client.ZRange(ctx, eventKey, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get pairing IDs: %w", err)
	}

	pairings := make([]*models.Pairing, 0, len(pairingIDs))
	for _, id := range pairingIDs {
		p, err := r.getPairing(ctx, id)
		if err != nil {
			if errors.Is(err, ErrPairingNotFound) {
				continue
			}
			return nil, err
		}
		pairings = append(pairings, p)
	}

	return pairings, nil
}

// GetPairingBySanta retrieves the pairing where the given participant gives
func (r *redisRepository) GetPairingBySanta(ctx context.Context, input *GetPairingBySantaInput) (*models.Pairing, error) {
	if input == nil || input.EventID == "" || input.SantaID == "" {
		return nil, errors.New("input, event ID and santa ID cannot be empty")
	}

	pairingID, err := r.client.Get(ctx, santaKey(input.EventID, input.SantaID)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrPairingNotFound
		}
		return nil, fmt.Errorf("failed to get pairing ID for santa: %w", err)
	}

	return r.getPairing(ctx, pairingID)
}

// MarkPairingsNotified sets NotifiedAt on each listed pairing, writing all
// updated records in one pipeline so a run's successes land together.
func (r *redisRepository) MarkPairingsNotified(ctx context.Context, input *MarkPairingsNotifiedInput) error {
	if input == nil {
		return errors.New("input cannot be nil")
	}

	if len(input.Records) == 0 {
		return nil
	}

	updated := make([]*models.Pairing, 0, len(input.Records))
	for _, rec := range input.Records {
		p, err := r.getPairing(ctx, rec.PairingID)
		if err != nil {
			return err
		}

		notifiedAt := rec.NotifiedAt
		p.NotifiedAt = &notifiedAt
		updated = append(updated, p)
	}

	pipe := r.client.Pipeline()
	for _, p := range updated {
		pairingJSON, err := json.Marshal(p)
		if err != nil {
			return fmt.Errorf("failed to marshal pairing: %w", err)
		}
		pipe.Set(ctx, fmt.Sprintf("%s%s", pairingKeyPrefix, p.ID), pairingJSON, 0)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to mark pairings notified: %w", err)
	}

	return nil
}

// DeletePairingsByEvent removes every pairing of an event from Redis
func (r *redisRepository) DeletePairingsByEvent(ctx context.Context, input *DeletePairingsByEventInput) error {
	if input == nil || input.EventID == "" {
		return errors.New("input and event ID cannot be empty")
	}

	return r.ReplacePairings(ctx, &ReplacePairingsInput{
		EventID:  input.EventID,
		Pairings: nil,
	})
}

func (r *redisRepository) getPairing(ctx context.Context, pairingID string) (*models.Pairing, error) {
	pairingJSON, err := r.client.Get(ctx, fmt.Sprintf("%s%s", pairingKeyPrefix, pairingID)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrPairingNotFound
		}
		return nil, fmt.Errorf("failed to get pairing: %w", err)
	}

	var p models.Pairing
	if err := json.Unmarshal([]byte(pairingJSON), &p); err != nil {
		return nil, fmt.Errorf("failed to unmarshal pairing: %w", err)
	}

	return &p, nil
}

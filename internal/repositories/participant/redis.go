package participant

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
	participantKeyPrefix       = "participant:"
	eventParticipantsKeyPrefix = "event_participants:"      // zset scored by join time
	eventUserIndexPrefix       = "event_participant_user:" // (event, user) uniqueness index
)

// ErrParticipantNotFound is returned when a participant is not found
var ErrParticipantNotFound = errors.New("participant not found")

// Config holds configuration for the Redis participant repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed participant repository
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

func eventUserKey(eventID, userID string) string {
	return fmt.Sprintf("%s%s:%s", eventUserIndexPrefix, eventID, userID)
}

// SaveParticipant persists a participant to Redis
func (r *redisRepository) SaveParticipant(ctx context.Context, input *SaveParticipantInput) error {
	if input == nil || input.Participant == nil {
		return errors.New("input and participant cannot be nil")
	}

	p := input.Participant

	participantJSON, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("failed to marshal participant: %w", err)
	}

	pipe := r.client.Pipeline()

	participantKey := fmt.Sprintf("%s%s", participantKeyPrefix, p.ID)
	pipe.Set(ctx, participantKey, participantJSON, 0)

	// Index by event, ordered by join time
	eventKey := fmt.Sprintf("%s%s", eventParticipantsKeyPrefix, p.EventID)
	pipe.ZAdd(ctx, eventKey, redis.Z{
		Score:  float64(p.JoinedAt.UnixNano()),
		Member: p.ID,
	})

	// Index by (event, user) for the no-double-enrollment invariant
	pipe.Set(ctx, eventUserKey(p.EventID, p.UserID), p.ID, 0)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save participant: %w", err)
	}

	return nil
}

// GetParticipant retrieves a participant by ID from Redis
func (r *redisRepository) GetParticipant(ctx context.Context, input *GetParticipantInput) (*models.Participant, error) {
	if input == nil || input.ParticipantID == "" {
		return nil, errors.New("input and participant ID cannot be empty")
	}

	participantKey := fmt.Sprintf("%s%s", participantKeyPrefix, input.ParticipantID)
	participantJSON, err := r.client.Get(ctx, participantKey).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrParticipantNotFound
		}
		return nil, fmt.Errorf("failed to get participant: %w", err)
	}

	var p models.Participant
	if err := json.Unmarshal([]byte(participantJSON), &p); err != nil {
		return nil, fmt.Errorf("failed to unmarshal participant: %w", err)
	}

	return &p, nil
}

// GetParticipantByEventAndUser retrieves a participant by (event, user) from Redis
func (r *redisRepository) GetParticipantByEventAndUser(ctx context.Context, input *GetParticipantByEventAndUserInput) (*models.Participant, error) {
	if input == nil || input.EventID == "" || input.UserID == "" {
		return nil, errors.New("input, event ID and user ID cannot be empty")
	}

	participantID, err := r.client.Get(ctx, eventUserKey(input.EventID, input.UserID)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrParticipantNotFound
		}
		return nil, fmt.Errorf("failed to get participant ID for user: %w", err)
	}

	return r.GetParticipant(ctx, &GetParticipantInput{
		ParticipantID: participantID,
	})
}

// ListParticipants retrieves all participants for an event in join order
func (r *redisRepository) ListParticipants(ctx context.Context, input *ListParticipantsInput) ([]*models.Participant, error) {
	if input == nil || input.EventID == "" {
		return nil, errors.New("input and event ID cannot be empty")
	}

	eventKey := fmt.Sprintf("%s%s", eventParticipantsKeyPrefix, input.EventID)
	participantIDs, err := r.client.ZRange(ctx, eventKey, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get participant IDs: %w", err)
	}

	participants := make([]*models.Participant, 0, len(participantIDs))
	for _, id := range participantIDs {
		p, err := r.GetParticipant(ctx, &GetParticipantInput{ParticipantID: id})
		if err != nil {
			// Skip participants deleted between the range read and the fetch
			if errors.Is(err, ErrParticipantNotFound) {
				continue
			}
			return nil, err
		}
		participants = append(participants, p)
	}

	return participants, nil
}

// DeleteParticipant removes a participant from Redis
func (r *redisRepository) DeleteParticipant(ctx context.Context, input *DeleteParticipantInput) error {
	if input == nil || input.ParticipantID == "" {
		return errors.New("input and participant ID cannot be empty")
	}

	// Get the participant first to clean up its indexes
	p, err := r.GetParticipant(ctx, &GetParticipantInput{
		ParticipantID: input.ParticipantID,
	})
	if err != nil {
		return err
	}

	pipe := r.client.Pipeline()

	participantKey := fmt.Sprintf("%s%s", participantKeyPrefix, input.ParticipantID)
	pipe.Del(ctx, participantKey)

	eventKey := fmt.Sprintf("%s%s", eventParticipantsKeyPrefix, p.EventID)
	pipe.ZRem(ctx, eventKey, input.ParticipantID)

	pipe.Del(ctx, eventUserKey(p.EventID, p.UserID))

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete participant: %w", err)
	}

	return nil
}

// DeleteParticipantsByEvent removes every participant of an event from Redis
func (r *redisRepository) DeleteParticipantsByEvent(ctx context.Context, input *DeleteParticipantsByEventInput) error {
	if input == nil || input.EventID == "" {
		return errors.New("input and event ID cannot be empty")
	}

	participants, err := r.ListParticipants(ctx, &ListParticipantsInput{
		EventID: input.EventID,
	})
	if err != nil {
		return err
	}

	pipe := r.client.Pipeline()

	for _, p := range participants {
		pipe.Del(ctx, fmt.Sprintf("%s%s", participantKeyPrefix, p.ID))
		pipe.Del(ctx, eventUserKey(p.EventID, p.UserID))
	}

	pipe.Del(ctx, fmt.Sprintf("%s%s", eventParticipantsKeyPrefix, input.EventID))

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete participants for event: %w", err)
	}

	return nil
}

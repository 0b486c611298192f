package event

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
	eventKeyPrefix       = "event:"
	guildActiveKeyPrefix = "guild_active_event:" // one non-terminal event per guild
)

// ErrEventNotFound is returned when an event is not found
var ErrEventNotFound = errors.New("event not found")

// Config holds configuration for the Redis event repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed event repository
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

// SaveEvent persists an event to Redis. The guild's active-event index is
// kept in step with the event's status: set while the event is live,
// removed once it reaches a terminal status.
func (r *redisRepository) SaveEvent(ctx context.Context, input *SaveEventInput) error {
	if input == nil || input.Event == nil {
		return errors.New("input and event cannot be nil")
	}

	eventJSON, err := json.Marshal(input.Event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	pipe := r.client.Pipeline()

	eventKey := fmt.Sprintf("%s%s", eventKeyPrefix, input.Event.ID)
	pipe.Set(ctx, eventKey, eventJSON, 0)

	guildKey := fmt.Sprintf("%s%s", guildActiveKeyPrefix, input.Event.GuildID)
	if input.Event.Status.IsTerminal() {
		pipe.Del(ctx, guildKey)
	} else {
		pipe.Set(ctx, guildKey, input.Event.ID, 0)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save event: %w", err)
	}

	return nil
}

// GetEvent retrieves an event by ID from Redis
func (r *redisRepository) GetEvent(ctx context.Context, input *GetEventInput) (*models.Event, error) {
	if input == nil || input.EventID == "" {
		return nil, errors.New("input and event ID cannot be empty")
	}

	eventKey := fmt.Sprintf("%s%s", eventKeyPrefix, input.EventID)
	eventJSON, err := r.client.Get(ctx, eventKey).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrEventNotFound
		}
		return nil, fmt.Errorf("failed to get event: %w", err)
	}

	var event models.Event
	if err := json.Unmarshal([]byte(eventJSON), &event); err != nil {
		return nil, fmt.Errorf("failed to unmarshal event: %w", err)
	}

	return &event, nil
}

// GetActiveEventByGuild retrieves the guild's non-terminal event from Redis
func (r *redisRepository) GetActiveEventByGuild(ctx context.Context, input *GetActiveEventByGuildInput) (*models.Event, error) {
	if input == nil || input.GuildID == "" {
		return nil, errors.New("input and guild ID cannot be empty")
	}

	guildKey := fmt.Sprintf("%s%s", guildActiveKeyPrefix, input.GuildID)
	eventID, err := r.client.Get(ctx, guildKey).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrEventNotFound
		}
		return nil, fmt.Errorf("failed to get active event ID for guild: %w", err)
	}

	return r.GetEvent(ctx, &GetEventInput{
		EventID: eventID,
	})
}

// DeleteEvent removes an event from Redis
func (r *redisRepository) DeleteEvent(ctx context.Context, input *DeleteEventInput) error {
	if input == nil || input.EventID == "" {
		return errors.New("input and event ID cannot be empty")
	}

	// Get the event first to find its guild index
	event, err := r.GetEvent(ctx, &GetEventInput{
		EventID: input.EventID,
	})
	if err != nil {
		return err
	}

	pipe := r.client.Pipeline()

	eventKey := fmt.Sprintf("%s%s", eventKeyPrefix, input.EventID)
	pipe.Del(ctx, eventKey)

	// Only clear the guild index if it still points at this event
	guildKey := fmt.Sprintf("%s%s", guildActiveKeyPrefix, event.GuildID)
	currentID, err := r.client.Get(ctx, guildKey).Result()
	if err == nil && currentID == input.EventID {
		pipe.Del(ctx, guildKey)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete event: %w", err)
	}

	return nil
}

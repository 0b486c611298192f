package event

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"ratmas/internal/models"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	mr      *miniredis.Miniredis
	client  *redis.Client
	repo    Repository
	testNow time.Time
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	// Create a new miniredis server for each test
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr

	s.client = redis.NewClient(&redis.Options{
		Addr: s.mr.Addr(),
	})

	repo, err := NewRedis(&Config{
		RedisClient: s.client,
	})
	s.Require().NoError(err)
	s.repo = repo

	s.testNow = time.Date(2024, 11, 15, 10, 0, 0, 0, time.UTC)
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) newTestEvent(status models.EventStatus) *models.Event {
	return &models.Event{
		ID:               "test-event-id",
		GuildID:          "test-guild-id",
		Status:           status,
		RoleID:           "test-role-id",
		StartDate:        s.testNow,
		PurchaseDeadline: s.testNow.AddDate(0, 1, 0),
		RevealDate:       s.testNow.AddDate(0, 1, 10),
		Timezone:         "America/New_York",
		CreatedAt:        s.testNow,
		UpdatedAt:        s.testNow,
	}
}

func (s *RedisRepositoryTestSuite) TestSaveAndGetEvent() {
	event := s.newTestEvent(models.EventStatusOpen)

	err := s.repo.SaveEvent(context.Background(), &SaveEventInput{
		Event: event,
	})
	s.Require().NoError(err)

	retrieved, err := s.repo.GetEvent(context.Background(), &GetEventInput{
		EventID: "test-event-id",
	})
	s.Require().NoError(err)
	s.Require().NotNil(retrieved)

	s.Equal("test-event-id", retrieved.ID)
	s.Equal("test-guild-id", retrieved.GuildID)
	s.Equal(models.EventStatusOpen, retrieved.Status)
	s.Equal("test-role-id", retrieved.RoleID)
	s.Equal("America/New_York", retrieved.Timezone)
	s.Equal(s.testNow.Unix(), retrieved.CreatedAt.Unix())
}

func (s *RedisRepositoryTestSuite) TestGetEvent_NotFound() {
	_, err := s.repo.GetEvent(context.Background(), &GetEventInput{
		EventID: "missing-event-id",
	})
	s.Require().Error(err)
	s.Equal(ErrEventNotFound, err)
}

func (s *RedisRepositoryTestSuite) TestGetActiveEventByGuild() {
	event := s.newTestEvent(models.EventStatusOpen)

	s.Require().NoError(s.repo.SaveEvent(context.Background(), &SaveEventInput{Event: event}))

	retrieved, err := s.repo.GetActiveEventByGuild(context.Background(), &GetActiveEventByGuildInput{
		GuildID: "test-guild-id",
	})
	s.Require().NoError(err)
	s.Equal("test-event-id", retrieved.ID)
}

func (s *RedisRepositoryTestSuite) TestActiveIndexClearedOnTerminalStatus() {
	event := s.newTestEvent(models.EventStatusOpen)
	s.Require().NoError(s.repo.SaveEvent(context.Background(), &SaveEventInput{Event: event}))

	// Advance through the lifecycle; the index survives non-terminal statuses
	for _, status := range []models.EventStatus{
		models.EventStatusLocked,
		models.EventStatusMatched,
		models.EventStatusNotified,
	} {
		event.Status = status
		s.Require().NoError(s.repo.SaveEvent(context.Background(), &SaveEventInput{Event: event}))

		retrieved, err := s.repo.GetActiveEventByGuild(context.Background(), &GetActiveEventByGuildInput{
			GuildID: "test-guild-id",
		})
		s.Require().NoError(err)
		s.Equal(status, retrieved.Status)
	}

	// Completing the event frees the guild for a new one
	event.Status = models.EventStatusCompleted
	s.Require().NoError(s.repo.SaveEvent(context.Background(), &SaveEventInput{Event: event}))

	_, err := s.repo.GetActiveEventByGuild(context.Background(), &GetActiveEventByGuildInput{
		GuildID: "test-guild-id",
	})
	s.Require().Error(err)
	s.Equal(ErrEventNotFound, err)

	// The event record itself is still there
	retrieved, err := s.repo.GetEvent(context.Background(), &GetEventInput{
		EventID: "test-event-id",
	})
	s.Require().NoError(err)
	s.Equal(models.EventStatusCompleted, retrieved.Status)
}

func (s *RedisRepositoryTestSuite) TestDeleteEvent() {
	event := s.newTestEvent(models.EventStatusOpen)
	s.Require().NoError(s.repo.SaveEvent(context.Background(), &SaveEventInput{Event: event}))

	err := s.repo.DeleteEvent(context.Background(), &DeleteEventInput{
		EventID: "test-event-id",
	})
	s.Require().NoError(err)

	_, err = s.repo.GetEvent(context.Background(), &GetEventInput{
		EventID: "test-event-id",
	})
	s.Equal(ErrEventNotFound, err)

	_, err = s.repo.GetActiveEventByGuild(context.Background(), &GetActiveEventByGuildInput{
		GuildID: "test-guild-id",
	})
	s.Equal(ErrEventNotFound, err)
}

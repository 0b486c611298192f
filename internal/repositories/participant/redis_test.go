package participant

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

func (s *RedisRepositoryTestSuite) newTestParticipant(id, userID string, joinedAt time.Time) *models.Participant {
	return &models.Participant{
		ID:          id,
		EventID:     "test-event-id",
		UserID:      userID,
		DisplayName: "Test User " + userID,
		WishlistURL: "https://example.com/wishlist/" + userID,
		JoinedAt:    joinedAt,
		UpdatedAt:   joinedAt,
	}
}

func (s *RedisRepositoryTestSuite) TestSaveAndGetParticipant() {
	p := s.newTestParticipant("participant-1", "user-1", s.testNow)

	err := s.repo.SaveParticipant(context.Background(), &SaveParticipantInput{
		Participant: p,
	})
	s.Require().NoError(err)

	retrieved, err := s.repo.GetParticipant(context.Background(), &GetParticipantInput{
		ParticipantID: "participant-1",
	})
	s.Require().NoError(err)
	s.Equal("participant-1", retrieved.ID)
	s.Equal("test-event-id", retrieved.EventID)
	s.Equal("user-1", retrieved.UserID)
	s.Equal("Test User user-1", retrieved.DisplayName)
	s.Equal("https://example.com/wishlist/user-1", retrieved.WishlistURL)
}

func (s *RedisRepositoryTestSuite) TestGetParticipantByEventAndUser() {
	p := s.newTestParticipant("participant-1", "user-1", s.testNow)
	s.Require().NoError(s.repo.SaveParticipant(context.Background(), &SaveParticipantInput{Participant: p}))

	retrieved, err := s.repo.GetParticipantByEventAndUser(context.Background(), &GetParticipantByEventAndUserInput{
		EventID: "test-event-id",
		UserID:  "user-1",
	})
	s.Require().NoError(err)
	s.Equal("participant-1", retrieved.ID)

	_, err = s.repo.GetParticipantByEventAndUser(context.Background(), &GetParticipantByEventAndUserInput{
		EventID: "test-event-id",
		UserID:  "user-unknown",
	})
	s.Require().Error(err)
	s.Equal(ErrParticipantNotFound, err)
}

func (s *RedisRepositoryTestSuite) TestListParticipants_JoinOrder() {
	// Save out of order; the list comes back ordered by join time
	second := s.newTestParticipant("participant-2", "user-2", s.testNow.Add(time.Minute))
	first := s.newTestParticipant("participant-1", "user-1", s.testNow)
	third := s.newTestParticipant("participant-3", "user-3", s.testNow.Add(2*time.Minute))

	for _, p := range []*models.Participant{second, first, third} {
		s.Require().NoError(s.repo.SaveParticipant(context.Background(), &SaveParticipantInput{Participant: p}))
	}

	participants, err := s.repo.ListParticipants(context.Background(), &ListParticipantsInput{
		EventID: "test-event-id",
	})
	s.Require().NoError(err)
	s.Require().Len(participants, 3)
	s.Equal("participant-1", participants[0].ID)
	s.Equal("participant-2", participants[1].ID)
	s.Equal("participant-3", participants[2].ID)
}

func (s *RedisRepositoryTestSuite) TestListParticipants_Empty() {
	participants, err := s.repo.ListParticipants(context.Background(), &ListParticipantsInput{
		EventID: "empty-event-id",
	})
	s.Require().NoError(err)
	s.Len(participants, 0)
}

func (s *RedisRepositoryTestSuite) TestDeleteParticipant() {
	p := s.newTestParticipant("participant-1", "user-1", s.testNow)
	s.Require().NoError(s.repo.SaveParticipant(context.Background(), &SaveParticipantInput{Participant: p}))

	err := s.repo.DeleteParticipant(context.Background(), &DeleteParticipantInput{
		ParticipantID: "participant-1",
	})
	s.Require().NoError(err)

	_, err = s.repo.GetParticipant(context.Background(), &GetParticipantInput{
		ParticipantID: "participant-1",
	})
	s.Equal(ErrParticipantNotFound, err)

	// The (event, user) index is cleaned up so the user can re-enroll
	_, err = s.repo.GetParticipantByEventAndUser(context.Background(), &GetParticipantByEventAndUserInput{
		EventID: "test-event-id",
		UserID:  "user-1",
	})
	s.Equal(ErrParticipantNotFound, err)

	participants, err := s.repo.ListParticipants(context.Background(), &ListParticipantsInput{
		EventID: "test-event-id",
	})
	s.Require().NoError(err)
	s.Len(participants, 0)
}

func (s *RedisRepositoryTestSuite) TestDeleteParticipantsByEvent() {
	for i, userID := range []string{"user-1", "user-2", "user-3"} {
		p := s.newTestParticipant("participant-"+userID, userID, s.testNow.Add(time.Duration(i)*time.Minute))
		s.Require().NoError(s.repo.SaveParticipant(context.Background(), &SaveParticipantInput{Participant: p}))
	}

	err := s.repo.DeleteParticipantsByEvent(context.Background(), &DeleteParticipantsByEventInput{
		EventID: "test-event-id",
	})
	s.Require().NoError(err)

	participants, err := s.repo.ListParticipants(context.Background(), &ListParticipantsInput{
		EventID: "test-event-id",
	})
	s.Require().NoError(err)
	s.Len(participants, 0)

	_, err = s.repo.GetParticipantByEventAndUser(context.Background(), &GetParticipantByEventAndUserInput{
		EventID: "test-event-id",
		UserID:  "user-2",
	})
	s.Equal(ErrParticipantNotFound, err)
}

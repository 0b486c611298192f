package pairing

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

func (s *RedisRepositoryTestSuite) newPairingSet(ids ...string) []*models.Pairing {
	pairings := make([]*models.Pairing, 0, len(ids))
	for i, id := range ids {
		santa := ids[i]
		recipient := ids[(i+1)%len(ids)]
		pairings = append(pairings, &models.Pairing{
			ID:          "pairing-" + id,
			EventID:     "test-event-id",
			SantaID:     "participant-" + santa,
			RecipientID: "participant-" + recipient,
			CreatedAt:   s.testNow.Add(time.Duration(i) * time.Second),
		})
	}
	return pairings
}

func (s *RedisRepositoryTestSuite) TestReplaceAndListPairings() {
	pairings := s.newPairingSet("a", "b", "c")

	err := s.repo.ReplacePairings(context.Background(), &ReplacePairingsInput{
		EventID:  "test-event-id",
		Pairings: pairings,
	})
	s.Require().NoError(err)

	listed, err := s.repo.ListPairings(context.Background(), &ListPairingsInput{
		EventID: "test-event-id",
	})
	s.Require().NoError(err)
	s.Require().Len(listed, 3)
	s.Equal("pairing-a", listed[0].ID)
	s.Equal("participant-b", listed[0].RecipientID)
	s.Nil(listed[0].NotifiedAt)
}

func (s *RedisRepositoryTestSuite) TestReplacePairings_ReplacesPriorSet() {
	first := s.newPairingSet("a", "b", "c")
	s.Require().NoError(s.repo.ReplacePairings(context.Background(), &ReplacePairingsInput{
		EventID:  "test-event-id",
		Pairings: first,
	}))

	// A re-match replaces the whole set, including santa indexes
	second := s.newPairingSet("d", "e", "f")
	s.Require().NoError(s.repo.ReplacePairings(context.Background(), &ReplacePairingsInput{
		EventID:  "test-event-id",
		Pairings: second,
	}))

	listed, err := s.repo.ListPairings(context.Background(), &ListPairingsInput{
		EventID: "test-event-id",
	})
	s.Require().NoError(err)
	s.Require().Len(listed, 3)
	for _, p := range listed {
		s.NotEqual("pairing-a", p.ID)
	}

	_, err = s.repo.GetPairingBySanta(context.Background(), &GetPairingBySantaInput{
		EventID: "test-event-id",
		SantaID: "participant-a",
	})
	s.Equal(ErrPairingNotFound, err)

	found, err := s.repo.GetPairingBySanta(context.Background(), &GetPairingBySantaInput{
		EventID: "test-event-id",
		SantaID: "participant-d",
	})
	s.Require().NoError(err)
	s.Equal("pairing-d", found.ID)
}

func (s *RedisRepositoryTestSuite) TestReplacePairings_RejectsForeignEvent() {
	pairings := s.newPairingSet("a", "b", "c")
	pairings[1].EventID = "other-event-id"

	err := s.repo.ReplacePairings(context.Background(), &ReplacePairingsInput{
		EventID:  "test-event-id",
		Pairings: pairings,
	})
	s.Require().Error(err)

	// Nothing was written
	listed, err := s.repo.ListPairings(context.Background(), &ListPairingsInput{
		EventID: "test-event-id",
	})
	s.Require().NoError(err)
	s.Len(listed, 0)
}

func (s *RedisRepositoryTestSuite) TestGetPairingBySanta() {
	pairings := s.newPairingSet("a", "b", "c")
	s.Require().NoError(s.repo.ReplacePairings(context.Background(), &ReplacePairingsInput{
		EventID:  "test-event-id",
		Pairings: pairings,
	}))

	found, err := s.repo.GetPairingBySanta(context.Background(), &GetPairingBySantaInput{
		EventID: "test-event-id",
		SantaID: "participant-b",
	})
	s.Require().NoError(err)
	s.Equal("pairing-b", found.ID)
	s.Equal("participant-c", found.RecipientID)
}

func (s *RedisRepositoryTestSuite) TestMarkPairingsNotified() {
	pairings := s.newPairingSet("a", "b", "c")
	s.Require().NoError(s.repo.ReplacePairings(context.Background(), &ReplacePairingsInput{
		EventID:  "test-event-id",
		Pairings: pairings,
	}))

	notifiedAt := s.testNow.Add(time.Hour)
	err := s.repo.MarkPairingsNotified(context.Background(), &MarkPairingsNotifiedInput{
		Records: []NotifiedRecord{
			{PairingID: "pairing-a", NotifiedAt: notifiedAt},
			{PairingID: "pairing-c", NotifiedAt: notifiedAt},
		},
	})
	s.Require().NoError(err)

	listed, err := s.repo.ListPairings(context.Background(), &ListPairingsInput{
		EventID: "test-event-id",
	})
	s.Require().NoError(err)

	byID := make(map[string]*models.Pairing)
	for _, p := range listed {
		byID[p.ID] = p
	}

	s.Require().NotNil(byID["pairing-a"].NotifiedAt)
	s.Equal(notifiedAt.Unix(), byID["pairing-a"].NotifiedAt.Unix())
	s.Nil(byID["pairing-b"].NotifiedAt)
	s.Require().NotNil(byID["pairing-c"].NotifiedAt)
}

func (s *RedisRepositoryTestSuite) TestMarkPairingsNotified_EmptyBatch() {
	err := s.repo.MarkPairingsNotified(context.Background(), &MarkPairingsNotifiedInput{})
	s.Require().NoError(err)
}

func (s *RedisRepositoryTestSuite) TestDeletePairingsByEvent() {
	pairings := s.newPairingSet("a", "b", "c")
	s.Require().NoError(s.repo.ReplacePairings(context.Background(), &ReplacePairingsInput{
		EventID:  "test-event-id",
		Pairings: pairings,
	}))

	err := s.repo.DeletePairingsByEvent(context.Background(), &DeletePairingsByEventInput{
		EventID: "test-event-id",
	})
	s.Require().NoError(err)

	listed, err := s.repo.ListPairings(context.Background(), &ListPairingsInput{
		EventID: "test-event-id",
	})
	s.Require().NoError(err)
	s.Len(listed, 0)

	_, err = s.repo.GetPairingBySanta(context.Background(), &GetPairingBySantaInput{
		EventID: "test-event-id",
		SantaID: "participant-a",
	})
	s.Equal(ErrPairingNotFound, err)
}

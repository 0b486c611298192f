package event_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"ratmas/internal/common/clock"
	"ratmas/internal/common/uuid"
	"ratmas/internal/models"
	event "ratmas/internal/services/event"
	eventRepo "ratmas/internal/repositories/event"
	pairingRepo "ratmas/internal/repositories/pairing"
	participantRepo "ratmas/internal/repositories/participant"
	svcMocks "ratmas/internal/services/event/mocks"
	"ratmas/internal/services/messaging"
	"ratmas/internal/shuffle"
)

// EventLifecycleTestSuite exercises the service against real redis-backed
// repositories, walking a full event from open signups to notified santas.
type EventLifecycleTestSuite struct {
	suite.Suite
	mr            *miniredis.Miniredis
	client        *redis.Client
	mockCtrl      *gomock.Controller
	mockMessenger *svcMocks.MockMessenger
	mockFetcher   *svcMocks.MockMemberFetcher
	svc           event.Service
	ctx           context.Context
}

func (s *EventLifecycleTestSuite) SetupTest() {
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr

	s.client = redis.NewClient(&redis.Options{
		Addr: s.mr.Addr(),
	})

	s.mockCtrl = gomock.NewController(s.T())
	s.mockMessenger = svcMocks.NewMockMessenger(s.mockCtrl)
	s.mockFetcher = svcMocks.NewMockMemberFetcher(s.mockCtrl)

	evRepo, err := eventRepo.NewRedis(&eventRepo.Config{RedisClient: s.client})
	s.Require().NoError(err)

	partRepo, err := participantRepo.NewRedis(&participantRepo.Config{RedisClient: s.client})
	s.Require().NoError(err)

	pairRepo, err := pairingRepo.NewRedis(&pairingRepo.Config{RedisClient: s.client})
	s.Require().NoError(err)

	messagingSvc, err := messaging.NewService(&messaging.Config{Seed: 7})
	s.Require().NoError(err)

	svc, err := event.New(&event.Config{
		MinParticipants:  3,
		EventRepo:        evRepo,
		ParticipantRepo:  partRepo,
		PairingRepo:      pairRepo,
		Shuffler:         shuffle.New(&shuffle.Config{Seed: 42}),
		Clock:            &clock.DefaultClock{},
		UUIDGenerator:    uuid.New(),
		Messenger:        s.mockMessenger,
		MemberFetcher:    s.mockFetcher,
		MessagingService: messagingSvc,
	})
	s.Require().NoError(err)
	s.svc = svc

	s.ctx = context.Background()
}

func (s *EventLifecycleTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
	s.client.Close()
	s.mr.Close()
}

func (s *EventLifecycleTestSuite) createOpenEvent(guildID string) *models.Event {
	now := time.Now().UTC()
	created, err := s.svc.CreateEvent(s.ctx, &event.CreateEventInput{
		GuildID:          guildID,
		RoleID:           "role-ratmas",
		StartDate:        now,
		PurchaseDeadline: now.AddDate(0, 0, 14),
		RevealDate:       now.AddDate(0, 0, 30),
		Timezone:         "UTC",
	})
	s.Require().NoError(err)
	return created.Event
}

func (s *EventLifecycleTestSuite) join(eventID, userID, name string) {
	_, err := s.svc.AddParticipant(s.ctx, &event.AddParticipantInput{
		EventID:     eventID,
		UserID:      userID,
		DisplayName: name,
	})
	s.Require().NoError(err)
}

func (s *EventLifecycleTestSuite) TestFullLifecycle_OpenToNotified() {
	ev := s.createOpenEvent("guild-1")
	s.Equal(models.EventStatusOpen, ev.Status)

	s.join(ev.ID, "user-a", "Alice")
	s.join(ev.ID, "user-b", "Bob")
	s.join(ev.ID, "user-c", "Carol")
	s.join(ev.ID, "user-d", "Dave")

	listed, err := s.svc.ListParticipants(s.ctx, &event.ListParticipantsInput{EventID: ev.ID})
	s.Require().NoError(err)
	s.Require().Len(listed.Participants, 4)

	// Lock signups
	locked, err := s.svc.UpdateEventStatus(s.ctx, &event.UpdateEventStatusInput{
		EventID:   ev.ID,
		NewStatus: models.EventStatusLocked,
	})
	s.Require().NoError(err)
	s.Equal(models.EventStatusLocked, locked.Event.Status)

	// Joining after lock must fail
	_, err = s.svc.AddParticipant(s.ctx, &event.AddParticipantInput{
		EventID:     ev.ID,
		UserID:      "user-late",
		DisplayName: "Latecomer",
	})
	s.Require().ErrorIs(err, event.ErrInvalidEventStatus)

	// Draw pairings
	drawn, err := s.svc.GeneratePairings(s.ctx, &event.GeneratePairingsInput{EventID: ev.ID})
	s.Require().NoError(err)
	s.Equal(4, drawn.PairingsCreated)

	matched, err := s.svc.GetEvent(s.ctx, &event.GetEventInput{EventID: ev.ID})
	s.Require().NoError(err)
	s.Equal(models.EventStatusMatched, matched.Event.Status)

	// Every participant gives exactly once and never to themselves
	recipients := make(map[string]bool)
	for _, p := range listed.Participants {
		got, err := s.svc.GetPairingForSanta(s.ctx, &event.GetPairingForSantaInput{
			EventID: ev.ID,
			UserID:  p.UserID,
		})
		s.Require().NoError(err)
		s.NotEqual(p.UserID, got.Recipient.UserID)
		s.False(recipients[got.Recipient.UserID], "recipient %s drawn twice", got.Recipient.UserID)
		recipients[got.Recipient.UserID] = true
	}
	s.Len(recipients, 4)

	// Notify every santa
	s.mockMessenger.EXPECT().
		SendDirectMessage(gomock.Any(), gomock.Any()).
		Return(nil).
		Times(4)

	notified, err := s.svc.NotifyPairings(s.ctx, &event.NotifyPairingsInput{EventID: ev.ID})
	s.Require().NoError(err)
	s.Equal(4, notified.Sent)
	s.Equal(0, notified.Outstanding)
	s.True(notified.EventNotified)

	after, err := s.svc.GetEvent(s.ctx, &event.GetEventInput{EventID: ev.ID})
	s.Require().NoError(err)
	s.Equal(models.EventStatusNotified, after.Event.Status)

	// Notification is gated once the event has advanced
	rerun, err := s.svc.NotifyPairings(s.ctx, &event.NotifyPairingsInput{EventID: ev.ID})
	s.Require().ErrorIs(err, event.ErrInvalidEventStatus)
	s.Nil(rerun)
}

func (s *EventLifecycleTestSuite) TestLifecycle_TooFewParticipantsStaysLocked() {
	ev := s.createOpenEvent("guild-2")

	s.join(ev.ID, "user-a", "Alice")
	s.join(ev.ID, "user-b", "Bob")

	_, err := s.svc.UpdateEventStatus(s.ctx, &event.UpdateEventStatusInput{
		EventID:   ev.ID,
		NewStatus: models.EventStatusLocked,
	})
	s.Require().NoError(err)

	_, err = s.svc.GeneratePairings(s.ctx, &event.GeneratePairingsInput{EventID: ev.ID})
	s.Require().ErrorIs(err, event.ErrInsufficientParticipants)

	// Still locked, so signups can be reopened
	reopened, err := s.svc.UpdateEventStatus(s.ctx, &event.UpdateEventStatusInput{
		EventID:   ev.ID,
		NewStatus: models.EventStatusOpen,
	})
	s.Require().NoError(err)
	s.Equal(models.EventStatusOpen, reopened.Event.Status)
}

func (s *EventLifecycleTestSuite) TestLifecycle_SecondEventBlockedUntilTerminal() {
	ev := s.createOpenEvent("guild-3")

	_, err := s.svc.CreateEvent(s.ctx, &event.CreateEventInput{GuildID: "guild-3"})
	s.Require().ErrorIs(err, event.ErrEventAlreadyActive)

	_, err = s.svc.UpdateEventStatus(s.ctx, &event.UpdateEventStatusInput{
		EventID:   ev.ID,
		NewStatus: models.EventStatusCancelled,
	})
	s.Require().NoError(err)

	// Cancellation frees the guild for a fresh event
	next := s.createOpenEvent("guild-3")
	s.NotEqual(ev.ID, next.ID)
}

func TestEventLifecycleSuite(t *testing.T) {
	suite.Run(t, new(EventLifecycleTestSuite))
}

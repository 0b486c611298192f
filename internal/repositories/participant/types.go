package participant

import "ratmas/internal/models"

type SaveParticipantInput struct {
	Participant *models.Participant
}

type GetParticipantInput struct {
	ParticipantID string
}

type GetParticipantByEventAndUserInput struct {
	EventID string
	UserID  string
}

type ListParticipantsInput struct {
	EventID string
}

type DeleteParticipantInput struct {
	ParticipantID string
}

type DeleteParticipantsByEventInput struct {
	EventID string
}

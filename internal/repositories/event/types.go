package event

import "ratmas/internal/models"

type SaveEventInput struct {
	Event *models.Event
}

type GetEventInput struct {
	EventID string
}

type GetActiveEventByGuildInput struct {
	GuildID string
}

type DeleteEventInput struct {
	EventID string
}

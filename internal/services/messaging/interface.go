package messaging

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go ratmas/internal/services/messaging Service

import "context"

// Service builds the user-facing text the bot sends
type Service interface {
	// GetAssignmentMessage returns the DM telling a santa who they drew
	GetAssignmentMessage(ctx context.Context, input *GetAssignmentMessageInput) (*GetAssignmentMessageOutput, error)

	// GetAnnouncementMessage returns the channel post announcing a new event
	GetAnnouncementMessage(ctx context.Context, input *GetAnnouncementMessageInput) (*GetAnnouncementMessageOutput, error)

	// GetRelayMessage wraps an anonymous note from a santa to their recipient
	GetRelayMessage(ctx context.Context, input *GetRelayMessageInput) (*GetRelayMessageOutput, error)

	// GetRevealMessage returns the post listing every santa once the event ends
	GetRevealMessage(ctx context.Context, input *GetRevealMessageInput) (*GetRevealMessageOutput, error)
}

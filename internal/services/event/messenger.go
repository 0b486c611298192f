package event

//go:generate mockgen -package=mocks -destination=mocks/mock_messenger.go ratmas/internal/services/event Messenger,MemberFetcher

import "context"

// Messenger delivers direct messages through the chat platform
type Messenger interface {
	// SendDirectMessage sends one DM. An error means the delivery failed and
	// the caller may retry later.
	SendDirectMessage(ctx context.Context, input *SendDirectMessageInput) error
}

// MemberFetcher lists guild members holding a role
type MemberFetcher interface {
	// FetchMembersWithRole returns the members holding the given role,
	// excluding bots
	FetchMembersWithRole(ctx context.Context, input *FetchMembersWithRoleInput) (*FetchMembersWithRoleOutput, error)
}

// SendDirectMessageInput contains parameters for one DM
type SendDirectMessageInput struct {
	// UserID is the Discord user to message
	UserID string

	// Content is the message text
	Content string
}

// RoleMember is one guild member holding the event's link-role
type RoleMember struct {
	UserID      string
	DisplayName string
}

// FetchMembersWithRoleInput contains parameters for listing role holders
type FetchMembersWithRoleInput struct {
	GuildID string
	RoleID  string
}

// FetchMembersWithRoleOutput contains the members found
type FetchMembersWithRoleOutput struct {
	Members []RoleMember
}

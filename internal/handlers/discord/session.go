package discord

import (
	"context"
	"errors"
	"fmt"

	"github.com/bwmarrin/discordgo"

	"ratmas/internal/services/event"
)

// memberPageSize is the discordgo GuildMembers page limit
const memberPageSize = 1000

// SessionAdapter exposes a discordgo session as the narrow interfaces the
// event service depends on for DMs and role lookups.
type SessionAdapter struct {
	session *discordgo.Session
}

// NewSessionAdapter wraps a connected discordgo session
func NewSessionAdapter(session *discordgo.Session) (*SessionAdapter, error) {
	if session == nil {
		return nil, errors.New("session cannot be nil")
	}

	return &SessionAdapter{session: session}, nil
}

// SendDirectMessage opens (or reuses) the DM channel for a user and sends
// the content there
func (a *SessionAdapter) SendDirectMessage(ctx context.Context, input *event.SendDirectMessageInput) error {
	if input == nil || input.UserID == "" {
		return errors.New("input and user ID cannot be empty")
	}

	channel, err := a.session.UserChannelCreate(input.UserID, discordgo.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("failed to open DM channel for %s: %w", input.UserID, err)
	}

	if _, err := a.session.ChannelMessageSend(channel.ID, input.Content, discordgo.WithContext(ctx)); err != nil {
		return fmt.Errorf("failed to DM %s: %w", input.UserID, err)
	}

	return nil
}

// FetchMembersWithRole pages through the guild member list and returns the
// non-bot members holding the given role
func (a *SessionAdapter) FetchMembersWithRole(ctx context.Context, input *event.FetchMembersWithRoleInput) (*event.FetchMembersWithRoleOutput, error) {
	if input == nil || input.GuildID == "" || input.RoleID == "" {
		return nil, errors.New("input, guild ID and role ID cannot be empty")
	}

	var members []event.RoleMember
	after := ""

	for {
		page, err := a.session.GuildMembers(input.GuildID, after, memberPageSize, discordgo.WithContext(ctx))
		if err != nil {
			return nil, fmt.Errorf("failed to list guild members: %w", err)
		}
		if len(page) == 0 {
			break
		}

		for _, m := range page {
			if m.User == nil || m.User.Bot {
				continue
			}
			if !hasRole(m, input.RoleID) {
				continue
			}

			name := m.User.Username
			if m.Nick != "" {
				name = m.Nick
			}

			members = append(members, event.RoleMember{
				UserID:      m.User.ID,
				DisplayName: name,
			})
		}

		if len(page) < memberPageSize {
			break
		}
		after = page[len(page)-1].User.ID
	}

	return &event.FetchMembersWithRoleOutput{Members: members}, nil
}

func hasRole(m *discordgo.Member, roleID string) bool {
	for _, r := range m.Roles {
		if r == roleID {
			return true
		}
	}
	return false
}

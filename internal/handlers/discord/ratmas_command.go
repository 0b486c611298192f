package discord

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/bwmarrin/discordgo"

	"ratmas/internal/common/dates"
	"ratmas/internal/models"
	"ratmas/internal/services/event"
	"ratmas/internal/services/messaging"
)

// RatmasCommand handles the /ratmas command
type RatmasCommand struct {
	BaseCommand
	eventService     event.Service
	messagingService messaging.Service
	dateParser       *dates.Parser
}

// NewRatmasCommand creates a new ratmas command handler
func NewRatmasCommand(eventService event.Service, messagingService messaging.Service) *RatmasCommand {
	return &RatmasCommand{
		BaseCommand: BaseCommand{
			Name:        "ratmas",
			Description: "Ratmas secret santa commands",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "open",
					Description: "Open a new Ratmas event for this server",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionRole,
							Name:        "role",
							Description: "Role whose members take part",
							Required:    true,
						},
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "deadline",
							Description: "Purchase deadline, e.g. \"dec 15\" or 2025-12-15",
							Required:    true,
						},
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "reveal",
							Description: "Reveal date, e.g. \"dec 24\"",
							Required:    true,
						},
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "start",
							Description: "Start date, defaults to today",
						},
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "end",
							Description: "Optional end date",
						},
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "timezone",
							Description: "IANA timezone, defaults to UTC",
						},
						{
							Type:        discordgo.ApplicationCommandOptionChannel,
							Name:        "channel",
							Description: "Channel for announcements",
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "join",
					Description: "Join the open Ratmas event",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "wishlist",
							Description: "Link to your wishlist",
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "leave",
					Description: "Leave the event before signups lock",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "wishlist",
					Description: "Set or update your wishlist link",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "url",
							Description: "Link to your wishlist",
							Required:    true,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "sync",
					Description: "Enroll role holders who haven't joined yet",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "lock",
					Description: "Lock signups",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "reopen",
					Description: "Reopen signups on a locked event",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "match",
					Description: "Draw secret santa pairings",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "notify",
					Description: "DM every santa their assignment",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "mine",
					Description: "See who you're buying for",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "message",
					Description: "Send an anonymous message to your recipient",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "text",
							Description: "What to say",
							Required:    true,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "status",
					Description: "Show the current event's status",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "reveal",
					Description: "Reveal every santa and complete the event",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "cancel",
					Description: "Cancel the current event",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "purge",
					Description: "Delete the current event and all its data",
				},
			},
		},
		eventService:     eventService,
		messagingService: messagingService,
		dateParser:       dates.NewParser(),
	}
}

// Handle processes a Discord interaction for the ratmas command
func (c *RatmasCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	if i.Type != discordgo.InteractionApplicationCommand {
		return nil
	}

	data := i.ApplicationCommandData()
	if data.Name != c.Name {
		return nil
	}

	if i.Member == nil || i.Member.User == nil {
		return RespondWithError(s, i, "Ratmas commands only work inside a server.")
	}

	guildID := i.GuildID
	userID := i.Member.User.ID
	username := i.Member.User.Username
	if i.Member.Nick != "" {
		username = i.Member.Nick
	}

	sub := data.Options[0]
	opts := optionMap(sub.Options)

	var err error
	switch sub.Name {
	case "open":
		err = c.handleOpen(s, i, guildID, opts)
	case "join":
		err = c.handleJoin(s, i, guildID, userID, username, opts)
	case "leave":
		err = c.handleLeave(s, i, guildID, userID)
	case "wishlist":
		err = c.handleWishlist(s, i, guildID, userID, opts)
	case "sync":
		err = c.handleSync(s, i, guildID)
	case "lock":
		err = c.handleTransition(s, i, guildID, models.EventStatusLocked, "Signups are locked. 🔒")
	case "reopen":
		err = c.handleTransition(s, i, guildID, models.EventStatusOpen, "Signups are open again. 🟢")
	case "match":
		err = c.handleMatch(s, i, guildID)
	case "notify":
		err = c.handleNotify(s, i, guildID)
	case "mine":
		err = c.handleMine(s, i, guildID, userID)
	case "message":
		err = c.handleMessage(s, i, guildID, userID, opts)
	case "status":
		err = c.handleStatus(s, i, guildID)
	case "reveal":
		err = c.handleReveal(s, i, guildID)
	case "cancel":
		err = c.handleTransition(s, i, guildID, models.EventStatusCancelled, "The event has been cancelled. ❌")
	case "purge":
		err = c.handlePurge(s, i, guildID)
	default:
		err = RespondWithError(s, i, fmt.Sprintf("Unknown subcommand: %s", sub.Name))
	}

	return err
}

// optionMap indexes subcommand options by name
func optionMap(options []*discordgo.ApplicationCommandInteractionDataOption) map[string]*discordgo.ApplicationCommandInteractionDataOption {
	m := make(map[string]*discordgo.ApplicationCommandInteractionDataOption, len(options))
	for _, opt := range options {
		m[opt.Name] = opt
	}
	return m
}

func stringOption(opts map[string]*discordgo.ApplicationCommandInteractionDataOption, name string) string {
	if opt, ok := opts[name]; ok {
		return opt.StringValue()
	}
	return ""
}

// activeEvent resolves the guild's current event, responding to the user
// when there is none. The returned event is nil when a response was sent.
func (c *RatmasCommand) activeEvent(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, guildID string) (*models.Event, error) {
	output, err := c.eventService.GetActiveEvent(ctx, &event.GetActiveEventInput{GuildID: guildID})
	if err != nil {
		if errors.Is(err, event.ErrNoActiveEvent) {
			return nil, RespondWithEphemeralMessage(s, i, "There's no Ratmas event running. Start one with `/ratmas open`.")
		}
		log.Printf("Error looking up active event for guild %s: %v", guildID, err)
		return nil, RespondWithError(s, i, "Something went wrong looking up the event.")
	}
	return output.Event, nil
}

func (c *RatmasCommand) handleOpen(s *discordgo.Session, i *discordgo.InteractionCreate, guildID string, opts map[string]*discordgo.ApplicationCommandInteractionDataOption) error {
	ctx := context.Background()

	timezone := stringOption(opts, "timezone")
	loc, err := dates.LoadLocation(timezone)
	if err != nil {
		return RespondWithError(s, i, fmt.Sprintf("Unknown timezone %q.", timezone))
	}

	now := time.Now()

	start := now.In(loc)
	if raw := stringOption(opts, "start"); raw != "" {
		start, err = c.dateParser.Parse(raw, now, loc)
		if err != nil {
			return RespondWithError(s, i, fmt.Sprintf("Couldn't make sense of start date %q.", raw))
		}
	}

	deadline, err := c.dateParser.Parse(stringOption(opts, "deadline"), now, loc)
	if err != nil {
		return RespondWithError(s, i, fmt.Sprintf("Couldn't make sense of deadline %q.", stringOption(opts, "deadline")))
	}

	reveal, err := c.dateParser.Parse(stringOption(opts, "reveal"), now, loc)
	if err != nil {
		return RespondWithError(s, i, fmt.Sprintf("Couldn't make sense of reveal date %q.", stringOption(opts, "reveal")))
	}

	var end *time.Time
	if raw := stringOption(opts, "end"); raw != "" {
		parsed, err := c.dateParser.Parse(raw, now, loc)
		if err != nil {
			return RespondWithError(s, i, fmt.Sprintf("Couldn't make sense of end date %q.", raw))
		}
		end = &parsed
	}

	var roleID string
	if opt, ok := opts["role"]; ok {
		roleID = opt.RoleValue(s, guildID).ID
	}

	var channelID string
	if opt, ok := opts["channel"]; ok {
		channelID = opt.ChannelValue(s).ID
	}

	timezoneName := timezone
	if timezoneName == "" {
		timezoneName = "UTC"
	}

	created, err := c.eventService.CreateEvent(ctx, &event.CreateEventInput{
		GuildID:           guildID,
		RoleID:            roleID,
		StartDate:         start,
		PurchaseDeadline:  deadline,
		RevealDate:        reveal,
		EndDate:           end,
		Timezone:          timezoneName,
		AnnounceChannelID: channelID,
	})
	if err != nil {
		if errors.Is(err, event.ErrEventAlreadyActive) {
			return RespondWithError(s, i, "This server already has a Ratmas event running. Cancel it first with `/ratmas cancel`.")
		}
		log.Printf("Error creating event for guild %s: %v", guildID, err)
		return RespondWithError(s, i, "Failed to open the event.")
	}

	if channelID != "" {
		announcement, err := c.messagingService.GetAnnouncementMessage(ctx, &messaging.GetAnnouncementMessageInput{
			RoleID:           roleID,
			StartDate:        created.Event.StartDate,
			PurchaseDeadline: created.Event.PurchaseDeadline,
			RevealDate:       created.Event.RevealDate,
			Timezone:         created.Event.Timezone,
		})
		if err != nil {
			log.Printf("Error building announcement for event %s: %v", created.Event.ID, err)
		} else if _, err := s.ChannelMessageSend(channelID, announcement.Message); err != nil {
			log.Printf("Error posting announcement for event %s: %v", created.Event.ID, err)
		}
	}

	description, fields := renderEventStatus(created.Event, nil)
	return RespondWithEmbed(s, i, "Ratmas is open! 🐀🎄", description, fields)
}

func (c *RatmasCommand) handleJoin(s *discordgo.Session, i *discordgo.InteractionCreate, guildID, userID, username string, opts map[string]*discordgo.ApplicationCommandInteractionDataOption) error {
	ctx := context.Background()

	ev, err := c.activeEvent(ctx, s, i, guildID)
	if ev == nil {
		return err
	}

	_, err = c.eventService.AddParticipant(ctx, &event.AddParticipantInput{
		EventID:     ev.ID,
		UserID:      userID,
		DisplayName: username,
		WishlistURL: stringOption(opts, "wishlist"),
	})
	if err != nil {
		switch {
		case errors.Is(err, event.ErrAlreadyParticipant):
			return RespondWithEphemeralMessage(s, i, "You're already in! 🐀")
		case errors.Is(err, event.ErrInvalidEventStatus):
			return RespondWithEphemeralMessage(s, i, "Signups are closed for this event.")
		default:
			log.Printf("Error adding participant %s to event %s: %v", userID, ev.ID, err)
			return RespondWithError(s, i, "Failed to join the event.")
		}
	}

	return RespondWithMessage(s, i, fmt.Sprintf("**%s** joined Ratmas! 🐀", username))
}

func (c *RatmasCommand) handleLeave(s *discordgo.Session, i *discordgo.InteractionCreate, guildID, userID string) error {
	ctx := context.Background()

	ev, err := c.activeEvent(ctx, s, i, guildID)
	if ev == nil {
		return err
	}

	_, err = c.eventService.RemoveParticipant(ctx, &event.RemoveParticipantInput{
		EventID: ev.ID,
		UserID:  userID,
	})
	if err != nil {
		switch {
		case errors.Is(err, event.ErrNotAParticipant):
			return RespondWithEphemeralMessage(s, i, "You weren't in this event.")
		case errors.Is(err, event.ErrInvalidEventStatus):
			return RespondWithEphemeralMessage(s, i, "Signups are locked, you can't leave anymore.")
		default:
			log.Printf("Error removing participant %s from event %s: %v", userID, ev.ID, err)
			return RespondWithError(s, i, "Failed to leave the event.")
		}
	}

	return RespondWithEphemeralMessage(s, i, "You've left the event. 👋")
}

func (c *RatmasCommand) handleWishlist(s *discordgo.Session, i *discordgo.InteractionCreate, guildID, userID string, opts map[string]*discordgo.ApplicationCommandInteractionDataOption) error {
	ctx := context.Background()

	ev, err := c.activeEvent(ctx, s, i, guildID)
	if ev == nil {
		return err
	}

	url := stringOption(opts, "url")
	_, err = c.eventService.UpdateParticipant(ctx, &event.UpdateParticipantInput{
		EventID:     ev.ID,
		UserID:      userID,
		WishlistURL: &url,
	})
	if err != nil {
		if errors.Is(err, event.ErrNotAParticipant) {
			return RespondWithEphemeralMessage(s, i, "Join the event first with `/ratmas join`.")
		}
		log.Printf("Error updating wishlist for %s in event %s: %v", userID, ev.ID, err)
		return RespondWithError(s, i, "Failed to update your wishlist.")
	}

	return RespondWithEphemeralMessage(s, i, "Wishlist saved. 📋")
}

func (c *RatmasCommand) handleSync(s *discordgo.Session, i *discordgo.InteractionCreate, guildID string) error {
	ctx := context.Background()

	ev, err := c.activeEvent(ctx, s, i, guildID)
	if ev == nil {
		return err
	}

	output, err := c.eventService.SyncParticipants(ctx, &event.SyncParticipantsInput{EventID: ev.ID})
	if err != nil {
		if errors.Is(err, event.ErrInvalidEventStatus) {
			return RespondWithEphemeralMessage(s, i, "Syncing only works while signups are open.")
		}
		log.Printf("Error syncing participants for event %s: %v", ev.ID, err)
		return RespondWithError(s, i, "Failed to sync role members.")
	}

	if output.Added == 0 {
		return RespondWithEphemeralMessage(s, i, "Everyone with the role is already in.")
	}
	return RespondWithMessage(s, i, fmt.Sprintf("Enrolled %d new rat(s) from the role. 🐀", output.Added))
}

func (c *RatmasCommand) handleTransition(s *discordgo.Session, i *discordgo.InteractionCreate, guildID string, status models.EventStatus, confirmation string) error {
	ctx := context.Background()

	ev, err := c.activeEvent(ctx, s, i, guildID)
	if ev == nil {
		return err
	}

	_, err = c.eventService.UpdateEventStatus(ctx, &event.UpdateEventStatusInput{
		EventID:   ev.ID,
		NewStatus: status,
	})
	if err != nil {
		if errors.Is(err, event.ErrInvalidTransition) {
			return RespondWithEphemeralMessage(s, i, fmt.Sprintf("Can't go from %s to %s.", ev.Status, status))
		}
		log.Printf("Error transitioning event %s to %s: %v", ev.ID, status, err)
		return RespondWithError(s, i, "Failed to update the event.")
	}

	return RespondWithMessage(s, i, confirmation)
}

func (c *RatmasCommand) handleMatch(s *discordgo.Session, i *discordgo.InteractionCreate, guildID string) error {
	ctx := context.Background()

	ev, err := c.activeEvent(ctx, s, i, guildID)
	if ev == nil {
		return err
	}

	output, err := c.eventService.GeneratePairings(ctx, &event.GeneratePairingsInput{EventID: ev.ID})
	if err != nil {
		switch {
		case errors.Is(err, event.ErrInvalidEventStatus):
			return RespondWithEphemeralMessage(s, i, "Lock signups first with `/ratmas lock`.")
		case errors.Is(err, event.ErrInsufficientParticipants):
			return RespondWithEphemeralMessage(s, i, "Not enough rats to draw names yet.")
		default:
			log.Printf("Error generating pairings for event %s: %v", ev.ID, err)
			return RespondWithError(s, i, "Failed to draw pairings.")
		}
	}

	return RespondWithMessage(s, i, fmt.Sprintf("Drew %d pairings. Run `/ratmas notify` to DM every santa. 🎁", output.PairingsCreated))
}

func (c *RatmasCommand) handleNotify(s *discordgo.Session, i *discordgo.InteractionCreate, guildID string) error {
	ctx := context.Background()

	ev, err := c.activeEvent(ctx, s, i, guildID)
	if ev == nil {
		return err
	}

	output, err := c.eventService.NotifyPairings(ctx, &event.NotifyPairingsInput{EventID: ev.ID})
	if err != nil {
		if errors.Is(err, event.ErrInvalidEventStatus) {
			return RespondWithEphemeralMessage(s, i, "Draw pairings first with `/ratmas match`.")
		}
		log.Printf("Error notifying pairings for event %s: %v", ev.ID, err)
		return RespondWithError(s, i, "Failed to notify santas.")
	}

	if output.Outstanding > 0 {
		return RespondWithMessage(s, i, fmt.Sprintf("Sent %d DM(s), %d still undelivered. Run `/ratmas notify` again to retry.", output.Sent, output.Outstanding))
	}
	return RespondWithMessage(s, i, fmt.Sprintf("All %d santas have their assignments. 📬", output.Sent))
}

func (c *RatmasCommand) handleMine(s *discordgo.Session, i *discordgo.InteractionCreate, guildID, userID string) error {
	ctx := context.Background()

	ev, err := c.activeEvent(ctx, s, i, guildID)
	if ev == nil {
		return err
	}

	output, err := c.eventService.GetPairingForSanta(ctx, &event.GetPairingForSantaInput{
		EventID: ev.ID,
		UserID:  userID,
	})
	if err != nil {
		switch {
		case errors.Is(err, event.ErrInvalidEventStatus):
			return RespondWithEphemeralMessage(s, i, "Names haven't been drawn yet.")
		case errors.Is(err, event.ErrNotAParticipant):
			return RespondWithEphemeralMessage(s, i, "You're not in this event.")
		case errors.Is(err, event.ErrPairingNotFound):
			return RespondWithEphemeralMessage(s, i, "No assignment found for you. Ask an organizer to redraw.")
		default:
			log.Printf("Error looking up pairing for %s in event %s: %v", userID, ev.ID, err)
			return RespondWithError(s, i, "Failed to look up your assignment.")
		}
	}

	return RespondWithEphemeralMessage(s, i, renderAssignment(output.Recipient))
}

func (c *RatmasCommand) handleMessage(s *discordgo.Session, i *discordgo.InteractionCreate, guildID, userID string, opts map[string]*discordgo.ApplicationCommandInteractionDataOption) error {
	ctx := context.Background()

	ev, err := c.activeEvent(ctx, s, i, guildID)
	if ev == nil {
		return err
	}

	_, err = c.eventService.RelayAnonymousMessage(ctx, &event.RelayAnonymousMessageInput{
		EventID:     ev.ID,
		SantaUserID: userID,
		Text:        stringOption(opts, "text"),
	})
	if err != nil {
		switch {
		case errors.Is(err, event.ErrInvalidEventStatus):
			return RespondWithEphemeralMessage(s, i, "You can only message your recipient after names are drawn.")
		case errors.Is(err, event.ErrNotAParticipant), errors.Is(err, event.ErrPairingNotFound):
			return RespondWithEphemeralMessage(s, i, "You don't have a recipient in this event.")
		default:
			log.Printf("Error relaying message for %s in event %s: %v", userID, ev.ID, err)
			return RespondWithError(s, i, "Failed to deliver your message.")
		}
	}

	return RespondWithEphemeralMessage(s, i, "Delivered anonymously. 🤫")
}

func (c *RatmasCommand) handleStatus(s *discordgo.Session, i *discordgo.InteractionCreate, guildID string) error {
	ctx := context.Background()

	ev, err := c.activeEvent(ctx, s, i, guildID)
	if ev == nil {
		return err
	}

	listed, err := c.eventService.ListParticipants(ctx, &event.ListParticipantsInput{EventID: ev.ID})
	if err != nil {
		log.Printf("Error listing participants for event %s: %v", ev.ID, err)
		return RespondWithError(s, i, "Failed to load the event's participants.")
	}

	description, fields := renderEventStatus(ev, listed.Participants)
	fields = append(fields, &discordgo.MessageEmbedField{
		Name:  "Roster",
		Value: renderParticipantList(listed.Participants),
	})

	return RespondWithEmbed(s, i, "Ratmas 🐀🎄", description, fields)
}

func (c *RatmasCommand) handleReveal(s *discordgo.Session, i *discordgo.InteractionCreate, guildID string) error {
	ctx := context.Background()

	ev, err := c.activeEvent(ctx, s, i, guildID)
	if ev == nil {
		return err
	}

	output, err := c.eventService.RevealPairings(ctx, &event.RevealPairingsInput{EventID: ev.ID})
	if err != nil {
		if errors.Is(err, event.ErrInvalidEventStatus) {
			return RespondWithEphemeralMessage(s, i, "The reveal comes after every santa has been notified.")
		}
		log.Printf("Error revealing pairings for event %s: %v", ev.ID, err)
		return RespondWithError(s, i, "Failed to reveal the santas.")
	}

	if ev.AnnounceChannelID != "" && ev.AnnounceChannelID != i.ChannelID {
		if _, err := s.ChannelMessageSend(ev.AnnounceChannelID, output.Message); err != nil {
			log.Printf("Error posting reveal for event %s: %v", ev.ID, err)
		}
	}

	return RespondWithMessage(s, i, output.Message)
}

func (c *RatmasCommand) handlePurge(s *discordgo.Session, i *discordgo.InteractionCreate, guildID string) error {
	ctx := context.Background()

	ev, err := c.activeEvent(ctx, s, i, guildID)
	if ev == nil {
		return err
	}

	if _, err := c.eventService.PurgeEvent(ctx, &event.PurgeEventInput{EventID: ev.ID}); err != nil {
		log.Printf("Error purging event %s: %v", ev.ID, err)
		return RespondWithError(s, i, "Failed to purge the event.")
	}

	return RespondWithEphemeralMessage(s, i, "The event and all its data are gone. 🧹")
}

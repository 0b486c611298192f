package discord

import (
	"fmt"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"

	"ratmas/internal/models"
)

const embedDateFormat = "Mon, Jan 2 2006"

// statusLabels maps lifecycle statuses to the text shown in embeds
var statusLabels = map[models.EventStatus]string{
	models.EventStatusOpen:      "🟢 Signups open",
	models.EventStatusLocked:    "🔒 Signups locked",
	models.EventStatusMatched:   "🎁 Santas drawn",
	models.EventStatusNotified:  "📬 Santas notified",
	models.EventStatusCompleted: "🏁 Completed",
	models.EventStatusCancelled: "❌ Cancelled",
}

func statusLabel(status models.EventStatus) string {
	if label, ok := statusLabels[status]; ok {
		return label
	}
	return string(status)
}

// renderEventStatus builds the embed fields for the status subcommand
func renderEventStatus(event *models.Event, participants []*models.Participant) (string, []*discordgo.MessageEmbedField) {
	loc, err := time.LoadLocation(event.Timezone)
	if err != nil {
		loc = time.UTC
	}

	fields := []*discordgo.MessageEmbedField{
		{
			Name:   "Status",
			Value:  statusLabel(event.Status),
			Inline: true,
		},
		{
			Name:   "Participants",
			Value:  fmt.Sprintf("%d", len(participants)),
			Inline: true,
		},
		{
			Name:   "Purchase deadline",
			Value:  event.PurchaseDeadline.In(loc).Format(embedDateFormat),
			Inline: true,
		},
		{
			Name:   "Reveal",
			Value:  event.RevealDate.In(loc).Format(embedDateFormat),
			Inline: true,
		},
	}

	if event.EndDate != nil {
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:   "Ends",
			Value:  event.EndDate.In(loc).Format(embedDateFormat),
			Inline: true,
		})
	}

	description := fmt.Sprintf("Ratmas event started %s", event.StartDate.In(loc).Format(embedDateFormat))
	return description, fields
}

// renderParticipantList builds the roster text for the status embed
func renderParticipantList(participants []*models.Participant) string {
	if len(participants) == 0 {
		return "Nobody has joined yet. Be the first rat! 🐀"
	}

	var b strings.Builder
	for i, p := range participants {
		b.WriteString(fmt.Sprintf("%d. %s", i+1, p.DisplayName))
		if p.WishlistURL != "" {
			b.WriteString(" 📋")
		}
		b.WriteString("\n")
	}
	return b.String()
}

// renderAssignment builds the ephemeral text for the mine subcommand
func renderAssignment(recipient *models.Participant) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("You are the Secret Santa for **%s**.", recipient.DisplayName))
	if recipient.WishlistURL != "" {
		b.WriteString(fmt.Sprintf("\nWishlist: %s", recipient.WishlistURL))
	} else {
		b.WriteString("\nThey haven't posted a wishlist yet.")
	}
	return b.String()
}

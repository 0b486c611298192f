package messaging

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) Service {
	t.Helper()
	svc, err := NewService(&Config{Seed: 1})
	require.NoError(t, err)
	return svc
}

func TestGetAssignmentMessage(t *testing.T) {
	svc := newTestService(t)

	out, err := svc.GetAssignmentMessage(context.Background(), &GetAssignmentMessageInput{
		RecipientName:    "Alice",
		WishlistURL:      "https://example.com/alice",
		PurchaseDeadline: time.Date(2024, 12, 20, 0, 0, 0, 0, time.UTC),
		RevealDate:       time.Date(2024, 12, 25, 0, 0, 0, 0, time.UTC),
		Timezone:         "UTC",
	})
	require.NoError(t, err)

	assert.Contains(t, out.Message, "Alice")
	assert.Contains(t, out.Message, "https://example.com/alice")
	assert.Contains(t, out.Message, "Friday, December 20")
	assert.Contains(t, out.Message, "Wednesday, December 25")
}

func TestGetAssignmentMessage_WishlistPlaceholder(t *testing.T) {
	svc := newTestService(t)

	out, err := svc.GetAssignmentMessage(context.Background(), &GetAssignmentMessageInput{
		RecipientName:    "Bob",
		PurchaseDeadline: time.Date(2024, 12, 20, 0, 0, 0, 0, time.UTC),
		RevealDate:       time.Date(2024, 12, 25, 0, 0, 0, 0, time.UTC),
		Timezone:         "UTC",
	})
	require.NoError(t, err)

	assert.Contains(t, out.Message, "Bob")
	assert.Contains(t, out.Message, "haven't posted a wishlist")
	assert.NotContains(t, out.Message, "Their wishlist:")
}

func TestGetAssignmentMessage_TimezoneRendering(t *testing.T) {
	svc := newTestService(t)

	// Midnight Dec 20 UTC is still Dec 19 in New York
	out, err := svc.GetAssignmentMessage(context.Background(), &GetAssignmentMessageInput{
		RecipientName:    "Carol",
		PurchaseDeadline: time.Date(2024, 12, 20, 0, 0, 0, 0, time.UTC),
		RevealDate:       time.Date(2024, 12, 25, 0, 0, 0, 0, time.UTC),
		Timezone:         "America/New_York",
	})
	require.NoError(t, err)

	assert.Contains(t, out.Message, "Thursday, December 19")
}

func TestGetAssignmentMessage_BadTimezone(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.GetAssignmentMessage(context.Background(), &GetAssignmentMessageInput{
		RecipientName:    "Dave",
		PurchaseDeadline: time.Now(),
		RevealDate:       time.Now(),
		Timezone:         "Not/AZone",
	})
	assert.Error(t, err)
}

func TestGetRelayMessage(t *testing.T) {
	svc := newTestService(t)

	out, err := svc.GetRelayMessage(context.Background(), &GetRelayMessageInput{
		Text: "What size shirt do you wear?",
	})
	require.NoError(t, err)

	assert.Contains(t, out.Message, "Secret Santa")
	assert.Contains(t, out.Message, "What size shirt do you wear?")

	_, err = svc.GetRelayMessage(context.Background(), &GetRelayMessageInput{Text: "   "})
	assert.Error(t, err)
}

func TestGetRevealMessage(t *testing.T) {
	svc := newTestService(t)

	out, err := svc.GetRevealMessage(context.Background(), &GetRevealMessageInput{
		Entries: []RevealEntry{
			{SantaName: "Alice", RecipientName: "Bob"},
			{SantaName: "Bob", RecipientName: "Alice"},
		},
	})
	require.NoError(t, err)

	assert.Contains(t, out.Message, "**Alice** → **Bob**")
	assert.Contains(t, out.Message, "**Bob** → **Alice**")

	_, err = svc.GetRevealMessage(context.Background(), &GetRevealMessageInput{})
	assert.Error(t, err)
}

func TestGetAnnouncementMessage(t *testing.T) {
	svc := newTestService(t)

	out, err := svc.GetAnnouncementMessage(context.Background(), &GetAnnouncementMessageInput{
		RoleID:           "role-123",
		StartDate:        time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC),
		PurchaseDeadline: time.Date(2024, 12, 20, 0, 0, 0, 0, time.UTC),
		RevealDate:       time.Date(2024, 12, 25, 0, 0, 0, 0, time.UTC),
		Timezone:         "UTC",
	})
	require.NoError(t, err)

	assert.Contains(t, out.Message, "<@&role-123>")
	assert.Contains(t, out.Message, "/ratmas join")
	assert.Contains(t, out.Message, "Sunday, December 1")
}

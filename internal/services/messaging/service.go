package messaging

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"
)

const dateFormat = "Monday, January 2"

// service implements the Service interface
type service struct {
	// Random number generator for selecting greeting variants
	rand *rand.Rand
}

// NewService creates a new messaging service
func NewService(cfg *Config) (Service, error) {
	var seed int64
	if cfg != nil && cfg.Seed != 0 {
		seed = cfg.Seed
	} else {
		seed = time.Now().UnixNano()
	}

	return &service{
		rand: rand.New(rand.NewSource(seed)),
	}, nil
}

// GetAssignmentMessage returns the DM telling a santa who they drew
func (s *service) GetAssignmentMessage(ctx context.Context, input *GetAssignmentMessageInput) (*GetAssignmentMessageOutput, error) {
	if input == nil || input.RecipientName == "" {
		return nil, errors.New("input and recipient name cannot be empty")
	}

	loc, err := time.LoadLocation(input.Timezone)
	if err != nil {
		return nil, fmt.Errorf("failed to load timezone %q: %w", input.Timezone, err)
	}

	greetings := []string{
		"🐀 The rats have spoken!",
		"🐀 Squeak squeak! The drawing is done.",
		"🐀 Your Ratmas fate is sealed!",
	}

	var b strings.Builder
	b.WriteString(greetings[s.rand.Intn(len(greetings))])
	b.WriteString(fmt.Sprintf("\n\nYou are the Secret Santa for **%s**!\n", input.RecipientName))

	if input.WishlistURL != "" {
		b.WriteString(fmt.Sprintf("\nTheir wishlist: %s\n", input.WishlistURL))
	} else {
		b.WriteString("\nThey haven't posted a wishlist yet. You're on your own — choose wisely!\n")
	}

	b.WriteString(fmt.Sprintf("\nBuy your gift by **%s** and keep it secret until the reveal on **%s**.",
		input.PurchaseDeadline.In(loc).Format(dateFormat),
		input.RevealDate.In(loc).Format(dateFormat)))

	return &GetAssignmentMessageOutput{
		Message: b.String(),
	}, nil
}

// GetAnnouncementMessage returns the channel post announcing a new event
func (s *service) GetAnnouncementMessage(ctx context.Context, input *GetAnnouncementMessageInput) (*GetAnnouncementMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	loc, err := time.LoadLocation(input.Timezone)
	if err != nil {
		return nil, fmt.Errorf("failed to load timezone %q: %w", input.Timezone, err)
	}

	var b strings.Builder
	b.WriteString("🎁 **Ratmas is on!** 🐀\n\n")
	if input.RoleID != "" {
		b.WriteString(fmt.Sprintf("Everyone with <@&%s> is invited. Use `/ratmas join` to sign up!\n\n", input.RoleID))
	} else {
		b.WriteString("Use `/ratmas join` to sign up!\n\n")
	}
	b.WriteString(fmt.Sprintf("Kickoff: **%s**\n", input.StartDate.In(loc).Format(dateFormat)))
	b.WriteString(fmt.Sprintf("Gifts bought by: **%s**\n", input.PurchaseDeadline.In(loc).Format(dateFormat)))
	b.WriteString(fmt.Sprintf("Reveal: **%s**", input.RevealDate.In(loc).Format(dateFormat)))

	return &GetAnnouncementMessageOutput{
		Message: b.String(),
	}, nil
}

// GetRelayMessage wraps an anonymous note from a santa to their recipient
func (s *service) GetRelayMessage(ctx context.Context, input *GetRelayMessageInput) (*GetRelayMessageOutput, error) {
	if input == nil || strings.TrimSpace(input.Text) == "" {
		return nil, errors.New("input and text cannot be empty")
	}

	return &GetRelayMessageOutput{
		Message: fmt.Sprintf("🐀 **A message from your Secret Santa:**\n\n%s", input.Text),
	}, nil
}

// GetRevealMessage returns the post listing every santa once the event ends
func (s *service) GetRevealMessage(ctx context.Context, input *GetRevealMessageInput) (*GetRevealMessageOutput, error) {
	if input == nil || len(input.Entries) == 0 {
		return nil, errors.New("input and entries cannot be empty")
	}

	var b strings.Builder
	b.WriteString("🎉 **The big reveal!** Here's who was gifting whom:\n\n")
	for _, entry := range input.Entries {
		b.WriteString(fmt.Sprintf("🎁 **%s** → **%s**\n", entry.SantaName, entry.RecipientName))
	}
	b.WriteString("\nThanks for playing Ratmas! 🐀")

	return &GetRevealMessageOutput{
		Message: b.String(),
	}, nil
}

package messaging

import "time"

// Config holds configuration for the messaging service
type Config struct {
	// Optional seed for testing the greeting picker
	Seed int64
}

// GetAssignmentMessageInput describes one santa's assignment
type GetAssignmentMessageInput struct {
	// RecipientName is the display name of the person the santa drew
	RecipientName string

	// WishlistURL is the recipient's wishlist link, may be empty
	WishlistURL string

	// PurchaseDeadline is when gifts must be bought by
	PurchaseDeadline time.Time

	// RevealDate is when santas are revealed
	RevealDate time.Time

	// Timezone is the IANA timezone the dates are phrased in
	Timezone string
}

// GetAssignmentMessageOutput contains the assignment DM text
type GetAssignmentMessageOutput struct {
	Message string
}

// GetAnnouncementMessageInput describes a new event to announce
type GetAnnouncementMessageInput struct {
	RoleID           string
	StartDate        time.Time
	PurchaseDeadline time.Time
	RevealDate       time.Time
	Timezone         string
}

// GetAnnouncementMessageOutput contains the announcement text
type GetAnnouncementMessageOutput struct {
	Message string
}

// GetRelayMessageInput wraps an anonymous note
type GetRelayMessageInput struct {
	// Text is the santa's note, passed through verbatim
	Text string
}

// GetRelayMessageOutput contains the relayed DM text
type GetRelayMessageOutput struct {
	Message string
}

// RevealEntry is one santa/recipient pair for the reveal post
type RevealEntry struct {
	SantaName     string
	RecipientName string
}

// GetRevealMessageInput lists every pairing to reveal
type GetRevealMessageInput struct {
	Entries []RevealEntry
}

// GetRevealMessageOutput contains the reveal post text
type GetRevealMessageOutput struct {
	Message string
}

package models

import (
	"time"
)

// Participant represents one user's enrollment in an event
type Participant struct {
	// ID is a unique identifier for this enrollment
	ID string

	// EventID is the event the user is enrolled in
	EventID string

	// UserID is the Discord user ID
	UserID string

	// DisplayName is the user's display name captured at join time
	DisplayName string

	// WishlistURL is an optional link to the user's wishlist
	WishlistURL string

	// JoinedAt is when the user enrolled
	JoinedAt time.Time

	// UpdatedAt is when the enrollment was last updated
	UpdatedAt time.Time
}

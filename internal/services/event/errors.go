package event

// Error is a custom error type for event service errors
type Error string

// Error implements the error interface
func (e Error) Error() string {
	return string(e)
}

// Define errors
const (
	ErrEventNotFound            Error = "event not found"
	ErrNoActiveEvent            Error = "no active event for this guild"
	ErrEventAlreadyActive       Error = "guild already has an active event"
	ErrInvalidTransition        Error = "status transition not allowed"
	ErrInvalidEventStatus       Error = "operation not allowed for event status"
	ErrAlreadyParticipant       Error = "user is already a participant"
	ErrNotAParticipant          Error = "user is not a participant"
	ErrInsufficientParticipants Error = "not enough participants"
	ErrDerangementFailed        Error = "could not draw a valid pairing permutation"
	ErrPairingNotFound          Error = "pairing not found"
	ErrNilConfig                Error = "config cannot be nil"
	ErrNilEventRepo             Error = "event repository cannot be nil"
	ErrNilParticipantRepo       Error = "participant repository cannot be nil"
	ErrNilPairingRepo           Error = "pairing repository cannot be nil"
	ErrNilShuffler              Error = "shuffler cannot be nil"
	ErrNilClock                 Error = "clock cannot be nil"
	ErrNilUUIDGenerator         Error = "UUID generator cannot be nil"
	ErrNilMessenger             Error = "messenger cannot be nil"
	ErrNilMemberFetcher         Error = "member fetcher cannot be nil"
	ErrNilMessagingService      Error = "messaging service cannot be nil"
)

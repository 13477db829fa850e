package ticket

// ==================== Configuration File Names ====================

const (
	// CommentKey marks the metadata entry skipped during normalization
	CommentKey = "_comment"

	// TicketsSchemaPath is the JSON schema the raw tickets file is validated against
	TicketsSchemaPath = "configs/schemas/tickets.schema.json"
)

// ==================== Error Messages ====================

// File operation error messages
const (
	ErrMsgReadTicketsFailed  = "failed to read tickets file"
	ErrMsgParseTicketsFailed = "failed to parse tickets file"
	ErrMsgSchemaFailed       = "schema validation failed"
	ErrMsgNotAnObject        = "top level must be an object of ticket entries"
)

// Entry-level problem formats (aggregated into a single malformed-game error)
const (
	ErrFmtEntryNotArray = "ticket '%s': bet must be an array of numbers"
	ErrFmtEntryEmpty    = "ticket '%s': no bets defined"
	ErrFmtBadBet        = "game '%s': %s"
)

// Bet validation messages
const (
	ErrFmtBetWrongCount = "bet must have exactly %d numbers, got %d"
	ErrFmtBetNotInteger = "value '%s' is not an integer"
	ErrFmtBetOutOfRange = "number %d is outside [%d,%d]"
	ErrFmtBetRepeats    = "number %d repeats"
	ErrMsgBetNotNumbers = "bet must contain only integers"
)

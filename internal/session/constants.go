package session

// ==================== Log Messages ====================

const (
	LogMsgToggleCalled       = "Toggle called"
	LogMsgToggleRejectedFull = "Toggle rejected, selection already full"
	LogMsgSelectionCleared   = "Selection cleared"
	LogMsgFilterSet          = "Hits-only filter set"
	LogMsgCelebrationFired   = "Celebration fired"
	LogMsgEventPublishFailed = "Event publish failed"
)

package event

// EventSchemaVersion is stamped on every published event so consumers
// can detect payload shape changes.
const EventSchemaVersion = "1.0"

// LogMsgHandlerErrorFormat reports subscriber failures for one event.
const LogMsgHandlerErrorFormat = "encountered %d errors while handling event %s: %v"

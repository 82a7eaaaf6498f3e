package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details.
const (
	ErrMsgItemNotFound      = "Item not found"
	ErrMsgInvalidActorID    = "Invalid actor ID"
	ErrMsgNotReady          = "no custom items loaded"
	ErrMsgGenericServerErr  = "Something went wrong"
	ErrMsgEncodeFailed      = "Failed to encode JSON response"
	ErrMsgWriteBufferFailed = "Failed to write response buffer"
)

// Log messages
const (
	LogMsgReadinessFailed = "Readiness check failed"
	LogMsgCooldownReset   = "Cooldown reset via admin route"
)

// URL parameters
const (
	ParamItemName = "name"
	ParamActorID  = "actorID"
)

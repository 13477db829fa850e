package server

// HTTP error messages for middleware responses
const (
	ErrMsgUnauthorized    = "Unauthorized"
	ErrMsgTooManyRequests = "Too Many Requests"
)

// Security alert message templates
const (
	SecurityAlertFailedAuth = "⚠️ SECURITY ALERT: Multiple failed authentication attempts"
	SecurityAlertHighRate   = "⚠️ SECURITY ALERT: Blocking high request rate"
)

// Log messages for server lifecycle and request handling
const (
	LogMsgServerStarting   = "Server starting"
	LogMsgRequestStarted   = "Request started"
	LogMsgRequestCompleted = "Request completed"
	LogMsgRequestHeaders   = "Request headers"
	LogMsgAuthFailed       = "Authentication failed"
)

// HTTP header names
const (
	HeaderAPIKey         = "X-API-Key"
	HeaderAuthorization  = "Authorization"
	HeaderForwardedFor   = "X-Forwarded-For"
	HeaderContentType    = "X-Content-Type-Options"
	HeaderFrameOptions   = "X-Frame-Options"
	HeaderXSSProtection  = "X-XSS-Protection"
	HeaderReferrerPolicy = "Referrer-Policy"
)

// Security header values
const (
	HeaderValueNoSniff              = "nosniff"
	HeaderValueSameOrigin           = "SAMEORIGIN"
	HeaderValueXSSBlock             = "1; mode=block"
	HeaderValueReferrerStrictOrigin = "strict-origin-when-cross-origin"
)

// PublicPathsExact lists paths that bypass authentication only on an exact
// match. The UI root cannot be a prefix: it would match every path.
var PublicPathsExact = []string{
	"/",
	"/index.html",
}

// PublicPathPrefixes lists path prefixes that bypass authentication.
// Read-only session endpoints and the event stream stay open so the
// browser UI works without a key; mutating endpoints are gated.
var PublicPathPrefixes = []string{
	"/static/",
	"/swagger/",
	"/healthz",
	"/readyz",
	"/metrics",
	"/version",
	"/api/v1/events",
	"/api/v1/session",
	"/api/v1/games",
}

// Header redaction marker
const (
	RedactedValue = "[REDACTED]"
)

package metrics

// Common metric attribute keys to keep telemetry consistent/searchable.
const (
	AttrMethod   = "method"
	AttrPath     = "path"
	AttrStatus   = "status"
	AttrDocument = "document"
	AttrFallback = "fallback"
	AttrAction   = "action"
	AttrOutcome  = "outcome"
)

// Auth actions and outcomes recorded by RecordAuthAttempt.
const (
	ActionLogin    = "login"
	ActionRegister = "register"

	OutcomeSuccess  = "success"
	OutcomeRejected = "rejected"
	OutcomeError    = "error"
)

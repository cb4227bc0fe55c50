package logging

const (
	// FieldComponent is the standardized structured logging key for component names.
	FieldComponent = "component"
	// FieldEventType classifies a log line for filtering (e.g. manifest_skipped).
	FieldEventType = "event_type"
	// FieldErrorHint suggests the next step to the reader of a warning or error.
	FieldErrorHint = "error_hint"
	// FieldImpact is the standardized key for user-facing consequence of a warning.
	FieldImpact = "impact"
	// FieldPath carries the file or directory a record is about.
	FieldPath = "path"
	// FieldAppID carries a Steam application ID.
	FieldAppID = "app_id"
	// FieldSessionID identifies one steamtools invocation.
	FieldSessionID = "session_id"
)

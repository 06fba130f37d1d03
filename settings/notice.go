package settings

// Severity classifies a user-visible notice.
type Severity string

// Notice severities.
const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeveritySuccess Severity = "success"
	SeverityInfo    Severity = "info"
)

// Notice codes emitted by the submission pipeline.
const (
	// NoticeMalformedSubmission flags a top-level payload that is not a
	// mapping. Nothing is persisted in that case.
	NoticeMalformedSubmission = "malformed_submission"

	// NoticeValidationFailed flags a field whose validate callback
	// rejected the sanitized value. The field reverts to its default.
	NoticeValidationFailed = "validation_failed"
)

// Notice is one user-visible message accumulated while processing a
// submission. Notices are rendered above the form.
type Notice struct {
	Code     string
	Message  string
	Severity Severity
}

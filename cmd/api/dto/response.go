package dto

// Error codes surfaced to API callers. Admin screens show Message verbatim;
// public forms only ever see a generic retry notice client-side.
const (
	CodeNotFound            = "not_found"
	CodeUnauthorized        = "unauthorized"
	CodeSlugConflict        = "slug_conflict"
	CodeValidationFailed    = "validation_failed"
	CodeUpstreamUnavailable = "upstream_unavailable"
	CodeTimeout             = "timeout"
	CodeUnconfigured        = "unconfigured"
	CodeInternal            = "internal_error"
)

// Err builds the error envelope for a code and human-readable message.
func Err(code, message string) map[string]string {
	return map[string]string{"code": code, "error": message}
}

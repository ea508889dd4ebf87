package errors

// HTTPError represents an HTTP error with a business error code, message and status code.
type HTTPError struct {
	Code       int
	Message    string
	StatusCode int
}

// ValidationError reports an invalid value for a single request field.
type ValidationError struct {
	Code     int
	Field    string
	Messages []string
}

// ValidationErrorCollector accumulates validation errors for a request.
type ValidationErrorCollector struct {
	errors []*ValidationError
}

// PermissionError reports a denied action for a single resource or field.
type PermissionError struct {
	Code     int
	Field    string
	Messages []string
}

// PermissionErrorCollector accumulates permission errors for a request.
type PermissionErrorCollector struct {
	errors []*PermissionError
}

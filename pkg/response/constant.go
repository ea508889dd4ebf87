package response

const (
	MessageSuccess      = "Success"
	DefaultErrorMessage = "Something went wrong"

	ValidationErrorCode = 400
	ValidationErrorMsg  = "Validation error"
	PermissionErrorCode = 403
	PermissionErrorMsg  = "Permission denied"

	InternalServerErrorCode = 500

	DefaultStackTraceDepth = 16
)

const (
	DateFormat     = "2006-01-02"
	DateTimeFormat = "2006-01-02 15:04:05"
)

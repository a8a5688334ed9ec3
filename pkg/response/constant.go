package response

const (
	MessageSuccess          = "Success"
	DefaultErrorMessage     = "Something went wrong"
	ValidationErrorCode     = 400
	InternalServerErrorCode = 500

	// RetryLaterMessage is returned with every 429.
	RetryLaterMessage = "Too many requests. Please retry after a short delay."
)

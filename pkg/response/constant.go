package response

const (
	MessageSuccess      = "Success"
	DefaultErrorMessage = "Something went wrong"
)

const (
	BadRequestErrorCode     = 400
	NotFoundErrorCode       = 404
	InternalServerErrorCode = 500
)

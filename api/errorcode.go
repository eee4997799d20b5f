package api

import "github.com/wandermate/wandermate-api/store"

var (
	errorMessageMap = map[int64]string{
		999:  "internal server error",
		1000: store.ErrInvalidCredentials.Error(),
		1001: "invalid authorization format",
		1003: "invalid token",

		1010: "invalid parameters",
		1011: "cannot parse request",
		1012: "unknown place category",

		1100: "this email has already been registered",
		1101: "account not found",

		1200: store.ErrReviewNotFound.Error(),
		1201: store.ErrNotReviewAuthor.Error(),

		1300: store.ErrBookingNotFound.Error(),
		1301: store.ErrInvalidBookingDate.Error(),
	}

	errorInternalServer             = errorJSON(999)
	errorInvalidCredentials         = errorJSON(1000)
	errorInvalidAuthorizationFormat = errorJSON(1001)
	errorInvalidToken               = errorJSON(1003)

	errorInvalidParameters    = errorJSON(1010)
	errorCannotParseRequest   = errorJSON(1011)
	errorUnknownPlaceCategory = errorJSON(1012)

	errorAccountTaken    = errorJSON(1100)
	errorAccountNotFound = errorJSON(1101)

	errorReviewNotFound  = errorJSON(1200)
	errorNotReviewAuthor = errorJSON(1201)

	errorBookingNotFound    = errorJSON(1300)
	errorInvalidBookingDate = errorJSON(1301)
)

type ErrorResponse struct {
	Code    int64  `json:"code"`
	Message string `json:"message"`
}

// errorJSON converts an error code to a standardized error object
func errorJSON(code int64) ErrorResponse {
	var message string
	if msg, ok := errorMessageMap[code]; ok {
		message = msg
	} else {
		message = "unknown"
	}

	return ErrorResponse{
		Code:    code,
		Message: message,
	}
}

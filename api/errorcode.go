package api

import "github.com/opencampus/assist-api/store"

var (
	errorMessageMap = map[int64]string{
		999:  "internal server error",
		1001: "invalid authorization format",
		1002: "invalid email or password",
		1003: "invalid token",
		1004: "session expired or revoked",

		1010: "invalid parameters",
		1011: "cannot parse request",

		1100: store.ErrAccountTaken.Error(),
		1101: store.ErrAccountNotFound.Error(),
		1102: "admin access required",

		1200: store.ErrRequestNotExist.Error(),
		1201: store.ErrInvalidTransition.Error(),
		1202: store.ErrOwnRequestAccept.Error(),
		1203: store.ErrNotRequestOwner.Error(),
		1204: "some cached records were malformed and skipped",
	}

	errorInternalServer             = errorJSON(999)
	errorInvalidAuthorizationFormat = errorJSON(1001)
	errorInvalidCredentials         = errorJSON(1002)
	errorInvalidToken               = errorJSON(1003)
	errorSessionRevoked             = errorJSON(1004)

	errorInvalidParameters  = errorJSON(1010)
	errorCannotParseRequest = errorJSON(1011)

	errorAccountTaken    = errorJSON(1100)
	errorAccountNotFound = errorJSON(1101)
	errorAdminOnly       = errorJSON(1102)

	errorRequestNotExist   = errorJSON(1200)
	errorInvalidTransition = errorJSON(1201)
	errorOwnRequestAccept  = errorJSON(1202)
	errorNotRequestOwner   = errorJSON(1203)
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

package errors

import "net/http"

// Code represents an error code
type Code string

// Generic error codes
const (
	CodeOK                 Code = "OK"
	CodeCanceled           Code = "CANCELED"
	CodeInvalidArgument    Code = "INVALID_ARGUMENT"
	CodeNotFound           Code = "NOT_FOUND"
	CodeAlreadyExists      Code = "ALREADY_EXISTS"
	CodeFailedPrecondition Code = "FAILED_PRECONDITION"
	CodeUnimplemented      Code = "UNIMPLEMENTED"
	CodeInternal           Code = "INTERNAL"
	CodeUnavailable        Code = "UNAVAILABLE"
)

// Game error codes
const (
	CodeInsufficientFunds    Code = "INSUFFICIENT_FUNDS"
	CodeMaxLevelReached      Code = "MAX_LEVEL_REACHED"
	CodePrestigeNotAvailable Code = "PRESTIGE_NOT_AVAILABLE"
	CodeZoneLocked           Code = "ZONE_LOCKED"
	CodeNotCompleted         Code = "NOT_COMPLETED"
	CodeAlreadyClaimed       Code = "ALREADY_CLAIMED"
	CodeUnknownObjectiveKind Code = "UNKNOWN_OBJECTIVE_KIND"
)

// String returns the string representation of the code
func (c Code) String() string {
	return string(c)
}

// IsGame reports whether the code is one of the game precondition codes
func (c Code) IsGame() bool {
	switch c {
	case CodeInsufficientFunds, CodeMaxLevelReached, CodePrestigeNotAvailable,
		CodeZoneLocked, CodeNotCompleted, CodeAlreadyClaimed, CodeUnknownObjectiveKind:
		return true
	default:
		return false
	}
}

// HTTPStatus returns the corresponding HTTP status code
func (c Code) HTTPStatus() int {
	switch c {
	case CodeOK:
		return http.StatusOK
	case CodeCanceled:
		return http.StatusRequestTimeout
	case CodeInvalidArgument:
		return http.StatusBadRequest
	case CodeNotFound:
		return http.StatusNotFound
	case CodeAlreadyExists, CodeAlreadyClaimed:
		return http.StatusConflict
	case CodeFailedPrecondition, CodeInsufficientFunds, CodeMaxLevelReached,
		CodePrestigeNotAvailable, CodeZoneLocked, CodeNotCompleted:
		return http.StatusPreconditionFailed
	case CodeUnimplemented, CodeUnknownObjectiveKind:
		return http.StatusNotImplemented
	case CodeUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

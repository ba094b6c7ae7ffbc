package errors

import (
	"errors"
)

// As is a wrapper around errors.As that works with our Error type
func As(err error, target **Error) bool {
	return errors.As(err, target)
}

// Is checks if an error is of a specific type
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// Join combines errors; nil entries are dropped
func Join(errs ...error) error {
	return errors.Join(errs...)
}

// GetCode extracts the error code from an error
func GetCode(err error) Code {
	if err == nil {
		return CodeOK
	}

	var customErr *Error
	if errors.As(err, &customErr) {
		return customErr.Code
	}

	return CodeInternal
}

// GetMeta extracts metadata from an error
func GetMeta(err error) map[string]any {
	var customErr *Error
	if errors.As(err, &customErr) {
		return customErr.Meta
	}
	return nil
}

// GetMessage extracts the user-friendly message from an error
func GetMessage(err error) string {
	if err == nil {
		return ""
	}

	var customErr *Error
	if errors.As(err, &customErr) {
		return customErr.Message
	}

	return err.Error()
}

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return GetCode(err) == CodeNotFound
}

// IsInvalidArgument checks if an error is an invalid argument error
func IsInvalidArgument(err error) bool {
	return GetCode(err) == CodeInvalidArgument
}

// IsInternal checks if an error is an internal error
func IsInternal(err error) bool {
	return GetCode(err) == CodeInternal
}

// IsUnavailable checks if an error is an unavailable error
func IsUnavailable(err error) bool {
	return GetCode(err) == CodeUnavailable
}

// IsFailedPrecondition checks if an error is a failed precondition error
func IsFailedPrecondition(err error) bool {
	return GetCode(err) == CodeFailedPrecondition
}

// IsInsufficientFunds checks if an error is an insufficient funds error
func IsInsufficientFunds(err error) bool {
	return GetCode(err) == CodeInsufficientFunds
}

// IsMaxLevelReached checks if an error is a max level error
func IsMaxLevelReached(err error) bool {
	return GetCode(err) == CodeMaxLevelReached
}

// IsPrestigeNotAvailable checks if an error is a prestige not available error
func IsPrestigeNotAvailable(err error) bool {
	return GetCode(err) == CodePrestigeNotAvailable
}

// IsZoneLocked checks if an error is a zone locked error
func IsZoneLocked(err error) bool {
	return GetCode(err) == CodeZoneLocked
}

// IsNotCompleted checks if an error is a not completed error
func IsNotCompleted(err error) bool {
	return GetCode(err) == CodeNotCompleted
}

// IsAlreadyClaimed checks if an error is an already claimed error
func IsAlreadyClaimed(err error) bool {
	return GetCode(err) == CodeAlreadyClaimed
}

// IsUnknownObjectiveKind checks if an error is an unknown objective kind error
func IsUnknownObjectiveKind(err error) bool {
	return GetCode(err) == CodeUnknownObjectiveKind
}

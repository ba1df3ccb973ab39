package qr

import "errors"

// ValidationError is a user-facing input error. Its message is safe to
// return to the caller verbatim.
type ValidationError string

func (e ValidationError) Error() string { return string(e) }

var (
	ErrURLRequired      ValidationError = "URL is required."
	ErrTextRequired     ValidationError = "Text content is required."
	ErrSSIDRequired     ValidationError = "Wi-Fi SSID is required."
	ErrNameRequired     ValidationError = "At least a first or last name is required."
	ErrSizeNotInteger   ValidationError = "Size must be an integer."
	ErrMarginNotInteger ValidationError = "Margin must be an integer."

	ErrInvalidHexColor = errors.New("qr: invalid hex color")
)

// UnknownModeError is returned when a content mode tag is not recognised.
type UnknownModeError struct {
	Mode string
}

func (e *UnknownModeError) Error() string { return "Unknown mode: " + e.Mode }

// IsValidationError reports whether err was caused by bad user input.
func IsValidationError(err error) bool {
	var verr ValidationError
	if errors.As(err, &verr) {
		return true
	}
	var merr *UnknownModeError
	return errors.As(err, &merr)
}

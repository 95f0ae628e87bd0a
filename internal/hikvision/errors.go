package hikvision

import (
	"fmt"
	"time"

	custerror "github.com/CE-Thesis-2023/ptzctl/internal/error"
)

const authorizeMessage = "failed to log in and access the camera: check that the login and password are correct, " +
	"that Configuration -> System -> Authentication -> Web Authentication is set to digest/basic, " +
	"and that Configuration -> PTZ -> Enable PTZ Control is checked"

// AuthorizeError is returned by NewCamera when the capabilities probe is
// rejected as unauthorized.
type AuthorizeError struct{}

func (e *AuthorizeError) Error() string {
	return authorizeMessage
}

func (e *AuthorizeError) Unwrap() error {
	return custerror.ErrorPermissionDenied
}

// QuickRequestError is returned when an event on an axis arrives before the
// movement speed has elapsed since the previous admitted event.
type QuickRequestError struct {
	Axis     Axis
	Required time.Duration
}

func (e *QuickRequestError) Error() string {
	return fmt.Sprintf("request for the <%s> action is too quick: %dms must have passed since the last request",
		e.Axis, e.Required.Milliseconds())
}

func (e *QuickRequestError) Unwrap() error {
	return custerror.ErrorTooManyRequests
}

// OutOfRangeUnitError is returned for units outside -100..100.
type OutOfRangeUnitError struct {
	Axis  Axis
	Value int
}

func (e *OutOfRangeUnitError) Error() string {
	return fmt.Sprintf("unit of measurement for the <%s> event does not lie in the range %d..%d, its value %d",
		e.Axis, minUnit, maxUnit, e.Value)
}

func (e *OutOfRangeUnitError) Unwrap() error {
	return custerror.ErrorInvalidArgument
}

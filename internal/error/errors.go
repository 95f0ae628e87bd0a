package custerror

import (
	"fmt"
)

const (
	CodeInvalidArgument uint32 = iota + 1
	CodePermissionDenied
	CodeNotFound
	CodeAlreadyExists
	CodeTooManyRequests
	CodeInternal
)

type CustomError struct {
	Code    uint32 `json:"code"`
	Message string `json:"message"`
}

func (e *CustomError) Error() string {
	return e.Message
}

// Is matches on the error code so wrapped domain errors compare equal
// to the sentinels below.
func (e *CustomError) Is(target error) bool {
	t, ok := target.(*CustomError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

func NewError(msg string, code uint32) *CustomError {
	return &CustomError{
		Code:    code,
		Message: msg,
	}
}

var (
	ErrorInvalidArgument  = NewError("invalid argument", CodeInvalidArgument)
	ErrorPermissionDenied = NewError("permission denied", CodePermissionDenied)
	ErrorNotFound         = NewError("not found", CodeNotFound)
	ErrorAlreadyExists    = NewError("already exists", CodeAlreadyExists)
	ErrorTooManyRequests  = NewError("too many requests", CodeTooManyRequests)
	ErrorInternal         = NewError("internal error", CodeInternal)
)

func FormatInvalidArgument(format string, args ...interface{}) *CustomError {
	return NewError(fmt.Sprintf(format, args...), CodeInvalidArgument)
}

func FormatPermissionDenied(format string, args ...interface{}) *CustomError {
	return NewError(fmt.Sprintf(format, args...), CodePermissionDenied)
}

func FormatNotFound(format string, args ...interface{}) *CustomError {
	return NewError(fmt.Sprintf(format, args...), CodeNotFound)
}

func FormatAlreadyExists(format string, args ...interface{}) *CustomError {
	return NewError(fmt.Sprintf(format, args...), CodeAlreadyExists)
}

func FormatInternalError(format string, args ...interface{}) *CustomError {
	return NewError(fmt.Sprintf(format, args...), CodeInternal)
}

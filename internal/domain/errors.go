package domain

import "errors"

var (
	ErrInvalidEmail       = errors.New("a valid email address is required")
	ErrValidation         = errors.New("validation error")
	ErrFlowRestart        = errors.New("flow state missing or incomplete")
	ErrInvalidReference   = errors.New("invalid or already used payment reference")
	ErrVerificationFailed = errors.New("payment verification failed")
	ErrTooManyRegistrants = errors.New("all registrants for this payment have already been submitted")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrBackend            = errors.New("registration backend error")
)

package model

import (
	"errors"

	"google.golang.org/grpc/codes"
)

// Ledger errors. ErrNotFound and ErrTokenExpired are indistinguishable to
// callers of the session layer.
var (
	ErrNotFound     = errors.New("not found")
	ErrTokenExpired = errors.New("refresh token expired")
	ErrTokenReuse   = errors.New("refresh token reuse detected")
)

// Login errors.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAccountLocked      = errors.New("account locked")
	ErrEmailNotConfirmed  = errors.New("email not confirmed")
)

// Session errors.
var (
	ErrSessionExpired     = errors.New("session expired")
	ErrSessionCompromised = errors.New("session compromised")
)

// Pipeline errors.
var (
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrForbidden       = errors.New("forbidden")
)

// ErrSigning is fatal: the surrounding operation must abort.
var ErrSigning = errors.New("token signing failed")

// Public messages. They never name the missing permission or the reason a
// refresh code was rejected beyond expired/revoked.
const (
	MessageInvalidCredentials = "invalid email or password"
	MessageAccountLocked      = "account is temporarily locked"
	MessageEmailNotConfirmed  = "email address is not confirmed"
	MessageSessionExpired     = "session expired, please log in again"
	MessageSessionCompromised = "session revoked, please log in again"
	MessageUnauthenticated    = "authentication required"
	MessageForbidden          = "operation not permitted"
	MessageInternal           = "internal server error"
)

// APIError is an error with the gRPC code and the message exposed to clients.
type APIError struct {
	GRPCCode codes.Code
	Message  string
	Err      error
}

func (e *APIError) Error() string {
	return e.Message
}

func (e *APIError) Unwrap() error {
	return e.Err
}

// ToAPIError maps a service error to its public representation.
func ToAPIError(err error) *APIError {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}

	switch {
	case errors.Is(err, ErrInvalidCredentials):
		return &APIError{GRPCCode: codes.Unauthenticated, Message: MessageInvalidCredentials, Err: err}
	case errors.Is(err, ErrAccountLocked):
		return &APIError{GRPCCode: codes.FailedPrecondition, Message: MessageAccountLocked, Err: err}
	case errors.Is(err, ErrEmailNotConfirmed):
		return &APIError{GRPCCode: codes.FailedPrecondition, Message: MessageEmailNotConfirmed, Err: err}
	case errors.Is(err, ErrSessionCompromised):
		return &APIError{GRPCCode: codes.Unauthenticated, Message: MessageSessionCompromised, Err: err}
	case errors.Is(err, ErrSessionExpired), errors.Is(err, ErrTokenExpired), errors.Is(err, ErrNotFound):
		return &APIError{GRPCCode: codes.Unauthenticated, Message: MessageSessionExpired, Err: err}
	case errors.Is(err, ErrUnauthenticated):
		return &APIError{GRPCCode: codes.Unauthenticated, Message: MessageUnauthenticated, Err: err}
	case errors.Is(err, ErrForbidden):
		return &APIError{GRPCCode: codes.PermissionDenied, Message: MessageForbidden, Err: err}
	default:
		return &APIError{GRPCCode: codes.Internal, Message: MessageInternal, Err: err}
	}
}

package usecase

import "errors"

// Resolver errors, surfaced to callers as validation failures.
var (
	ErrInvalidTargetType = errors.New(`Invalid targetType. Must be "tokens", "sellers", or "all"`)
	ErrNoValidTokens     = errors.New("No valid tokens provided")
	ErrNoSellerTokens    = errors.New("No FCM tokens found for specified sellers")
	ErrNoTargetTokens    = errors.New("No target tokens found")
	ErrTitleRequired     = errors.New("Title is required and must be a non-empty string")
	ErrMessageRequired   = errors.New("Message is required and must be a non-empty string")
)

// ErrMessengerUnavailable indicates the FCM client was never
// initialized. A live send cannot proceed; no delivery record is
// written.
var ErrMessengerUnavailable = errors.New("FCM client not initialized")

// ValidationError is a client-fault outcome produced before any side
// effect. Mode records which path the request would have taken.
type ValidationError struct {
	Msg  string
	Mode string
}

func (e *ValidationError) Error() string {
	return e.Msg
}

// DispatchError is a server-fault outcome from the live send path:
// either the messenger was unconfigured or the batch call itself
// failed. Either way, no delivery record was written.
type DispatchError struct {
	Mode               string
	Err                error
	TargetTokenCount   int
	OriginalTokenCount int
	FallbackAdvice     string
}

func (e *DispatchError) Error() string {
	return e.Err.Error()
}

func (e *DispatchError) Unwrap() error {
	return e.Err
}

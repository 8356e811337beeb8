package usecase

import (
	"context"
	"time"

	"sellerapp-backend/pkg/fcm"
)

// Messenger is the capability the dispatcher needs from the push
// provider: one batched send returning a per-token result for each
// entry.
type Messenger interface {
	SendEach(ctx context.Context, tokens []string, notification fcm.Notification) (*fcm.SendReport, error)
}

// DispatchOutcome summarizes one completed batch call.
type DispatchOutcome struct {
	SentCount      int
	SuccessCount   int
	FailureCount   int
	FailureReasons map[string]int
	StartedAt      time.Time
	CompletedAt    time.Time
}

// Dispatcher performs the single batched provider call of a live send.
// It does not retry failed tokens or failed batches.
type Dispatcher struct {
	messenger Messenger
}

// NewDispatcher creates a Dispatcher. messenger may be nil when the
// FCM client could not be initialized; Dispatch then reports
// ErrMessengerUnavailable instead of panicking mid-request.
func NewDispatcher(messenger Messenger) *Dispatcher {
	return &Dispatcher{
		messenger: messenger,
	}
}

// Ready reports whether a live send can be attempted at all
func (d *Dispatcher) Ready() bool {
	return d.messenger != nil
}

// Dispatch sends the notification to every token in one batch and
// tallies the per-token outcomes. An error return means no tally
// exists: either the messenger is unconfigured or the batch call
// itself failed.
func (d *Dispatcher) Dispatch(ctx context.Context, tokens []string, notification fcm.Notification) (*DispatchOutcome, error) {
	if d.messenger == nil {
		return nil, ErrMessengerUnavailable
	}

	startedAt := time.Now()
	report, err := d.messenger.SendEach(ctx, tokens, notification)
	if err != nil {
		return nil, err
	}

	outcome := &DispatchOutcome{
		SentCount:      len(tokens),
		SuccessCount:   report.SuccessCount,
		FailureCount:   report.FailureCount,
		FailureReasons: make(map[string]int),
		StartedAt:      startedAt,
		CompletedAt:    time.Now(),
	}

	for _, result := range report.Responses {
		if result.Success {
			continue
		}
		code := result.ErrorCode
		if code == "" {
			code = "unknown"
		}
		outcome.FailureReasons[code]++
	}

	return outcome, nil
}

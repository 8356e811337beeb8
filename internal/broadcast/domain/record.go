package domain

import "time"

// Status classifies the outcome of one live broadcast from the
// per-token delivery counts.
type Status string

const (
	StatusSuccess Status = "success"
	StatusPartial Status = "partial"
	StatusFailed  Status = "failed"
)

// DeriveStatus computes the record status: success iff nothing failed,
// failed iff nothing succeeded, partial otherwise.
func DeriveStatus(successCount, failureCount int) Status {
	switch {
	case failureCount == 0:
		return StatusSuccess
	case successCount == 0:
		return StatusFailed
	default:
		return StatusPartial
	}
}

// FailureReasons is a histogram of provider error code -> occurrences.
type FailureReasons map[string]int

// DeliveryRecord is the audit entry persisted once per completed live
// send. Records are immutable after creation: nothing in this codebase
// updates or deletes them.
type DeliveryRecord struct {
	ID          string `json:"id" gorm:"primaryKey"`
	SentByID    string `json:"sent_by_id"`
	SentByEmail string `json:"sent_by_email"`
	Targeting   string `json:"targeting" gorm:"index"`
	Title       string `json:"title"`
	Body        string `json:"body"`
	Status      Status `json:"status" gorm:"index"`

	IntendedCount int `json:"intended_count"` // audience size before the cap
	SentCount     int `json:"sent_count"`     // tokens actually dispatched
	SuccessCount  int `json:"success_count"`
	FailureCount  int `json:"failure_count"`

	StartedAt   time.Time `json:"started_at"`
	CompletedAt time.Time `json:"completed_at"`

	Mode           string         `json:"mode"`
	CappedByLimit  bool           `json:"capped_by_limit"`
	MaxTokensLimit int            `json:"max_tokens_limit"`
	FailureReasons FailureReasons `json:"failure_reasons" gorm:"serializer:json"`

	CreatedAt time.Time `json:"created_at" gorm:"index"`
}

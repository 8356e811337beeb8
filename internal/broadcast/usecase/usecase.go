package usecase

import (
	"context"

	broadcastdto "sellerapp-backend/internal/broadcast/dto"
)

// BroadcastUsecase defines the interface for the admin broadcast
// pipeline and its companion read paths.
type BroadcastUsecase interface {
	// Send runs one broadcast request through validation, audience
	// resolution, the safety policy and, in live mode, the batched
	// provider call plus audit recording. Errors are *ValidationError
	// (client fault, no side effects) or *DispatchError (server fault,
	// no record written).
	Send(ctx context.Context, sender broadcastdto.Sender, req *broadcastdto.SendRequest) (*broadcastdto.SendResponse, error)

	// History returns one page of delivery records, newest first
	History(query broadcastdto.HistoryQuery) (*broadcastdto.HistoryResponse, error)

	// Stats returns aggregate token and notification statistics
	Stats() (*broadcastdto.StatsResponse, error)

	// Tokens lists every registered push token with owner info
	Tokens() (*broadcastdto.TokenListResponse, error)

	// Mode reports the active mode string ("live" or "dry-run")
	Mode() string
}

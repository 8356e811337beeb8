package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	broadcastdomain "sellerapp-backend/internal/broadcast/domain"
	broadcastdto "sellerapp-backend/internal/broadcast/dto"
	sellerrepo "sellerapp-backend/internal/seller/repository"
	"sellerapp-backend/pkg/fcm"
)

const (
	// Number of tokens previewed in a dry-run response, and the prefix
	// length each preview is truncated to.
	previewTokenCount  = 3
	previewTokenPrefix = 20

	broadcastDataType = "admin_broadcast"
)

// broadcastUsecase orchestrates one broadcast request:
// validate -> mode check -> resolve -> cap -> dry-run return, or
// dispatch -> record -> return.
type broadcastUsecase struct {
	resolver   *AudienceResolver
	governor   *SafetyGovernor
	dispatcher *Dispatcher
	recorder   *DeliveryRecorder
	sellerRepo sellerrepo.SellerRepository
}

// NewBroadcastUsecase creates a new instance of broadcastUsecase
func NewBroadcastUsecase(resolver *AudienceResolver, governor *SafetyGovernor, dispatcher *Dispatcher, recorder *DeliveryRecorder, sellerRepo sellerrepo.SellerRepository) BroadcastUsecase {
	return &broadcastUsecase{
		resolver:   resolver,
		governor:   governor,
		dispatcher: dispatcher,
		recorder:   recorder,
		sellerRepo: sellerRepo,
	}
}

func (u *broadcastUsecase) Mode() string {
	return u.governor.Mode()
}

func (u *broadcastUsecase) Send(ctx context.Context, sender broadcastdto.Sender, req *broadcastdto.SendRequest) (*broadcastdto.SendResponse, error) {
	mode := u.governor.Mode()
	log.Printf("[Broadcast] Send request - mode: %s, targetType: %s, max tokens: %d", mode, req.TargetType, u.governor.MaxTokensPerSend())

	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, &ValidationError{Msg: ErrTitleRequired.Error(), Mode: mode}
	}
	body := strings.TrimSpace(req.Message)
	if body == "" {
		return nil, &ValidationError{Msg: ErrMessageRequired.Error(), Mode: mode}
	}

	tokens, err := u.resolver.Resolve(req)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidTargetType),
			errors.Is(err, ErrNoValidTokens),
			errors.Is(err, ErrNoSellerTokens):
			return nil, &ValidationError{Msg: err.Error(), Mode: mode}
		default:
			return nil, err
		}
	}

	capped, originalCount, cappedByLimit := u.governor.Cap(tokens)
	if cappedByLimit {
		log.Printf("[Broadcast] Token count (%d) exceeds limit (%d), capping to limit", originalCount, u.governor.MaxTokensPerSend())
	}

	// Zero resolved tokens is rejected in every mode. Only the "all"
	// targeting can reach this point with an empty audience.
	if len(capped) == 0 {
		return nil, &ValidationError{Msg: ErrNoTargetTokens.Error(), Mode: mode}
	}

	notification := fcm.Notification{
		Title: title,
		Body:  body,
		Data: map[string]string{
			"type":      broadcastDataType,
			"timestamp": time.Now().UTC().Format(time.RFC3339),
			"mode":      mode,
		},
	}

	response := &broadcastdto.SendResponse{
		Success:            true,
		Mode:               mode,
		TargetTokenCount:   len(capped),
		OriginalTokenCount: originalCount,
		CappedByLimit:      cappedByLimit,
		TargetType:         req.TargetType,
	}

	if !u.governor.LiveMode() {
		log.Printf("[Broadcast] DRY-RUN: would send to %d tokens", len(capped))
		response.Message = "Notification validated successfully (DRY RUN - not actually sent)"
		response.Payload = &broadcastdto.PayloadPreview{
			Notification: broadcastdto.NotificationBody{Title: title, Body: body},
			Data:         notification.Data,
		}
		response.WouldSendTo = previewTokens(capped)
		return response, nil
	}

	log.Printf("[Broadcast] LIVE: sending to %d tokens", len(capped))

	outcome, err := u.dispatcher.Dispatch(ctx, capped, notification)
	if err != nil {
		if errors.Is(err, ErrMessengerUnavailable) {
			log.Printf("[Broadcast] FCM client not initialized, cannot send")
			return nil, &DispatchError{
				Mode:               "error-fallback-dry-run",
				Err:                err,
				TargetTokenCount:   len(capped),
				OriginalTokenCount: originalCount,
				FallbackAdvice:     "Configure Firebase credentials or disable LIVE mode",
			}
		}
		log.Printf("[Broadcast] FCM batch send failed: %v", err)
		return nil, &DispatchError{
			Mode:               "live-error",
			Err:                err,
			TargetTokenCount:   len(capped),
			OriginalTokenCount: originalCount,
			FallbackAdvice:     "Check Firebase configuration and try again, or disable LIVE mode",
		}
	}

	log.Printf("[Broadcast] Live send complete: %d success, %d failed (sender: %s)", outcome.SuccessCount, outcome.FailureCount, sender.Email)

	u.recorder.Record(&broadcastdomain.DeliveryRecord{
		SentByID:       sender.ID,
		SentByEmail:    sender.Email,
		Targeting:      req.TargetType,
		Title:          title,
		Body:           body,
		Status:         broadcastdomain.DeriveStatus(outcome.SuccessCount, outcome.FailureCount),
		IntendedCount:  originalCount,
		SentCount:      outcome.SentCount,
		SuccessCount:   outcome.SuccessCount,
		FailureCount:   outcome.FailureCount,
		StartedAt:      outcome.StartedAt,
		CompletedAt:    outcome.CompletedAt,
		Mode:           mode,
		CappedByLimit:  cappedByLimit,
		MaxTokensLimit: u.governor.MaxTokensPerSend(),
		FailureReasons: outcome.FailureReasons,
	})

	sent := outcome.SuccessCount
	failed := outcome.FailureCount
	response.Message = "Notification sent successfully in LIVE mode"
	response.Sent = &sent
	response.Failed = &failed
	if len(outcome.FailureReasons) > 0 {
		response.FailureReasons = outcome.FailureReasons
	}
	response.MaxTokensLimit = u.governor.MaxTokensPerSend()
	response.Timestamp = time.Now().UTC().Format(time.RFC3339)
	return response, nil
}

// previewTokens truncates the first few resolved tokens so targeting
// can be sanity-checked without exposing full token values.
func previewTokens(tokens []string) []string {
	count := previewTokenCount
	if len(tokens) < count {
		count = len(tokens)
	}
	previews := make([]string, 0, count)
	for _, token := range tokens[:count] {
		if len(token) > previewTokenPrefix {
			token = token[:previewTokenPrefix]
		}
		previews = append(previews, token+"...")
	}
	return previews
}

func (u *broadcastUsecase) History(query broadcastdto.HistoryQuery) (*broadcastdto.HistoryResponse, error) {
	return u.recorder.History(query)
}

func (u *broadcastUsecase) Stats() (*broadcastdto.StatsResponse, error) {
	return u.recorder.Stats()
}

func (u *broadcastUsecase) Tokens() (*broadcastdto.TokenListResponse, error) {
	sellers, err := u.sellerRepo.FindAllWithTokens()
	if err != nil {
		return nil, err
	}

	tokenInfos := make([]broadcastdto.TokenInfo, 0)
	for _, seller := range sellers {
		for _, pushToken := range seller.PushTokens {
			tokenInfos = append(tokenInfos, broadcastdto.TokenInfo{
				SellerID:    seller.ID,
				SellerEmail: seller.Email,
				Token:       pushToken.Token,
				Platform:    pushToken.Platform,
				DeviceInfo:  pushToken.DeviceInfo,
				CreatedAt:   pushToken.CreatedAt,
				UpdatedAt:   pushToken.UpdatedAt,
			})
		}
	}

	return &broadcastdto.TokenListResponse{
		Success:      true,
		Count:        len(tokenInfos),
		TotalSellers: len(sellers),
		Tokens:       tokenInfos,
	}, nil
}

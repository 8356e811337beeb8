package usecase

import (
	"fmt"
	"log"
	"time"

	broadcastdomain "sellerapp-backend/internal/broadcast/domain"
	broadcastdto "sellerapp-backend/internal/broadcast/dto"
	broadcastrepo "sellerapp-backend/internal/broadcast/repository"
	sellerrepo "sellerapp-backend/internal/seller/repository"
)

const (
	defaultHistoryLimit = 10
	maxHistoryLimit     = 50
	recentActivityLimit = 5
)

// DeliveryRecorder persists the audit record of each live send and
// serves the history and statistics read paths.
type DeliveryRecorder struct {
	recordRepo broadcastrepo.RecordRepository
	sellerRepo sellerrepo.SellerRepository
	governor   *SafetyGovernor
}

// NewDeliveryRecorder creates a new DeliveryRecorder
func NewDeliveryRecorder(recordRepo broadcastrepo.RecordRepository, sellerRepo sellerrepo.SellerRepository, governor *SafetyGovernor) *DeliveryRecorder {
	return &DeliveryRecorder{
		recordRepo: recordRepo,
		sellerRepo: sellerRepo,
		governor:   governor,
	}
}

// Record persists the audit entry for a completed live dispatch. A
// recording failure must not fail the request: the send already
// happened, so the error is logged and swallowed.
func (r *DeliveryRecorder) Record(record *broadcastdomain.DeliveryRecord) {
	if err := r.recordRepo.Create(record); err != nil {
		log.Printf("[Broadcast] Failed to save delivery record (non-blocking): %v", err)
	}
}

// History returns one page of delivery records, newest first,
// optionally filtered by targeting and status.
func (r *DeliveryRecorder) History(query broadcastdto.HistoryQuery) (*broadcastdto.HistoryResponse, error) {
	page := query.Page
	if page < 1 {
		page = 1
	}
	limit := query.Limit
	if limit < 1 {
		limit = defaultHistoryLimit
	}
	if limit > maxHistoryLimit {
		limit = maxHistoryLimit
	}

	records, total, err := r.recordRepo.FindPage(broadcastrepo.HistoryFilter{
		Targeting: query.Targeting,
		Status:    query.Status,
		Limit:     limit,
		Offset:    (page - 1) * limit,
	})
	if err != nil {
		return nil, err
	}

	items := make([]broadcastdto.HistoryItem, 0, len(records))
	for _, record := range records {
		items = append(items, broadcastdto.HistoryItem{
			ID: record.ID,
			SentBy: broadcastdto.SenderRef{
				ID:    record.SentByID,
				Email: record.SentByEmail,
			},
			Title:     record.Title,
			Message:   record.Body,
			Targeting: record.Targeting,
			Status:    string(record.Status),
			Mode:      record.Mode,
			Stats: broadcastdto.HistoryItemStats{
				Intended: record.IntendedCount,
				Sent:     record.SentCount,
				Success:  record.SuccessCount,
				Failed:   record.FailureCount,
			},
			SentAt:      record.StartedAt,
			CompletedAt: record.CompletedAt,
			CreatedAt:   record.CreatedAt,
		})
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))

	return &broadcastdto.HistoryResponse{
		Success:       true,
		Count:         len(items),
		TotalCount:    total,
		Page:          page,
		Limit:         limit,
		TotalPages:    totalPages,
		HasMore:       int64(page*limit) < total,
		Notifications: items,
	}, nil
}

// Stats aggregates token inventory, notification volume and status
// distribution, and echoes the active safety policy so operators can
// see the current mode without a separate config call.
func (r *DeliveryRecorder) Stats() (*broadcastdto.StatsResponse, error) {
	now := time.Now()

	sellersWithTokens, err := r.sellerRepo.CountSellersWithTokens()
	if err != nil {
		return nil, err
	}
	totalTokens, err := r.sellerRepo.CountTokens()
	if err != nil {
		return nil, err
	}
	androidTokens, err := r.sellerRepo.CountTokensByPlatform("android")
	if err != nil {
		return nil, err
	}
	iosTokens, err := r.sellerRepo.CountTokensByPlatform("ios")
	if err != nil {
		return nil, err
	}

	totalNotifications, err := r.recordRepo.CountAll()
	if err != nil {
		return nil, err
	}
	last24h, err := r.recordRepo.CountSince(now.Add(-24 * time.Hour))
	if err != nil {
		return nil, err
	}
	last7d, err := r.recordRepo.CountSince(now.Add(-7 * 24 * time.Hour))
	if err != nil {
		return nil, err
	}
	last30d, err := r.recordRepo.CountSince(now.Add(-30 * 24 * time.Hour))
	if err != nil {
		return nil, err
	}

	successful, err := r.recordRepo.CountByStatus(broadcastdomain.StatusSuccess)
	if err != nil {
		return nil, err
	}
	failed, err := r.recordRepo.CountByStatus(broadcastdomain.StatusFailed)
	if err != nil {
		return nil, err
	}
	partial, err := r.recordRepo.CountByStatus(broadcastdomain.StatusPartial)
	if err != nil {
		return nil, err
	}

	recent, err := r.recordRepo.FindRecent(recentActivityLimit)
	if err != nil {
		return nil, err
	}

	unknownTokens := totalTokens - androidTokens - iosTokens
	if unknownTokens < 0 {
		unknownTokens = 0
	}

	totalFinished := successful + failed + partial
	successRate := "0.0%"
	if totalFinished > 0 {
		successRate = fmt.Sprintf("%.1f%%", float64(successful)/float64(totalFinished)*100)
	}

	averageTokens := "0.0"
	if sellersWithTokens > 0 {
		averageTokens = fmt.Sprintf("%.1f", float64(totalTokens)/float64(sellersWithTokens))
	}

	recentActivity := make([]broadcastdto.RecentActivityItem, 0, len(recent))
	for _, record := range recent {
		recentActivity = append(recentActivity, broadcastdto.RecentActivityItem{
			ID:        record.ID,
			Title:     record.Title,
			Targeting: record.Targeting,
			Sent:      record.SentCount,
			Status:    string(record.Status),
			Mode:      record.Mode,
			CreatedAt: record.CreatedAt,
		})
	}

	return &broadcastdto.StatsResponse{
		Success: true,
		Stats: &broadcastdto.Stats{
			System: broadcastdto.SystemStats{
				FCMLiveMode:  r.governor.LiveMode(),
				FCMMaxTokens: r.governor.MaxTokensPerSend(),
				Mode:         r.governor.Mode(),
			},
			Overview: broadcastdto.OverviewStats{
				TotalSellers:           sellersWithTokens,
				TotalTokens:            totalTokens,
				TotalNotificationsSent: totalNotifications,
				SuccessRate:            successRate,
			},
			Tokens: broadcastdto.TokenStats{
				Total:             totalTokens,
				SellersWithTokens: sellersWithTokens,
				Platforms: broadcastdto.PlatformStats{
					Android: androidTokens,
					IOS:     iosTokens,
					Unknown: unknownTokens,
				},
				AverageTokensPerSeller: averageTokens,
			},
			Notifications: broadcastdto.NotificationStats{
				Total:       totalNotifications,
				Last24Hours: last24h,
				Last7Days:   last7d,
				Last30Days:  last30d,
				StatusDistribution: broadcastdto.StatusDistribution{
					Success: successful,
					Failed:  failed,
					Partial: partial,
				},
			},
			RecentActivity: recentActivity,
			GeneratedAt:    now,
		},
	}, nil
}

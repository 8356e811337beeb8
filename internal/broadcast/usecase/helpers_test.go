package usecase

import (
	"context"
	"time"

	broadcastdomain "sellerapp-backend/internal/broadcast/domain"
	broadcastrepo "sellerapp-backend/internal/broadcast/repository"
	sellerdomain "sellerapp-backend/internal/seller/domain"
	"sellerapp-backend/pkg/config"
	"sellerapp-backend/pkg/fcm"
)

// fakeSellerRepo serves canned sellers. Only sellers with at least one
// push token are returned by the *WithTokens methods, mirroring the
// real repository contract.
type fakeSellerRepo struct {
	sellers []sellerdomain.Seller
	err     error
}

func (f *fakeSellerRepo) FindByEmail(email string) (*sellerdomain.Seller, error) { return nil, nil }
func (f *fakeSellerRepo) FindByID(id string) (*sellerdomain.Seller, error)       { return nil, nil }
func (f *fakeSellerRepo) Create(seller *sellerdomain.Seller) error               { return nil }

func (f *fakeSellerRepo) FindByIDsWithTokens(ids []string) ([]sellerdomain.Seller, error) {
	if f.err != nil {
		return nil, f.err
	}
	wanted := make(map[string]bool, len(ids))
	for _, id := range ids {
		wanted[id] = true
	}
	var out []sellerdomain.Seller
	for _, seller := range f.sellers {
		if wanted[seller.ID] && len(seller.PushTokens) > 0 {
			out = append(out, seller)
		}
	}
	return out, nil
}

func (f *fakeSellerRepo) FindAllWithTokens() ([]sellerdomain.Seller, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []sellerdomain.Seller
	for _, seller := range f.sellers {
		if len(seller.PushTokens) > 0 {
			out = append(out, seller)
		}
	}
	return out, nil
}

func (f *fakeSellerRepo) CountSellersWithTokens() (int64, error) {
	sellers, _ := f.FindAllWithTokens()
	return int64(len(sellers)), nil
}

func (f *fakeSellerRepo) CountTokens() (int64, error) {
	var n int64
	for _, seller := range f.sellers {
		n += int64(len(seller.PushTokens))
	}
	return n, nil
}

func (f *fakeSellerRepo) CountTokensByPlatform(platform string) (int64, error) {
	var n int64
	for _, seller := range f.sellers {
		for _, token := range seller.PushTokens {
			if token.Platform == platform {
				n++
			}
		}
	}
	return n, nil
}

// fakeRecordRepo is an in-memory RecordRepository that can be forced
// to fail creation.
type fakeRecordRepo struct {
	records     []broadcastdomain.DeliveryRecord
	createErr   error
	createCalls int
}

func (f *fakeRecordRepo) Create(record *broadcastdomain.DeliveryRecord) error {
	f.createCalls++
	if f.createErr != nil {
		return f.createErr
	}
	if record.ID == "" {
		record.ID = "rec-" + time.Now().Format("150405.000000000")
	}
	record.CreatedAt = time.Now()
	f.records = append(f.records, *record)
	return nil
}

func (f *fakeRecordRepo) FindByID(id string) (*broadcastdomain.DeliveryRecord, error) {
	for i := range f.records {
		if f.records[i].ID == id {
			record := f.records[i]
			return &record, nil
		}
	}
	return nil, nil
}

func (f *fakeRecordRepo) FindPage(filter broadcastrepo.HistoryFilter) ([]broadcastdomain.DeliveryRecord, int64, error) {
	var matched []broadcastdomain.DeliveryRecord
	for _, record := range f.records {
		if filter.Targeting != "" && record.Targeting != filter.Targeting {
			continue
		}
		if filter.Status != "" && string(record.Status) != filter.Status {
			continue
		}
		matched = append(matched, record)
	}
	// Newest first
	for i, j := 0, len(matched)-1; i < j; i, j = i+1, j-1 {
		matched[i], matched[j] = matched[j], matched[i]
	}
	total := int64(len(matched))
	if filter.Offset >= len(matched) {
		return nil, total, nil
	}
	end := filter.Offset + filter.Limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[filter.Offset:end], total, nil
}

func (f *fakeRecordRepo) FindRecent(limit int) ([]broadcastdomain.DeliveryRecord, error) {
	records, _, err := f.FindPage(broadcastrepo.HistoryFilter{Limit: limit})
	return records, err
}

func (f *fakeRecordRepo) CountAll() (int64, error) {
	return int64(len(f.records)), nil
}

func (f *fakeRecordRepo) CountSince(t time.Time) (int64, error) {
	var n int64
	for _, record := range f.records {
		if !record.CreatedAt.Before(t) {
			n++
		}
	}
	return n, nil
}

func (f *fakeRecordRepo) CountByStatus(status broadcastdomain.Status) (int64, error) {
	var n int64
	for _, record := range f.records {
		if record.Status == status {
			n++
		}
	}
	return n, nil
}

// fakeMessenger returns scripted per-token results keyed by token
// value; unlisted tokens succeed.
type fakeMessenger struct {
	failures  map[string]string // token -> error code
	batchErr  error
	calls     int
	lastSent  []string
	lastNotif fcm.Notification
}

func (f *fakeMessenger) SendEach(ctx context.Context, tokens []string, notification fcm.Notification) (*fcm.SendReport, error) {
	f.calls++
	f.lastSent = tokens
	f.lastNotif = notification
	if f.batchErr != nil {
		return nil, f.batchErr
	}
	report := &fcm.SendReport{}
	for _, token := range tokens {
		if code, ok := f.failures[token]; ok {
			report.FailureCount++
			report.Responses = append(report.Responses, fcm.SendResult{Success: false, ErrorCode: code})
		} else {
			report.SuccessCount++
			report.Responses = append(report.Responses, fcm.SendResult{Success: true, MessageID: "mid-" + token})
		}
	}
	return report, nil
}

func testConfig(liveMode bool, maxTokens int) *config.Config {
	return &config.Config{
		FCMLiveMode:         liveMode,
		FCMMaxTokensPerSend: maxTokens,
	}
}

func sellerWithTokens(id, email string, tokens ...string) sellerdomain.Seller {
	seller := sellerdomain.Seller{ID: id, Email: email}
	for i, token := range tokens {
		seller.PushTokens = append(seller.PushTokens, sellerdomain.PushToken{
			ID:       id + "-pt-" + string(rune('a'+i)),
			SellerID: id,
			Token:    token,
			Platform: "android",
		})
	}
	return seller
}

func newTestUsecase(sellers *fakeSellerRepo, records *fakeRecordRepo, messenger Messenger, liveMode bool, maxTokens int) BroadcastUsecase {
	governor := NewSafetyGovernor(testConfig(liveMode, maxTokens))
	resolver := NewAudienceResolver(sellers)
	dispatcher := NewDispatcher(messenger)
	recorder := NewDeliveryRecorder(records, sellers, governor)
	return NewBroadcastUsecase(resolver, governor, dispatcher, recorder, sellers)
}

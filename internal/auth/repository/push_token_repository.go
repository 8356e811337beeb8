package repository

import (
	"time"

	sellerdomain "sellerapp-backend/internal/seller/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PushTokenRepository defines the device-registration write paths for
// push tokens. The broadcast core never writes through this interface.
type PushTokenRepository interface {
	SaveToken(sellerID, token, platform, deviceInfo string) error
	DeleteToken(sellerID, token string) error
	DeleteTokensBySellerID(sellerID string) error
}

// pushTokenRepository implements PushTokenRepository interface
type pushTokenRepository struct {
	db *gorm.DB
}

// NewPushTokenRepository creates a new instance of pushTokenRepository
func NewPushTokenRepository(db *gorm.DB) PushTokenRepository {
	return &pushTokenRepository{
		db: db,
	}
}

// SaveToken saves or updates a push token for a seller (atomic upsert)
func (r *pushTokenRepository) SaveToken(sellerID, token, platform, deviceInfo string) error {
	pushToken := &sellerdomain.PushToken{
		ID:         uuid.New().String(),
		SellerID:   sellerID,
		Token:      token,
		Platform:   platform,
		DeviceInfo: deviceInfo,
		CreatedAt:  time.Now(),
		UpdatedAt:  time.Now(),
	}

	// Atomic upsert: INSERT ... ON CONFLICT (token) DO UPDATE
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "token"}},
		DoUpdates: clause.AssignmentColumns([]string{"seller_id", "platform", "device_info", "updated_at"}),
	}).Create(pushToken).Error
}

// DeleteToken removes a specific push token owned by the seller
func (r *pushTokenRepository) DeleteToken(sellerID, token string) error {
	return r.db.Where("seller_id = ? AND token = ?", sellerID, token).Delete(&sellerdomain.PushToken{}).Error
}

// DeleteTokensBySellerID removes all push tokens for a seller
func (r *pushTokenRepository) DeleteTokensBySellerID(sellerID string) error {
	return r.db.Where("seller_id = ?", sellerID).Delete(&sellerdomain.PushToken{}).Error
}

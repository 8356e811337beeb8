package repository

import (
	"time"

	sellerdomain "sellerapp-backend/internal/seller/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SellerRepository defines the read paths over sellers and their push
// tokens. The broadcast core only ever reads through this interface.
type SellerRepository interface {
	FindByEmail(email string) (*sellerdomain.Seller, error)
	FindByID(id string) (*sellerdomain.Seller, error)
	Create(seller *sellerdomain.Seller) error

	// FindByIDsWithTokens returns the sellers among ids that have at
	// least one push token, tokens preloaded in registration order.
	FindByIDsWithTokens(ids []string) ([]sellerdomain.Seller, error)

	// FindAllWithTokens returns every seller that has at least one push
	// token, tokens preloaded in registration order.
	FindAllWithTokens() ([]sellerdomain.Seller, error)

	CountSellersWithTokens() (int64, error)
	CountTokens() (int64, error)
	CountTokensByPlatform(platform string) (int64, error)
}

type sellerRepository struct {
	db *gorm.DB
}

// NewSellerRepository creates a new instance of sellerRepository
func NewSellerRepository(db *gorm.DB) SellerRepository {
	return &sellerRepository{
		db: db,
	}
}

func (r *sellerRepository) FindByEmail(email string) (*sellerdomain.Seller, error) {
	var seller sellerdomain.Seller
	err := r.db.Where("email = ?", email).First(&seller).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &seller, nil
}

func (r *sellerRepository) FindByID(id string) (*sellerdomain.Seller, error) {
	var seller sellerdomain.Seller
	err := r.db.Where("id = ?", id).First(&seller).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &seller, nil
}

func (r *sellerRepository) Create(seller *sellerdomain.Seller) error {
	if seller.ID == "" {
		seller.ID = uuid.New().String()
	}
	seller.CreatedAt = time.Now()
	seller.UpdatedAt = time.Now()
	return r.db.Create(seller).Error
}

// tokenedSellers is the subquery selecting ids of sellers that own at
// least one push token (the GORM equivalent of 'fcmTokens.0 exists').
func (r *sellerRepository) tokenedSellers() *gorm.DB {
	return r.db.Model(&sellerdomain.PushToken{}).Select("seller_id")
}

func preloadTokens(db *gorm.DB) *gorm.DB {
	return db.Order("push_tokens.created_at ASC")
}

func (r *sellerRepository) FindByIDsWithTokens(ids []string) ([]sellerdomain.Seller, error) {
	var sellers []sellerdomain.Seller
	err := r.db.
		Preload("PushTokens", preloadTokens).
		Where("id IN ?", ids).
		Where("id IN (?)", r.tokenedSellers()).
		Order("created_at ASC").
		Find(&sellers).Error
	if err != nil {
		return nil, err
	}
	return sellers, nil
}

func (r *sellerRepository) FindAllWithTokens() ([]sellerdomain.Seller, error) {
	var sellers []sellerdomain.Seller
	err := r.db.
		Preload("PushTokens", preloadTokens).
		Where("id IN (?)", r.tokenedSellers()).
		Order("created_at ASC").
		Find(&sellers).Error
	if err != nil {
		return nil, err
	}
	return sellers, nil
}

func (r *sellerRepository) CountSellersWithTokens() (int64, error) {
	var count int64
	err := r.db.Model(&sellerdomain.Seller{}).
		Where("id IN (?)", r.tokenedSellers()).
		Count(&count).Error
	return count, err
}

func (r *sellerRepository) CountTokens() (int64, error) {
	var count int64
	err := r.db.Model(&sellerdomain.PushToken{}).Count(&count).Error
	return count, err
}

func (r *sellerRepository) CountTokensByPlatform(platform string) (int64, error) {
	var count int64
	err := r.db.Model(&sellerdomain.PushToken{}).
		Where("platform = ?", platform).
		Count(&count).Error
	return count, err
}

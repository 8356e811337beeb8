package repository

import (
	"time"

	broadcastdomain "sellerapp-backend/internal/broadcast/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// HistoryFilter narrows the history listing. Empty fields match
// everything.
type HistoryFilter struct {
	Targeting string
	Status    string
	Limit     int
	Offset    int
}

// RecordRepository persists and queries delivery records. Records are
// append-only: there is deliberately no update or delete path.
type RecordRepository interface {
	Create(record *broadcastdomain.DeliveryRecord) error
	FindByID(id string) (*broadcastdomain.DeliveryRecord, error)
	FindPage(filter HistoryFilter) ([]broadcastdomain.DeliveryRecord, int64, error)
	FindRecent(limit int) ([]broadcastdomain.DeliveryRecord, error)
	CountAll() (int64, error)
	CountSince(t time.Time) (int64, error)
	CountByStatus(status broadcastdomain.Status) (int64, error)
}

// recordRepository implements RecordRepository using GORM
type recordRepository struct {
	db *gorm.DB
}

// NewRecordRepository creates a new GORM-based RecordRepository
func NewRecordRepository(db *gorm.DB) RecordRepository {
	return &recordRepository{db: db}
}

func (r *recordRepository) Create(record *broadcastdomain.DeliveryRecord) error {
	if record.ID == "" {
		record.ID = uuid.New().String()
	}
	record.CreatedAt = time.Now()
	return r.db.Create(record).Error
}

func (r *recordRepository) FindByID(id string) (*broadcastdomain.DeliveryRecord, error) {
	var record broadcastdomain.DeliveryRecord
	err := r.db.Where("id = ?", id).First(&record).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &record, nil
}

func (r *recordRepository) FindPage(filter HistoryFilter) ([]broadcastdomain.DeliveryRecord, int64, error) {
	var records []broadcastdomain.DeliveryRecord
	var total int64

	query := r.db.Model(&broadcastdomain.DeliveryRecord{})
	if filter.Targeting != "" {
		query = query.Where("targeting = ?", filter.Targeting)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("created_at DESC").
		Limit(filter.Limit).Offset(filter.Offset).
		Find(&records).Error

	return records, total, err
}

func (r *recordRepository) FindRecent(limit int) ([]broadcastdomain.DeliveryRecord, error) {
	var records []broadcastdomain.DeliveryRecord
	err := r.db.Order("created_at DESC").Limit(limit).Find(&records).Error
	return records, err
}

func (r *recordRepository) CountAll() (int64, error) {
	var count int64
	err := r.db.Model(&broadcastdomain.DeliveryRecord{}).Count(&count).Error
	return count, err
}

func (r *recordRepository) CountSince(t time.Time) (int64, error) {
	var count int64
	err := r.db.Model(&broadcastdomain.DeliveryRecord{}).
		Where("created_at >= ?", t).
		Count(&count).Error
	return count, err
}

func (r *recordRepository) CountByStatus(status broadcastdomain.Status) (int64, error) {
	var count int64
	err := r.db.Model(&broadcastdomain.DeliveryRecord{}).
		Where("status = ?", status).
		Count(&count).Error
	return count, err
}

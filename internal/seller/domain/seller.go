package domain

import "time"

// Seller represents a seller account in the mobile app
type Seller struct {
	ID         string      `json:"id" gorm:"primaryKey"`
	Email      string      `json:"email" gorm:"uniqueIndex;not null"`
	Password   string      `json:"-"` // Never return password in JSON
	Name       string      `json:"name"`
	PushTokens []PushToken `json:"push_tokens,omitempty" gorm:"foreignKey:SellerID;constraint:OnDelete:CASCADE"`
	CreatedAt  time.Time   `json:"created_at"`
	UpdatedAt  time.Time   `json:"updated_at"`
}

// PushToken represents a Firebase Cloud Messaging device token
// registered by a seller's device. Token values are opaque and never
// mutated once captured.
type PushToken struct {
	ID         string    `json:"id" gorm:"primaryKey"`
	SellerID   string    `json:"seller_id" gorm:"index;not null"`
	Token      string    `json:"-" gorm:"uniqueIndex;not null"` // Don't expose token in JSON
	Platform   string    `json:"platform"`                      // "android" or "ios"
	DeviceInfo string    `json:"device_info"`                   // Device/app metadata
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

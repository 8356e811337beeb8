package domain

import "time"

// Admin is an operator account allowed to use the broadcast dashboard.
type Admin struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	Email     string    `json:"email" gorm:"uniqueIndex;not null"`
	Password  string    `json:"-"` // Never return password in JSON
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

const (
	RoleAdmin  = "admin"
	RoleSeller = "seller"
)

// Principal is the authenticated caller identity resolved from a
// bearer token.
type Principal struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

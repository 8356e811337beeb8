package usecase

import (
	authdomain "sellerapp-backend/internal/auth/domain"
	authdto "sellerapp-backend/internal/auth/dto"
)

// AuthUsecase defines the interface for authentication business logic
type AuthUsecase interface {
	// AdminLogin authenticates a dashboard operator
	AdminLogin(req *authdto.LoginRequest) (*authdto.TokenResponse, error)

	// SellerLogin authenticates a seller app account
	SellerLogin(req *authdto.LoginRequest) (*authdto.TokenResponse, error)

	// ValidateToken resolves a bearer token into the caller identity
	ValidateToken(token string) (*authdomain.Principal, error)

	// RegisterPushToken registers a device push token for a seller
	RegisterPushToken(sellerID string, req *authdto.RegisterPushTokenRequest) error

	// UnregisterPushToken removes a previously registered push token
	UnregisterPushToken(sellerID, token string) error
}

package usecase

import (
	"errors"
	"time"

	authdomain "sellerapp-backend/internal/auth/domain"
	authdto "sellerapp-backend/internal/auth/dto"
	authrepo "sellerapp-backend/internal/auth/repository"
	sellerrepo "sellerapp-backend/internal/seller/repository"
	"sellerapp-backend/pkg/config"

	"github.com/golang-jwt/jwt/v5"
)

// authUsecase implements AuthUsecase interface
type authUsecase struct {
	adminRepo     authrepo.AdminRepository
	sellerRepo    sellerrepo.SellerRepository
	pushTokenRepo authrepo.PushTokenRepository
	config        *config.Config
}

// NewAuthUsecase creates a new instance of authUsecase
func NewAuthUsecase(adminRepo authrepo.AdminRepository, sellerRepo sellerrepo.SellerRepository, pushTokenRepo authrepo.PushTokenRepository, cfg *config.Config) AuthUsecase {
	return &authUsecase{
		adminRepo:     adminRepo,
		sellerRepo:    sellerRepo,
		pushTokenRepo: pushTokenRepo,
		config:        cfg,
	}
}

func (u *authUsecase) AdminLogin(req *authdto.LoginRequest) (*authdto.TokenResponse, error) {
	admin, err := u.adminRepo.FindByEmail(req.Email)
	if err != nil {
		return nil, err
	}

	if admin == nil || !authrepo.CheckPasswordHash(req.Password, admin.Password) {
		return nil, errors.New("invalid email or password")
	}

	return u.generateToken(admin.ID, admin.Email, admin.Name, authdomain.RoleAdmin)
}

func (u *authUsecase) SellerLogin(req *authdto.LoginRequest) (*authdto.TokenResponse, error) {
	seller, err := u.sellerRepo.FindByEmail(req.Email)
	if err != nil {
		return nil, err
	}

	if seller == nil || !authrepo.CheckPasswordHash(req.Password, seller.Password) {
		return nil, errors.New("invalid email or password")
	}

	return u.generateToken(seller.ID, seller.Email, seller.Name, authdomain.RoleSeller)
}

func (u *authUsecase) generateToken(id, email, name, role string) (*authdto.TokenResponse, error) {
	claims := jwt.MapClaims{
		"sub":   id,
		"email": email,
		"role":  role,
		"exp":   time.Now().Add(u.config.JWTAccessExpiry).Unix(),
		"iat":   time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(u.config.JWTSecret))
	if err != nil {
		return nil, err
	}

	return &authdto.TokenResponse{
		AccessToken: signed,
		Account: authdto.AccountInfo{
			ID:    id,
			Email: email,
			Name:  name,
			Role:  role,
		},
	}, nil
}

func (u *authUsecase) ValidateToken(tokenString string) (*authdomain.Principal, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		return []byte(u.config.JWTSecret), nil
	})

	if err != nil || !token.Valid {
		return nil, errors.New("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("invalid token claims")
	}

	id, ok := claims["sub"].(string)
	if !ok {
		return nil, errors.New("invalid token claims")
	}
	role, ok := claims["role"].(string)
	if !ok {
		return nil, errors.New("invalid token claims")
	}

	switch role {
	case authdomain.RoleAdmin:
		admin, err := u.adminRepo.FindByID(id)
		if err != nil {
			return nil, err
		}
		if admin == nil {
			return nil, errors.New("account not found")
		}
		return &authdomain.Principal{ID: admin.ID, Email: admin.Email, Role: role}, nil
	case authdomain.RoleSeller:
		seller, err := u.sellerRepo.FindByID(id)
		if err != nil {
			return nil, err
		}
		if seller == nil {
			return nil, errors.New("account not found")
		}
		return &authdomain.Principal{ID: seller.ID, Email: seller.Email, Role: role}, nil
	default:
		return nil, errors.New("invalid token claims")
	}
}

func (u *authUsecase) RegisterPushToken(sellerID string, req *authdto.RegisterPushTokenRequest) error {
	platform := req.Platform
	if platform == "" {
		platform = "android"
	}
	return u.pushTokenRepo.SaveToken(sellerID, req.Token, platform, req.DeviceInfo)
}

func (u *authUsecase) UnregisterPushToken(sellerID, token string) error {
	return u.pushTokenRepo.DeleteToken(sellerID, token)
}

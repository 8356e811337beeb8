package delivery

import (
	"net/http"

	authdto "sellerapp-backend/internal/auth/dto"
	"sellerapp-backend/internal/auth/usecase"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles login and device-registration HTTP requests
type AuthHandler struct {
	authUsecase usecase.AuthUsecase
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(authUsecase usecase.AuthUsecase) *AuthHandler {
	return &AuthHandler{
		authUsecase: authUsecase,
	}
}

// AdminLogin authenticates a dashboard operator
// POST /api/auth/login
func (h *AuthHandler) AdminLogin(c *gin.Context) {
	var req authdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.authUsecase.AdminLogin(&req)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// SellerLogin authenticates a seller app account
// POST /api/auth/seller/login
func (h *AuthHandler) SellerLogin(c *gin.Context) {
	var req authdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.authUsecase.SellerLogin(&req)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// RegisterPushToken registers a device push token for the
// authenticated seller
// POST /api/fcm/register
func (h *AuthHandler) RegisterPushToken(c *gin.Context) {
	sellerID := c.GetString("principalID")

	var req authdto.RegisterPushTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.authUsecase.RegisterPushToken(sellerID, &req); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Push token registered successfully"})
}

// UnregisterPushToken removes a registered push token
// DELETE /api/fcm/:token
func (h *AuthHandler) UnregisterPushToken(c *gin.Context) {
	sellerID := c.GetString("principalID")
	token := c.Param("token")

	if err := h.authUsecase.UnregisterPushToken(sellerID, token); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Push token removed successfully"})
}

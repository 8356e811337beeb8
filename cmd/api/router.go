package api

import (
	"net/http"
	"time"

	authDelivery "sellerapp-backend/internal/auth/delivery"
	authdomain "sellerapp-backend/internal/auth/domain"
	authUsecase "sellerapp-backend/internal/auth/usecase"
	broadcastDelivery "sellerapp-backend/internal/broadcast/delivery"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func SetupRoutes(r *gin.Engine, authUc authUsecase.AuthUsecase, authHandler *authDelivery.AuthHandler, broadcastHandler *broadcastDelivery.BroadcastHandler, db *gorm.DB) {
	api := r.Group("/api")
	{
		// Health check (no auth required)
		api.GET("/health", func(c *gin.Context) {
			status := "connected"
			sqlDB, err := db.DB()
			if err != nil || sqlDB.Ping() != nil {
				status = "disconnected"
			}
			c.JSON(http.StatusOK, gin.H{
				"status":    "healthy",
				"database":  status,
				"timestamp": time.Now().UTC().Format(time.RFC3339),
			})
		})

		// Auth routes
		auth := api.Group("/auth")
		{
			auth.POST("/login", authHandler.AdminLogin)
			auth.POST("/seller/login", authHandler.SellerLogin)
		}

		// Device push-token registration (seller JWT)
		fcm := api.Group("/fcm")
		fcm.Use(authDelivery.AuthMiddleware(authUc, authdomain.RoleSeller))
		{
			fcm.POST("/register", authHandler.RegisterPushToken)
			fcm.DELETE("/:token", authHandler.UnregisterPushToken)
		}
	}

	// Broadcast dashboard API (admin JWT)
	admin := r.Group("/admin/fcm-management/api")
	admin.Use(authDelivery.AuthMiddleware(authUc, authdomain.RoleAdmin))
	{
		admin.POST("/send", broadcastHandler.Send)
		admin.GET("/tokens", broadcastHandler.Tokens)
		admin.GET("/history", broadcastHandler.History)
		admin.GET("/stats", broadcastHandler.Stats)
	}
}

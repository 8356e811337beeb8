package api

import (
	authDelivery "sellerapp-backend/internal/auth/delivery"
	authUsecase "sellerapp-backend/internal/auth/usecase"
	broadcastDelivery "sellerapp-backend/internal/broadcast/delivery"
	broadcastUsecase "sellerapp-backend/internal/broadcast/usecase"
	"sellerapp-backend/pkg/config"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type Handler struct {
	authUsecase      authUsecase.AuthUsecase
	broadcastUsecase broadcastUsecase.BroadcastUsecase
	config           *config.Config
	db               *gorm.DB
}

func NewHandler(authUc authUsecase.AuthUsecase, broadcastUc broadcastUsecase.BroadcastUsecase, cfg *config.Config, db *gorm.DB) *Handler {
	return &Handler{
		authUsecase:      authUc,
		broadcastUsecase: broadcastUc,
		config:           cfg,
		db:               db,
	}
}

func (h *Handler) Start(addr string) error {
	r := gin.Default()
	gin.SetMode(gin.ReleaseMode)

	// CORS middleware
	r.Use(func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")
		if origin != "" {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		} else {
			c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		}

		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	authHandler := authDelivery.NewAuthHandler(h.authUsecase)
	broadcastHandler := broadcastDelivery.NewBroadcastHandler(h.broadcastUsecase)

	SetupRoutes(r, h.authUsecase, authHandler, broadcastHandler, h.db)

	return r.Run(addr)
}

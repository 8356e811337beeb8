package main

import (
	"log"

	api "sellerapp-backend/cmd/api"
	authdomain "sellerapp-backend/internal/auth/domain"
	authRepo "sellerapp-backend/internal/auth/repository"
	authUsecase "sellerapp-backend/internal/auth/usecase"
	broadcastdomain "sellerapp-backend/internal/broadcast/domain"
	broadcastRepo "sellerapp-backend/internal/broadcast/repository"
	broadcastUsecase "sellerapp-backend/internal/broadcast/usecase"
	sellerdomain "sellerapp-backend/internal/seller/domain"
	sellerRepo "sellerapp-backend/internal/seller/repository"
	"sellerapp-backend/pkg/config"
	"sellerapp-backend/pkg/database"
	"sellerapp-backend/pkg/fcm"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.NewPostgresConnection(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Auto-migrate database schemas
	if err := db.AutoMigrate(&authdomain.Admin{}, &sellerdomain.Seller{}, &sellerdomain.PushToken{}, &broadcastdomain.DeliveryRecord{}); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Initialize repositories (dependency injection)
	adminRepository := authRepo.NewAdminRepository(db)
	pushTokenRepository := authRepo.NewPushTokenRepository(db)
	sellerRepository := sellerRepo.NewSellerRepository(db)
	recordRepository := broadcastRepo.NewRecordRepository(db)

	// Initialize FCM client (optional, broadcasts fall back to an
	// error result when unavailable in live mode)
	var fcmClient *fcm.Client
	if cfg.FirebaseCredentials != "" {
		fcmClient, err = fcm.NewClient(cfg.FirebaseCredentials)
		if err != nil {
			log.Printf("[WARN] Failed to initialize FCM client (push notifications disabled): %v", err)
		}
	} else {
		log.Printf("[WARN] No Firebase credentials configured, FCM disabled")
	}

	// Initialize the broadcast pipeline components
	governor := broadcastUsecase.NewSafetyGovernor(cfg)
	resolver := broadcastUsecase.NewAudienceResolver(sellerRepository)
	var messenger broadcastUsecase.Messenger
	if fcmClient != nil {
		messenger = fcmClient
	}
	dispatcher := broadcastUsecase.NewDispatcher(messenger)
	recorder := broadcastUsecase.NewDeliveryRecorder(recordRepository, sellerRepository, governor)

	log.Printf("[Broadcast] Safety policy: mode=%s, maxTokensPerSend=%d", governor.Mode(), governor.MaxTokensPerSend())

	// Initialize use cases (dependency injection)
	authUsecaseInstance := authUsecase.NewAuthUsecase(adminRepository, sellerRepository, pushTokenRepository, cfg)
	broadcastUsecaseInstance := broadcastUsecase.NewBroadcastUsecase(resolver, governor, dispatcher, recorder, sellerRepository)

	// Initialize HTTP handler
	handler := api.NewHandler(authUsecaseInstance, broadcastUsecaseInstance, cfg, db)

	// Start server
	log.Printf("Server starting on port %s", cfg.Port)
	if err := handler.Start(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}

package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port                string
	DatabaseURL         string
	JWTSecret           string
	JWTAccessExpiry     time.Duration
	FirebaseCredentials string

	// Broadcast safety policy: kill-switch plus hard cap on tokens per
	// send. Read once at startup and handed to the safety governor so
	// both modes are testable without touching the process environment.
	FCMLiveMode         bool
	FCMMaxTokensPerSend int
}

func Load() *Config {
	// Load .env file if it exists
	_ = godotenv.Load()

	accessExpiry := 15 * time.Minute
	if exp := os.Getenv("JWT_ACCESS_EXPIRY"); exp != "" {
		if parsed, err := time.ParseDuration(exp); err == nil {
			accessExpiry = parsed
		}
	}

	return &Config{
		Port:                getEnv("PORT", "8080"),
		DatabaseURL:         getEnv("DATABASE_URL", ""),
		JWTSecret:           getEnv("JWT_SECRET", "your-secret-key-change-in-production"),
		JWTAccessExpiry:     accessExpiry,
		FirebaseCredentials: getEnv("FIREBASE_CREDENTIALS", ""),
		FCMLiveMode:         getEnvAsBool("FCM_LIVE_MODE", false),
		FCMMaxTokensPerSend: getEnvAsInt("FCM_MAX_TOKENS_PER_SEND", 50),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		parsed, err := strconv.Atoi(value)
		if err != nil {
			log.Printf("[Config] invalid int for %s, using default %d: %v", key, defaultValue, err)
			return defaultValue
		}
		return parsed
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		parsed, err := strconv.ParseBool(value)
		if err != nil {
			log.Printf("[Config] invalid bool for %s, using default %v: %v", key, defaultValue, err)
			return defaultValue
		}
		return parsed
	}
	return defaultValue
}

package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL       string
	Port              string
	IsProduction      bool
	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string

	// Gemini commentary. An empty key disables the feature rather than
	// failing startup.
	GeminiAPIKey string
	GeminiModel  string

	// Sync queue sizing.
	SyncWorkers   int
	SyncQueueSize int

	// Limiter format string, e.g. "10-M" for 10 requests per minute.
	InsightRateLimit string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	viper.SetDefault("JWT_EXPIRY_DURATION", "720h")
	viper.SetDefault("JWT_ISSUER", "fintrack-app")
	viper.SetDefault("GEMINI_API_KEY", "")
	viper.SetDefault("GEMINI_MODEL", "gemini-2.5-flash")
	viper.SetDefault("SYNC_WORKERS", 4)
	viper.SetDefault("SYNC_QUEUE_SIZE", 256)
	viper.SetDefault("INSIGHT_RATE_LIMIT", "10-M")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "a-very-secret-key-should-be-longer-and-random" {
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}

	jwtExpiryStr := viper.GetString("JWT_EXPIRY_DURATION")
	jwtExpiryDuration, err := time.ParseDuration(jwtExpiryStr)
	if err != nil {
		// Restoration tokens live long by design; sessions survive restarts.
		jwtExpiryDuration = time.Hour * 720
		log.Printf("Warning: Invalid value for JWT_EXPIRY_DURATION ('%s'). Defaulting to %s.\n", jwtExpiryStr, jwtExpiryDuration.String())
	}
	cfg.JWTExpiryDuration = jwtExpiryDuration

	cfg.JWTIssuer = viper.GetString("JWT_ISSUER")

	cfg.GeminiAPIKey = viper.GetString("GEMINI_API_KEY")
	if cfg.GeminiAPIKey == "" {
		log.Println("Warning: GEMINI_API_KEY not set. AI insights will return placeholder text.")
	}
	cfg.GeminiModel = viper.GetString("GEMINI_MODEL")

	cfg.SyncWorkers = viper.GetInt("SYNC_WORKERS")
	if cfg.SyncWorkers < 1 {
		cfg.SyncWorkers = 1
	}
	cfg.SyncQueueSize = viper.GetInt("SYNC_QUEUE_SIZE")
	if cfg.SyncQueueSize < 1 {
		cfg.SyncQueueSize = 16
	}

	cfg.InsightRateLimit = viper.GetString("INSIGHT_RATE_LIMIT")

	return cfg, nil
}

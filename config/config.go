package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"motolog-api/models"
)

type Config struct {
	Port        string
	GinMode     string
	CORSOrigins []string
	DBType      string
	DatabaseURL string
	DBMaxConns  int

	// Sessions
	SessionSecret     string
	SessionTTL        time.Duration
	SessionCookie     string
	RequireAPISession bool

	RateLimitPerMinute int
	RateLimitBurst     int
	CleanupInterval    time.Duration

	// Email Configuration
	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	FromEmail    string
	FromName     string

	// The one motorcycle this deployment tracks
	SingleMotorcycle   models.MotorcycleProfile
	DefaultOwnerID     string
	BootstrapOnStartup bool
}

// Load reads .env.local and .env when present, then builds the config from the environment.
func Load() *Config {
	for _, file := range []string{".env.local", ".env"} {
		if err := godotenv.Load(file); err == nil {
			log.Printf("Loaded environment from %s", file)
		}
	}

	profile := models.DefaultMotorcycleProfile()
	profile.ID = getEnv("MOTORCYCLE_ID", profile.ID)

	return &Config{
		Port:        getEnv("PORT", "8080"),
		GinMode:     getEnv("GIN_MODE", "debug"),
		CORSOrigins: strings.Split(getEnv("CORS_ORIGINS", "http://localhost:3000"), ","),
		DBType:      strings.ToLower(getEnv("DB_TYPE", "mysql")),
		DatabaseURL: getEnv("DATABASE_URL", "user:password@tcp(localhost:3306)/motolog?charset=utf8mb4&parseTime=True&loc=Local"),
		DBMaxConns:  getEnvAsInt("DB_MAX_OPEN_CONNS", 10),

		SessionSecret:     getEnv("SESSION_SECRET", "your-secret-key"),
		SessionTTL:        getEnvAsDuration("SESSION_TTL", 7*24*time.Hour),
		SessionCookie:     getEnv("SESSION_COOKIE", "better-auth.session_token"),
		RequireAPISession: getEnvAsBool("REQUIRE_API_SESSION", false),

		RateLimitPerMinute: getEnvAsInt("RATE_LIMIT_PER_MINUTE", 120),
		RateLimitBurst:     getEnvAsInt("RATE_LIMIT_BURST", 30),
		CleanupInterval:    getEnvAsDuration("CLEANUP_INTERVAL", time.Hour),

		// Email settings; an empty host disables delivery
		SMTPHost:     getEnv("SMTP_HOST", ""),
		SMTPPort:     getEnvAsInt("SMTP_PORT", 2525),
		SMTPUsername: getEnv("SMTP_USERNAME", ""),
		SMTPPassword: getEnv("SMTP_PASSWORD", ""),
		FromEmail:    getEnv("FROM_EMAIL", "noreply@motolog.local"),
		FromName:     getEnv("FROM_NAME", "Motolog"),

		SingleMotorcycle:   profile,
		DefaultOwnerID:     getEnv("DEFAULT_OWNER_ID", "default-user"),
		BootstrapOnStartup: getEnvAsBool("BOOTSTRAP_ON_STARTUP", false),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsBool(key string, defaultValue bool) bool {
	value, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	value, err := time.ParseDuration(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}

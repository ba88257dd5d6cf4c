package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv        string
	Port          string
	StoreDriver   string
	DataFile      string
	UploadDir     string
	MaxUploadSize int64
	SessionSecret string
	SessionName   string
	AdminUser     string
	AdminHash     string
	AdminPassword string
	SessionMaxAge int
	JWTSecret     string
	JWTExpiry     time.Duration
	DBHost        string
	DBPort        string
	DBUser        string
	DBPassword    string
	DBName        string
	DBSSLMode     string
	RedisURL      string
	RedisAddr     string
	RedisPassword string
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using system environment variables")
	}

	maxUploadSize, _ := strconv.ParseInt(os.Getenv("MAX_UPLOAD_SIZE"), 10, 64)
	if maxUploadSize == 0 {
		maxUploadSize = 5242880
	}

	jwtExpiry, err := time.ParseDuration(getEnv("JWT_EXPIRY", "30m"))
	if err != nil {
		jwtExpiry = 30 * time.Minute
	}

	sessionMaxAge, _ := strconv.Atoi(os.Getenv("SESSION_MAX_AGE"))
	if sessionMaxAge == 0 {
		sessionMaxAge = 7 * 24 * 3600
	}

	cfg := &Config{
		AppEnv:        getEnv("APP_ENV", "development"),
		Port:          getEnv("APP_PORT", getEnv("PORT", "8082")),
		StoreDriver:   getEnv("STORE_DRIVER", "json"),
		DataFile:      getEnv("DATA_FILE", "productos.json"),
		UploadDir:     getEnv("UPLOAD_DIR", "./static/uploads"),
		MaxUploadSize: maxUploadSize,
		SessionSecret: getEnv("SESSION_SECRET", "dev-session-secret"),
		SessionName:   getEnv("SESSION_NAME", "tienda_session"),
		AdminUser:     getEnv("ADMIN_USER", "admin"),
		AdminHash:     os.Getenv("ADMIN_PASSWORD_HASH"),
		AdminPassword: getEnv("ADMIN_PASSWORD", "admin123"),
		SessionMaxAge: sessionMaxAge,
		JWTSecret:     getEnv("JWT_SECRET", "secret"),
		JWTExpiry:     jwtExpiry,
		DBHost:        getEnv("DB_HOST", "localhost"),
		DBPort:        getEnv("DB_PORT", "5432"),
		DBUser:        getEnv("DB_USER", "postgres"),
		DBPassword:    getEnv("DB_PASSWORD", "postgres"),
		DBName:        getEnv("DB_NAME", "tienda_hogar"),
		DBSSLMode:     getEnv("DB_SSLMODE", "disable"),
		RedisURL:      os.Getenv("REDIS_URL"),
		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
	}

	log.Println("Configuration loaded successfully")
	log.Printf("Environment: %s", cfg.AppEnv)
	log.Printf("Store driver: %s", cfg.StoreDriver)

	return cfg
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	Port   string
	JWTKey string

	// Absence risk thresholds
	WarningThreshold     int
	EliminationThreshold int

	// Text extraction collaborator (OCR/parsing service)
	ExtractorApiURL string
	ExtractorApiKey string

	SendgridApiKey string
	EmailSender    string

	UploadDir string
}

// AppConfig is a global variable to access configuration
var AppConfig *Config

// LoadConfig initializes configuration from environment variables or defaults
func LoadConfig() {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found. Using system environment variables.")
	}

	AppConfig = &Config{
		Port:   getEnv("PORT", "3000"),
		JWTKey: getEnv("JWT_SECRET_KEY", "defaultSecret"),

		WarningThreshold:     getEnvInt("WARNING_THRESHOLD", 3),
		EliminationThreshold: getEnvInt("ELIMINATION_THRESHOLD", 4),

		ExtractorApiURL: getEnv("EXTRACTOR_API_URL", "http://localhost:8090/extract"),
		ExtractorApiKey: getEnv("EXTRACTOR_API_KEY", ""),

		SendgridApiKey: getEnv("SENDGRID_API_KEY", ""),
		EmailSender:    getEnv("EMAIL_SENDER", "no-reply@campus.local"),

		UploadDir: getEnv("UPLOAD_DIR", "./uploads"),
	}

	// Validate critical configuration
	if AppConfig.JWTKey == "defaultSecret" {
		log.Println("Warning: using default JWT secret. Set JWT_SECRET_KEY in production.")
	}
	if AppConfig.EliminationThreshold <= AppConfig.WarningThreshold {
		log.Printf("Warning: ELIMINATION_THRESHOLD (%d) should be greater than WARNING_THRESHOLD (%d)",
			AppConfig.EliminationThreshold, AppConfig.WarningThreshold)
	}
}

// getEnv reads an environment variable or returns the fallback
func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return fallback
}

// getEnvInt reads an integer environment variable or returns the fallback
func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
		log.Printf("Warning: invalid integer for %s, using default %d", key, fallback)
	}
	return fallback
}

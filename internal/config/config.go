package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"margadarsaka-be/internal/pkg/secrets"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	SMTP     SMTPConfig
	Keys     APIKeys
	Ai       AIConfig
}

type AppConfig struct {
	Port               string
	BaseURL            string
	ClientURL          string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
	RatingRenderer     string // "glyph" or "html"
}

type DatabaseConfig struct {
	Connection string
}

type SMTPConfig struct {
	Host       string
	Port       int
	Email      string
	Password   string
	SenderName string
}

type APIKeys struct {
	GoogleGemini       string
	JwtSecret          string
	GoogleClientID     string
	GoogleClientSecret string
	AppwriteEndpoint   string
	AppwriteProjectID  string
	AppwriteAPIKey     string
}

type AIConfig struct {
	LLMProvider   string // "gemini" or "ollama"
	LLMModel      string
	OllamaBaseURL string
}

// Load reads .env, then resolves key material through the Doppler-backed
// secret manager (which falls back to process env when no token is set).
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, using system environment")
	}

	sm := secrets.NewManager(
		getEnv("DOPPLER_TOKEN", ""),
		getEnv("DOPPLER_PROJECT", "margadarsaka"),
		getEnv("DOPPLER_CONFIG", "prd"),
	)

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			BaseURL:            getEnv("APP_BASE_URL", "http://localhost:3000"),
			ClientURL:          getEnv("CLIENT_URL", "http://localhost:5173"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "app.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
			RatingRenderer:     getEnv("RATING_RENDERER", "glyph"),
		},
		Database: DatabaseConfig{
			Connection: getEnv("DB_CONNECTION_STRING", ""),
		},
		SMTP: SMTPConfig{
			Host:       getEnv("SMTP_HOST", ""),
			Port:       getEnvAsInt("SMTP_PORT", 587),
			Email:      getEnv("SMTP_EMAIL", ""),
			Password:   sm.Get("SMTP_PASSWORD"),
			SenderName: getEnv("SMTP_SENDER_NAME", "Margadarsaka"),
		},
		Keys: APIKeys{
			GoogleGemini:       sm.Get("GEMINI_API_KEY"),
			JwtSecret:          sm.Get("JWT_SECRET"),
			GoogleClientID:     sm.Get("GOOGLE_CLIENT_ID"),
			GoogleClientSecret: sm.Get("GOOGLE_CLIENT_SECRET"),
			AppwriteEndpoint:   getEnv("APPWRITE_ENDPOINT", "https://cloud.appwrite.io/v1"),
			AppwriteProjectID:  getEnv("APPWRITE_PROJECT_ID", ""),
			AppwriteAPIKey:     sm.Get("APPWRITE_API_KEY"),
		},
		Ai: AIConfig{
			LLMProvider:   getEnv("LLM_PROVIDER", "gemini"),
			LLMModel:      getEnv("LLM_MODEL", "gemini-2.5-flash"),
			OllamaBaseURL: getEnv("OLLAMA_BASE_URL", "http://localhost:11434"),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}

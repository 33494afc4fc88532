package config

import (
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	DatabaseURL string

	LogLevel  string
	LogFormat string

	// Cross-origin allow-list. Requests from any other origin get the first
	// entry reflected back instead of a rejection.
	AllowedOrigins []string

	// Identity verification: "firebase" or "jwt".
	AuthProvider        string
	JWTSecret           string
	FirebaseCredentials string

	// Model provider: "gemini", "ollama" or "auto".
	AIProvider    string
	GeminiAPIKey  string
	OllamaBaseURL string
	OllamaModel   string

	TavilyAPIKey string

	// How often the priority scoring batch runs. Zero disables the scheduler.
	ScoringInterval time.Duration
}

func Load() *Config {
	// Load .env file if it exists
	_ = godotenv.Load()

	scoringInterval := 24 * time.Hour
	if raw := os.Getenv("SCORING_INTERVAL"); raw != "" {
		if parsed, err := time.ParseDuration(raw); err == nil {
			scoringInterval = parsed
		}
	}

	origins := []string{
		"https://d23i7v2l7vxa2o.cloudfront.net",
		"http://localhost:3000",
	}
	if raw := os.Getenv("ALLOWED_ORIGINS"); raw != "" {
		origins = origins[:0]
		for _, o := range strings.Split(raw, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
	}

	return &Config{
		Port:                getEnv("PORT", "8080"),
		DatabaseURL:         getEnv("DATABASE_URL", "host=localhost user=postgres password=postgres dbname=jobtrail port=5432 sslmode=disable"),
		LogLevel:            getEnv("LOG_LEVEL", "info"),
		LogFormat:           getEnv("LOG_FORMAT", "json"),
		AllowedOrigins:      origins,
		AuthProvider:        getEnv("AUTH_PROVIDER", "jwt"),
		JWTSecret:           getEnv("JWT_SECRET", "your-secret-key-change-in-production"),
		FirebaseCredentials: getEnv("FIREBASE_CREDENTIALS", ""),
		AIProvider:          getEnv("AI_PROVIDER", "auto"),
		GeminiAPIKey:        getEnv("GEMINI_API_KEY", ""),
		OllamaBaseURL:       getEnv("OLLAMA_BASE_URL", "http://localhost:11434"),
		OllamaModel:         getEnv("OLLAMA_MODEL", "llama3"),
		TavilyAPIKey:        getEnv("TAVILY_API_KEY", ""),
		ScoringInterval:     scoringInterval,
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

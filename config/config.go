// config.go - Handles configuration for the project

package config // Declares the package name

import ( // Import required packages
	"os" // For reading environment variables
)

type Config struct { // Config struct holds all configuration values
	DBPath        string // Path to the SQLite database file
	Port          string // Port the HTTP server listens on
	JWTSecret     string // Secret key for JWT authentication
	OpenAIKey     string // API key for the OpenAI chat completions API
	OpenAIBaseURL string // Base URL of the OpenAI API (overridable for tests)
}

func Load() *Config { // Load reads config from environment variables or uses defaults
	return &Config{
		DBPath:        getEnv("DB_PATH", "health.db"),                     // Get DB path or use default
		Port:          getEnv("PORT", "8000"),                             // Get server port or use default
		JWTSecret:     getEnv("JWT_SECRET", "supersecret"),                // Get JWT secret or use default
		OpenAIKey:     getEnv("OPENAI_API_KEY", ""),                       // Get OpenAI key (no default)
		OpenAIBaseURL: getEnv("OPENAI_BASE_URL", "https://api.openai.com"), // Get OpenAI base URL or use default
	}
}

func getEnv(key, fallback string) string { // Helper to get env var or fallback
	if value := os.Getenv(key); value != "" { // If env var is set, use it
		return value
	}
	return fallback // Otherwise, use fallback value
}

package config

import (
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds everything the process needs at start. It is built once in
// main and passed down explicitly — no package-level state.
type Config struct {
	Port           string
	MongoURI       string
	MongoDB        string
	JWTSecret      []byte
	AllowedOrigins []string
	TokenTTL       time.Duration
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// Load reads the configuration from the environment, loading a .env file
// first if one exists.
func Load() Config {
	_ = godotenv.Load()
	return Config{
		Port:           getEnv("PORT", "8080"),
		MongoURI:       getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:        getEnv("MONGO_DB", "foodie"),
		JWTSecret:      []byte(getEnv("JWT_SECRET", "foodie_super_secret_2024")),
		AllowedOrigins: splitList(getEnv("ALLOWED_ORIGINS", "http://localhost:8081,http://localhost:8082")),
		TokenTTL:       time.Hour,
	}
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

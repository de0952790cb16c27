package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	EtsyAPIKey      string
	EbaySearchURL   string
	EtsyAPIURL      string
	EtsyResultLimit int

	DBPath string

	MaxRetries  int
	RetryDelay  time.Duration
	HTTPTimeout time.Duration
}

// Load reads the .env file and returns a populated Config struct.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("[config] No .env file found, falling back to system env vars")
	}

	return &Config{
		EtsyAPIKey:      getEnv("ETSY_API_KEY", ""),
		EbaySearchURL:   getEnv("EBAY_SEARCH_URL", "https://www.ebay.com/sch/i.html"),
		EtsyAPIURL:      getEnv("ETSY_API_URL", "https://openapi.etsy.com/v2/listings/active"),
		EtsyResultLimit: getEnvInt("ETSY_RESULT_LIMIT", 10),

		DBPath: getEnv("DB_PATH", "./ebay_etsy_listings.db"),

		MaxRetries:  getEnvInt("MAX_RETRIES", 3),
		RetryDelay:  time.Duration(getEnvInt("RETRY_DELAY_MS", 2000)) * time.Millisecond,
		HTTPTimeout: time.Duration(getEnvInt("HTTP_TIMEOUT_S", 10)) * time.Second,
	}
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		n, err := strconv.Atoi(val)
		if err == nil {
			return n
		}
	}
	return fallback
}

package config

import (
	"github.com/joho/godotenv"
	"log"
	"os"
	"strconv"
	"time"
)

type Config struct {
	APIBaseURL     string
	RequestTimeout time.Duration
	StorageFile    string
	ProxyPort      int
	ProxyTarget    string
}

func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func parseDuration(value string) time.Duration {
	duration, err := time.ParseDuration(value)
	if err != nil {
		return 10 * time.Second
	}
	return duration
}

func LoadConfig() *Config {
	err := godotenv.Load()
	if err != nil {
		log.Println("Warning: .env file not found, using environment variables")
	}

	return &Config{
		APIBaseURL:     getEnv("API_BASE_URL", "http://localhost:8101/api"),
		RequestTimeout: parseDuration(getEnv("REQUEST_TIMEOUT", "10s")),
		StorageFile:    getEnv("CLIENT_STORAGE_FILE", ".leotclient.json"),
		ProxyPort:      getEnvAsInt("PROXY_PORT", 3000),
		ProxyTarget:    getEnv("PROXY_TARGET", "http://localhost:8101"),
	}
}

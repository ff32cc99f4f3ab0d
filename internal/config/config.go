package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	FirebaseProjectID   string
	FirebaseCredentials string
	JWTSecret           string
	RedisAddr           string
	ServerPort          string
	LogLevel            string
	LogFormat           string
}

func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		FirebaseProjectID:   getEnv("FIREBASE_PROJECT_ID", ""),
		FirebaseCredentials: getEnv("FIREBASE_CREDENTIALS_FILE", ""),
		JWTSecret:           getEnv("JWT_SECRET", "changeme"),
		RedisAddr:           getEnv("REDIS_ADDR", ""),
		ServerPort:          getEnv("SERVER_PORT", "8080"),
		LogLevel:            getEnv("LOG_LEVEL", "info"),
		LogFormat:           getEnv("LOG_FORMAT", "json"),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%s", c.ServerPort)
}

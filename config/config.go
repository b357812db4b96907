package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const DefaultDatabaseURL = "file:./data/dev.db"

type Config struct {
	AppEnv                 string
	AppPort                string
	LogLevel               string
	DatabaseURL            string
	DBMaxIdleConns         int
	DBMaxOpenConns         int
	DBLogLevel             string
	AllowedOrigins         string
	NatsURL                string
	RateLimitRPS           int
	RateLimitBurst         int
	ShutdownTimeoutSeconds int
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	log.Printf("%s not set, defaulting to %s", key, defaultValue)
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
		log.Printf("Invalid integer value for %s, defaulting to %d", key, defaultValue)
	}
	return defaultValue
}

// Load reads the configuration from the environment. A .env file in the
// working directory is loaded first when present; variables already set in
// the environment win.
func Load() Config {
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded environment from .env")
	}

	return Config{
		AppEnv:                 getEnv("APP_ENV", "development"),
		AppPort:                getEnv("APP_PORT", "4000"),
		LogLevel:               getEnv("LOG_LEVEL", "info"),
		DatabaseURL:            getEnv("DATABASE_URL", DefaultDatabaseURL),
		DBMaxIdleConns:         getEnvAsInt("DB_MAX_IDLE_CONNS", 10),
		DBMaxOpenConns:         getEnvAsInt("DB_MAX_OPEN_CONNS", 100),
		DBLogLevel:             getEnv("DB_LOG_LEVEL", "warn"),
		AllowedOrigins:         getEnv("ALLOWED_ORIGINS", "*"),
		NatsURL:                getEnv("NATS_URL", ""),
		RateLimitRPS:           getEnvAsInt("RATE_LIMIT_RPS", 20),
		RateLimitBurst:         getEnvAsInt("RATE_LIMIT_BURST", 40),
		ShutdownTimeoutSeconds: getEnvAsInt("SHUTDOWN_TIMEOUT_SECONDS", 30),
	}
}

func (c Config) IsProduction() bool {
	return c.AppEnv == "production"
}

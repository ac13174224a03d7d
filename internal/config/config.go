package config

import (
	"errors"
	"os"
	"strconv"
	"time"

	"studydesk/internal/logger"

	"github.com/joho/godotenv"
)

type Config struct {
	AppPort     string
	AppVersion  string
	JWTSecret   string
	DatabaseURL string // empty disables the audit trail

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	APIRateLimit  int
	APIRateWindow time.Duration

	SessionTTL    time.Duration
	SingleSession bool
	AllowedOrigin string
	CookieSecure  bool

	LogLevel string
	LogJSON  bool
}

// Load reads .env (if present) and the environment. A missing JWT_SECRET is fatal.
func Load() *Config {
	_ = godotenv.Load()

	cfg, err := Parse(os.Getenv)
	if err != nil {
		logger.Fatal("invalid configuration", "error", err)
	}
	return cfg
}

// Parse builds a Config from getenv, applying defaults for unset or
// malformed optional values.
func Parse(getenv func(string) string) (*Config, error) {
	jwtSecret := getenv("JWT_SECRET")
	if jwtSecret == "" {
		return nil, errors.New("JWT_SECRET is not set")
	}

	port := getenv("APP_PORT")
	if port == "" {
		port = "8080"
	}

	version := getenv("APP_VERSION")
	if version == "" {
		version = "dev"
	}

	logLevel := getenv("LOG_LEVEL")
	if logLevel == "" {
		logLevel = "info"
	}

	return &Config{
		AppPort:       port,
		AppVersion:    version,
		JWTSecret:     jwtSecret,
		DatabaseURL:   getenv("DATABASE_URL"),
		RedisAddr:     getenv("REDIS_ADDR"),
		RedisPassword: getenv("REDIS_PASSWORD"),
		RedisDB:       positiveInt(getenv("REDIS_DB"), 0),
		APIRateLimit:  positiveInt(getenv("API_RATE_LIMIT"), 120),
		APIRateWindow: time.Duration(positiveInt(getenv("API_RATE_WINDOW_SECONDS"), 60)) * time.Second,
		SessionTTL:    time.Duration(positiveInt(getenv("SESSION_TTL_MINUTES"), 720)) * time.Minute,
		SingleSession: getenv("SINGLE_SESSION") == "true",
		AllowedOrigin: getenv("ALLOWED_ORIGIN"),
		CookieSecure:  getenv("COOKIE_SECURE") == "true",
		LogLevel:      logLevel,
		LogJSON:       getenv("LOG_JSON") == "true",
	}, nil
}

func positiveInt(v string, def int) int {
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return def
	}
	return n
}

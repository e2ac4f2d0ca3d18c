package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"docintel-be/pkg/utils"

	"github.com/joho/godotenv"
)

type Config struct {
	App        AppConfig
	Auth       AuthConfig
	Storage    StorageConfig
	Chat       ChatConfig
	Processing ProcessingConfig
}

type AppConfig struct {
	Port               string
	Environment        string
	LogFilePath        string
	WsLogFilePath      string
	CorsAllowedOrigins string
	NatsURL            string // empty disables the NATS bridge
	RedisURL           string // empty disables redis
	MetricsEnabled     bool
	TracingEnabled     bool
	OtlpEndpoint       string
}

type AuthConfig struct {
	Email      string
	Password   string
	TokenKey   string
	Token      string
	Verifier   string // "static" or "jwt"
	JwtSecret  string
	JwtTTL     time.Duration
	InitDelay  time.Duration
	LoginDelay time.Duration
}

type StorageConfig struct {
	TokenStore    string // "file", "memory" or "redis"
	TokenFile     string
	MaxUploadSize int64 // bytes
}

type ChatConfig struct {
	ReplyDelay    time.Duration
	DefaultEngine string
}

type ProcessingConfig struct {
	Delay time.Duration
}

func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "logs/app.log"),
			WsLogFilePath:      getEnv("WS_LOG_FILE_PATH", "logs/ws.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
			NatsURL:            getEnv("NATS_URL", ""),
			RedisURL:           getEnv("REDIS_URL", ""),
			MetricsEnabled:     getEnvAsBool("METRICS_ENABLED", true),
			TracingEnabled:     getEnvAsBool("TRACING_ENABLED", false),
			OtlpEndpoint:       getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", "localhost:4318"),
		},
		Auth: AuthConfig{
			Email:      getEnv("AUTH_EMAIL", "admin@docintel.com"),
			Password:   getEnv("AUTH_PASSWORD", "password"),
			TokenKey:   getEnv("AUTH_TOKEN_KEY", "docintel_token"),
			Token:      getEnv("AUTH_TOKEN", "mock-jwt-token"),
			Verifier:   strings.ToLower(getEnv("AUTH_VERIFIER", "static")),
			JwtSecret:  getEnv("JWT_SECRET", "docintel-dev-secret"),
			JwtTTL:     getEnvAsDuration("JWT_TTL", 24*time.Hour),
			InitDelay:  getEnvAsDuration("AUTH_INIT_DELAY", time.Second),
			LoginDelay: getEnvAsDuration("AUTH_LOGIN_DELAY", 1500*time.Millisecond),
		},
		Storage: StorageConfig{
			TokenStore:    strings.ToLower(getEnv("TOKEN_STORE", "file")),
			TokenFile:     getEnv("TOKEN_FILE", ".docintel/token.json"),
			MaxUploadSize: getEnvAsSize("MAX_UPLOAD_SIZE", 50<<20),
		},
		Chat: ChatConfig{
			ReplyDelay:    getEnvAsDuration("CHAT_REPLY_DELAY", 1500*time.Millisecond),
			DefaultEngine: getEnv("CHAT_DEFAULT_ENGINE", "openai"),
		},
		Processing: ProcessingConfig{
			Delay: getEnvAsDuration("PROCESSING_DELAY", 3*time.Second),
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

func getEnvAsBool(key string, fallback bool) bool {
	strValue := getEnv(key, "")
	if value, err := strconv.ParseBool(strValue); err == nil {
		return value
	}
	return fallback
}

// getEnvAsDuration accepts Go durations ("1500ms") or a bare number of
// milliseconds.
func getEnvAsDuration(key string, fallback time.Duration) time.Duration {
	strValue := getEnv(key, "")
	if value, err := time.ParseDuration(strValue); err == nil {
		return value
	}
	if ms := getEnvAsInt(key, -1); ms >= 0 {
		return time.Duration(ms) * time.Millisecond
	}
	return fallback
}

// getEnvAsSize accepts human sizes such as "50MB" or "1.5GB".
func getEnvAsSize(key string, fallback int64) int64 {
	strValue := getEnv(key, "")
	if strValue == "" {
		return fallback
	}
	if value, err := utils.ParseFileSize(strValue); err == nil {
		return value
	}
	log.Printf("Note: invalid size %q for %s, using default", strValue, key)
	return fallback
}

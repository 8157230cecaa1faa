package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Data sources for the repositories.
const (
	DataSourceFixtures = "fixtures"
	DataSourceMySQL    = "mysql"
	DataSourcePostgres = "postgres"
)

// Session stores.
const (
	SessionStoreRedis  = "redis"
	SessionStoreMemory = "memory"
)

// Config holds application level configuration loaded from environment variables.
type Config struct {
	ServerPort          string
	DataSource          string
	MySQLDSN            string
	PostgresDSN         string
	SessionStore        string
	SessionTTL          time.Duration
	RedisAddr           string
	RedisDB             int
	RedisPass           string
	JWTSecret           string
	DefaultOrganization string
	OrgHeadcount        int
	ChatbotURL          string
	SwaggerHost         string
	CORSOrigins         []string
}

// Load builds Config from environment with sensible defaults. A .env file in
// the working directory is applied first when present.
func Load() *Config {
	if err := godotenv.Load(); err == nil {
		log.Println("loaded configuration from .env")
	}

	cfg := &Config{
		ServerPort:          getEnv("SERVER_PORT", "8080"),
		DataSource:          strings.ToLower(getEnv("DATA_SOURCE", DataSourceFixtures)),
		MySQLDSN:            getEnv("MYSQL_DSN", "user:password@tcp(localhost:3306)/coride?charset=utf8mb4&parseTime=True&loc=Local"),
		PostgresDSN:         getEnv("POSTGRES_DSN", "host=localhost user=postgres password=postgres dbname=coride port=5432 sslmode=disable"),
		SessionStore:        strings.ToLower(getEnv("SESSION_STORE", SessionStoreMemory)),
		SessionTTL:          time.Duration(getEnvInt("SESSION_TTL_HOURS", 24*7)) * time.Hour,
		RedisAddr:           getEnv("REDIS_ADDR", "localhost:6379"),
		RedisDB:             getEnvInt("REDIS_DB", 0),
		RedisPass:           os.Getenv("REDIS_PASSWORD"),
		JWTSecret:           getEnv("JWT_SECRET", "change-me"),
		DefaultOrganization: getEnv("DEFAULT_ORGANIZATION", "Demo Company"),
		OrgHeadcount:        getEnvInt("ORG_HEADCOUNT", 120),
		ChatbotURL:          getEnv("CHATBOT_URL", "http://localhost:8501"),
		SwaggerHost:         os.Getenv("SWAGGER_HOST"),
		CORSOrigins:         splitList(getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173")),
	}

	if cfg.JWTSecret == "change-me" {
		log.Println("[WARN] JWT_SECRET is not set, using the development default")
	}
	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			return parsed
		}
	}
	return def
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

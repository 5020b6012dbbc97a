package config

import (
	"errors"  // Validation errors
	"fmt"     // Error formatting
	"os"      // For environment variables
	"strconv" // For string to int conversion

	"github.com/joho/godotenv" // For loading .env files
)

// Supported database drivers and session stores
const (
	DriverSQLite = "sqlite"
	DriverMySQL  = "mysql"

	SessionStoreCookie = "cookie"
	SessionStoreRedis  = "redis"
)

// Config holds the application configuration
type Config struct {
	AppPort       string // Application port
	DBDriver      string // sqlite or mysql
	DBPath        string // SQLite database file
	DBUser        string // Database user
	DBPassword    string // Database password
	DBHost        string // Database host
	DBPort        string // Database port
	DBName        string // Database name
	SessionSecret string // Key used to sign session cookies
	SessionName   string // Session cookie name
	SessionMaxAge int    // Session lifetime in seconds
	SessionStore  string // cookie or redis
	RedisAddr     string // Redis server address
	RedisPass     string // Redis password
	RedisDB       int    // Redis database number
	TenantUserID  uint   // User that owns every movement and employee
	IsProd        bool   // Is production environment
	LogLevel      string // logrus level name
	LogFormat     string // text or json
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	_ = godotenv.Load() // Load .env file if present
	return &Config{
		AppPort:       getEnv("APP_PORT", "8080"),
		DBDriver:      getEnv("DB_DRIVER", DriverSQLite),
		DBPath:        getEnv("DB_PATH", "cashflow.db"),
		DBUser:        os.Getenv("DB_USER"),
		DBPassword:    os.Getenv("DB_PASSWORD"),
		DBHost:        getEnv("DB_HOST", "127.0.0.1"),
		DBPort:        getEnv("DB_PORT", "3306"),
		DBName:        os.Getenv("DB_NAME"),
		SessionSecret: os.Getenv("SESSION_SECRET"),
		SessionName:   getEnv("SESSION_NAME", "cashflow_session"),
		SessionMaxAge: getEnvInt("SESSION_MAX_AGE", 86400),
		SessionStore:  getEnv("SESSION_STORE", SessionStoreCookie),
		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisPass:     os.Getenv("REDIS_PASS"),
		RedisDB:       getEnvInt("REDIS_DB", 0),
		TenantUserID:  uint(getEnvInt("TENANT_USER_ID", 1)),
		IsProd:        os.Getenv("IS_PROD") == "true",
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		LogFormat:     getEnv("LOG_FORMAT", "text"),
	}
}

// Validate rejects settings the server cannot start with
func (c *Config) Validate() error {
	switch c.DBDriver {
	case DriverSQLite, DriverMySQL:
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", c.DBDriver)
	}
	switch c.SessionStore {
	case SessionStoreCookie:
	case SessionStoreRedis:
		if c.RedisAddr == "" {
			return errors.New("SESSION_STORE=redis requires REDIS_ADDR")
		}
	default:
		return fmt.Errorf("unsupported SESSION_STORE %q", c.SessionStore)
	}
	if c.TenantUserID == 0 {
		return errors.New("TENANT_USER_ID must be a positive user id")
	}
	if c.IsProd && c.SessionSecret == "" {
		return errors.New("SESSION_SECRET is required in production")
	}
	return nil
}

// DSN builds the data source name for the configured driver
func (c *Config) DSN() string {
	if c.DBDriver == DriverMySQL {
		return c.DBUser + ":" + c.DBPassword + "@tcp(" + c.DBHost + ":" + c.DBPort + ")/" + c.DBName + "?charset=utf8mb4&parseTime=true"
	}
	return c.DBPath + "?_foreign_keys=on&_journal_mode=WAL"
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return fallback // Unset or malformed
	}
	return v
}

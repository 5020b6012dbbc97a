package main

import (
	"context" // context package is needed for Redis operations

	"cashflow_system/internal/api"     // Custom package for HTTP handlers
	"cashflow_system/internal/config"  // Custom package for configuration
	"cashflow_system/internal/db"      // Custom package for database setup
	"cashflow_system/internal/service" // Custom package for business services
	"cashflow_system/internal/session" // Custom package for session stores

	"github.com/gin-contrib/sessions" // Session store interface
	"github.com/gin-gonic/gin"        // Gin web framework
	"github.com/redis/go-redis/v9"    // Redis client
	"github.com/sirupsen/logrus"      // Logrus for structured logging
)

// Main function to set up and run the server
func main() {
	cfg := config.LoadConfig() // Load configuration
	setupLogger(cfg)
	if err := cfg.Validate(); err != nil {
		logrus.Fatalf("invalid configuration: %v", err)
	}

	// Connect, migrate and seed the two default users
	gdb, err := db.Setup(cfg)
	if err != nil {
		logrus.Fatalf("failed to prepare DB: %v", err)
	}

	secret := []byte(cfg.SessionSecret)
	if len(secret) == 0 {
		logrus.Warn("SESSION_SECRET is empty; using an insecure development key")
		secret = []byte("cashflow-development-session-key")
	}
	opts := session.Options{Name: cfg.SessionName, MaxAge: cfg.SessionMaxAge, Secure: cfg.IsProd}

	var store sessions.Store
	switch cfg.SessionStore {
	case config.SessionStoreRedis:
		// Setup Redis client
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr, // Redis server address
			Password: cfg.RedisPass, // Redis password
			DB:       cfg.RedisDB,   // Redis database number
		})
		// Test Redis connection
		if _, err := redisClient.Ping(context.Background()).Result(); err != nil {
			logrus.Fatalf("failed to connect to Redis: %v", err)
		}
		store = session.NewRedisStore(redisClient, opts, secret)
	default:
		store = session.NewCookieStore(secret, opts)
	}

	// Set Mode to Release if in production
	if cfg.IsProd {
		gin.SetMode(gin.ReleaseMode)
	}

	r, err := api.NewRouter(store, opts, api.Services{
		Auth:   service.NewAuthService(gdb),
		Ledger: service.NewLedgerService(gdb, cfg.TenantUserID),
		Roster: service.NewRosterService(gdb, cfg.TenantUserID),
	})
	if err != nil {
		logrus.Fatalf("failed to build router: %v", err)
	}

	// Set trusted proxies for Gin
	if err := r.SetTrustedProxies([]string{"127.0.0.1"}); err != nil {
		logrus.Fatalf("failed to set trusted proxies: %v", err)
	}

	logrus.WithFields(logrus.Fields{
		"port":          cfg.AppPort,
		"tenant_id":     cfg.TenantUserID,
		"session_store": cfg.SessionStore,
	}).Info("Server running")
	if err := r.Run(":" + cfg.AppPort); err != nil { // Start the server on port cfg.AppPort
		logrus.Fatalf("server stopped: %v", err)
	}
}

// setupLogger applies LOG_LEVEL and LOG_FORMAT
func setupLogger(cfg *config.Config) {
	if cfg.LogFormat == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)
}

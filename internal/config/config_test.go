package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	for _, key := range []string{"APP_PORT", "DB_DRIVER", "DB_PATH", "SESSION_STORE", "TENANT_USER_ID", "SESSION_MAX_AGE", "IS_PROD"} {
		t.Setenv(key, "")
	}

	cfg := LoadConfig()

	assert.Equal(t, "8080", cfg.AppPort)
	assert.Equal(t, DriverSQLite, cfg.DBDriver)
	assert.Equal(t, "cashflow.db", cfg.DBPath)
	assert.Equal(t, SessionStoreCookie, cfg.SessionStore)
	assert.Equal(t, uint(1), cfg.TenantUserID)
	assert.Equal(t, 86400, cfg.SessionMaxAge)
	assert.False(t, cfg.IsProd)
	require.NoError(t, cfg.Validate())
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("DB_DRIVER", "mysql")
	t.Setenv("DB_USER", "cash")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("DB_HOST", "db")
	t.Setenv("DB_PORT", "3307")
	t.Setenv("DB_NAME", "cashflow")
	t.Setenv("TENANT_USER_ID", "7")
	t.Setenv("REDIS_DB", "not-a-number")

	cfg := LoadConfig()

	assert.Equal(t, uint(7), cfg.TenantUserID)
	assert.Equal(t, 0, cfg.RedisDB)
	assert.Equal(t, "cash:secret@tcp(db:3307)/cashflow?charset=utf8mb4&parseTime=true", cfg.DSN())
}

func TestValidate(t *testing.T) {
	base := func() *Config {
		return &Config{DBDriver: DriverSQLite, SessionStore: SessionStoreCookie, TenantUserID: 1}
	}

	cfg := base()
	cfg.DBDriver = "postgres"
	assert.Error(t, cfg.Validate())

	cfg = base()
	cfg.SessionStore = SessionStoreRedis
	assert.Error(t, cfg.Validate())
	cfg.RedisAddr = "localhost:6379"
	assert.NoError(t, cfg.Validate())

	cfg = base()
	cfg.TenantUserID = 0
	assert.Error(t, cfg.Validate())

	cfg = base()
	cfg.IsProd = true
	assert.Error(t, cfg.Validate())
	cfg.SessionSecret = "a-long-secret"
	assert.NoError(t, cfg.Validate())
}

func TestSQLiteDSN(t *testing.T) {
	cfg := &Config{DBDriver: DriverSQLite, DBPath: "data/cash.db"}
	assert.Equal(t, "data/cash.db?_foreign_keys=on&_journal_mode=WAL", cfg.DSN())
}

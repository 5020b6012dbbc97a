package db

import (
	"path/filepath"
	"testing"

	"cashflow_system/internal/config"
	"cashflow_system/internal/domain"
	"cashflow_system/internal/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupSeedsUsersOnce(t *testing.T) {
	cfg := &config.Config{DBDriver: config.DriverSQLite, DBPath: filepath.Join(t.TempDir(), "cash.db")}

	db, err := Setup(cfg)
	require.NoError(t, err)

	// A second seed must not duplicate or rewrite anything
	require.NoError(t, SeedUsers(db, DefaultUsers))

	var users []domain.User
	require.NoError(t, db.Order("id").Find(&users).Error)
	require.Len(t, users, 2)

	assert.Equal(t, uint(1), users[0].ID)
	assert.Equal(t, "Cassia Leite", users[0].Username)
	assert.Equal(t, domain.RoleFounder, users[0].Role)
	assert.Equal(t, "João Vitor", users[1].Username)
	assert.Equal(t, domain.RolePartner, users[1].Role)

	assert.NotEqual(t, "03052015", users[0].Password)
	assert.True(t, utils.CheckPassword(users[0].Password, "03052015"))
}

func TestSeedUsersKeepsExistingPassword(t *testing.T) {
	cfg := &config.Config{DBDriver: config.DriverSQLite, DBPath: filepath.Join(t.TempDir(), "cash.db")}
	db, err := Setup(cfg)
	require.NoError(t, err)

	err = SeedUsers(db, []SeedUser{{Username: "Cassia Leite", Password: "other", Role: domain.RoleDefault}})
	require.NoError(t, err)

	var u domain.User
	require.NoError(t, db.Where("username = ?", "Cassia Leite").First(&u).Error)
	assert.True(t, utils.CheckPassword(u.Password, "03052015"))
	assert.Equal(t, domain.RoleFounder, u.Role)
}

func TestOpenRejectsUnknownDriver(t *testing.T) {
	_, err := Open(&config.Config{DBDriver: "oracle"})
	assert.Error(t, err)
}

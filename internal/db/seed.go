package db

import (
	"cashflow_system/internal/domain"
	"cashflow_system/internal/store"
	"cashflow_system/internal/utils"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// SeedUser describes an account created at startup
type SeedUser struct {
	Username string
	Password string
	Role     domain.Role
}

// DefaultUsers are the two accounts allowed to log in. The first one
// inserted on a fresh database gets id 1 and owns the ledger.
var DefaultUsers = []SeedUser{
	{Username: "Cassia Leite", Password: "03052015", Role: domain.RoleFounder},
	{Username: "João Vitor", Password: "03052015", Role: domain.RolePartner},
}

// SeedUsers inserts every user whose username is not present yet. Running it
// again leaves existing rows untouched.
func SeedUsers(db *gorm.DB, users []SeedUser) error {
	for _, u := range users {
		hash, err := utils.HashPassword(u.Password)
		if err != nil {
			return err
		}
		user := &domain.User{Username: u.Username, Password: hash, Role: u.Role}
		created, err := store.CreateUserIfAbsent(db, user)
		if err != nil {
			return err
		}
		if created {
			logrus.WithFields(logrus.Fields{
				"user_id":  user.ID,
				"username": user.Username,
				"role":     user.Role,
			}).Info("User created")
		}
	}
	return nil
}

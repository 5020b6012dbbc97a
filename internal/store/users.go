// Package store holds the gorm queries for users, movements and employees.
// Every function takes the handle to run on, so callers can pass either the
// root *gorm.DB or a transaction opened with db.Transaction.
package store

import (
	"errors" // Error matching

	"cashflow_system/internal/domain" // Importing domain models

	"gorm.io/gorm" // ORM library
)

// FindUserByID returns domain.ErrUserNotFound when no row matches
func FindUserByID(db *gorm.DB, id uint) (*domain.User, error) {
	var user domain.User
	if err := db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

// FindUserByUsername matches the username exactly
func FindUserByUsername(db *gorm.DB, username string) (*domain.User, error) {
	var user domain.User
	if err := db.Where("username = ?", username).Limit(1).Find(&user).Error; err != nil {
		return nil, err
	}
	if user.ID == 0 {
		return nil, domain.ErrUserNotFound
	}
	return &user, nil
}

// CreateUserIfAbsent inserts user unless the username is taken. It reports
// whether a row was written; on false, user is left unchanged.
func CreateUserIfAbsent(db *gorm.DB, user *domain.User) (bool, error) {
	created := false
	err := db.Transaction(func(tx *gorm.DB) error {
		_, err := FindUserByUsername(tx, user.Username)
		if err == nil {
			return nil // Already seeded
		}
		if !errors.Is(err, domain.ErrUserNotFound) {
			return err
		}
		if err := tx.Create(user).Error; err != nil {
			return err
		}
		created = true
		return nil
	})
	return created, err
}

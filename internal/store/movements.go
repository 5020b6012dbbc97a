package store

import (
	"cashflow_system/internal/domain" // Importing domain models

	"gorm.io/gorm" // ORM library
)

// ListMovements returns the owner's movements, most recent first
func ListMovements(db *gorm.DB, ownerID uint) ([]domain.Movement, error) {
	var movements []domain.Movement
	err := db.Where("user_id = ?", ownerID).Order("id desc").Find(&movements).Error
	return movements, err
}

// CreateMovement inserts m and fills in its ID
func CreateMovement(db *gorm.DB, m *domain.Movement) error {
	return db.Create(m).Error
}

// DeleteMovementsByOwner removes every movement of ownerID and returns the count
func DeleteMovementsByOwner(db *gorm.DB, ownerID uint) (int64, error) {
	res := db.Where("user_id = ?", ownerID).Delete(&domain.Movement{})
	return res.RowsAffected, res.Error
}

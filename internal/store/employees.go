package store

import (
	"errors" // Error matching

	"cashflow_system/internal/domain" // Importing domain models

	"gorm.io/gorm" // ORM library
)

// ListEmployees returns the owner's employees ordered by name
func ListEmployees(db *gorm.DB, ownerID uint) ([]domain.Employee, error) {
	var employees []domain.Employee
	err := db.Where("user_id = ?", ownerID).Order("name asc").Order("id asc").Find(&employees).Error
	return employees, err
}

// FindEmployee looks an employee up by id regardless of owner.
// Returns domain.ErrEmployeeNotFound when the id is unknown.
func FindEmployee(db *gorm.DB, id uint) (*domain.Employee, error) {
	var employee domain.Employee
	if err := db.First(&employee, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrEmployeeNotFound
		}
		return nil, err
	}
	return &employee, nil
}

// CreateEmployee inserts e and fills in its ID
func CreateEmployee(db *gorm.DB, e *domain.Employee) error {
	return db.Create(e).Error
}

// DeleteEmployee removes the row with e's primary key
func DeleteEmployee(db *gorm.DB, e *domain.Employee) error {
	res := db.Delete(&domain.Employee{}, e.ID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrEmployeeNotFound
	}
	return nil
}

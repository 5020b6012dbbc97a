package service

import (
	"context" // Request-scoped cancellation

	"cashflow_system/internal/domain" // Importing domain models
	"cashflow_system/internal/store"  // Database queries

	"github.com/shopspring/decimal" // Exact decimal arithmetic
	"github.com/sirupsen/logrus"    // Logging library
	"gorm.io/gorm"                  // ORM library
)

// RosterService manages the tenant's payroll roster
type RosterService struct {
	db       *gorm.DB // Database handle
	tenantID uint     // Owner of every employee
}

// NewRosterService creates a RosterService acting on tenantID's data
func NewRosterService(db *gorm.DB, tenantID uint) *RosterService {
	return &RosterService{db: db, tenantID: tenantID}
}

// List returns the tenant's employees ordered by name
func (s *RosterService) List(ctx context.Context) ([]domain.Employee, error) {
	return store.ListEmployees(s.db.WithContext(ctx), s.tenantID)
}

// Add creates an employee owned by the tenant
func (s *RosterService) Add(ctx context.Context, name, jobTitle string, salary decimal.Decimal) (*domain.Employee, error) {
	e, err := domain.NewEmployee(name, jobTitle, salary, s.tenantID)
	if err != nil {
		return nil, err
	}
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := ensureTenant(tx, s.tenantID); err != nil {
			return err
		}
		return store.CreateEmployee(tx, e)
	})
	if err != nil {
		return nil, err
	}
	logrus.WithFields(logrus.Fields{
		"tenant_id":   s.tenantID,
		"employee_id": e.ID,
		"salary":      e.Salary.StringFixed(2),
	}).Info("Employee added")
	return e, nil
}

// Pay records the employee's salary as an outflow of the tenant. The
// employee row itself is not modified.
//
// An unknown id yields domain.ErrEmployeeNotFound; an employee owned by
// another user yields domain.ErrNotOwned and nothing is written.
func (s *RosterService) Pay(ctx context.Context, employeeID uint) (*domain.Employee, *domain.Movement, error) {
	var (
		employee *domain.Employee
		payment  *domain.Movement
	)
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		e, err := s.ownedEmployee(tx, employeeID)
		if err != nil {
			return err
		}
		m, err := domain.NewMovement(domain.KindOutflow, e.PaymentDescription(), e.Salary, s.tenantID)
		if err != nil {
			return err
		}
		if err := store.CreateMovement(tx, m); err != nil {
			return err
		}
		employee, payment = e, m
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	logrus.WithFields(logrus.Fields{
		"tenant_id":   s.tenantID,
		"employee_id": employee.ID,
		"movement_id": payment.ID,
		"amount":      payment.Amount.StringFixed(2),
	}).Info("Salary paid")
	return employee, payment, nil
}

// Remove deletes the employee after the same checks as Pay
func (s *RosterService) Remove(ctx context.Context, employeeID uint) (*domain.Employee, error) {
	var employee *domain.Employee
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		e, err := s.ownedEmployee(tx, employeeID)
		if err != nil {
			return err
		}
		if err := store.DeleteEmployee(tx, e); err != nil {
			return err
		}
		employee = e
		return nil
	})
	if err != nil {
		return nil, err
	}
	logrus.WithFields(logrus.Fields{
		"tenant_id":   s.tenantID,
		"employee_id": employee.ID,
	}).Info("Employee removed")
	return employee, nil
}

func (s *RosterService) ownedEmployee(tx *gorm.DB, employeeID uint) (*domain.Employee, error) {
	e, err := store.FindEmployee(tx, employeeID)
	if err != nil {
		return nil, err
	}
	if e.UserID != s.tenantID {
		logrus.WithFields(logrus.Fields{
			"tenant_id":   s.tenantID,
			"employee_id": e.ID,
			"owner_id":    e.UserID,
		}).Warn("Employee not owned by tenant")
		return nil, domain.ErrNotOwned
	}
	return e, nil
}

package domain

import (
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

// Field limits for Employee, in characters
const (
	MaxNameLen     = 50
	MaxJobTitleLen = 50
)

// Employee Model
type Employee struct {
	ID       uint            `gorm:"primaryKey"`                  // Primary key
	Name     string          `gorm:"size:50;not null;index"`      // Employee name
	JobTitle string          `gorm:"size:50;not null"`            // Role in the company
	Salary   decimal.Decimal `gorm:"type:decimal(12,2);not null"` // Amount paid per payroll run
	UserID   uint            `gorm:"not null;index"`              // Foreign key to the owning User
}

// NewEmployee validates the fields and builds an employee owned by ownerID
func NewEmployee(name, jobTitle string, salary decimal.Decimal, ownerID uint) (*Employee, error) {
	name = strings.TrimSpace(name)
	jobTitle = strings.TrimSpace(jobTitle)
	if name == "" || utf8.RuneCountInString(name) > MaxNameLen {
		return nil, ErrInvalidName
	}
	if utf8.RuneCountInString(jobTitle) > MaxJobTitleLen {
		return nil, ErrInvalidJobTitle
	}
	if salary.IsNegative() {
		return nil, ErrInvalidAmount
	}
	return &Employee{Name: name, JobTitle: jobTitle, Salary: salary, UserID: ownerID}, nil
}

// PaymentDescription is the ledger text recorded when the employee is paid
func (e *Employee) PaymentDescription() string {
	return "Pagamento de salário para " + e.Name
}

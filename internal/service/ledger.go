package service

import (
	"context" // Request-scoped cancellation
	"errors"  // Error matching
	"fmt"     // Error wrapping

	"cashflow_system/internal/domain" // Importing domain models
	"cashflow_system/internal/store"  // Database queries

	"github.com/shopspring/decimal" // Exact decimal arithmetic
	"github.com/sirupsen/logrus"    // Logging library
	"gorm.io/gorm"                  // ORM library
)

// LedgerService reads and writes the tenant's cash movements
type LedgerService struct {
	db       *gorm.DB // Database handle
	tenantID uint     // Owner of every movement
}

// NewLedgerService creates a LedgerService acting on tenantID's data
func NewLedgerService(db *gorm.DB, tenantID uint) *LedgerService {
	return &LedgerService{db: db, tenantID: tenantID}
}

// TenantID is the user that owns the ledger
func (s *LedgerService) TenantID() uint {
	return s.tenantID
}

// Summary lists the tenant's movements and recomputes the totals
func (s *LedgerService) Summary(ctx context.Context) (domain.Summary, error) {
	movements, err := store.ListMovements(s.db.WithContext(ctx), s.tenantID)
	if err != nil {
		return domain.Summary{}, err
	}
	return domain.Summarize(movements), nil
}

// Record stores a new movement for the tenant. Invalid input is returned
// as a validation error before anything is written.
func (s *LedgerService) Record(ctx context.Context, kind domain.Kind, description string, amount decimal.Decimal) (*domain.Movement, error) {
	m, err := domain.NewMovement(kind, description, amount, s.tenantID)
	if err != nil {
		return nil, err
	}
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := ensureTenant(tx, s.tenantID); err != nil {
			return err
		}
		return store.CreateMovement(tx, m)
	})
	if err != nil {
		return nil, err
	}
	logrus.WithFields(logrus.Fields{
		"tenant_id":   s.tenantID,
		"movement_id": m.ID,
		"kind":        m.Kind,
		"amount":      m.Amount.StringFixed(2),
	}).Info("Movement recorded")
	return m, nil
}

// ClearHistory deletes every movement of the tenant in one transaction
func (s *LedgerService) ClearHistory(ctx context.Context) (int64, error) {
	var deleted int64
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		n, err := store.DeleteMovementsByOwner(tx, s.tenantID)
		if err != nil {
			return err
		}
		deleted = n
		return nil
	})
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"tenant_id": s.tenantID,
			"error":     err.Error(),
		}).Error("Clear history failed")
		return 0, err
	}
	logrus.WithFields(logrus.Fields{
		"tenant_id": s.tenantID,
		"deleted":   deleted,
	}).Info("History cleared")
	return deleted, nil
}

// ensureTenant fails with domain.ErrTenantMissing when the owner row is gone
func ensureTenant(tx *gorm.DB, tenantID uint) error {
	if _, err := store.FindUserByID(tx, tenantID); err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return fmt.Errorf("%w: id %d", domain.ErrTenantMissing, tenantID)
		}
		return err
	}
	return nil
}

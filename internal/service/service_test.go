package service

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"cashflow_system/internal/config"
	"cashflow_system/internal/db"
	"cashflow_system/internal/domain"
	"cashflow_system/internal/store"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

const tenant uint = 1

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	cfg := &config.Config{DBDriver: config.DriverSQLite, DBPath: filepath.Join(t.TempDir(), "service.db")}
	gdb, err := db.Setup(cfg)
	require.NoError(t, err)
	return gdb
}

func amount(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func countMovements(t *testing.T, gdb *gorm.DB, owner uint) int64 {
	t.Helper()
	var n int64
	require.NoError(t, gdb.Model(&domain.Movement{}).Where("user_id = ?", owner).Count(&n).Error)
	return n
}

func TestAuthenticate(t *testing.T) {
	auth := NewAuthService(setupDB(t))
	ctx := context.Background()

	u, err := auth.Authenticate(ctx, "Cassia Leite", "03052015")
	require.NoError(t, err)
	assert.Equal(t, uint(1), u.ID)

	_, err = auth.Authenticate(ctx, "Cassia Leite", "wrong")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	_, err = auth.Authenticate(ctx, "Nobody", "03052015")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	byID, err := auth.UserByID(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, "João Vitor", byID.Username)

	_, err = auth.UserByID(ctx, 3)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestBalanceFollowsRecordedMovements(t *testing.T) {
	ledger := NewLedgerService(setupDB(t), tenant)
	ctx := context.Background()

	steps := []struct {
		kind   domain.Kind
		amount string
	}{
		{domain.KindInflow, "100.00"},
		{domain.KindOutflow, "30.25"},
		{domain.KindInflow, "0.10"},
		{domain.KindInflow, "0.20"},
		{domain.KindOutflow, "80.00"},
	}
	inflow, outflow := decimal.Zero, decimal.Zero
	for _, st := range steps {
		_, err := ledger.Record(ctx, st.kind, "step", amount(st.amount))
		require.NoError(t, err)
		if st.kind == domain.KindInflow {
			inflow = inflow.Add(amount(st.amount))
		} else {
			outflow = outflow.Add(amount(st.amount))
		}

		sum, err := ledger.Summary(ctx)
		require.NoError(t, err)
		assert.True(t, sum.Inflow.Equal(inflow))
		assert.True(t, sum.Outflow.Equal(outflow))
		assert.True(t, sum.Balance.Equal(inflow.Sub(outflow)), "balance %s", sum.Balance)
	}

	sum, err := ledger.Summary(ctx)
	require.NoError(t, err)
	assert.Equal(t, "-9.95", sum.Balance.StringFixed(2))
	require.Len(t, sum.Movements, len(steps))
	assert.Greater(t, sum.Movements[0].ID, sum.Movements[len(steps)-1].ID)
}

func TestRecordRejectsInvalidInput(t *testing.T) {
	gdb := setupDB(t)
	ledger := NewLedgerService(gdb, tenant)
	ctx := context.Background()

	_, err := ledger.Record(ctx, domain.KindInflow, "", amount("1"))
	assert.ErrorIs(t, err, domain.ErrInvalidDescription)
	_, err = ledger.Record(ctx, domain.KindInflow, "Sale", amount("-1"))
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)
	assert.Zero(t, countMovements(t, gdb, tenant))
}

func TestRecordWithMissingTenant(t *testing.T) {
	gdb := setupDB(t)
	ledger := NewLedgerService(gdb, 42)

	_, err := ledger.Record(context.Background(), domain.KindInflow, "Sale", amount("10"))
	assert.ErrorIs(t, err, domain.ErrTenantMissing)

	var n int64
	require.NoError(t, gdb.Model(&domain.Movement{}).Count(&n).Error)
	assert.Zero(t, n)

	roster := NewRosterService(gdb, 42)
	_, err = roster.Add(context.Background(), "Ana", "Clerk", amount("1"))
	assert.ErrorIs(t, err, domain.ErrTenantMissing)
}

func TestClearHistoryOnlyTouchesTenant(t *testing.T) {
	gdb := setupDB(t)
	ctx := context.Background()
	ledger := NewLedgerService(gdb, tenant)

	for i := 0; i < 3; i++ {
		_, err := ledger.Record(ctx, domain.KindInflow, "Sale", amount("5"))
		require.NoError(t, err)
	}
	foreign, err := domain.NewMovement(domain.KindInflow, "Other books", amount("7"), 2)
	require.NoError(t, err)
	require.NoError(t, store.CreateMovement(gdb, foreign))

	deleted, err := ledger.ClearHistory(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), deleted)
	assert.Zero(t, countMovements(t, gdb, tenant))
	assert.Equal(t, int64(1), countMovements(t, gdb, 2))

	sum, err := ledger.Summary(ctx)
	require.NoError(t, err)
	assert.True(t, sum.Balance.IsZero())
}

func TestClearHistoryRollsBackOnFailure(t *testing.T) {
	gdb := setupDB(t)
	ctx := context.Background()
	ledger := NewLedgerService(gdb, tenant)

	for i := 0; i < 2; i++ {
		_, err := ledger.Record(ctx, domain.KindOutflow, "Rent", amount("5"))
		require.NoError(t, err)
	}

	// Fail after the DELETE statement ran so the transaction must undo it
	boom := errors.New("disk on fire")
	require.NoError(t, gdb.Callback().Delete().After("gorm:delete").Register("test:fail_delete", func(tx *gorm.DB) {
		_ = tx.AddError(boom)
	}))

	_, err := ledger.ClearHistory(ctx)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, int64(2), countMovements(t, gdb, tenant))
}

func TestPayEmployee(t *testing.T) {
	gdb := setupDB(t)
	ctx := context.Background()
	ledger := NewLedgerService(gdb, tenant)
	roster := NewRosterService(gdb, tenant)

	_, err := ledger.Record(ctx, domain.KindInflow, "Sale", amount("100.00"))
	require.NoError(t, err)
	ana, err := roster.Add(ctx, "Ana", "Clerk", amount("40.00"))
	require.NoError(t, err)

	paid, payment, err := roster.Pay(ctx, ana.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ana", paid.Name)
	assert.Equal(t, domain.KindOutflow, payment.Kind)
	assert.Equal(t, "Pagamento de salário para Ana", payment.Description)
	assert.Equal(t, "40.00", payment.Amount.StringFixed(2))
	assert.Equal(t, tenant, payment.UserID)

	sum, err := ledger.Summary(ctx)
	require.NoError(t, err)
	assert.Equal(t, "60.00", sum.Balance.StringFixed(2))
	assert.Len(t, sum.Movements, 2)

	// The roster entry is untouched
	after, err := store.FindEmployee(gdb, ana.ID)
	require.NoError(t, err)
	assert.Equal(t, ana.Name, after.Name)
	assert.Equal(t, ana.JobTitle, after.JobTitle)
	assert.True(t, after.Salary.Equal(ana.Salary))
}

func TestPayAndRemoveErrors(t *testing.T) {
	gdb := setupDB(t)
	ctx := context.Background()
	roster := NewRosterService(gdb, tenant)

	_, _, err := roster.Pay(ctx, 999)
	assert.ErrorIs(t, err, domain.ErrEmployeeNotFound)
	_, err = roster.Remove(ctx, 999)
	assert.ErrorIs(t, err, domain.ErrEmployeeNotFound)

	foreign, err := domain.NewEmployee("Zé", "Driver", amount("25"), 2)
	require.NoError(t, err)
	require.NoError(t, store.CreateEmployee(gdb, foreign))

	_, _, err = roster.Pay(ctx, foreign.ID)
	assert.ErrorIs(t, err, domain.ErrNotOwned)
	assert.Zero(t, countMovements(t, gdb, tenant))
	assert.Zero(t, countMovements(t, gdb, 2))

	_, err = roster.Remove(ctx, foreign.ID)
	assert.ErrorIs(t, err, domain.ErrNotOwned)
	still, err := store.FindEmployee(gdb, foreign.ID)
	require.NoError(t, err)
	assert.Equal(t, "Zé", still.Name)
}

func TestRemoveEmployee(t *testing.T) {
	gdb := setupDB(t)
	ctx := context.Background()
	roster := NewRosterService(gdb, tenant)

	bruno, err := roster.Add(ctx, "Bruno", "Cook", amount("30"))
	require.NoError(t, err)
	_, err = roster.Add(ctx, "Ana", "Clerk", amount("40"))
	require.NoError(t, err)

	list, err := roster.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Ana", list[0].Name)

	removed, err := roster.Remove(ctx, bruno.ID)
	require.NoError(t, err)
	assert.Equal(t, "Bruno", removed.Name)

	list, err = roster.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Ana", list[0].Name)
}

package api

import (
	"errors"   // Error matching
	"fmt"      // Message formatting
	"net/http" // HTTP status codes

	"cashflow_system/internal/domain"     // Importing domain models
	"cashflow_system/internal/middleware" // Current user lookup
	"cashflow_system/internal/service"    // Ledger operations
	"cashflow_system/internal/session"    // Flash categories

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
)

const dashboardPath = "/dashboard"

// MovementForm is the body of POST /dashboard
type MovementForm struct {
	Kind        string `form:"tipo" binding:"required"`      // entrada or saida
	Description string `form:"descricao" binding:"required"` // Up to 100 characters
	Amount      string `form:"valor" binding:"required"`     // Decimal, dot or comma
}

// DashboardHandler lists the tenant's movements with the recomputed balance
func DashboardHandler(ledger *service.LedgerService) gin.HandlerFunc {
	return func(c *gin.Context) {
		summary, err := ledger.Summary(c.Request.Context())
		if err != nil {
			logrus.WithField("error", err.Error()).Error("Failed to load movements")
			_ = c.AbortWithError(http.StatusInternalServerError, err)
			return
		}
		render(c, "dashboard.html", "Caixa", gin.H{
			"Welcome":   middleware.CurrentUser(c).Welcome(),
			"Movements": summary.Movements,
			"Inflow":    domain.FormatAmount(summary.Inflow),
			"Outflow":   domain.FormatAmount(summary.Outflow),
			"Balance":   domain.FormatAmount(summary.Balance),
		})
	}
}

// RecordMovementHandler stores a manual inflow or outflow
func RecordMovementHandler(ledger *service.LedgerService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var form MovementForm
		if err := c.ShouldBind(&form); err != nil {
			badRequest(c, err)
			return
		}
		kind, err := domain.ParseKind(form.Kind)
		if err != nil {
			badRequest(c, err)
			return
		}
		amount, err := domain.ParseAmount(form.Amount)
		if err != nil {
			badRequest(c, err)
			return
		}

		m, err := ledger.Record(c.Request.Context(), kind, form.Description, amount)
		switch {
		case err == nil:
		case domain.IsValidation(err):
			badRequest(c, err)
			return
		case errors.Is(err, domain.ErrTenantMissing):
			logrus.WithField("tenant_id", ledger.TenantID()).Error("Tenant user missing")
			redirectWithFlash(c, dashboardPath, session.Danger, "Usuário de gestão não encontrado. Erro interno.")
			return
		default:
			logrus.WithFields(logrus.Fields{
				"user_id": currentUserID(c),
				"error":   err.Error(),
			}).Error("Failed to record movement")
			redirectWithFlash(c, dashboardPath, session.Danger, fmt.Sprintf("Ocorreu um erro ao registrar a movimentação: %v", err))
			return
		}

		logrus.WithFields(logrus.Fields{
			"user_id":     currentUserID(c),
			"movement_id": m.ID,
			"amount":      formatAmount(m),
		}).Debug("Movement form accepted")
		redirectWithFlash(c, dashboardPath, session.Success, "Movimentação registrada com sucesso.")
	}
}

// ClearHistoryHandler deletes every movement of the tenant
func ClearHistoryHandler(ledger *service.LedgerService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, err := ledger.ClearHistory(c.Request.Context()); err != nil {
			redirectWithFlash(c, dashboardPath, session.Danger, fmt.Sprintf("Ocorreu um erro ao apagar o histórico: %v", err))
			return
		}
		redirectWithFlash(c, dashboardPath, session.Success, "Histórico de movimentações apagado com sucesso.")
	}
}

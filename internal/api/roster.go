package api

import (
	"errors"   // Error matching
	"fmt"      // Message formatting
	"net/http" // HTTP status codes

	"cashflow_system/internal/domain"  // Importing domain models
	"cashflow_system/internal/service" // Roster operations
	"cashflow_system/internal/session" // Flash categories

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
)

const payrollPath = "/folha_pagamentos"

// EmployeeForm is the body of POST /folha_pagamentos
type EmployeeForm struct {
	Name     string `form:"nome" binding:"required"`    // Up to 50 characters
	JobTitle string `form:"funcao"`                     // Up to 50 characters
	Salary   string `form:"salario" binding:"required"` // Decimal, dot or comma
}

// PayrollHandler lists the tenant's employees
func PayrollHandler(roster *service.RosterService) gin.HandlerFunc {
	return func(c *gin.Context) {
		employees, err := roster.List(c.Request.Context())
		if err != nil {
			logrus.WithField("error", err.Error()).Error("Failed to load employees")
			_ = c.AbortWithError(http.StatusInternalServerError, err)
			return
		}
		render(c, "payroll.html", "Folha de pagamentos", gin.H{"Employees": employees})
	}
}

// AddEmployeeHandler adds an employee to the roster
func AddEmployeeHandler(roster *service.RosterService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var form EmployeeForm
		if err := c.ShouldBind(&form); err != nil {
			badRequest(c, err)
			return
		}
		salary, err := domain.ParseAmount(form.Salary)
		if err != nil {
			badRequest(c, err)
			return
		}

		e, err := roster.Add(c.Request.Context(), form.Name, form.JobTitle, salary)
		if err != nil {
			handleRosterError(c, err)
			return
		}
		redirectWithFlash(c, payrollPath, session.Success, fmt.Sprintf("Funcionário %s adicionado à folha de pagamentos.", e.Name))
	}
}

// PayEmployeeHandler records the employee's salary as an outflow
func PayEmployeeHandler(roster *service.RosterService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := employeeID(c)
		if !ok {
			return
		}
		e, payment, err := roster.Pay(c.Request.Context(), id)
		if err != nil {
			handleRosterError(c, err)
			return
		}
		redirectWithFlash(c, payrollPath, session.Info,
			fmt.Sprintf("Salário de R$ %s de %s foi lançado como saída.", formatAmount(payment), e.Name))
	}
}

// RemoveEmployeeHandler deletes an employee from the roster
func RemoveEmployeeHandler(roster *service.RosterService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := employeeID(c)
		if !ok {
			return
		}
		e, err := roster.Remove(c.Request.Context(), id)
		if err != nil {
			handleRosterError(c, err)
			return
		}
		redirectWithFlash(c, payrollPath, session.Success, fmt.Sprintf("Funcionário %s foi removido com sucesso.", e.Name))
	}
}

// handleRosterError maps service errors to the response kinds of the roster pages
func handleRosterError(c *gin.Context, err error) {
	switch {
	case domain.IsValidation(err):
		badRequest(c, err)
	case errors.Is(err, domain.ErrEmployeeNotFound):
		c.AbortWithStatus(http.StatusNotFound)
	case errors.Is(err, domain.ErrNotOwned):
		redirectWithFlash(c, payrollPath, session.Warning, "Você não tem permissão para realizar esta ação.")
	case errors.Is(err, domain.ErrTenantMissing):
		redirectWithFlash(c, payrollPath, session.Danger, "Usuário de gestão não encontrado. Erro interno.")
	default:
		logrus.WithFields(logrus.Fields{
			"user_id": currentUserID(c),
			"error":   err.Error(),
		}).Error("Roster operation failed")
		redirectWithFlash(c, payrollPath, session.Danger, fmt.Sprintf("Ocorreu um erro: %v", err))
	}
}

package api

import (
	"html/template" // Embedded page templates
	"net/http"      // HTTP status codes

	"cashflow_system/internal/middleware" // Auth and logging middleware
	"cashflow_system/internal/service"    // Business services
	"cashflow_system/internal/session"    // Session middleware
	"cashflow_system/web"                 // Embedded templates

	"github.com/gin-contrib/gzip"     // Response compression
	"github.com/gin-contrib/sessions" // Session store interface
	"github.com/gin-gonic/gin"        // Gin web framework
)

// Services groups what the handlers depend on
type Services struct {
	Auth   *service.AuthService
	Ledger *service.LedgerService
	Roster *service.RosterService
}

// NewRouter builds the gin engine with every route of the application
func NewRouter(store sessions.Store, opts session.Options, svc Services) (*gin.Engine, error) {
	tpl, err := template.ParseFS(web.TemplatesFS, "templates/*.html")
	if err != nil {
		return nil, err
	}

	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger())
	r.Use(gzip.Gzip(gzip.DefaultCompression))
	r.Use(session.Middleware(store, opts))
	r.SetHTMLTemplate(tpl)

	// Public routes
	r.GET("/", HomeHandler())
	r.GET("/login", LoginPageHandler())
	r.POST("/login", LoginHandler(svc.Auth))

	// Everything else needs a logged-in session
	protected := r.Group("/")
	protected.Use(middleware.RequireLogin(svc.Auth))
	protected.GET("/logout", LogoutHandler())
	protected.GET("/dashboard", DashboardHandler(svc.Ledger))
	protected.POST("/dashboard", RecordMovementHandler(svc.Ledger))
	protected.POST("/dashboard/apagar_historico", ClearHistoryHandler(svc.Ledger))
	protected.GET("/folha_pagamentos", PayrollHandler(svc.Roster))
	protected.POST("/folha_pagamentos", AddEmployeeHandler(svc.Roster))
	protected.POST("/funcionario/pagar/:id", PayEmployeeHandler(svc.Roster))
	protected.POST("/funcionario/excluir/:id", RemoveEmployeeHandler(svc.Roster))

	r.NoRoute(func(c *gin.Context) {
		c.AbortWithStatus(http.StatusNotFound)
	})
	return r, nil
}

package api

import (
	"net/http" // HTTP status codes
	"strconv"  // Path id parsing

	"cashflow_system/internal/domain"     // Importing domain models
	"cashflow_system/internal/middleware" // Current user lookup
	"cashflow_system/internal/session"    // Flash messages

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
)

// render executes an embedded template with the queued flashes and the
// current user merged into data
func render(c *gin.Context, name, title string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	data["Title"] = title
	data["Flashes"] = session.Flashes(c)
	data["LoggedIn"] = session.IsLogin(c) // Public pages run without RequireLogin
	if user := middleware.CurrentUser(c); user != nil {
		data["User"] = user
	}
	c.HTML(http.StatusOK, name, data)
}

// redirectWithFlash queues a notification and sends the client to location
func redirectWithFlash(c *gin.Context, location, category, message string) {
	if err := session.AddFlash(c, category, message); err != nil {
		logrus.WithField("error", err.Error()).Warn("Unable to save flash")
	}
	c.Redirect(http.StatusSeeOther, location)
}

// badRequest ends the request on rejected input without touching the store
func badRequest(c *gin.Context, err error) {
	c.String(http.StatusBadRequest, "Dados inválidos: %v", err)
	c.Abort()
}

// employeeID parses the :id path segment; anything else is a 404
func employeeID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		c.AbortWithStatus(http.StatusNotFound)
		return 0, false
	}
	return uint(id), true
}

// currentUserID is used for log fields only; data always belongs to the tenant
func currentUserID(c *gin.Context) uint {
	if user := middleware.CurrentUser(c); user != nil {
		return user.ID
	}
	return 0
}

func formatAmount(m *domain.Movement) string {
	return domain.FormatAmount(m.Amount)
}

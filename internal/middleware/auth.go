package middleware

import (
	"errors"   // Error matching
	"net/http" // HTTP status codes

	"cashflow_system/internal/domain"  // Importing domain models
	"cashflow_system/internal/service" // User lookup
	"cashflow_system/internal/session" // Session helpers

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
)

// CurrentUserKey is the gin context key holding the authenticated *domain.User
const CurrentUserKey = "currentUser"

// LoginPath is where anonymous requests are sent
const LoginPath = "/login"

// RequireLogin resolves the session binding to a user on each request.
// Anonymous sessions, and sessions pointing at a user that no longer
// exists, are redirected to the login page with an info flash.
func RequireLogin(auth *service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := session.GetLoginUserID(c) // Get userID from the session
		if !ok {
			redirectToLogin(c)
			return
		}
		user, err := auth.UserByID(c.Request.Context(), userID)
		if err != nil {
			if !errors.Is(err, domain.ErrUserNotFound) {
				logrus.WithFields(logrus.Fields{
					"user_id": userID,
					"error":   err.Error(),
				}).Error("Failed to resolve session user")
				c.AbortWithStatus(http.StatusInternalServerError)
				return
			}
			// Bound user is gone; drop the binding and treat as anonymous
			_ = session.ClearLogin(c)
			redirectToLogin(c)
			return
		}
		c.Set(CurrentUserKey, user) // Store user in context
		c.Next()                    // Proceed to the next handler
	}
}

// CurrentUser returns the user set by RequireLogin
func CurrentUser(c *gin.Context) *domain.User {
	if v, ok := c.Get(CurrentUserKey); ok {
		if user, ok := v.(*domain.User); ok {
			return user
		}
	}
	return nil
}

func redirectToLogin(c *gin.Context) {
	_ = session.AddFlash(c, session.Info, "Por favor, faça login para acessar esta página.")
	c.Redirect(http.StatusFound, LoginPath)
	c.Abort()
}

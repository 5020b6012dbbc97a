package api

import (
	"errors"   // Error matching
	"net/http" // HTTP status codes

	"cashflow_system/internal/domain"     // Importing domain models
	"cashflow_system/internal/middleware" // Current user lookup
	"cashflow_system/internal/service"    // Authentication
	"cashflow_system/internal/session"    // Session binding

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
)

// LoginForm is the body of POST /login
type LoginForm struct {
	Username string `form:"username"` // Exact username
	Password string `form:"password"` // Plain password, compared to the stored hash
}

// HomeHandler renders the public landing page
func HomeHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		render(c, "home.html", "Início", nil)
	}
}

// LoginPageHandler renders the login form
func LoginPageHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		render(c, "login.html", "Login", nil)
	}
}

// LoginHandler authenticates the form credentials and binds the session
func LoginHandler(auth *service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var form LoginForm
		_ = c.ShouldBind(&form) // Missing fields simply fail authentication

		user, err := auth.Authenticate(c.Request.Context(), form.Username, form.Password)
		if err != nil {
			if !errors.Is(err, domain.ErrInvalidCredentials) {
				logrus.WithField("error", err.Error()).Error("Login lookup failed")
			}
			logrus.WithFields(logrus.Fields{
				"username":  form.Username,
				"client_ip": c.ClientIP(),
			}).Warn("Failed login")
			redirectWithFlash(c, middleware.LoginPath, session.Danger,
				"Credenciais inválidas. Por favor, verifique seu nome de usuário e senha.")
			return
		}

		if err := session.SetLoginUser(c, user.ID); err != nil {
			logrus.WithField("error", err.Error()).Error("Unable to save session")
			c.AbortWithStatus(http.StatusInternalServerError)
			return
		}
		logrus.WithFields(logrus.Fields{
			"user_id":   user.ID,
			"client_ip": c.ClientIP(),
		}).Info("User logged in")
		redirectWithFlash(c, "/dashboard", session.Success, "Login efetuado com sucesso!")
	}
}

// LogoutHandler clears the session binding
func LogoutHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := currentUserID(c)
		if err := session.ClearLogin(c); err != nil {
			logrus.WithField("error", err.Error()).Warn("Unable to clear session")
		}
		logrus.WithField("user_id", userID).Info("User logged out")
		_ = session.AddFlash(c, session.Success, "Você foi desconectado com sucesso.")
		c.Redirect(http.StatusFound, "/")
	}
}

// Package session binds a logged-in user id to the client's cookie session
// and carries flash notifications across redirects.
package session

import (
	"encoding/gob" // Flash values are gob-encoded in the session

	"github.com/gin-contrib/sessions"        // Gin session middleware
	"github.com/gin-contrib/sessions/cookie" // Signed cookie store
	"github.com/gin-gonic/gin"               // Gin web framework
)

const loginUserID = "LOGIN_USER_ID"

// Flash categories, matching the CSS classes used by the templates
const (
	Success = "success"
	Info    = "info"
	Warning = "warning"
	Danger  = "danger"
)

// Flash is a categorized message shown on the next rendered page
type Flash struct {
	Category string // success, info, warning or danger
	Message  string // Text shown to the user
}

func init() {
	gob.Register(Flash{})
}

// Options controls the session cookie
type Options struct {
	Name   string // Cookie name
	MaxAge int    // Lifetime in seconds
	Secure bool   // HTTPS-only cookie
}

// NewCookieStore keeps the whole session in a signed cookie
func NewCookieStore(secret []byte, opts Options) sessions.Store {
	store := cookie.NewStore(secret)
	store.Options(cookieOptions(opts))
	return store
}

// Middleware installs the store under opts.Name
func Middleware(store sessions.Store, opts Options) gin.HandlerFunc {
	return sessions.Sessions(opts.Name, store)
}

func cookieOptions(opts Options) sessions.Options {
	return sessions.Options{
		Path:     "/",
		MaxAge:   opts.MaxAge,
		Secure:   opts.Secure,
		HttpOnly: true,
	}
}

// SetLoginUser binds the session to userID
func SetLoginUser(c *gin.Context, userID uint) error {
	s := sessions.Default(c)
	s.Set(loginUserID, userID)
	return s.Save()
}

// GetLoginUserID returns the bound user id, or false when anonymous
func GetLoginUserID(c *gin.Context) (uint, bool) {
	s := sessions.Default(c)
	if id, ok := s.Get(loginUserID).(uint); ok && id != 0 {
		return id, true
	}
	return 0, false
}

// IsLogin reports whether the session is bound to a user
func IsLogin(c *gin.Context) bool {
	_, ok := GetLoginUserID(c)
	return ok
}

// ClearLogin drops the user binding but keeps pending flashes
func ClearLogin(c *gin.Context) error {
	s := sessions.Default(c)
	s.Delete(loginUserID)
	return s.Save()
}

// AddFlash queues a message for the next rendered page
func AddFlash(c *gin.Context, category, message string) error {
	s := sessions.Default(c)
	s.AddFlash(Flash{Category: category, Message: message})
	return s.Save()
}

// Flashes pops every queued message
func Flashes(c *gin.Context) []Flash {
	s := sessions.Default(c)
	raw := s.Flashes()
	if len(raw) == 0 {
		return nil
	}
	flashes := make([]Flash, 0, len(raw))
	for _, f := range raw {
		if flash, ok := f.(Flash); ok {
			flashes = append(flashes, flash)
		}
	}
	_ = s.Save()
	return flashes
}

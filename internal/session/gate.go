// Package session implements the single-credential admin gate. Login state
// lives in a signed cookie session per client; the server holds only the
// signing key, never a session table.
package session

import (
	"crypto/subtle"
	"fmt"
	"net/http"

	"github.com/gorilla/sessions"
	echosession "github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
)

const (
	sessionName = "blog_session"
	loggedInKey = "logged_in"

	loginPath = "/admin"
)

// NewStore builds the cookie store backing all sessions.
func NewStore(secret string) *sessions.CookieStore {
	store := sessions.NewCookieStore([]byte(secret))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   7 * 86400,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	return store
}

// Middleware attaches the cookie store to every request.
func Middleware(store sessions.Store) echo.MiddlewareFunc {
	return echosession.Middleware(store)
}

// Gate checks the shared admin password and tracks login state.
type Gate struct {
	adminPassword []byte
}

func NewGate(adminPassword string) *Gate {
	return &Gate{
		adminPassword: []byte(adminPassword),
	}
}

// Login compares password against the configured admin password in constant
// time. On a match the session flag is set; on a mismatch nothing changes and
// false is returned without detail.
func (g *Gate) Login(c echo.Context, password string) (bool, error) {
	if subtle.ConstantTimeCompare([]byte(password), g.adminPassword) != 1 {
		return false, nil
	}

	sess, err := echosession.Get(sessionName, c)
	if err != nil {
		return false, fmt.Errorf("get session: %w", err)
	}

	sess.Values[loggedInKey] = true
	if err := sess.Save(c.Request(), c.Response()); err != nil {
		return false, fmt.Errorf("save session: %w", err)
	}

	return true, nil
}

// IsLoggedIn reports whether the client's session carries the login flag.
func (g *Gate) IsLoggedIn(c echo.Context) bool {
	sess, err := echosession.Get(sessionName, c)
	if err != nil {
		return false
	}

	loggedIn, ok := sess.Values[loggedInKey].(bool)
	return ok && loggedIn
}

// Logout clears the login flag.
func (g *Gate) Logout(c echo.Context) error {
	sess, err := echosession.Get(sessionName, c)
	if err != nil {
		return fmt.Errorf("get session: %w", err)
	}

	delete(sess.Values, loggedInKey)
	if err := sess.Save(c.Request(), c.Response()); err != nil {
		return fmt.Errorf("save session: %w", err)
	}

	return nil
}

// RequireAuth guards admin routes: without a logged-in session the request is
// redirected to the login page and the handler never runs.
func (g *Gate) RequireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !g.IsLoggedIn(c) {
			return c.Redirect(http.StatusSeeOther, loginPath)
		}
		return next(c)
	}
}

// Flash queues a one-time user-visible message on the session.
func Flash(c echo.Context, message string) error {
	sess, err := echosession.Get(sessionName, c)
	if err != nil {
		return fmt.Errorf("get session: %w", err)
	}

	sess.AddFlash(message)
	if err := sess.Save(c.Request(), c.Response()); err != nil {
		return fmt.Errorf("save session: %w", err)
	}

	return nil
}

// Flashes drains the queued flash messages. Must be called before the
// response body is written, since draining rewrites the session cookie.
func Flashes(c echo.Context) []string {
	sess, err := echosession.Get(sessionName, c)
	if err != nil {
		return nil
	}

	raw := sess.Flashes()
	if len(raw) == 0 {
		return nil
	}

	_ = sess.Save(c.Request(), c.Response())

	messages := make([]string, 0, len(raw))
	for _, f := range raw {
		if s, ok := f.(string); ok {
			messages = append(messages, s)
		}
	}
	return messages
}

package session

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEcho(gate *Gate) *echo.Echo {
	e := echo.New()
	e.Use(Middleware(NewStore("test-secret")))

	e.POST("/login", func(c echo.Context) error {
		ok, err := gate.Login(c, c.FormValue("password"))
		if err != nil {
			return err
		}
		return c.String(http.StatusOK, strconv.FormatBool(ok))
	})
	e.GET("/check", func(c echo.Context) error {
		return c.String(http.StatusOK, strconv.FormatBool(gate.IsLoggedIn(c)))
	})
	e.GET("/logout", func(c echo.Context) error {
		if err := gate.Logout(c); err != nil {
			return err
		}
		return c.String(http.StatusOK, "out")
	})
	e.GET("/protected", gate.RequireAuth(func(c echo.Context) error {
		return c.String(http.StatusOK, "secret")
	}))
	e.GET("/flash", func(c echo.Context) error {
		if err := Flash(c, "hello"); err != nil {
			return err
		}
		return c.String(http.StatusOK, "queued")
	})
	e.GET("/flashes", func(c echo.Context) error {
		return c.String(http.StatusOK, strings.Join(Flashes(c), "|"))
	})

	return e
}

// do performs a request, carrying cookies accumulated in jar across calls.
func do(t *testing.T, e *echo.Echo, jar map[string]*http.Cookie, method, path string, form url.Values) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if form != nil {
		req = httptest.NewRequest(method, path, strings.NewReader(form.Encode()))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	for _, c := range jar {
		req.AddCookie(c)
	}

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	for _, c := range rec.Result().Cookies() {
		jar[c.Name] = c
	}
	return rec
}

func TestGate_Login(t *testing.T) {
	t.Run("correct password sets the session flag", func(t *testing.T) {
		e := newTestEcho(NewGate("hunter2"))
		jar := map[string]*http.Cookie{}

		rec := do(t, e, jar, http.MethodPost, "/login", url.Values{"password": {"hunter2"}})
		assert.Equal(t, "true", rec.Body.String())

		rec = do(t, e, jar, http.MethodGet, "/check", nil)
		assert.Equal(t, "true", rec.Body.String())
	})

	t.Run("wrong password leaves the flag unset", func(t *testing.T) {
		e := newTestEcho(NewGate("hunter2"))
		jar := map[string]*http.Cookie{}

		rec := do(t, e, jar, http.MethodPost, "/login", url.Values{"password": {"hunter3"}})
		assert.Equal(t, "false", rec.Body.String())

		rec = do(t, e, jar, http.MethodGet, "/check", nil)
		assert.Equal(t, "false", rec.Body.String())
	})

	t.Run("empty password fails", func(t *testing.T) {
		e := newTestEcho(NewGate("hunter2"))
		jar := map[string]*http.Cookie{}

		rec := do(t, e, jar, http.MethodPost, "/login", url.Values{})
		assert.Equal(t, "false", rec.Body.String())
	})
}

func TestGate_RequireAuth(t *testing.T) {
	e := newTestEcho(NewGate("hunter2"))

	t.Run("redirects without a session", func(t *testing.T) {
		jar := map[string]*http.Cookie{}
		rec := do(t, e, jar, http.MethodGet, "/protected", nil)

		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/admin", rec.Header().Get(echo.HeaderLocation))
	})

	t.Run("passes through when logged in", func(t *testing.T) {
		jar := map[string]*http.Cookie{}
		do(t, e, jar, http.MethodPost, "/login", url.Values{"password": {"hunter2"}})

		rec := do(t, e, jar, http.MethodGet, "/protected", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "secret", rec.Body.String())
	})
}

func TestGate_Logout(t *testing.T) {
	e := newTestEcho(NewGate("hunter2"))
	jar := map[string]*http.Cookie{}

	do(t, e, jar, http.MethodPost, "/login", url.Values{"password": {"hunter2"}})
	rec := do(t, e, jar, http.MethodGet, "/check", nil)
	require.Equal(t, "true", rec.Body.String())

	do(t, e, jar, http.MethodGet, "/logout", nil)

	rec = do(t, e, jar, http.MethodGet, "/check", nil)
	assert.Equal(t, "false", rec.Body.String())

	rec = do(t, e, jar, http.MethodGet, "/protected", nil)
	assert.Equal(t, http.StatusSeeOther, rec.Code)
}

func TestFlashes(t *testing.T) {
	e := newTestEcho(NewGate("hunter2"))
	jar := map[string]*http.Cookie{}

	do(t, e, jar, http.MethodGet, "/flash", nil)

	rec := do(t, e, jar, http.MethodGet, "/flashes", nil)
	assert.Equal(t, "hello", rec.Body.String())

	// drained after the first read
	rec = do(t, e, jar, http.MethodGet, "/flashes", nil)
	assert.Equal(t, "", rec.Body.String())
}

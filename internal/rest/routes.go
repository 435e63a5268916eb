package rest

import (
	"fmt"
	"time"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo/v4"

	"github.com/w3Abhishek/blog/internal/session"
)

// RegisterRoutes builds the echo engine carrying the whole HTTP surface:
// public reads, the login pair, and the session-gated admin group.
func (h *Handler) RegisterRoutes(store sessions.Store) (*echo.Echo, error) {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	renderer, err := NewRenderer()
	if err != nil {
		return nil, fmt.Errorf("init renderer: %w", err)
	}
	e.Renderer = renderer

	e.Use(session.Middleware(store))
	e.Use(h.loggingMiddleware)

	e.GET("/", h.Index)
	e.GET("/post/:slug", h.PostDetail)
	e.GET("/health", h.Health)
	e.GET("/logout", h.Logout)

	e.GET("/admin", h.LoginForm)
	e.POST("/admin", h.Login)

	admin := e.Group("/admin", h.gate.RequireAuth)
	admin.GET("/dashboard", h.Dashboard)
	admin.GET("/new", h.NewPostForm)
	admin.POST("/new", h.CreatePost)
	admin.GET("/edit/:id", h.EditPostForm)
	admin.POST("/edit/:id", h.UpdatePost)
	admin.POST("/delete/:id", h.DeletePost)

	return e, nil
}

func (h *Handler) loggingMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()

		if err := next(c); err != nil {
			c.Error(err)
		}

		h.log.Info("HTTP request",
			"method", c.Request().Method,
			"path", c.Request().URL.Path,
			"status", c.Response().Status,
			"duration_ms", time.Since(start).Milliseconds(),
			"remote_addr", c.Request().RemoteAddr,
		)

		return nil
	}
}

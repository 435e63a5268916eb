package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-pg/pg/v10"
	"github.com/labstack/echo/v4"

	"github.com/w3Abhishek/blog/config"
	"github.com/w3Abhishek/blog/internal/blog"
	"github.com/w3Abhishek/blog/internal/db"
	"github.com/w3Abhishek/blog/internal/rest"
	"github.com/w3Abhishek/blog/internal/session"
)

type App struct {
	DB     *db.Repository
	Logger *slog.Logger
	Echo   *echo.Echo
	Config *config.Config
}

func New(cfg *config.Config, dbConnect *pg.DB, logger *slog.Logger) (*App, error) {
	repository := db.New(dbConnect)
	handler := rest.NewHandler(
		blog.NewManager(repository, logger),
		session.NewGate(cfg.Admin.Password),
		logger,
	)

	e, err := handler.RegisterRoutes(session.NewStore(cfg.Session.Secret))
	if err != nil {
		return nil, fmt.Errorf("register routes: %w", err)
	}

	return &App{
		DB:     repository,
		Logger: logger,
		Echo:   e,
		Config: cfg,
	}, nil
}

func (a *App) Run(ctx context.Context, port int) error {
	addr := fmt.Sprintf(":%d", port)
	return a.Echo.Start(addr)
}

func (a *App) GracefulShutdown(ctx context.Context) error {
	err := a.Echo.Shutdown(ctx)
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}

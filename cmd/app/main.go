package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-pg/pg/v10"
	"github.com/namsral/flag"

	"github.com/w3Abhishek/blog/config"
	"github.com/w3Abhishek/blog/internal/app"
	"github.com/w3Abhishek/blog/internal/db"
)

var (
	flConfig  = flag.String("config", "", "path to TOML configuration file (CONFIG)")
	flDebug   = flag.Bool("debug", false, "enable debug mode (DEBUG)")
	flMigrate = flag.Bool("migrate", false, "apply database migrations before starting (MIGRATE)")
	lg        *slog.Logger
)

func main() {
	flag.Parse()

	lg = newLogger(*flDebug)

	cfg, err := config.Load(*flConfig)
	if err != nil {
		exitOnError(err)
	}

	if err := cfg.Validate(); err != nil {
		exitOnError(err)
	}

	ctx := context.Background()

	if *flMigrate {
		if err := db.Migrate(ctx, cfg.Database.URL); err != nil {
			exitOnError(err)
		}
		lg.Info("migrations applied")
	}

	opt, err := cfg.PGOptions()
	if err != nil {
		exitOnError(err)
	}

	dbConn := pg.Connect(opt)
	if cfg.Database.LogQueries {
		dbConn.AddQueryHook(db.NewQueryHook(lg))
	}
	if err := dbConn.Ping(ctx); err != nil {
		dbConn.Close()
		exitOnError(err)
	}

	service, err := app.New(cfg, dbConn, lg)
	if err != nil {
		dbConn.Close()
		exitOnError(err)
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		lg.Info("service starting", "port", cfg.App.Port)
		err := service.Run(ctx, cfg.App.Port)
		if err != nil {
			lg.Error("service run failed", "error", err)
			quit <- syscall.SIGTERM
		}
	}()

	<-quit
	lg.Info("service stopping")

	shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	err = service.GracefulShutdown(shutdownCtx)
	if err != nil {
		lg.Error("service graceful shutdown failed", "error", err)
	}
}

func newLogger(debug bool) *slog.Logger {
	logLevel := slog.LevelInfo
	if debug {
		logLevel = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
}

func exitOnError(err error) {
	if err != nil {
		lg.Error("app init failed", "error", err)
		os.Exit(1)
	}
}

package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"stepup-tasks/internal/config"
	"stepup-tasks/internal/database"
	"stepup-tasks/internal/handlers"
	"stepup-tasks/internal/services"

	"github.com/gin-gonic/gin"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	if err := run(logger); err != nil {
		logger.Error("server exited", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(logger *slog.Logger) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx := context.Background()
	db, disconnect, err := database.Connect(ctx, cfg.Mongo)
	if err != nil {
		return err
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := disconnect(shutdownCtx); err != nil {
			logger.Warn("mongo disconnect failed", slog.String("error", err.Error()))
		}
	}()

	// Startup ping mirrors the original behavior: warn, do not abort.
	if err := database.Ping(ctx, db, cfg.Mongo); err != nil {
		logger.Warn("mongo unreachable at startup, continuing",
			slog.String("error", err.Error()))
	} else {
		logger.Info("mongo connection established",
			slog.String("database", cfg.Mongo.Database))
	}

	router := handlers.NewRouter(handlers.RouterDeps{
		DB:          db,
		Users:       services.NewUserService(),
		Tasks:       services.NewTaskService(),
		Tokens:      services.NewTokenService(cfg.Auth.SecretKey, cfg.Auth.TokenTTL),
		Logger:      logger,
		MongoConfig: cfg.Mongo,
		StaticDir:   cfg.Static.Dir,
	})

	server := &http.Server{
		Addr:         cfg.GetServerAddr(),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", slog.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-stop:
		logger.Info("shutting down", slog.String("signal", sig.String()))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}

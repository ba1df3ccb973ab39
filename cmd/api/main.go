package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"

	"github.com/qrforge/qrforge-go/internal/config"
	"github.com/qrforge/qrforge-go/internal/handler"
	"github.com/qrforge/qrforge-go/internal/middleware"
	"github.com/qrforge/qrforge-go/internal/qr"
	"github.com/qrforge/qrforge-go/internal/service"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("no .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	logger := newLogger(cfg)
	slog.SetDefault(logger)

	r, err := newRouter(cfg, logger)
	if err != nil {
		logger.Error("router setup failed", "error", err)
		os.Exit(1)
	}

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		logger.Info("server starting", "port", cfg.Port, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced shutdown", "error", err)
		os.Exit(1)
	}

	logger.Info("server stopped")
}

func newRouter(cfg config.Config, logger *slog.Logger) (http.Handler, error) {
	defaults := cfg.QROptions()

	genService := service.NewGeneratorService(qr.NewPNGEncoder(), defaults)
	genHandler := handler.NewGeneratorHandler(genService, handler.GeneratorOptions{
		MaxBodyBytes:     cfg.MaxBodyBytes,
		DownloadFilename: cfg.QR.DownloadFilename,
		Logger:           logger,
	})

	pages, err := handler.NewPagesHandler(defaults, logger)
	if err != nil {
		return nil, err
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Get("/", pages.HandleIndex)
	r.Get("/generator", pages.HandleGenerator)

	r.Post("/api/generate", genHandler.HandleGenerate)
	r.Post("/api/download", genHandler.HandleDownload)

	return r, nil
}

func newLogger(cfg config.Config) *slog.Logger {
	opts := &slog.HandlerOptions{Level: cfg.SlogLevel()}
	if cfg.IsProduction() {
		return slog.New(slog.NewJSONHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, opts))
}

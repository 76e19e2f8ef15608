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

	"github.com/go-chi/chi/v5"
	"github.com/vaultpass/accountgen/internal/config"
	"github.com/vaultpass/accountgen/internal/crypto"
	"github.com/vaultpass/accountgen/internal/export"
	"github.com/vaultpass/accountgen/internal/handler"
	"github.com/vaultpass/accountgen/internal/middleware"
	"github.com/vaultpass/accountgen/internal/model"
	"github.com/vaultpass/accountgen/internal/presenter"
	"github.com/vaultpass/accountgen/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("loading config", "error", err)
		os.Exit(1)
	}

	view := presenter.Log{}

	genService := service.NewGeneratorService(crypto.NewSource(cfg.RandomSource), view, service.WithDelay(cfg.GenerateDelay))
	exporter := export.NewExporter(export.SystemClipboard{}, export.NewDirSaver(cfg.ExportDir), view)
	exporter.CopiedFor = cfg.CopiedFor
	genHandler := handler.NewGeneratorHandler(genService, exporter)

	if !(export.SystemClipboard{}).Supported() {
		slog.Warn("no clipboard utility found, copy endpoints will fail")
	}

	// The first batch is ready before the first request, like a page load.
	if _, err := genService.Generate(context.Background(), model.DefaultOptions()); err != nil {
		slog.Error("initial generation failed", "error", err)
	}

	r := chi.NewRouter()
	r.Use(middleware.Logger)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.With(middleware.RateLimit(cfg.RateLimitRPS, cfg.RateLimitBurst)).
		Post("/api/v1/generate", genHandler.HandleGenerate)

	r.Route("/api/v1/items", func(r chi.Router) {
		r.Get("/", genHandler.HandleListItems)
		r.Get("/export.csv", genHandler.HandleExportCSV)
		r.Get("/export.txt", genHandler.HandleExportText)
		r.Post("/copy", genHandler.HandleCopyAll)
		r.Post("/download", genHandler.HandleDownload)
		r.Post("/{id}/copy", genHandler.HandleCopyField)
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		slog.Info("server starting", "port", cfg.Port, "env", cfg.Env, "random_source", cfg.RandomSource)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped")
}

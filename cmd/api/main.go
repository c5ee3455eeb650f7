package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cargomoz/backoffice/internal/clock"
	"github.com/cargomoz/backoffice/internal/config"
	"github.com/cargomoz/backoffice/internal/handler"
	"github.com/cargomoz/backoffice/internal/logging"
	"github.com/cargomoz/backoffice/internal/metrics"
	"github.com/cargomoz/backoffice/internal/middleware"
	"github.com/cargomoz/backoffice/internal/repository"
	"github.com/cargomoz/backoffice/internal/statement"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logging.Init("cargomoz-api", cfg.LogLevel, cfg.AppEnv)
	metrics.Init()

	db, err := repository.Connect(cfg.DatabaseURL)
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	db.SetMaxOpenConns(cfg.DBMaxOpenConns)
	db.SetMaxIdleConns(cfg.DBMaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.DBConnMaxLifetimeS) * time.Second)
	db.SetConnMaxIdleTime(time.Duration(cfg.DBConnMaxIdleTimeS) * time.Second)

	clients := repository.NewClientRepository(db)
	invoices := repository.NewInvoiceRepository(db)
	debitNotes := repository.NewDebitNoteRepository(db)
	receipts := repository.NewReceiptRepository(db)
	creditNotes := repository.NewCreditNoteRepository(db)

	builder := statement.NewBuilder(
		statement.NewInvoiceSource(invoices),
		statement.NewDebitNoteSource(debitNotes),
		statement.NewReceiptSource(receipts),
		statement.NewCreditNoteSource(creditNotes),
	)
	statements := statement.NewService(clients, builder, statement.NewSummarizer(invoices), clock.Real{})

	statementHandler := handler.NewStatementHandler(statements)
	healthHandler := handler.NewHealthHandler(db)

	portalAuth := middleware.PortalAuth(cfg.PortalJWTSecret)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", healthHandler.Liveness)
	mux.HandleFunc("GET /health/ready", healthHandler.Readiness)
	mux.Handle("GET /metrics", metrics.Handler())
	mux.HandleFunc("GET /api/v1/clients/{id}/statement", statementHandler.GetForClient)
	mux.Handle("GET /api/v1/portal/statement", portalAuth(http.HandlerFunc(statementHandler.GetForPortal)))

	var root http.Handler = mux
	root = middleware.Recovery(root)
	root = middleware.Logging(root)
	root = middleware.Tracing(root)

	addr := fmt.Sprintf(":%d", cfg.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           root,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		slog.Info("server started", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}
	slog.Info("server stopped")
}

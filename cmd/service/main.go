package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	"golang.org/x/sync/errgroup"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/s21platform/chat-gateway/internal/client/changefeed"
	"github.com/s21platform/chat-gateway/internal/client/gemini"
	"github.com/s21platform/chat-gateway/internal/client/storage"
	"github.com/s21platform/chat-gateway/internal/config"
	"github.com/s21platform/chat-gateway/internal/infra"
	"github.com/s21platform/chat-gateway/internal/pkg/jwt"
	"github.com/s21platform/chat-gateway/internal/pkg/tx"
	"github.com/s21platform/chat-gateway/internal/pkg/validator"
	db "github.com/s21platform/chat-gateway/internal/repository/postgres"
	"github.com/s21platform/chat-gateway/internal/rest"
	"github.com/s21platform/chat-gateway/internal/session"
	"github.com/s21platform/chat-gateway/internal/ws"
)

func main() {
	cfg := config.MustLoad()
	logger := logger_lib.New(cfg.Logger.Host, cfg.Logger.Port, cfg.Service.Name, cfg.Platform.Env)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	dbRepo := db.New(cfg)
	defer dbRepo.Close()

	feedClient := changefeed.New(cfg, logger)
	defer feedClient.Close()

	geminiClient := gemini.New(cfg)
	defer geminiClient.Close()

	storageClient := storage.New(cfg)
	defer storageClient.Close()

	jwtGenerator := jwt.New(cfg.Service.JWTSecret)
	hub := ws.NewHub(logger, jwtGenerator)

	sess := session.New(dbRepo, session.NewFeed(feedClient), hub, logger)
	sessionStore := session.NewFileStore(cfg.Session.FilePath, cfg.Service.Version)

	vldtr := validator.New()

	handler := rest.New(dbRepo, sess, storageClient, geminiClient, vldtr, jwtGenerator, sessionStore)

	router := chi.NewRouter()
	router.Use(func(next http.Handler) http.Handler {
		return infra.LoggerHTTP(next, logger)
	})
	router.Use(func(next http.Handler) http.Handler {
		return tx.TxMiddlewareHTTP(dbRepo)(next)
	})

	handler.AttachRoutes(router, infra.AuthHTTP(jwtGenerator))
	router.Get("/ws", hub.ServeWS)

	httpServer := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Service.Port),
		Handler: router,
	}

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := feedClient.Run(gCtx); err != nil && !errors.Is(err, context.Canceled) {
			return fmt.Errorf("change feed error: %v", err)
		}
		return nil
	})

	g.Go(func() error {
		if err := hub.Run(gCtx); err != nil && !errors.Is(err, context.Canceled) {
			return fmt.Errorf("websocket hub error: %v", err)
		}
		return nil
	})

	g.Go(func() error {
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("HTTP server error: %v", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gCtx.Done()
		sess.Logout()
		return httpServer.Shutdown(context.Background())
	})

	if err := g.Wait(); err != nil {
		logger.Error(fmt.Sprintf("server error: %v", err))
	}
}

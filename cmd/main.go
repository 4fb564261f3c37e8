package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/tennisclub/clubweb/backend"
	"github.com/tennisclub/clubweb/config"
	"github.com/tennisclub/clubweb/handlers"
	"github.com/tennisclub/clubweb/routes"
	"github.com/tennisclub/clubweb/session"
)

const backendTimeout = 15 * time.Second

func main() {
	// Настройка логгера
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	// Загрузка конфигурации
	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("configuration loaded",
		slog.Int("port", cfg.ServerPort),
		slog.String("backend_url", cfg.BackendURL))

	// Клиент бэкенда — единственный источник данных приложения.
	client := backend.NewClient(cfg.BackendURL, &http.Client{Timeout: backendTimeout})
	logger.Info("backend client initialized")

	// Хранилище сессий поверх подписанной cookie.
	sessions := session.NewStore(client, cfg.SessionHashKey, cfg.IsProduction())
	logger.Info("session store initialized")

	// Инициализация обработчиков страниц
	homeHandler := handlers.NewHomeHandler(client)
	authHandler := handlers.NewAuthHandler(sessions)
	bookingHandler := handlers.NewBookingHandler(client)
	tournamentHandler := handlers.NewTournamentHandler(client)
	playerHandler := handlers.NewPlayerHandler(client)
	assistantHandler := handlers.NewAssistantHandler(client)
	adminHandler := handlers.NewAdminHandler(client)
	logger.Info("page handlers initialized")

	// Настройка маршрутизатора
	router := chi.NewRouter()
	routes.SetupRoutes(
		router,
		sessions,
		homeHandler,
		authHandler,
		bookingHandler,
		tournamentHandler,
		playerHandler,
		assistantHandler,
		adminHandler,
		cfg.CSRFKey,
		cfg.IsProduction(),
	)
	logger.Info("routes configured")

	// Настройка и запуск HTTP-сервера
	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.ServerPort),
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	serverErrors := make(chan error, 1)
	go func() {
		logger.Info("starting server", slog.String("address", server.Addr))
		serverErrors <- server.ListenAndServe()
	}()

	// Ожидание сигнала завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", slog.Any("error", err))
			os.Exit(1)
		} else {
			logger.Info("server stopped gracefully")
		}
	case sig := <-quit:
		logger.Info("shutdown signal received", slog.String("signal", sig.String()))
		shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancelShutdown()

		logger.Info("shutting down server", slog.Duration("timeout", 15*time.Second))
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("graceful shutdown failed", slog.Any("error", err))
			if closeErr := server.Close(); closeErr != nil {
				logger.Error("failed to force close server", slog.Any("error", closeErr))
			}
			os.Exit(1)
		} else {
			logger.Info("server shutdown complete")
		}
	}
	logger.Info("application exited")
}

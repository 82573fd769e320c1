package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"gamebox/internal/arcade"
	"gamebox/internal/cleanup"
	"gamebox/internal/config"
	"gamebox/internal/stats"
	transportHttp "gamebox/internal/transport/http"
	"gamebox/internal/transport/websocket"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Info().Msg("no .env file found")
	}

	cfg := config.LoadConfig()

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	// Sessions, stats, and the live feed
	manager := arcade.NewManager()
	recorder := stats.NewRecorder()
	hub := websocket.NewHub()

	// Background sweep for idle sessions
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	worker := cleanup.NewWorker(manager, cfg.CleanupInterval, cfg.SessionTTL, hub.CloseSessions)
	worker.Start(ctx)

	// Transport layer
	wsHandler := websocket.NewHandler(hub, manager, recorder, cfg.AllowedOrigins)
	server := transportHttp.New(manager, recorder, hub, wsHandler.HandleWebSocket, cfg)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: server.Router(),
	}

	go func() {
		log.Info().Str("port", cfg.Port).Msg("server starting")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Info().Msg("server is shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server exited gracefully")
}

package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/iamasit07/connect4-hotseat/internal/config"
	"github.com/iamasit07/connect4-hotseat/internal/service/cleanup"
	"github.com/iamasit07/connect4-hotseat/internal/service/game"
	transportHttp "github.com/iamasit07/connect4-hotseat/internal/transport/http"
	"github.com/iamasit07/connect4-hotseat/internal/transport/websocket"
	"github.com/iamasit07/connect4-hotseat/pkg/auth"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		if err := godotenv.Load("../.env"); err != nil {
			log.Println("No .env file found")
		}
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// 1. Services
	sessionManager := game.NewSessionManager(cfg.BoardRows, cfg.BoardColumns)
	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.GameTokenTTL())

	// 2. Background workers
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cleanupWorker := cleanup.NewWorker(sessionManager, cfg.CleanupInterval(), cfg.FinishedGameTTL(), cfg.StaleGameTTL())
	go cleanupWorker.Start(ctx)

	// 3. Transport
	connManager := websocket.NewConnectionManager()
	wsHandler := websocket.NewHandler(connManager, sessionManager, tokens, cfg.AllowedOrigins)
	gameHandler := transportHttp.NewGameHandler(sessionManager, tokens, cfg.GameTokenTTL(), cfg.IsProduction())

	router := transportHttp.NewRouter(transportHttp.RouterOptions{
		AllowedOrigins: cfg.AllowedOrigins,
		StaticDir:      cfg.StaticDir,
		Tokens:         tokens,
		Games:          gameHandler,
		WebSocket:      wsHandler.HandleWebSocket,
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		log.Printf("Server starting on :%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Println("Server is shutting down...")

	cancel()
	connManager.CloseAll("server shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited gracefully")
}

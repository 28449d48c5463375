package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"google.golang.org/api/option"
	sheetsapi "google.golang.org/api/sheets/v4"

	handler "github.com/mxpp71-coder/cahier-seances-judo/internal/handlers/http"
	"github.com/mxpp71-coder/cahier-seances-judo/internal/notify"
	sessionRepo "github.com/mxpp71-coder/cahier-seances-judo/internal/repositories/session"
	tokenRepo "github.com/mxpp71-coder/cahier-seances-judo/internal/repositories/token"
	"github.com/mxpp71-coder/cahier-seances-judo/internal/services/journal"
	"github.com/mxpp71-coder/cahier-seances-judo/internal/sheets"
)

func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})

	// .env is optional; deployments usually set the environment directly
	_ = godotenv.Load()

	password := os.Getenv("APP_PASSWORD")
	if password == "" {
		logger.Fatal("APP_PASSWORD environment variable is required")
	}

	// Initialize the spreadsheet gateway
	gateway, err := buildGateway(context.Background(), logger)
	if err != nil {
		logger.Fatalf("Failed to create spreadsheet gateway: %v", err)
	}

	// Initialize Redis client for access tokens
	redisClient := redis.NewClient(&redis.Options{
		Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
		Password: getEnv("REDIS_PASSWORD", ""),
		DB:       0,
	})

	// Test Redis connection
	pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := redisClient.Ping(pingCtx).Err(); err != nil {
		logger.Fatalf("Failed to connect to Redis: %v", err)
	}

	// Initialize repositories
	tokens, err := tokenRepo.NewRedis(&tokenRepo.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		logger.Fatalf("Failed to create token repository: %v", err)
	}

	sessions, err := sessionRepo.New(&sessionRepo.Config{
		Gateway: gateway,
		Sheet:   getEnv("WORKSHEET", "seances"),
	})
	if err != nil {
		logger.Fatalf("Failed to create session repository: %v", err)
	}

	// Initialize journal service
	journalSvc, err := journal.New(&journal.Config{
		SessionRepo: sessions,
	})
	if err != nil {
		logger.Fatalf("Failed to create journal service: %v", err)
	}

	// Optional Discord announcements
	var notifier notify.Notifier
	if token := os.Getenv("DISCORD_TOKEN"); token != "" {
		notifier, err = notify.NewDiscord(&notify.Config{
			Token:     token,
			ChannelID: os.Getenv("DISCORD_CHANNEL_ID"),
		})
		if err != nil {
			logger.Fatalf("Failed to create Discord notifier: %v", err)
		}
	}

	h, err := handler.New(&handler.Config{
		Logger:   logger,
		Journal:  journalSvc,
		Tokens:   tokens,
		Password: password,
		Notifier: notifier,
	})
	if err != nil {
		logger.Fatalf("Failed to create HTTP handler: %v", err)
	}

	srv := &http.Server{
		Addr:    getEnv("APP_ADDR", ":8080"),
		Handler: h.Router(),
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("Server failed: %v", err)
		}
	}()
	logger.Infof("Listening on %s", srv.Addr)

	// Wait for interrupt signal to gracefully shutdown
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShutdown()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Errorf("Error shutting down server: %v", err)
	}

	logger.Info("Server has been shut down")
}

// buildGateway selects the spreadsheet backend. "memory" keeps everything in
// process for local development; anything else talks to Google Sheets.
func buildGateway(ctx context.Context, logger *logrus.Logger) (sheets.Gateway, error) {
	if getEnv("STORAGE", "google") == "memory" {
		logger.Warn("Using in-memory storage, records are lost on restart")
		return sheets.NewMemory(), nil
	}

	spreadsheetID := os.Getenv("SPREADSHEET_ID")
	if spreadsheetID == "" {
		return nil, errors.New("SPREADSHEET_ID environment variable is required")
	}

	svc, err := sheetsapi.NewService(ctx,
		option.WithCredentialsFile(getEnv("SHEETS_CREDENTIALS_FILE", "credentials.json")),
		option.WithScopes(sheetsapi.SpreadsheetsScope),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create Sheets client: %w", err)
	}

	gw, err := sheets.NewGoogle(&sheets.GoogleConfig{
		Service:       svc,
		SpreadsheetID: spreadsheetID,
	})
	if err != nil {
		return nil, err
	}

	return gw, nil
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fixie/internal/config"
	"fixie/internal/handler"
	"fixie/internal/llm"
	"fixie/internal/repository/postgres"
	"fixie/internal/search"
	"fixie/internal/service"
	"fixie/internal/session"
	"fixie/internal/speech"

	"github.com/golang-migrate/migrate/v4"
	postgresdb "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

func main() {
	// Initialize logger
	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("Starting Fixie bot")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load config", zap.Error(err))
	}

	logger.Info("Configuration loaded successfully")

	// Connect to database with retries
	db, err := connectDatabase(cfg.DSN(), logger)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	logger.Info("Database connection established")

	// Run migrations
	if err := runMigrations(db, logger); err != nil {
		logger.Fatal("Failed to run migrations", zap.Error(err))
	}

	logger.Info("Database migrations completed")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize repositories
	knowledgeRepo := postgres.NewKnowledgeRepo(db)
	userRepo := postgres.NewUserRepo(db)

	// Initialize the generative backend
	generator, err := llm.NewGeminiClient(ctx, llm.GeminiConfig{
		APIKey: cfg.Gemini.APIKey,
		Model:  cfg.Gemini.Model,
	})
	if err != nil {
		logger.Fatal("Failed to create Gemini client", zap.Error(err))
	}

	logger.Info("Gemini client initialized", zap.String("model", generator.ModelID()))

	// Initialize services
	matcher := search.NewMatcher(cfg.MatchThreshold)
	speaker := speech.NewLogSpeaker(logger)
	sessions := session.NewMemoryStore()

	chatService := service.NewChatService(
		knowledgeRepo, userRepo, matcher, generator, speaker,
		cfg.SpeechLocale, logger,
	)
	profileService := service.NewProfileService(userRepo, knowledgeRepo, logger)

	// Load the initial knowledge snapshot
	if err := chatService.RefreshKnowledge(); err != nil {
		logger.Fatal("Failed to load knowledge base", zap.Error(err))
	}

	logger.Info("Knowledge base loaded")

	// Initialize Telegram bot
	bot, err := tele.NewBot(tele.Settings{
		Token:  cfg.BotToken,
		Poller: &tele.LongPoller{Timeout: 10 * time.Second},
	})
	if err != nil {
		logger.Fatal("Failed to create bot", zap.Error(err))
	}

	logger.Info("Telegram bot initialized")

	// Initialize handler (no transcriber wired; voice input needs an
	// external speech-to-text collaborator)
	h := handler.NewHandler(bot, chatService, profileService, sessions, nil, logger)
	h.RegisterHandlers()

	logger.Info("Handlers registered")

	// Keep the knowledge snapshot fresh in the background
	go runSnapshotRefresh(ctx, chatService, logger)

	// Start bot in background
	go func() {
		logger.Info("Bot started successfully")
		bot.Start()
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	<-sigChan

	logger.Info("Shutdown signal received, stopping bot...")

	// Graceful shutdown
	bot.Stop()
	cancel()

	logger.Info("Bot stopped gracefully")
}

// connectDatabase connects to PostgreSQL with retries
func connectDatabase(dsn string, logger *zap.Logger) (*sql.DB, error) {
	var db *sql.DB
	var err error

	maxRetries := 30
	retryDelay := 2 * time.Second

	for i := 0; i < maxRetries; i++ {
		db, err = sql.Open("postgres", dsn)
		if err != nil {
			logger.Warn("Failed to open database connection",
				zap.Int("attempt", i+1),
				zap.Error(err),
			)
			time.Sleep(retryDelay)
			continue
		}

		// Test connection
		if err = db.Ping(); err != nil {
			logger.Warn("Failed to ping database",
				zap.Int("attempt", i+1),
				zap.Error(err),
			)
			db.Close()
			time.Sleep(retryDelay)
			continue
		}

		// Connection successful
		db.SetMaxOpenConns(25)
		db.SetMaxIdleConns(5)
		db.SetConnMaxLifetime(5 * time.Minute)

		return db, nil
	}

	return nil, fmt.Errorf("failed to connect to database after %d attempts: %w", maxRetries, err)
}

// runMigrations runs database migrations
func runMigrations(db *sql.DB, logger *zap.Logger) error {
	driver, err := postgresdb.WithInstance(db, &postgresdb.Config{})
	if err != nil {
		return fmt.Errorf("failed to create migration driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance(
		"file://migrations",
		"postgres",
		driver,
	)
	if err != nil {
		return fmt.Errorf("failed to create migration instance: %w", err)
	}

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	logger.Info("Migrations applied")
	return nil
}

// runSnapshotRefresh periodically reloads the knowledge snapshot so entries
// taught through other sessions become matchable here
func runSnapshotRefresh(ctx context.Context, chatService *service.ChatService, logger *zap.Logger) {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("Snapshot refresh stopped")
			return
		case <-ticker.C:
			if err := chatService.RefreshKnowledge(); err != nil {
				logger.Error("Failed to refresh knowledge snapshot", zap.Error(err))
			}
		}
	}
}

package main

import (
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"vocabdrill/internal/config"
	"vocabdrill/internal/handler"
	"vocabdrill/internal/repository/csvfile"
	"vocabdrill/internal/repository/memory"
	"vocabdrill/internal/service"

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

	logger.Info("Starting vocabulary bot")

	// Load configuration
	cfg, err := config.LoadBot()
	if err != nil {
		logger.Fatal("Failed to load config", zap.Error(err))
	}

	catalog := cfg.Catalog()
	logger.Info("Configuration loaded successfully",
		zap.String("wordlist_dir", cfg.WordListDir),
		zap.Int("levels", len(catalog.Levels())),
	)

	// Initialize repositories
	userRepo := memory.NewUserRepo()
	wordRepo := csvfile.NewWordListRepo(catalog)

	// Initialize services
	authService := service.NewAuthService(userRepo, cfg.Bot.Password)
	wordService := service.NewWordService(wordRepo, logger)
	controller := service.NewScreenController(
		wordService,
		catalog.Levels(),
		rand.New(rand.NewSource(cfg.ShuffleSeed)),
		logger,
	)

	// Updates are handled one at a time so the controller is never shared
	bot, err := tele.NewBot(tele.Settings{
		Token:       cfg.Bot.Token,
		Poller:      &tele.LongPoller{Timeout: 10 * time.Second},
		Synchronous: true,
	})
	if err != nil {
		logger.Fatal("Failed to create bot", zap.Error(err))
	}

	logger.Info("Telegram bot initialized")

	h := handler.NewHandler(bot, authService, controller, logger)
	h.RegisterHandlers()

	logger.Info("Handlers registered")

	go func() {
		logger.Info("Bot started successfully")
		bot.Start()
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	<-sigChan

	logger.Info("Shutdown signal received, stopping bot...")
	bot.Stop()
	logger.Info("Bot stopped gracefully")
}

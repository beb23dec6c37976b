package main

import (
	"fmt"
	"math/rand"
	"os"

	"vocabdrill/internal/config"
	"vocabdrill/internal/repository/csvfile"
	"vocabdrill/internal/service"
	"vocabdrill/internal/tui"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// The terminal belongs to the UI, so logs go to a file
	logger, err := newFileLogger(cfg.LogFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	catalog := cfg.Catalog()
	logger.Info("Starting vocabulary drill",
		zap.String("wordlist_dir", cfg.WordListDir),
		zap.Int64("shuffle_seed", cfg.ShuffleSeed),
	)

	wordService := service.NewWordService(csvfile.NewWordListRepo(catalog), logger)
	controller := service.NewScreenController(
		wordService,
		catalog.Levels(),
		rand.New(rand.NewSource(cfg.ShuffleSeed)),
		logger,
	)

	program := tea.NewProgram(tui.NewModel(controller, logger), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		logger.Error("Terminal UI failed", zap.Error(err))
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger.Info("Vocabulary drill closed")
}

func newFileLogger(path string) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{path}
	cfg.ErrorOutputPaths = []string{path}
	return cfg.Build()
}

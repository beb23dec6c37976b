package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"vocabdrill/internal/domain"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	WordListDir string
	LevelFiles  map[domain.Level]string
	ShuffleSeed int64
	LogFile     string
	Bot         BotConfig
}

// BotConfig holds Telegram frontend settings
type BotConfig struct {
	Token    string
	Password string
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file (ignore error if not exists)
	_ = godotenv.Load()

	cfg := &Config{
		WordListDir: getEnv("WORDLIST_DIR", "."),
		LevelFiles:  make(map[domain.Level]string),
		LogFile:     getEnv("LOG_FILE", "vocabdrill.log"),
		Bot: BotConfig{
			Token:    os.Getenv("BOT_TOKEN"),
			Password: os.Getenv("BOT_PASSWORD"),
		},
	}

	for _, level := range domain.AllLevels() {
		cfg.LevelFiles[level] = getEnv("LEVEL_FILE_"+string(level), level.DefaultFileName())
	}

	seed, err := parseSeed(os.Getenv("SHUFFLE_SEED"))
	if err != nil {
		return nil, err
	}
	cfg.ShuffleSeed = seed

	return cfg, nil
}

// LoadBot reads configuration and validates the Telegram settings
func LoadBot() (*Config, error) {
	cfg, err := Load()
	if err != nil {
		return nil, err
	}

	if cfg.Bot.Token == "" {
		return nil, fmt.Errorf("BOT_TOKEN is required")
	}
	if cfg.Bot.Password == "" {
		return nil, fmt.Errorf("BOT_PASSWORD is required")
	}

	return cfg, nil
}

// Catalog builds the level catalog with paths resolved against WordListDir
func (c *Config) Catalog() domain.LevelCatalog {
	paths := make(map[domain.Level]string, len(c.LevelFiles))
	for level, name := range c.LevelFiles {
		if name == "" {
			continue
		}
		if filepath.IsAbs(name) {
			paths[level] = name
			continue
		}
		paths[level] = filepath.Join(c.WordListDir, name)
	}
	return domain.NewLevelCatalog(paths)
}

func parseSeed(raw string) (int64, error) {
	if raw == "" {
		return time.Now().UnixNano(), nil
	}
	seed, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("SHUFFLE_SEED must be an integer: %w", err)
	}
	return seed, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

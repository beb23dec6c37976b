package service

import (
	"errors"

	"vocabdrill/internal/domain"
	"vocabdrill/internal/repository"

	"go.uber.org/zap"
)

// WordService loads word lists for levels
type WordService struct {
	wordRepo repository.WordListRepository
	logger   *zap.Logger
}

// NewWordService creates a new word service
func NewWordService(wordRepo repository.WordListRepository, logger *zap.Logger) *WordService {
	return &WordService{
		wordRepo: wordRepo,
		logger:   logger,
	}
}

// LoadLevel returns the pairs of a level in file order. Load failures are
// logged and yield an empty slice; callers only see whether words exist.
func (s *WordService) LoadLevel(level domain.Level) []domain.WordPair {
	pairs, err := s.wordRepo.LoadLevel(level)
	if err != nil {
		if errors.Is(err, repository.ErrFileNotFound) {
			s.logger.Warn("Word list not found",
				zap.String("level", string(level)),
				zap.Error(err),
			)
		} else {
			s.logger.Error("Failed to load word list",
				zap.String("level", string(level)),
				zap.Error(err),
			)
		}
		return []domain.WordPair{}
	}

	s.logger.Info("Word list loaded",
		zap.String("level", string(level)),
		zap.Int("pairs", len(pairs)),
	)
	if pairs == nil {
		return []domain.WordPair{}
	}
	return pairs
}

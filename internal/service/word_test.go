package service

import (
	"fmt"
	"testing"

	"vocabdrill/internal/domain"
	"vocabdrill/internal/repository"
	"vocabdrill/internal/testutil"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zapcore"
)

func TestWordService_LoadLevel(t *testing.T) {
	pairs := testutil.NewTestPairs("cat", "kočka", "dog", "pes")

	tests := []struct {
		name          string
		level         domain.Level
		mockReturn    []domain.WordPair
		mockError     error
		expectedPairs []domain.WordPair
		expectedLog   string
		expectedLevel zapcore.Level
	}{
		{
			name:          "pairs loaded",
			level:         domain.LevelA1,
			mockReturn:    pairs,
			expectedPairs: pairs,
			expectedLog:   "Word list loaded",
			expectedLevel: zapcore.InfoLevel,
		},
		{
			name:          "empty file",
			level:         domain.LevelA2,
			mockReturn:    []domain.WordPair{},
			expectedPairs: []domain.WordPair{},
			expectedLog:   "Word list loaded",
			expectedLevel: zapcore.InfoLevel,
		},
		{
			name:          "file not found",
			level:         domain.LevelB1,
			mockError:     fmt.Errorf("level B1: %w", repository.ErrFileNotFound),
			expectedPairs: []domain.WordPair{},
			expectedLog:   "Word list not found",
			expectedLevel: zapcore.WarnLevel,
		},
		{
			name:          "unreadable file",
			level:         domain.LevelC1,
			mockError:     fmt.Errorf("permission denied"),
			expectedPairs: []domain.WordPair{},
			expectedLog:   "Failed to load word list",
			expectedLevel: zapcore.ErrorLevel,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(testutil.MockWordListRepository)
			if tt.mockReturn == nil {
				mockRepo.On("LoadLevel", tt.level).Return(nil, tt.mockError)
			} else {
				mockRepo.On("LoadLevel", tt.level).Return(tt.mockReturn, tt.mockError)
			}

			logger, logs := testutil.NewObservedLogger()
			service := NewWordService(mockRepo, logger)

			result := service.LoadLevel(tt.level)

			assert.NotNil(t, result)
			assert.Equal(t, tt.expectedPairs, result)

			entries := logs.FilterMessage(tt.expectedLog).All()
			if assert.Len(t, entries, 1) {
				assert.Equal(t, tt.expectedLevel, entries[0].Level)
				assert.Equal(t, string(tt.level), entries[0].ContextMap()["level"])
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

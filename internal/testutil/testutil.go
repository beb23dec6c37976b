package testutil

import (
	"vocabdrill/internal/domain"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// NewTestLogger creates a no-op logger for tests
func NewTestLogger() *zap.Logger {
	return zap.NewNop()
}

// NewObservedLogger creates a logger whose entries can be inspected
func NewObservedLogger() (*zap.Logger, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	return zap.New(core), logs
}

// NewTestPairs creates pairs from alternating source and target terms
func NewTestPairs(terms ...string) []domain.WordPair {
	pairs := make([]domain.WordPair, 0, len(terms)/2)
	for i := 0; i+1 < len(terms); i += 2 {
		pairs = append(pairs, domain.NewWordPair(terms[i], terms[i+1]))
	}
	return pairs
}

// IdentityShuffler leaves the order unchanged
type IdentityShuffler struct{}

func (IdentityShuffler) Shuffle(n int, swap func(i, j int)) {}

// ReverseShuffler reverses the order on every shuffle and counts calls
type ReverseShuffler struct {
	Calls int
}

func (s *ReverseShuffler) Shuffle(n int, swap func(i, j int)) {
	s.Calls++
	for i, j := 0, n-1; i < j; i, j = i+1, j-1 {
		swap(i, j)
	}
}

package service

import (
	"errors"

	"vocabdrill/internal/domain"
)

// ErrEmptyDeck is returned when advancing a session that has no pairs
var ErrEmptyDeck = errors.New("practice deck is empty")

// Shuffler permutes n elements in place. *rand.Rand satisfies it.
type Shuffler interface {
	Shuffle(n int, swap func(i, j int))
}

// PracticeSession is the deck of one practice run. Once every pair has been
// shown it reshuffles and starts over.
type PracticeSession struct {
	shuffler  Shuffler
	pairs     []domain.WordPair
	index     int
	direction domain.Direction
	current   *domain.WordPair

	correct  int
	attempts int
}

// NewPracticeSession creates an empty session
func NewPracticeSession(shuffler Shuffler) *PracticeSession {
	return &PracticeSession{shuffler: shuffler}
}

// Start replaces the deck with a shuffled copy of pairs
func (s *PracticeSession) Start(pairs []domain.WordPair, direction domain.Direction) {
	s.pairs = make([]domain.WordPair, len(pairs))
	copy(s.pairs, pairs)
	s.shuffle()
	s.index = 0
	s.direction = direction
	s.current = nil
	s.correct = 0
	s.attempts = 0
}

// Advance moves to the next pair, reshuffling when the deck is exhausted
func (s *PracticeSession) Advance() (domain.WordPair, error) {
	if len(s.pairs) == 0 {
		return domain.WordPair{}, ErrEmptyDeck
	}

	if s.index >= len(s.pairs) {
		s.shuffle()
		s.index = 0
	}

	pair := s.pairs[s.index]
	s.current = &pair
	s.index++
	return pair, nil
}

// Current returns the pair being practised
func (s *PracticeSession) Current() (domain.WordPair, bool) {
	if s.current == nil {
		return domain.WordPair{}, false
	}
	return *s.current, true
}

// Direction returns the practice direction
func (s *PracticeSession) Direction() domain.Direction {
	return s.direction
}

// Len returns the deck size
func (s *PracticeSession) Len() int {
	return len(s.pairs)
}

// PromptTerm returns the term shown to the user
func (s *PracticeSession) PromptTerm() string {
	if s.current == nil {
		return ""
	}
	if s.direction == domain.Forward {
		return s.current.Source
	}
	return s.current.Target
}

// ReferenceTerm returns the term the user is expected to type
func (s *PracticeSession) ReferenceTerm() string {
	if s.current == nil {
		return ""
	}
	if s.direction == domain.Forward {
		return s.current.Target
	}
	return s.current.Source
}

// Record counts one submitted answer
func (s *PracticeSession) Record(correct bool) {
	s.attempts++
	if correct {
		s.correct++
	}
}

// Score returns correct and total submissions since Start
func (s *PracticeSession) Score() (correct, attempts int) {
	return s.correct, s.attempts
}

func (s *PracticeSession) shuffle() {
	s.shuffler.Shuffle(len(s.pairs), func(i, j int) {
		s.pairs[i], s.pairs[j] = s.pairs[j], s.pairs[i]
	})
}

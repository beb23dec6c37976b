package service

import (
	"math/rand"
	"testing"

	"vocabdrill/internal/domain"
	"vocabdrill/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPracticeSession_AdvanceVisitsEachPairOnce(t *testing.T) {
	pairs := testutil.NewTestPairs("cat", "kočka", "dog", "pes", "house", "dům", "tree", "strom")
	session := NewPracticeSession(rand.New(rand.NewSource(7)))
	session.Start(pairs, domain.Forward)

	seen := make([]domain.WordPair, 0, len(pairs))
	for range pairs {
		pair, err := session.Advance()
		require.NoError(t, err)
		seen = append(seen, pair)
	}
	assert.ElementsMatch(t, pairs, seen)

	pair, err := session.Advance()
	require.NoError(t, err)
	assert.Contains(t, pairs, pair)
}

func TestPracticeSession_ReshufflesWhenExhausted(t *testing.T) {
	pairs := testutil.NewTestPairs("a", "1", "b", "2", "c", "3")
	shuffler := &testutil.ReverseShuffler{}
	session := NewPracticeSession(shuffler)
	session.Start(pairs, domain.Forward)
	assert.Equal(t, 1, shuffler.Calls)

	var order []string
	for i := 0; i < 6; i++ {
		pair, err := session.Advance()
		require.NoError(t, err)
		order = append(order, pair.Source)
	}

	assert.Equal(t, []string{"c", "b", "a", "a", "b", "c"}, order)
	assert.Equal(t, 2, shuffler.Calls)
}

func TestPracticeSession_SeededShuffleIsDeterministic(t *testing.T) {
	pairs := testutil.NewTestPairs("a", "1", "b", "2", "c", "3", "d", "4", "e", "5")

	run := func() []domain.WordPair {
		session := NewPracticeSession(rand.New(rand.NewSource(42)))
		session.Start(pairs, domain.Forward)
		var out []domain.WordPair
		for i := 0; i < 12; i++ {
			pair, err := session.Advance()
			require.NoError(t, err)
			out = append(out, pair)
		}
		return out
	}

	assert.Equal(t, run(), run())
}

func TestPracticeSession_StartCopiesPairs(t *testing.T) {
	pairs := testutil.NewTestPairs("a", "1", "b", "2")
	session := NewPracticeSession(&testutil.ReverseShuffler{})
	session.Start(pairs, domain.Forward)

	assert.Equal(t, testutil.NewTestPairs("a", "1", "b", "2"), pairs, "caller slice must not be reordered")
}

func TestPracticeSession_EmptyDeck(t *testing.T) {
	session := NewPracticeSession(testutil.IdentityShuffler{})
	session.Start(nil, domain.Forward)

	_, err := session.Advance()
	assert.ErrorIs(t, err, ErrEmptyDeck)

	_, ok := session.Current()
	assert.False(t, ok)
	assert.Equal(t, "", session.PromptTerm())
	assert.Equal(t, "", session.ReferenceTerm())
}

func TestPracticeSession_Terms(t *testing.T) {
	tests := []struct {
		name              string
		direction         domain.Direction
		expectedPrompt    string
		expectedReference string
	}{
		{
			name:              "forward",
			direction:         domain.Forward,
			expectedPrompt:    "dog",
			expectedReference: "pes",
		},
		{
			name:              "reverse",
			direction:         domain.Reverse,
			expectedPrompt:    "pes",
			expectedReference: "dog",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			session := NewPracticeSession(testutil.IdentityShuffler{})
			session.Start(testutil.NewTestPairs("dog", "pes"), tt.direction)

			_, ok := session.Current()
			assert.False(t, ok, "no current pair before the first advance")

			_, err := session.Advance()
			require.NoError(t, err)

			assert.Equal(t, tt.direction, session.Direction())
			assert.Equal(t, tt.expectedPrompt, session.PromptTerm())
			assert.Equal(t, tt.expectedReference, session.ReferenceTerm())
		})
	}
}

func TestPracticeSession_Score(t *testing.T) {
	session := NewPracticeSession(testutil.IdentityShuffler{})
	session.Start(testutil.NewTestPairs("dog", "pes"), domain.Forward)

	session.Record(true)
	session.Record(false)
	session.Record(true)

	correct, attempts := session.Score()
	assert.Equal(t, 2, correct)
	assert.Equal(t, 3, attempts)

	session.Start(testutil.NewTestPairs("dog", "pes"), domain.Forward)
	correct, attempts = session.Score()
	assert.Zero(t, correct)
	assert.Zero(t, attempts)
}

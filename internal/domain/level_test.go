package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name          string
		input         string
		expected      Level
		expectedError bool
	}{
		{name: "upper case", input: "B2", expected: LevelB2},
		{name: "lower case with spaces", input: " c1 ", expected: LevelC1},
		{name: "unknown level", input: "D1", expectedError: true},
		{name: "empty", input: "", expectedError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			level, err := ParseLevel(tt.input)
			if tt.expectedError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, level)
		})
	}
}

func TestLevel_DefaultFileName(t *testing.T) {
	assert.Equal(t, "cefr_a1_word_list.csv", LevelA1.DefaultFileName())
	assert.Equal(t, "cefr_c2_word_list.csv", LevelC2.DefaultFileName())
}

func TestLevelCatalog(t *testing.T) {
	source := map[Level]string{
		LevelB1: "b1.csv",
		LevelA1: "a1.csv",
		LevelA2: "",
	}
	catalog := NewLevelCatalog(source)

	// later changes to the source map must not leak into the catalog
	source[LevelC2] = "c2.csv"

	path, ok := catalog.Path(LevelA1)
	assert.True(t, ok)
	assert.Equal(t, "a1.csv", path)

	_, ok = catalog.Path(LevelA2)
	assert.False(t, ok, "empty path counts as missing")

	_, ok = catalog.Path(LevelC2)
	assert.False(t, ok)

	assert.Equal(t, []Level{LevelA1, LevelA2, LevelB1}, catalog.Levels())
}

func TestDirection(t *testing.T) {
	assert.Equal(t, "forward", Forward.String())
	assert.Equal(t, "reverse", Reverse.String())
	assert.Contains(t, Forward.Label(), "Angličtina →")
}

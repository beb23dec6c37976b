package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanCallbackData(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "normal string",
			input:    "A1",
			expected: "A1",
		},
		{
			name:     "string with whitespace",
			input:    "  B2  ",
			expected: "B2",
		},
		{
			name:     "string with newline",
			input:    "C\n1",
			expected: "C1",
		},
		{
			name:     "empty string",
			input:    "",
			expected: "",
		},
		{
			name:     "only whitespace",
			input:    "   ",
			expected: "",
		},
		{
			name:     "string with unprintable characters",
			input:    "\flevel|A2\x00",
			expected: "level|A2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := cleanCallbackData(tt.input)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestSplitCallback(t *testing.T) {
	tests := []struct {
		name            string
		unique          string
		data            string
		expectedUnique  string
		expectedPayload string
	}{
		{
			name:            "routed by telebot",
			unique:          "level",
			data:            "A1",
			expectedUnique:  "level",
			expectedPayload: "A1",
		},
		{
			name:            "raw data with payload",
			data:            "\flevel|B1",
			expectedUnique:  "level",
			expectedPayload: "B1",
		},
		{
			name:            "raw data without payload",
			data:            "\fnext",
			expectedUnique:  "next",
			expectedPayload: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			unique, payload := splitCallback(tt.unique, tt.data)
			assert.Equal(t, tt.expectedUnique, unique)
			assert.Equal(t, tt.expectedPayload, payload)
		})
	}
}

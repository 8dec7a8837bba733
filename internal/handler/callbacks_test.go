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
			input:    "fb_yes",
			expected: "fb_yes",
		},
		{
			name:     "string with whitespace",
			input:    "  suggest|pump won't start  ",
			expected: "suggest|pump won't start",
		},
		{
			name:     "string with newline",
			input:    "fb\nyes",
			expected: "fbyes",
		},
		{
			name:     "empty string",
			input:    "",
			expected: "",
		},
		{
			name:     "string with unprintable characters",
			input:    "fb\x00_yes\x01",
			expected: "fb_yes",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := cleanCallbackData(tt.input)
			assert.Equal(t, tt.expected, result)
		})
	}
}

package contract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBoolString(t *testing.T) {
	tests := []struct {
		in          string
		want        bool
		expectError bool
	}{
		{"", true, false},
		{"yes", true, false},
		{"YES", true, false},
		{"true", true, false},
		{"1", true, false},
		{"on", true, false},
		{"no", false, false},
		{"false", false, false},
		{"0", false, false},
		{"off", false, false},
		{"  yes  ", true, false},
		{"maybe", false, true},
		{"2", false, true},
	}
	for _, tt := range tests {
		got, err := ParseBoolString(tt.in)
		if tt.expectError {
			assert.Error(t, err, "input %q", tt.in)
			continue
		}
		require.NoError(t, err, "input %q", tt.in)
		assert.Equal(t, tt.want, got, "input %q", tt.in)
	}
}

func TestTruncateLabel(t *testing.T) {
	tests := []struct {
		name   string
		in     string
		maxLen int
		want   string
	}{
		{"short string untouched", "alice", 10, "alice"},
		{"exact length untouched", "alice", 5, "alice"},
		{"long string truncated", "alexandria@example.com", 10, "alexand..."},
		{"tiny max clamps to ellipsis", "alice", 2, "..."},
		{"unicode counted in runes", "日本語テキストです", 5, "日本..."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TruncateLabel(tt.in, tt.maxLen))
		})
	}
}

func TestFormatNetLines(t *testing.T) {
	// Without colors the value is just the signed number.
	assert.Equal(t, "+13", FormatNetLines(13, false))
	assert.Equal(t, "-47", FormatNetLines(-47, false))
	assert.Equal(t, "+0", FormatNetLines(0, false))

	// With colors the signed number is still embedded in the output.
	assert.Contains(t, FormatNetLines(13, true), "+13")
	assert.Contains(t, FormatNetLines(-47, true), "-47")
}

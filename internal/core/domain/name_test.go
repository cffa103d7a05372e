package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewName(t *testing.T) {
	name, err := NewName("John Doe")
	require.NoError(t, err)
	assert.Equal(t, "John Doe", name.Value())
}

func TestNewName_Rejects(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		rule    Rule
		message string
	}{
		{"empty", "", RuleEmpty, "Name cannot be empty."},
		{"whitespace only", "   ", RuleEmpty, "Name cannot be empty."},
		{"too short", strings.Repeat("A", DefaultLimits.Name.Min-1), RuleMinLength, "Name must be at least 2 characters."},
		{"too long", strings.Repeat("A", DefaultLimits.Name.Max+1), RuleMaxLength, "Name must be at most 100 characters."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewName(tt.raw)
			var de *Error
			require.ErrorAs(t, err, &de)
			assert.Equal(t, CodeInvalidName, de.Code)
			assert.Equal(t, tt.rule, de.Rule)
			assert.Equal(t, tt.message, de.Message)
		})
	}
}

func TestNewName_Boundaries(t *testing.T) {
	_, err := NewName(strings.Repeat("A", DefaultLimits.Name.Min))
	assert.NoError(t, err)

	_, err = NewName(strings.Repeat("A", DefaultLimits.Name.Max))
	assert.NoError(t, err)
}

func TestNewName_PreservesInnerWhitespace(t *testing.T) {
	name, err := NewName("Jane   Smith")
	require.NoError(t, err)
	assert.Equal(t, "Jane   Smith", name.Value())

	padded, err := NewName("  Jane  ")
	require.NoError(t, err)
	assert.Equal(t, "  Jane  ", padded.Value())
}

func TestNewName_CountsCharactersNotBytes(t *testing.T) {
	limits := DefaultLimits
	limits.Name = Bounds{Min: 2, Max: 3}

	name, err := limits.NewName("Zoë")
	require.NoError(t, err)
	assert.Equal(t, "Zoë", name.Value())
}

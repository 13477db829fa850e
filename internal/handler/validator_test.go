package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// Validator Tests
// =============================================================================

func TestValidator_ToggleNumberBounds(t *testing.T) {
	InitValidator()
	v := GetValidator()

	tests := []struct {
		name    string
		number  int
		wantErr bool
	}{
		// Best case
		{"mid-range number", 30, false},

		// Boundaries
		{"lowest ball", 1, false},
		{"highest ball", 60, false},

		// Invalid cases
		{"zero", 0, true},
		{"above range", 61, true},
		{"negative", -5, true},
		{"way above range", 1000, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := ToggleNumberRequest{Number: tt.number}

			err := v.ValidateStruct(input)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidator_SetFilterRequired(t *testing.T) {
	InitValidator()
	v := GetValidator()

	t.Run("missing enabled field fails", func(t *testing.T) {
		err := v.ValidateStruct(SetFilterRequest{})
		assert.Error(t, err)
	})

	t.Run("explicit false passes", func(t *testing.T) {
		enabled := false
		err := v.ValidateStruct(SetFilterRequest{Enabled: &enabled})
		assert.NoError(t, err, "A present false value is not a missing value")
	})

	t.Run("explicit true passes", func(t *testing.T) {
		enabled := true
		err := v.ValidateStruct(SetFilterRequest{Enabled: &enabled})
		assert.NoError(t, err)
	})
}

func TestFormatValidationError(t *testing.T) {
	InitValidator()
	v := GetValidator()

	t.Run("nil error returns nil map", func(t *testing.T) {
		assert.Nil(t, FormatValidationError(nil))
	})

	t.Run("min violation names the bound", func(t *testing.T) {
		err := v.ValidateStruct(ToggleNumberRequest{Number: 0})
		require.Error(t, err)

		fields := FormatValidationError(err)
		require.Contains(t, fields, "number")
		assert.Equal(t, "Must be at least 1", fields["number"])
	})

	t.Run("max violation names the bound", func(t *testing.T) {
		err := v.ValidateStruct(ToggleNumberRequest{Number: 99})
		require.Error(t, err)

		fields := FormatValidationError(err)
		require.Contains(t, fields, "number")
		assert.Equal(t, "Must be at most 60", fields["number"])
	})

	t.Run("required violation", func(t *testing.T) {
		err := v.ValidateStruct(SetFilterRequest{})
		require.Error(t, err)

		fields := FormatValidationError(err)
		require.Contains(t, fields, "enabled")
		assert.Equal(t, "This field is required", fields["enabled"])
	})

	t.Run("non-validator error gets generic entry", func(t *testing.T) {
		fields := FormatValidationError(assert.AnError)
		assert.Equal(t, map[string]string{"error": "Invalid request format"}, fields)
	})
}

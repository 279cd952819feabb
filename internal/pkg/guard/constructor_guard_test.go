package guard_test

import (
	"errors"
	"testing"

	"ordertaking/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("constructed_guard_returns_nil", func(t *testing.T) {
		// Given
		g := guard.NewConstructorGuard()

		// When
		err := g.Validate(errors.New("not constructed"))

		// Then
		require.NoError(t, err)
	})

	t.Run("constructed_guard_ignores_nil_error", func(t *testing.T) {
		require.NoError(t, guard.NewConstructorGuard().Validate(nil))
	})

	t.Run("zero_value_guard_returns_custom_error", func(t *testing.T) {
		// Given
		var g guard.ConstructorGuard
		expected := errors.New("ZipCode must be created via NewZipCode")

		// When
		err := g.Validate(expected)

		// Then
		require.Error(t, err)
		assert.Equal(t, expected, err)
	})

	t.Run("zero_value_guard_returns_default_error_when_nil", func(t *testing.T) {
		// Given
		var g guard.ConstructorGuard

		// When
		err := g.Validate(nil)

		// Then
		require.ErrorIs(t, err, guard.ErrDefaultConstructorGuard)
		assert.Equal(t, "object must be created via its constructor", err.Error())
	})
}

// TestConstructorGuardEmbedded shows the guard inside a value object the way kernel types use it.
func TestConstructorGuardEmbedded(t *testing.T) {
	errCodeNotConstructed := errors.New("Code must be created via newCode")

	type code struct {
		value string
		guard guard.ConstructorGuard
	}

	newCode := func(value string) (code, error) {
		if value == "" {
			return code{}, errors.New("code is required")
		}
		return code{value: value, guard: guard.NewConstructorGuard()}, nil
	}

	t.Run("constructed_value_passes", func(t *testing.T) {
		c, err := newCode("W1234")

		require.NoError(t, err)
		require.NoError(t, c.guard.Validate(errCodeNotConstructed))
	})

	t.Run("struct_literal_fails", func(t *testing.T) {
		c := code{value: "W1234"}

		assert.Equal(t, errCodeNotConstructed, c.guard.Validate(errCodeNotConstructed))
	})

	t.Run("constructed_values_compare_structurally", func(t *testing.T) {
		a, _ := newCode("W1234")
		b, _ := newCode("W1234")

		assert.Equal(t, a, b)
		assert.True(t, a == b)
	})
}

func BenchmarkConstructorGuard_Validate(b *testing.B) {
	g := guard.NewConstructorGuard()
	err := errors.New("not constructed")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.Validate(err)
	}
}

package option_test

import (
	"strconv"
	"testing"

	"ordertaking/internal/pkg/option"

	"github.com/stretchr/testify/assert"
)

func TestOption(t *testing.T) {
	t.Run("some", func(t *testing.T) {
		o := option.Some("Oak Street")

		v, ok := o.Get()
		assert.True(t, ok)
		assert.True(t, o.IsSome())
		assert.Equal(t, "Oak Street", v)
		assert.Equal(t, "Oak Street", o.OrElse("fallback"))
	})

	t.Run("none_and_zero_value_are_equal", func(t *testing.T) {
		var zero option.Option[string]

		assert.Equal(t, option.None[string](), zero)
		assert.True(t, zero.IsNone())
		assert.Equal(t, "fallback", zero.OrElse("fallback"))
	})

	t.Run("map", func(t *testing.T) {
		assert.Equal(t, option.Some("7"), option.Map(option.Some(7), strconv.Itoa))
		assert.True(t, option.Map(option.None[int](), strconv.Itoa).IsNone())
	})
}

func TestValues(t *testing.T) {
	got := option.Values(option.Some("ack"), option.None[string](), option.Some("ship"))

	assert.Equal(t, []string{"ack", "ship"}, got)
	assert.Empty(t, option.Values[int]())
}

func TestZip(t *testing.T) {
	t.Run("both_present", func(t *testing.T) {
		got := option.Zip(option.Some("ack"), option.Some(35))

		pair, ok := got.Get()
		assert.True(t, ok)
		assert.Equal(t, option.Pair[string, int]{First: "ack", Second: 35}, pair)
	})

	t.Run("either_absent", func(t *testing.T) {
		assert.True(t, option.Zip(option.None[string](), option.Some(35)).IsNone())
		assert.True(t, option.Zip(option.Some("ack"), option.None[int]()).IsNone())
		assert.True(t, option.Zip(option.None[string](), option.None[int]()).IsNone())
	})
}

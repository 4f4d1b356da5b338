package values_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/theepicsaxguy/Mastowatch-sub001/errors"
	"github.com/theepicsaxguy/Mastowatch-sub001/values"
)

type color string

const (
	colorRed  color = "red"
	colorBlue color = "blue"
)

func TestUnmarshalEnum_Success(t *testing.T) {
	t.Parallel()

	var c color
	require.NoError(t, values.UnmarshalEnum([]byte(`"blue"`), &c, colorRed, colorBlue))
	assert.Equal(t, colorBlue, c)
}

func TestUnmarshalEnum_Error(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		input string
	}{
		{name: "unknown member", input: `"green"`},
		{name: "wrong case", input: `"RED"`},
		{name: "not a string", input: `1`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := colorRed
			err := values.UnmarshalEnum([]byte(tt.input), &c, colorRed, colorBlue)
			require.Error(t, err)
			assert.ErrorIs(t, err, errors.ErrInvalidEnumValue)
			assert.Equal(t, colorRed, c, "target should be untouched on failure")
		})
	}
}

func TestParseEnum_Success(t *testing.T) {
	t.Parallel()

	c, err := values.ParseEnum("red", colorRed, colorBlue)
	require.NoError(t, err)
	assert.Equal(t, colorRed, c)
}

package values_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/theepicsaxguy/Mastowatch-sub001/errors"
	"github.com/theepicsaxguy/Mastowatch-sub001/json"
	"github.com/theepicsaxguy/Mastowatch-sub001/values"
)

func TestDate_RoundTrip_Success(t *testing.T) {
	t.Parallel()

	var d values.Date
	require.NoError(t, json.Unmarshal([]byte(`"2024-02-29"`), &d))
	assert.Equal(t, values.Date{Year: 2024, Month: time.February, Day: 29}, d)

	data, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2024-02-29"`, string(data))
}

func TestDate_Helpers_Success(t *testing.T) {
	t.Parallel()

	ts := time.Date(2023, time.July, 4, 23, 59, 0, 0, time.UTC)
	d := values.DateOf(ts)
	assert.Equal(t, "2023-07-04", d.String())
	assert.Equal(t, time.Date(2023, time.July, 4, 0, 0, 0, 0, time.UTC), d.In(time.UTC))
	assert.False(t, d.IsZero())
	assert.True(t, values.Date{}.IsZero())

	text, err := d.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "2023-07-04", string(text))
}

func TestDate_Unmarshal_Error(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		input string
	}{
		{name: "datetime", input: `"2024-02-29T10:00:00Z"`},
		{name: "invalid day", input: `"2023-02-29"`},
		{name: "not a string", input: `20240229`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var d values.Date
			err := json.Unmarshal([]byte(tt.input), &d)
			require.Error(t, err)
			assert.ErrorIs(t, err, errors.ErrInvalidDate)
		})
	}
}

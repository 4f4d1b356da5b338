package errors_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/theepicsaxguy/Mastowatch-sub001/errors"
)

func TestError_Wrap_Success(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name        string
		err         errors.Error
		cause       error
		expectedMsg string
	}{
		{
			name:        "wrap with cause",
			err:         errors.ErrMissingRequiredField,
			cause:       errors.New(`field "id"`),
			expectedMsg: `missing required field -- field "id"`,
		},
		{
			name:        "wrap with nil cause",
			err:         errors.ErrInvalidEnumValue,
			cause:       nil,
			expectedMsg: "invalid enum value",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			wrapped := tt.err.Wrap(tt.cause)
			assert.Equal(t, tt.expectedMsg, wrapped.Error())
		})
	}
}

func TestError_Is_Success(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		err      error
		target   error
		expected bool
	}{
		{
			name:     "wrapped sentinel matches sentinel",
			err:      errors.ErrNoVariantMatched.Wrap(errors.New("tried 3 variants")),
			target:   errors.ErrNoVariantMatched,
			expected: true,
		},
		{
			name:     "sentinel wrapped by fmt matches",
			err:      fmt.Errorf("decoding account: %w", errors.ErrNotJSONObject.Wrap(nil)),
			target:   errors.ErrNotJSONObject,
			expected: true,
		},
		{
			name:     "different sentinel does not match",
			err:      errors.ErrInvalidDate.Wrap(errors.New("2024-13-01")),
			target:   errors.ErrInvalidEnumValue,
			expected: false,
		},
		{
			name:     "nil error",
			err:      nil,
			target:   errors.ErrMissingToken,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, errors.Is(tt.err, tt.target))
		})
	}
}

func TestError_As_Success(t *testing.T) {
	t.Parallel()

	var target errors.Error
	wrapped := errors.ErrInvalidConfig.Wrap(errors.New("base_url is required"))
	require.True(t, errors.As(wrapped, &target), "should extract the sentinel")
	assert.Equal(t, errors.ErrInvalidConfig, target)
}

func TestUnexpectedStatusError_Success(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("create app: %w", &errors.UnexpectedStatusError{StatusCode: 418, Content: []byte("I'm a teapot")})

	var statusErr *errors.UnexpectedStatusError
	require.True(t, errors.As(err, &statusErr), "should unwrap to UnexpectedStatusError")
	assert.Equal(t, 418, statusErr.StatusCode)
	assert.Equal(t, []byte("I'm a teapot"), statusErr.Content)
	assert.Equal(t, "unexpected status code: 418\n\nResponse content:\nI'm a teapot", statusErr.Error())
}

func TestUnexpectedStatusError_InvalidUTF8_Success(t *testing.T) {
	t.Parallel()

	err := &errors.UnexpectedStatusError{StatusCode: 500, Content: []byte{'o', 'k', 0xff}}
	assert.Equal(t, "unexpected status code: 500\n\nResponse content:\nok", err.Error())
}

func TestDecodeError_Success(t *testing.T) {
	t.Parallel()

	cause := errors.ErrMissingRequiredField.Wrap(errors.New(`field "id"`))
	err := &errors.DecodeError{Operation: "getAccount", StatusCode: 200, Err: cause}

	assert.Equal(t, `getAccount: decoding 200 response: missing required field -- field "id"`, err.Error())
	assert.True(t, errors.Is(err, errors.ErrMissingRequiredField), "should unwrap to the cause")
}

func TestJoin_Success(t *testing.T) {
	t.Parallel()
	err1 := errors.New("error 1")
	err2 := errors.New("error 2")

	tests := []struct {
		name     string
		errs     []error
		expected []error
	}{
		{
			name:     "join multiple errors",
			errs:     []error{err1, err2},
			expected: []error{err1, err2},
		},
		{
			name:     "join with nil error",
			errs:     []error{err1, nil},
			expected: []error{err1},
		},
		{
			name:     "join empty slice",
			errs:     []error{},
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			joined := errors.Join(tt.errs...)
			assert.Equal(t, tt.expected, errors.UnwrapErrors(joined))
		})
	}
}

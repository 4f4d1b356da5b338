package testutils_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/theepicsaxguy/Mastowatch-sub001/internal/testutils"
)

func TestWith_Success(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		path     string
		value    any
		expected string
	}{
		{name: "replace", path: "error", value: "Gone", expected: `{"error":"Gone"}`},
		{name: "add", path: "error_description", value: "why", expected: `{"error":"Record not found","error_description":"why"}`},
		{name: "delete", path: "error", value: nil, expected: `{}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.JSONEq(t, tt.expected, testutils.With(t, testutils.ErrorJSON, tt.path, tt.value))
		})
	}
}

func TestWithRaw_Success(t *testing.T) {
	t.Parallel()

	doc := testutils.WithRaw(t, testutils.ErrorJSON, "details", `{"text":[]}`)
	assert.JSONEq(t, `{"error":"Record not found","details":{"text":[]}}`, doc)
}

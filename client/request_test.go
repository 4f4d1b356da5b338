package client_test

import (
	"bytes"
	"mime"
	"mime/multipart"
	"net/http"
	"net/url"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/theepicsaxguy/Mastowatch-sub001/client"
	"github.com/theepicsaxguy/Mastowatch-sub001/internal/testutils"
	"github.com/theepicsaxguy/Mastowatch-sub001/marshaller"
	"github.com/theepicsaxguy/Mastowatch-sub001/pointer"
	"github.com/theepicsaxguy/Mastowatch-sub001/values"
)

func TestFormatPath_Success(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		template string
		args     []any
		expected string
	}{
		{name: "no placeholders", template: "/api/v1/instance", expected: "/api/v1/instance"},
		{name: "single", template: "/api/v1/accounts/{id}", args: []any{"109"}, expected: "/api/v1/accounts/109"},
		{name: "escaped", template: "/api/v1/accounts/{id}/statuses", args: []any{"a/b c"}, expected: "/api/v1/accounts/a%2Fb%20c/statuses"},
		{name: "dot segment", template: "/api/v1/accounts/{id}", args: []any{"."}, expected: "/api/v1/accounts/%2E"},
		{name: "parent segment", template: "/api/v1/accounts/{id}/statuses", args: []any{".."}, expected: "/api/v1/accounts/%2E%2E/statuses"},
		{name: "dots inside a value", template: "/api/v1/accounts/{id}", args: []any{"a..b"}, expected: "/api/v1/accounts/a..b"},
		{name: "multiple in order", template: "/api/v1/lists/{id}/accounts/{account_id}", args: []any{1, "2"}, expected: "/api/v1/lists/1/accounts/2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			actual, err := client.FormatPath(tt.template, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, actual)
		})
	}
}

type visibility string

func TestParams_Success(t *testing.T) {
	t.Parallel()

	q := url.Values{}
	require.NoError(t, client.AddParam(q, "limit", pointer.From(20)))
	require.NoError(t, client.AddParam(q, "local", pointer.From(true)))
	require.NoError(t, client.AddParam(q, "remote", pointer.From(false)))
	require.NoError(t, client.AddParam(q, "visibility", pointer.From(visibility("unlisted"))))
	require.NoError(t, client.AddParam(q, "since", pointer.From(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))))
	require.NoError(t, client.AddParam[string](q, "max_id", nil))
	require.NoError(t, client.AddNullableParam(q, "min_id", values.Nullable[string]{}))
	require.NoError(t, client.AddNullableParam(q, "since_id", values.Null[string]()))
	require.NoError(t, client.AddNullableParam(q, "account_id", values.From("7")))
	require.NoError(t, client.AddListParam(q, "id", []string{"1", "2", "3"}))

	assert.Equal(t, url.Values{
		"limit":      {"20"},
		"local":      {"true"},
		"remote":     {"false"},
		"visibility": {"unlisted"},
		"since":      {"2024-01-01T12:00:00Z"},
		"account_id": {"7"},
		"id":         {"1", "2", "3"},
	}, q, "absent and null values should be left out")
}

func TestRequest_ListQuery_Success(t *testing.T) {
	t.Parallel()

	srv := testutils.NewServer(t, testutils.RespondJSON(http.StatusOK, `[]`))
	c, err := client.New(srv.URL)
	require.NoError(t, err)

	req := client.NewRequest(http.MethodGet, "/api/v1/accounts/familiar_followers")
	require.NoError(t, client.AddListParam(req.Query, "id", []int{1, 2, 3}))

	_, err = c.Execute(t.Context(), req)
	require.NoError(t, err)

	assert.Equal(t, "id=1&id=2&id=3", srv.LastRequest(t).RawQuery)
}

func TestRequest_Bodies_Success(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name          string
		body          client.Body
		expectedType  string
		expectedBytes string
	}{
		{
			name:          "json",
			body:          client.JSONBody(map[string]string{"status": "<b>hi</b>"}),
			expectedType:  "application/json",
			expectedBytes: `{"status":"<b>hi</b>"}`,
		},
		{
			name:          "form",
			body:          client.FormBody(url.Values{"grant_type": {"client_credentials"}, "scope": {"read write"}}),
			expectedType:  "application/x-www-form-urlencoded",
			expectedBytes: "grant_type=client_credentials&scope=read+write",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			srv := testutils.NewServer(t, testutils.RespondJSON(http.StatusOK, `{}`))
			c, err := client.New(srv.URL)
			require.NoError(t, err)

			req := client.NewRequest(http.MethodPost, "/x")
			req.Body = tt.body
			_, err = c.Execute(t.Context(), req)
			require.NoError(t, err)

			got := srv.LastRequest(t)
			assert.Equal(t, tt.expectedType, got.Header.Get("Content-Type"))
			assert.Equal(t, tt.expectedBytes, string(got.Body))
		})
	}
}

func TestRequest_MultipartBody_Success(t *testing.T) {
	t.Parallel()

	srv := testutils.NewServer(t, testutils.RespondJSON(http.StatusOK, `{}`))
	c, err := client.New(srv.URL)
	require.NoError(t, err)

	req := client.NewRequest(http.MethodPost, "/api/v2/media")
	req.Body = client.MultipartBody([]marshaller.Part{
		marshaller.FilePart("file", values.NewFile("a.png", []byte{1, 2, 3}, "image/png")),
		marshaller.TextPart("description", "alt"),
	})
	_, err = c.Execute(t.Context(), req)
	require.NoError(t, err)

	got := srv.LastRequest(t)
	mediaType, params, err := mime.ParseMediaType(got.Header.Get("Content-Type"))
	require.NoError(t, err)
	assert.Equal(t, "multipart/form-data", mediaType)
	require.NotEmpty(t, params["boundary"])

	form, err := multipart.NewReader(bytes.NewReader(got.Body), params["boundary"]).ReadForm(1 << 20)
	require.NoError(t, err)
	assert.Equal(t, []string{"alt"}, form.Value["description"])
	require.Len(t, form.File["file"], 1)
	assert.Equal(t, "a.png", form.File["file"][0].Filename)
	assert.Equal(t, "image/png", form.File["file"][0].Header.Get("Content-Type"))
	assert.EqualValues(t, 3, form.File["file"][0].Size)
}

func TestNewIdempotencyKey_Success(t *testing.T) {
	t.Parallel()

	a := client.NewIdempotencyKey()
	b := client.NewIdempotencyKey()
	assert.NotEqual(t, a, b)

	_, err := uuid.Parse(a)
	require.NoError(t, err)
}

package streaming_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/theepicsaxguy/Mastowatch-sub001/api/streaming"
	"github.com/theepicsaxguy/Mastowatch-sub001/client"
	"github.com/theepicsaxguy/Mastowatch-sub001/errors"
	"github.com/theepicsaxguy/Mastowatch-sub001/internal/testutils"
	"github.com/theepicsaxguy/Mastowatch-sub001/pointer"
)

func TestGetStreamingHealth_Success(t *testing.T) {
	t.Parallel()

	srv := testutils.NewServer(t, testutils.Respond(http.StatusOK, "text/plain", "OK"))

	resp, err := streaming.GetStreamingHealth(t.Context(), srv.NewClient(t))
	require.NoError(t, err)
	require.NotNil(t, resp.Text)
	assert.Equal(t, "OK", *resp.Text)

	req := srv.LastRequest(t)
	assert.Empty(t, req.Header.Get("Authorization"))
	assert.Equal(t, "/api/v1/streaming/health", req.Path)
}

func TestGetStreamingHealth_Unavailable_Error(t *testing.T) {
	t.Parallel()

	srv := testutils.NewServer(t, testutils.Respond(http.StatusBadGateway, "text/html", "<h1>502</h1>"))

	_, err := streaming.GetStreamingHealthAsync(t.Context(), srv.NewClient(t, client.WithRaiseOnUnexpectedStatus(true))).Await(t.Context())
	require.Error(t, err)

	var statusErr *errors.UnexpectedStatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusBadGateway, statusErr.StatusCode)
	assert.Equal(t, "<h1>502</h1>", string(statusErr.Content))
}

func TestGetUserStream_Success(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name        string
		status      int
		body        string
		expectError bool
	}{
		{name: "opened", status: http.StatusOK, body: ``},
		{name: "bad token", status: http.StatusUnauthorized, body: `{"error":"Error: Invalid access token"}`, expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			srv := testutils.NewServer(t, testutils.RespondJSON(tt.status, tt.body))

			resp, err := streaming.GetUserStreamDetailed(t.Context(), srv.NewAuthenticatedClient(t))
			require.NoError(t, err)
			require.True(t, resp.IsParsed())
			assert.Equal(t, tt.expectError, resp.Parsed.Error != nil)
			assert.Equal(t, "Bearer "+testutils.Token, srv.LastRequest(t).Header.Get("Authorization"))
		})
	}
}

func TestGetPublicStream_Success(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name          string
		params        streaming.GetPublicStreamParams
		expectedQuery string
	}{
		{name: "everything", params: streaming.GetPublicStreamParams{}, expectedQuery: ""},
		{name: "media only", params: streaming.GetPublicStreamParams{OnlyMedia: pointer.From(true)}, expectedQuery: "only_media=true"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			srv := testutils.NewServer(t, testutils.RespondJSON(http.StatusOK, ``))

			resp, err := streaming.GetPublicStreamAsync(t.Context(), srv.NewClient(t), tt.params).Await(t.Context())
			require.NoError(t, err)
			assert.Nil(t, resp.Error)
			assert.Equal(t, tt.expectedQuery, srv.LastRequest(t).RawQuery)
		})
	}
}

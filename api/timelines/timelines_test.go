package timelines_test

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/theepicsaxguy/Mastowatch-sub001/api"
	"github.com/theepicsaxguy/Mastowatch-sub001/api/timelines"
	"github.com/theepicsaxguy/Mastowatch-sub001/internal/testutils"
	"github.com/theepicsaxguy/Mastowatch-sub001/pointer"
)

func TestGetHomeTimeline_Success(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name          string
		status        int
		body          string
		expectedCount int
	}{
		{name: "feed", status: http.StatusOK, body: `[` + testutils.StatusJSON("2") + `,` + testutils.StatusJSON("1") + `]`, expectedCount: 2},
		{name: "regenerating", status: http.StatusPartialContent, body: ``, expectedCount: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			srv := testutils.NewServer(t, testutils.RespondJSON(tt.status, tt.body))

			resp, err := timelines.GetHomeTimelineDetailed(t.Context(), srv.NewAuthenticatedClient(t), api.Pagination{
				SinceID: pointer.From("0"),
				MinID:   pointer.From("1"),
			})
			require.NoError(t, err)
			require.True(t, resp.IsParsed())
			assert.Len(t, resp.Parsed.Statuses, tt.expectedCount)
			assert.Equal(t, tt.status, resp.StatusCode)

			assert.Equal(t, url.Values{"since_id": {"0"}, "min_id": {"1"}}, srv.LastRequest(t).Query)
		})
	}
}

func TestGetPublicTimeline_Success(t *testing.T) {
	t.Parallel()

	srv := testutils.NewServer(t, testutils.RespondJSON(http.StatusOK, `[`+testutils.StatusJSON("1")+`]`))

	resp, err := timelines.GetPublicTimelineAsync(t.Context(), srv.NewClient(t), timelines.GetPublicTimelineParams{
		Local:     pointer.From(true),
		OnlyMedia: pointer.From(false),
	}).Await(t.Context())
	require.NoError(t, err)
	require.Len(t, resp.Statuses, 1)

	req := srv.LastRequest(t)
	assert.Equal(t, "/api/v1/timelines/public", req.Path)
	assert.Equal(t, "local=true&only_media=false", req.RawQuery)
	assert.Empty(t, req.Header.Get("Authorization"))
}

func TestGetPublicTimeline_ValidationError_Success(t *testing.T) {
	t.Parallel()

	srv := testutils.NewServer(t, testutils.RespondJSON(http.StatusUnprocessableEntity, testutils.ValidationErrorJSON))

	resp, err := timelines.GetPublicTimeline(t.Context(), srv.NewClient(t), timelines.GetPublicTimelineParams{
		Pagination: api.Pagination{Limit: pointer.From(-1)},
	})
	require.NoError(t, err)
	require.NotNil(t, resp.ValidationError)
	assert.Nil(t, resp.Statuses)
	assert.Equal(t, "-1", srv.LastRequest(t).Query.Get("limit"))
}

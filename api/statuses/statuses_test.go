package statuses_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/theepicsaxguy/Mastowatch-sub001/api/statuses"
	"github.com/theepicsaxguy/Mastowatch-sub001/client"
	"github.com/theepicsaxguy/Mastowatch-sub001/internal/testutils"
	"github.com/theepicsaxguy/Mastowatch-sub001/models"
	"github.com/theepicsaxguy/Mastowatch-sub001/pointer"
	"golang.org/x/sync/errgroup"
)

const scheduledStatusJSON = `{"id":"3","scheduled_at":"2030-01-01T00:00:00Z","params":{"text":"later",` +
	`"visibility":"private","application_id":1,"with_rate_limit":false,"poll":null,"media_ids":null},"media_attachments":[]}`

func TestCreateStatus_IdempotencyKey_Success(t *testing.T) {
	t.Parallel()

	srv := testutils.NewServer(t, testutils.RespondJSON(http.StatusOK, testutils.StatusJSON("1")))

	resp, err := statuses.CreateStatus(t.Context(), srv.NewAuthenticatedClient(t),
		models.CreateStatusBody{TextStatus: &models.TextStatus{Status: "hi"}},
		statuses.CreateStatusParams{IdempotencyKey: pointer.From("k1")},
	)
	require.NoError(t, err)
	require.NotNil(t, resp.Status)
	assert.Nil(t, resp.ScheduledStatus)
	assert.Equal(t, "1", resp.Status.ID)

	req := srv.LastRequest(t)
	assert.Equal(t, "k1", req.Header.Get("Idempotency-Key"))
	assert.Equal(t, "application/json", req.Header.Get("Content-Type"))
	assert.JSONEq(t, `{"status":"hi"}`, string(req.Body))
}

func TestCreateStatus_Scheduled_Success(t *testing.T) {
	t.Parallel()

	srv := testutils.NewServer(t, testutils.RespondJSON(http.StatusOK, scheduledStatusJSON))

	at := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)
	resp, err := statuses.CreateStatusDetailed(t.Context(), srv.NewAuthenticatedClient(t),
		models.CreateStatusBody{TextStatus: &models.TextStatus{
			Status:        "later",
			StatusOptions: models.StatusOptions{ScheduledAt: &at, Visibility: pointer.From(models.StatusVisibilityPrivate)},
		}},
		statuses.CreateStatusParams{},
	)
	require.NoError(t, err)
	require.NotNil(t, resp.Parsed.ScheduledStatus)
	assert.Nil(t, resp.Parsed.Status, "a scheduled status has no uri")
	assert.Equal(t, "later", resp.Parsed.ScheduledStatus.Params.Text)

	req := srv.LastRequest(t)
	assert.Empty(t, req.Header.Get("Idempotency-Key"))
	assert.JSONEq(t, `{"status":"later","visibility":"private","scheduled_at":"2030-01-01T00:00:00Z"}`, string(req.Body))
}

func TestCreateStatus_ValidationError_Success(t *testing.T) {
	t.Parallel()

	srv := testutils.NewServer(t, testutils.RespondJSON(http.StatusUnprocessableEntity, testutils.ValidationErrorJSON))

	resp, err := statuses.CreateStatus(t.Context(), srv.NewAuthenticatedClient(t, client.WithRaiseOnUnexpectedStatus(true)),
		models.CreateStatusBody{MediaStatus: &models.MediaStatus{MediaIDs: []string{"22"}}},
		statuses.CreateStatusParams{},
	)
	require.NoError(t, err)
	require.NotNil(t, resp.ValidationError)
	assert.Equal(t, "ERR_BLANK", resp.ValidationError.Details["text"][0].Error)
}

func TestCreateStatus_EmptyBody_Error(t *testing.T) {
	t.Parallel()

	srv := testutils.NewServer(t, testutils.RespondJSON(http.StatusOK, testutils.StatusJSON("1")))

	_, err := statuses.CreateStatus(t.Context(), srv.NewAuthenticatedClient(t), models.CreateStatusBody{}, statuses.CreateStatusParams{})
	require.Error(t, err)
	assert.Empty(t, srv.Requests(), "nothing is sent when the body cannot be encoded")
}

func TestGetStatus_Gone_Success(t *testing.T) {
	t.Parallel()

	srv := testutils.NewServer(t, testutils.Respond(http.StatusGone, "", ""))

	resp, err := statuses.GetStatusDetailed(t.Context(), srv.NewClient(t), "1")
	require.NoError(t, err)
	assert.Equal(t, http.StatusGone, resp.StatusCode)
	require.True(t, resp.IsParsed())
	assert.Nil(t, resp.Parsed.Status)
	assert.Nil(t, resp.Parsed.Error)
}

func TestDeleteStatus_Success(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name          string
		params        statuses.DeleteStatusParams
		expectedQuery string
	}{
		{name: "keep media", params: statuses.DeleteStatusParams{}, expectedQuery: ""},
		{name: "delete media", params: statuses.DeleteStatusParams{DeleteMedia: pointer.From(true)}, expectedQuery: "delete_media=true"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			srv := testutils.NewServer(t, testutils.RespondJSON(http.StatusOK, testutils.StatusJSON("4")))

			resp, err := statuses.DeleteStatus(t.Context(), srv.NewAuthenticatedClient(t), "4", tt.params)
			require.NoError(t, err)
			require.NotNil(t, resp.Status)

			req := srv.LastRequest(t)
			assert.Equal(t, http.MethodDelete, req.Method)
			assert.Equal(t, "/api/v1/statuses/4", req.Path)
			assert.Equal(t, tt.expectedQuery, req.RawQuery)
		})
	}
}

func TestGetStatusContext_Success(t *testing.T) {
	t.Parallel()

	srv := testutils.NewServer(t, testutils.RespondJSON(http.StatusOK,
		`{"ancestors":[`+testutils.StatusJSON("1")+`],"descendants":[`+testutils.StatusJSON("3")+`,`+testutils.StatusJSON("4")+`]}`))

	resp, err := statuses.GetStatusContext(t.Context(), srv.NewClient(t), "2")
	require.NoError(t, err)
	require.NotNil(t, resp.Context)
	assert.Len(t, resp.Context.Ancestors, 1)
	assert.Len(t, resp.Context.Descendants, 2)
}

func TestGetStatus_Concurrent_Success(t *testing.T) {
	t.Parallel()

	srv := testutils.NewServer(t, testutils.RespondJSON(http.StatusOK, testutils.StatusJSON("1")))
	c := srv.NewClient(t)

	futures := make([]*client.Future[*statuses.GetStatusResponse], 8)
	for i := range futures {
		futures[i] = statuses.GetStatusAsync(t.Context(), c, "1")
	}

	results, err := client.AwaitAll(t.Context(), futures...)
	require.NoError(t, err)
	require.Len(t, results, len(futures))
	for _, r := range results {
		assert.Equal(t, "1", r.Status.ID)
	}

	var g errgroup.Group
	for range 4 {
		g.Go(func() error {
			_, err := statuses.GetStatus(t.Context(), c, "1")
			return err
		})
	}
	require.NoError(t, g.Wait())
	assert.Len(t, srv.Requests(), 12)
}

func TestGetStatusAsync_Cancelled_Error(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	srv := testutils.NewServer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	t.Cleanup(func() { close(release) })

	ctx, cancel := context.WithCancel(t.Context())
	future := statuses.GetStatusAsync(ctx, srv.NewClient(t), "1")
	cancel()

	_, err := future.Await(t.Context())
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

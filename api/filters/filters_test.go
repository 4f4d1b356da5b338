package filters_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/theepicsaxguy/Mastowatch-sub001/api/filters"
	"github.com/theepicsaxguy/Mastowatch-sub001/internal/testutils"
	"github.com/theepicsaxguy/Mastowatch-sub001/models"
	"github.com/theepicsaxguy/Mastowatch-sub001/pointer"
	"github.com/theepicsaxguy/Mastowatch-sub001/validation"
)

func TestGetFilters_Success(t *testing.T) {
	t.Parallel()

	srv := testutils.NewServer(t, testutils.RespondJSON(http.StatusOK, `[`+testutils.FilterJSON+`]`))

	resp, err := filters.GetFilters(t.Context(), srv.NewAuthenticatedClient(t))
	require.NoError(t, err)
	require.Len(t, resp.Filters, 1)

	filter := resp.Filters[0]
	assert.Equal(t, []models.FilterContext{models.FilterContextHome, models.FilterContextPublic}, filter.Context)
	assert.Equal(t, models.FilterActionHide, filter.FilterAction)
	assert.True(t, filter.ExpiresAt.IsNull())
	require.Len(t, filter.Keywords, 1)
	assert.True(t, filter.Keywords[0].WholeWord)

	assert.Empty(t, validation.Validate("Filter", filter))
}

func TestCreateFilter_Success(t *testing.T) {
	t.Parallel()

	srv := testutils.NewServer(t, testutils.RespondJSON(http.StatusOK, testutils.FilterJSON))

	resp, err := filters.CreateFilterDetailed(t.Context(), srv.NewAuthenticatedClient(t), models.CreateFilterBody{
		Title:        "spoilers",
		Context:      []models.FilterContext{models.FilterContextHome, models.FilterContextPublic},
		FilterAction: pointer.From(models.FilterActionHide),
		KeywordsAttributes: []models.FilterKeywordAttributes{
			{Keyword: "finale", WholeWord: pointer.From(true)},
		},
	})
	require.NoError(t, err)
	require.NotNil(t, resp.Parsed.Filter)
	assert.Equal(t, "7", resp.Parsed.Filter.ID)

	assert.JSONEq(t,
		`{"title":"spoilers","context":["home","public"],"filter_action":"hide","keywords_attributes":[{"keyword":"finale","whole_word":true}]}`,
		string(srv.LastRequest(t).Body))
}

func TestCreateFilter_ValidationError_Success(t *testing.T) {
	t.Parallel()

	srv := testutils.NewServer(t, testutils.RespondJSON(http.StatusUnprocessableEntity, `{"error":"Validation failed: Context can't be blank"}`))

	resp, err := filters.CreateFilterAsync(t.Context(), srv.NewAuthenticatedClient(t), models.CreateFilterBody{Title: "x"}).Await(t.Context())
	require.NoError(t, err)
	require.NotNil(t, resp.ValidationError)
	assert.Nil(t, resp.ValidationError.Details)
	assert.Nil(t, resp.Filter)

	assert.JSONEq(t, `{"title":"x","context":null}`, string(srv.LastRequest(t).Body), "a required list is sent even when empty")
}

func TestDeleteFilter_Success(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name        string
		status      int
		body        string
		expectError bool
	}{
		{name: "deleted", status: http.StatusOK, body: `{}`},
		{name: "missing", status: http.StatusNotFound, body: testutils.ErrorJSON, expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			srv := testutils.NewServer(t, testutils.RespondJSON(tt.status, tt.body))

			resp, err := filters.DeleteFilter(t.Context(), srv.NewAuthenticatedClient(t), "7")
			require.NoError(t, err)
			require.NotNil(t, resp)
			assert.Equal(t, tt.expectError, resp.Error != nil)

			req := srv.LastRequest(t)
			assert.Equal(t, http.MethodDelete, req.Method)
			assert.Equal(t, "/api/v2/filters/7", req.Path)
		})
	}
}

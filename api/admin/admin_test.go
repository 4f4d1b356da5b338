package admin_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/theepicsaxguy/Mastowatch-sub001/api"
	"github.com/theepicsaxguy/Mastowatch-sub001/api/admin"
	"github.com/theepicsaxguy/Mastowatch-sub001/internal/testutils"
	"github.com/theepicsaxguy/Mastowatch-sub001/models"
	"github.com/theepicsaxguy/Mastowatch-sub001/pointer"
	"github.com/theepicsaxguy/Mastowatch-sub001/validation"
)

func TestGetDomainBlocks_Success(t *testing.T) {
	t.Parallel()

	srv := testutils.NewServer(t, testutils.RespondJSON(http.StatusOK, `[`+testutils.DomainBlockJSON+`]`))

	resp, err := admin.GetDomainBlocks(t.Context(), srv.NewAuthenticatedClient(t), api.Pagination{Limit: pointer.From(100)})
	require.NoError(t, err)
	require.Len(t, resp.DomainBlocks, 1)

	block := resp.DomainBlocks[0]
	assert.Equal(t, "spam.example", block.Domain)
	assert.Equal(t, models.DomainBlockSeveritySuspend, block.Severity)
	assert.True(t, block.PrivateComment.IsNull())
	assert.Equal(t, "spam", block.PublicComment.GetOrZero())
	assert.Empty(t, validation.Validate("AdminDomainBlock", block))

	req := srv.LastRequest(t)
	assert.Equal(t, "/api/v1/admin/domain_blocks", req.Path)
	assert.Equal(t, "limit=100", req.RawQuery)
	assert.Equal(t, "Bearer "+testutils.Token, req.Header.Get("Authorization"))
}

func TestGetDomainBlocks_Forbidden_Success(t *testing.T) {
	t.Parallel()

	srv := testutils.NewServer(t, testutils.RespondJSON(http.StatusForbidden, `{"error":"This action is not allowed"}`))

	resp, err := admin.GetDomainBlocksAsync(t.Context(), srv.NewAuthenticatedClient(t), api.Pagination{}).Await(t.Context())
	require.NoError(t, err)
	assert.Nil(t, resp.DomainBlocks)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "This action is not allowed", resp.Error.Error)
}

func TestCreateDomainBlock_Success(t *testing.T) {
	t.Parallel()

	srv := testutils.NewServer(t, testutils.RespondJSON(http.StatusOK, testutils.DomainBlockJSON))

	resp, err := admin.CreateDomainBlockDetailed(t.Context(), srv.NewAuthenticatedClient(t), models.CreateDomainBlockBody{
		Domain:        "spam.example",
		Severity:      pointer.From(models.DomainBlockSeveritySuspend),
		RejectMedia:   pointer.From(true),
		RejectReports: pointer.From(true),
		PublicComment: pointer.From("spam"),
	})
	require.NoError(t, err)
	require.NotNil(t, resp.Parsed.DomainBlock)
	assert.Equal(t, "3", resp.Parsed.DomainBlock.ID)

	req := srv.LastRequest(t)
	assert.Equal(t, http.MethodPost, req.Method)
	assert.JSONEq(t,
		`{"domain":"spam.example","severity":"suspend","reject_media":true,"reject_reports":true,"public_comment":"spam"}`,
		string(req.Body))
}

func TestCreateDomainBlock_StricterBlockExists_Success(t *testing.T) {
	t.Parallel()

	srv := testutils.NewServer(t, testutils.RespondJSON(http.StatusUnprocessableEntity, testutils.ValidationErrorJSON))

	resp, err := admin.CreateDomainBlockAsync(t.Context(), srv.NewAuthenticatedClient(t), models.CreateDomainBlockBody{
		Domain:   "spam.example",
		Severity: pointer.From(models.DomainBlockSeveritySilence),
	}).Await(t.Context())
	require.NoError(t, err)
	assert.Nil(t, resp.DomainBlock)
	require.NotNil(t, resp.ValidationError)
}

func TestDeleteDomainBlock_Success(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name        string
		status      int
		body        string
		expectError bool
	}{
		{name: "lifted", status: http.StatusOK, body: `{}`},
		{name: "not an admin", status: http.StatusForbidden, body: testutils.ErrorJSON, expectError: true},
		{name: "unknown block", status: http.StatusNotFound, body: testutils.ErrorJSON, expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			srv := testutils.NewServer(t, testutils.RespondJSON(tt.status, tt.body))

			resp, err := admin.DeleteDomainBlockDetailedAsync(t.Context(), srv.NewAuthenticatedClient(t), "3").Await(t.Context())
			require.NoError(t, err)
			require.True(t, resp.IsParsed())
			assert.Equal(t, tt.expectError, resp.Parsed.Error != nil)

			req := srv.LastRequest(t)
			assert.Equal(t, http.MethodDelete, req.Method)
			assert.Equal(t, "/api/v1/admin/domain_blocks/3", req.Path)
		})
	}
}

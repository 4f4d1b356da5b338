package media_test

import (
	"bytes"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/theepicsaxguy/Mastowatch-sub001/api/media"
	"github.com/theepicsaxguy/Mastowatch-sub001/internal/testutils"
	"github.com/theepicsaxguy/Mastowatch-sub001/models"
	"github.com/theepicsaxguy/Mastowatch-sub001/pointer"
	"github.com/theepicsaxguy/Mastowatch-sub001/values"
)

type part struct {
	name        string
	fileName    string
	contentType string
	content     string
}

func readParts(t *testing.T, req testutils.RecordedRequest) []part {
	t.Helper()

	mediaType, params, err := mime.ParseMediaType(req.Header.Get("Content-Type"))
	require.NoError(t, err)
	require.Equal(t, "multipart/form-data", mediaType)

	var parts []part
	r := multipart.NewReader(bytes.NewReader(req.Body), params["boundary"])
	for {
		p, err := r.NextPart()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)

		content, err := io.ReadAll(p)
		require.NoError(t, err)
		parts = append(parts, part{
			name:        p.FormName(),
			fileName:    p.FileName(),
			contentType: p.Header.Get("Content-Type"),
			content:     string(content),
		})
	}
	return parts
}

func TestCreateMedia_Multipart_Success(t *testing.T) {
	t.Parallel()

	srv := testutils.NewServer(t, testutils.RespondJSON(http.StatusOK, testutils.MediaAttachmentJSON))

	resp, err := media.CreateMediaDetailed(t.Context(), srv.NewAuthenticatedClient(t), models.CreateMediaBody{
		File:        values.NewFile("a.png", []byte{1, 2, 3}, "image/png"),
		Description: pointer.From("alt"),
	})
	require.NoError(t, err)
	require.NotNil(t, resp.Parsed.MediaAttachment)
	assert.Equal(t, models.MediaTypeImage, resp.Parsed.MediaAttachment.Type)

	req := srv.LastRequest(t)
	assert.Equal(t, "/api/v2/media", req.Path)

	parts := readParts(t, req)
	require.Len(t, parts, 2)
	assert.Equal(t, part{name: "file", fileName: "a.png", contentType: "image/png", content: "\x01\x02\x03"}, parts[0])
	assert.Equal(t, "description", parts[1].name)
	assert.Empty(t, parts[1].fileName)
	assert.Equal(t, "alt", parts[1].content)
}

func TestCreateMedia_Accepted_Success(t *testing.T) {
	t.Parallel()

	srv := testutils.NewServer(t, testutils.RespondJSON(http.StatusAccepted,
		`{"id":"23","type":"image","url":null,"preview_url":null,"description":null}`))

	fsys := fstest.MapFS{"clips/cat.png": {Data: []byte("png")}}
	file, err := values.OpenFile(fsys, "clips/cat.png")
	require.NoError(t, err)
	t.Cleanup(func() { _ = file.Close() })

	resp, err := media.CreateMediaAsync(t.Context(), srv.NewAuthenticatedClient(t), models.CreateMediaBody{File: file}).Await(t.Context())
	require.NoError(t, err)
	require.NotNil(t, resp.MediaAttachment)
	assert.True(t, resp.MediaAttachment.URL.IsNull(), "the url is null while processing")

	parts := readParts(t, srv.LastRequest(t))
	require.Len(t, parts, 1)
	assert.Equal(t, "cat.png", parts[0].fileName)
	assert.Equal(t, "image/png", parts[0].contentType)
}

func TestCreateMediaV1_Success(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		status   int
		body     string
		expected bool
	}{
		{name: "uploaded", status: http.StatusOK, body: testutils.MediaAttachmentJSON, expected: true},
		{name: "202 is not documented for v1", status: http.StatusAccepted, body: testutils.MediaAttachmentJSON, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			srv := testutils.NewServer(t, testutils.RespondJSON(tt.status, tt.body))

			resp, err := media.CreateMediaV1Detailed(t.Context(), srv.NewAuthenticatedClient(t), models.CreateMediaBody{
				File: values.NewFile("a.png", []byte{1}, "image/png"),
			})
			require.NoError(t, err)
			assert.Equal(t, tt.expected, resp.IsParsed())
			assert.Equal(t, "/api/v1/media", srv.LastRequest(t).Path)
		})
	}
}

func TestGetMedia_Processing_Success(t *testing.T) {
	t.Parallel()

	srv := testutils.NewServer(t, testutils.RespondJSON(http.StatusPartialContent, ``))

	resp, err := media.GetMedia(t.Context(), srv.NewAuthenticatedClient(t), "23")
	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.Nil(t, resp.MediaAttachment)
	assert.Equal(t, "/api/v1/media/23", srv.LastRequest(t).Path)
}

func TestUpdateMedia_Success(t *testing.T) {
	t.Parallel()

	srv := testutils.NewServer(t, testutils.RespondJSON(http.StatusOK, testutils.MediaAttachmentJSON))

	resp, err := media.UpdateMedia(t.Context(), srv.NewAuthenticatedClient(t), "22", models.UpdateMediaBody{
		Description: pointer.From("a cat"),
		Focus:       pointer.From("-0.5,0.25"),
	})
	require.NoError(t, err)
	require.NotNil(t, resp.MediaAttachment)

	req := srv.LastRequest(t)
	assert.Equal(t, http.MethodPut, req.Method)

	parts := readParts(t, req)
	require.Len(t, parts, 2)
	assert.Equal(t, "description", parts[0].name)
	assert.Equal(t, "focus", parts[1].name)
	assert.Equal(t, "-0.5,0.25", parts[1].content)
}

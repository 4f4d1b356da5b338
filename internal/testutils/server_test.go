package testutils_test

import (
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/theepicsaxguy/Mastowatch-sub001/internal/testutils"
)

func TestServer_Records_Success(t *testing.T) {
	t.Parallel()

	srv := testutils.NewServer(t, testutils.RespondJSON(http.StatusCreated, `{"ok":true}`))

	req, err := http.NewRequest(http.MethodPost, srv.URL+"/api/v1/x?a=1&a=2", strings.NewReader("payload"))
	require.NoError(t, err)
	req.Header.Set("X-Test", "yes")
	req.AddCookie(&http.Cookie{Name: "session", Value: "abc"})

	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))

	got := srv.LastRequest(t)
	assert.Equal(t, http.MethodPost, got.Method)
	assert.Equal(t, "/api/v1/x", got.Path)
	assert.Equal(t, []string{"1", "2"}, got.Query["a"])
	assert.Equal(t, "yes", got.Header.Get("X-Test"))
	assert.Equal(t, "payload", string(got.Body))
	require.Len(t, got.Cookies, 1)
	assert.Equal(t, "abc", got.Cookies[0].Value)
	assert.Len(t, srv.Requests(), 1)
}

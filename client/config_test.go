package client_test

import (
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/theepicsaxguy/Mastowatch-sub001/client"
	"github.com/theepicsaxguy/Mastowatch-sub001/errors"
	"github.com/theepicsaxguy/Mastowatch-sub001/internal/testutils"
)

func TestLoadConfig_Success(t *testing.T) {
	t.Parallel()

	cfg, err := client.LoadConfig(strings.NewReader(`
base_url: https://mastodon.example
default_headers:
  X-Client: mastowatch
default_cookies:
  session: abc
timeout: 15s
verify_ssl: false
follow_redirects: true
raise_on_unexpected_status: true
token: tok
auth_header_name: Authorization
prefix: Token
languages: [de, en-GB]
`))
	require.NoError(t, err)

	assert.Equal(t, "https://mastodon.example", cfg.BaseURL)
	assert.Equal(t, map[string]string{"X-Client": "mastowatch"}, cfg.DefaultHeaders)
	assert.Equal(t, map[string]string{"session": "abc"}, cfg.DefaultCookies)
	assert.Equal(t, 15*time.Second, cfg.Timeout)
	assert.True(t, cfg.VerifySSL.Disabled)
	assert.True(t, cfg.FollowRedirects)
	assert.True(t, cfg.RaiseOnUnexpectedStatus)
	assert.Equal(t, "tok", cfg.Token)
	require.NotNil(t, cfg.Prefix)
	assert.Equal(t, "Token", *cfg.Prefix)
	assert.Equal(t, []string{"de", "en-GB"}, cfg.Languages)

	c, err := cfg.NewAuthenticatedClient()
	require.NoError(t, err)
	assert.Equal(t, 15*time.Second, c.Timeout())
	assert.True(t, c.RaiseOnUnexpectedStatus())
	assert.True(t, c.HTTPClient().Transport.(*http.Transport).TLSClientConfig.InsecureSkipVerify)
}

func TestLoadConfig_VerifySSL_Success(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		input    string
		expected client.VerifySSL
	}{
		{name: "absent verifies", input: "base_url: https://a.example\n", expected: client.VerifySSL{}},
		{name: "true verifies", input: "base_url: https://a.example\nverify_ssl: true\n", expected: client.VerifySSL{}},
		{name: "false disables", input: "base_url: https://a.example\nverify_ssl: false\n", expected: client.VerifySSL{Disabled: true}},
		{name: "path is a CA bundle", input: "base_url: https://a.example\nverify_ssl: /etc/ca.pem\n", expected: client.VerifySSL{CABundle: "/etc/ca.pem"}},
		{name: "quoted true is a path", input: "base_url: https://a.example\nverify_ssl: \"true\"\n", expected: client.VerifySSL{CABundle: "true"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg, err := client.LoadConfig(strings.NewReader(tt.input))
			require.NoError(t, err)
			assert.Equal(t, tt.expected, cfg.VerifySSL)
		})
	}
}

func TestLoadConfig_Error(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		input string
	}{
		{name: "missing base url", input: "timeout: 1s\n"},
		{name: "unknown key", input: "base_url: https://a.example\nretries: 3\n"},
		{name: "bad duration", input: "base_url: https://a.example\ntimeout: soon\n"},
		{name: "verify_ssl list", input: "base_url: https://a.example\nverify_ssl: [a]\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := client.LoadConfig(strings.NewReader(tt.input))
			require.Error(t, err)
			assert.ErrorIs(t, err, errors.ErrInvalidConfig)
		})
	}
}

func TestConfig_NewClient_Error(t *testing.T) {
	t.Parallel()

	cfg := &client.Config{BaseURL: "https://a.example"}
	_, err := cfg.NewAuthenticatedClient()
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrMissingToken)

	cfg.Languages = []string{"not a language tag"}
	_, err = cfg.NewClient()
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrInvalidConfig)
}

func TestConfig_NewClient_Headers_Success(t *testing.T) {
	t.Parallel()

	srv := testutils.NewServer(t, testutils.RespondJSON(http.StatusOK, `{}`))
	cfg, err := client.LoadConfig(strings.NewReader("base_url: " + srv.URL + `
token: tok
prefix: ""
auth_header_name: X-Token
languages: [fr]
default_headers:
  X-Client: mastowatch
`))
	require.NoError(t, err)

	c, err := cfg.NewAuthenticatedClient()
	require.NoError(t, err)

	_, err = c.Execute(t.Context(), client.NewRequest(http.MethodGet, "/"))
	require.NoError(t, err)

	got := srv.LastRequest(t)
	assert.Equal(t, "tok", got.Header.Get("X-Token"))
	assert.Equal(t, "fr", got.Header.Get("Accept-Language"))
	assert.Equal(t, "mastowatch", got.Header.Get("X-Client"))
}

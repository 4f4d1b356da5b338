package client

import (
	"crypto/x509"
	"fmt"
	"maps"
	"net/http"
	"net/url"
	"slices"
	"strings"
	"time"

	"github.com/theepicsaxguy/Mastowatch-sub001/errors"
	"github.com/theepicsaxguy/Mastowatch-sub001/system"
	"go.uber.org/zap"
	"golang.org/x/text/language"
)

const (
	defaultAuthHeaderName = "Authorization"
	defaultAuthPrefix     = "Bearer"
)

// Option configures a client at construction.
type Option func(*settings) error

// settings is everything a client is built from. Every client owns its own copy.
type settings struct {
	baseURL                 *url.URL
	headers                 map[string]string
	cookies                 map[string]string
	timeout                 time.Duration
	insecureSkipVerify      bool
	rootCAs                 *x509.CertPool
	followRedirects         bool
	raiseOnUnexpectedStatus bool
	httpClient              *http.Client
	logger                  *zap.Logger
	languages               []language.Tag
	authHeaderName          string
	authPrefix              string
}

func newSettings(baseURL string, opts []Option) (settings, error) {
	u, err := parseBaseURL(baseURL)
	if err != nil {
		return settings{}, err
	}

	s := settings{
		baseURL:        u,
		headers:        map[string]string{},
		cookies:        map[string]string{},
		logger:         zap.NewNop(),
		authHeaderName: defaultAuthHeaderName,
		authPrefix:     defaultAuthPrefix,
	}

	for _, opt := range opts {
		if err := opt(&s); err != nil {
			return settings{}, err
		}
	}

	return s, nil
}

func parseBaseURL(raw string) (*url.URL, error) {
	if raw == "" {
		return nil, errors.ErrInvalidConfig.Wrap(errors.New("base URL is required"))
	}

	u, err := url.Parse(raw)
	if err != nil {
		return nil, errors.ErrInvalidConfig.Wrap(err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, errors.ErrInvalidConfig.Wrap(fmt.Errorf("base URL %q must be an absolute http or https URL", raw))
	}

	u.Path = strings.TrimSuffix(u.Path, "/")
	u.RawPath = ""
	return u, nil
}

func (s settings) clone() settings {
	u := *s.baseURL
	s.baseURL = &u
	s.headers = maps.Clone(s.headers)
	s.cookies = maps.Clone(s.cookies)
	s.languages = slices.Clone(s.languages)
	return s
}

// WithHTTPClient makes the client send requests with hc as-is. Timeout, TLS and redirect
// options no longer apply once a caller supplies its own executor.
func WithHTTPClient(hc *http.Client) Option {
	return func(s *settings) error {
		s.httpClient = hc
		return nil
	}
}

// WithTimeout sets the round-trip timeout for every request. Zero means no timeout.
func WithTimeout(d time.Duration) Option {
	return func(s *settings) error {
		s.timeout = d
		return nil
	}
}

// WithHeaders adds default headers sent with every request.
func WithHeaders(headers map[string]string) Option {
	return func(s *settings) error {
		maps.Copy(s.headers, headers)
		return nil
	}
}

// WithCookies adds cookies sent with every request.
func WithCookies(cookies map[string]string) Option {
	return func(s *settings) error {
		maps.Copy(s.cookies, cookies)
		return nil
	}
}

// WithInsecureSkipVerify disables TLS certificate verification.
func WithInsecureSkipVerify() Option {
	return func(s *settings) error {
		s.insecureSkipVerify = true
		return nil
	}
}

// WithCABundle verifies server certificates against the PEM bundle at path instead of the
// system roots.
func WithCABundle(path string) Option {
	return func(s *settings) error {
		pem, err := (&system.FileSystem{}).ReadFile(path)
		if err != nil {
			return errors.ErrInvalidConfig.Wrap(fmt.Errorf("reading CA bundle: %w", err))
		}

		pool := x509.NewCertPool()
		if !pool.AppendCertsFromPEM(pem) {
			return errors.ErrInvalidConfig.Wrap(fmt.Errorf("no certificates found in CA bundle %s", path))
		}

		s.rootCAs = pool
		return nil
	}
}

// WithFollowRedirects makes the client follow redirects. By default the redirect response is
// returned to the operation.
func WithFollowRedirects(follow bool) Option {
	return func(s *settings) error {
		s.followRedirects = follow
		return nil
	}
}

// WithRaiseOnUnexpectedStatus makes operations return an *errors.UnexpectedStatusError for
// status codes the endpoint does not document, instead of a response with nothing parsed.
func WithRaiseOnUnexpectedStatus(raise bool) Option {
	return func(s *settings) error {
		s.raiseOnUnexpectedStatus = raise
		return nil
	}
}

// WithLogger sets the logger requests are reported to at debug level.
func WithLogger(logger *zap.Logger) Option {
	return func(s *settings) error {
		if logger == nil {
			logger = zap.NewNop()
		}
		s.logger = logger
		return nil
	}
}

// WithLanguages sets the Accept-Language header, most preferred first.
func WithLanguages(tags ...language.Tag) Option {
	return func(s *settings) error {
		s.languages = slices.Clone(tags)
		return nil
	}
}

// WithAuthHeader changes the header an authenticated client sends its token in and the prefix
// written before the token. An empty prefix sends the bare token.
func WithAuthHeader(name, prefix string) Option {
	return func(s *settings) error {
		if name == "" {
			return errors.ErrInvalidConfig.Wrap(errors.New("auth header name is required"))
		}
		s.authHeaderName = name
		s.authPrefix = prefix
		return nil
	}
}

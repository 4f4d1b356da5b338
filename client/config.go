package client

import (
	"fmt"
	"io"
	"time"

	"github.com/theepicsaxguy/Mastowatch-sub001/errors"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// Config is the file form of the client options.
//
//	base_url: https://mastodon.example
//	timeout: 10s
//	verify_ssl: /etc/ssl/internal-ca.pem
//	raise_on_unexpected_status: true
//	languages: [de, en]
type Config struct {
	BaseURL                 string            `yaml:"base_url"`
	DefaultHeaders          map[string]string `yaml:"default_headers,omitempty"`
	DefaultCookies          map[string]string `yaml:"default_cookies,omitempty"`
	Timeout                 time.Duration     `yaml:"timeout,omitempty"`
	VerifySSL               VerifySSL         `yaml:"verify_ssl,omitempty"`
	FollowRedirects         bool              `yaml:"follow_redirects,omitempty"`
	RaiseOnUnexpectedStatus bool              `yaml:"raise_on_unexpected_status,omitempty"`
	Token                   string            `yaml:"token,omitempty"`
	AuthHeaderName          string            `yaml:"auth_header_name,omitempty"`
	Prefix                  *string           `yaml:"prefix,omitempty"`
	Languages               []string          `yaml:"languages,omitempty"`
}

// VerifySSL is either a boolean or the path of a CA bundle. The zero value verifies against the
// system roots.
type VerifySSL struct {
	Disabled bool
	CABundle string
}

var _ yaml.Unmarshaler = (*VerifySSL)(nil)

func (v *VerifySSL) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: verify_ssl must be a boolean or a CA bundle path", node.Line)
	}

	if node.ShortTag() == "!!bool" {
		var verify bool
		if err := node.Decode(&verify); err != nil {
			return err
		}
		*v = VerifySSL{Disabled: !verify}
		return nil
	}

	*v = VerifySSL{CABundle: node.Value}
	return nil
}

func (v VerifySSL) MarshalYAML() (any, error) {
	if v.CABundle != "" {
		return v.CABundle, nil
	}

	return !v.Disabled, nil
}

// IsZero reports whether verification uses the system roots.
func (v VerifySSL) IsZero() bool {
	return !v.Disabled && v.CABundle == ""
}

// LoadConfig reads a YAML client configuration. Unknown keys are rejected.
func LoadConfig(r io.Reader) (*Config, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var cfg Config
	if err := dec.Decode(&cfg); err != nil {
		return nil, errors.ErrInvalidConfig.Wrap(err)
	}

	if cfg.BaseURL == "" {
		return nil, errors.ErrInvalidConfig.Wrap(errors.New("base_url is required"))
	}

	return &cfg, nil
}

// Options converts the configuration into client options.
func (c *Config) Options() ([]Option, error) {
	opts := []Option{
		WithHeaders(c.DefaultHeaders),
		WithCookies(c.DefaultCookies),
		WithTimeout(c.Timeout),
		WithFollowRedirects(c.FollowRedirects),
		WithRaiseOnUnexpectedStatus(c.RaiseOnUnexpectedStatus),
	}

	switch {
	case c.VerifySSL.Disabled:
		opts = append(opts, WithInsecureSkipVerify())
	case c.VerifySSL.CABundle != "":
		opts = append(opts, WithCABundle(c.VerifySSL.CABundle))
	}

	if c.AuthHeaderName != "" || c.Prefix != nil {
		name := c.AuthHeaderName
		if name == "" {
			name = defaultAuthHeaderName
		}
		prefix := defaultAuthPrefix
		if c.Prefix != nil {
			prefix = *c.Prefix
		}
		opts = append(opts, WithAuthHeader(name, prefix))
	}

	if len(c.Languages) > 0 {
		tags := make([]language.Tag, 0, len(c.Languages))
		for _, l := range c.Languages {
			tag, err := language.Parse(l)
			if err != nil {
				return nil, errors.ErrInvalidConfig.Wrap(fmt.Errorf("language %q: %w", l, err))
			}
			tags = append(tags, tag)
		}
		opts = append(opts, WithLanguages(tags...))
	}

	return opts, nil
}

// NewClient builds an anonymous client from the configuration. extra options are applied last.
func (c *Config) NewClient(extra ...Option) (*Client, error) {
	opts, err := c.Options()
	if err != nil {
		return nil, err
	}

	return New(c.BaseURL, append(opts, extra...)...)
}

// NewAuthenticatedClient builds a client that authenticates with the configured token.
func (c *Config) NewAuthenticatedClient(extra ...Option) (*AuthenticatedClient, error) {
	if c.Token == "" {
		return nil, errors.ErrMissingToken
	}

	opts, err := c.Options()
	if err != nil {
		return nil, err
	}

	return NewAuthenticated(c.BaseURL, c.Token, append(opts, extra...)...)
}

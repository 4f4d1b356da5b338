// Package oauth obtains and revokes access tokens, and adapts registered applications to
// golang.org/x/oauth2 for the authorization code flow.
package oauth

import (
	"context"
	"net/http"
	"strings"

	"github.com/theepicsaxguy/Mastowatch-sub001/client"
	"github.com/theepicsaxguy/Mastowatch-sub001/models"
	"golang.org/x/oauth2"
)

// OutOfBand is the redirect URI that shows the authorization code to the user instead of
// redirecting to an application.
const OutOfBand = "urn:ietf:wg:oauth:2.0:oob"

// Endpoint returns the authorization and token endpoints of the server at baseURL.
func Endpoint(baseURL string) oauth2.Endpoint {
	base := strings.TrimRight(baseURL, "/")
	return oauth2.Endpoint{
		AuthURL:   base + "/oauth/authorize",
		TokenURL:  base + "/oauth/token",
		AuthStyle: oauth2.AuthStyleInParams,
	}
}

// Config returns an oauth2.Config for app on the server at baseURL. It requests the
// application's own scopes unless scopes are given, and redirects to the first registered URI.
func Config(baseURL string, app *models.CredentialApplication, scopes ...string) *oauth2.Config {
	if len(scopes) == 0 {
		scopes = app.Scopes
	}

	redirect := OutOfBand
	switch {
	case app.RedirectURI != nil:
		redirect = *app.RedirectURI
	case len(app.RedirectURIs) > 0:
		redirect = app.RedirectURIs[0]
	}

	return &oauth2.Config{
		ClientID:     app.ClientID,
		ClientSecret: app.ClientSecret,
		Endpoint:     Endpoint(baseURL),
		RedirectURL:  redirect,
		Scopes:       scopes,
	}
}

// NewClient returns a client that authenticates with tok, as obtained from an oauth2.Config.
func NewClient(baseURL string, tok *oauth2.Token, opts ...client.Option) (*client.AuthenticatedClient, error) {
	c, err := client.NewAuthenticated(baseURL, tok.AccessToken, opts...)
	if err != nil {
		return nil, err
	}

	return c.WithAuthHeader("Authorization", tok.Type()), nil
}

// ObtainTokenResponse holds the parsed body of POST /oauth/token.
type ObtainTokenResponse struct {
	Token *models.Token
	Error *models.Error
}

func obtainTokenOperation(body models.TokenRequest) (*client.Operation[ObtainTokenResponse], error) {
	form, err := body.FormValues()
	if err != nil {
		return nil, err
	}

	req := client.NewRequest(http.MethodPost, "/oauth/token")
	req.Body = client.FormBody(form)

	errorBody := client.JSON(func(r *ObtainTokenResponse) **models.Error { return &r.Error })
	return &client.Operation[ObtainTokenResponse]{
		ID:      "obtainToken",
		Request: req,
		Responses: client.Responses[ObtainTokenResponse]{
			http.StatusOK:           client.JSON(func(r *ObtainTokenResponse) **models.Token { return &r.Token }),
			http.StatusBadRequest:   errorBody,
			http.StatusUnauthorized: errorBody,
		},
	}, nil
}

// ObtainTokenDetailed exchanges an authorization code or client credentials for a token.
func ObtainTokenDetailed(ctx context.Context, c client.Caller, body models.TokenRequest) (*client.Response[ObtainTokenResponse], error) {
	op, err := obtainTokenOperation(body)
	if err != nil {
		return nil, err
	}
	return client.Do(ctx, c, op)
}

// ObtainToken is ObtainTokenDetailed without the response envelope.
func ObtainToken(ctx context.Context, c client.Caller, body models.TokenRequest) (*ObtainTokenResponse, error) {
	resp, err := ObtainTokenDetailed(ctx, c, body)
	if err != nil {
		return nil, err
	}
	return resp.Parsed, nil
}

// ObtainTokenDetailedAsync runs ObtainTokenDetailed in the background.
func ObtainTokenDetailedAsync(ctx context.Context, c client.Caller, body models.TokenRequest) *client.Future[*client.Response[ObtainTokenResponse]] {
	return client.Go(ctx, func(ctx context.Context) (*client.Response[ObtainTokenResponse], error) {
		return ObtainTokenDetailed(ctx, c, body)
	})
}

// ObtainTokenAsync runs ObtainToken in the background.
func ObtainTokenAsync(ctx context.Context, c client.Caller, body models.TokenRequest) *client.Future[*ObtainTokenResponse] {
	return client.Go(ctx, func(ctx context.Context) (*ObtainTokenResponse, error) {
		return ObtainToken(ctx, c, body)
	})
}

// RevokeTokenResponse holds the parsed body of POST /oauth/revoke. A successful revocation
// sets no field.
type RevokeTokenResponse struct {
	Error *models.Error
}

func revokeTokenOperation(body models.RevokeTokenRequest) (*client.Operation[RevokeTokenResponse], error) {
	form, err := body.FormValues()
	if err != nil {
		return nil, err
	}

	req := client.NewRequest(http.MethodPost, "/oauth/revoke")
	req.Body = client.FormBody(form)

	return &client.Operation[RevokeTokenResponse]{
		ID:      "revokeToken",
		Request: req,
		Responses: client.Responses[RevokeTokenResponse]{
			http.StatusOK:        client.Empty[RevokeTokenResponse](),
			http.StatusForbidden: client.JSON(func(r *RevokeTokenResponse) **models.Error { return &r.Error }),
		},
	}, nil
}

// RevokeTokenDetailed revokes an access token so it can no longer be used.
func RevokeTokenDetailed(ctx context.Context, c client.Caller, body models.RevokeTokenRequest) (*client.Response[RevokeTokenResponse], error) {
	op, err := revokeTokenOperation(body)
	if err != nil {
		return nil, err
	}
	return client.Do(ctx, c, op)
}

// RevokeToken is RevokeTokenDetailed without the response envelope.
func RevokeToken(ctx context.Context, c client.Caller, body models.RevokeTokenRequest) (*RevokeTokenResponse, error) {
	resp, err := RevokeTokenDetailed(ctx, c, body)
	if err != nil {
		return nil, err
	}
	return resp.Parsed, nil
}

// RevokeTokenDetailedAsync runs RevokeTokenDetailed in the background.
func RevokeTokenDetailedAsync(ctx context.Context, c client.Caller, body models.RevokeTokenRequest) *client.Future[*client.Response[RevokeTokenResponse]] {
	return client.Go(ctx, func(ctx context.Context) (*client.Response[RevokeTokenResponse], error) {
		return RevokeTokenDetailed(ctx, c, body)
	})
}

// RevokeTokenAsync runs RevokeToken in the background.
func RevokeTokenAsync(ctx context.Context, c client.Caller, body models.RevokeTokenRequest) *client.Future[*RevokeTokenResponse] {
	return client.Go(ctx, func(ctx context.Context) (*RevokeTokenResponse, error) {
		return RevokeToken(ctx, c, body)
	})
}

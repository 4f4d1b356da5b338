package models

import (
	"github.com/theepicsaxguy/Mastowatch-sub001/marshaller"
	"github.com/theepicsaxguy/Mastowatch-sub001/values"
)

// Application is a registered client application.
// https://docs.joinmastodon.org/entities/Application/
type Application struct {
	Name         string                  `json:"name"`
	Website      values.Nullable[string] `json:"website,omitzero"`
	Scopes       []string                `json:"scopes,omitzero"`
	RedirectURIs []string                `json:"redirect_uris,omitzero"`
	VapidKey     *string                 `json:"vapid_key,omitzero"`

	AdditionalProperties marshaller.AdditionalProperties `json:"-"`
}

func (a Application) MarshalJSON() ([]byte, error) {
	type application Application
	return marshaller.Marshal(application(a), a.AdditionalProperties)
}

func (a *Application) UnmarshalJSON(data []byte) error {
	type application Application
	return marshaller.Unmarshal(data, (*application)(a), &a.AdditionalProperties)
}

// CredentialApplication is an Application as returned on registration, with its client
// credentials.
// https://docs.joinmastodon.org/entities/Application/#CredentialApplication
type CredentialApplication struct {
	ID                    string                  `json:"id"`
	Name                  string                  `json:"name"`
	Website               values.Nullable[string] `json:"website,omitzero"`
	Scopes                []string                `json:"scopes"`
	RedirectURIs          []string                `json:"redirect_uris"`
	RedirectURI           *string                 `json:"redirect_uri,omitzero"`
	VapidKey              *string                 `json:"vapid_key,omitzero"`
	ClientID              string                  `json:"client_id"`
	ClientSecret          string                  `json:"client_secret"`
	ClientSecretExpiresAt *int64                  `json:"client_secret_expires_at,omitzero"`

	AdditionalProperties marshaller.AdditionalProperties `json:"-"`
}

func (a CredentialApplication) MarshalJSON() ([]byte, error) {
	type credentialApplication CredentialApplication
	return marshaller.Marshal(credentialApplication(a), a.AdditionalProperties)
}

func (a *CredentialApplication) UnmarshalJSON(data []byte) error {
	type credentialApplication CredentialApplication
	return marshaller.Unmarshal(data, (*credentialApplication)(a), &a.AdditionalProperties)
}

// Token is an OAuth access token.
// https://docs.joinmastodon.org/entities/Token/
type Token struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	Scope       string `json:"scope"`
	CreatedAt   int64  `json:"created_at"`

	AdditionalProperties marshaller.AdditionalProperties `json:"-"`
}

func (t Token) MarshalJSON() ([]byte, error) {
	type token Token
	return marshaller.Marshal(token(t), t.AdditionalProperties)
}

func (t *Token) UnmarshalJSON(data []byte) error {
	type token Token
	return marshaller.Unmarshal(data, (*token)(t), &t.AdditionalProperties)
}

package models

import (
	"time"

	"github.com/theepicsaxguy/Mastowatch-sub001/marshaller"
	"github.com/theepicsaxguy/Mastowatch-sub001/values"
)

// Account is a user of the instance or of a remote server.
// https://docs.joinmastodon.org/entities/Account/
type Account struct {
	ID              string                       `json:"id"`
	Username        string                       `json:"username"`
	Acct            string                       `json:"acct"`
	URL             string                       `json:"url"`
	URI             *string                      `json:"uri,omitzero"`
	DisplayName     string                       `json:"display_name"`
	Note            string                       `json:"note"`
	Avatar          string                       `json:"avatar"`
	AvatarStatic    string                       `json:"avatar_static"`
	Header          string                       `json:"header"`
	HeaderStatic    string                       `json:"header_static"`
	Locked          bool                         `json:"locked"`
	Fields          []AccountField               `json:"fields"`
	Emojis          []CustomEmoji                `json:"emojis"`
	Bot             bool                         `json:"bot"`
	Group           bool                         `json:"group"`
	Discoverable    values.Nullable[bool]        `json:"discoverable"`
	Noindex         values.Nullable[bool]        `json:"noindex,omitzero"`
	Indexable       *bool                        `json:"indexable,omitzero"`
	HideCollections values.Nullable[bool]        `json:"hide_collections,omitzero"`
	Moved           values.Nullable[Account]     `json:"moved,omitzero"`
	Suspended       *bool                        `json:"suspended,omitzero"`
	Limited         *bool                        `json:"limited,omitzero"`
	Memorial        values.Nullable[bool]        `json:"memorial,omitzero"`
	CreatedAt       time.Time                    `json:"created_at"`
	LastStatusAt    values.Nullable[values.Date] `json:"last_status_at"`
	StatusesCount   int                          `json:"statuses_count"`
	FollowersCount  int                          `json:"followers_count"`
	FollowingCount  int                          `json:"following_count"`
	Roles           []AccountRole                `json:"roles,omitzero"`

	AdditionalProperties marshaller.AdditionalProperties `json:"-"`
}

func (a Account) MarshalJSON() ([]byte, error) {
	type account Account
	return marshaller.Marshal(account(a), a.AdditionalProperties)
}

func (a *Account) UnmarshalJSON(data []byte) error {
	type account Account
	return marshaller.Unmarshal(data, (*account)(a), &a.AdditionalProperties)
}

// CredentialAccount is the authenticated user's own Account, with its profile source and role.
// https://docs.joinmastodon.org/entities/Account/#CredentialAccount
type CredentialAccount struct {
	ID              string                       `json:"id"`
	Username        string                       `json:"username"`
	Acct            string                       `json:"acct"`
	URL             string                       `json:"url"`
	URI             *string                      `json:"uri,omitzero"`
	DisplayName     string                       `json:"display_name"`
	Note            string                       `json:"note"`
	Avatar          string                       `json:"avatar"`
	AvatarStatic    string                       `json:"avatar_static"`
	Header          string                       `json:"header"`
	HeaderStatic    string                       `json:"header_static"`
	Locked          bool                         `json:"locked"`
	Fields          []AccountField               `json:"fields"`
	Emojis          []CustomEmoji                `json:"emojis"`
	Bot             bool                         `json:"bot"`
	Group           bool                         `json:"group"`
	Discoverable    values.Nullable[bool]        `json:"discoverable"`
	Noindex         values.Nullable[bool]        `json:"noindex,omitzero"`
	Indexable       *bool                        `json:"indexable,omitzero"`
	HideCollections values.Nullable[bool]        `json:"hide_collections,omitzero"`
	Moved           values.Nullable[Account]     `json:"moved,omitzero"`
	Suspended       *bool                        `json:"suspended,omitzero"`
	Limited         *bool                        `json:"limited,omitzero"`
	CreatedAt       time.Time                    `json:"created_at"`
	LastStatusAt    values.Nullable[values.Date] `json:"last_status_at"`
	StatusesCount   int                          `json:"statuses_count"`
	FollowersCount  int                          `json:"followers_count"`
	FollowingCount  int                          `json:"following_count"`
	Source          AccountSource                `json:"source"`
	Role            *AccountRole                 `json:"role,omitzero"`

	AdditionalProperties marshaller.AdditionalProperties `json:"-"`
}

func (a CredentialAccount) MarshalJSON() ([]byte, error) {
	type credentialAccount CredentialAccount
	return marshaller.Marshal(credentialAccount(a), a.AdditionalProperties)
}

func (a *CredentialAccount) UnmarshalJSON(data []byte) error {
	type credentialAccount CredentialAccount
	return marshaller.Unmarshal(data, (*credentialAccount)(a), &a.AdditionalProperties)
}

// AccountSource holds the raw profile values behind the rendered ones.
type AccountSource struct {
	Note                string                  `json:"note"`
	Fields              []AccountField          `json:"fields"`
	Privacy             StatusVisibility        `json:"privacy"`
	Sensitive           bool                    `json:"sensitive"`
	Language            values.Nullable[string] `json:"language"`
	FollowRequestsCount int                     `json:"follow_requests_count"`

	AdditionalProperties marshaller.AdditionalProperties `json:"-"`
}

func (s AccountSource) MarshalJSON() ([]byte, error) {
	type accountSource AccountSource
	return marshaller.Marshal(accountSource(s), s.AdditionalProperties)
}

func (s *AccountSource) UnmarshalJSON(data []byte) error {
	type accountSource AccountSource
	return marshaller.Unmarshal(data, (*accountSource)(s), &s.AdditionalProperties)
}

// AccountRole is a role granted to an account.
// https://docs.joinmastodon.org/entities/Role/
type AccountRole struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Color       string  `json:"color"`
	Permissions *string `json:"permissions,omitzero"`
	Highlighted *bool   `json:"highlighted,omitzero"`

	AdditionalProperties marshaller.AdditionalProperties `json:"-"`
}

func (r AccountRole) MarshalJSON() ([]byte, error) {
	type accountRole AccountRole
	return marshaller.Marshal(accountRole(r), r.AdditionalProperties)
}

func (r *AccountRole) UnmarshalJSON(data []byte) error {
	type accountRole AccountRole
	return marshaller.Unmarshal(data, (*accountRole)(r), &r.AdditionalProperties)
}

// AccountField is a name and value pair shown on a profile.
// https://docs.joinmastodon.org/entities/Account/#Field
type AccountField struct {
	Name       string                     `json:"name"`
	Value      string                     `json:"value"`
	VerifiedAt values.Nullable[time.Time] `json:"verified_at,omitzero"`

	AdditionalProperties marshaller.AdditionalProperties `json:"-"`
}

func (f AccountField) MarshalJSON() ([]byte, error) {
	type accountField AccountField
	return marshaller.Marshal(accountField(f), f.AdditionalProperties)
}

func (f *AccountField) UnmarshalJSON(data []byte) error {
	type accountField AccountField
	return marshaller.Unmarshal(data, (*accountField)(f), &f.AdditionalProperties)
}

// CustomEmoji is an emoji defined by the instance.
// https://docs.joinmastodon.org/entities/CustomEmoji/
type CustomEmoji struct {
	Shortcode       string                  `json:"shortcode"`
	URL             string                  `json:"url"`
	StaticURL       string                  `json:"static_url"`
	VisibleInPicker bool                    `json:"visible_in_picker"`
	Category        values.Nullable[string] `json:"category,omitzero"`

	AdditionalProperties marshaller.AdditionalProperties `json:"-"`
}

func (e CustomEmoji) MarshalJSON() ([]byte, error) {
	type customEmoji CustomEmoji
	return marshaller.Marshal(customEmoji(e), e.AdditionalProperties)
}

func (e *CustomEmoji) UnmarshalJSON(data []byte) error {
	type customEmoji CustomEmoji
	return marshaller.Unmarshal(data, (*customEmoji)(e), &e.AdditionalProperties)
}

// FamiliarFollowers lists the accounts you follow that also follow a given account.
// https://docs.joinmastodon.org/entities/FamiliarFollowers/
type FamiliarFollowers struct {
	ID       string    `json:"id"`
	Accounts []Account `json:"accounts"`

	AdditionalProperties marshaller.AdditionalProperties `json:"-"`
}

func (f FamiliarFollowers) MarshalJSON() ([]byte, error) {
	type familiarFollowers FamiliarFollowers
	return marshaller.Marshal(familiarFollowers(f), f.AdditionalProperties)
}

func (f *FamiliarFollowers) UnmarshalJSON(data []byte) error {
	type familiarFollowers FamiliarFollowers
	return marshaller.Unmarshal(data, (*familiarFollowers)(f), &f.AdditionalProperties)
}

// Relationship is how the authenticated user relates to another account.
// https://docs.joinmastodon.org/entities/Relationship/
type Relationship struct {
	ID                  string                    `json:"id"`
	Following           bool                      `json:"following"`
	ShowingReblogs      bool                      `json:"showing_reblogs"`
	Notifying           bool                      `json:"notifying"`
	Languages           values.Nullable[[]string] `json:"languages,omitzero"`
	FollowedBy          bool                      `json:"followed_by"`
	Blocking            bool                      `json:"blocking"`
	BlockedBy           bool                      `json:"blocked_by"`
	Muting              bool                      `json:"muting"`
	MutingNotifications bool                      `json:"muting_notifications"`
	Requested           bool                      `json:"requested"`
	RequestedBy         bool                      `json:"requested_by"`
	DomainBlocking      bool                      `json:"domain_blocking"`
	Endorsed            bool                      `json:"endorsed"`
	Note                string                    `json:"note"`

	AdditionalProperties marshaller.AdditionalProperties `json:"-"`
}

func (r Relationship) MarshalJSON() ([]byte, error) {
	type relationship Relationship
	return marshaller.Marshal(relationship(r), r.AdditionalProperties)
}

func (r *Relationship) UnmarshalJSON(data []byte) error {
	type relationship Relationship
	return marshaller.Unmarshal(data, (*relationship)(r), &r.AdditionalProperties)
}

package models

import (
	"net/url"
	"time"

	"github.com/theepicsaxguy/Mastowatch-sub001/marshaller"
	"github.com/theepicsaxguy/Mastowatch-sub001/values"
)

// CreateAppBody registers a client application. RedirectURIs is either a single URI or a list.
type CreateAppBody struct {
	ClientName   string                               `json:"client_name"`
	RedirectURIs values.EitherValue[string, []string] `json:"redirect_uris"`
	Scopes       *string                              `json:"scopes,omitzero"`
	Website      values.Nullable[string]              `json:"website,omitzero"`

	AdditionalProperties marshaller.AdditionalProperties `json:"-"`
}

func (b CreateAppBody) MarshalJSON() ([]byte, error) {
	type createAppBody CreateAppBody
	return marshaller.Marshal(createAppBody(b), b.AdditionalProperties)
}

func (b *CreateAppBody) UnmarshalJSON(data []byte) error {
	type createAppBody CreateAppBody
	return marshaller.Unmarshal(data, (*createAppBody)(b), &b.AdditionalProperties)
}

// TokenRequest asks /oauth/token for an access token. It is sent as a form.
type TokenRequest struct {
	GrantType    string  `json:"grant_type"`
	ClientID     string  `json:"client_id"`
	ClientSecret string  `json:"client_secret"`
	RedirectURI  string  `json:"redirect_uri"`
	Code         *string `json:"code,omitzero"`
	CodeVerifier *string `json:"code_verifier,omitzero"`
	Scope        *string `json:"scope,omitzero"`

	AdditionalProperties marshaller.AdditionalProperties `json:"-"`
}

func (r TokenRequest) MarshalJSON() ([]byte, error) {
	type tokenRequest TokenRequest
	return marshaller.Marshal(tokenRequest(r), r.AdditionalProperties)
}

func (r *TokenRequest) UnmarshalJSON(data []byte) error {
	type tokenRequest TokenRequest
	return marshaller.Unmarshal(data, (*tokenRequest)(r), &r.AdditionalProperties)
}

// FormValues returns the request as form fields.
func (r TokenRequest) FormValues() (url.Values, error) {
	return marshaller.FormValues(r)
}

// RevokeTokenRequest revokes an access token. It is sent as a form.
type RevokeTokenRequest struct {
	ClientID     string `json:"client_id"`
	ClientSecret string `json:"client_secret"`
	Token        string `json:"token"`

	AdditionalProperties marshaller.AdditionalProperties `json:"-"`
}

func (r RevokeTokenRequest) MarshalJSON() ([]byte, error) {
	type revokeTokenRequest RevokeTokenRequest
	return marshaller.Marshal(revokeTokenRequest(r), r.AdditionalProperties)
}

func (r *RevokeTokenRequest) UnmarshalJSON(data []byte) error {
	type revokeTokenRequest RevokeTokenRequest
	return marshaller.Unmarshal(data, (*revokeTokenRequest)(r), &r.AdditionalProperties)
}

// FormValues returns the request as form fields.
func (r RevokeTokenRequest) FormValues() (url.Values, error) {
	return marshaller.FormValues(r)
}

// FollowAccountBody holds the options for following an account. Unset fields keep the server defaults.
type FollowAccountBody struct {
	Reblogs   *bool    `json:"reblogs,omitzero"`
	Notify    *bool    `json:"notify,omitzero"`
	Languages []string `json:"languages,omitzero"`

	AdditionalProperties marshaller.AdditionalProperties `json:"-"`
}

func (b FollowAccountBody) MarshalJSON() ([]byte, error) {
	type followAccountBody FollowAccountBody
	return marshaller.Marshal(followAccountBody(b), b.AdditionalProperties)
}

func (b *FollowAccountBody) UnmarshalJSON(data []byte) error {
	type followAccountBody FollowAccountBody
	return marshaller.Unmarshal(data, (*followAccountBody)(b), &b.AdditionalProperties)
}

// CreateFilterBody creates a filter, optionally with its keywords.
type CreateFilterBody struct {
	Title              string                    `json:"title"`
	Context            []FilterContext           `json:"context"`
	FilterAction       *FilterAction             `json:"filter_action,omitzero"`
	ExpiresIn          *int                      `json:"expires_in,omitzero"`
	KeywordsAttributes []FilterKeywordAttributes `json:"keywords_attributes,omitzero"`

	AdditionalProperties marshaller.AdditionalProperties `json:"-"`
}

func (b CreateFilterBody) MarshalJSON() ([]byte, error) {
	type createFilterBody CreateFilterBody
	return marshaller.Marshal(createFilterBody(b), b.AdditionalProperties)
}

func (b *CreateFilterBody) UnmarshalJSON(data []byte) error {
	type createFilterBody CreateFilterBody
	return marshaller.Unmarshal(data, (*createFilterBody)(b), &b.AdditionalProperties)
}

// FilterKeywordAttributes is one keyword entry of a filter create or update body.
type FilterKeywordAttributes struct {
	Keyword   string `json:"keyword"`
	WholeWord *bool  `json:"whole_word,omitzero"`

	AdditionalProperties marshaller.AdditionalProperties `json:"-"`
}

func (a FilterKeywordAttributes) MarshalJSON() ([]byte, error) {
	type filterKeywordAttributes FilterKeywordAttributes
	return marshaller.Marshal(filterKeywordAttributes(a), a.AdditionalProperties)
}

func (a *FilterKeywordAttributes) UnmarshalJSON(data []byte) error {
	type filterKeywordAttributes FilterKeywordAttributes
	return marshaller.Unmarshal(data, (*filterKeywordAttributes)(a), &a.AdditionalProperties)
}

// CreateReportBody files a report against an account.
type CreateReportBody struct {
	AccountID        string          `json:"account_id"`
	StatusIDs        []string        `json:"status_ids,omitzero"`
	Comment          *string         `json:"comment,omitzero"`
	Forward          *bool           `json:"forward,omitzero"`
	ForwardToDomains []string        `json:"forward_to_domains,omitzero"`
	Category         *ReportCategory `json:"category,omitzero"`
	RuleIDs          []string        `json:"rule_ids,omitzero"`

	AdditionalProperties marshaller.AdditionalProperties `json:"-"`
}

func (b CreateReportBody) MarshalJSON() ([]byte, error) {
	type createReportBody CreateReportBody
	return marshaller.Marshal(createReportBody(b), b.AdditionalProperties)
}

func (b *CreateReportBody) UnmarshalJSON(data []byte) error {
	type createReportBody CreateReportBody
	return marshaller.Unmarshal(data, (*createReportBody)(b), &b.AdditionalProperties)
}

// CreateDomainBlockBody blocks a domain as a moderator.
type CreateDomainBlockBody struct {
	Domain         string               `json:"domain"`
	Severity       *DomainBlockSeverity `json:"severity,omitzero"`
	RejectMedia    *bool                `json:"reject_media,omitzero"`
	RejectReports  *bool                `json:"reject_reports,omitzero"`
	PrivateComment *string              `json:"private_comment,omitzero"`
	PublicComment  *string              `json:"public_comment,omitzero"`
	Obfuscate      *bool                `json:"obfuscate,omitzero"`

	AdditionalProperties marshaller.AdditionalProperties `json:"-"`
}

func (b CreateDomainBlockBody) MarshalJSON() ([]byte, error) {
	type createDomainBlockBody CreateDomainBlockBody
	return marshaller.Marshal(createDomainBlockBody(b), b.AdditionalProperties)
}

func (b *CreateDomainBlockBody) UnmarshalJSON(data []byte) error {
	type createDomainBlockBody CreateDomainBlockBody
	return marshaller.Unmarshal(data, (*createDomainBlockBody)(b), &b.AdditionalProperties)
}

// StatusOptions are the attributes every kind of new status accepts.
type StatusOptions struct {
	InReplyToID    *string           `json:"in_reply_to_id,omitzero"`
	Sensitive      *bool             `json:"sensitive,omitzero"`
	SpoilerText    *string           `json:"spoiler_text,omitzero"`
	Visibility     *StatusVisibility `json:"visibility,omitzero"`
	Language       *string           `json:"language,omitzero"`
	ScheduledAt    *time.Time        `json:"scheduled_at,omitzero"`
	QuotedStatusID *string           `json:"quoted_status_id,omitzero"`
}

// CreateStatusBody is the body of POST /api/v1/statuses: exactly one of a text, media or poll
// status. Decoding tries the variants in that order and keeps the first that fits.
type CreateStatusBody struct {
	TextStatus  *TextStatus
	MediaStatus *MediaStatus
	PollStatus  *PollStatus
}

func (b CreateStatusBody) MarshalJSON() ([]byte, error) {
	return values.EncodeOneOf(b.TextStatus, b.MediaStatus, b.PollStatus)
}

func (b *CreateStatusBody) UnmarshalJSON(data []byte) error {
	var decoded CreateStatusBody
	if _, err := values.DecodeOneOf(data, &decoded.TextStatus, &decoded.MediaStatus, &decoded.PollStatus); err != nil {
		return err
	}

	*b = decoded
	return nil
}

// TextStatus is a status with text and no attachments.
type TextStatus struct {
	Status string `json:"status"`
	StatusOptions

	AdditionalProperties marshaller.AdditionalProperties `json:"-"`
}

func (s TextStatus) MarshalJSON() ([]byte, error) {
	type textStatus TextStatus
	return marshaller.Marshal(textStatus(s), s.AdditionalProperties)
}

func (s *TextStatus) UnmarshalJSON(data []byte) error {
	type textStatus TextStatus
	return marshaller.Unmarshal(data, (*textStatus)(s), &s.AdditionalProperties)
}

// MediaStatus is a status built around previously uploaded media. Its text is optional.
type MediaStatus struct {
	MediaIDs []string `json:"media_ids"`
	Status   *string  `json:"status,omitzero"`
	StatusOptions

	AdditionalProperties marshaller.AdditionalProperties `json:"-"`
}

func (s MediaStatus) MarshalJSON() ([]byte, error) {
	type mediaStatus MediaStatus
	return marshaller.Marshal(mediaStatus(s), s.AdditionalProperties)
}

func (s *MediaStatus) UnmarshalJSON(data []byte) error {
	type mediaStatus MediaStatus
	return marshaller.Unmarshal(data, (*mediaStatus)(s), &s.AdditionalProperties)
}

// PollStatus is a status carrying a poll.
type PollStatus struct {
	Status string     `json:"status"`
	Poll   PollParams `json:"poll"`
	StatusOptions

	AdditionalProperties marshaller.AdditionalProperties `json:"-"`
}

func (s PollStatus) MarshalJSON() ([]byte, error) {
	type pollStatus PollStatus
	return marshaller.Marshal(pollStatus(s), s.AdditionalProperties)
}

func (s *PollStatus) UnmarshalJSON(data []byte) error {
	type pollStatus PollStatus
	return marshaller.Unmarshal(data, (*pollStatus)(s), &s.AdditionalProperties)
}

// PollParams describes a new poll. ExpiresIn is in seconds.
type PollParams struct {
	Options    []string `json:"options"`
	ExpiresIn  int      `json:"expires_in"`
	Multiple   *bool    `json:"multiple,omitzero"`
	HideTotals *bool    `json:"hide_totals,omitzero"`

	AdditionalProperties marshaller.AdditionalProperties `json:"-"`
}

func (p PollParams) MarshalJSON() ([]byte, error) {
	type pollParams PollParams
	return marshaller.Marshal(pollParams(p), p.AdditionalProperties)
}

func (p *PollParams) UnmarshalJSON(data []byte) error {
	type pollParams PollParams
	return marshaller.Unmarshal(data, (*pollParams)(p), &p.AdditionalProperties)
}

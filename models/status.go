package models

import (
	"time"

	"github.com/theepicsaxguy/Mastowatch-sub001/marshaller"
	"github.com/theepicsaxguy/Mastowatch-sub001/values"
)

// Status is a post, possibly a boost of another status.
// https://docs.joinmastodon.org/entities/Status/
type Status struct {
	ID                 string                                                   `json:"id"`
	URI                string                                                   `json:"uri"`
	URL                values.Nullable[string]                                  `json:"url,omitzero"`
	CreatedAt          time.Time                                                `json:"created_at"`
	EditedAt           values.Nullable[time.Time]                               `json:"edited_at,omitzero"`
	Account            Account                                                  `json:"account"`
	Content            string                                                   `json:"content"`
	Text               values.Nullable[string]                                  `json:"text,omitzero"`
	Visibility         StatusVisibility                                         `json:"visibility"`
	Sensitive          bool                                                     `json:"sensitive"`
	SpoilerText        string                                                   `json:"spoiler_text"`
	MediaAttachments   []MediaAttachment                                        `json:"media_attachments"`
	Application        *Application                                             `json:"application,omitzero"`
	Mentions           []StatusMention                                          `json:"mentions"`
	Tags               []StatusTag                                              `json:"tags"`
	Emojis             []CustomEmoji                                            `json:"emojis"`
	ReblogsCount       int                                                      `json:"reblogs_count"`
	FavouritesCount    int                                                      `json:"favourites_count"`
	RepliesCount       int                                                      `json:"replies_count"`
	QuotesCount        *int                                                     `json:"quotes_count,omitzero"`
	InReplyToID        values.Nullable[string]                                  `json:"in_reply_to_id,omitzero"`
	InReplyToAccountID values.Nullable[string]                                  `json:"in_reply_to_account_id,omitzero"`
	Reblog             values.Nullable[Status]                                  `json:"reblog,omitzero"`
	Quote              values.Nullable[values.EitherValue[Quote, ShallowQuote]] `json:"quote,omitzero"`
	Poll               values.Nullable[Poll]                                    `json:"poll,omitzero"`
	Card               values.Nullable[PreviewCard]                             `json:"card,omitzero"`
	Language           values.Nullable[string]                                  `json:"language,omitzero"`
	Favourited         *bool                                                    `json:"favourited,omitzero"`
	Reblogged          *bool                                                    `json:"reblogged,omitzero"`
	Muted              *bool                                                    `json:"muted,omitzero"`
	Bookmarked         *bool                                                    `json:"bookmarked,omitzero"`
	Pinned             *bool                                                    `json:"pinned,omitzero"`
	Filtered           []FilterResult                                           `json:"filtered,omitzero"`

	AdditionalProperties marshaller.AdditionalProperties `json:"-"`
}

func (s Status) MarshalJSON() ([]byte, error) {
	type status Status
	return marshaller.Marshal(status(s), s.AdditionalProperties)
}

func (s *Status) UnmarshalJSON(data []byte) error {
	type status Status
	return marshaller.Unmarshal(data, (*status)(s), &s.AdditionalProperties)
}

// Quote is a quoted status embedded in full.
// https://docs.joinmastodon.org/entities/Quote/
type Quote struct {
	State        QuoteState              `json:"state"`
	QuotedStatus values.Nullable[Status] `json:"quoted_status"`

	AdditionalProperties marshaller.AdditionalProperties `json:"-"`
}

func (q Quote) MarshalJSON() ([]byte, error) {
	type quote Quote
	return marshaller.Marshal(quote(q), q.AdditionalProperties)
}

func (q *Quote) UnmarshalJSON(data []byte) error {
	type quote Quote
	return marshaller.Unmarshal(data, (*quote)(q), &q.AdditionalProperties)
}

// ShallowQuote refers to a quoted status by ID only, as used inside an already quoted status.
// https://docs.joinmastodon.org/entities/ShallowQuote/
type ShallowQuote struct {
	State          QuoteState              `json:"state"`
	QuotedStatusID values.Nullable[string] `json:"quoted_status_id"`

	AdditionalProperties marshaller.AdditionalProperties `json:"-"`
}

func (q ShallowQuote) MarshalJSON() ([]byte, error) {
	type shallowQuote ShallowQuote
	return marshaller.Marshal(shallowQuote(q), q.AdditionalProperties)
}

func (q *ShallowQuote) UnmarshalJSON(data []byte) error {
	type shallowQuote ShallowQuote
	return marshaller.Unmarshal(data, (*shallowQuote)(q), &q.AdditionalProperties)
}

// StatusMention is an account mentioned in a status.
// https://docs.joinmastodon.org/entities/Status/#Mention
type StatusMention struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	URL      string `json:"url"`
	Acct     string `json:"acct"`

	AdditionalProperties marshaller.AdditionalProperties `json:"-"`
}

func (m StatusMention) MarshalJSON() ([]byte, error) {
	type statusMention StatusMention
	return marshaller.Marshal(statusMention(m), m.AdditionalProperties)
}

func (m *StatusMention) UnmarshalJSON(data []byte) error {
	type statusMention StatusMention
	return marshaller.Unmarshal(data, (*statusMention)(m), &m.AdditionalProperties)
}

// StatusTag is a hashtag used in a status.
// https://docs.joinmastodon.org/entities/Status/#Tag
type StatusTag struct {
	Name string `json:"name"`
	URL  string `json:"url"`

	AdditionalProperties marshaller.AdditionalProperties `json:"-"`
}

func (t StatusTag) MarshalJSON() ([]byte, error) {
	type statusTag StatusTag
	return marshaller.Marshal(statusTag(t), t.AdditionalProperties)
}

func (t *StatusTag) UnmarshalJSON(data []byte) error {
	type statusTag StatusTag
	return marshaller.Unmarshal(data, (*statusTag)(t), &t.AdditionalProperties)
}

// Poll is a poll attached to a status.
// https://docs.joinmastodon.org/entities/Poll/
type Poll struct {
	ID          string                     `json:"id"`
	ExpiresAt   values.Nullable[time.Time] `json:"expires_at"`
	Expired     bool                       `json:"expired"`
	Multiple    bool                       `json:"multiple"`
	VotesCount  int                        `json:"votes_count"`
	VotersCount values.Nullable[int]       `json:"voters_count"`
	Options     []PollOption               `json:"options"`
	Emojis      []CustomEmoji              `json:"emojis"`
	Voted       *bool                      `json:"voted,omitzero"`
	OwnVotes    []int                      `json:"own_votes,omitzero"`

	AdditionalProperties marshaller.AdditionalProperties `json:"-"`
}

func (p Poll) MarshalJSON() ([]byte, error) {
	type poll Poll
	return marshaller.Marshal(poll(p), p.AdditionalProperties)
}

func (p *Poll) UnmarshalJSON(data []byte) error {
	type poll Poll
	return marshaller.Unmarshal(data, (*poll)(p), &p.AdditionalProperties)
}

// PollOption is one choice of a poll. VotesCount is null while results are hidden.
type PollOption struct {
	Title      string               `json:"title"`
	VotesCount values.Nullable[int] `json:"votes_count"`

	AdditionalProperties marshaller.AdditionalProperties `json:"-"`
}

func (o PollOption) MarshalJSON() ([]byte, error) {
	type pollOption PollOption
	return marshaller.Marshal(pollOption(o), o.AdditionalProperties)
}

func (o *PollOption) UnmarshalJSON(data []byte) error {
	type pollOption PollOption
	return marshaller.Unmarshal(data, (*pollOption)(o), &o.AdditionalProperties)
}

// PreviewCard is the rich preview generated for a link in a status.
// https://docs.joinmastodon.org/entities/PreviewCard/
type PreviewCard struct {
	URL          string                  `json:"url"`
	Title        string                  `json:"title"`
	Description  string                  `json:"description"`
	Type         string                  `json:"type"`
	AuthorName   *string                 `json:"author_name,omitzero"`
	AuthorURL    *string                 `json:"author_url,omitzero"`
	ProviderName *string                 `json:"provider_name,omitzero"`
	ProviderURL  *string                 `json:"provider_url,omitzero"`
	Width        *int                    `json:"width,omitzero"`
	Height       *int                    `json:"height,omitzero"`
	Image        values.Nullable[string] `json:"image,omitzero"`
	Blurhash     values.Nullable[string] `json:"blurhash,omitzero"`

	AdditionalProperties marshaller.AdditionalProperties `json:"-"`
}

func (c PreviewCard) MarshalJSON() ([]byte, error) {
	type previewCard PreviewCard
	return marshaller.Marshal(previewCard(c), c.AdditionalProperties)
}

func (c *PreviewCard) UnmarshalJSON(data []byte) error {
	type previewCard PreviewCard
	return marshaller.Unmarshal(data, (*previewCard)(c), &c.AdditionalProperties)
}

// Context is the thread around a status.
// https://docs.joinmastodon.org/entities/Context/
type Context struct {
	Ancestors   []Status `json:"ancestors"`
	Descendants []Status `json:"descendants"`

	AdditionalProperties marshaller.AdditionalProperties `json:"-"`
}

func (c Context) MarshalJSON() ([]byte, error) {
	type context Context
	return marshaller.Marshal(context(c), c.AdditionalProperties)
}

func (c *Context) UnmarshalJSON(data []byte) error {
	type context Context
	return marshaller.Unmarshal(data, (*context)(c), &c.AdditionalProperties)
}

// ScheduledStatus is a status that will be published at a later time.
// https://docs.joinmastodon.org/entities/ScheduledStatus/
type ScheduledStatus struct {
	ID               string                `json:"id"`
	ScheduledAt      time.Time             `json:"scheduled_at"`
	Params           ScheduledStatusParams `json:"params"`
	MediaAttachments []MediaAttachment     `json:"media_attachments"`

	AdditionalProperties marshaller.AdditionalProperties `json:"-"`
}

func (s ScheduledStatus) MarshalJSON() ([]byte, error) {
	type scheduledStatus ScheduledStatus
	return marshaller.Marshal(scheduledStatus(s), s.AdditionalProperties)
}

func (s *ScheduledStatus) UnmarshalJSON(data []byte) error {
	type scheduledStatus ScheduledStatus
	return marshaller.Unmarshal(data, (*scheduledStatus)(s), &s.AdditionalProperties)
}

// ScheduledStatusParams are the parameters a scheduled status will be posted with.
type ScheduledStatusParams struct {
	Text           string                               `json:"text"`
	Visibility     StatusVisibility                     `json:"visibility"`
	ApplicationID  int                                  `json:"application_id"`
	WithRateLimit  bool                                 `json:"with_rate_limit"`
	Poll           values.Nullable[ScheduledPollParams] `json:"poll,omitzero"`
	MediaIDs       values.Nullable[[]string]            `json:"media_ids,omitzero"`
	Sensitive      values.Nullable[bool]                `json:"sensitive,omitzero"`
	SpoilerText    values.Nullable[string]              `json:"spoiler_text,omitzero"`
	ScheduledAt    values.Nullable[time.Time]           `json:"scheduled_at,omitzero"`
	InReplyToID    values.Nullable[string]              `json:"in_reply_to_id,omitzero"`
	Language       values.Nullable[string]              `json:"language,omitzero"`
	Idempotency    values.Nullable[string]              `json:"idempotency,omitzero"`
	QuotedStatusID values.Nullable[string]              `json:"quoted_status_id,omitzero"`

	AdditionalProperties marshaller.AdditionalProperties `json:"-"`
}

func (p ScheduledStatusParams) MarshalJSON() ([]byte, error) {
	type scheduledStatusParams ScheduledStatusParams
	return marshaller.Marshal(scheduledStatusParams(p), p.AdditionalProperties)
}

func (p *ScheduledStatusParams) UnmarshalJSON(data []byte) error {
	type scheduledStatusParams ScheduledStatusParams
	return marshaller.Unmarshal(data, (*scheduledStatusParams)(p), &p.AdditionalProperties)
}

// ScheduledPollParams is the poll a scheduled status will carry. ExpiresIn is sent as a string.
type ScheduledPollParams struct {
	Options    []string `json:"options"`
	ExpiresIn  string   `json:"expires_in"`
	Multiple   *bool    `json:"multiple,omitzero"`
	HideTotals *bool    `json:"hide_totals,omitzero"`

	AdditionalProperties marshaller.AdditionalProperties `json:"-"`
}

func (p ScheduledPollParams) MarshalJSON() ([]byte, error) {
	type scheduledPollParams ScheduledPollParams
	return marshaller.Marshal(scheduledPollParams(p), p.AdditionalProperties)
}

func (p *ScheduledPollParams) UnmarshalJSON(data []byte) error {
	type scheduledPollParams ScheduledPollParams
	return marshaller.Unmarshal(data, (*scheduledPollParams)(p), &p.AdditionalProperties)
}

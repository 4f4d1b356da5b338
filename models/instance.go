package models

import (
	"github.com/theepicsaxguy/Mastowatch-sub001/marshaller"
	"github.com/theepicsaxguy/Mastowatch-sub001/values"
)

// Instance describes the server, its limits and its policies.
// https://docs.joinmastodon.org/entities/Instance/
type Instance struct {
	Domain        string                `json:"domain"`
	Title         string                `json:"title"`
	Version       string                `json:"version"`
	SourceURL     string                `json:"source_url"`
	Description   string                `json:"description"`
	Usage         InstanceUsage         `json:"usage"`
	Thumbnail     InstanceThumbnail     `json:"thumbnail"`
	Languages     []string              `json:"languages"`
	Configuration InstanceConfiguration `json:"configuration"`
	Registrations InstanceRegistrations `json:"registrations"`
	Contact       InstanceContact       `json:"contact"`
	Rules         []Rule                `json:"rules"`
	APIVersions   map[string]int        `json:"api_versions,omitzero"`

	AdditionalProperties marshaller.AdditionalProperties `json:"-"`
}

func (i Instance) MarshalJSON() ([]byte, error) {
	type instance Instance
	return marshaller.Marshal(instance(i), i.AdditionalProperties)
}

func (i *Instance) UnmarshalJSON(data []byte) error {
	type instance Instance
	return marshaller.Unmarshal(data, (*instance)(i), &i.AdditionalProperties)
}

// InstanceUsage holds usage statistics.
type InstanceUsage struct {
	Users InstanceUsageUsers `json:"users"`

	AdditionalProperties marshaller.AdditionalProperties `json:"-"`
}

func (u InstanceUsage) MarshalJSON() ([]byte, error) {
	type instanceUsage InstanceUsage
	return marshaller.Marshal(instanceUsage(u), u.AdditionalProperties)
}

func (u *InstanceUsage) UnmarshalJSON(data []byte) error {
	type instanceUsage InstanceUsage
	return marshaller.Unmarshal(data, (*instanceUsage)(u), &u.AdditionalProperties)
}

// InstanceUsageUsers counts the instance's active users.
type InstanceUsageUsers struct {
	ActiveMonth int `json:"active_month"`

	AdditionalProperties marshaller.AdditionalProperties `json:"-"`
}

func (u InstanceUsageUsers) MarshalJSON() ([]byte, error) {
	type instanceUsageUsers InstanceUsageUsers
	return marshaller.Marshal(instanceUsageUsers(u), u.AdditionalProperties)
}

func (u *InstanceUsageUsers) UnmarshalJSON(data []byte) error {
	type instanceUsageUsers InstanceUsageUsers
	return marshaller.Unmarshal(data, (*instanceUsageUsers)(u), &u.AdditionalProperties)
}

// InstanceThumbnail is the banner image of the instance.
type InstanceThumbnail struct {
	URL      string                  `json:"url"`
	Blurhash values.Nullable[string] `json:"blurhash,omitzero"`
	Versions map[string]string       `json:"versions,omitzero"`

	AdditionalProperties marshaller.AdditionalProperties `json:"-"`
}

func (t InstanceThumbnail) MarshalJSON() ([]byte, error) {
	type instanceThumbnail InstanceThumbnail
	return marshaller.Marshal(instanceThumbnail(t), t.AdditionalProperties)
}

func (t *InstanceThumbnail) UnmarshalJSON(data []byte) error {
	type instanceThumbnail InstanceThumbnail
	return marshaller.Unmarshal(data, (*instanceThumbnail)(t), &t.AdditionalProperties)
}

// InstanceConfiguration holds the limits clients should respect when posting.
type InstanceConfiguration struct {
	URLs             InstanceURLs            `json:"urls"`
	Accounts         *InstanceAccountsConfig `json:"accounts,omitzero"`
	Statuses         InstanceStatusesConfig  `json:"statuses"`
	MediaAttachments InstanceMediaConfig     `json:"media_attachments"`
	Polls            InstancePollsConfig     `json:"polls"`
	Translation      InstanceTranslation     `json:"translation"`

	AdditionalProperties marshaller.AdditionalProperties `json:"-"`
}

func (c InstanceConfiguration) MarshalJSON() ([]byte, error) {
	type instanceConfiguration InstanceConfiguration
	return marshaller.Marshal(instanceConfiguration(c), c.AdditionalProperties)
}

func (c *InstanceConfiguration) UnmarshalJSON(data []byte) error {
	type instanceConfiguration InstanceConfiguration
	return marshaller.Unmarshal(data, (*instanceConfiguration)(c), &c.AdditionalProperties)
}

// InstanceURLs lists the URLs clients connect to.
type InstanceURLs struct {
	Streaming string `json:"streaming"`

	AdditionalProperties marshaller.AdditionalProperties `json:"-"`
}

func (u InstanceURLs) MarshalJSON() ([]byte, error) {
	type instanceURLs InstanceURLs
	return marshaller.Marshal(instanceURLs(u), u.AdditionalProperties)
}

func (u *InstanceURLs) UnmarshalJSON(data []byte) error {
	type instanceURLs InstanceURLs
	return marshaller.Unmarshal(data, (*instanceURLs)(u), &u.AdditionalProperties)
}

type InstanceAccountsConfig struct {
	MaxFeaturedTags   int  `json:"max_featured_tags"`
	MaxPinnedStatuses *int `json:"max_pinned_statuses,omitzero"`

	AdditionalProperties marshaller.AdditionalProperties `json:"-"`
}

func (c InstanceAccountsConfig) MarshalJSON() ([]byte, error) {
	type instanceAccountsConfig InstanceAccountsConfig
	return marshaller.Marshal(instanceAccountsConfig(c), c.AdditionalProperties)
}

func (c *InstanceAccountsConfig) UnmarshalJSON(data []byte) error {
	type instanceAccountsConfig InstanceAccountsConfig
	return marshaller.Unmarshal(data, (*instanceAccountsConfig)(c), &c.AdditionalProperties)
}

type InstanceStatusesConfig struct {
	MaxCharacters            int `json:"max_characters"`
	MaxMediaAttachments      int `json:"max_media_attachments"`
	CharactersReservedPerURL int `json:"characters_reserved_per_url"`

	AdditionalProperties marshaller.AdditionalProperties `json:"-"`
}

func (c InstanceStatusesConfig) MarshalJSON() ([]byte, error) {
	type instanceStatusesConfig InstanceStatusesConfig
	return marshaller.Marshal(instanceStatusesConfig(c), c.AdditionalProperties)
}

func (c *InstanceStatusesConfig) UnmarshalJSON(data []byte) error {
	type instanceStatusesConfig InstanceStatusesConfig
	return marshaller.Unmarshal(data, (*instanceStatusesConfig)(c), &c.AdditionalProperties)
}

type InstanceMediaConfig struct {
	SupportedMimeTypes  []string `json:"supported_mime_types"`
	ImageSizeLimit      int      `json:"image_size_limit"`
	ImageMatrixLimit    int      `json:"image_matrix_limit"`
	VideoSizeLimit      int      `json:"video_size_limit"`
	VideoFrameRateLimit int      `json:"video_frame_rate_limit"`
	VideoMatrixLimit    int      `json:"video_matrix_limit"`
	DescriptionLimit    *int     `json:"description_limit,omitzero"`

	AdditionalProperties marshaller.AdditionalProperties `json:"-"`
}

func (c InstanceMediaConfig) MarshalJSON() ([]byte, error) {
	type instanceMediaConfig InstanceMediaConfig
	return marshaller.Marshal(instanceMediaConfig(c), c.AdditionalProperties)
}

func (c *InstanceMediaConfig) UnmarshalJSON(data []byte) error {
	type instanceMediaConfig InstanceMediaConfig
	return marshaller.Unmarshal(data, (*instanceMediaConfig)(c), &c.AdditionalProperties)
}

type InstancePollsConfig struct {
	MaxOptions             int `json:"max_options"`
	MaxCharactersPerOption int `json:"max_characters_per_option"`
	MinExpiration          int `json:"min_expiration"`
	MaxExpiration          int `json:"max_expiration"`

	AdditionalProperties marshaller.AdditionalProperties `json:"-"`
}

func (c InstancePollsConfig) MarshalJSON() ([]byte, error) {
	type instancePollsConfig InstancePollsConfig
	return marshaller.Marshal(instancePollsConfig(c), c.AdditionalProperties)
}

func (c *InstancePollsConfig) UnmarshalJSON(data []byte) error {
	type instancePollsConfig InstancePollsConfig
	return marshaller.Unmarshal(data, (*instancePollsConfig)(c), &c.AdditionalProperties)
}

type InstanceTranslation struct {
	Enabled bool `json:"enabled"`

	AdditionalProperties marshaller.AdditionalProperties `json:"-"`
}

func (t InstanceTranslation) MarshalJSON() ([]byte, error) {
	type instanceTranslation InstanceTranslation
	return marshaller.Marshal(instanceTranslation(t), t.AdditionalProperties)
}

func (t *InstanceTranslation) UnmarshalJSON(data []byte) error {
	type instanceTranslation InstanceTranslation
	return marshaller.Unmarshal(data, (*instanceTranslation)(t), &t.AdditionalProperties)
}

// InstanceRegistrations describes how new accounts can sign up.
type InstanceRegistrations struct {
	Enabled          bool                    `json:"enabled"`
	ApprovalRequired bool                    `json:"approval_required"`
	Message          values.Nullable[string] `json:"message"`
	URL              values.Nullable[string] `json:"url,omitzero"`

	AdditionalProperties marshaller.AdditionalProperties `json:"-"`
}

func (r InstanceRegistrations) MarshalJSON() ([]byte, error) {
	type instanceRegistrations InstanceRegistrations
	return marshaller.Marshal(instanceRegistrations(r), r.AdditionalProperties)
}

func (r *InstanceRegistrations) UnmarshalJSON(data []byte) error {
	type instanceRegistrations InstanceRegistrations
	return marshaller.Unmarshal(data, (*instanceRegistrations)(r), &r.AdditionalProperties)
}

// InstanceContact is how to reach the instance's administrators.
type InstanceContact struct {
	Email   string                   `json:"email"`
	Account values.Nullable[Account] `json:"account"`

	AdditionalProperties marshaller.AdditionalProperties `json:"-"`
}

func (c InstanceContact) MarshalJSON() ([]byte, error) {
	type instanceContact InstanceContact
	return marshaller.Marshal(instanceContact(c), c.AdditionalProperties)
}

func (c *InstanceContact) UnmarshalJSON(data []byte) error {
	type instanceContact InstanceContact
	return marshaller.Unmarshal(data, (*instanceContact)(c), &c.AdditionalProperties)
}

// Rule is one of the rules users of the instance agree to.
// https://docs.joinmastodon.org/entities/Rule/
type Rule struct {
	ID   string  `json:"id"`
	Text string  `json:"text"`
	Hint *string `json:"hint,omitzero"`

	AdditionalProperties marshaller.AdditionalProperties `json:"-"`
}

func (r Rule) MarshalJSON() ([]byte, error) {
	type rule Rule
	return marshaller.Marshal(rule(r), r.AdditionalProperties)
}

func (r *Rule) UnmarshalJSON(data []byte) error {
	type rule Rule
	return marshaller.Unmarshal(data, (*rule)(r), &r.AdditionalProperties)
}

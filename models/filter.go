package models

import (
	"time"

	"github.com/theepicsaxguy/Mastowatch-sub001/marshaller"
	"github.com/theepicsaxguy/Mastowatch-sub001/values"
)

// Filter is a user-defined filter applied to statuses in the given contexts.
// https://docs.joinmastodon.org/entities/Filter/
type Filter struct {
	ID           string                     `json:"id"`
	Title        string                     `json:"title"`
	Context      []FilterContext            `json:"context"`
	ExpiresAt    values.Nullable[time.Time] `json:"expires_at"`
	FilterAction FilterAction               `json:"filter_action"`
	Keywords     []FilterKeyword            `json:"keywords,omitzero"`
	Statuses     []FilterStatus             `json:"statuses,omitzero"`

	AdditionalProperties marshaller.AdditionalProperties `json:"-"`
}

func (f Filter) MarshalJSON() ([]byte, error) {
	type filter Filter
	return marshaller.Marshal(filter(f), f.AdditionalProperties)
}

func (f *Filter) UnmarshalJSON(data []byte) error {
	type filter Filter
	return marshaller.Unmarshal(data, (*filter)(f), &f.AdditionalProperties)
}

// FilterKeyword is a keyword that triggers a filter.
// https://docs.joinmastodon.org/entities/FilterKeyword/
type FilterKeyword struct {
	ID        string `json:"id"`
	Keyword   string `json:"keyword"`
	WholeWord bool   `json:"whole_word"`

	AdditionalProperties marshaller.AdditionalProperties `json:"-"`
}

func (k FilterKeyword) MarshalJSON() ([]byte, error) {
	type filterKeyword FilterKeyword
	return marshaller.Marshal(filterKeyword(k), k.AdditionalProperties)
}

func (k *FilterKeyword) UnmarshalJSON(data []byte) error {
	type filterKeyword FilterKeyword
	return marshaller.Unmarshal(data, (*filterKeyword)(k), &k.AdditionalProperties)
}

// FilterStatus is a single status that triggers a filter.
// https://docs.joinmastodon.org/entities/FilterStatus/
type FilterStatus struct {
	ID       string `json:"id"`
	StatusID string `json:"status_id"`

	AdditionalProperties marshaller.AdditionalProperties `json:"-"`
}

func (s FilterStatus) MarshalJSON() ([]byte, error) {
	type filterStatus FilterStatus
	return marshaller.Marshal(filterStatus(s), s.AdditionalProperties)
}

func (s *FilterStatus) UnmarshalJSON(data []byte) error {
	type filterStatus FilterStatus
	return marshaller.Unmarshal(data, (*filterStatus)(s), &s.AdditionalProperties)
}

// FilterResult is attached to a status that matched one of the user's filters.
// https://docs.joinmastodon.org/entities/FilterResult/
type FilterResult struct {
	Filter         Filter                    `json:"filter"`
	KeywordMatches values.Nullable[[]string] `json:"keyword_matches"`
	StatusMatches  values.Nullable[[]string] `json:"status_matches"`

	AdditionalProperties marshaller.AdditionalProperties `json:"-"`
}

func (r FilterResult) MarshalJSON() ([]byte, error) {
	type filterResult FilterResult
	return marshaller.Marshal(filterResult(r), r.AdditionalProperties)
}

func (r *FilterResult) UnmarshalJSON(data []byte) error {
	type filterResult FilterResult
	return marshaller.Unmarshal(data, (*filterResult)(r), &r.AdditionalProperties)
}

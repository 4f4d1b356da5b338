package models

import (
	"github.com/theepicsaxguy/Mastowatch-sub001/json"
	"github.com/theepicsaxguy/Mastowatch-sub001/marshaller"
	"github.com/theepicsaxguy/Mastowatch-sub001/values"
)

// MediaAttachment is an uploaded image, video or audio file. URL is null while a large file is
// still being processed.
// https://docs.joinmastodon.org/entities/MediaAttachment/
type MediaAttachment struct {
	ID          string                                         `json:"id"`
	Type        MediaType                                      `json:"type"`
	URL         values.Nullable[string]                        `json:"url"`
	PreviewURL  values.Nullable[string]                        `json:"preview_url"`
	RemoteURL   values.Nullable[string]                        `json:"remote_url,omitzero"`
	Meta        values.EitherValue[MediaMeta, json.RawMessage] `json:"meta,omitzero"`
	Description values.Nullable[string]                        `json:"description"`
	Blurhash    values.Nullable[string]                        `json:"blurhash,omitzero"`

	AdditionalProperties marshaller.AdditionalProperties `json:"-"`
}

func (m MediaAttachment) MarshalJSON() ([]byte, error) {
	type mediaAttachment MediaAttachment
	return marshaller.Marshal(mediaAttachment(m), m.AdditionalProperties)
}

func (m *MediaAttachment) UnmarshalJSON(data []byte) error {
	type mediaAttachment MediaAttachment
	return marshaller.Unmarshal(data, (*mediaAttachment)(m), &m.AdditionalProperties)
}

// MediaMeta is the metadata the server extracted from a media file. Servers disagree on its
// shape, so a MediaAttachment keeps the raw document when it does not fit.
type MediaMeta struct {
	Original    *MediaMetaSize `json:"original,omitzero"`
	Small       *MediaMetaSize `json:"small,omitzero"`
	Focus       *MediaFocus    `json:"focus,omitzero"`
	Length      *string        `json:"length,omitzero"`
	Duration    *float64       `json:"duration,omitzero"`
	FPS         *int           `json:"fps,omitzero"`
	AudioEncode *string        `json:"audio_encode,omitzero"`

	AdditionalProperties marshaller.AdditionalProperties `json:"-"`
}

func (m MediaMeta) MarshalJSON() ([]byte, error) {
	type mediaMeta MediaMeta
	return marshaller.Marshal(mediaMeta(m), m.AdditionalProperties)
}

func (m *MediaMeta) UnmarshalJSON(data []byte) error {
	type mediaMeta MediaMeta
	return marshaller.Unmarshal(data, (*mediaMeta)(m), &m.AdditionalProperties)
}

// MediaMetaSize describes one rendition of a media file.
type MediaMetaSize struct {
	Width     *int     `json:"width,omitzero"`
	Height    *int     `json:"height,omitzero"`
	Size      *string  `json:"size,omitzero"`
	Aspect    *float64 `json:"aspect,omitzero"`
	FrameRate *string  `json:"frame_rate,omitzero"`
	Duration  *float64 `json:"duration,omitzero"`
	Bitrate   *int     `json:"bitrate,omitzero"`

	AdditionalProperties marshaller.AdditionalProperties `json:"-"`
}

func (s MediaMetaSize) MarshalJSON() ([]byte, error) {
	type mediaMetaSize MediaMetaSize
	return marshaller.Marshal(mediaMetaSize(s), s.AdditionalProperties)
}

func (s *MediaMetaSize) UnmarshalJSON(data []byte) error {
	type mediaMetaSize MediaMetaSize
	return marshaller.Unmarshal(data, (*mediaMetaSize)(s), &s.AdditionalProperties)
}

// MediaFocus is the focal point of an image, each axis in the range -1.0 to 1.0.
type MediaFocus struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`

	AdditionalProperties marshaller.AdditionalProperties `json:"-"`
}

func (f MediaFocus) MarshalJSON() ([]byte, error) {
	type mediaFocus MediaFocus
	return marshaller.Marshal(mediaFocus(f), f.AdditionalProperties)
}

func (f *MediaFocus) UnmarshalJSON(data []byte) error {
	type mediaFocus MediaFocus
	return marshaller.Unmarshal(data, (*mediaFocus)(f), &f.AdditionalProperties)
}

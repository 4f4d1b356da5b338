package models

import (
	"github.com/theepicsaxguy/Mastowatch-sub001/marshaller"
)

// Error is the body of most failed requests.
// https://docs.joinmastodon.org/entities/Error/
type Error struct {
	Error            string  `json:"error"`
	ErrorDescription *string `json:"error_description,omitzero"`

	AdditionalProperties marshaller.AdditionalProperties `json:"-"`
}

func (e Error) MarshalJSON() ([]byte, error) {
	type errorBody Error
	return marshaller.Marshal(errorBody(e), e.AdditionalProperties)
}

func (e *Error) UnmarshalJSON(data []byte) error {
	type errorBody Error
	return marshaller.Unmarshal(data, (*errorBody)(e), &e.AdditionalProperties)
}

// ValidationError is returned with 422 when a submitted record fails validation.
type ValidationError struct {
	Error   string                             `json:"error"`
	Details map[string][]ValidationErrorDetail `json:"details,omitzero"`

	AdditionalProperties marshaller.AdditionalProperties `json:"-"`
}

func (v ValidationError) MarshalJSON() ([]byte, error) {
	type validationError ValidationError
	return marshaller.Marshal(validationError(v), v.AdditionalProperties)
}

func (v *ValidationError) UnmarshalJSON(data []byte) error {
	type validationError ValidationError
	return marshaller.Unmarshal(data, (*validationError)(v), &v.AdditionalProperties)
}

// ValidationErrorDetail describes why one attribute was rejected.
type ValidationErrorDetail struct {
	Error       string `json:"error"`
	Description string `json:"description"`

	AdditionalProperties marshaller.AdditionalProperties `json:"-"`
}

func (d ValidationErrorDetail) MarshalJSON() ([]byte, error) {
	type validationErrorDetail ValidationErrorDetail
	return marshaller.Marshal(validationErrorDetail(d), d.AdditionalProperties)
}

func (d *ValidationErrorDetail) UnmarshalJSON(data []byte) error {
	type validationErrorDetail ValidationErrorDetail
	return marshaller.Unmarshal(data, (*validationErrorDetail)(d), &d.AdditionalProperties)
}

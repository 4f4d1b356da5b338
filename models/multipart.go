package models

import (
	"fmt"

	"github.com/theepicsaxguy/Mastowatch-sub001/marshaller"
	"github.com/theepicsaxguy/Mastowatch-sub001/values"
)

type partsBuilder struct {
	parts []marshaller.Part
	err   error
}

func (b *partsBuilder) file(name string, f *values.File) {
	if f == nil {
		return
	}
	b.parts = append(b.parts, marshaller.FilePart(name, *f))
}

func (b *partsBuilder) build(additional marshaller.AdditionalProperties) ([]marshaller.Part, error) {
	if b.err != nil {
		return nil, b.err
	}

	extra, err := marshaller.AdditionalParts(additional)
	if err != nil {
		return nil, err
	}

	return append(b.parts, extra...), nil
}

func addPart[T any](b *partsBuilder, name string, v *T) {
	if b.err != nil || v == nil {
		return
	}

	part, err := marshaller.ValuePart(name, *v)
	if err != nil {
		b.err = err
		return
	}
	b.parts = append(b.parts, part)
}

// UpdateCredentialsBody changes the authenticated user's profile. Unset fields are left as they
// are on the server.
type UpdateCredentialsBody struct {
	DisplayName      *string
	Note             *string
	Avatar           *values.File
	Header           *values.File
	Locked           *bool
	Bot              *bool
	Discoverable     *bool
	HideCollections  *bool
	Indexable        *bool
	FieldsAttributes []AccountFieldAttributes
	Source           *CredentialsSource

	AdditionalProperties marshaller.AdditionalProperties
}

// AccountFieldAttributes is a profile field to set.
type AccountFieldAttributes struct {
	Name  string
	Value string
}

// CredentialsSource holds the posting defaults to set.
type CredentialsSource struct {
	Privacy   *StatusVisibility
	Sensitive *bool
	Language  *string
}

// Parts returns the body as multipart/form-data parts.
func (b UpdateCredentialsBody) Parts() ([]marshaller.Part, error) {
	var pb partsBuilder

	addPart(&pb, "display_name", b.DisplayName)
	addPart(&pb, "note", b.Note)
	pb.file("avatar", b.Avatar)
	pb.file("header", b.Header)
	addPart(&pb, "locked", b.Locked)
	addPart(&pb, "bot", b.Bot)
	addPart(&pb, "discoverable", b.Discoverable)
	addPart(&pb, "hide_collections", b.HideCollections)
	addPart(&pb, "indexable", b.Indexable)

	for i, field := range b.FieldsAttributes {
		addPart(&pb, fmt.Sprintf("fields_attributes[%d][name]", i), &field.Name)
		addPart(&pb, fmt.Sprintf("fields_attributes[%d][value]", i), &field.Value)
	}

	if b.Source != nil {
		addPart(&pb, "source[privacy]", b.Source.Privacy)
		addPart(&pb, "source[sensitive]", b.Source.Sensitive)
		addPart(&pb, "source[language]", b.Source.Language)
	}

	return pb.build(b.AdditionalProperties)
}

// CreateMediaBody uploads a media file. Focus is "x,y" with each axis in -1.0 to 1.0.
type CreateMediaBody struct {
	File        values.File
	Thumbnail   *values.File
	Description *string
	Focus       *string

	AdditionalProperties marshaller.AdditionalProperties
}

// Parts returns the body as multipart/form-data parts.
func (b CreateMediaBody) Parts() ([]marshaller.Part, error) {
	var pb partsBuilder

	pb.file("file", &b.File)
	pb.file("thumbnail", b.Thumbnail)
	addPart(&pb, "description", b.Description)
	addPart(&pb, "focus", b.Focus)

	return pb.build(b.AdditionalProperties)
}

// UpdateMediaBody changes an attachment that is not yet used by a status.
type UpdateMediaBody struct {
	Thumbnail   *values.File
	Description *string
	Focus       *string

	AdditionalProperties marshaller.AdditionalProperties
}

// Parts returns the body as multipart/form-data parts.
func (b UpdateMediaBody) Parts() ([]marshaller.Part, error) {
	var pb partsBuilder

	pb.file("thumbnail", b.Thumbnail)
	addPart(&pb, "description", b.Description)
	addPart(&pb, "focus", b.Focus)

	return pb.build(b.AdditionalProperties)
}

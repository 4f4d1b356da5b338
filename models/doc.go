// Package models contains the Mastodon API entities and request bodies.
//
// Field shapes follow one convention:
//
//   - a required field is a plain value with no omit option
//   - a required field that may be null is a values.Nullable without an omit option
//   - an optional field is a pointer or slice tagged omitzero
//   - an optional field that may be null is a values.Nullable tagged omitzero
//
// Decoding rejects objects missing a required key and strings outside an enum. Keys a model
// does not declare are kept, in order, in its AdditionalProperties and written back when the
// model is encoded, so a decoded entity re-encodes to the same document.
package models

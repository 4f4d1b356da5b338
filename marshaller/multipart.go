package marshaller

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/textproto"
	"strings"

	"github.com/theepicsaxguy/Mastowatch-sub001/values"
)

// Part is a single part of a multipart/form-data body.
type Part struct {
	Name        string
	FileName    string
	ContentType string
	Headers     map[string]string
	Content     io.Reader
}

// TextPart returns a text/plain part without a filename.
func TextPart(name, value string) Part {
	return Part{
		Name:        name,
		ContentType: "text/plain",
		Content:     strings.NewReader(value),
	}
}

// ValuePart returns a text part holding the formatted scalar v.
func ValuePart(name string, v any) (Part, error) {
	text, err := FormatValue(v)
	if err != nil {
		return Part{}, fmt.Errorf("encoding multipart field %s: %w", name, err)
	}

	return TextPart(name, text), nil
}

// ListParts returns one text part per element, all sharing name.
func ListParts[T any](name string, items []T) ([]Part, error) {
	parts := make([]Part, 0, len(items))
	for _, item := range items {
		part, err := ValuePart(name, item)
		if err != nil {
			return nil, err
		}
		parts = append(parts, part)
	}

	return parts, nil
}

// FilePart returns a binary part carrying f. A file with no payload is sent with an empty body.
func FilePart(name string, f values.File) Part {
	content := f.Payload
	if content == nil {
		content = strings.NewReader("")
	}

	return Part{
		Name:        name,
		FileName:    f.FileName,
		ContentType: f.ContentType(),
		Headers:     f.Headers,
		Content:     content,
	}
}

// AdditionalParts returns a text part per additional property, in order.
func AdditionalParts(additional AdditionalProperties) ([]Part, error) {
	parts := make([]Part, 0, additional.Len())
	for key, value := range additional.All() {
		part, err := ValuePart(key, value)
		if err != nil {
			return nil, err
		}
		parts = append(parts, part)
	}

	return parts, nil
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

// WriteMultipart writes parts to w as multipart/form-data and returns the Content-Type, including
// the boundary, that must accompany the body.
func WriteMultipart(w io.Writer, parts []Part) (string, error) {
	mw := multipart.NewWriter(w)

	for _, part := range parts {
		disposition := fmt.Sprintf(`form-data; name="%s"`, quoteEscaper.Replace(part.Name))
		if part.FileName != "" {
			disposition += fmt.Sprintf(`; filename="%s"`, quoteEscaper.Replace(part.FileName))
		}

		header := make(textproto.MIMEHeader)
		header.Set("Content-Disposition", disposition)
		if part.ContentType != "" {
			header.Set("Content-Type", part.ContentType)
		}
		for k, v := range part.Headers {
			header.Set(k, v)
		}

		pw, err := mw.CreatePart(header)
		if err != nil {
			return "", fmt.Errorf("creating part %s: %w", part.Name, err)
		}

		if part.Content != nil {
			if _, err := io.Copy(pw, part.Content); err != nil {
				return "", fmt.Errorf("writing part %s: %w", part.Name, err)
			}
		}
	}

	if err := mw.Close(); err != nil {
		return "", err
	}

	return mw.FormDataContentType(), nil
}

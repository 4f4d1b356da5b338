package marshaller_test

import (
	"bytes"
	"io"
	"mime"
	"mime/multipart"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/theepicsaxguy/Mastowatch-sub001/marshaller"
	"github.com/theepicsaxguy/Mastowatch-sub001/sequencedmap"
	"github.com/theepicsaxguy/Mastowatch-sub001/values"
)

type readPart struct {
	name        string
	fileName    string
	contentType string
	header      string
	content     string
}

func readMultipart(t *testing.T, contentType string, body []byte) []readPart {
	t.Helper()

	mediaType, params, err := mime.ParseMediaType(contentType)
	require.NoError(t, err)
	require.Equal(t, "multipart/form-data", mediaType)

	var parts []readPart
	mr := multipart.NewReader(bytes.NewReader(body), params["boundary"])
	for {
		p, err := mr.NextPart()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)

		content, err := io.ReadAll(p)
		require.NoError(t, err)

		parts = append(parts, readPart{
			name:        p.FormName(),
			fileName:    p.FileName(),
			contentType: p.Header.Get("Content-Type"),
			header:      p.Header.Get("X-Extra"),
			content:     string(content),
		})
	}

	return parts
}

func TestWriteMultipart_Success(t *testing.T) {
	t.Parallel()

	file := values.File{
		Payload:  strings.NewReader("abc"),
		FileName: "a.png",
		MimeType: "image/png",
		Headers:  map[string]string{"X-Extra": "1"},
	}
	sensitive, err := marshaller.ValuePart("sensitive", true)
	require.NoError(t, err)
	ids, err := marshaller.ListParts("media_ids", []string{"1", "2"})
	require.NoError(t, err)

	parts := append([]marshaller.Part{
		marshaller.FilePart("file", file),
		marshaller.TextPart("description", "alt"),
		sensitive,
	}, ids...)

	var body bytes.Buffer
	contentType, err := marshaller.WriteMultipart(&body, parts)
	require.NoError(t, err)

	assert.Equal(t, []readPart{
		{name: "file", fileName: "a.png", contentType: "image/png", header: "1", content: "abc"},
		{name: "description", contentType: "text/plain", content: "alt"},
		{name: "sensitive", contentType: "text/plain", content: "true"},
		{name: "media_ids", contentType: "text/plain", content: "1"},
		{name: "media_ids", contentType: "text/plain", content: "2"},
	}, readMultipart(t, contentType, body.Bytes()))
}

func TestWriteMultipart_EmptyFile_Success(t *testing.T) {
	t.Parallel()

	var body bytes.Buffer
	contentType, err := marshaller.WriteMultipart(&body, []marshaller.Part{
		marshaller.FilePart("file", values.NewFile("empty.bin", nil, "")),
		marshaller.FilePart("thumbnail", values.File{}),
	})
	require.NoError(t, err)

	parts := readMultipart(t, contentType, body.Bytes())
	require.Len(t, parts, 2)
	assert.Equal(t, "empty.bin", parts[0].fileName)
	assert.Equal(t, "application/octet-stream", parts[0].contentType)
	assert.Empty(t, parts[0].content)
	assert.Empty(t, parts[1].content)
}

func TestAdditionalParts_Success(t *testing.T) {
	t.Parallel()

	extra := sequencedmap.New[string, any]()
	extra.Set("locale", "en")
	extra.Set("count", 3)
	extra.Set("obj", map[string]int{"a": 1})

	parts, err := marshaller.AdditionalParts(extra)
	require.NoError(t, err)

	var body bytes.Buffer
	contentType, err := marshaller.WriteMultipart(&body, parts)
	require.NoError(t, err)

	read := readMultipart(t, contentType, body.Bytes())
	require.Len(t, read, 3)
	assert.Equal(t, "en", read[0].content)
	assert.Equal(t, "3", read[1].content)
	assert.Equal(t, `{"a":1}`, read[2].content)

	none, err := marshaller.AdditionalParts(nil)
	require.NoError(t, err)
	assert.Empty(t, none)
}

type visibility string

func TestFormatValue_Success(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		input    any
		expected string
	}{
		{name: "string", input: "a b", expected: "a b"},
		{name: "string enum", input: visibility("unlisted"), expected: "unlisted"},
		{name: "bool", input: false, expected: "false"},
		{name: "int", input: 40, expected: "40"},
		{name: "uint", input: uint8(7), expected: "7"},
		{name: "float", input: 0.5, expected: "0.5"},
		{name: "datetime", input: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), expected: "2024-01-01T00:00:00Z"},
		{name: "date", input: values.Date{Year: 2024, Month: time.March, Day: 5}, expected: "2024-03-05"},
		{name: "list falls back to json", input: []int{1, 2}, expected: "[1,2]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			actual, err := marshaller.FormatValue(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, actual)
		})
	}
}

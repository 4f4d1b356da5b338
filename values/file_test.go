package values_test

import (
	"io"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/theepicsaxguy/Mastowatch-sub001/values"
)

func TestOpenFile_Success(t *testing.T) {
	t.Parallel()
	fsys := fstest.MapFS{
		"uploads/cat.png":   {Data: []byte("png")},
		"uploads/notes.xyz": {Data: []byte("raw")},
	}

	tests := []struct {
		name             string
		path             string
		expectedName     string
		expectedMimeType string
		expectedContent  string
	}{
		{
			name:             "mime type from extension",
			path:             "uploads/cat.png",
			expectedName:     "cat.png",
			expectedMimeType: "image/png",
			expectedContent:  "png",
		},
		{
			name:             "unknown extension falls back",
			path:             "uploads/notes.xyz",
			expectedName:     "notes.xyz",
			expectedMimeType: "application/octet-stream",
			expectedContent:  "raw",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			f, err := values.OpenFile(fsys, tt.path)
			require.NoError(t, err)
			defer f.Close()

			assert.Equal(t, tt.expectedName, f.FileName)
			assert.Equal(t, tt.expectedMimeType, f.ContentType())

			content, err := io.ReadAll(f.Payload)
			require.NoError(t, err)
			assert.Equal(t, tt.expectedContent, string(content))
		})
	}
}

func TestOpenFile_Error(t *testing.T) {
	t.Parallel()

	_, err := values.OpenFile(fstest.MapFS{}, "missing.png")
	require.Error(t, err)
}

func TestNewFile_Success(t *testing.T) {
	t.Parallel()

	f := values.NewFile("", []byte{}, "")
	assert.Equal(t, "application/octet-stream", f.ContentType(), "empty mime type should default")
	require.NoError(t, f.Close(), "in-memory payloads have nothing to close")

	content, err := io.ReadAll(f.Payload)
	require.NoError(t, err)
	assert.Empty(t, content)
}

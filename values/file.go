package values

import (
	"bytes"
	"fmt"
	"io"
	"mime"
	"path"

	"github.com/theepicsaxguy/Mastowatch-sub001/system"
)

const defaultMimeType = "application/octet-stream"

// File is a file to upload as part of a multipart request body.
type File struct {
	// Payload is read once when the request is sent.
	Payload io.Reader
	// FileName is sent as the part's filename when set.
	FileName string
	// MimeType is sent as the part's Content-Type. Defaults to application/octet-stream.
	MimeType string
	// Headers are extra MIME headers written on the file's part.
	Headers map[string]string
}

// NewFile creates a File from in-memory content.
func NewFile(fileName string, content []byte, mimeType string) File {
	return File{
		Payload:  bytes.NewReader(content),
		FileName: fileName,
		MimeType: mimeType,
	}
}

// OpenFile opens name from fsys, guessing the MIME type from the file extension.
// The caller is responsible for calling Close once the request has been sent.
func OpenFile(fsys system.VirtualFS, name string) (File, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return File{}, fmt.Errorf("opening upload %s: %w", name, err)
	}

	mimeType := mime.TypeByExtension(path.Ext(name))
	if mimeType == "" {
		mimeType = defaultMimeType
	}

	return File{
		Payload:  f,
		FileName: path.Base(name),
		MimeType: mimeType,
	}, nil
}

// ContentType returns the MIME type to send for the file.
func (f File) ContentType() string {
	if f.MimeType == "" {
		return defaultMimeType
	}

	return f.MimeType
}

// Close closes the payload if it is closable.
func (f File) Close() error {
	if c, ok := f.Payload.(io.Closer); ok {
		return c.Close()
	}

	return nil
}

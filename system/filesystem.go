// Package system abstracts the host filesystem so uploads can be read from disk in production
// and from memory in tests.
package system

import (
	"io/fs"
	"os"
	"path/filepath"
)

// VirtualFS is the filesystem uploads and CA bundles are read from.
type VirtualFS interface {
	fs.FS
}

// FileSystem reads from the host filesystem. Relative names are resolved against Root when it
// is set, and against the working directory otherwise.
type FileSystem struct {
	Root string
}

var _ VirtualFS = (*FileSystem)(nil)

func (fs *FileSystem) Open(name string) (fs.File, error) {
	return os.Open(fs.resolve(name))
}

// ReadFile reads the whole of name.
func (fs *FileSystem) ReadFile(name string) ([]byte, error) {
	return os.ReadFile(fs.resolve(name))
}

func (fs *FileSystem) resolve(name string) string {
	if fs.Root == "" || filepath.IsAbs(name) {
		return name
	}

	return filepath.Join(fs.Root, name)
}

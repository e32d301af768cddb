package storage

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path"
	"path/filepath"

	"github.com/google/uuid"
)

// MaxImageSize caps uploads at 2MB, same limit the clients already enforce.
const MaxImageSize = 2 << 20

var imageExtensions = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

// LocalStore writes uploaded images to a directory on local disk and hands
// back the public URL path they are served under.
type LocalStore struct {
	dir     string
	urlBase string
}

// NewLocalStore ensures dir exists (with the given subdirectories) and
// returns a store serving files under urlBase (e.g. "/uploads").
func NewLocalStore(dir, urlBase string, subdirs ...string) (*LocalStore, error) {
	for _, sub := range append([]string{""}, subdirs...) {
		if err := os.MkdirAll(filepath.Join(dir, sub), 0o755); err != nil {
			return nil, fmt.Errorf("create upload dir: %w", err)
		}
	}
	return &LocalStore{dir: dir, urlBase: urlBase}, nil
}

// SaveImage validates that the upload is a supported image within the size
// cap, stores it under a fresh uuid name, and returns its public URL path.
func (s *LocalStore) SaveImage(file multipart.File, header *multipart.FileHeader, subdir string) (string, error) {
	if header.Size > MaxImageSize {
		return "", fmt.Errorf("image exceeds %d bytes", MaxImageSize)
	}

	head := make([]byte, 512)
	n, err := file.Read(head)
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("read upload: %w", err)
	}
	contentType := http.DetectContentType(head[:n])
	ext, ok := imageExtensions[contentType]
	if !ok {
		return "", fmt.Errorf("unsupported image type %s", contentType)
	}
	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return "", fmt.Errorf("rewind upload: %w", err)
	}

	name := uuid.NewString() + ext
	dst, err := os.Create(filepath.Join(s.dir, subdir, name))
	if err != nil {
		return "", fmt.Errorf("create file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, io.LimitReader(file, MaxImageSize)); err != nil {
		return "", fmt.Errorf("write file: %w", err)
	}

	return path.Join(s.urlBase, subdir, name), nil
}

// Dir returns the root directory, for mounting the static file server.
func (s *LocalStore) Dir() string {
	return s.dir
}

package upload

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// URLPrefix is the public path under which uploaded files are served.
const URLPrefix = "/api/uploads/"

// MaxFileSize caps uploads at 10 MiB.
const MaxFileSize = 10 << 20

var allowedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
}

// ErrFileType is returned when an upload is not an allowed image type.
var ErrFileType = errors.New("file type not allowed, expected .jpg, .jpeg, .png or .webp")

// ErrFileTooLarge is returned when an upload exceeds MaxFileSize.
var ErrFileTooLarge = errors.New("file exceeds the 10MB size limit")

// Store saves and deletes uploaded images under a single base directory.
type Store struct {
	baseDir string
}

// NewStore creates the upload directory if needed and returns a Store.
func NewStore(baseDir string) (*Store, error) {
	if err := os.MkdirAll(baseDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	return &Store{baseDir: baseDir}, nil
}

// Save writes an uploaded image to disk under a unique name and returns its
// public URL path. The prefix groups files by feature ("hero", "wedding", ...).
func (s *Store) Save(file multipart.File, header *multipart.FileHeader, prefix string) (string, error) {
	ext := strings.ToLower(filepath.Ext(header.Filename))
	if !allowedExtensions[ext] {
		return "", ErrFileType
	}
	if header.Size > MaxFileSize {
		return "", ErrFileTooLarge
	}

	filename := fmt.Sprintf("%s_%s%s", prefix, uuid.New().String(), ext)
	path := filepath.Join(s.baseDir, filename)

	dst, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("failed to write file: %w", err)
	}

	return URLPrefix + filename, nil
}

// Delete removes a previously saved file given its public URL. URLs that do
// not point into the upload directory (external stock images, empty values)
// are ignored.
func (s *Store) Delete(fileURL string) bool {
	if !strings.HasPrefix(fileURL, URLPrefix) {
		return false
	}
	filename := strings.TrimPrefix(fileURL, URLPrefix)
	path, ok := s.Resolve(filename)
	if !ok {
		return false
	}
	if err := os.Remove(path); err != nil {
		return false
	}
	return true
}

// Resolve maps a bare filename to its on-disk path, rejecting anything that
// would escape the upload directory.
func (s *Store) Resolve(filename string) (string, bool) {
	if filename == "" || filename != filepath.Base(filename) {
		return "", false
	}
	path := filepath.Join(s.baseDir, filename)
	if _, err := os.Stat(path); err != nil {
		return "", false
	}
	return path, true
}

// DirSize returns the total size in bytes of all stored uploads.
func (s *Store) DirSize() (uint64, error) {
	var total uint64
	err := filepath.Walk(s.baseDir, func(_ string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() {
			total += uint64(info.Size())
		}
		return nil
	})
	return total, err
}

// BaseDir exposes the configured upload directory.
func (s *Store) BaseDir() string {
	return s.baseDir
}

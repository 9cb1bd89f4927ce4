package blob

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// FilesystemStore implements Store on a local directory. Download URLs
// are server-relative paths the HTTP layer serves with a static route.
// Intended for development and tests.
type FilesystemStore struct {
	root    string
	urlBase string
}

// NewFilesystem creates a store rooted at dir. urlBase is the path
// prefix the files are served under (default /files).
func NewFilesystem(dir, urlBase string) (*FilesystemStore, error) {
	if dir == "" {
		return nil, fmt.Errorf("filesystem store root required")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create store root: %w", err)
	}
	if urlBase == "" {
		urlBase = "/files"
	}
	return &FilesystemStore{root: dir, urlBase: strings.TrimSuffix(urlBase, "/")}, nil
}

// Driver returns DriverFilesystem.
func (s *FilesystemStore) Driver() Driver {
	return DriverFilesystem
}

// Root returns the directory blobs are stored under.
func (s *FilesystemStore) Root() string {
	return s.root
}

// Upload writes the blob to root/key, creating parent directories.
func (s *FilesystemStore) Upload(_ context.Context, key string, r io.Reader, _ string) error {
	target, err := s.keyPath(key)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return fmt.Errorf("failed to create blob directory: %w", err)
	}
	f, err := os.Create(target)
	if err != nil {
		return fmt.Errorf("failed to create blob %s: %w", key, err)
	}
	defer f.Close()
	if _, err := io.Copy(f, r); err != nil {
		return fmt.Errorf("failed to write blob %s: %w", key, err)
	}
	return nil
}

// ResolveURL maps the key to its static-route path. The key must exist.
func (s *FilesystemStore) ResolveURL(_ context.Context, key string) (string, error) {
	target, err := s.keyPath(key)
	if err != nil {
		return "", err
	}
	if _, err := os.Stat(target); err != nil {
		return "", fmt.Errorf("blob %s not found", key)
	}
	return s.urlBase + "/" + path.Clean(key), nil
}

// keyPath resolves key under the root, rejecting escapes.
func (s *FilesystemStore) keyPath(key string) (string, error) {
	clean := path.Clean(key)
	if clean == "." || clean == ".." || strings.HasPrefix(clean, "../") || path.IsAbs(clean) {
		return "", ErrInvalidKey
	}
	return filepath.Join(s.root, filepath.FromSlash(clean)), nil
}

// Package blob abstracts the attachment storage backend. Documents are
// stored under namespaced keys and referenced by name; the core never
// inspects blob content.
package blob

import (
	"context"
	"errors"
	"io"
)

// Driver identifies a concrete storage backend.
type Driver string

const (
	DriverS3         Driver = "s3" // S3 / MinIO compatible
	DriverFilesystem Driver = "fs" // local filesystem (default, dev)
)

// ErrInvalidKey is returned for keys that escape the store namespace.
var ErrInvalidKey = errors.New("invalid blob key")

// Store uploads blobs and resolves stored keys to retrievable URLs.
type Store interface {
	// Upload stores the blob under key, overwriting any previous content.
	Upload(ctx context.Context, key string, r io.Reader, contentType string) error
	// ResolveURL returns a URL the stored blob can be fetched from.
	ResolveURL(ctx context.Context, key string) (string, error)
	// Driver returns the configured backend driver.
	Driver() Driver
}

// Package objectstore abstracts the document binary storage backend.
package objectstore

import "context"

// ObjectStore holds uploaded document binaries addressed by a path key.
type ObjectStore interface {
	// Put stores data under key and returns nil on success.
	Put(ctx context.Context, key, contentType string, data []byte) error

	// Delete removes the object under key. Deleting a missing key is not
	// an error.
	Delete(ctx context.Context, key string) error

	// PublicURL returns the browser-reachable URL of the object under key.
	PublicURL(key string) string
}

package storage

import (
	"errors"
	"io"
)

var (
	ErrNotFound = errors.New("blob not found")
	ErrBadKey   = errors.New("bad blob key")
)

// BlobStore holds opaque byte blobs by key. The audio proxy uses it as a
// cache of upstream files.
type BlobStore interface {
	Put(key string, r io.Reader) (int64, error)
	Get(key string) (io.ReadCloser, error) // ErrNotFound when absent
	Has(key string) bool
	Delete(key string) error
}

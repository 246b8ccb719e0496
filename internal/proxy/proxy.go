// Package proxy passes remote course audio through the server so browsers
// can play it without cross-origin restrictions.
package proxy

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"regexp"
	"time"

	"github.com/mind-engage/mindengage-media/internal/storage"
)

const (
	// MaxFileSize bounds one proxied file; narration tracks are a few MB.
	MaxFileSize = 64 << 20

	cachePrefix = "audio/"
)

var (
	ErrBadFileID = errors.New("invalid file id")
	ErrUpstream  = errors.New("upstream fetch failed")
	ErrTooLarge  = errors.New("upstream file too large")
)

var fileIDPattern = regexp.MustCompile(`^[A-Za-z0-9_-]{1,128}$`)

// Proxy fetches files from a download endpoint of the form
// <upstream>?id=<fileID>&export=download. Cache is optional.
type Proxy struct {
	upstream string
	client   *http.Client
	cache    storage.BlobStore
}

func New(upstream string, client *http.Client, cache storage.BlobStore) *Proxy {
	if client == nil {
		client = &http.Client{Timeout: 60 * time.Second}
	}
	return &Proxy{upstream: upstream, client: client, cache: cache}
}

// Path is the local URL path that serves fileID.
func Path(fileID string) string { return "/api/audio-proxy/" + url.PathEscape(fileID) }

func (p *Proxy) sourceURL(fileID string) (string, error) {
	u, err := url.Parse(p.upstream)
	if err != nil {
		return "", err
	}
	q := u.Query()
	q.Set("id", fileID)
	q.Set("export", "download")
	u.RawQuery = q.Encode()
	return u.String(), nil
}

// Fetch returns the whole file. A cached copy is served when present;
// otherwise the upstream body is read in full, cached, and returned.
func (p *Proxy) Fetch(ctx context.Context, fileID string) ([]byte, error) {
	if !fileIDPattern.MatchString(fileID) {
		return nil, fmt.Errorf("%w: %q", ErrBadFileID, fileID)
	}
	if b, ok := p.cached(fileID); ok {
		return b, nil
	}

	src, err := p.sourceURL(fileID)
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, src, nil)
	if err != nil {
		return nil, err
	}
	resp, err := p.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: %s for %s", ErrUpstream, resp.Status, fileID)
	}
	b, err := io.ReadAll(io.LimitReader(resp.Body, MaxFileSize+1))
	if err != nil {
		return nil, err
	}
	if len(b) > MaxFileSize {
		return nil, fmt.Errorf("%w: %s", ErrTooLarge, fileID)
	}

	if p.cache != nil {
		if _, err := p.cache.Put(cachePrefix+fileID, bytes.NewReader(b)); err != nil {
			log.Printf("proxy: cache %s: %v", fileID, err)
		}
	}
	return b, nil
}

// cached reads a cached copy. A blob that cannot be read is evicted so the
// next fetch goes upstream and rewrites it.
func (p *Proxy) cached(fileID string) ([]byte, bool) {
	key := cachePrefix + fileID
	if p.cache == nil || !p.cache.Has(key) {
		return nil, false
	}
	rc, err := p.cache.Get(key)
	if err == nil {
		var b []byte
		b, err = io.ReadAll(rc)
		rc.Close()
		if err == nil {
			return b, true
		}
	}
	log.Printf("proxy: evict cached %s: %v", fileID, err)
	if err := p.cache.Delete(key); err != nil {
		log.Printf("proxy: evict %s: %v", fileID, err)
	}
	return nil, false
}

// Package thumbnail downloads and renders video thumbnails.
package thumbnail

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"regexp"
	"sync"
	"time"

	"github.com/ytgrid/ytgrid/internal/logger"
	"golang.org/x/sync/errgroup"
)

const maxImageBytes = 4 << 20

var unsafeID = regexp.MustCompile(`[^a-zA-Z0-9_-]`)

// Request asks for the image at URL to be cached under ID.
type Request struct {
	ID  string
	URL string
}

// Cache stores thumbnails as <dir>/<id>.jpg.
type Cache struct {
	dir     string
	workers int
	client  *http.Client

	mu       sync.Mutex
	rendered map[renderKey]string
}

type renderKey struct {
	id            string
	width, height int
}

// New creates a cache rooted at dir.
func New(dir string, workers int, timeout time.Duration) *Cache {
	if workers <= 0 {
		workers = 1
	}
	return &Cache{
		dir:      dir,
		workers:  workers,
		client:   &http.Client{Timeout: timeout},
		rendered: make(map[renderKey]string),
	}
}

// Path returns where the thumbnail for id is stored.
func (c *Cache) Path(id string) string {
	return filepath.Join(c.dir, unsafeID.ReplaceAllString(id, "_")+".jpg")
}

// Has reports whether the thumbnail for id is on disk.
func (c *Cache) Has(id string) bool {
	_, err := os.Stat(c.Path(id))
	return err == nil
}

// Fetch downloads every request not already cached, at most workers at a
// time. It returns the ids that were written; failures of single downloads
// do not stop the others and are joined into the returned error.
func (c *Cache) Fetch(ctx context.Context, reqs []Request) ([]string, error) {
	var (
		mu      sync.Mutex
		fetched []string
		errs    []error
	)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(c.workers)
	seen := make(map[string]bool, len(reqs))
	for _, req := range reqs {
		if req.ID == "" || req.URL == "" || seen[req.ID] || c.Has(req.ID) {
			continue
		}
		seen[req.ID] = true
		g.Go(func() error {
			err := c.download(ctx, req)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				logger.Debug("thumbnail %s: %v", req.ID, err)
				errs = append(errs, fmt.Errorf("thumbnail %s: %w", req.ID, err))
				return nil
			}
			fetched = append(fetched, req.ID)
			return nil
		})
	}
	_ = g.Wait()

	c.mu.Lock()
	for _, id := range fetched {
		for key := range c.rendered {
			if key.id == id {
				delete(c.rendered, key)
			}
		}
	}
	c.mu.Unlock()

	return fetched, errors.Join(errs...)
}

func (c *Cache) download(ctx context.Context, req Request) error {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, req.URL, nil)
	if err != nil {
		return err
	}
	httpReq.Header.Set("User-Agent", "ytgrid/1.0")

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	w, err := newAtomicWriter(c.Path(req.ID))
	if err != nil {
		return err
	}
	n, err := io.Copy(w, io.LimitReader(resp.Body, maxImageBytes+1))
	if err != nil {
		w.Abort()
		return err
	}
	if n > maxImageBytes {
		w.Abort()
		return errors.New("image too large")
	}
	return w.Commit()
}

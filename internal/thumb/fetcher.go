package thumb

import (
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"net/http"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const (
	defaultCacheSize = 64
	defaultTimeout   = 5 * time.Second
	maxImageBytes    = 5 << 20
)

// Fetcher downloads and decodes stop thumbnails. Results, including
// failures other than timeouts, are cached by URL. Safe for concurrent use.
type Fetcher struct {
	httpClient *http.Client
	cache      *lru.Cache[string, image.Image]
	group      singleflight.Group
	timeout    time.Duration
	logger     *zap.Logger
}

// NewFetcher creates a fetcher caching up to cacheSize results.
func NewFetcher(cacheSize int, logger *zap.Logger) (*Fetcher, error) {
	if cacheSize <= 0 {
		cacheSize = defaultCacheSize
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	cache, err := lru.New[string, image.Image](cacheSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create thumbnail cache: %w", err)
	}
	return &Fetcher{
		httpClient: &http.Client{Timeout: defaultTimeout},
		cache:      cache,
		timeout:    defaultTimeout,
		logger:     logger,
	}, nil
}

// Cached returns a previously fetched result without touching the network.
func (f *Fetcher) Cached(url string) (image.Image, bool) {
	return f.cache.Get(url)
}

// Fetch returns the decoded image at url, or nil when it cannot be loaded.
// Concurrent calls for the same url share one download, which runs under
// the fetcher's own timeout so a caller giving up does not fail the others.
// A caller whose ctx ends returns nil without waiting.
func (f *Fetcher) Fetch(ctx context.Context, url string) image.Image {
	if url == "" || ctx.Err() != nil {
		return nil
	}
	if img, ok := f.cache.Get(url); ok {
		return img
	}

	ch := f.group.DoChan(url, func() (any, error) {
		if img, ok := f.cache.Get(url); ok {
			return img, nil
		}
		img, err := f.download(context.WithoutCancel(ctx), url)
		if err != nil {
			f.logger.Warn("thumbnail fetch failed", zap.String("url", url), zap.Error(err))
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				// Timeouts are retried by the next caller.
				return nil, nil
			}
		}
		f.cache.Add(url, img)
		return img, nil
	})

	select {
	case res := <-ch:
		img, _ := res.Val.(image.Image)
		return img
	case <-ctx.Done():
		return nil
	}
}

func (f *Fetcher) download(ctx context.Context, url string) (image.Image, error) {
	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("request creation failed: %w", err)
	}
	req.Header.Set("Accept", "image/*")

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("network error: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	img, _, err := image.Decode(io.LimitReader(resp.Body, maxImageBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}
	return img, nil
}

package thumb

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func pngBytes(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 4, 3))
	img.Set(1, 1, color.RGBA{R: 200, A: 255})
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestFetcher_Fetch(t *testing.T) {
	body := pngBytes(t)

	t.Run("decodes and caches", func(t *testing.T) {
		var hits atomic.Int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			hits.Add(1)
			w.Header().Set("Content-Type", "image/png")
			w.Write(body)
		}))
		defer server.Close()

		f, err := NewFetcher(8, zaptest.NewLogger(t))
		require.NoError(t, err)

		img := f.Fetch(context.Background(), server.URL+"/a.png")
		require.NotNil(t, img)
		assert.Equal(t, 4, img.Bounds().Dx())
		assert.Equal(t, 3, img.Bounds().Dy())

		again := f.Fetch(context.Background(), server.URL+"/a.png")
		assert.Equal(t, img, again)
		assert.Equal(t, int32(1), hits.Load())

		cached, ok := f.Cached(server.URL + "/a.png")
		assert.True(t, ok)
		assert.NotNil(t, cached)
	})

	t.Run("concurrent requests share one download", func(t *testing.T) {
		var hits atomic.Int32
		release := make(chan struct{})
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			hits.Add(1)
			<-release
			w.Write(body)
		}))
		defer server.Close()

		f, err := NewFetcher(8, zaptest.NewLogger(t))
		require.NoError(t, err)

		const workers = 10
		var wg sync.WaitGroup
		results := make([]image.Image, workers)
		for i := 0; i < workers; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				results[i] = f.Fetch(context.Background(), server.URL+"/shared.png")
			}(i)
		}
		close(release)
		wg.Wait()

		assert.Equal(t, int32(1), hits.Load())
		for _, img := range results {
			assert.NotNil(t, img)
		}
	})

	t.Run("failures return nil and are cached", func(t *testing.T) {
		var hits atomic.Int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			hits.Add(1)
			w.WriteHeader(http.StatusNotFound)
		}))
		defer server.Close()

		f, err := NewFetcher(8, zaptest.NewLogger(t))
		require.NoError(t, err)

		assert.Nil(t, f.Fetch(context.Background(), server.URL+"/missing.png"))
		assert.Nil(t, f.Fetch(context.Background(), server.URL+"/missing.png"))
		assert.Equal(t, int32(1), hits.Load())
	})

	t.Run("cancelled caller does not poison the cache", func(t *testing.T) {
		var hits atomic.Int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			hits.Add(1)
			w.Write(body)
		}))
		defer server.Close()

		f, err := NewFetcher(8, zaptest.NewLogger(t))
		require.NoError(t, err)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		assert.Nil(t, f.Fetch(ctx, server.URL+"/a.png"))
		_, ok := f.Cached(server.URL + "/a.png")
		assert.False(t, ok)

		assert.NotNil(t, f.Fetch(context.Background(), server.URL+"/a.png"))
		assert.Equal(t, int32(1), hits.Load())
	})

	t.Run("caller cancelled mid-download", func(t *testing.T) {
		var hits atomic.Int32
		release := make(chan struct{})
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			hits.Add(1)
			<-release
			w.Write(body)
		}))
		defer server.Close()

		f, err := NewFetcher(8, zaptest.NewLogger(t))
		require.NoError(t, err)

		ctx, cancel := context.WithCancel(context.Background())
		done := make(chan image.Image, 1)
		go func() { done <- f.Fetch(ctx, server.URL+"/slow.png") }()

		require.Eventually(t, func() bool { return hits.Load() == 1 }, time.Second, 5*time.Millisecond)
		cancel()
		assert.Nil(t, <-done)

		close(release)
		assert.NotNil(t, f.Fetch(context.Background(), server.URL+"/slow.png"))
		assert.Equal(t, int32(1), hits.Load())
	})

	t.Run("undecodable body", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("not an image"))
		}))
		defer server.Close()

		f, err := NewFetcher(8, zaptest.NewLogger(t))
		require.NoError(t, err)
		assert.Nil(t, f.Fetch(context.Background(), server.URL))
	})

	t.Run("empty url", func(t *testing.T) {
		f, err := NewFetcher(0, nil)
		require.NoError(t, err)
		assert.Nil(t, f.Fetch(context.Background(), ""))
	})
}

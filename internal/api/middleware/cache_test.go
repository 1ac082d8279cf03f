package middleware

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memoryCache is a minimal CacheProvider for exercising the middleware
// without Redis.
type memoryCache struct {
	mu    sync.Mutex
	items map[string][]byte
}

func newMemoryCache() *memoryCache {
	return &memoryCache{items: make(map[string][]byte)}
}

func (c *memoryCache) Get(ctx context.Context, key string) ([]byte, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if v, ok := c.items[key]; ok {
		return v, nil
	}
	return nil, fmt.Errorf("key not found: %s", key)
}

func (c *memoryCache) Set(ctx context.Context, key string, value []byte, expirationSeconds int) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items[key] = value
	return nil
}

func (c *memoryCache) Delete(ctx context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.items, key)
	return nil
}

func (c *memoryCache) DeletePattern(ctx context.Context, pattern string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for key := range c.items {
		if ok, _ := path.Match(pattern, key); ok {
			delete(c.items, key)
		}
	}
	return nil
}

func (c *memoryCache) Exists(ctx context.Context, key string) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.items[key]
	return ok, nil
}

func countingHandler(calls *int) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*calls++
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"ok":true}`))
	})
}

func TestCacheMiddleware_ServesSecondRequestFromCache(t *testing.T) {
	cache := newMemoryCache()
	m := NewCacheMiddleware(cache)

	calls := 0
	handler := m.Middleware(countingHandler(&calls))

	req := httptest.NewRequest(http.MethodGet, "/api/hotels?city=College+Park", nil)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "MISS", rec.Header().Get("X-Cache"))

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "HIT", rec.Header().Get("X-Cache"))
	assert.JSONEq(t, `{"ok":true}`, rec.Body.String())

	assert.Equal(t, 1, calls)
}

func TestCacheMiddleware_SkipsPostRequests(t *testing.T) {
	m := NewCacheMiddleware(newMemoryCache())

	calls := 0
	handler := m.Middleware(countingHandler(&calls))

	req := httptest.NewRequest(http.MethodPost, "/api/bookings", nil)
	for i := 0; i < 2; i++ {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
	}
	assert.Equal(t, 2, calls)
}

func TestCacheMiddleware_UncachedRoutePassesThrough(t *testing.T) {
	m := NewCacheMiddleware(newMemoryCache())

	calls := 0
	handler := m.Middleware(countingHandler(&calls))

	req := httptest.NewRequest(http.MethodGet, "/api/bookings?email=ada@example.com", nil)
	for i := 0; i < 2; i++ {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
	}
	assert.Equal(t, 2, calls)
}

func TestCacheMiddleware_ErrorsAreNotCached(t *testing.T) {
	m := NewCacheMiddleware(newMemoryCache())

	calls := 0
	handler := m.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error":"boom"}`))
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/hotels", nil)
	for i := 0; i < 2; i++ {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	}
	assert.Equal(t, 2, calls)
}

func TestGenerateCacheKey_ReadableAndPatternMatchable(t *testing.T) {
	m := NewCacheMiddleware(newMemoryCache())

	req := httptest.NewRequest(http.MethodGet, "/api/hotels/hotel-college-park", nil)
	key := m.generateCacheKey(req)

	assert.Equal(t, "http:cache:GET:/api/hotels/hotel-college-park", key)

	ok, err := path.Match("http:cache:*", key)
	require.NoError(t, err)
	assert.True(t, ok)
}

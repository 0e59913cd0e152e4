package restapi

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dashboard.aifa.mx/internal/models"
)

func statusHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestRateLimitMiddleware_AllowsRequestsWithinLimit(t *testing.T) {
	limitedHandler := NewRateLimitMiddleware(5, time.Second)(statusHandler())

	for i := 0; i < 5; i++ {
		req := httptest.NewRequest("GET", "/test?key=test-api-key", nil)
		w := httptest.NewRecorder()
		limitedHandler.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code, "Request %d should be allowed", i+1)
	}
}

func TestRateLimitMiddleware_BlocksRequestsOverLimit(t *testing.T) {
	limitedHandler := NewRateLimitMiddleware(3, time.Second)(statusHandler())

	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		limitedHandler.ServeHTTP(w, httptest.NewRequest("GET", "/test?key=test-api-key", nil))
		assert.Equal(t, http.StatusOK, w.Code, "Request %d should be allowed", i+1)
	}

	w := httptest.NewRecorder()
	limitedHandler.ServeHTTP(w, httptest.NewRequest("GET", "/test?key=test-api-key", nil))

	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "3", w.Header().Get("X-RateLimit-Limit"))
	assert.Equal(t, "0", w.Header().Get("X-RateLimit-Remaining"))
	assert.Equal(t, "1", w.Header().Get("Retry-After"))

	var response models.ResponseModel
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, http.StatusTooManyRequests, response.Code)
	assert.Equal(t, 2, response.Version)
}

func TestRateLimitMiddleware_PerClientLimiting(t *testing.T) {
	limitedHandler := NewRateLimitMiddleware(2, time.Second)(statusHandler())

	for i := 0; i < 2; i++ {
		w := httptest.NewRecorder()
		limitedHandler.ServeHTTP(w, httptest.NewRequest("GET", "/test?key=api-key-1", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	}

	w := httptest.NewRecorder()
	limitedHandler.ServeHTTP(w, httptest.NewRequest("GET", "/test?key=api-key-1", nil))
	assert.Equal(t, http.StatusTooManyRequests, w.Code)

	w = httptest.NewRecorder()
	limitedHandler.ServeHTTP(w, httptest.NewRequest("GET", "/test?key=api-key-2", nil))
	assert.Equal(t, http.StatusOK, w.Code, "API key 2 should not be affected")
}

func TestRateLimitMiddleware_KeylessClientsByAddress(t *testing.T) {
	limitedHandler := NewRateLimitMiddleware(1, time.Second)(statusHandler())

	first := httptest.NewRequest("GET", "/test", nil)
	first.RemoteAddr = "10.0.0.1:5000"
	w := httptest.NewRecorder()
	limitedHandler.ServeHTTP(w, first)
	assert.Equal(t, http.StatusOK, w.Code)

	samePort := httptest.NewRequest("GET", "/test", nil)
	samePort.RemoteAddr = "10.0.0.1:6000"
	w = httptest.NewRecorder()
	limitedHandler.ServeHTTP(w, samePort)
	assert.Equal(t, http.StatusTooManyRequests, w.Code, "same host on another port shares the limiter")

	other := httptest.NewRequest("GET", "/test", nil)
	other.RemoteAddr = "10.0.0.2:5000"
	w = httptest.NewRecorder()
	limitedHandler.ServeHTTP(w, other)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRateLimitMiddleware_RefillsOverTime(t *testing.T) {
	limitedHandler := NewRateLimitMiddleware(1, 100*time.Millisecond)(statusHandler())

	w := httptest.NewRecorder()
	limitedHandler.ServeHTTP(w, httptest.NewRequest("GET", "/test?key=refill", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	limitedHandler.ServeHTTP(w, httptest.NewRequest("GET", "/test?key=refill", nil))
	assert.Equal(t, http.StatusTooManyRequests, w.Code)

	time.Sleep(150 * time.Millisecond)

	w = httptest.NewRecorder()
	limitedHandler.ServeHTTP(w, httptest.NewRequest("GET", "/test?key=refill", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRateLimitMiddleware_ZeroAndNegativeLimits(t *testing.T) {
	blocked := NewRateLimitMiddleware(0, time.Second)(statusHandler())
	w := httptest.NewRecorder()
	blocked.ServeHTTP(w, httptest.NewRequest("GET", "/test?key=k", nil))
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "3600", w.Header().Get("Retry-After"))

	unlimited := NewRateLimitMiddleware(-1, time.Second)(statusHandler())
	for i := 0; i < 50; i++ {
		w := httptest.NewRecorder()
		unlimited.ServeHTTP(w, httptest.NewRequest("GET", "/test?key=k", nil))
		require.Equal(t, http.StatusOK, w.Code)
	}
}

func TestRateLimitMiddleware_ConcurrentRequests(t *testing.T) {
	limitedHandler := NewRateLimitMiddleware(10, time.Second)(statusHandler())

	var wg sync.WaitGroup
	var mu sync.Mutex
	allowed := 0
	for i := 0; i < 30; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			w := httptest.NewRecorder()
			limitedHandler.ServeHTTP(w, httptest.NewRequest("GET", "/test?key=concurrent", nil))
			if w.Code == http.StatusOK {
				mu.Lock()
				allowed++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.GreaterOrEqual(t, allowed, 10)
	assert.Less(t, allowed, 30)
}

func TestRateLimitedRoutes(t *testing.T) {
	api := createTestApi(t)
	api.rateLimiter = NewRateLimitMiddleware(2, time.Minute)

	router := httprouter.New()
	api.SetRoutes(router)

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest("GET", "/api/v1/kpis.json?key=TEST", nil))
		codes = append(codes, w.Code)
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
}

func TestRateLimiterCleanupDropsIdleLimiters(t *testing.T) {
	rl := newRateLimiter(5, time.Second)
	defer rl.Stop()

	rl.getLimiter("key:idle")
	busy := rl.getLimiter("key:busy")
	require.True(t, busy.Allow())

	rl.prune()

	rl.mu.RLock()
	defer rl.mu.RUnlock()
	assert.NotContains(t, rl.limiters, "key:idle")
	assert.Contains(t, rl.limiters, "key:busy")
}

func TestRateLimiterStopEndsCleanup(t *testing.T) {
	rl := newRateLimiter(5, time.Second)

	rl.Stop()
	rl.Stop()

	select {
	case <-rl.exited:
	case <-time.After(time.Second):
		t.Fatal("cleanup goroutine still running after Stop")
	}
}

func TestRestAPIStop(t *testing.T) {
	api := NewRestAPI(createTestApi(t).Application)
	limiter := api.limiter

	api.Stop()

	select {
	case <-limiter.exited:
	case <-time.After(time.Second):
		t.Fatal("rate limiter not stopped")
	}
}

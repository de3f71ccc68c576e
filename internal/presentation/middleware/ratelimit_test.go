package middleware

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestRateLimiter_Allow(t *testing.T) {
	rl := NewRateLimiter(5)

	for i := 0; i < 5; i++ {
		require.True(t, rl.Allow(), "request %d should have been allowed", i+1)
	}
	assert.False(t, rl.Allow(), "6th request should have been denied")
}

func TestRateLimiter_Refill(t *testing.T) {
	rl := NewRateLimiter(10)
	for i := 0; i < 10; i++ {
		rl.Allow()
	}
	require.False(t, rl.Allow())

	rl.mu.Lock()
	rl.lastRefill = time.Now().Add(-1 * time.Second)
	rl.mu.Unlock()

	assert.True(t, rl.Allow(), "should be allowed after refill period")
}

func TestRateLimiter_MaxTokensCapped(t *testing.T) {
	rl := NewRateLimiter(5)

	rl.mu.Lock()
	rl.lastRefill = time.Now().Add(-10 * time.Second)
	rl.mu.Unlock()

	allowed := 0
	for i := 0; i < 10; i++ {
		if rl.Allow() {
			allowed++
		}
	}
	assert.Equal(t, 5, allowed)
}

func TestPerClientRateLimiter_IsolatesClients(t *testing.T) {
	pcrl := NewPerClientRateLimiter(2)

	assert.True(t, pcrl.Allow("client-a"))
	assert.True(t, pcrl.Allow("client-a"))
	assert.False(t, pcrl.Allow("client-a"))

	assert.True(t, pcrl.Allow("client-b"))
	assert.Equal(t, 2, len(pcrl.buckets))
}

func TestPerClientRateLimiter_EvictsIdleClients(t *testing.T) {
	pcrl := NewPerClientRateLimiter(1)
	clock := time.Now()
	pcrl.now = func() time.Time { return clock }

	pcrl.Allow("client-a")
	pcrl.Allow("client-b")
	require.Equal(t, 2, len(pcrl.buckets))

	clock = clock.Add(pcrl.idleTTL + time.Second)
	pcrl.Allow("client-c")

	assert.Equal(t, 1, len(pcrl.buckets))
}

func TestPerClientRateLimiter_ConcurrentClients(t *testing.T) {
	const (
		rps       = 5
		clients   = 8
		perClient = 8
	)
	pcrl := NewPerClientRateLimiter(rps)
	clock := time.Now()
	pcrl.now = func() time.Time { return clock }

	var allowed [clients]atomic.Int32
	var wg sync.WaitGroup
	wg.Add(clients * perClient)

	for i := 0; i < clients*perClient; i++ {
		go func(client int) {
			defer wg.Done()
			if pcrl.Allow(fmt.Sprintf("client-%d", client)) {
				allowed[client].Add(1)
			}
		}(i % clients)
	}
	wg.Wait()

	for i := range allowed {
		assert.Equal(t, int32(rps), allowed[i].Load(), "client-%d", i)
	}
	assert.Len(t, pcrl.buckets, clients)
}

func TestPerClientRateLimitMiddleware_KeysByIP(t *testing.T) {
	handler := PerClientRateLimitMiddleware(NewPerClientRateLimiter(1), nil)(okHandler())

	req1 := httptest.NewRequest(http.MethodGet, "/", nil)
	req1.RemoteAddr = "10.0.0.1:12345"
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req1)
	assert.Equal(t, http.StatusOK, rec.Code)

	req2 := httptest.NewRequest(http.MethodGet, "/", nil)
	req2.RemoteAddr = "10.0.0.1:54321"
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req2)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "1", rec.Header().Get("Retry-After"))

	req3 := httptest.NewRequest(http.MethodGet, "/", nil)
	req3.RemoteAddr = "10.0.0.2:12345"
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req3)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPerClientRateLimitMiddleware_CustomRejection(t *testing.T) {
	onLimited := func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte("slow down"))
	}
	handler := PerClientRateLimitMiddleware(NewPerClientRateLimiter(1), onLimited)(okHandler())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	handler.ServeHTTP(httptest.NewRecorder(), req)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "slow down", rec.Body.String())
}

package api

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRateLimiterAllow(t *testing.T) {
	rl := NewRateLimiter(2, time.Minute)

	ok, _ := rl.Allow("10.0.0.1")
	assert.True(t, ok)
	ok, _ = rl.Allow("10.0.0.1")
	assert.True(t, ok)

	ok, retry := rl.Allow("10.0.0.1")
	assert.False(t, ok)
	assert.Greater(t, retry, 0)

	// Independent keys have independent windows.
	ok, _ = rl.Allow("10.0.0.2")
	assert.True(t, ok)
}

func TestRateLimiterWindowReset(t *testing.T) {
	rl := NewRateLimiter(1, 10*time.Millisecond)

	ok, _ := rl.Allow("10.0.0.1")
	assert.True(t, ok)
	ok, _ = rl.Allow("10.0.0.1")
	assert.False(t, ok)

	time.Sleep(15 * time.Millisecond)
	ok, _ = rl.Allow("10.0.0.1")
	assert.True(t, ok)
}

func TestClientKey(t *testing.T) {
	t.Run("remote addr without port", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/", nil)
		r.RemoteAddr = "203.0.113.9:4411"
		assert.Equal(t, "203.0.113.9", clientKey(r))
	})

	t.Run("forwarded-for takes the first hop", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/", nil)
		r.Header.Set("X-Forwarded-For", "198.51.100.7, 10.0.0.1")
		assert.Equal(t, "198.51.100.7", clientKey(r))
	})
}

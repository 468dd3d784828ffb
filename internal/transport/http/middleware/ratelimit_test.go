package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/time/rate"
)

func doRequest(h http.Handler, remoteAddr string) int {
	req := httptest.NewRequest(http.MethodPost, "/login", nil)
	req.RemoteAddr = remoteAddr
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr.Code
}

func TestRateLimiter_AllowsBurstThenThrottles(t *testing.T) {
	rl := NewRateLimiter(rate.Limit(1), 2)
	h := rl.Limit(http.HandlerFunc(okHandler))

	assert.Equal(t, http.StatusOK, doRequest(h, "1.2.3.4:1111"))
	assert.Equal(t, http.StatusOK, doRequest(h, "1.2.3.4:1111"))
	assert.Equal(t, http.StatusTooManyRequests, doRequest(h, "1.2.3.4:1111"))
}

func TestRateLimiter_TracksIPsIndependently(t *testing.T) {
	rl := NewRateLimiter(rate.Limit(1), 1)
	h := rl.Limit(http.HandlerFunc(okHandler))

	assert.Equal(t, http.StatusOK, doRequest(h, "1.2.3.4:1111"))
	assert.Equal(t, http.StatusTooManyRequests, doRequest(h, "1.2.3.4:2222")) // same host, new port
	assert.Equal(t, http.StatusOK, doRequest(h, "5.6.7.8:1111"))
}

package ratelimit

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestRateLimiter(t *testing.T) {
	limiter := New(0, 2)

	handler := limiter.Middleware(RemoteAddr)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	serve := func(remoteAddr string) int {
		r := httptest.NewRequest(http.MethodPost, "/auth/login", nil)
		r.RemoteAddr = remoteAddr

		w := httptest.NewRecorder()
		handler.ServeHTTP(w, r)

		return w.Code
	}

	expected := []int{http.StatusNoContent, http.StatusNoContent, http.StatusTooManyRequests}
	for idx, e := range expected {
		if g := serve("10.0.0.1:1234"); e != g {
			t.Errorf("request #%d: expected '%v', got '%v'", idx, e, g)
		}
	}

	if e, g := http.StatusNoContent, serve("10.0.0.2:1234"); e != g {
		t.Errorf("other client: expected '%v', got '%v'", e, g)
	}

	if e, g := http.StatusTooManyRequests, serve("10.0.0.1:5678"); e != g {
		t.Errorf("same host: expected '%v', got '%v'", e, g)
	}
}

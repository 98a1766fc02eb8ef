package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func get(t *testing.T, h http.Handler, key string) int {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "10.0.0.1:12345"
	if key != "" {
		req.Header.Set("X-API-Key", key)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec.Code
}

func TestRequireAny_OpenWithoutKeys(t *testing.T) {
	h := RequireAny(Keys{})(okHandler())
	if code := get(t, h, ""); code != http.StatusOK {
		t.Fatalf("no configured keys should allow all, got %d", code)
	}
}

func TestRequireAny_RejectsUnknownKey(t *testing.T) {
	h := RequireAny(Keys{Public: []string{"pub"}})(okHandler())
	if code := get(t, h, "wrong"); code != http.StatusUnauthorized {
		t.Fatalf("want 401, got %d", code)
	}
	if code := get(t, h, "pub"); code != http.StatusOK {
		t.Fatalf("want 200 with the right key, got %d", code)
	}
}

func TestRequireAdmin_PublicKeyIsNotEnough(t *testing.T) {
	keys := Keys{Public: []string{"pub"}, Admin: []string{"adm"}}
	h := RequireAdmin(keys)(okHandler())
	if code := get(t, h, "pub"); code != http.StatusForbidden {
		t.Fatalf("want 403 for a public key, got %d", code)
	}
	if code := get(t, h, "adm"); code != http.StatusOK {
		t.Fatalf("want 200 for an admin key, got %d", code)
	}
}

func TestDeny_BodyMatchesStatus(t *testing.T) {
	h := RequireAdmin(Keys{Admin: []string{"adm"}})(okHandler())
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("want 403, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "forbidden") {
		t.Fatalf("403 body should say forbidden, got %q", rec.Body.String())
	}

	h = RequireAny(Keys{Public: []string{"pub"}})(okHandler())
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("want 401, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "unauthorized") {
		t.Fatalf("401 body should say unauthorized, got %q", rec.Body.String())
	}
}

func TestRequireAny_BearerHeader(t *testing.T) {
	h := RequireAny(Keys{Public: []string{"pub"}})(okHandler())
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer pub")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("bearer token should authenticate, got %d", rec.Code)
	}
}

func TestRateLimit_RejectsBeyondBurst(t *testing.T) {
	h := RateLimit(1, 2)(okHandler())

	codes := make([]int, 0, 4)
	for i := 0; i < 4; i++ {
		codes = append(codes, get(t, h, ""))
	}
	if codes[0] != http.StatusOK || codes[1] != http.StatusOK {
		t.Fatalf("burst requests should pass, got %v", codes)
	}
	saw429 := false
	for _, c := range codes[2:] {
		if c == http.StatusTooManyRequests {
			saw429 = true
		}
	}
	if !saw429 {
		t.Fatalf("want a 429 past the burst, got %v", codes)
	}
}

func TestRateLimit_DisabledWhenZero(t *testing.T) {
	h := RateLimit(0, 1)(okHandler())
	for i := 0; i < 20; i++ {
		if code := get(t, h, ""); code != http.StatusOK {
			t.Fatalf("disabled limiter must pass everything, got %d", code)
		}
	}
}

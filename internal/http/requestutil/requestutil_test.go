package requestutil

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestSanitizeRequestID(t *testing.T) {
	if got := SanitizeRequestID("valid-123"); got != "valid-123" {
		t.Fatalf("expected pass-through, got %s", got)
	}
	if got := SanitizeRequestID("bad id"); got == "" || got == "bad id" {
		t.Fatalf("expected sanitized id, got %s", got)
	}
	got := NewRequestID()
	if len(got) != 32 || !requestIDPattern.MatchString(got) {
		t.Fatalf("expected 32-char generated id, got %q", got)
	}
	if NewRequestID() == got {
		t.Fatalf("expected unique request ids")
	}
}

func TestClientIP(t *testing.T) {
	if got := ClientIP(nil); got != "" {
		t.Fatalf("expected empty for nil request, got %q", got)
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Forwarded-For", "1.2.3.4, 5.6.7.8")
	req.Header.Set("X-Real-IP", "7.7.7.7")
	if got := ClientIP(req); got != "1.2.3.4" {
		t.Fatalf("expected first forwarded address, got %s", got)
	}

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Real-IP", "7.7.7.7")
	if got := ClientIP(req); got != "7.7.7.7" {
		t.Fatalf("expected real ip header, got %s", got)
	}

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "9.9.9.9:1234"
	if got := ClientIP(req); got != "9.9.9.9" {
		t.Fatalf("expected remote host without port, got %s", got)
	}

	req.RemoteAddr = "pipe"
	if got := ClientIP(req); got != "pipe" {
		t.Fatalf("expected raw remote addr when it has no port, got %s", got)
	}
}

func TestBearerToken(t *testing.T) {
	cases := []struct {
		header string
		token  string
		ok     bool
	}{
		{"Bearer abc", "abc", true},
		{"bearer abc", "abc", true},
		{"Basic abc", "", false},
		{"Bearer ", "", false},
		{"", "", false},
	}
	for _, tc := range cases {
		req := httptest.NewRequest(http.MethodPost, "/admin/sweep", nil)
		if tc.header != "" {
			req.Header.Set("Authorization", tc.header)
		}
		token, ok := BearerToken(req)
		if token != tc.token || ok != tc.ok {
			t.Fatalf("header %q: expected (%q,%v), got (%q,%v)", tc.header, tc.token, tc.ok, token, ok)
		}
	}
}

func TestTokenMatches(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/admin/sweep", nil)
	req.Header.Set("Authorization", "Bearer secret")

	if !TokenMatches(req, "secret") {
		t.Fatalf("expected matching token")
	}
	if TokenMatches(req, "other") {
		t.Fatalf("expected mismatch")
	}
	if TokenMatches(req, "") {
		t.Fatalf("expected empty configured token to never match")
	}
}

package auth

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestTokenRoundTrip(t *testing.T) {
	Init("test-secret")

	token, err := IssueToken("admin", time.Hour)
	if err != nil {
		t.Fatalf("IssueToken: %v", err)
	}
	if token == "" {
		t.Fatal("expected non-empty token")
	}

	claims, err := VerifyToken(token)
	if err != nil {
		t.Fatalf("VerifyToken: %v", err)
	}
	if claims.Subject != "admin" {
		t.Errorf("Subject: got %q, want %q", claims.Subject, "admin")
	}
}

func TestExpiredToken(t *testing.T) {
	Init("test-secret")

	token, err := IssueToken("admin", -time.Hour)
	if err != nil {
		t.Fatalf("IssueToken: %v", err)
	}

	if _, err := VerifyToken(token); err != ErrInvalidToken {
		t.Errorf("expected ErrInvalidToken for expired token, got %v", err)
	}
}

func TestMalformedToken(t *testing.T) {
	Init("test-secret")

	for _, token := range []string{"", "garbage", "a.b.c"} {
		if _, err := VerifyToken(token); err != ErrInvalidToken {
			t.Errorf("VerifyToken(%q): expected ErrInvalidToken, got %v", token, err)
		}
	}
}

func TestWrongSecretRejected(t *testing.T) {
	Init("test-secret")
	token, err := IssueToken("admin", time.Hour)
	if err != nil {
		t.Fatalf("IssueToken: %v", err)
	}

	Init("another-secret")
	defer Init("test-secret")

	if _, err := VerifyToken(token); err != ErrInvalidToken {
		t.Errorf("expected ErrInvalidToken with wrong secret, got %v", err)
	}
}

func TestMiddleware(t *testing.T) {
	Init("test-secret")

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := r.Context().Value(ClaimsKey).(*Claims)
		if !ok {
			t.Error("expected claims in request context")
		} else if claims.Subject != "admin" {
			t.Errorf("Subject: got %q, want %q", claims.Subject, "admin")
		}
		w.WriteHeader(http.StatusOK)
	})
	handler := Middleware()(next)

	token, err := IssueToken("admin", time.Hour)
	if err != nil {
		t.Fatalf("IssueToken: %v", err)
	}

	tests := []struct {
		name   string
		header string
		status int
	}{
		{"valid bearer token", "Bearer " + token, http.StatusOK},
		{"lowercase scheme", "bearer " + token, http.StatusOK},
		{"missing header", "", http.StatusUnauthorized},
		{"wrong scheme", "Basic " + token, http.StatusUnauthorized},
		{"garbage token", "Bearer garbage", http.StatusUnauthorized},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/admin/credentials", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			if rec.Code != tc.status {
				t.Errorf("status: got %d, want %d", rec.Code, tc.status)
			}
			if tc.status == http.StatusUnauthorized && !strings.Contains(rec.Body.String(), "Not authenticated") {
				t.Errorf("expected detail body, got %q", rec.Body.String())
			}
		})
	}
}

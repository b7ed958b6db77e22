package luxebid

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
)

// fakeCreds is an in-memory CredentialSource.
type fakeCreds struct {
	mu          sync.Mutex
	token       string
	invalidated int
}

func (f *fakeCreds) Token() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.token
}

func (f *fakeCreds) Invalidate(token string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	if token == "" || f.token != token {
		return false
	}
	f.token = ""
	f.invalidated++
	return true
}

func newTestClient(t *testing.T, handler http.Handler) (*Client, *httptest.Server) {
	t.Helper()
	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)
	return NewClient(DefaultConfig().WithBaseURL(ts.URL), nil), ts
}

func TestClientAttachesCredential(t *testing.T) {
	var gotAuth string
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{}`))
	}))
	c.SetCredentials(&fakeCreds{token: "tok-123"})

	if err := c.get(context.Background(), "/users/profile/", nil); err != nil {
		t.Fatalf("get: %v", err)
	}
	if gotAuth != "Bearer tok-123" {
		t.Errorf("Authorization = %q, want %q", gotAuth, "Bearer tok-123")
	}
}

func TestClientUnauthenticatedWithoutCredential(t *testing.T) {
	var gotAuth string
	var hasAuth bool
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_, hasAuth = r.Header["Authorization"]
		w.Write([]byte(`[]`))
	}))

	if err := c.get(context.Background(), "/auctions/", nil); err != nil {
		t.Fatalf("get: %v", err)
	}
	if hasAuth {
		t.Errorf("unexpected Authorization header %q on unauthenticated call", gotAuth)
	}
}

func TestUnauthorizedClearsSessionOnce(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"detail": "token expired"}`))
	}))

	creds := &fakeCreds{token: "stale-tok"}
	c.SetCredentials(creds)

	var authFailures atomic.Int32
	c.OnAuthFailure(func() { authFailures.Add(1) })

	// First rejected call clears the session and schedules navigation.
	err := c.get(context.Background(), "/orders/", nil)
	if err == nil {
		t.Fatal("expected error from 401 response")
	}
	if !IsAuthError(err) {
		t.Errorf("IsAuthError(%v) = false, want true", err)
	}

	// Subsequent calls go out without the stale credential and do not
	// clear anything again.
	if err := c.get(context.Background(), "/orders/", nil); err == nil {
		t.Fatal("expected error from second 401 response")
	}

	if creds.invalidated != 1 {
		t.Errorf("session cleared %d times, want exactly 1", creds.invalidated)
	}
	if got := authFailures.Load(); got != 1 {
		t.Errorf("auth failure callback fired %d times, want 1", got)
	}
	if creds.Token() != "" {
		t.Errorf("credential still present after 401: %q", creds.Token())
	}
}

func TestNoRetryOnServerError(t *testing.T) {
	var requests atomic.Int32
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"detail": "boom"}`))
	}))

	if err := c.get(context.Background(), "/auctions/", nil); err == nil {
		t.Fatal("expected error from 500 response")
	}
	if got := requests.Load(); got != 1 {
		t.Errorf("server saw %d requests, want 1 (no retry)", got)
	}
}

func TestDecodeError(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		body        string
		wantMessage string
		wantFields  map[string][]string
	}{
		{
			name:        "detail message",
			status:      401,
			body:        `{"detail": "invalid credentials"}`,
			wantMessage: "invalid credentials",
		},
		{
			name:        "field errors",
			status:      400,
			body:        `{"email": ["already registered"], "password": ["too short", "too common"]}`,
			wantMessage: "validation failed",
			wantFields:  map[string][]string{"email": {"already registered"}, "password": {"too short", "too common"}},
		},
		{
			name:        "single string field error",
			status:      400,
			body:        `{"otp": "expired"}`,
			wantMessage: "validation failed",
			wantFields:  map[string][]string{"otp": {"expired"}},
		},
		{
			name:        "empty body",
			status:      404,
			body:        "",
			wantMessage: "Not Found",
		},
		{
			name:        "non-JSON body",
			status:      502,
			body:        "Bad Gateway",
			wantMessage: "Bad Gateway",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			apiErr := decodeError(tt.status, []byte(tt.body))
			if apiErr.Status != tt.status {
				t.Errorf("Status = %d, want %d", apiErr.Status, tt.status)
			}
			if apiErr.Message != tt.wantMessage {
				t.Errorf("Message = %q, want %q", apiErr.Message, tt.wantMessage)
			}
			for field, want := range tt.wantFields {
				got := apiErr.FieldMessages(field)
				if len(got) != len(want) {
					t.Fatalf("FieldMessages(%q) = %v, want %v", field, got, want)
				}
				for i := range want {
					if got[i] != want[i] {
						t.Errorf("FieldMessages(%q)[%d] = %q, want %q", field, i, got[i], want[i])
					}
				}
			}
			if tt.wantFields == nil && len(apiErr.Fields) != 0 {
				t.Errorf("unexpected field errors: %v", apiErr.Fields)
			}
		})
	}
}

func TestErrorPredicates(t *testing.T) {
	notFound := wrap("get auction", decodeError(404, []byte(`{"detail": "not found"}`)))
	if !IsNotFound(notFound) {
		t.Errorf("IsNotFound(%v) = false, want true", notFound)
	}
	if IsAuthError(notFound) {
		t.Errorf("IsAuthError(%v) = true, want false", notFound)
	}

	validation := wrap("register", decodeError(400, []byte(`{"email": ["required"]}`)))
	if !IsValidation(validation) {
		t.Errorf("IsValidation(%v) = false, want true", validation)
	}
	if got := FieldMessages(validation, "email"); len(got) != 1 || got[0] != "required" {
		t.Errorf("FieldMessages(email) = %v, want [required]", got)
	}
}

package urlcheck

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestCheck_OK(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client := NewClient(10 * time.Second)
	defer client.CloseIdleConnections()

	status, err := Check(context.Background(), client, srv.URL)
	if err != nil {
		t.Fatalf("Check() unexpected error = %v", err)
	}
	if status != http.StatusOK {
		t.Errorf("Check() = %d, want 200", status)
	}
}

func TestCheck_NonOKStatus(t *testing.T) {
	tests := []struct {
		name   string
		status int
	}{
		{"not found", http.StatusNotFound},
		{"server error", http.StatusInternalServerError},
		{"teapot", http.StatusTeapot},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			}))
			defer srv.Close()

			client := NewClient(10 * time.Second)
			defer client.CloseIdleConnections()

			status, err := Check(context.Background(), client, srv.URL)
			if err != nil {
				t.Fatalf("Check() unexpected error = %v", err)
			}
			if status != tt.status {
				t.Errorf("Check() = %d, want %d", status, tt.status)
			}
		})
	}
}

func TestCheck_ConnectionRefused(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close() // Nothing listening anymore.

	client := NewClient(2 * time.Second)
	defer client.CloseIdleConnections()

	if _, err := Check(context.Background(), client, url); err == nil {
		t.Fatal("Check() expected error for refused connection")
	}
}

func TestCheck_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(5 * time.Second):
		}
	}))
	defer srv.Close()

	client := NewClient(50 * time.Millisecond)
	defer client.CloseIdleConnections()

	if _, err := Check(context.Background(), client, srv.URL); err == nil {
		t.Fatal("Check() expected timeout error")
	}
}

func TestCheck_InvalidURL(t *testing.T) {
	client := NewClient(time.Second)

	if _, err := Check(context.Background(), client, "http://bad url with spaces"); err == nil {
		t.Fatal("Check() expected error for invalid URL")
	}
}

func TestCheck_FollowsRedirect(t *testing.T) {
	final := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer final.Close()

	redirecting := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, final.URL, http.StatusFound)
	}))
	defer redirecting.Close()

	client := NewClient(10 * time.Second)
	defer client.CloseIdleConnections()

	status, err := Check(context.Background(), client, redirecting.URL)
	if err != nil {
		t.Fatalf("Check() unexpected error = %v", err)
	}
	if status != http.StatusOK {
		t.Errorf("Check() = %d, want 200 after redirect", status)
	}
}

package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	tu "github.com/desertthunder/likesync/internal/testing"
)

func TestAPIServiceGet(t *testing.T) {
	t.Run("json response", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Header.Get("X-Auth-File") != "browser.json" {
				t.Errorf("expected auth file header, got %q", r.Header.Get("X-Auth-File"))
			}
			fmt.Fprint(w, `{"status": "ok"}`)
		}))
		defer server.Close()

		svc := NewAPIService(server.URL, "browser.json", nil)
		resp, err := svc.Get(context.Background(), "/health")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if resp.StatusCode != http.StatusOK {
			t.Errorf("expected 200, got %d", resp.StatusCode)
		}
		if !resp.IsJSON {
			t.Error("expected JSON response detection")
		}
	})

	t.Run("non-json response passes through", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			fmt.Fprint(w, "not found")
		}))
		defer server.Close()

		svc := NewAPIService(server.URL, "", nil)
		resp, err := svc.Get(context.Background(), "/missing")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if resp.StatusCode != http.StatusNotFound {
			t.Errorf("expected 404, got %d", resp.StatusCode)
		}
		if resp.IsJSON {
			t.Error("expected non-JSON detection")
		}
		if string(resp.Body) != "not found" {
			t.Errorf("unexpected body %q", resp.Body)
		}
	})

	t.Run("transport error surfaces", func(t *testing.T) {
		client := &http.Client{
			Transport: tu.NewMockRoundTripper(nil, errors.New("connection refused")),
		}

		svc := NewAPIService("http://localhost:1", "", client)
		if _, err := svc.Get(context.Background(), "/health"); err == nil {
			t.Fatal("expected transport error")
		}
	})
}

func TestAPIServicePost(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		if r.Header.Get("Content-Type") != "application/json" {
			t.Errorf("expected JSON content type, got %q", r.Header.Get("Content-Type"))
		}
		fmt.Fprint(w, `{"created": true}`)
	}))
	defer server.Close()

	svc := NewAPIService(server.URL, "", nil)
	resp, err := svc.Post(context.Background(), "/api/playlists", []byte(`{"title": "Pandora"}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !resp.IsJSON {
		t.Error("expected JSON response detection")
	}
}

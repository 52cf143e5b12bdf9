package validate

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestHTTPPlausibilityChecker(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("name"); got != "John" {
			t.Errorf("name query = %q; want John", got)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"name":"John","probability":0.82,"count":12345}`))
	}))
	defer srv.Close()

	checker := NewHTTPPlausibilityChecker(srv.URL, time.Second)
	p, err := checker.Plausibility("John")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p != 0.82 {
		t.Errorf("probability = %v; want 0.82", p)
	}
}

func TestHTTPPlausibilityCheckerServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	checker := NewHTTPPlausibilityChecker(srv.URL, time.Second)
	if _, err := checker.Plausibility("John"); err == nil {
		t.Error("expected an error for non-200 response")
	}
}

func TestHTTPPlausibilityCheckerTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	checker := NewHTTPPlausibilityChecker(srv.URL, 10*time.Millisecond)
	if _, err := checker.Plausibility("John"); err == nil {
		t.Error("expected a timeout error")
	}
}

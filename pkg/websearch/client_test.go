package websearch

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"doc-smart-go/internal/config"
	"doc-smart-go/pkg/log"
)

func TestMain(m *testing.M) {
	log.Init("error", "console", "")
	os.Exit(m.Run())
}

func TestSearch(t *testing.T) {
	var gotKey string
	var gotReq searchRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.Header.Get("X-API-KEY")
		_ = json.NewDecoder(r.Body).Decode(&gotReq)
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"organic":[{"title":"Go","snippet":"Go is a language."},{"title":"Other","snippet":"ignored"}]}`)
	}))
	defer srv.Close()

	t.Setenv("TEST_SEARCH_KEY", "secret-key")
	client := NewClient(config.SearchConfig{BaseURL: srv.URL, APIKeyEnv: "TEST_SEARCH_KEY"})

	results, err := client.Search(context.Background(), "what is go")
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if gotKey != "secret-key" {
		t.Errorf("X-API-KEY = %q", gotKey)
	}
	if gotReq.Query != "what is go" {
		t.Errorf("query = %q", gotReq.Query)
	}
	if len(results) != 2 || results[0].Title != "Go" || results[0].Snippet != "Go is a language." {
		t.Errorf("results = %+v", results)
	}
}

func TestSearch_EmptyOrganic(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"organic":[]}`)
	}))
	defer srv.Close()

	client := NewClient(config.SearchConfig{BaseURL: srv.URL})
	results, err := client.Search(context.Background(), "obscure")
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if len(results) != 0 {
		t.Errorf("results = %+v, want empty", results)
	}
}

func TestSearch_Non200(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	client := NewClient(config.SearchConfig{BaseURL: srv.URL})
	if _, err := client.Search(context.Background(), "anything"); err == nil {
		t.Fatal("expected error, got nil")
	}
}

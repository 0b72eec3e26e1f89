package llm

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

func TestChat(t *testing.T) {
	var gotReq chatRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		_ = json.NewDecoder(r.Body).Decode(&gotReq)
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"choices":[{"message":{"content":"the answer"}}]}`)
	}))
	defer srv.Close()

	client := NewClient(config.LLMConfig{
		APIKey:  "test-key",
		BaseURL: srv.URL,
		Model:   "gpt-4",
		Generation: config.LLMGenerationConfig{
			Temperature: 0.2,
			MaxTokens:   512,
		},
	})

	answer, err := client.Chat(context.Background(), "Context:\nfoo\n\nQuestion: bar")
	if err != nil {
		t.Fatalf("chat failed: %v", err)
	}
	if answer != "the answer" {
		t.Errorf("answer = %q", answer)
	}
	if gotReq.Model != "gpt-4" {
		t.Errorf("model = %q", gotReq.Model)
	}
	if len(gotReq.Messages) != 1 || gotReq.Messages[0].Role != "user" {
		t.Errorf("messages = %+v", gotReq.Messages)
	}
	if gotReq.Temperature == nil || *gotReq.Temperature != 0.2 {
		t.Errorf("temperature = %v", gotReq.Temperature)
	}
	if gotReq.MaxTokens == nil || *gotReq.MaxTokens != 512 {
		t.Errorf("max_tokens = %v", gotReq.MaxTokens)
	}
	if gotReq.TopP != nil {
		t.Errorf("top_p should be omitted when zero, got %v", gotReq.TopP)
	}
}

func TestChat_Errors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		payload string
	}{
		{"non_200", http.StatusBadGateway, `{}`},
		{"empty_choices", http.StatusOK, `{"choices":[]}`},
		{"bad_json", http.StatusOK, `not json`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				fmt.Fprint(w, tt.payload)
			}))
			defer srv.Close()

			client := NewClient(config.LLMConfig{BaseURL: srv.URL, Model: "m"})
			if _, err := client.Chat(context.Background(), "prompt"); err == nil {
				t.Fatal("expected error, got nil")
			}
		})
	}
}

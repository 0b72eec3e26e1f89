package service

import (
	"context"
	"errors"
	"testing"

	"doc-smart-go/pkg/websearch"
)

func TestAskWeb_FormatsFirstResult(t *testing.T) {
	client := &fakeSearchClient{results: []websearch.OrganicResult{
		{Title: "Go", Snippet: "Go is an open source programming language."},
		{Title: "Golang", Snippet: "second result, must be ignored"},
	}}
	svc := NewSearchService(client)

	answer, err := svc.AskWeb(context.Background(), "what is go")
	if err != nil {
		t.Fatalf("ask failed: %v", err)
	}
	want := "Go: Go is an open source programming language."
	if answer != want {
		t.Errorf("answer = %q, want %q", answer, want)
	}
}

func TestAskWeb_NoResults(t *testing.T) {
	svc := NewSearchService(&fakeSearchClient{})

	answer, err := svc.AskWeb(context.Background(), "obscure query")
	if err != nil {
		t.Fatalf("ask failed: %v", err)
	}
	if answer != NoResultAnswer {
		t.Errorf("answer = %q, want %q", answer, NoResultAnswer)
	}
}

func TestAskWeb_UpstreamFailure(t *testing.T) {
	svc := NewSearchService(&fakeSearchClient{err: errors.New("search api down")})

	_, err := svc.AskWeb(context.Background(), "anything")
	if err == nil {
		t.Fatal("expected error, got nil")
	}
}

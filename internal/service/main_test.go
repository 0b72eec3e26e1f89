package service

import (
	"context"
	"io"
	"os"
	"testing"

	"doc-smart-go/pkg/log"
	"doc-smart-go/pkg/websearch"
)

func TestMain(m *testing.M) {
	log.Init("error", "console", "")
	os.Exit(m.Run())
}

// 以下为业务逻辑测试共用的桩实现。

type fakeObjectStore struct {
	saved []string
	err   error
}

func (f *fakeObjectStore) Save(_ context.Context, objectName string, _ io.Reader, _ int64, _ string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.saved = append(f.saved, objectName)
	return "documents/" + objectName, nil
}

type fakeExtractor struct {
	text string
	err  error
}

func (f *fakeExtractor) Extract(_ context.Context, _ []byte, _, _ string) (string, error) {
	return f.text, f.err
}

type fakeEmbedder struct {
	vec []float32
	err error
}

func (f *fakeEmbedder) CreateEmbedding(_ context.Context, _ string) ([]float32, error) {
	return f.vec, f.err
}

type fakeLLM struct {
	answer    string
	err       error
	gotPrompt string
}

func (f *fakeLLM) Chat(_ context.Context, prompt string) (string, error) {
	f.gotPrompt = prompt
	return f.answer, f.err
}

type fakeSearchClient struct {
	results []websearch.OrganicResult
	err     error
}

func (f *fakeSearchClient) Search(_ context.Context, _ string) ([]websearch.OrganicResult, error) {
	return f.results, f.err
}

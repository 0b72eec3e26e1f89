// Package websearch 提供了一个联网搜索 API（Serper 风格）的客户端。
package websearch

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"

	"doc-smart-go/internal/config"
	"doc-smart-go/pkg/log"
)

// Client defines the interface for a web search client.
type Client interface {
	Search(ctx context.Context, query string) ([]OrganicResult, error)
}

// OrganicResult 表示一条自然搜索结果。
type OrganicResult struct {
	Title   string `json:"title"`
	Snippet string `json:"snippet"`
}

type serperClient struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

// NewClient creates a new web search client.
// API Key 从 cfg.APIKeyEnv 指定的环境变量读取（默认 SEARCH_API_KEY）。
func NewClient(cfg config.SearchConfig) Client {
	keyEnv := cfg.APIKeyEnv
	if keyEnv == "" {
		keyEnv = "SEARCH_API_KEY"
	}
	return &serperClient{
		baseURL: cfg.BaseURL,
		apiKey:  os.Getenv(keyEnv),
		client:  &http.Client{},
	}
}

type searchRequest struct {
	Query string `json:"q"`
}

type searchResponse struct {
	Organic []OrganicResult `json:"organic"`
}

// Search 向搜索 API 发起一次请求，返回自然结果列表（可能为空）。
func (c *serperClient) Search(ctx context.Context, query string) ([]OrganicResult, error) {
	log.Infof("[WebSearchClient] 开始调用搜索 API, query: %s", query)

	reqBytes, err := json.Marshal(searchRequest{Query: query})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal search request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.baseURL, bytes.NewReader(reqBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to create search request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-API-KEY", c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		log.Errorf("[WebSearchClient] 调用搜索 API 失败, error: %v", err)
		return nil, fmt.Errorf("failed to call search api: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Errorf("[WebSearchClient] 搜索 API 返回非 200 状态码: %s", resp.Status)
		return nil, fmt.Errorf("search api returned non-200 status: %s", resp.Status)
	}

	var searchResp searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&searchResp); err != nil {
		log.Errorf("[WebSearchClient] 解析搜索 API 响应失败, error: %v", err)
		return nil, fmt.Errorf("failed to decode search response: %w", err)
	}

	log.Infof("[WebSearchClient] 搜索完成, 返回 %d 条自然结果", len(searchResp.Organic))
	return searchResp.Organic, nil
}

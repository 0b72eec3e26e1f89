// Package service 提供了联网问答相关的业务逻辑。
package service

import (
	"context"
	"fmt"

	"doc-smart-go/pkg/log"
	"doc-smart-go/pkg/websearch"
)

// NoResultAnswer 是搜索无自然结果时返回的固定文案。
const NoResultAnswer = "No relevant result found."

// SearchService 定义了联网问答的操作接口。
type SearchService interface {
	// AskWeb 用搜索 API 的首条自然结果回答问题。
	AskWeb(ctx context.Context, query string) (string, error)
}

type searchService struct {
	searchClient websearch.Client
}

// NewSearchService 创建一个新的 SearchService 实例。
func NewSearchService(searchClient websearch.Client) SearchService {
	return &searchService{searchClient: searchClient}
}

// AskWeb 发起一次搜索，将首条自然结果格式化为 "标题: 摘要"；
// 无结果时返回固定文案。不做排序和多结果合成。
func (s *searchService) AskWeb(ctx context.Context, query string) (string, error) {
	log.Infof("[SearchService] 开始联网问答, query: '%s'", query)

	results, err := s.searchClient.Search(ctx, query)
	if err != nil {
		return "", fmt.Errorf("failed to query web search: %w", err)
	}

	if len(results) == 0 {
		log.Infof("[SearchService] 搜索无自然结果, query: '%s'", query)
		return NoResultAnswer, nil
	}

	answer := fmt.Sprintf("%s: %s", results[0].Title, results[0].Snippet)
	log.Infof("[SearchService] 联网问答完成, query: '%s'", query)
	return answer, nil
}

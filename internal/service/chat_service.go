package service

import (
	"context"
	"fmt"

	"doc-smart-go/internal/model"
	"doc-smart-go/internal/repository"
	"doc-smart-go/pkg/embedding"
	"doc-smart-go/pkg/llm"
	"doc-smart-go/pkg/log"
)

// ChatService 定义了知识库问答的操作接口。
type ChatService interface {
	// Ask 检索与问题最相近的文档作为上下文，交给 LLM 生成回答。
	Ask(ctx context.Context, query, fileID string) (string, error)
}

type chatService struct {
	embeddingClient embedding.Client
	llmClient       llm.Client
	vectorRepo      repository.VectorRepository
}

// NewChatService 创建一个新的 ChatService 实例。
func NewChatService(embeddingClient embedding.Client, llmClient llm.Client, vectorRepo repository.VectorRepository) ChatService {
	return &chatService{
		embeddingClient: embeddingClient,
		llmClient:       llmClient,
		vectorRepo:      vectorRepo,
	}
}

// Ask 执行 检索 → 组装 prompt → 生成 的单轮问答流程。
func (s *chatService) Ask(ctx context.Context, query, fileID string) (string, error) {
	log.Infof("[ChatService] 收到问答请求, query: '%s', fileID: '%s'", query, fileID)

	// 1. 检索上下文。当前为全库检索，fileID 仅透传记录。
	// TODO: 在索引中按文档维护位置映射后，支持将检索限定在 fileID 对应的文档内。
	contextDoc, err := s.retrieve(ctx, query)
	if err != nil {
		return "", err
	}
	log.Infof("[ChatService] 步骤1: 检索到上下文, docID: %s, 长度: %d", contextDoc.ID, len(contextDoc.Text))

	// 2. 组装单轮 prompt，上下文原文在前，问题在后
	prompt := fmt.Sprintf("Context:\n%s\n\nQuestion: %s", contextDoc.Text, query)

	// 3. 调用 LLM 生成回答，原样返回模型输出
	answer, err := s.llmClient.Chat(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("failed to generate answer: %w", err)
	}

	log.Infof("[ChatService] 问答完成, query: '%s'", query)
	return answer, nil
}

// retrieve 向量化问题并返回全库中距离最近的文档。
func (s *chatService) retrieve(ctx context.Context, query string) (model.Document, error) {
	queryVector, err := s.embeddingClient.CreateEmbedding(ctx, query)
	if err != nil {
		return model.Document{}, fmt.Errorf("failed to create query embedding: %w", err)
	}

	return s.vectorRepo.Nearest(queryVector)
}

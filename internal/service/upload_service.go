// Package service 包含了应用的业务逻辑层。
package service

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"doc-smart-go/internal/extractor"
	"doc-smart-go/internal/model"
	"doc-smart-go/internal/repository"
	"doc-smart-go/pkg/embedding"
	"doc-smart-go/pkg/log"
	"doc-smart-go/pkg/storage"
)

// UploadService 定义了文件上传入库的操作接口。
type UploadService interface {
	// ProcessFile 保存原始文件、提取文本、向量化并写入索引。
	ProcessFile(ctx context.Context, fileName, mediaType string, reader io.Reader, size int64) error
}

type uploadService struct {
	store           storage.ObjectStore
	textExtractor   extractor.TextExtractor
	embeddingClient embedding.Client
	vectorRepo      repository.VectorRepository
}

// NewUploadService 创建一个新的 UploadService 实例。
func NewUploadService(
	store storage.ObjectStore,
	textExtractor extractor.TextExtractor,
	embeddingClient embedding.Client,
	vectorRepo repository.VectorRepository,
) UploadService {
	return &uploadService{
		store:           store,
		textExtractor:   textExtractor,
		embeddingClient: embeddingClient,
		vectorRepo:      vectorRepo,
	}
}

// ProcessFile 是上传处理的主流程：存储 → 提取 → 向量化 → 入索引。
// 文档 ID 由存储后的对象名派生；重名上传会产生重复 ID 的新记录。
func (s *uploadService) ProcessFile(ctx context.Context, fileName, mediaType string, reader io.Reader, size int64) error {
	log.Infof("[UploadService] 开始处理文件, fileName: %s, mediaType: %s, size: %d", fileName, mediaType, size)

	// 1. 读入内存缓冲区，存储与提取共用同一份内容
	buf := new(bytes.Buffer)
	if _, err := buf.ReadFrom(reader); err != nil {
		return fmt.Errorf("读取上传内容失败: %w", err)
	}

	// 2. 保存原始文件到对象存储
	objectName := "uploads/" + fileName
	path, err := s.store.Save(ctx, objectName, bytes.NewReader(buf.Bytes()), size, mediaType)
	if err != nil {
		return fmt.Errorf("保存文件失败: %w", err)
	}
	log.Infof("[UploadService] 步骤1: 文件已保存, path: %s", path)

	// 3. 提取文本
	text, err := s.textExtractor.Extract(ctx, buf.Bytes(), mediaType, fileName)
	if err != nil {
		return err
	}
	log.Infof("[UploadService] 步骤2: 文本提取成功, 长度: %d", len(text))

	// 4. 向量化
	vector, err := s.embeddingClient.CreateEmbedding(ctx, text)
	if err != nil {
		return fmt.Errorf("向量化失败: %w", err)
	}

	// 5. 原子写入索引
	doc := model.Document{ID: objectName, Text: text}
	if err := s.vectorRepo.Insert(vector, doc); err != nil {
		return fmt.Errorf("写入向量索引失败: %w", err)
	}

	log.Infof("[UploadService] 文件处理完成, docID: %s, 索引大小: %d", doc.ID, s.vectorRepo.Size())
	return nil
}

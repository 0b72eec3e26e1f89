// Package repository 提供了数据访问层。
package repository

import (
	"errors"
	"fmt"
	"sync"

	"doc-smart-go/internal/model"
)

// ErrEmptyIndex 表示索引中还没有任何文档，无法执行最近邻检索。
var ErrEmptyIndex = errors.New("vector index is empty")

// VectorRepository 定义了向量索引与文档记录的组合存储接口。
// 插入必须保证向量与文档记录在同一位置上原子地一一对应。
type VectorRepository interface {
	Insert(vector []float32, doc model.Document) error
	Nearest(vector []float32) (model.Document, error)
	Size() int
}

// memoryVectorRepository 是进程内的暴力最近邻存储：
// 向量和文档记录保存在两个平行切片中，由同一把锁保护，
// 位置 i 的向量恒对应位置 i 的文档。只增不删，进程退出即丢失。
type memoryVectorRepository struct {
	mu         sync.RWMutex
	dimensions int
	vectors    [][]float32
	documents  []model.Document
}

// NewMemoryVectorRepository 创建一个空的内存向量存储。
func NewMemoryVectorRepository(dimensions int) VectorRepository {
	return &memoryVectorRepository{dimensions: dimensions}
}

// Insert 在一次加锁内同时追加向量和文档记录，保证两个结构不会错位。
func (r *memoryVectorRepository) Insert(vector []float32, doc model.Document) error {
	if len(vector) != r.dimensions {
		return fmt.Errorf("向量维度不匹配: 期望 %d, 实际 %d", r.dimensions, len(vector))
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.vectors = append(r.vectors, vector)
	r.documents = append(r.documents, doc)
	return nil
}

// Nearest 对所有已存向量做 k=1 的欧氏距离最近邻检索。
func (r *memoryVectorRepository) Nearest(vector []float32) (model.Document, error) {
	if len(vector) != r.dimensions {
		return model.Document{}, fmt.Errorf("向量维度不匹配: 期望 %d, 实际 %d", r.dimensions, len(vector))
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	if len(r.vectors) == 0 {
		return model.Document{}, ErrEmptyIndex
	}

	best := 0
	bestDist := squaredDistance(r.vectors[0], vector)
	for i := 1; i < len(r.vectors); i++ {
		if d := squaredDistance(r.vectors[i], vector); d < bestDist {
			best = i
			bestDist = d
		}
	}
	return r.documents[best], nil
}

// Size 返回已存文档记录的数量。
func (r *memoryVectorRepository) Size() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.documents)
}

// squaredDistance 计算两个向量的欧氏距离平方。
// 只用于比较大小，省掉开方。
func squaredDistance(a, b []float32) float64 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	sum := 0.0
	for i := 0; i < n; i++ {
		d := float64(a[i]) - float64(b[i])
		sum += d * d
	}
	return sum
}

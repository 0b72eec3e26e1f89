// Package model 定义了应用的数据结构。
package model

// Document 表示一份已入库的文档记录。
// ID 由存储后的对象名派生；文本为提取后的全文。
// 记录只增不删，重名上传会产生重复 ID 的新记录。
type Document struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

// AskRequest 定义了知识库问答 API 的请求体结构。
// file_id 当前仅透传记录，检索范围为整个知识库（见 chat_service）。
type AskRequest struct {
	Query  string `json:"query" binding:"required"`
	FileID string `json:"file_id"`
}

// WebAskRequest 定义了联网问答 API 的请求体结构。
type WebAskRequest struct {
	Query string `json:"query" binding:"required"`
}

// AnswerResponse 定义了两个问答 API 共用的响应体结构。
type AnswerResponse struct {
	Answer string `json:"answer"`
}

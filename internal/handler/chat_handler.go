package handler

import (
	"errors"
	"net/http"

	"doc-smart-go/internal/model"
	"doc-smart-go/internal/repository"
	"doc-smart-go/internal/service"
	"doc-smart-go/pkg/log"

	"github.com/gin-gonic/gin"
)

// ChatHandler 负责处理知识库问答的 API 请求。
type ChatHandler struct {
	chatService service.ChatService
}

// NewChatHandler 创建一个新的 ChatHandler 实例。
func NewChatHandler(chatService service.ChatService) *ChatHandler {
	return &ChatHandler{chatService: chatService}
}

// Ask 处理知识库问答请求。
func (h *ChatHandler) Ask(c *gin.Context) {
	var req model.AskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的请求负载"})
		return
	}

	answer, err := h.chatService.Ask(c.Request.Context(), req.Query, req.FileID)
	if err != nil {
		if errors.Is(err, repository.ErrEmptyIndex) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "知识库为空，请先上传文件"})
			return
		}
		log.Error("Ask: failed to answer", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "问答失败"})
		return
	}

	c.JSON(http.StatusOK, model.AnswerResponse{Answer: answer})
}

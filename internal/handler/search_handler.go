package handler

import (
	"net/http"

	"doc-smart-go/internal/model"
	"doc-smart-go/internal/service"
	"doc-smart-go/pkg/log"

	"github.com/gin-gonic/gin"
)

// SearchHandler 负责处理联网问答的 API 请求。
type SearchHandler struct {
	searchService service.SearchService
}

// NewSearchHandler 创建一个新的 SearchHandler 实例。
func NewSearchHandler(searchService service.SearchService) *SearchHandler {
	return &SearchHandler{searchService: searchService}
}

// Ask 处理联网问答请求。
func (h *SearchHandler) Ask(c *gin.Context) {
	var req model.WebAskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的请求负载"})
		return
	}

	answer, err := h.searchService.AskWeb(c.Request.Context(), req.Query)
	if err != nil {
		log.Error("Ask: failed to query web search", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "搜索失败"})
		return
	}

	c.JSON(http.StatusOK, model.AnswerResponse{Answer: answer})
}

// Package handler 包含了处理 HTTP 请求的控制器逻辑。
package handler

import (
	"errors"
	"net/http"

	"doc-smart-go/internal/extractor"
	"doc-smart-go/internal/service"
	"doc-smart-go/pkg/log"

	"github.com/gin-gonic/gin"
)

// UploadHandler 负责处理文件上传入库的 API 请求。
type UploadHandler struct {
	uploadService service.UploadService
}

// NewUploadHandler 创建一个新的 UploadHandler 实例。
func NewUploadHandler(uploadService service.UploadService) *UploadHandler {
	return &UploadHandler{uploadService: uploadService}
}

// Upload 处理文件上传请求：接收 multipart 的 file 字段，
// 按声明的 Content-Type 分发提取并入库。
func (h *UploadHandler) Upload(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "未能获取上传的文件"})
		return
	}
	defer file.Close()

	mediaType := header.Header.Get("Content-Type")
	log.Infof("[UploadHandler] 收到上传请求, fileName: %s, contentType: %s, size: %d", header.Filename, mediaType, header.Size)

	if err := h.uploadService.ProcessFile(c.Request.Context(), header.Filename, mediaType, file, header.Size); err != nil {
		if errors.Is(err, extractor.ErrUnsupportedType) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unsupported file type"})
			return
		}
		log.Error("Upload: failed to process file", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "文件处理失败: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "File processed successfully"})
}

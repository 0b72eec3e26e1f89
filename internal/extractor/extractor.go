// Package extractor 负责把上传的文件内容转换为纯文本。
// 按调用方声明的媒体类型分发：PDF 走本地解析，图片走 OCR，
// 音视频走语音转写；其余类型一律拒绝。
package extractor

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"doc-smart-go/pkg/log"
	"doc-smart-go/pkg/speech"

	"github.com/ledongthuc/pdf"
)

// ErrUnsupportedType 表示声明的媒体类型不在支持范围内。
var ErrUnsupportedType = errors.New("unsupported file type")

// OCRClient 定义了图片文字识别所需的接口。
type OCRClient interface {
	RecognizeText(ctx context.Context, imageReader io.Reader, contentType string) (string, error)
}

// TextExtractor 定义了文本提取器的接口。
type TextExtractor interface {
	Extract(ctx context.Context, data []byte, mediaType, fileName string) (string, error)
}

type extractor struct {
	ocrClient    OCRClient
	speechClient speech.Client
}

// New 创建一个新的文本提取器实例。
func New(ocrClient OCRClient, speechClient speech.Client) TextExtractor {
	return &extractor{
		ocrClient:    ocrClient,
		speechClient: speechClient,
	}
}

// Extract 根据声明的媒体类型提取文本。
// 媒体类型完全信任调用方声明，不做内容嗅探。
func (e *extractor) Extract(ctx context.Context, data []byte, mediaType, fileName string) (string, error) {
	log.Infof("[Extractor] 开始提取文本, file: %s, mediaType: %s, size: %d", fileName, mediaType, len(data))

	switch {
	case strings.Contains(mediaType, "pdf"):
		return extractPDF(data)
	case strings.Contains(mediaType, "image"):
		return e.ocrClient.RecognizeText(ctx, bytes.NewReader(data), mediaType)
	case strings.Contains(mediaType, "audio"), strings.Contains(mediaType, "video"):
		return e.speechClient.Transcribe(ctx, bytes.NewReader(data), fileName)
	default:
		log.Warnf("[Extractor] 不支持的媒体类型: %s", mediaType)
		return "", ErrUnsupportedType
	}
}

// extractPDF 按页提取 PDF 文本，页与页之间用换行符连接。
func extractPDF(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("打开 PDF 失败: %w", err)
	}

	var pages []string
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			return "", fmt.Errorf("提取 PDF 第 %d 页文本失败: %w", i, err)
		}
		pages = append(pages, text)
	}

	log.Infof("[Extractor] PDF 提取完成, 共 %d 页", len(pages))
	return strings.Join(pages, "\n"), nil
}

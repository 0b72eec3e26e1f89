// Package speech provides a client for speech-to-text transcription.
package speech

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"doc-smart-go/internal/config"
	"doc-smart-go/pkg/log"
)

// Client defines the interface for a transcription client.
type Client interface {
	Transcribe(ctx context.Context, audioReader io.Reader, fileName string) (string, error)
}

type openAICompatibleClient struct {
	cfg    config.SpeechConfig
	client *http.Client
}

// NewClient creates a new transcription client for an OpenAI-compatible endpoint.
func NewClient(cfg config.SpeechConfig) Client {
	return &openAICompatibleClient{
		cfg:    cfg,
		client: &http.Client{},
	}
}

type transcriptionResponse struct {
	Text string `json:"text"`
}

// Transcribe 将音频/视频内容以 multipart 形式提交给转写接口，返回转写文本。
func (c *openAICompatibleClient) Transcribe(ctx context.Context, audioReader io.Reader, fileName string) (string, error) {
	log.Infof("[SpeechClient] 开始调用转写 API, model: %s, file: %s", c.cfg.Model, fileName)

	body := new(bytes.Buffer)
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("file", fileName)
	if err != nil {
		return "", fmt.Errorf("failed to create multipart file field: %w", err)
	}
	if _, err := io.Copy(part, audioReader); err != nil {
		return "", fmt.Errorf("failed to copy audio content: %w", err)
	}
	if err := writer.WriteField("model", c.cfg.Model); err != nil {
		return "", fmt.Errorf("failed to write model field: %w", err)
	}
	if err := writer.Close(); err != nil {
		return "", fmt.Errorf("failed to close multipart writer: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.cfg.BaseURL+"/audio/transcriptions", body)
	if err != nil {
		return "", fmt.Errorf("failed to create transcription request: %w", err)
	}

	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)

	resp, err := c.client.Do(req)
	if err != nil {
		log.Errorf("[SpeechClient] 调用转写 API 失败, error: %v", err)
		return "", fmt.Errorf("failed to call transcription api: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		log.Errorf("[SpeechClient] 转写 API 返回非 200 状态码: %s", resp.Status)
		return "", fmt.Errorf("transcription api returned non-200 status: %s, body: %s", resp.Status, string(bodyBytes))
	}

	var transcriptionResp transcriptionResponse
	if err := json.NewDecoder(resp.Body).Decode(&transcriptionResp); err != nil {
		log.Errorf("[SpeechClient] 解析转写 API 响应失败, error: %v", err)
		return "", fmt.Errorf("failed to decode transcription response: %w", err)
	}

	log.Infof("[SpeechClient] 成功获取转写文本, 长度: %d", len(transcriptionResp.Text))
	return transcriptionResp.Text, nil
}

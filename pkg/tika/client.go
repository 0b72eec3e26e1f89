// Package tika 提供了一个与 Apache Tika 服务器交互的客户端，
// 用于图片的 OCR 文字识别。
package tika

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"

	"doc-smart-go/internal/config"
)

// Client 是 Tika 服务器的客户端。
type Client struct {
	serverURL string
	client    *http.Client
}

// NewClient 创建一个新的 Tika 客户端实例。
func NewClient(cfg config.TikaConfig) *Client {
	return &Client{
		serverURL: cfg.ServerURL,
		client:    http.DefaultClient,
	}
}

// RecognizeText 将图片内容发送给 Tika 做 OCR，原样返回识别出的文本。
func (c *Client) RecognizeText(ctx context.Context, imageReader io.Reader, contentType string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, "PUT", c.serverURL+"/tika", imageReader)
	if err != nil {
		return "", fmt.Errorf("创建请求失败: %w", err)
	}

	req.Header.Set("Accept", "text/plain")
	req.Header.Set("Content-Type", contentType)

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("调用 Tika 失败: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("Tika 返回错误 [%d]: %s", resp.StatusCode, string(body))
	}

	buf := new(bytes.Buffer)
	if _, err := io.Copy(buf, resp.Body); err != nil {
		return "", fmt.Errorf("读取 Tika 响应失败: %w", err)
	}

	return buf.String(), nil
}

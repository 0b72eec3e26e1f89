// Package main 是应用程序的入口点。
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"doc-smart-go/internal/config"
	"doc-smart-go/internal/extractor"
	"doc-smart-go/internal/handler"
	"doc-smart-go/internal/middleware"
	"doc-smart-go/internal/repository"
	"doc-smart-go/internal/service"
	"doc-smart-go/pkg/embedding"
	"doc-smart-go/pkg/llm"
	"doc-smart-go/pkg/log"
	"doc-smart-go/pkg/speech"
	"doc-smart-go/pkg/storage"
	"doc-smart-go/pkg/tika"
	"doc-smart-go/pkg/websearch"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// 1. 加载 .env（搜索 API Key 等环境变量），文件不存在时忽略
	_ = godotenv.Load()

	// 2. 初始化配置
	config.Init("./configs/config.yaml")
	cfg := config.Conf

	// 3. 初始化日志记录器
	log.Init(cfg.Log.Level, cfg.Log.Format, cfg.Log.OutputPath)
	defer log.Sync() // 确保在程序退出时刷新所有缓冲的日志条目
	log.Info("日志记录器初始化成功")

	// 4. 初始化对象存储
	objectStore, err := storage.NewMinIOStore(cfg.MinIO)
	if err != nil {
		log.Fatal("初始化 MinIO 失败", err)
	}

	// 5. 初始化外部服务客户端
	tikaClient := tika.NewClient(cfg.Tika)
	speechClient := speech.NewClient(cfg.Speech)
	embeddingClient := embedding.NewClient(cfg.Embedding)
	llmClient := llm.NewClient(cfg.LLM)
	searchClient := websearch.NewClient(cfg.Search)

	// 6. 初始化向量索引（进程生命周期的内存索引，启动时为空）
	vectorRepo := repository.NewMemoryVectorRepository(cfg.Embedding.Dimensions)

	// 7. 初始化 Service (依赖注入)
	textExtractor := extractor.New(tikaClient, speechClient)
	uploadService := service.NewUploadService(objectStore, textExtractor, embeddingClient, vectorRepo)
	chatService := service.NewChatService(embeddingClient, llmClient, vectorRepo)
	searchService := service.NewSearchService(searchClient)

	// 8. 设置 Gin 模式并创建路由引擎
	gin.SetMode(cfg.Server.Mode)
	r := gin.New() // 使用 New() 创建一个不带默认中间件的引擎
	// 添加我们自定义的日志中间件和 Gin 的 Recovery 中间件
	r.Use(middleware.RequestLogger(), gin.Recovery())

	// 9. 注册路由
	api := r.Group("/api")
	{
		file := api.Group("/file")
		{
			file.POST("/upload", handler.NewUploadHandler(uploadService).Upload)
		}

		chat := api.Group("/chat")
		{
			chat.POST("/ask", handler.NewChatHandler(chatService).Ask)
		}

		search := api.Group("/search")
		{
			search.POST("/ask", handler.NewSearchHandler(searchService).Ask)
		}
	}

	// 启动 HTTP 服务器并实现优雅停机
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Server.Port),
		Handler: r,
	}

	go func() {
		log.Infof("服务启动于 %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("HTTP 服务监听失败: %s\n", err)
		}
	}()

	// 等待中断信号以实现优雅停机
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("接收到停机信号，正在关闭服务...")

	// 设置一个5秒的超时上下文
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// 关闭 HTTP 服务器。内存中的向量索引随进程结束丢弃，无需落盘。
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("HTTP 服务器关闭失败: %v", err)
	}

	log.Info("服务已优雅关闭")
}

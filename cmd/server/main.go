package main

import (
	"github.com/gin-gonic/gin"
	"github.com/nexushq/nexus-service/internal/config"
	"github.com/nexushq/nexus-service/internal/genai"
	"github.com/nexushq/nexus-service/internal/logger"
	"github.com/nexushq/nexus-service/internal/logic"
	"github.com/nexushq/nexus-service/internal/router"
	"github.com/nexushq/nexus-service/internal/scheduler"
	"github.com/nexushq/nexus-service/internal/store"
)

func main() {
	// 加载配置
	cfg := config.Load()

	// 初始化日志
	if err := logger.Setup(cfg.Log.Level, cfg.Log.Output, cfg.Log.File); err != nil {
		logger.Fatal("Failed to setup logger: %v", err)
	}
	defer logger.Sync()

	// 初始化内存仓库（装载演示种子数据）
	s := store.NewSeeded()

	// 初始化文本生成客户端
	aiClient := genai.Init(cfg.AI)

	// 初始化聊天中继
	chatLogic, err := logic.NewChatLogic(s, aiClient, cfg.Chat)
	if err != nil {
		logger.Fatal("Failed to initialize chat relay: %v", err)
	}
	defer chatLogic.Close()

	// 设置Gin模式
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	// 初始化路由
	r := router.Setup(s, aiClient, chatLogic, cfg)

	// 启动定时任务
	manager := scheduler.Start(s, cfg)
	defer manager.Stop()

	// 启动服务器
	logger.Info("Server starting on port %s", cfg.Server.Port)
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		logger.Fatal("Failed to start server: %v", err)
	}
}

package router

import (
	"github.com/gin-gonic/gin"
	"github.com/nexushq/nexus-service/internal/config"
	"github.com/nexushq/nexus-service/internal/genai"
	"github.com/nexushq/nexus-service/internal/handler"
	"github.com/nexushq/nexus-service/internal/logic"
	"github.com/nexushq/nexus-service/internal/store"
)

func Setup(s *store.Store, aiClient *genai.Client, chatLogic *logic.ChatLogic, cfg *config.Config) *gin.Engine {
	r := gin.Default()

	// 中间件
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(corsMiddleware())

	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": "nexus-service",
		})
	})

	// API版本组
	v1 := r.Group("/api/v1")
	{
		// 项目相关路由
		projectHandler := handler.NewProjectHandler(s)
		boardHandler := handler.NewBoardHandler(s, aiClient)
		projects := v1.Group("/projects")
		{
			projects.POST("", projectHandler.CreateProject)
			projects.GET("", projectHandler.GetProjects)
			projects.GET("/:id", projectHandler.GetProject)
			projects.PUT("/:id", projectHandler.UpdateProject)
			projects.DELETE("/:id", projectHandler.DeleteProject)
			projects.POST("/:id/members/:userId/toggle", projectHandler.ToggleMember)

			// 看板路由
			projects.GET("/:id/tasks", boardHandler.GetTasks)
			projects.POST("/:id/tasks", boardHandler.QuickAddTask)
			projects.POST("/:id/tasks/ai", boardHandler.CreateTaskWithAI)
			projects.PUT("/:id/tasks/:taskId/status", boardHandler.MoveTask)
			projects.PUT("/:id/tasks/:taskId/due-date", boardHandler.UpdateDueDate)
		}

		// 聚合任务视图与任务分配
		tasks := v1.Group("/tasks")
		{
			tasks.GET("", boardHandler.GetMyTasks)
			tasks.POST("", boardHandler.AssignTask)
		}

		// 团队相关路由
		teamHandler := handler.NewTeamHandler(s)
		team := v1.Group("/team")
		{
			team.GET("", teamHandler.GetTeam)
			team.GET("/:id", teamHandler.GetMember)
			team.POST("", teamHandler.AddEmployee)
		}

		// 聊天相关路由
		chatHandler := handler.NewChatHandler(chatLogic)
		chat := v1.Group("/chat")
		{
			chat.GET("/:channel", chatHandler.GetMessages)
			chat.POST("/:channel", chatHandler.PostMessage)
			chat.GET("/:channel/typing", chatHandler.GetTyping)
		}

		// 通知路由
		notificationHandler := handler.NewNotificationHandler(s)
		v1.GET("/notifications", notificationHandler.GetNotifications)
	}

	return r
}

// CORS中间件
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}

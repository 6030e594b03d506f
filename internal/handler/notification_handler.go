package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nexushq/nexus-service/internal/logic"
	"github.com/nexushq/nexus-service/internal/store"
)

type NotificationHandler struct {
	notificationLogic *logic.NotificationLogic
}

func NewNotificationHandler(s *store.Store) *NotificationHandler {
	return &NotificationHandler{
		notificationLogic: logic.NewNotificationLogic(s),
	}
}

// GetNotifications 获取通知列表
func (h *NotificationHandler) GetNotifications(c *gin.Context) {
	notifications := h.notificationLogic.ListNotifications()

	c.JSON(http.StatusOK, gin.H{
		"notifications": notifications,
		"total":         len(notifications),
	})
}

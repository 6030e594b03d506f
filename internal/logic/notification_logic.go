package logic

import (
	"github.com/nexushq/nexus-service/internal/model"
	"github.com/nexushq/nexus-service/internal/store"
)

// NotificationLogic 通知业务逻辑
type NotificationLogic struct {
	store *store.Store
}

// NewNotificationLogic 创建通知业务逻辑
func NewNotificationLogic(s *store.Store) *NotificationLogic {
	return &NotificationLogic{store: s}
}

// ListNotifications 获取通知列表
func (n *NotificationLogic) ListNotifications() []model.Notification {
	return n.store.ListNotifications()
}

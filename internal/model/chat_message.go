package model

import "time"

// ChatChannel 聊天频道
type ChatChannel string

const (
	ChatChannelTeam  ChatChannel = "team"  // 团队频道
	ChatChannelAdmin ChatChannel = "admin" // 管理员频道
)

// AISenderId AI回复的发送者标识
const AISenderId = "ai"

// ChatMessage 聊天消息模型（追加式日志，按频道分区）
type ChatMessage struct {
	Id        string      `json:"id"`
	SenderId  string      `json:"senderId"`
	Text      string      `json:"text"`
	Timestamp time.Time   `json:"timestamp"`
	IsAi      bool        `json:"isAi,omitempty"`
	Channel   ChatChannel `json:"channel"`
}

// IsValidChatChannel 检查频道是否合法
func IsValidChatChannel(c ChatChannel) bool {
	return c == ChatChannelTeam || c == ChatChannelAdmin
}

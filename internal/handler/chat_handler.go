package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nexushq/nexus-service/internal/logic"
	"github.com/nexushq/nexus-service/internal/model"
)

type ChatHandler struct {
	chatLogic *logic.ChatLogic
}

func NewChatHandler(chatLogic *logic.ChatLogic) *ChatHandler {
	return &ChatHandler{chatLogic: chatLogic}
}

// GetMessages 获取频道消息（追加顺序）
func (h *ChatHandler) GetMessages(c *gin.Context) {
	channel := model.ChatChannel(c.Param("channel"))

	messages, err := h.chatLogic.ListMessages(channel)
	if err != nil {
		LogicError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"messages": messages,
		"typing":   h.chatLogic.IsTyping(channel),
	})
}

// PostMessage 发送消息（本地回显，AI回复异步追加）
func (h *ChatHandler) PostMessage(c *gin.Context) {
	var req PostMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	msg, err := h.chatLogic.PostMessage(model.ChatChannel(c.Param("channel")), req.SenderId, req.Text)
	if err != nil {
		LogicError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": msg})
}

// GetTyping 频道是否有AI回复进行中
func (h *ChatHandler) GetTyping(c *gin.Context) {
	channel := model.ChatChannel(c.Param("channel"))
	if !model.IsValidChatChannel(channel) {
		LogicError(c, logic.ErrInvalidChannel)
		return
	}

	c.JSON(http.StatusOK, gin.H{"typing": h.chatLogic.IsTyping(channel)})
}

package logic

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/google/uuid"
	"github.com/nexushq/nexus-service/internal/config"
	"github.com/nexushq/nexus-service/internal/genai"
	"github.com/nexushq/nexus-service/internal/logger"
	"github.com/nexushq/nexus-service/internal/model"
	"github.com/nexushq/nexus-service/internal/store"
	"github.com/panjf2000/ants/v2"
)

// 管理员频道自动回复
const (
	adminAutoReplyText   = "I've received your message. Will review shortly."
	adminAutoReplySender = "a1"
)

// TextGenerator 外部文本生成协作方。失败时返回固定降级文案，不返回错误。
type TextGenerator interface {
	GenerateTaskDescription(ctx context.Context, taskTitle string) string
	ChatReply(ctx context.Context, message string) string
}

// ChatLogic 聊天中继：每频道一份追加式日志。命中触发词的消息
// 转发给文本生成协作方并在同一频道追加回复；管理员频道的普通
// 消息延迟追加一条模拟回执。
type ChatLogic struct {
	store     *store.Store
	ai        TextGenerator
	pool      *ants.Pool
	scheduler gocron.Scheduler
	delay     time.Duration

	mu     sync.Mutex
	typing map[model.ChatChannel]bool
}

// NewChatLogic 创建聊天中继
func NewChatLogic(s *store.Store, ai TextGenerator, cfg config.ChatConfig) (*ChatLogic, error) {
	poolSize := cfg.PoolSize
	if poolSize <= 0 {
		poolSize = 4
	}
	pool, err := ants.NewPool(poolSize)
	if err != nil {
		return nil, err
	}

	scheduler, err := gocron.NewScheduler()
	if err != nil {
		pool.Release()
		return nil, err
	}
	scheduler.Start()

	delay := time.Duration(cfg.AutoReplyDelay) * time.Second
	if cfg.AutoReplyDelay <= 0 {
		delay = 2 * time.Second
	}

	return &ChatLogic{
		store:     s,
		ai:        ai,
		pool:      pool,
		scheduler: scheduler,
		delay:     delay,
		typing:    make(map[model.ChatChannel]bool),
	}, nil
}

// Close 关闭中继：释放协程池并丢弃待发送的延迟回复
func (c *ChatLogic) Close() {
	if err := c.scheduler.Shutdown(); err != nil {
		logger.Error("Failed to shutdown chat scheduler: %v", err)
	}
	c.pool.Release()
}

// ListMessages 获取指定频道的消息（追加顺序）
func (c *ChatLogic) ListMessages(channel model.ChatChannel) ([]model.ChatMessage, error) {
	if !model.IsValidChatChannel(channel) {
		return nil, ErrInvalidChannel
	}
	return c.store.ListMessages(channel), nil
}

// IsTyping 指定频道是否有AI回复进行中
func (c *ChatLogic) IsTyping(channel model.ChatChannel) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.typing[channel]
}

// PostMessage 追加用户消息并立即返回（本地回显）。
// 命中AI触发词时异步生成回复并追加到同一频道，AI触发优先于
// 管理员频道自动回执；两者互斥，一条消息至多引出一条回复。
func (c *ChatLogic) PostMessage(channel model.ChatChannel, senderId, text string) (model.ChatMessage, error) {
	if !model.IsValidChatChannel(channel) {
		return model.ChatMessage{}, ErrInvalidChannel
	}

	msg := model.ChatMessage{
		Id:        uuid.NewString(),
		SenderId:  senderId,
		Text:      text,
		Timestamp: time.Now(),
		Channel:   channel,
	}
	c.store.AppendMessage(msg)

	switch {
	case hasAITrigger(text):
		c.setTyping(channel, true)
		if err := c.pool.Submit(func() {
			defer c.setTyping(channel, false)
			reply := c.ai.ChatReply(context.Background(), text)
			c.appendAIReply(channel, reply)
		}); err != nil {
			// 池不可用等同于外部调用失败，降级为固定文案
			logger.Error("Failed to submit AI reply job: %v", err)
			c.setTyping(channel, false)
			c.appendAIReply(channel, genai.FallbackChatFailed)
		}

	case channel == model.ChatChannelAdmin:
		c.scheduleAdminReply()
	}

	return msg, nil
}

// setTyping 更新频道的回复进行中标记
func (c *ChatLogic) setTyping(channel model.ChatChannel, value bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.typing[channel] = value
}

// appendAIReply 向频道追加一条AI回复
func (c *ChatLogic) appendAIReply(channel model.ChatChannel, text string) {
	c.store.AppendMessage(model.ChatMessage{
		Id:        uuid.NewString(),
		SenderId:  model.AISenderId,
		Text:      text,
		Timestamp: time.Now(),
		IsAi:      true,
		Channel:   channel,
	})
}

// scheduleAdminReply 延迟追加一条管理员回执（一次性任务，
// 中继关闭时随调度器一起取消）
func (c *ChatLogic) scheduleAdminReply() {
	_, err := c.scheduler.NewJob(
		gocron.OneTimeJob(gocron.OneTimeJobStartDateTime(time.Now().Add(c.delay))),
		gocron.NewTask(func() {
			c.store.AppendMessage(model.ChatMessage{
				Id:        uuid.NewString(),
				SenderId:  adminAutoReplySender,
				Text:      adminAutoReplyText,
				Timestamp: time.Now(),
				Channel:   model.ChatChannelAdmin,
			})
		}),
	)
	if err != nil {
		logger.Error("Failed to schedule admin auto-reply: %v", err)
	}
}

// hasAITrigger 检查消息是否命中AI触发词
func hasAITrigger(text string) bool {
	lower := strings.ToLower(text)
	return strings.Contains(lower, "@ai") || strings.Contains(lower, "nexus")
}

package logic

import (
	"testing"
	"time"

	"github.com/nexushq/nexus-service/internal/config"
	"github.com/nexushq/nexus-service/internal/genai"
	"github.com/nexushq/nexus-service/internal/model"
	"github.com/nexushq/nexus-service/internal/store"
)

func newChatFixture(t *testing.T, ai TextGenerator) *ChatLogic {
	t.Helper()

	chat, err := NewChatLogic(store.New(), ai, config.ChatConfig{PoolSize: 2})
	if err != nil {
		t.Fatalf("NewChatLogic failed: %v", err)
	}
	chat.delay = 30 * time.Millisecond
	t.Cleanup(chat.Close)
	return chat
}

func waitForMessages(t *testing.T, chat *ChatLogic, channel model.ChatChannel, want int) []model.ChatMessage {
	t.Helper()

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		msgs, err := chat.ListMessages(channel)
		if err != nil {
			t.Fatalf("ListMessages failed: %v", err)
		}
		if len(msgs) >= want {
			return msgs
		}
		time.Sleep(10 * time.Millisecond)
	}
	msgs, _ := chat.ListMessages(channel)
	t.Fatalf("timed out waiting for %d messages in %s, have %d", want, channel, len(msgs))
	return nil
}

func TestPostMessage_LocalEcho(t *testing.T) {
	chat := newChatFixture(t, &stubGenerator{})

	msg, err := chat.PostMessage(model.ChatChannelTeam, "u1", "Has anyone checked the latest build?")
	if err != nil {
		t.Fatalf("PostMessage failed: %v", err)
	}
	if msg.Id == "" || msg.SenderId != "u1" || msg.Channel != model.ChatChannelTeam {
		t.Errorf("unexpected echoed message: %+v", msg)
	}

	msgs, _ := chat.ListMessages(model.ChatChannelTeam)
	if len(msgs) != 1 || msgs[0].Id != msg.Id {
		t.Errorf("expected the stored record to be returned immediately, got %v", msgs)
	}
}

func TestPostMessage_AITriggerAppendsReplyToSameChannel(t *testing.T) {
	chat := newChatFixture(t, &stubGenerator{reply: "Sprint looks on track."})

	if _, err := chat.PostMessage(model.ChatChannelTeam, "u1", "@ai summarize sprint"); err != nil {
		t.Fatalf("PostMessage failed: %v", err)
	}

	msgs := waitForMessages(t, chat, model.ChatChannelTeam, 2)
	if len(msgs) != 2 {
		t.Fatalf("expected exactly two entries, got %d", len(msgs))
	}
	if msgs[0].SenderId != "u1" || msgs[0].IsAi {
		t.Errorf("first entry should be the user message: %+v", msgs[0])
	}
	if msgs[1].SenderId != model.AISenderId || !msgs[1].IsAi {
		t.Errorf("second entry should be AI-authored: %+v", msgs[1])
	}
	if msgs[1].Text != "Sprint looks on track." {
		t.Errorf("unexpected reply text %q", msgs[1].Text)
	}
}

func TestPostMessage_TriggerIsCaseInsensitive(t *testing.T) {
	chat := newChatFixture(t, &stubGenerator{reply: "Hello!"})

	if _, err := chat.PostMessage(model.ChatChannelTeam, "u1", "Hey NEXUS, are you there?"); err != nil {
		t.Fatalf("PostMessage failed: %v", err)
	}

	msgs := waitForMessages(t, chat, model.ChatChannelTeam, 2)
	if !msgs[1].IsAi {
		t.Errorf("expected AI reply for nexus trigger, got %+v", msgs[1])
	}
}

func TestPostMessage_FailedGenerationAppendsFallback(t *testing.T) {
	// 生成客户端自身降级：外部调用失败时返回固定文案而非错误
	chat := newChatFixture(t, &stubGenerator{reply: genai.FallbackChatFailed})

	if _, err := chat.PostMessage(model.ChatChannelTeam, "u1", "@ai help"); err != nil {
		t.Fatalf("PostMessage failed: %v", err)
	}

	msgs := waitForMessages(t, chat, model.ChatChannelTeam, 2)
	if msgs[1].Text != genai.FallbackChatFailed {
		t.Errorf("expected fallback text, got %q", msgs[1].Text)
	}
	if !msgs[1].IsAi {
		t.Errorf("fallback reply should still be AI-authored: %+v", msgs[1])
	}
}

func TestPostMessage_TypingClearedAfterReply(t *testing.T) {
	chat := newChatFixture(t, &stubGenerator{reply: "done"})

	chat.PostMessage(model.ChatChannelTeam, "u1", "@ai status")
	waitForMessages(t, chat, model.ChatChannelTeam, 2)

	deadline := time.Now().Add(time.Second)
	for chat.IsTyping(model.ChatChannelTeam) && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}
	if chat.IsTyping(model.ChatChannelTeam) {
		t.Error("typing indicator never cleared")
	}
}

func TestPostMessage_AdminChannelAutoReply(t *testing.T) {
	chat := newChatFixture(t, &stubGenerator{})

	if _, err := chat.PostMessage(model.ChatChannelAdmin, "u1", "Please review my report"); err != nil {
		t.Fatalf("PostMessage failed: %v", err)
	}

	msgs := waitForMessages(t, chat, model.ChatChannelAdmin, 2)
	if msgs[1].SenderId != adminAutoReplySender || msgs[1].Text != adminAutoReplyText {
		t.Errorf("unexpected auto-reply: %+v", msgs[1])
	}
	if msgs[1].IsAi {
		t.Error("admin auto-reply must not be flagged as AI")
	}
}

func TestPostMessage_AITriggerSuppressesAdminAutoReply(t *testing.T) {
	chat := newChatFixture(t, &stubGenerator{reply: "On it."})

	if _, err := chat.PostMessage(model.ChatChannelAdmin, "u1", "@ai escalate this"); err != nil {
		t.Fatalf("PostMessage failed: %v", err)
	}

	msgs := waitForMessages(t, chat, model.ChatChannelAdmin, 2)
	if !msgs[1].IsAi {
		t.Fatalf("expected AI reply, got %+v", msgs[1])
	}

	// 等待超过自动回执延迟，确认没有第三条消息
	time.Sleep(150 * time.Millisecond)
	msgs, _ = chat.ListMessages(model.ChatChannelAdmin)
	if len(msgs) != 2 {
		t.Errorf("admin auto-reply fired alongside AI trigger: %v", msgs)
	}
}

func TestPostMessage_ChannelsArePartitioned(t *testing.T) {
	chat := newChatFixture(t, &stubGenerator{})

	chat.PostMessage(model.ChatChannelTeam, "u1", "team message")
	chat.PostMessage(model.ChatChannelAdmin, "u1", "admin message")

	team, _ := chat.ListMessages(model.ChatChannelTeam)
	if len(team) != 1 || team[0].Text != "team message" {
		t.Errorf("team channel polluted: %v", team)
	}
}

func TestPostMessage_InvalidChannel(t *testing.T) {
	chat := newChatFixture(t, &stubGenerator{})

	if _, err := chat.PostMessage("random", "u1", "hello"); err != ErrInvalidChannel {
		t.Errorf("expected ErrInvalidChannel, got %v", err)
	}
	if _, err := chat.ListMessages("random"); err != ErrInvalidChannel {
		t.Errorf("expected ErrInvalidChannel, got %v", err)
	}
}

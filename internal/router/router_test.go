package router

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/nexushq/nexus-service/internal/config"
	"github.com/nexushq/nexus-service/internal/genai"
	"github.com/nexushq/nexus-service/internal/logic"
	"github.com/nexushq/nexus-service/internal/store"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	s := store.NewSeeded()
	aiClient := genai.Init(config.AIConfig{Model: "gemini-2.5-flash"})
	chatLogic, err := logic.NewChatLogic(s, aiClient, config.ChatConfig{PoolSize: 2})
	if err != nil {
		t.Fatalf("NewChatLogic failed: %v", err)
	}
	t.Cleanup(chatLogic.Close)

	return Setup(s, aiClient, chatLogic, &config.Config{})
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal request body: %v", err)
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHealthEndpoint(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/health", nil)
	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
}

func TestGetProjects_DefaultQuery(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/v1/projects", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Total int `json:"total"`
		Projects []struct {
			Id string `json:"id"`
		} `json:"projects"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Total != 3 {
		t.Errorf("expected 3 seeded projects, got %d", resp.Total)
	}
	// 默认按截止日期排序
	if resp.Projects[0].Id != "p3" {
		t.Errorf("expected earliest due date first, got %s", resp.Projects[0].Id)
	}
}

func TestMoveTask_Endpoint(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPut, "/api/v1/projects/p1/tasks/t2/status",
		gin.H{"status": "Review"})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	w = doJSON(t, r, http.MethodPut, "/api/v1/projects/p1/tasks/ghost/status",
		gin.H{"status": "Review"})
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404 for unknown task, got %d", w.Code)
	}

	w = doJSON(t, r, http.MethodPut, "/api/v1/projects/p1/tasks/t2/status",
		gin.H{"status": "Archived"})
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for invalid status, got %d", w.Code)
	}
}

func TestCreateProject_Endpoint(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/v1/projects", gin.H{"name": "New Initiative"})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	w = doJSON(t, r, http.MethodPost, "/api/v1/projects", gin.H{"description": "missing name"})
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for missing name, got %d", w.Code)
	}
}

func TestQuickAddTask_Endpoint(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/v1/projects/p2/tasks",
		gin.H{"title": "Prepare store listing", "status": "To Do"})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Task struct {
			Priority    string `json:"priority"`
			Description string `json:"description"`
		} `json:"task"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Task.Priority != "Medium" {
		t.Errorf("expected default Medium priority, got %s", resp.Task.Priority)
	}
}

func TestChat_InvalidChannel(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/v1/chat/random", nil)
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for unknown channel, got %d", w.Code)
	}
}

func TestChat_PostMessage(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/v1/chat/team",
		gin.H{"senderId": "u1", "text": "Deploy is done"})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}
}

func TestGetTeam_Endpoint(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/v1/team", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	w = doJSON(t, r, http.MethodGet, "/api/v1/team/ghost", nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404 for unknown member, got %d", w.Code)
	}
}

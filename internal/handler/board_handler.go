package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nexushq/nexus-service/internal/genai"
	"github.com/nexushq/nexus-service/internal/logic"
	"github.com/nexushq/nexus-service/internal/model"
	"github.com/nexushq/nexus-service/internal/store"
)

type BoardHandler struct {
	boardLogic *logic.BoardLogic
}

func NewBoardHandler(s *store.Store, ai *genai.Client) *BoardHandler {
	return &BoardHandler{
		boardLogic: logic.NewBoardLogic(s, ai),
	}
}

// GetTasks 获取项目任务。带status查询参数时只返回对应看板列。
func (h *BoardHandler) GetTasks(c *gin.Context) {
	projectId := c.Param("id")

	if status := c.Query("status"); status != "" {
		tasks, err := h.boardLogic.ListByStatus(projectId, model.TaskStatus(status))
		if err != nil {
			LogicError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"tasks": tasks})
		return
	}

	tasks, err := h.boardLogic.ListTasks(projectId)
	if err != nil {
		LogicError(c, err)
		return
	}

	counts, err := h.boardLogic.CountByStatus(projectId)
	if err != nil {
		LogicError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"tasks":  tasks,
		"counts": counts,
	})
}

// QuickAddTask 快速新建任务
func (h *BoardHandler) QuickAddTask(c *gin.Context) {
	var req QuickAddTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	task, err := h.boardLogic.QuickAdd(c.Param("id"), model.TaskStatus(req.Status), req.Title)
	if err != nil {
		LogicError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "任务创建成功",
		"task":    task,
	})
}

// CreateTaskWithAI AI辅助新建任务
func (h *BoardHandler) CreateTaskWithAI(c *gin.Context) {
	var req AITaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	task, err := h.boardLogic.CreateTaskWithAI(c.Request.Context(), c.Param("id"), req.Title)
	if err != nil {
		LogicError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "任务创建成功",
		"task":    task,
	})
}

// MoveTask 拖拽任务到目标看板列
func (h *BoardHandler) MoveTask(c *gin.Context) {
	var req MoveTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	err := h.boardLogic.MoveTask(c.Param("id"), c.Param("taskId"), model.TaskStatus(req.Status))
	if err != nil {
		LogicError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "任务已移动"})
}

// UpdateDueDate 修改任务截止日期
func (h *BoardHandler) UpdateDueDate(c *gin.Context) {
	var req UpdateDueDateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	due, err := parseDate(req.DueDate)
	if err != nil {
		ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.boardLogic.UpdateDueDate(c.Param("id"), c.Param("taskId"), due); err != nil {
		LogicError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "截止日期已更新"})
}

// GetMyTasks 跨项目聚合的只读任务视图
func (h *BoardHandler) GetMyTasks(c *gin.Context) {
	tasks := h.boardLogic.MyTasks(c.Query("userId"))

	c.JSON(http.StatusOK, gin.H{"tasks": tasks})
}

// AssignTask 任务分配表单提交
func (h *BoardHandler) AssignTask(c *gin.Context) {
	var req AssignTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	payload, err := req.ToPayload()
	if err != nil {
		ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	task, err := h.boardLogic.CreateTask(payload)
	if err != nil {
		LogicError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "任务分配成功",
		"task":    task,
	})
}

package handler

import (
	"fmt"
	"time"

	"github.com/nexushq/nexus-service/internal/logic"
	"github.com/nexushq/nexus-service/internal/model"
)

// SaveProjectRequest 项目创建/编辑请求，nil字段表示表单未提供
type SaveProjectRequest struct {
	Name        string    `json:"name" binding:"required"`
	Description *string   `json:"description"`
	Status      *string   `json:"status"`
	Progress    *int      `json:"progress"`
	MemberIds   *[]string `json:"memberIds"`
	DueDate     *string   `json:"dueDate"`
	Image       *string   `json:"image"`
}

// ToPayload 转换为业务层载荷
func (r *SaveProjectRequest) ToPayload() (logic.ProjectPayload, error) {
	payload := logic.ProjectPayload{
		Name:        r.Name,
		Description: r.Description,
		Progress:    r.Progress,
		MemberIds:   r.MemberIds,
		Image:       r.Image,
	}

	if r.Status != nil {
		status := model.ProjectStatus(*r.Status)
		payload.Status = &status
	}
	if r.DueDate != nil {
		due, err := parseDate(*r.DueDate)
		if err != nil {
			return logic.ProjectPayload{}, err
		}
		payload.DueDate = &due
	}
	return payload, nil
}

// QuickAddTaskRequest 快速新建任务请求
type QuickAddTaskRequest struct {
	Title  string `json:"title" binding:"required"`
	Status string `json:"status" binding:"required"`
}

// AITaskRequest AI辅助新建任务请求
type AITaskRequest struct {
	Title string `json:"title" binding:"required"`
}

// MoveTaskRequest 任务拖拽请求，载荷只有目标状态（任务id在路径中）
type MoveTaskRequest struct {
	Status string `json:"status" binding:"required"`
}

// UpdateDueDateRequest 任务截止日期修改请求
type UpdateDueDateRequest struct {
	DueDate string `json:"dueDate" binding:"required"`
}

// AssignTaskRequest 任务分配表单请求
type AssignTaskRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Status      string `json:"status"`
	Priority    string `json:"priority"`
	AssigneeId  string `json:"assigneeId"`
	DueDate     string `json:"dueDate" binding:"required"`
	Image       string `json:"image"`
	ProjectId   string `json:"projectId"`
}

// ToPayload 转换为业务层载荷
func (r *AssignTaskRequest) ToPayload() (logic.TaskPayload, error) {
	payload := logic.TaskPayload{
		Title:       r.Title,
		Description: r.Description,
		AssigneeId:  r.AssigneeId,
		Image:       r.Image,
		ProjectId:   r.ProjectId,
	}

	if r.Status != "" {
		status := model.TaskStatus(r.Status)
		payload.Status = &status
	}
	if r.Priority != "" {
		priority := model.TaskPriority(r.Priority)
		payload.Priority = &priority
	}
	due, err := parseDate(r.DueDate)
	if err != nil {
		return logic.TaskPayload{}, err
	}
	payload.DueDate = &due
	return payload, nil
}

// AddEmployeeRequest 入职表单请求
type AddEmployeeRequest struct {
	Name       string `json:"name" binding:"required"`
	Email      string `json:"email" binding:"required"`
	Role       string `json:"role"`
	JobTitle   string `json:"jobTitle"`
	Gender     string `json:"gender"`
	Dob        string `json:"dob"`
	Experience string `json:"experience"`
	Avatar     string `json:"avatar"`
}

// ToPayload 转换为业务层载荷
func (r *AddEmployeeRequest) ToPayload() logic.EmployeePayload {
	payload := logic.EmployeePayload{
		Name:       r.Name,
		Email:      r.Email,
		JobTitle:   r.JobTitle,
		Gender:     r.Gender,
		Dob:        r.Dob,
		Experience: r.Experience,
		Avatar:     r.Avatar,
	}
	if r.Role != "" {
		role := model.UserRole(r.Role)
		payload.Role = &role
	}
	return payload
}

// PostMessageRequest 发送聊天消息请求
type PostMessageRequest struct {
	SenderId string `json:"senderId" binding:"required"`
	Text     string `json:"text" binding:"required"`
}

// parseDate 解析日历日期，接受 2006-01-02 与 RFC3339 两种格式
func parseDate(value string) (time.Time, error) {
	for _, layout := range []string{"2006-01-02", time.RFC3339} {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("无法解析日期: %s", value)
}

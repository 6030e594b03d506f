package model

import "time"

// TaskStatus 任务状态（看板列）
type TaskStatus string

const (
	TaskStatusTodo       TaskStatus = "To Do"       // 待办
	TaskStatusInProgress TaskStatus = "In Progress" // 进行中
	TaskStatusReview     TaskStatus = "Review"      // 评审中
	TaskStatusDone       TaskStatus = "Done"        // 已完成
)

// AllTaskStatuses 看板列顺序
var AllTaskStatuses = []TaskStatus{
	TaskStatusTodo,
	TaskStatusInProgress,
	TaskStatusReview,
	TaskStatusDone,
}

// TaskPriority 任务优先级
type TaskPriority string

const (
	TaskPriorityLow    TaskPriority = "Low"    // 低
	TaskPriorityMedium TaskPriority = "Medium" // 中
	TaskPriorityHigh   TaskPriority = "High"   // 高
)

// Task 任务模型
type Task struct {
	Id          string       `json:"id"`
	Title       string       `json:"title" binding:"required"`
	Description string       `json:"description"`
	Status      TaskStatus   `json:"status"`
	Priority    TaskPriority `json:"priority"`
	Assignee    *User        `json:"assignee,omitempty"`
	DueDate     time.Time    `json:"dueDate"`
	Image       string       `json:"image,omitempty"`
}

// IsValidTaskStatus 检查任务状态是否合法
func IsValidTaskStatus(s TaskStatus) bool {
	for _, status := range AllTaskStatuses {
		if s == status {
			return true
		}
	}
	return false
}

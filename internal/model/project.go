package model

import "time"

// ProjectStatus 项目状态
type ProjectStatus string

const (
	ProjectStatusActive    ProjectStatus = "Active"    // 进行中
	ProjectStatusCompleted ProjectStatus = "Completed" // 已完成
	ProjectStatusOnHold    ProjectStatus = "On Hold"   // 暂停
)

// Project 项目模型
type Project struct {
	Id          string        `json:"id"`
	Name        string        `json:"name" binding:"required"`
	Description string        `json:"description"`
	Status      ProjectStatus `json:"status"`

	// 进度（0-100）
	Progress int `json:"progress"`

	// 成员与任务（成员按id去重，任务归属唯一）
	Members []User `json:"members"`
	Tasks   []Task `json:"tasks"`

	DueDate time.Time `json:"dueDate"`
	Image   string    `json:"image,omitempty"`
}

// HasMember 检查用户是否已是项目成员
func (p *Project) HasMember(userId string) bool {
	for _, m := range p.Members {
		if m.Id == userId {
			return true
		}
	}
	return false
}

// FindTask 按id查找任务
func (p *Project) FindTask(taskId string) *Task {
	for i := range p.Tasks {
		if p.Tasks[i].Id == taskId {
			return &p.Tasks[i]
		}
	}
	return nil
}

package logic

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/nexushq/nexus-service/internal/logger"
	"github.com/nexushq/nexus-service/internal/model"
	"github.com/nexushq/nexus-service/internal/store"
)

// 快速新建任务的占位描述
const quickAddPlaceholder = "Needs description..."

// BoardLogic 任务看板业务逻辑。任务归属于唯一项目，
// 状态流转为任意到任意，拖拽仅携带任务id。
type BoardLogic struct {
	store *store.Store
	ai    TextGenerator
}

// NewBoardLogic 创建任务看板业务逻辑
func NewBoardLogic(s *store.Store, ai TextGenerator) *BoardLogic {
	return &BoardLogic{store: s, ai: ai}
}

// ListTasks 获取项目的全部任务（保持插入顺序）
func (b *BoardLogic) ListTasks(projectId string) ([]model.Task, error) {
	project, ok := b.store.GetProject(projectId)
	if !ok {
		return nil, ErrProjectNotFound
	}
	return project.Tasks, nil
}

// ListByStatus 获取项目中指定状态的任务，保持插入顺序，不按优先级或日期重排
func (b *BoardLogic) ListByStatus(projectId string, status model.TaskStatus) ([]model.Task, error) {
	if !model.IsValidTaskStatus(status) {
		return nil, ErrInvalidStatus
	}

	project, ok := b.store.GetProject(projectId)
	if !ok {
		return nil, ErrProjectNotFound
	}

	result := make([]model.Task, 0)
	for _, t := range project.Tasks {
		if t.Status == status {
			result = append(result, t)
		}
	}
	return result, nil
}

// CountByStatus 统计各看板列的任务数量（用于展示）
func (b *BoardLogic) CountByStatus(projectId string) (map[model.TaskStatus]int, error) {
	project, ok := b.store.GetProject(projectId)
	if !ok {
		return nil, ErrProjectNotFound
	}

	counts := make(map[model.TaskStatus]int, len(model.AllTaskStatuses))
	for _, status := range model.AllTaskStatuses {
		counts[status] = 0
	}
	for _, t := range project.Tasks {
		counts[t.Status]++
	}
	return counts, nil
}

// MoveTask 将任务移动到目标状态。后写覆盖，无状态转移表校验；
// 目标状态与当前状态相同时为幂等空操作。移动不改变任务的项目归属。
func (b *BoardLogic) MoveTask(projectId, taskId string, dest model.TaskStatus) error {
	if !model.IsValidTaskStatus(dest) {
		return ErrInvalidStatus
	}

	var found bool
	ok := b.store.UpdateProject(projectId, func(p *model.Project) {
		task := p.FindTask(taskId)
		if task == nil {
			return
		}
		found = true
		if task.Status != dest {
			task.Status = dest
		}
	})
	if !ok {
		return ErrProjectNotFound
	}
	if !found {
		return ErrTaskNotFound
	}
	return nil
}

// QuickAdd 在指定看板列快速新建任务：默认中优先级、占位描述、今日截止
func (b *BoardLogic) QuickAdd(projectId string, status model.TaskStatus, title string) (model.Task, error) {
	if title == "" {
		return model.Task{}, ErrTitleRequired
	}
	if !model.IsValidTaskStatus(status) {
		return model.Task{}, ErrInvalidStatus
	}

	task := model.Task{
		Id:          uuid.NewString(),
		Title:       title,
		Description: quickAddPlaceholder,
		Status:      status,
		Priority:    model.TaskPriorityMedium,
		DueDate:     time.Now(),
	}

	if ok := b.store.UpdateProject(projectId, func(p *model.Project) {
		p.Tasks = append(p.Tasks, task)
	}); !ok {
		return model.Task{}, ErrProjectNotFound
	}
	return task, nil
}

// UpdateDueDate 就地替换任务的截止日期
func (b *BoardLogic) UpdateDueDate(projectId, taskId string, newDate time.Time) error {
	var found bool
	ok := b.store.UpdateProject(projectId, func(p *model.Project) {
		task := p.FindTask(taskId)
		if task == nil {
			return
		}
		found = true
		task.DueDate = newDate
	})
	if !ok {
		return ErrProjectNotFound
	}
	if !found {
		return ErrTaskNotFound
	}
	return nil
}

// CreateTaskWithAI 由AI为标题生成描述后新建待办任务。
// 生成失败时使用固定降级文案，不阻塞创建。
func (b *BoardLogic) CreateTaskWithAI(ctx context.Context, projectId, title string) (model.Task, error) {
	if title == "" {
		return model.Task{}, ErrTitleRequired
	}

	description := b.ai.GenerateTaskDescription(ctx, title)

	task := model.Task{
		Id:          uuid.NewString(),
		Title:       title,
		Description: description,
		Status:      model.TaskStatusTodo,
		Priority:    model.TaskPriorityMedium,
		DueDate:     time.Now(),
	}

	if ok := b.store.UpdateProject(projectId, func(p *model.Project) {
		p.Tasks = append(p.Tasks, task)
	}); !ok {
		return model.Task{}, ErrProjectNotFound
	}

	logger.Info("Created AI-assisted task %s in project %s", task.Id, projectId)
	return task, nil
}

// TaskPayload 任务分配表单载荷，缺省字段按网关默认值补全
type TaskPayload struct {
	Title       string
	Description string
	Status      *model.TaskStatus
	Priority    *model.TaskPriority
	AssigneeId  string
	DueDate     *time.Time
	Image       string
	ProjectId   string
}

// CreateTask 将表单载荷规范化为完整任务并追加到目标项目。
// 状态默认待办，优先级默认中等；负责人按id在团队名册中解析，
// 未知id视为未分配任务而非错误。未指定项目时归入第一个项目。
func (b *BoardLogic) CreateTask(payload TaskPayload) (model.Task, error) {
	if payload.Title == "" {
		return model.Task{}, ErrTitleRequired
	}
	if payload.DueDate == nil {
		return model.Task{}, ErrDueDateRequired
	}

	status := model.TaskStatusTodo
	if payload.Status != nil {
		if !model.IsValidTaskStatus(*payload.Status) {
			return model.Task{}, ErrInvalidStatus
		}
		status = *payload.Status
	}

	priority := model.TaskPriorityMedium
	if payload.Priority != nil {
		priority = *payload.Priority
	}

	var assignee *model.User
	if payload.AssigneeId != "" {
		if u, ok := b.store.FindTeamMember(payload.AssigneeId); ok {
			assignee = &u
		}
	}

	projectId := payload.ProjectId
	if projectId == "" {
		first, ok := b.store.FirstProjectId()
		if !ok {
			return model.Task{}, ErrProjectNotFound
		}
		projectId = first
	}

	task := model.Task{
		Id:          uuid.NewString(),
		Title:       payload.Title,
		Description: payload.Description,
		Status:      status,
		Priority:    priority,
		Assignee:    assignee,
		DueDate:     *payload.DueDate,
		Image:       payload.Image,
	}

	if ok := b.store.UpdateProject(projectId, func(p *model.Project) {
		p.Tasks = append(p.Tasks, task)
	}); !ok {
		return model.Task{}, ErrProjectNotFound
	}
	return task, nil
}

// MyTasks 跨项目聚合的只读任务视图；userId非空时仅保留该负责人的任务
func (b *BoardLogic) MyTasks(userId string) []model.Task {
	result := make([]model.Task, 0)
	for _, p := range b.store.ListProjects() {
		for _, t := range p.Tasks {
			if userId == "" || (t.Assignee != nil && t.Assignee.Id == userId) {
				result = append(result, t)
			}
		}
	}
	return result
}

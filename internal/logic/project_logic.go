package logic

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/nexushq/nexus-service/internal/logger"
	"github.com/nexushq/nexus-service/internal/model"
	"github.com/nexushq/nexus-service/internal/store"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// 列表过滤选择器："All"放行全部，其余按状态精确匹配
const FilterAll = "All"

// 排序选择器
const (
	SortByName    = "name"
	SortByDueDate = "dueDate"
)

// ProjectLogic 项目业务逻辑：列表过滤/排序管道与增删改网关
type ProjectLogic struct {
	store *store.Store
}

// NewProjectLogic 创建项目业务逻辑
func NewProjectLogic(s *store.Store) *ProjectLogic {
	return &ProjectLogic{store: s}
}

// ListProjects 获取过滤并排序后的项目视图。
// 源集合及其顺序不受影响，相同输入必产生相同输出。
func (p *ProjectLogic) ListProjects(filter, sortKey string) []model.Project {
	projects := p.store.ListProjects()

	// 过滤
	if filter != "" && filter != FilterAll {
		filtered := make([]model.Project, 0, len(projects))
		for _, project := range projects {
			if string(project.Status) == filter {
				filtered = append(filtered, project)
			}
		}
		projects = filtered
	}

	// 稳定排序，平局保持过滤后的顺序
	switch sortKey {
	case SortByName:
		c := collate.New(language.English)
		sort.SliceStable(projects, func(i, j int) bool {
			return c.CompareString(projects[i].Name, projects[j].Name) < 0
		})
	case SortByDueDate:
		sort.SliceStable(projects, func(i, j int) bool {
			return projects[i].DueDate.Before(projects[j].DueDate)
		})
	}

	return projects
}

// GetProject 获取项目详情
func (p *ProjectLogic) GetProject(id string) (model.Project, error) {
	project, ok := p.store.GetProject(id)
	if !ok {
		return model.Project{}, ErrProjectNotFound
	}
	return project, nil
}

// ProjectPayload 项目表单载荷，nil字段表示表单未提供
type ProjectPayload struct {
	Name        string
	Description *string
	Status      *model.ProjectStatus
	Progress    *int
	MemberIds   *[]string
	DueDate     *time.Time
	Image       *string
}

// SaveProject 将表单载荷规范化为完整项目。existingId非空时为编辑：
// id与任务集合原样保留，其余字段取载荷值，缺省时沿用原值；
// 新建时铸造新id、任务集合为空，缺省字段取硬默认值
// （进度0、成员为空、状态Active、今日截止）。名称为必填。
func (p *ProjectLogic) SaveProject(payload ProjectPayload, existingId string) (model.Project, error) {
	if payload.Name == "" {
		return model.Project{}, ErrNameRequired
	}

	// 成员解析在进入锁内回调之前完成，避免在锁内再取锁
	var members []model.User
	if payload.MemberIds != nil {
		members = p.resolveMembers(*payload.MemberIds)
	}

	if existingId != "" {
		var updated model.Project
		ok := p.store.UpdateProject(existingId, func(project *model.Project) {
			project.Name = payload.Name
			if payload.Description != nil {
				project.Description = *payload.Description
			}
			if payload.Status != nil {
				project.Status = *payload.Status
			}
			if payload.Progress != nil {
				project.Progress = *payload.Progress
			}
			if payload.MemberIds != nil {
				project.Members = members
			}
			if payload.DueDate != nil {
				project.DueDate = *payload.DueDate
			}
			if payload.Image != nil {
				project.Image = *payload.Image
			}
			updated = *project
		})
		if !ok {
			return model.Project{}, ErrProjectNotFound
		}
		return updated, nil
	}

	project := model.Project{
		Id:       uuid.NewString(),
		Name:     payload.Name,
		Status:   model.ProjectStatusActive,
		Progress: 0,
		Members:  []model.User{},
		Tasks:    []model.Task{},
		DueDate:  time.Now(),
	}
	if payload.Description != nil {
		project.Description = *payload.Description
	}
	if payload.Status != nil {
		project.Status = *payload.Status
	}
	if payload.Progress != nil {
		project.Progress = *payload.Progress
	}
	if payload.MemberIds != nil {
		project.Members = members
	}
	if payload.DueDate != nil {
		project.DueDate = *payload.DueDate
	}
	if payload.Image != nil {
		project.Image = *payload.Image
	}

	p.store.AddProject(project)
	logger.Info("Created project %s (%s)", project.Id, project.Name)
	return project, nil
}

// DeleteProject 硬删除项目。确认步骤由调用边界负责，
// 本方法即确认之后的执行动作。
func (p *ProjectLogic) DeleteProject(id string) error {
	if !p.store.RemoveProject(id) {
		return ErrProjectNotFound
	}
	logger.Info("Deleted project %s", id)
	return nil
}

// ToggleMember 对称差操作：成员已存在则移除，否则追加，不产生重复
func (p *ProjectLogic) ToggleMember(projectId, userId string) (model.Project, error) {
	user, ok := p.store.FindTeamMember(userId)
	if !ok {
		return model.Project{}, ErrUserNotFound
	}

	var updated model.Project
	found := p.store.UpdateProject(projectId, func(project *model.Project) {
		if project.HasMember(userId) {
			members := make([]model.User, 0, len(project.Members))
			for _, m := range project.Members {
				if m.Id != userId {
					members = append(members, m)
				}
			}
			project.Members = members
		} else {
			project.Members = append(project.Members, user)
		}
		updated = *project
	})
	if !found {
		return model.Project{}, ErrProjectNotFound
	}
	return updated, nil
}

// resolveMembers 按id在团队名册中解析成员并去重，未知id忽略
func (p *ProjectLogic) resolveMembers(ids []string) []model.User {
	members := make([]model.User, 0, len(ids))
	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		if u, ok := p.store.FindTeamMember(id); ok {
			members = append(members, u)
		}
	}
	return members
}

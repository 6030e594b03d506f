package store

import (
	"sync"

	"github.com/nexushq/nexus-service/internal/model"
)

// Store 内存数据仓库。所有状态仅存活于进程生命周期内，
// 互斥锁保证各写入口相对彼此原子执行。
type Store struct {
	mu            sync.Mutex
	projects      []model.Project
	team          []model.User
	messages      map[model.ChatChannel][]model.ChatMessage
	notifications []model.Notification
}

// New 创建空的内存仓库
func New() *Store {
	return &Store{
		messages: make(map[model.ChatChannel][]model.ChatMessage),
	}
}

// ListProjects 获取项目列表副本（保持插入顺序）
func (s *Store) ListProjects() []model.Project {
	s.mu.Lock()
	defer s.mu.Unlock()

	result := make([]model.Project, len(s.projects))
	for i := range s.projects {
		result[i] = cloneProject(s.projects[i])
	}
	return result
}

// GetProject 按id获取项目副本
func (s *Store) GetProject(id string) (model.Project, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.projects {
		if s.projects[i].Id == id {
			return cloneProject(s.projects[i]), true
		}
	}
	return model.Project{}, false
}

// AddProject 追加项目
func (s *Store) AddProject(p model.Project) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.projects = append(s.projects, cloneProject(p))
}

// UpdateProject 在锁内就地修改项目，项目不存在时返回false
func (s *Store) UpdateProject(id string, fn func(p *model.Project)) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.projects {
		if s.projects[i].Id == id {
			fn(&s.projects[i])
			return true
		}
	}
	return false
}

// RemoveProject 按id删除项目（硬删除）
func (s *Store) RemoveProject(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.projects {
		if s.projects[i].Id == id {
			s.projects = append(s.projects[:i], s.projects[i+1:]...)
			return true
		}
	}
	return false
}

// FirstProjectId 获取第一个项目的id（任务分配的默认归属）
func (s *Store) FirstProjectId() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.projects) == 0 {
		return "", false
	}
	return s.projects[0].Id, true
}

// ListTeam 获取团队成员列表副本
func (s *Store) ListTeam() []model.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	result := make([]model.User, len(s.team))
	copy(result, s.team)
	return result
}

// FindTeamMember 按id查找团队成员
func (s *Store) FindTeamMember(id string) (model.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.team {
		if u.Id == id {
			return u, true
		}
	}
	return model.User{}, false
}

// AddTeamMember 追加团队成员
func (s *Store) AddTeamMember(u model.User) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.team = append(s.team, u)
}

// ListMessages 获取指定频道的消息副本（追加顺序）
func (s *Store) ListMessages(channel model.ChatChannel) []model.ChatMessage {
	s.mu.Lock()
	defer s.mu.Unlock()

	result := make([]model.ChatMessage, len(s.messages[channel]))
	copy(result, s.messages[channel])
	return result
}

// AppendMessage 向消息所属频道追加一条消息
func (s *Store) AppendMessage(m model.ChatMessage) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.messages[m.Channel] = append(s.messages[m.Channel], m)
}

// ListNotifications 获取通知列表副本
func (s *Store) ListNotifications() []model.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()

	result := make([]model.Notification, len(s.notifications))
	copy(result, s.notifications)
	return result
}

// AddNotification 追加通知
func (s *Store) AddNotification(n model.Notification) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.notifications = append(s.notifications, n)
}

// HasNotification 检查是否已存在指定id的通知
func (s *Store) HasNotification(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, n := range s.notifications {
		if n.Id == id {
			return true
		}
	}
	return false
}

// cloneProject 深拷贝项目，避免调用方持有内部切片或指针
func cloneProject(p model.Project) model.Project {
	result := p
	result.Members = make([]model.User, len(p.Members))
	copy(result.Members, p.Members)
	result.Tasks = make([]model.Task, len(p.Tasks))
	copy(result.Tasks, p.Tasks)
	for i := range result.Tasks {
		if result.Tasks[i].Assignee != nil {
			assignee := *result.Tasks[i].Assignee
			result.Tasks[i].Assignee = &assignee
		}
	}
	return result
}

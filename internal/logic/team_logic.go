package logic

import (
	"time"

	"github.com/google/uuid"
	"github.com/nexushq/nexus-service/internal/logger"
	"github.com/nexushq/nexus-service/internal/model"
	"github.com/nexushq/nexus-service/internal/store"
)

// TeamLogic 团队名册业务逻辑
type TeamLogic struct {
	store *store.Store
}

// NewTeamLogic 创建团队名册业务逻辑
func NewTeamLogic(s *store.Store) *TeamLogic {
	return &TeamLogic{store: s}
}

// ListMembers 获取团队成员列表
func (t *TeamLogic) ListMembers() []model.User {
	return t.store.ListTeam()
}

// GetMember 按id获取团队成员
func (t *TeamLogic) GetMember(id string) (model.User, error) {
	user, ok := t.store.FindTeamMember(id)
	if !ok {
		return model.User{}, ErrUserNotFound
	}
	return user, nil
}

// EmployeePayload 入职表单载荷
type EmployeePayload struct {
	Name       string
	Email      string
	Role       *model.UserRole
	JobTitle   string
	Gender     string
	Dob        string
	Experience string
	Avatar     string
}

// AddEmployee 入职流程：铸造新id，入职日期取当天，参与项目计数归零。
// 姓名与邮箱为必填，角色默认普通成员。
func (t *TeamLogic) AddEmployee(payload EmployeePayload) (model.User, error) {
	if payload.Name == "" {
		return model.User{}, ErrNameRequired
	}
	if payload.Email == "" {
		return model.User{}, ErrEmailRequired
	}

	role := model.UserRoleUser
	if payload.Role != nil {
		role = *payload.Role
	}

	user := model.User{
		Id:             uuid.NewString(),
		Name:           payload.Name,
		Email:          payload.Email,
		Role:           role,
		Avatar:         payload.Avatar,
		Gender:         payload.Gender,
		JoinedDate:     time.Now().Format("2006-01-02"),
		Dob:            payload.Dob,
		Experience:     payload.Experience,
		JobTitle:       payload.JobTitle,
		ProjectsJoined: 0,
	}

	t.store.AddTeamMember(user)
	logger.Info("Added employee %s (%s)", user.Id, user.Name)
	return user, nil
}

package model

// UserRole 用户角色
type UserRole string

const (
	UserRoleAdmin UserRole = "ADMIN" // 管理员
	UserRoleUser  UserRole = "USER"  // 普通成员
)

// User 团队成员模型
type User struct {
	Id    string   `json:"id"`
	Name  string   `json:"name" binding:"required"`
	Email string   `json:"email" binding:"required"`
	Role  UserRole `json:"role"`

	// 个人资料
	Avatar     string `json:"avatar"`
	Gender     string `json:"gender"`
	JoinedDate string `json:"joinedDate"`
	Dob        string `json:"dob,omitempty"`
	Experience string `json:"experience,omitempty"`
	JobTitle   string `json:"jobTitle,omitempty"`

	// 参与项目计数
	ProjectsJoined int `json:"projectsJoined"`
}

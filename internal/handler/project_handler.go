package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nexushq/nexus-service/internal/logic"
	"github.com/nexushq/nexus-service/internal/store"
)

type ProjectHandler struct {
	projectLogic *logic.ProjectLogic
}

func NewProjectHandler(s *store.Store) *ProjectHandler {
	return &ProjectHandler{
		projectLogic: logic.NewProjectLogic(s),
	}
}

// GetProjects 获取过滤并排序后的项目列表
func (h *ProjectHandler) GetProjects(c *gin.Context) {
	filter := c.DefaultQuery("status", logic.FilterAll)
	sortKey := c.DefaultQuery("sort", logic.SortByDueDate)

	projects := h.projectLogic.ListProjects(filter, sortKey)

	c.JSON(http.StatusOK, gin.H{
		"projects": projects,
		"total":    len(projects),
	})
}

// GetProject 获取单个项目详情
func (h *ProjectHandler) GetProject(c *gin.Context) {
	project, err := h.projectLogic.GetProject(c.Param("id"))
	if err != nil {
		LogicError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"project": project})
}

// CreateProject 创建项目
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	var req SaveProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	payload, err := req.ToPayload()
	if err != nil {
		ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	// 调用logic层创建项目
	project, err := h.projectLogic.SaveProject(payload, "")
	if err != nil {
		LogicError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "项目创建成功",
		"project": project,
	})
}

// UpdateProject 编辑项目（id与任务集合保留）
func (h *ProjectHandler) UpdateProject(c *gin.Context) {
	var req SaveProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	payload, err := req.ToPayload()
	if err != nil {
		ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	// 调用logic层更新项目
	project, err := h.projectLogic.SaveProject(payload, c.Param("id"))
	if err != nil {
		LogicError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "项目更新成功",
		"project": project,
	})
}

// DeleteProject 删除项目。删除前的确认交互由客户端边界完成，
// 本接口即确认后的执行动作。
func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	if err := h.projectLogic.DeleteProject(c.Param("id")); err != nil {
		LogicError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "项目已删除"})
}

// ToggleMember 切换项目成员（在则移除，不在则加入）
func (h *ProjectHandler) ToggleMember(c *gin.Context) {
	project, err := h.projectLogic.ToggleMember(c.Param("id"), c.Param("userId"))
	if err != nil {
		LogicError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "成员已更新",
		"project": project,
	})
}

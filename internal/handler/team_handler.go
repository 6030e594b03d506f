package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nexushq/nexus-service/internal/logic"
	"github.com/nexushq/nexus-service/internal/store"
)

type TeamHandler struct {
	teamLogic *logic.TeamLogic
}

func NewTeamHandler(s *store.Store) *TeamHandler {
	return &TeamHandler{
		teamLogic: logic.NewTeamLogic(s),
	}
}

// GetTeam 获取团队成员列表
func (h *TeamHandler) GetTeam(c *gin.Context) {
	members := h.teamLogic.ListMembers()

	c.JSON(http.StatusOK, gin.H{
		"members": members,
		"total":   len(members),
	})
}

// GetMember 获取单个团队成员
func (h *TeamHandler) GetMember(c *gin.Context) {
	member, err := h.teamLogic.GetMember(c.Param("id"))
	if err != nil {
		LogicError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"member": member})
}

// AddEmployee 入职新成员
func (h *TeamHandler) AddEmployee(c *gin.Context) {
	var req AddEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	member, err := h.teamLogic.AddEmployee(req.ToPayload())
	if err != nil {
		LogicError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "成员添加成功",
		"member":  member,
	})
}

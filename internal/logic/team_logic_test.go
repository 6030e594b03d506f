package logic

import (
	"testing"
	"time"

	"github.com/nexushq/nexus-service/internal/model"
	"github.com/nexushq/nexus-service/internal/store"
)

func TestAddEmployee_Defaults(t *testing.T) {
	team := NewTeamLogic(store.New())

	user, err := team.AddEmployee(EmployeePayload{
		Name:     "Mike Chen",
		Email:    "mike@nexus.com",
		JobTitle: "Python Developer",
	})
	if err != nil {
		t.Fatalf("AddEmployee failed: %v", err)
	}

	if user.Id == "" {
		t.Error("expected a minted id")
	}
	if user.Role != model.UserRoleUser {
		t.Errorf("expected default USER role, got %s", user.Role)
	}
	if user.ProjectsJoined != 0 {
		t.Errorf("expected projectsJoined 0, got %d", user.ProjectsJoined)
	}
	if user.JoinedDate != time.Now().Format("2006-01-02") {
		t.Errorf("expected today's joined date, got %s", user.JoinedDate)
	}

	members := team.ListMembers()
	if len(members) != 1 || members[0].Id != user.Id {
		t.Errorf("expected the new member on the roster, got %v", members)
	}
}

func TestAddEmployee_AdminRole(t *testing.T) {
	team := NewTeamLogic(store.New())
	role := model.UserRoleAdmin

	user, err := team.AddEmployee(EmployeePayload{Name: "Sarah", Email: "sarah@nexus.com", Role: &role})
	if err != nil {
		t.Fatalf("AddEmployee failed: %v", err)
	}
	if user.Role != model.UserRoleAdmin {
		t.Errorf("expected ADMIN role, got %s", user.Role)
	}
}

func TestAddEmployee_Validation(t *testing.T) {
	team := NewTeamLogic(store.New())

	if _, err := team.AddEmployee(EmployeePayload{Email: "x@nexus.com"}); err != ErrNameRequired {
		t.Errorf("expected ErrNameRequired, got %v", err)
	}
	if _, err := team.AddEmployee(EmployeePayload{Name: "X"}); err != ErrEmailRequired {
		t.Errorf("expected ErrEmailRequired, got %v", err)
	}
	if len(team.ListMembers()) != 0 {
		t.Error("rejected submissions must not mutate the roster")
	}
}

func TestGetMember(t *testing.T) {
	s := store.New()
	s.AddTeamMember(model.User{Id: "u1", Name: "Alex"})
	team := NewTeamLogic(s)

	if _, err := team.GetMember("u1"); err != nil {
		t.Errorf("expected member found, got %v", err)
	}
	if _, err := team.GetMember("ghost"); err != ErrUserNotFound {
		t.Errorf("expected ErrUserNotFound, got %v", err)
	}
}

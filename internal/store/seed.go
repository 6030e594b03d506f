package store

import (
	"time"

	"github.com/nexushq/nexus-service/internal/model"
)

// 演示用种子数据，进程启动时装载

var seedCurrentUser = model.User{
	Id:             "u1",
	Name:           "Alex Morgan",
	Email:          "alex.morgan@nexus.com",
	Role:           model.UserRoleUser,
	Avatar:         "https://images.unsplash.com/photo-1535713875002-d1d0cf377fde?auto=format&fit=crop&w=150&q=80",
	Gender:         "Male",
	JoinedDate:     "2023-01-15",
	ProjectsJoined: 3,
	Dob:            "1995-05-20",
	Experience:     "4 years",
	JobTitle:       "Senior Frontend Dev",
}

var seedAdminUser = model.User{
	Id:             "a1",
	Name:           "Sarah Connor",
	Email:          "sarah.c@nexus.com",
	Role:           model.UserRoleAdmin,
	Avatar:         "https://images.unsplash.com/photo-1494790108377-be9c29b29330?auto=format&fit=crop&w=150&q=80",
	Gender:         "Female",
	JoinedDate:     "2022-11-01",
	ProjectsJoined: 12,
	Dob:            "1988-08-15",
	Experience:     "8 years",
	JobTitle:       "Product Manager",
}

var seedTeam = []model.User{
	seedCurrentUser,
	seedAdminUser,
	{
		Id:             "u2",
		Name:           "John Doe",
		Email:          "john@nexus.com",
		Role:           model.UserRoleUser,
		Avatar:         "https://images.unsplash.com/photo-1599566150163-29194dcaad36?auto=format&fit=crop&w=150&q=80",
		Gender:         "Male",
		JoinedDate:     "2023-03-10",
		ProjectsJoined: 2,
		Dob:            "1998-02-10",
		Experience:     "2 years",
		JobTitle:       "Java Developer",
	},
	{
		Id:             "u3",
		Name:           "Jane Smith",
		Email:          "jane@nexus.com",
		Role:           model.UserRoleUser,
		Avatar:         "https://images.unsplash.com/photo-1580489944761-15a19d654956?auto=format&fit=crop&w=150&q=80",
		Gender:         "Female",
		JoinedDate:     "2023-05-22",
		ProjectsJoined: 4,
		Dob:            "1992-12-05",
		Experience:     "5 years",
		JobTitle:       "UI/UX Designer",
	},
	{
		Id:             "u4",
		Name:           "Mike Chen",
		Email:          "mike@nexus.com",
		Role:           model.UserRoleUser,
		Avatar:         "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?auto=format&fit=crop&w=150&q=80",
		Gender:         "Male",
		JoinedDate:     "2023-06-01",
		ProjectsJoined: 1,
		Dob:            "1999-04-15",
		Experience:     "1 year",
		JobTitle:       "Python Developer",
	},
}

// NewSeeded 创建并装载种子数据的仓库
func NewSeeded() *Store {
	s := New()

	for _, u := range seedTeam {
		s.AddTeamMember(u)
	}

	s.AddProject(model.Project{
		Id:          "p1",
		Name:        "Website Redesign",
		Description: "Overhaul the corporate website with new branding and modern tech stack.",
		Status:      model.ProjectStatusActive,
		Progress:    75,
		Members:     []model.User{seedCurrentUser, seedTeam[2]},
		DueDate:     seedDate("2023-12-01"),
		Image:       "https://images.unsplash.com/photo-1460925895917-afdab827c52f?auto=format&fit=crop&w=500&q=80",
		Tasks: []model.Task{
			{
				Id:          "t1",
				Title:       "Design Homepage",
				Description: "Create figma mockups",
				Status:      model.TaskStatusDone,
				Priority:    model.TaskPriorityHigh,
				DueDate:     seedDate("2023-10-15"),
				Assignee:    &seedCurrentUser,
				Image:       "https://images.unsplash.com/photo-1581291518633-83b4ebd1d83e?auto=format&fit=crop&w=300&q=80",
			},
			{
				Id:          "t2",
				Title:       "Implement React Components",
				Description: "Build shared UI lib",
				Status:      model.TaskStatusInProgress,
				Priority:    model.TaskPriorityHigh,
				DueDate:     seedDate("2023-11-01"),
				Assignee:    &seedTeam[2],
			},
		},
	})

	s.AddProject(model.Project{
		Id:          "p2",
		Name:        "Mobile App Launch",
		Description: "Prepare for iOS and Android release Q4 including marketing materials.",
		Status:      model.ProjectStatusActive,
		Progress:    40,
		Members:     []model.User{seedCurrentUser, seedTeam[3], seedAdminUser},
		DueDate:     seedDate("2024-01-15"),
		Image:       "https://images.unsplash.com/photo-1512941937669-90a1b58e7e9c?auto=format&fit=crop&w=500&q=80",
	})

	s.AddProject(model.Project{
		Id:          "p3",
		Name:        "Internal Audit",
		Description: "Q3 Financial security audit and compliance checks.",
		Status:      model.ProjectStatusOnHold,
		Progress:    10,
		Members:     []model.User{seedAdminUser},
		DueDate:     seedDate("2023-11-20"),
		Image:       "https://images.unsplash.com/photo-1454165804606-c3d57bc86b40?auto=format&fit=crop&w=500&q=80",
	})

	now := time.Now()
	s.AppendMessage(model.ChatMessage{
		Id:        "1",
		SenderId:  model.AISenderId,
		Text:      "Hello! I am NexusAI. How can I help with your project today?",
		Timestamp: now,
		IsAi:      true,
		Channel:   model.ChatChannelTeam,
	})
	s.AppendMessage(model.ChatMessage{
		Id:        "2",
		SenderId:  "u2",
		Text:      "Has anyone checked the latest build?",
		Timestamp: now.Add(-5 * time.Minute),
		Channel:   model.ChatChannelTeam,
	})
	s.AppendMessage(model.ChatMessage{
		Id:        "3",
		SenderId:  "a1",
		Text:      "Please send me the weekly report.",
		Timestamp: now.Add(-time.Hour),
		Channel:   model.ChatChannelAdmin,
	})

	s.AddNotification(model.Notification{Id: "n1", Title: "New Task Assigned", Message: `You have been assigned to "Homepage Hero"`, Time: "2 min ago", Read: false, Type: model.NotificationTypeInfo})
	s.AddNotification(model.Notification{Id: "n2", Title: "Project Update", Message: "Mobile App Launch is now 40% complete", Time: "1 hour ago", Read: false, Type: model.NotificationTypeSuccess})
	s.AddNotification(model.Notification{Id: "n3", Title: "Meeting Reminder", Message: "Team sync in 15 minutes", Time: "2 hours ago", Read: true, Type: model.NotificationTypeWarning})

	return s
}

// seedDate 解析种子数据中的日期
func seedDate(value string) time.Time {
	t, _ := time.Parse("2006-01-02", value)
	return t
}

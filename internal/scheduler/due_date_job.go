package scheduler

import (
	"fmt"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/nexushq/nexus-service/internal/config"
	"github.com/nexushq/nexus-service/internal/logger"
	"github.com/nexushq/nexus-service/internal/model"
	"github.com/nexushq/nexus-service/internal/store"
)

// 到期提醒窗口
const dueSoonWindow = 24 * time.Hour

// DueDateJob 任务到期提醒任务：扫描进行中项目里24小时内到期
// 且未完成的任务，为每个任务追加一条警告通知（按任务id去重）
type DueDateJob struct {
	store  *store.Store
	config *config.Config
}

// NewDueDateJob 创建任务到期提醒任务
func NewDueDateJob(s *store.Store, cfg *config.Config) *DueDateJob {
	return &DueDateJob{
		store:  s,
		config: cfg,
	}
}

// GetName 获取任务名称
func (j *DueDateJob) GetName() string {
	return "task_due_reminder"
}

// GetSchedule 获取调度配置
func (j *DueDateJob) GetSchedule() gocron.JobDefinition {
	return gocron.DurationJob(time.Duration(j.config.Scheduler.Interval) * time.Second)
}

// Execute 执行任务
func (j *DueDateJob) Execute() {
	logger.Debug("Starting task due reminder sweep")

	now := time.Now()
	created := 0

	for _, project := range j.store.ListProjects() {
		if project.Status != model.ProjectStatusActive {
			continue
		}

		for _, task := range project.Tasks {
			if task.Status == model.TaskStatusDone {
				continue
			}
			if task.DueDate.Before(now) || task.DueDate.After(now.Add(dueSoonWindow)) {
				continue
			}

			notificationId := "due-" + task.Id
			if j.store.HasNotification(notificationId) {
				continue
			}

			j.store.AddNotification(model.Notification{
				Id:      notificationId,
				Title:   "Task Due Soon",
				Message: fmt.Sprintf("%q is due soon in project %q", task.Title, project.Name),
				Time:    task.DueDate.Format("2006-01-02 15:04"),
				Read:    false,
				Type:    model.NotificationTypeWarning,
			})
			created++
		}
	}

	if created > 0 {
		logger.Info("Task due reminder sweep completed. Created %d notifications", created)
	}
}

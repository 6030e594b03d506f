package scheduler

import (
	"github.com/go-co-op/gocron/v2"
	"github.com/nexushq/nexus-service/internal/config"
	"github.com/nexushq/nexus-service/internal/logger"
	"github.com/nexushq/nexus-service/internal/store"
)

// Manager 定时任务管理器
type Manager struct {
	scheduler gocron.Scheduler
	store     *store.Store
	config    *config.Config
}

// NewManager 创建新的定时任务管理器
func NewManager(s *store.Store, cfg *config.Config) *Manager {
	scheduler, err := gocron.NewScheduler()
	if err != nil {
		logger.Fatal("Failed to create scheduler: %v", err)
	}

	return &Manager{
		scheduler: scheduler,
		store:     s,
		config:    cfg,
	}
}

// Start 启动定时任务管理器
func Start(s *store.Store, cfg *config.Config) *Manager {
	manager := NewManager(s, cfg)

	// 注册所有任务
	manager.RegisterJobs()

	// 启动调度器
	manager.scheduler.Start()

	logger.Info("Task manager started successfully")
	return manager
}

// RegisterJobs 注册所有任务
func (m *Manager) RegisterJobs() {
	// 注册任务到期提醒任务
	m.RegisterDueDateJob()
}

// RegisterDueDateJob 注册任务到期提醒任务
func (m *Manager) RegisterDueDateJob() {
	job := NewDueDateJob(m.store, m.config)

	_, err := m.scheduler.NewJob(
		job.GetSchedule(),
		gocron.NewTask(job.Execute),
		gocron.WithName(job.GetName()),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		logger.Error("Failed to register job %s: %v", job.GetName(), err)
	}
}

// Stop 停止定时任务管理器
func (m *Manager) Stop() {
	if err := m.scheduler.Shutdown(); err != nil {
		logger.Error("Failed to shutdown scheduler: %v", err)
	}
	logger.Info("Task manager stopped")
}

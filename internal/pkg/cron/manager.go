package cron

import (
	"Gramscope/internal/job"
	log "log/slog"

	"github.com/robfig/cron/v3"
)

type Manager struct {
	engine     *cron.Cron
	scrapeJob  *job.ScrapeJob
	scrapeSpec string
}

func NewCronManager(scrapeJob *job.ScrapeJob, scrapeSpec string) *Manager {
	return &Manager{
		engine:     cron.New(cron.WithSeconds()),
		scrapeJob:  scrapeJob,
		scrapeSpec: scrapeSpec,
	}
}

// RegisterJobs 注册定时任务，未配置 scrape_spec 时不注册
func (s *Manager) RegisterJobs() error {
	if s.scrapeSpec == "" {
		log.Info("No scrape schedule configured, cron jobs disabled")
		return nil
	}
	if _, err := s.engine.AddJob(s.scrapeSpec, s.scrapeJob); err != nil {
		return err
	}
	return nil
}

func (s *Manager) Start() {
	log.Info("Cron 定时任务引擎启动")
	s.engine.Start()
}

func (s *Manager) Stop() {
	log.Info("Cron 定时任务引擎停止")
	s.engine.Stop()
}

package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/ricewise/ricewise/internal/config"
	"github.com/ricewise/ricewise/internal/service/analytics"
	"github.com/ricewise/ricewise/pkg/clients/webhook"
)

// UserLister enumerates users that have sales history to report on.
type UserLister interface {
	DistinctUsers(ctx context.Context) ([]string, error)
}

// Scheduler pushes periodic summary reports to the configured webhook.
type Scheduler struct {
	cron         *cron.Cron
	analyticsSvc *analytics.Service
	users        UserLister
	client       webhook.Client
	cfg          config.ReportingConfig
	logger       *zap.Logger
}

// NewScheduler creates a new scheduler instance.
func NewScheduler(cfg config.ReportingConfig, analyticsSvc *analytics.Service, users UserLister, client webhook.Client, logger *zap.Logger) *Scheduler {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Scheduler{
		cron:         cron.New(),
		analyticsSvc: analyticsSvc,
		users:        users,
		client:       client,
		cfg:          cfg,
		logger:       logger,
	}
}

// Start registers the report job and starts the cron loop.
func (s *Scheduler) Start() {
	s.logger.Info("starting scheduler", zap.String("schedule", s.cfg.CronSchedule))

	if _, err := s.cron.AddFunc(s.cfg.CronSchedule, s.pushSummaryReports); err != nil {
		s.logger.Error("failed to schedule summary report", zap.Error(err))
	}

	s.cron.Start()
}

// Stop stops the scheduler.
func (s *Scheduler) Stop() {
	s.logger.Info("stopping scheduler")
	s.cron.Stop()
}

func (s *Scheduler) pushSummaryReports() {
	s.logger.Info("generating summary reports")
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	users, err := s.users.DistinctUsers(ctx)
	if err != nil {
		s.logger.Error("failed to list users", zap.Error(err))
		return
	}

	year := time.Now().Year()
	sent := 0
	for _, userID := range users {
		summary := s.analyticsSvc.Summary(ctx, userID, analytics.Filter{Year: year}, analytics.PeriodWeek)
		if summary.TotalEntries == 0 {
			continue
		}

		msg := webhook.ReportMessage{
			UserID:      userID,
			Period:      fmt.Sprintf("%d", year),
			Text:        formatSummary(year, summary.TotalEntries, summary.TotalSold, summary.TotalRevenue, summary.WastePercentage, summary.EfficiencyScore),
			GeneratedAt: time.Now(),
		}
		if err := s.client.PostReport(ctx, msg); err != nil {
			s.logger.Error("failed to push summary report",
				zap.Error(err), zap.String("user_id", userID))
			continue
		}
		sent++
	}

	s.logger.Info("summary reports pushed", zap.Int("sent", sent), zap.Int("users", len(users)))
}

func formatSummary(year, entries int, sold, revenue, wastePct float64, score string) string {
	return fmt.Sprintf(
		"Rice sales summary %d: %d entries, %.2f kg sold, %.2f revenue, %.2f%% waste (%s)",
		year, entries, sold, revenue, wastePct, score)
}

package jobs

import (
	"context"
	"fmt"
	"time"

	"tripmate/internal/database"
	"tripmate/internal/services"

	"github.com/go-co-op/gocron/v2"
	"github.com/sirupsen/logrus"
)

// Scheduler runs the background maintenance jobs: nightly retention
// cleanup and periodic providers.json reconciliation
type Scheduler struct {
	scheduler gocron.Scheduler
	logger    *logrus.Logger

	db            *database.DB
	providers     *services.ProviderService
	providersFile string
	retentionDays int
}

// NewScheduler creates the background job scheduler
func NewScheduler(db *database.DB, providers *services.ProviderService, providersFile string, retentionDays int) (*Scheduler, error) {
	scheduler, err := gocron.NewScheduler(
		gocron.WithLocation(time.UTC),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create scheduler: %w", err)
	}

	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})

	return &Scheduler{
		scheduler:     scheduler,
		logger:        logger,
		db:            db,
		providers:     providers,
		providersFile: providersFile,
		retentionDays: retentionDays,
	}, nil
}

// Start registers all jobs and starts the scheduler
func (s *Scheduler) Start() error {
	// Nightly retention cleanup at 03:10 UTC
	_, err := s.scheduler.NewJob(
		gocron.DailyJob(1, gocron.NewAtTimes(gocron.NewAtTime(3, 10, 0))),
		gocron.NewTask(func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
			defer cancel()
			s.runRetentionCleanup(ctx)
		}),
	)
	if err != nil {
		return fmt.Errorf("failed to register retention job: %w", err)
	}

	// Provider reconciliation every 15 minutes, belt and braces next to
	// the fsnotify watcher
	_, err = s.scheduler.NewJob(
		gocron.DurationJob(15*time.Minute),
		gocron.NewTask(func() {
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()
			if err := s.providers.SyncFromFile(ctx, s.providersFile); err != nil {
				s.logger.WithFields(logrus.Fields{
					"job":   "provider_sync",
					"error": err.Error(),
				}).Warn("provider sync failed")
			}
		}),
	)
	if err != nil {
		return fmt.Errorf("failed to register provider sync job: %w", err)
	}

	s.scheduler.Start()
	s.logger.WithField("retention_days", s.retentionDays).Info("background jobs started")
	return nil
}

// Stop shuts the scheduler down
func (s *Scheduler) Stop() error {
	return s.scheduler.Shutdown()
}

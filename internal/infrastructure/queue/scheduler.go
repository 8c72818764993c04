package queue

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/hibiken/asynq"

	"tattoo-studio/internal/config"
	"tattoo-studio/internal/shared"
	"tattoo-studio/pkg/logger"
)

type Scheduler struct {
	scheduler *asynq.Scheduler
	cfg       config.WorkerConfig
}

func NewScheduler(redisOpt asynq.RedisClientOpt, cfg config.WorkerConfig) *Scheduler {
	scheduler := asynq.NewScheduler(
		redisOpt,
		&asynq.SchedulerOpts{
			Location: time.UTC,
			LogLevel: asynq.InfoLevel,
		},
	)

	return &Scheduler{
		scheduler: scheduler,
		cfg:       cfg,
	}
}

func (s *Scheduler) RegisterJobs() error {
	return s.registerThumbnailBackfillJob()
}

// ================================================
// Thumbnail backfill (mặc định mỗi 15 phút)
// ================================================
func (s *Scheduler) registerThumbnailBackfillJob() error {
	task, err := BackfillTask(s.cfg.BackfillBatch)
	if err != nil {
		return err
	}

	entryID, err := s.scheduler.Register(
		s.cfg.BackfillCron,
		task,
		asynq.Queue(shared.QueueDefault),
		asynq.MaxRetry(1),
		asynq.Timeout(2*time.Minute),
	)
	if err != nil {
		logger.Error("Failed to register ThumbnailBackfill job", err)
		return fmt.Errorf("register thumbnail backfill: %w", err)
	}

	logger.Info("Registered ThumbnailBackfill job", map[string]interface{}{
		"entry_id": entryID,
		"cron":     s.cfg.BackfillCron,
		"batch":    s.cfg.BackfillBatch,
	})
	return nil
}

// BackfillTask build task định kỳ, tách ra để test không cần Redis
func BackfillTask(limit int) (*asynq.Task, error) {
	payload, err := json.Marshal(shared.BackfillThumbnailsPayload{Limit: limit})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(shared.TypeBackfillThumbnails, payload), nil
}

func (s *Scheduler) Start() error {
	return s.scheduler.Start()
}

func (s *Scheduler) Shutdown() {
	s.scheduler.Shutdown()
}

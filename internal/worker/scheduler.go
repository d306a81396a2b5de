package worker

import (
	"context"
	"fmt"

	"anoa.com/askify/pkg/logger"
	"github.com/robfig/cron/v3"
)

// Job is a unit of background work. Jobs with an empty schedule only run
// on demand.
type Job interface {
	Name() string
	Schedule() string
	Run(ctx context.Context) error
}

type Scheduler struct {
	cron *cron.Cron
	jobs []Job
}

func NewScheduler() *Scheduler {
	return &Scheduler{
		cron: cron.New(),
	}
}

// Register adds job and schedules it when it has a cron spec.
func (s *Scheduler) Register(job Job) error {
	schedule := job.Schedule()
	if schedule != "" {
		_, err := s.cron.AddFunc(schedule, func() {
			if err := s.run(context.Background(), job); err != nil {
				logger.Log.Errorw("scheduled job failed", "job", job.Name(), "error", err)
			}
		})
		if err != nil {
			return fmt.Errorf("schedule %s: %w", job.Name(), err)
		}
		logger.Log.Infow("job scheduled", "job", job.Name(), "schedule", schedule)
	}

	s.jobs = append(s.jobs, job)
	return nil
}

func (s *Scheduler) run(ctx context.Context, job Job) error {
	logger.Log.Debugw("job starting", "job", job.Name())
	if err := job.Run(ctx); err != nil {
		return err
	}
	logger.Log.Debugw("job completed", "job", job.Name())
	return nil
}

func (s *Scheduler) Start() {
	s.cron.Start()
	logger.Log.Infow("scheduler started", "jobs", s.Jobs())
}

// Stop halts the cron loop and waits for running jobs to return.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
}

// RunByName runs a registered job immediately.
func (s *Scheduler) RunByName(ctx context.Context, name string) error {
	for _, job := range s.jobs {
		if job.Name() == name {
			return s.run(ctx, job)
		}
	}
	return fmt.Errorf("job %q not registered", name)
}

func (s *Scheduler) Jobs() []string {
	names := make([]string, len(s.jobs))
	for i, job := range s.jobs {
		names[i] = job.Name()
	}
	return names
}

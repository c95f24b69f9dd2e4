package cron

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// Job is a background task executed on a fixed interval. The engine
// schedules exactly one, the holiday auto-marker, so the scheduler
// stays deliberately small: the job set is fixed at construction and
// every job gets its own goroutine.
type Job struct {
	Name     string
	Interval time.Duration
	Run      func(ctx context.Context) error
}

type Scheduler struct {
	jobs   []Job
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewScheduler(jobs ...Job) *Scheduler {
	ctx, cancel := context.WithCancel(context.Background())
	return &Scheduler{
		jobs:   jobs,
		ctx:    ctx,
		cancel: cancel,
	}
}

// Start launches every job loop. Each job also runs once immediately,
// so a process started during the first hour of a holiday marks the
// date without waiting a full interval.
func (s *Scheduler) Start() {
	for _, job := range s.jobs {
		s.wg.Add(1)
		go s.loop(job)
	}
	slog.Info("Scheduler started", "jobs", len(s.jobs))
}

// Stop cancels the job contexts and waits for in-flight runs to finish.
func (s *Scheduler) Stop() {
	s.cancel()
	s.wg.Wait()
	slog.Info("Scheduler stopped")
}

func (s *Scheduler) loop(job Job) {
	defer s.wg.Done()

	ticker := time.NewTicker(job.Interval)
	defer ticker.Stop()

	s.execute(job)

	for {
		select {
		case <-s.ctx.Done():
			return
		case <-ticker.C:
			s.execute(job)
		}
	}
}

func (s *Scheduler) execute(job Job) {
	start := time.Now()
	if err := job.Run(s.ctx); err != nil {
		slog.Error("Scheduled job failed", "name", job.Name, "error", err, "duration", time.Since(start))
		return
	}
	slog.Debug("Scheduled job finished", "name", job.Name, "duration", time.Since(start))
}

package cron

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// Job is a background task fired on a fixed interval.
type Job struct {
	Name  string
	Every time.Duration
	Run   func(ctx context.Context) error
}

// Scheduler drives background jobs for the single-process server. Register
// every job with AddJob before calling Start; registration is not safe once
// the loops are running.
type Scheduler struct {
	jobs   []Job
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewScheduler() *Scheduler {
	ctx, cancel := context.WithCancel(context.Background())
	return &Scheduler{ctx: ctx, cancel: cancel}
}

func (s *Scheduler) AddJob(name string, every time.Duration, run func(ctx context.Context) error) {
	s.jobs = append(s.jobs, Job{Name: name, Every: every, Run: run})
	slog.Info("cron job registered", "name", name, "every", every)
}

// Start launches one goroutine per registered job. Each job fires once
// immediately, then on every tick until Stop.
func (s *Scheduler) Start() {
	for _, job := range s.jobs {
		s.wg.Add(1)
		go s.loop(job)
	}
	slog.Info("cron scheduler started", "jobs", len(s.jobs))
}

// Stop cancels all job loops and waits for in-flight runs to finish.
func (s *Scheduler) Stop() {
	s.cancel()
	s.wg.Wait()
	slog.Info("cron scheduler stopped")
}

func (s *Scheduler) loop(job Job) {
	defer s.wg.Done()

	ticker := time.NewTicker(job.Every)
	defer ticker.Stop()

	for {
		start := time.Now()
		if err := job.Run(s.ctx); err != nil {
			slog.Error("cron job failed", "name", job.Name, "error", err, "duration", time.Since(start))
		} else {
			slog.Debug("cron job completed", "name", job.Name, "duration", time.Since(start))
		}

		select {
		case <-s.ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

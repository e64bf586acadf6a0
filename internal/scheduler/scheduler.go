// Package scheduler runs recurring background tasks for the monitoring
// service.
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// Scheduler manages scheduled tasks
type Scheduler struct {
	tasks   map[string]*Task
	running map[string]context.CancelFunc
	mu      sync.RWMutex
	wg      sync.WaitGroup
	ctx     context.Context
	cancel  context.CancelFunc
	started bool
}

// NewScheduler creates a new scheduler
func NewScheduler() *Scheduler {
	ctx, cancel := context.WithCancel(context.Background())
	return &Scheduler{
		tasks:   make(map[string]*Task),
		running: make(map[string]context.CancelFunc),
		ctx:     ctx,
		cancel:  cancel,
	}
}

// Task represents a scheduled task
type Task struct {
	ID         string        `json:"id"`
	Name       string        `json:"name"`
	Schedule   Schedule      `json:"schedule"`
	Handler    TaskHandler   `json:"-"`
	Enabled    bool          `json:"enabled"`
	LastRun    *time.Time    `json:"lastRun,omitempty"`
	NextRun    *time.Time    `json:"nextRun,omitempty"`
	RunCount   int64         `json:"runCount"`
	ErrorCount int64         `json:"errorCount"`
	LastError  string        `json:"lastError,omitempty"`
	Timeout    time.Duration `json:"timeout"`
}

// TaskHandler is the function executed for a task
type TaskHandler func(ctx context.Context) error

// Schedule defines when a task runs
type Schedule struct {
	Type     ScheduleType  `json:"type"`
	Interval time.Duration `json:"interval,omitempty"` // For interval schedules
	At       string        `json:"at,omitempty"`       // For daily schedules, "HH:MM"
}

// ScheduleType represents the type of schedule
type ScheduleType string

const (
	ScheduleInterval ScheduleType = "interval" // Run every X duration
	ScheduleDaily    ScheduleType = "daily"    // Run at specific time daily
)

// Register adds a task to the scheduler
func (s *Scheduler) Register(task *Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if task.ID == "" {
		return fmt.Errorf("task ID is required")
	}
	if task.Handler == nil {
		return fmt.Errorf("task handler is required")
	}
	if task.Timeout == 0 {
		task.Timeout = 5 * time.Minute
	}

	task.Enabled = true
	nextRun := calculateNextRun(task.Schedule)
	task.NextRun = &nextRun

	s.tasks[task.ID] = task
	if s.started {
		s.startTask(task)
	}
	return nil
}

// Unregister removes a task from the scheduler
func (s *Scheduler) Unregister(taskID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if cancel, ok := s.running[taskID]; ok {
		cancel()
		delete(s.running, taskID)
	}
	delete(s.tasks, taskID)
}

// Tasks returns a snapshot of all registered tasks
func (s *Scheduler) Tasks() []Task {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Task, 0, len(s.tasks))
	for _, t := range s.tasks {
		out = append(out, *t)
	}
	return out
}

// Start starts the scheduler
func (s *Scheduler) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return fmt.Errorf("scheduler already started")
	}
	s.started = true

	for _, task := range s.tasks {
		if task.Enabled {
			s.startTask(task)
		}
	}
	return nil
}

// Stop stops the scheduler and waits for running tasks
func (s *Scheduler) Stop() {
	s.mu.Lock()
	if !s.started {
		s.mu.Unlock()
		return
	}

	s.cancel()
	for _, cancel := range s.running {
		cancel()
	}
	s.running = make(map[string]context.CancelFunc)
	s.mu.Unlock()

	s.wg.Wait()

	s.mu.Lock()
	s.started = false
	s.ctx, s.cancel = context.WithCancel(context.Background())
	s.mu.Unlock()
}

func (s *Scheduler) startTask(task *Task) {
	taskCtx, cancel := context.WithCancel(s.ctx)
	s.running[task.ID] = cancel

	s.wg.Add(1)
	go s.runTaskLoop(taskCtx, task)
}

func (s *Scheduler) runTaskLoop(ctx context.Context, task *Task) {
	defer s.wg.Done()

	for {
		s.mu.RLock()
		var wait time.Duration
		if task.NextRun != nil {
			wait = time.Until(*task.NextRun)
		}
		s.mu.RUnlock()
		if wait < 0 {
			wait = 0
		}

		select {
		case <-ctx.Done():
			return
		case <-time.After(wait):
			s.executeTask(ctx, task)
		}
	}
}

func (s *Scheduler) executeTask(ctx context.Context, task *Task) {
	execCtx, cancel := context.WithTimeout(ctx, task.Timeout)
	defer cancel()

	now := time.Now()
	s.mu.Lock()
	task.LastRun = &now
	task.RunCount++
	s.mu.Unlock()

	err := task.Handler(execCtx)

	s.mu.Lock()
	if err != nil {
		task.ErrorCount++
		task.LastError = err.Error()
	} else {
		task.LastError = ""
	}
	nextRun := calculateNextRun(task.Schedule)
	task.NextRun = &nextRun
	s.mu.Unlock()
}

func calculateNextRun(schedule Schedule) time.Time {
	now := time.Now()

	switch schedule.Type {
	case ScheduleDaily:
		hour, minute := 8, 0
		fmt.Sscanf(schedule.At, "%d:%d", &hour, &minute)

		next := time.Date(now.Year(), now.Month(), now.Day(), hour, minute, 0, 0, now.Location())
		if next.Before(now) {
			next = next.Add(24 * time.Hour)
		}
		return next

	case ScheduleInterval:
		fallthrough
	default:
		interval := schedule.Interval
		if interval <= 0 {
			interval = time.Minute
		}
		return now.Add(interval)
	}
}

package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/eldersense/eldersense/internal/core"
	"github.com/eldersense/eldersense/internal/notify"
	"github.com/eldersense/eldersense/internal/testutil"
)

func TestRegister_Validation(t *testing.T) {
	s := NewScheduler()

	if err := s.Register(&Task{Name: "no id", Handler: func(ctx context.Context) error { return nil }}); err == nil {
		t.Error("expected error for missing ID")
	}
	if err := s.Register(&Task{ID: "no-handler"}); err == nil {
		t.Error("expected error for missing handler")
	}

	task := &Task{
		ID:       "ok",
		Schedule: Schedule{Type: ScheduleInterval, Interval: time.Minute},
		Handler:  func(ctx context.Context) error { return nil },
	}
	if err := s.Register(task); err != nil {
		t.Fatalf("Register: %v", err)
	}
	if task.Timeout == 0 {
		t.Error("expected a default timeout")
	}
	if task.NextRun == nil || !task.Enabled {
		t.Errorf("registration must schedule and enable the task: %+v", task)
	}
}

func TestSecondOfDay(t *testing.T) {
	cases := []struct {
		in   string
		want int
		ok   bool
	}{
		{"08:30:00", 8*3600 + 30*60, true},
		{"08:30", 8*3600 + 30*60, true},
		{"1:05:10 PM", 13*3600 + 5*60 + 10, true},
		{"9:00 AM", 9 * 3600, true},
		{"not a time", 0, false},
		{"", 0, false},
	}
	for _, c := range cases {
		got, ok := secondOfDay(c.in)
		if got != c.want || ok != c.ok {
			t.Errorf("secondOfDay(%q) = (%d, %v), want (%d, %v)", c.in, got, ok, c.want, c.ok)
		}
	}
}

func TestDispatchDueReminders(t *testing.T) {
	st := testutil.EmptyStore(t)
	alerts := notify.NewService()

	due := core.Reminder{
		DeviceID:      "D1",
		Timestamp:     "2/1/2025 07:00",
		ReminderType:  core.ReminderMedication,
		ScheduledTime: "08:00:00",
	}
	notYet := core.Reminder{
		DeviceID:      "D1",
		Timestamp:     "2/1/2025 07:01",
		ReminderType:  core.ReminderExercise,
		ScheduledTime: "20:00:00",
	}
	for _, r := range []core.Reminder{due, notYet} {
		if err := st.AddReminder(r); err != nil {
			t.Fatalf("AddReminder: %v", err)
		}
	}

	now := time.Date(2025, 2, 1, 9, 0, 0, 0, time.UTC)
	if err := dispatchDueReminders(st, alerts, now); err != nil {
		t.Fatalf("dispatchDueReminders: %v", err)
	}

	pending := st.GetPendingReminders()
	if len(pending) != 1 || pending[0].ScheduledTime != "20:00:00" {
		t.Errorf("pending after dispatch: %+v", pending)
	}

	raised := alerts.Recent(10)
	if len(raised) != 1 {
		t.Fatalf("expected 1 alert, got %d", len(raised))
	}
	if raised[0].Type != notify.AlertReminderDue || raised[0].Title != "Medication reminder" {
		t.Errorf("unexpected alert: %+v", raised[0])
	}

	// A second sweep finds nothing new.
	if err := dispatchDueReminders(st, alerts, now); err != nil {
		t.Fatalf("second dispatch: %v", err)
	}
	if len(alerts.Recent(10)) != 1 {
		t.Error("already-sent reminder dispatched again")
	}
}

func TestSchedulerRunsIntervalTask(t *testing.T) {
	s := NewScheduler()
	ran := make(chan struct{}, 4)

	err := s.Register(&Task{
		ID:       "tick",
		Name:     "tick",
		Schedule: Schedule{Type: ScheduleInterval, Interval: 20 * time.Millisecond},
		Handler: func(ctx context.Context) error {
			select {
			case ran <- struct{}{}:
			default:
			}
			return nil
		},
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	if err := s.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	defer s.Stop()

	select {
	case <-ran:
	case <-time.After(2 * time.Second):
		t.Fatal("interval task never ran")
	}

	tasks := s.Tasks()
	if len(tasks) != 1 {
		t.Fatalf("expected 1 task, got %d", len(tasks))
	}
}

package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/eldersense/eldersense/internal/agents"
	"github.com/eldersense/eldersense/internal/logging"
	"github.com/eldersense/eldersense/internal/notify"
	"github.com/eldersense/eldersense/internal/store"
)

// RegisterReminderDispatch adds the task that marks due reminders as sent
// and raises a caregiver alert for each one.
func RegisterReminderDispatch(s *Scheduler, st store.Store, alerts *notify.Service, interval time.Duration) error {
	if interval <= 0 {
		interval = time.Minute
	}
	return s.Register(&Task{
		ID:       "reminder-dispatch",
		Name:     "Dispatch due reminders",
		Schedule: Schedule{Type: ScheduleInterval, Interval: interval},
		Timeout:  30 * time.Second,
		Handler: func(ctx context.Context) error {
			return dispatchDueReminders(st, alerts, time.Now())
		},
	})
}

// dispatchDueReminders sends every pending reminder whose scheduled time of
// day has passed.
func dispatchDueReminders(st store.Store, alerts *notify.Service, now time.Time) error {
	nowOfDay := now.Hour()*3600 + now.Minute()*60 + now.Second()

	for _, r := range st.GetPendingReminders() {
		due, ok := secondOfDay(r.ScheduledTime)
		if !ok || due > nowOfDay {
			continue
		}

		if !st.UpdateReminderStatus(r.DeviceID, r.Timestamp, true, false, "") {
			logging.WithField("device", r.DeviceID).Warn("Due reminder vanished before dispatch")
			continue
		}

		title := r.Title
		if title == "" {
			title = fmt.Sprintf("%s reminder", r.ReminderType)
		}
		alerts.Raise(notify.CreateAlertRequest{
			Type:     notify.AlertReminderDue,
			DeviceID: r.DeviceID,
			Title:    title,
			Body:     fmt.Sprintf("Scheduled for %s", r.ScheduledTime),
			Urgency:  notify.UrgencyMedium,
		})
	}
	return nil
}

// secondOfDay parses a scheduled-time string into seconds since midnight.
func secondOfDay(s string) (int, bool) {
	for _, layout := range []string{"15:04:05", "15:04", "3:04:05 PM", "3:04 PM"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Hour()*3600 + t.Minute()*60 + t.Second(), true
		}
	}
	return 0, false
}

// RegisterPatternRefresh adds the daily task that re-derives behavioral
// patterns for the given devices.
func RegisterPatternRefresh(s *Scheduler, agent *agents.BehavioralAgent, deviceIDs []string, at string) error {
	if at == "" {
		at = "03:00"
	}
	return s.Register(&Task{
		ID:       "pattern-refresh",
		Name:     "Refresh behavioral patterns",
		Schedule: Schedule{Type: ScheduleDaily, At: at},
		Timeout:  5 * time.Minute,
		Handler: func(ctx context.Context) error {
			for _, id := range deviceIDs {
				if _, err := agent.AnalyzePatterns(ctx, id); err != nil {
					logging.WithField("device", id).Warn("Pattern refresh failed: %v", err)
				}
			}
			return nil
		},
	})
}

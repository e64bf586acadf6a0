package store

import (
	"testing"

	"github.com/eldersense/eldersense/internal/core"
)

func sqlStore(t *testing.T) *SQLStore {
	t.Helper()
	s, err := OpenSQL("")
	if err != nil {
		t.Fatalf("OpenSQL: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func seededSQLStore(t *testing.T) *SQLStore {
	t.Helper()
	s := sqlStore(t)
	if err := s.Seed(SeedRecords()); err != nil {
		t.Fatalf("Seed: %v", err)
	}
	return s
}

func TestSQL_HealthDataContract(t *testing.T) {
	s := seededSQLStore(t)

	all := s.GetHealthData("", 0)
	if len(all) != len(SeedRecords().Health) {
		t.Fatalf("expected all seeded readings, got %d", len(all))
	}
	for i := 1; i < len(all); i++ {
		if ParseTimestamp(all[i].Timestamp).After(ParseTimestamp(all[i-1].Timestamp)) {
			t.Errorf("readings not sorted newest first at index %d", i)
		}
	}

	alerts := s.GetHealthAlerts(3)
	if len(alerts) > 3 {
		t.Errorf("limit not applied: %d alerts", len(alerts))
	}
	for _, r := range alerts {
		if !r.AlertTriggered {
			t.Errorf("non-alert reading in alerts: %+v", r)
		}
	}
}

func TestSQL_LocationActivityFixedRooms(t *testing.T) {
	s := sqlStore(t)

	activity := s.GetLocationActivity()
	if len(activity) != 4 {
		t.Fatalf("expected 4 rooms, got %d", len(activity))
	}
	for _, room := range Rooms {
		la, ok := activity[room]
		if !ok {
			t.Fatalf("missing room %q", room)
		}
		if la.LastActivity != NoData {
			t.Errorf("empty room %q lastActivity = %q, want %q", room, la.LastActivity, NoData)
		}
	}
}

func TestSQL_ReminderLifecycle(t *testing.T) {
	s := sqlStore(t)

	r := core.Reminder{
		DeviceID:      "D1",
		Timestamp:     "2/1/2025 09:00",
		ReminderType:  core.ReminderMedication,
		ScheduledTime: "10:00:00",
		Title:         "Morning Pills",
	}
	if err := s.AddReminder(r); err != nil {
		t.Fatalf("AddReminder: %v", err)
	}

	got := s.GetReminderData("D1", 0)
	if len(got) != 1 {
		t.Fatalf("expected 1 reminder, got %d", len(got))
	}
	if got[0].ReminderSent || got[0].Acknowledged || got[0].Title != "Morning Pills" {
		t.Errorf("round trip mismatch: %+v", got[0])
	}

	if s.UpdateReminderStatus("D1", "3/1/2025 09:00", true, true, "") {
		t.Error("expected false for unknown timestamp")
	}
	if !s.UpdateReminderStatus("D1", "2/1/2025 09:00", true, true, "taken") {
		t.Fatal("expected update to succeed")
	}

	got = s.GetReminderData("D1", 0)
	if !got[0].ReminderSent || !got[0].Acknowledged || got[0].Feedback != "taken" {
		t.Errorf("update not persisted: %+v", got[0])
	}

	if len(s.GetPendingReminders()) != 0 {
		t.Error("acknowledged reminder must not be pending")
	}
}

func TestSQL_ReminderStats(t *testing.T) {
	s := sqlStore(t)

	stats := s.GetReminderStats()
	if stats.Total != 0 || stats.SentPercentage != 0 {
		t.Errorf("empty stats should be zeros: %+v", stats)
	}

	s.AddReminder(core.Reminder{DeviceID: "D1", Timestamp: "2/1/2025 08:00", ReminderType: core.ReminderMedication})
	s.AddReminder(core.Reminder{DeviceID: "D1", Timestamp: "2/1/2025 09:00", ReminderType: core.ReminderHydration})
	s.UpdateReminderStatus("D1", "2/1/2025 08:00", true, true, "")

	stats = s.GetReminderStats()
	if stats.Total != 2 || stats.Sent != 1 || stats.Acknowledged != 1 {
		t.Fatalf("unexpected stats: %+v", stats)
	}
	if stats.SentPercentage != 50 || stats.AcknowledgedPercentage != 50 {
		t.Errorf("unexpected percentages: %+v", stats)
	}
}

func TestSQL_PatternUpsert(t *testing.T) {
	s := sqlStore(t)

	p := core.BehavioralPattern{
		DeviceID:    "D1",
		PatternType: "meal",
		StartTime:   "12:00",
		EndTime:     "12:30",
		DaysOfWeek:  []string{"Mon", "Tue"},
		Location:    "Kitchen",
		Confidence:  0.6,
		LastUpdated: "2025-02-01",
	}
	if err := s.UpdateBehavioralPattern(p); err != nil {
		t.Fatalf("insert: %v", err)
	}

	p.Confidence = 0.8
	if err := s.UpdateBehavioralPattern(p); err != nil {
		t.Fatalf("upsert: %v", err)
	}

	got := s.GetBehavioralPatterns("D1")
	if len(got) != 1 {
		t.Fatalf("expected 1 pattern after upsert, got %d", len(got))
	}
	if got[0].Confidence != 0.8 || len(got[0].DaysOfWeek) != 2 {
		t.Errorf("upsert mismatch: %+v", got[0])
	}
}

func TestSQL_GaitTrendAscending(t *testing.T) {
	s := seededSQLStore(t)

	trend := s.GetFallRiskTrend("D1000")
	if len(trend) == 0 {
		t.Fatal("expected seeded trend")
	}
	for i := 1; i < len(trend); i++ {
		if ParseTimestamp(trend[i].Timestamp).Before(ParseTimestamp(trend[i-1].Timestamp)) {
			t.Errorf("trend not ascending at index %d", i)
		}
	}
}

func TestSQL_MigrationsIdempotent(t *testing.T) {
	s := sqlStore(t)
	if err := s.migrate(); err != nil {
		t.Fatalf("second migrate: %v", err)
	}

	var applied int
	if err := s.Conn().QueryRow(`SELECT COUNT(*) FROM _migrations`).Scan(&applied); err != nil {
		t.Fatalf("count migrations: %v", err)
	}
	if applied == 0 {
		t.Fatal("no migrations recorded")
	}
}

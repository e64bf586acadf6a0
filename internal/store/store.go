// Package store implements the record store backing the monitoring agents.
package store

import (
	"fmt"
	"math"
	"time"

	"github.com/eldersense/eldersense/internal/config"
	"github.com/eldersense/eldersense/internal/core"
)

// NoData is the sentinel last-activity value for rooms with no readings.
const NoData = "No data"

// Rooms are the fixed rooms tracked for location activity.
var Rooms = []string{"Living Room", "Kitchen", "Bedroom", "Bathroom"}

// Store answers read queries over the five record collections and accepts
// writes for reminders, behavioral patterns and gait samples. Implementations
// are safe for concurrent use.
type Store interface {
	// Health
	GetHealthData(deviceID string, limit int) []core.HealthReading
	GetHealthAlerts(limit int) []core.HealthReading

	// Safety
	GetSafetyData(deviceID string, limit int) []core.SafetyReading
	GetFallEvents(limit int) []core.SafetyReading
	GetLocationActivity() map[string]core.LocationActivity

	// Reminders
	GetReminderData(deviceID string, limit int) []core.Reminder
	GetPendingReminders() []core.Reminder
	GetReminderStats() core.ReminderStats
	AddReminder(r core.Reminder) error
	UpdateReminderStatus(deviceID, timestamp string, sent, acknowledged bool, feedback string) bool

	// Behavioral patterns
	GetBehavioralPatterns(deviceID string) []core.BehavioralPattern
	UpdateBehavioralPattern(p core.BehavioralPattern) error

	// Gait
	GetGaitData(deviceID string, limit int) []core.GaitSample
	AddGaitSample(s core.GaitSample) error
	GetFallRiskTrend(deviceID string) []core.RiskPoint

	Close() error
}

// Open constructs the store selected by configuration. The seed backend is
// an in-memory store preloaded with sample records; the sqlite backend is
// persistent and starts empty unless seeded before.
func Open(cfg *config.Config) (Store, error) {
	switch cfg.Storage.Backend {
	case config.BackendSQLite:
		return OpenSQL(cfg.SQLitePath())
	case config.BackendSeed, "":
		return NewMemoryStore(SeedRecords()), nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
	}
}

// timestampLayout matches the device export format, e.g. "1/22/2025 20:42".
// Gait exports carry seconds, e.g. "1/2/2025 09:30:00".
const timestampLayout = "1/2/2006 15:04"

var timestampLayouts = []string{timestampLayout, "1/2/2006 15:04:05"}

// ParseTimestamp parses a record timestamp. Unparseable values yield the
// zero time, which sorts last.
func ParseTimestamp(s string) time.Time {
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}

// FormatTimestamp renders a time in the record timestamp format.
func FormatTimestamp(t time.Time) string {
	return t.Format(timestampLayout)
}

// percentage computes round(part/total*100), yielding 0 when total is 0.
func percentage(part, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(part) / float64(total) * 100))
}

// normalizeReminder enforces the write-boundary invariant that an
// acknowledged reminder has also been sent.
func normalizeReminder(r *core.Reminder) {
	if r.Acknowledged {
		r.ReminderSent = true
	}
}

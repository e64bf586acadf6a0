package store

import (
	"sort"
	"sync"
	"time"

	"github.com/eldersense/eldersense/internal/core"
)

// MemoryStore holds all records in memory. It is the seed-data backend:
// mutations are lost on restart and the seed records reload.
type MemoryStore struct {
	mu       sync.RWMutex
	health   []core.HealthReading
	safety   []core.SafetyReading
	reminder []core.Reminder
	patterns []core.BehavioralPattern
	gait     []core.GaitSample
}

// Records is the full record set used to initialize a MemoryStore.
type Records struct {
	Health   []core.HealthReading
	Safety   []core.SafetyReading
	Reminder []core.Reminder
	Patterns []core.BehavioralPattern
	Gait     []core.GaitSample
}

// NewMemoryStore creates a store preloaded with the given records.
func NewMemoryStore(rec Records) *MemoryStore {
	s := &MemoryStore{
		health:   append([]core.HealthReading(nil), rec.Health...),
		safety:   append([]core.SafetyReading(nil), rec.Safety...),
		reminder: append([]core.Reminder(nil), rec.Reminder...),
		patterns: append([]core.BehavioralPattern(nil), rec.Patterns...),
		gait:     append([]core.GaitSample(nil), rec.Gait...),
	}
	for i := range s.reminder {
		normalizeReminder(&s.reminder[i])
	}
	return s
}

// GetHealthData returns readings filtered by device, newest first.
func (s *MemoryStore) GetHealthData(deviceID string, limit int) []core.HealthReading {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []core.HealthReading
	for _, r := range s.health {
		if deviceID == "" || r.DeviceID == deviceID {
			out = append(out, r)
		}
	}
	sortNewestFirst(out, func(r core.HealthReading) string { return r.Timestamp })
	return truncate(out, limit)
}

// GetHealthAlerts returns readings with a triggered alert, newest first.
func (s *MemoryStore) GetHealthAlerts(limit int) []core.HealthReading {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []core.HealthReading
	for _, r := range s.health {
		if r.AlertTriggered {
			out = append(out, r)
		}
	}
	sortNewestFirst(out, func(r core.HealthReading) string { return r.Timestamp })
	return truncate(out, limit)
}

// GetSafetyData returns readings filtered by device, newest first.
func (s *MemoryStore) GetSafetyData(deviceID string, limit int) []core.SafetyReading {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []core.SafetyReading
	for _, r := range s.safety {
		if deviceID == "" || r.DeviceID == deviceID {
			out = append(out, r)
		}
	}
	sortNewestFirst(out, func(r core.SafetyReading) string { return r.Timestamp })
	return truncate(out, limit)
}

// GetFallEvents returns readings where a fall was detected, newest first.
func (s *MemoryStore) GetFallEvents(limit int) []core.SafetyReading {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []core.SafetyReading
	for _, r := range s.safety {
		if r.FallDetected {
			out = append(out, r)
		}
	}
	sortNewestFirst(out, func(r core.SafetyReading) string { return r.Timestamp })
	return truncate(out, limit)
}

// GetLocationActivity summarizes activity for each fixed room. Rooms with no
// readings get a zero count and the NoData sentinel.
func (s *MemoryStore) GetLocationActivity() map[string]core.LocationActivity {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make(map[string]core.LocationActivity, len(Rooms))
	for _, room := range Rooms {
		var latest time.Time
		var latestTS string
		count := 0
		for _, r := range s.safety {
			if r.Location != room {
				continue
			}
			count++
			if ts := ParseTimestamp(r.Timestamp); latestTS == "" || ts.After(latest) {
				latest = ts
				latestTS = r.Timestamp
			}
		}
		activity := core.LocationActivity{Count: count, LastActivity: NoData}
		if latestTS != "" {
			activity.LastActivity = latestTS
		}
		result[room] = activity
	}
	return result
}

// GetReminderData returns reminders filtered by device, newest first.
func (s *MemoryStore) GetReminderData(deviceID string, limit int) []core.Reminder {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []core.Reminder
	for _, r := range s.reminder {
		if deviceID == "" || r.DeviceID == deviceID {
			out = append(out, r)
		}
	}
	sortNewestFirst(out, func(r core.Reminder) string { return r.Timestamp })
	return truncate(out, limit)
}

// GetPendingReminders returns unsent reminders ordered by scheduled time.
func (s *MemoryStore) GetPendingReminders() []core.Reminder {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []core.Reminder
	for _, r := range s.reminder {
		if !r.ReminderSent {
			out = append(out, r)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return timeOfDay(out[i].ScheduledTime).Before(timeOfDay(out[j].ScheduledTime))
	})
	return out
}

// GetReminderStats aggregates reminder compliance counts.
func (s *MemoryStore) GetReminderStats() core.ReminderStats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := core.ReminderStats{
		Total:  len(s.reminder),
		ByType: make(map[string]int),
	}
	for _, r := range s.reminder {
		if r.ReminderSent {
			stats.Sent++
		}
		if r.Acknowledged {
			stats.Acknowledged++
		}
		stats.ByType[string(r.ReminderType)]++
	}
	stats.SentPercentage = percentage(stats.Sent, stats.Total)
	stats.AcknowledgedPercentage = percentage(stats.Acknowledged, stats.Total)
	return stats
}

// AddReminder appends a reminder. No uniqueness check is performed.
func (s *MemoryStore) AddReminder(r core.Reminder) error {
	normalizeReminder(&r)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.reminder = append(s.reminder, r)
	return nil
}

// UpdateReminderStatus mutates the first reminder matching (deviceID,
// timestamp) exactly. Returns false, mutating nothing, when absent.
func (s *MemoryStore) UpdateReminderStatus(deviceID, timestamp string, sent, acknowledged bool, feedback string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.reminder {
		if s.reminder[i].DeviceID == deviceID && s.reminder[i].Timestamp == timestamp {
			s.reminder[i].ReminderSent = sent
			s.reminder[i].Acknowledged = acknowledged
			if feedback != "" {
				s.reminder[i].Feedback = feedback
			}
			normalizeReminder(&s.reminder[i])
			return true
		}
	}
	return false
}

// GetBehavioralPatterns returns patterns filtered by device, ordered by
// pattern type then start time.
func (s *MemoryStore) GetBehavioralPatterns(deviceID string) []core.BehavioralPattern {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []core.BehavioralPattern
	for _, p := range s.patterns {
		if deviceID == "" || p.DeviceID == deviceID {
			out = append(out, p)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].DeviceID != out[j].DeviceID {
			return out[i].DeviceID < out[j].DeviceID
		}
		if out[i].PatternType != out[j].PatternType {
			return out[i].PatternType < out[j].PatternType
		}
		return out[i].StartTime < out[j].StartTime
	})
	return out
}

// UpdateBehavioralPattern upserts keyed on (device, patternType, startTime).
func (s *MemoryStore) UpdateBehavioralPattern(p core.BehavioralPattern) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.patterns {
		if s.patterns[i].DeviceID == p.DeviceID &&
			s.patterns[i].PatternType == p.PatternType &&
			s.patterns[i].StartTime == p.StartTime {
			s.patterns[i] = p
			return nil
		}
	}
	s.patterns = append(s.patterns, p)
	return nil
}

// GetGaitData returns samples filtered by device, newest first.
func (s *MemoryStore) GetGaitData(deviceID string, limit int) []core.GaitSample {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []core.GaitSample
	for _, g := range s.gait {
		if deviceID == "" || g.DeviceID == deviceID {
			out = append(out, g)
		}
	}
	sortNewestFirst(out, func(g core.GaitSample) string { return g.Timestamp })
	return truncate(out, limit)
}

// AddGaitSample appends a gait sample.
func (s *MemoryStore) AddGaitSample(g core.GaitSample) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gait = append(s.gait, g)
	return nil
}

// GetFallRiskTrend projects a device's gait samples to (timestamp, riskScore)
// pairs in ascending timestamp order.
func (s *MemoryStore) GetFallRiskTrend(deviceID string) []core.RiskPoint {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []core.RiskPoint
	for _, g := range s.gait {
		if g.DeviceID == deviceID {
			out = append(out, core.RiskPoint{Timestamp: g.Timestamp, RiskScore: g.RiskScore})
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return ParseTimestamp(out[i].Timestamp).Before(ParseTimestamp(out[j].Timestamp))
	})
	return out
}

// Close is a no-op for the in-memory store.
func (s *MemoryStore) Close() error {
	return nil
}

// sortNewestFirst sorts records descending by their timestamp field.
func sortNewestFirst[T any](recs []T, ts func(T) string) {
	sort.SliceStable(recs, func(i, j int) bool {
		return ParseTimestamp(ts(recs[j])).Before(ParseTimestamp(ts(recs[i])))
	})
}

func truncate[T any](recs []T, limit int) []T {
	if limit > 0 && len(recs) > limit {
		return recs[:limit]
	}
	return recs
}

// timeOfDay parses a scheduled-time string such as "11:30:00".
func timeOfDay(s string) time.Time {
	for _, layout := range []string{"15:04:05", "15:04", "3:04:05 PM", "3:04 PM"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}

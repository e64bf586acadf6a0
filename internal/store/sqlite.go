package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	_ "modernc.org/sqlite"

	"github.com/eldersense/eldersense/internal/core"
	"github.com/eldersense/eldersense/internal/logging"
)

// SQLStore is the persistent record store. It implements the same contract
// as MemoryStore against a SQLite database.
type SQLStore struct {
	conn     *sql.DB
	path     string
	isMemory bool
}

// OpenSQL opens or creates the SQLite store and applies migrations.
func OpenSQL(path string) (*SQLStore, error) {
	var dsn string
	isMemory := path == ""

	if isMemory {
		dsn = ":memory:?cache=shared"
	} else {
		if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
			return nil, fmt.Errorf("failed to create directory: %w", err)
		}
		dsn = path
	}

	conn, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite doesn't handle concurrent writes well
	conn.SetMaxOpenConns(1)

	if _, err := conn.Exec("PRAGMA journal_mode=WAL"); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to enable WAL: %w", err)
	}

	s := &SQLStore{conn: conn, path: path, isMemory: isMemory}
	if err := s.migrate(); err != nil {
		conn.Close()
		return nil, err
	}

	return s, nil
}

// Seed loads a record set into the database. Used to prime a fresh
// deployment with the sample data.
func (s *SQLStore) Seed(rec Records) error {
	for _, r := range rec.Health {
		if err := s.insertHealth(r); err != nil {
			return err
		}
	}
	for _, r := range rec.Safety {
		if err := s.insertSafety(r); err != nil {
			return err
		}
	}
	for _, r := range rec.Reminder {
		if err := s.AddReminder(r); err != nil {
			return err
		}
	}
	for _, p := range rec.Patterns {
		if err := s.UpdateBehavioralPattern(p); err != nil {
			return err
		}
	}
	for _, g := range rec.Gait {
		if err := s.AddGaitSample(g); err != nil {
			return err
		}
	}
	return nil
}

func (s *SQLStore) insertHealth(r core.HealthReading) error {
	_, err := s.conn.Exec(`
		INSERT INTO health_data (
		    device_id, timestamp, heart_rate, heart_rate_alert,
		    blood_pressure, blood_pressure_alert, glucose_levels,
		    glucose_levels_alert, oxygen_saturation, oxygen_saturation_alert,
		    alert_triggered, caregiver_notified
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, r.DeviceID, r.Timestamp, r.HeartRate, r.HeartRateAlert,
		r.BloodPressure, r.BloodPressureAlert, r.GlucoseLevels,
		r.GlucoseLevelsAlert, r.OxygenSaturation, r.OxygenSaturationAlert,
		r.AlertTriggered, r.CaregiverNotified)
	return err
}

func (s *SQLStore) insertSafety(r core.SafetyReading) error {
	_, err := s.conn.Exec(`
		INSERT INTO safety_data (
		    device_id, timestamp, movement_activity, fall_detected,
		    impact_force_level, post_fall_inactivity_duration, location,
		    alert_triggered, caregiver_notified
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, r.DeviceID, r.Timestamp, r.MovementActivity, r.FallDetected,
		r.ImpactForceLevel, r.PostFallInactivityDuration, r.Location,
		r.AlertTriggered, r.CaregiverNotified)
	return err
}

// GetHealthData returns readings filtered by device, newest first.
func (s *SQLStore) GetHealthData(deviceID string, limit int) []core.HealthReading {
	rows, err := s.queryFiltered(`
		SELECT device_id, timestamp, heart_rate, heart_rate_alert,
		       blood_pressure, blood_pressure_alert, glucose_levels,
		       glucose_levels_alert, oxygen_saturation, oxygen_saturation_alert,
		       alert_triggered, caregiver_notified
		FROM health_data`, deviceID)
	if err != nil {
		logging.Error("health query failed: %v", err)
		return nil
	}
	defer rows.Close()
	return truncate(sortedHealth(scanHealth(rows)), limit)
}

// GetHealthAlerts returns readings with a triggered alert, newest first.
func (s *SQLStore) GetHealthAlerts(limit int) []core.HealthReading {
	rows, err := s.conn.Query(`
		SELECT device_id, timestamp, heart_rate, heart_rate_alert,
		       blood_pressure, blood_pressure_alert, glucose_levels,
		       glucose_levels_alert, oxygen_saturation, oxygen_saturation_alert,
		       alert_triggered, caregiver_notified
		FROM health_data WHERE alert_triggered = 1`)
	if err != nil {
		logging.Error("health alerts query failed: %v", err)
		return nil
	}
	defer rows.Close()
	return truncate(sortedHealth(scanHealth(rows)), limit)
}

// GetSafetyData returns readings filtered by device, newest first.
func (s *SQLStore) GetSafetyData(deviceID string, limit int) []core.SafetyReading {
	rows, err := s.queryFiltered(`
		SELECT device_id, timestamp, movement_activity, fall_detected,
		       impact_force_level, post_fall_inactivity_duration, location,
		       alert_triggered, caregiver_notified
		FROM safety_data`, deviceID)
	if err != nil {
		logging.Error("safety query failed: %v", err)
		return nil
	}
	defer rows.Close()
	return truncate(sortedSafety(scanSafety(rows)), limit)
}

// GetFallEvents returns readings where a fall was detected, newest first.
func (s *SQLStore) GetFallEvents(limit int) []core.SafetyReading {
	rows, err := s.conn.Query(`
		SELECT device_id, timestamp, movement_activity, fall_detected,
		       impact_force_level, post_fall_inactivity_duration, location,
		       alert_triggered, caregiver_notified
		FROM safety_data WHERE fall_detected = 1`)
	if err != nil {
		logging.Error("fall events query failed: %v", err)
		return nil
	}
	defer rows.Close()
	return truncate(sortedSafety(scanSafety(rows)), limit)
}

// GetLocationActivity summarizes activity for each fixed room.
func (s *SQLStore) GetLocationActivity() map[string]core.LocationActivity {
	result := make(map[string]core.LocationActivity, len(Rooms))
	for _, room := range Rooms {
		readings := s.roomReadings(room)
		activity := core.LocationActivity{Count: len(readings), LastActivity: NoData}
		if len(readings) > 0 {
			activity.LastActivity = readings[0].Timestamp
		}
		result[room] = activity
	}
	return result
}

func (s *SQLStore) roomReadings(room string) []core.SafetyReading {
	rows, err := s.conn.Query(`
		SELECT device_id, timestamp, movement_activity, fall_detected,
		       impact_force_level, post_fall_inactivity_duration, location,
		       alert_triggered, caregiver_notified
		FROM safety_data WHERE location = ?`, room)
	if err != nil {
		logging.Error("location query failed: %v", err)
		return nil
	}
	defer rows.Close()
	return sortedSafety(scanSafety(rows))
}

// GetReminderData returns reminders filtered by device, newest first.
func (s *SQLStore) GetReminderData(deviceID string, limit int) []core.Reminder {
	rows, err := s.queryFiltered(`
		SELECT device_id, timestamp, reminder_type, scheduled_time,
		       reminder_sent, acknowledged, title, feedback, contextual_trigger
		FROM reminder_data`, deviceID)
	if err != nil {
		logging.Error("reminder query failed: %v", err)
		return nil
	}
	defer rows.Close()
	return truncate(scanReminders(rows), limit)
}

// GetPendingReminders returns unsent reminders ordered by scheduled time.
func (s *SQLStore) GetPendingReminders() []core.Reminder {
	rows, err := s.conn.Query(`
		SELECT device_id, timestamp, reminder_type, scheduled_time,
		       reminder_sent, acknowledged, title, feedback, contextual_trigger
		FROM reminder_data WHERE reminder_sent = 0`)
	if err != nil {
		logging.Error("pending reminders query failed: %v", err)
		return nil
	}
	defer rows.Close()

	out := scanReminders(rows)
	sort.SliceStable(out, func(i, j int) bool {
		return timeOfDay(out[i].ScheduledTime).Before(timeOfDay(out[j].ScheduledTime))
	})
	return out
}

// GetReminderStats aggregates reminder compliance counts.
func (s *SQLStore) GetReminderStats() core.ReminderStats {
	stats := core.ReminderStats{ByType: make(map[string]int)}

	s.conn.QueryRow(`SELECT COUNT(*) FROM reminder_data`).Scan(&stats.Total)
	s.conn.QueryRow(`SELECT COUNT(*) FROM reminder_data WHERE reminder_sent = 1`).Scan(&stats.Sent)
	s.conn.QueryRow(`SELECT COUNT(*) FROM reminder_data WHERE acknowledged = 1`).Scan(&stats.Acknowledged)

	rows, err := s.conn.Query(`SELECT reminder_type, COUNT(*) FROM reminder_data GROUP BY reminder_type`)
	if err == nil {
		defer rows.Close()
		for rows.Next() {
			var typ string
			var count int
			if err := rows.Scan(&typ, &count); err == nil {
				stats.ByType[typ] = count
			}
		}
	}

	stats.SentPercentage = percentage(stats.Sent, stats.Total)
	stats.AcknowledgedPercentage = percentage(stats.Acknowledged, stats.Total)
	return stats
}

// AddReminder appends a reminder.
func (s *SQLStore) AddReminder(r core.Reminder) error {
	normalizeReminder(&r)

	_, err := s.conn.Exec(`
		INSERT INTO reminder_data (
		    device_id, timestamp, reminder_type, scheduled_time,
		    reminder_sent, acknowledged, title, feedback, contextual_trigger
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, r.DeviceID, r.Timestamp, string(r.ReminderType), r.ScheduledTime,
		r.ReminderSent, r.Acknowledged, r.Title, r.Feedback, r.ContextualTrigger)
	return err
}

// UpdateReminderStatus mutates the reminder matching (deviceID, timestamp).
// Returns false when no row matched.
func (s *SQLStore) UpdateReminderStatus(deviceID, timestamp string, sent, acknowledged bool, feedback string) bool {
	fake := core.Reminder{ReminderSent: sent, Acknowledged: acknowledged}
	normalizeReminder(&fake)
	sent, acknowledged = fake.ReminderSent, fake.Acknowledged

	var res sql.Result
	var err error
	if feedback != "" {
		res, err = s.conn.Exec(`
			UPDATE reminder_data SET reminder_sent = ?, acknowledged = ?, feedback = ?
			WHERE device_id = ? AND timestamp = ?`,
			sent, acknowledged, feedback, deviceID, timestamp)
	} else {
		res, err = s.conn.Exec(`
			UPDATE reminder_data SET reminder_sent = ?, acknowledged = ?
			WHERE device_id = ? AND timestamp = ?`,
			sent, acknowledged, deviceID, timestamp)
	}
	if err != nil {
		logging.Error("reminder update failed: %v", err)
		return false
	}

	n, _ := res.RowsAffected()
	return n > 0
}

// GetBehavioralPatterns returns patterns filtered by device, ordered by
// pattern type then start time.
func (s *SQLStore) GetBehavioralPatterns(deviceID string) []core.BehavioralPattern {
	query := `
		SELECT device_id, pattern_type, start_time, end_time, days_of_week,
		       location, confidence, last_updated
		FROM behavioral_patterns`
	args := []interface{}{}
	if deviceID != "" {
		query += ` WHERE device_id = ?`
		args = append(args, deviceID)
	}
	query += ` ORDER BY device_id, pattern_type, start_time`

	rows, err := s.conn.Query(query, args...)
	if err != nil {
		logging.Error("patterns query failed: %v", err)
		return nil
	}
	defer rows.Close()

	var out []core.BehavioralPattern
	for rows.Next() {
		var p core.BehavioralPattern
		var days string
		if err := rows.Scan(&p.DeviceID, &p.PatternType, &p.StartTime, &p.EndTime,
			&days, &p.Location, &p.Confidence, &p.LastUpdated); err != nil {
			continue
		}
		if days != "" {
			p.DaysOfWeek = strings.Split(days, ",")
		}
		out = append(out, p)
	}
	return out
}

// UpdateBehavioralPattern upserts keyed on (device, patternType, startTime).
func (s *SQLStore) UpdateBehavioralPattern(p core.BehavioralPattern) error {
	_, err := s.conn.Exec(`
		INSERT INTO behavioral_patterns (
		    device_id, pattern_type, start_time, end_time, days_of_week,
		    location, confidence, last_updated
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(device_id, pattern_type, start_time) DO UPDATE SET
		    end_time = excluded.end_time,
		    days_of_week = excluded.days_of_week,
		    location = excluded.location,
		    confidence = excluded.confidence,
		    last_updated = excluded.last_updated
	`, p.DeviceID, p.PatternType, p.StartTime, p.EndTime,
		strings.Join(p.DaysOfWeek, ","), p.Location, p.Confidence, p.LastUpdated)
	return err
}

// GetGaitData returns samples filtered by device, newest first.
func (s *SQLStore) GetGaitData(deviceID string, limit int) []core.GaitSample {
	rows, err := s.queryFiltered(`
		SELECT device_id, timestamp, step_length, step_time, step_variability,
		       walking_speed, turn_time, risk_score
		FROM gait_data`, deviceID)
	if err != nil {
		logging.Error("gait query failed: %v", err)
		return nil
	}
	defer rows.Close()

	var out []core.GaitSample
	for rows.Next() {
		var g core.GaitSample
		if err := rows.Scan(&g.DeviceID, &g.Timestamp, &g.StepLength, &g.StepTime,
			&g.StepVariability, &g.WalkingSpeed, &g.TurnTime, &g.RiskScore); err != nil {
			continue
		}
		out = append(out, g)
	}
	sortNewestFirst(out, func(g core.GaitSample) string { return g.Timestamp })
	return truncate(out, limit)
}

// AddGaitSample appends a gait sample.
func (s *SQLStore) AddGaitSample(g core.GaitSample) error {
	_, err := s.conn.Exec(`
		INSERT INTO gait_data (
		    device_id, timestamp, step_length, step_time, step_variability,
		    walking_speed, turn_time, risk_score
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, g.DeviceID, g.Timestamp, g.StepLength, g.StepTime,
		g.StepVariability, g.WalkingSpeed, g.TurnTime, g.RiskScore)
	return err
}

// GetFallRiskTrend projects a device's gait samples in ascending order.
func (s *SQLStore) GetFallRiskTrend(deviceID string) []core.RiskPoint {
	rows, err := s.conn.Query(`
		SELECT timestamp, risk_score FROM gait_data WHERE device_id = ?`, deviceID)
	if err != nil {
		logging.Error("risk trend query failed: %v", err)
		return nil
	}
	defer rows.Close()

	var out []core.RiskPoint
	for rows.Next() {
		var p core.RiskPoint
		if err := rows.Scan(&p.Timestamp, &p.RiskScore); err != nil {
			continue
		}
		out = append(out, p)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return ParseTimestamp(out[i].Timestamp).Before(ParseTimestamp(out[j].Timestamp))
	})
	return out
}

// Close closes the database connection.
func (s *SQLStore) Close() error {
	return s.conn.Close()
}

// Conn returns the underlying sql.DB for direct access.
func (s *SQLStore) Conn() *sql.DB {
	return s.conn
}

// queryFiltered runs a base SELECT with an optional device filter. Sorting
// and limiting happen in Go since record timestamps don't sort lexically.
func (s *SQLStore) queryFiltered(base, deviceID string) (*sql.Rows, error) {
	if deviceID != "" {
		return s.conn.Query(base+` WHERE device_id = ?`, deviceID)
	}
	return s.conn.Query(base)
}

func scanHealth(rows *sql.Rows) []core.HealthReading {
	var out []core.HealthReading
	for rows.Next() {
		var r core.HealthReading
		if err := rows.Scan(&r.DeviceID, &r.Timestamp, &r.HeartRate, &r.HeartRateAlert,
			&r.BloodPressure, &r.BloodPressureAlert, &r.GlucoseLevels,
			&r.GlucoseLevelsAlert, &r.OxygenSaturation, &r.OxygenSaturationAlert,
			&r.AlertTriggered, &r.CaregiverNotified); err != nil {
			continue
		}
		out = append(out, r)
	}
	return out
}

func scanSafety(rows *sql.Rows) []core.SafetyReading {
	var out []core.SafetyReading
	for rows.Next() {
		var r core.SafetyReading
		if err := rows.Scan(&r.DeviceID, &r.Timestamp, &r.MovementActivity, &r.FallDetected,
			&r.ImpactForceLevel, &r.PostFallInactivityDuration, &r.Location,
			&r.AlertTriggered, &r.CaregiverNotified); err != nil {
			continue
		}
		out = append(out, r)
	}
	return out
}

func scanReminders(rows *sql.Rows) []core.Reminder {
	var out []core.Reminder
	for rows.Next() {
		var r core.Reminder
		var typ string
		var title, feedback, trigger sql.NullString
		if err := rows.Scan(&r.DeviceID, &r.Timestamp, &typ, &r.ScheduledTime,
			&r.ReminderSent, &r.Acknowledged, &title, &feedback, &trigger); err != nil {
			continue
		}
		r.ReminderType = core.ReminderType(typ)
		r.Title = title.String
		r.Feedback = feedback.String
		r.ContextualTrigger = trigger.String
		out = append(out, r)
	}
	sortNewestFirst(out, func(r core.Reminder) string { return r.Timestamp })
	return out
}

func sortedHealth(recs []core.HealthReading) []core.HealthReading {
	sortNewestFirst(recs, func(r core.HealthReading) string { return r.Timestamp })
	return recs
}

func sortedSafety(recs []core.SafetyReading) []core.SafetyReading {
	sortNewestFirst(recs, func(r core.SafetyReading) string { return r.Timestamp })
	return recs
}

// Package notify delivers caregiver alerts raised by the monitoring agents.
package notify

import (
	"time"
)

// AlertType represents the kind of caregiver alert
type AlertType string

const (
	AlertHealthAnomaly  AlertType = "health_anomaly"
	AlertFallDetected   AlertType = "fall_detected"
	AlertInactivity     AlertType = "inactivity"
	AlertEmergency      AlertType = "emergency"
	AlertReminderDue    AlertType = "reminder_due"
	AlertReminderMissed AlertType = "reminder_missed"
	AlertSystem         AlertType = "system"
)

// Urgency levels for alerts
const (
	UrgencyLow      = 1 // Can wait
	UrgencyMedium   = 2 // Attention soon
	UrgencyHigh     = 3 // Needs attention now
	UrgencyCritical = 4 // Immediate action required
)

// Alert represents one caregiver notification
type Alert struct {
	ID              string     `json:"id"`
	Type            AlertType  `json:"type"`
	DeviceID        string     `json:"deviceId,omitempty"`
	Title           string     `json:"title"`
	Body            string     `json:"body,omitempty"`
	Urgency         int        `json:"urgency"` // 1-4
	Acknowledged    bool       `json:"acknowledged"`
	CreatedAt       time.Time  `json:"createdAt"`
	AcknowledgedAt  *time.Time `json:"acknowledgedAt,omitempty"`
	RecommendedStep string     `json:"recommendedStep,omitempty"`
}

// CreateAlertRequest for raising new alerts
type CreateAlertRequest struct {
	Type            AlertType `json:"type"`
	DeviceID        string    `json:"deviceId,omitempty"`
	Title           string    `json:"title"`
	Body            string    `json:"body,omitempty"`
	Urgency         int       `json:"urgency,omitempty"`
	RecommendedStep string    `json:"recommendedStep,omitempty"`
}

// AlertStats represents alert statistics
type AlertStats struct {
	Total          int            `json:"total"`
	Unacknowledged int            `json:"unacknowledged"`
	ByType         map[string]int `json:"byType"`
	ByUrgency      map[int]int    `json:"byUrgency"`
}

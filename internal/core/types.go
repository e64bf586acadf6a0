// Package core defines the fundamental types and errors for ElderSense.
package core

// ReminderType classifies what a reminder is for.
type ReminderType string

const (
	ReminderMedication  ReminderType = "Medication"
	ReminderAppointment ReminderType = "Appointment"
	ReminderExercise    ReminderType = "Exercise"
	ReminderHydration   ReminderType = "Hydration"
	ReminderOther       ReminderType = "Other"
)

// ReminderPriority is the urgency of a reminder.
type ReminderPriority string

const (
	PriorityLow    ReminderPriority = "low"
	PriorityMedium ReminderPriority = "medium"
	PriorityHigh   ReminderPriority = "high"
)

// Severity grades a health anomaly.
type Severity string

const (
	SeverityNormal   Severity = "normal"
	SeverityMild     Severity = "mild"
	SeverityModerate Severity = "moderate"
	SeveritySevere   Severity = "severe"
)

// RiskLevel grades a safety event.
type RiskLevel string

const (
	RiskLow      RiskLevel = "low"
	RiskMedium   RiskLevel = "medium"
	RiskHigh     RiskLevel = "high"
	RiskCritical RiskLevel = "critical"
)

// SafetyEventType classifies a safety event.
type SafetyEventType string

const (
	SafetyEventMovement   SafetyEventType = "movement"
	SafetyEventFall       SafetyEventType = "fall"
	SafetyEventInactivity SafetyEventType = "inactivity"
	SafetyEventUnusual    SafetyEventType = "unusual_behavior"
	SafetyEventOther      SafetyEventType = "other"
)

// ResponseIntent is the interpreted intent of a user's reply to a reminder.
type ResponseIntent string

const (
	IntentAccept   ResponseIntent = "accept"
	IntentDelay    ResponseIntent = "delay"
	IntentDecline  ResponseIntent = "decline"
	IntentQuestion ResponseIntent = "question"
	IntentOther    ResponseIntent = "other"
)

// RoomStatus is derived from how recently activity was seen in a room.
type RoomStatus string

const (
	RoomNormal  RoomStatus = "normal"
	RoomWarning RoomStatus = "warning"
	RoomAlert   RoomStatus = "alert"
)

// HealthReading is a single set of vital signs from a wearable device.
type HealthReading struct {
	DeviceID              string `json:"deviceId"`
	Timestamp             string `json:"timestamp"`
	HeartRate             int    `json:"heartRate"`
	HeartRateAlert        bool   `json:"heartRateAlert"`
	BloodPressure         string `json:"bloodPressure"` // "systolic/diastolic mmHg"
	BloodPressureAlert    bool   `json:"bloodPressureAlert"`
	GlucoseLevels         int    `json:"glucoseLevels"`
	GlucoseLevelsAlert    bool   `json:"glucoseLevelsAlert"`
	OxygenSaturation      int    `json:"oxygenSaturation"`
	OxygenSaturationAlert bool   `json:"oxygenSaturationAlert"`
	AlertTriggered        bool   `json:"alertTriggered"`
	CaregiverNotified     bool   `json:"caregiverNotified"`
}

// SafetyReading is a single movement/fall observation from a home sensor.
type SafetyReading struct {
	DeviceID                   string `json:"deviceId"`
	Timestamp                  string `json:"timestamp"`
	MovementActivity           string `json:"movementActivity"` // Walking, Sitting, Lying, No Movement
	FallDetected               bool   `json:"fallDetected"`
	ImpactForceLevel           string `json:"impactForceLevel"` // "-" when none
	PostFallInactivityDuration int    `json:"postFallInactivityDuration"` // seconds
	Location                   string `json:"location"`
	AlertTriggered             bool   `json:"alertTriggered"`
	CaregiverNotified          bool   `json:"caregiverNotified"`
}

// Reminder is a scheduled prompt for the resident.
type Reminder struct {
	DeviceID          string       `json:"deviceId"`
	Timestamp         string       `json:"timestamp"` // creation time
	ReminderType      ReminderType `json:"reminderType"`
	ScheduledTime     string       `json:"scheduledTime"`
	ReminderSent      bool         `json:"reminderSent"`
	Acknowledged      bool         `json:"acknowledged"`
	Title             string       `json:"title,omitempty"`
	Feedback          string       `json:"feedback,omitempty"`
	ContextualTrigger string       `json:"contextualTrigger,omitempty"` // e.g. "after breakfast"
}

// BehavioralPattern is a recurring routine learned for a device.
// Keyed by (DeviceID, PatternType, StartTime).
type BehavioralPattern struct {
	DeviceID    string   `json:"deviceId"`
	PatternType string   `json:"patternType"` // sleep, meal, bathroom, activity, nap
	StartTime   string   `json:"startTime"`
	EndTime     string   `json:"endTime"`
	DaysOfWeek  []string `json:"daysOfWeek"`
	Location    string   `json:"location"`
	Confidence  float64  `json:"confidence"` // 0-1
	LastUpdated string   `json:"lastUpdated"`
}

// GaitSample is one gait-analysis measurement.
type GaitSample struct {
	DeviceID        string  `json:"deviceId"`
	Timestamp       string  `json:"timestamp"`
	StepLength      float64 `json:"stepLength"`
	StepTime        float64 `json:"stepTime"`
	StepVariability float64 `json:"stepVariability"`
	WalkingSpeed    float64 `json:"walkingSpeed"`
	TurnTime        float64 `json:"turnTime"`
	RiskScore       int     `json:"riskScore"` // 0-100
}

// RiskPoint is one point on a fall-risk trend.
type RiskPoint struct {
	Timestamp string `json:"timestamp"`
	RiskScore int    `json:"riskScore"`
}

// LocationActivity summarizes sensor activity for one room.
type LocationActivity struct {
	Count        int    `json:"count"`
	LastActivity string `json:"lastActivity"` // timestamp or "No data"
}

// ReminderStats aggregates reminder compliance.
type ReminderStats struct {
	Total                  int            `json:"total"`
	Sent                   int            `json:"sent"`
	Acknowledged           int            `json:"acknowledged"`
	SentPercentage         int            `json:"sentPercentage"`
	AcknowledgedPercentage int            `json:"acknowledgedPercentage"`
	ByType                 map[string]int `json:"byType"`
}

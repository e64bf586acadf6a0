package store

import "github.com/eldersense/eldersense/internal/core"

// SeedRecords returns the sample record set used by the seed backend. The
// data mirrors a month of exports from the pilot deployment's devices.
func SeedRecords() Records {
	return Records{
		Health: []core.HealthReading{
			{DeviceID: "D1000", Timestamp: "1/22/2025 20:42", HeartRate: 116, HeartRateAlert: true, BloodPressure: "136/79 mmHg", BloodPressureAlert: true, GlucoseLevels: 141, GlucoseLevelsAlert: true, OxygenSaturation: 98, OxygenSaturationAlert: false, AlertTriggered: true, CaregiverNotified: true},
			{DeviceID: "D1001", Timestamp: "1/16/2025 12:22", HeartRate: 119, HeartRateAlert: true, BloodPressure: "105/77 mmHg", BloodPressureAlert: false, GlucoseLevels: 146, GlucoseLevelsAlert: true, OxygenSaturation: 93, OxygenSaturationAlert: false, AlertTriggered: true, CaregiverNotified: true},
			{DeviceID: "D1002", Timestamp: "1/10/2025 9:26", HeartRate: 97, HeartRateAlert: false, BloodPressure: "120/87 mmHg", BloodPressureAlert: true, GlucoseLevels: 133, GlucoseLevelsAlert: false, OxygenSaturation: 97, OxygenSaturationAlert: false, AlertTriggered: true, CaregiverNotified: true},
			{DeviceID: "D1003", Timestamp: "1/10/2025 9:53", HeartRate: 113, HeartRateAlert: true, BloodPressure: "138/65 mmHg", BloodPressureAlert: true, GlucoseLevels: 82, GlucoseLevelsAlert: false, OxygenSaturation: 98, OxygenSaturationAlert: false, AlertTriggered: true, CaregiverNotified: true},
			{DeviceID: "D1004", Timestamp: "1/3/2025 15:50", HeartRate: 88, HeartRateAlert: false, BloodPressure: "108/69 mmHg", BloodPressureAlert: false, GlucoseLevels: 146, GlucoseLevelsAlert: true, OxygenSaturation: 97, OxygenSaturationAlert: false, AlertTriggered: true, CaregiverNotified: true},
			{DeviceID: "D1005", Timestamp: "1/5/2025 8:29", HeartRate: 119, HeartRateAlert: true, BloodPressure: "114/65 mmHg", BloodPressureAlert: false, GlucoseLevels: 133, GlucoseLevelsAlert: false, OxygenSaturation: 91, OxygenSaturationAlert: true, AlertTriggered: true, CaregiverNotified: true},
			{DeviceID: "D1006", Timestamp: "1/14/2025 11:08", HeartRate: 72, HeartRateAlert: false, BloodPressure: "118/76 mmHg", BloodPressureAlert: false, GlucoseLevels: 104, GlucoseLevelsAlert: false, OxygenSaturation: 98, OxygenSaturationAlert: false, AlertTriggered: false, CaregiverNotified: false},
			{DeviceID: "D1007", Timestamp: "1/21/2025 7:45", HeartRate: 68, HeartRateAlert: false, BloodPressure: "122/80 mmHg", BloodPressureAlert: false, GlucoseLevels: 98, GlucoseLevelsAlert: false, OxygenSaturation: 97, OxygenSaturationAlert: false, AlertTriggered: false, CaregiverNotified: false},
		},
		Safety: []core.SafetyReading{
			{DeviceID: "D1000", Timestamp: "1/7/2025 16:04", MovementActivity: "No Movement", FallDetected: false, ImpactForceLevel: "-", PostFallInactivityDuration: 0, Location: "Kitchen", AlertTriggered: false, CaregiverNotified: false},
			{DeviceID: "D1001", Timestamp: "1/20/2025 15:45", MovementActivity: "Lying", FallDetected: false, ImpactForceLevel: "-", PostFallInactivityDuration: 0, Location: "Living Room", AlertTriggered: false, CaregiverNotified: false},
			{DeviceID: "D1002", Timestamp: "1/2/2025 2:42", MovementActivity: "No Movement", FallDetected: false, ImpactForceLevel: "-", PostFallInactivityDuration: 0, Location: "Bedroom", AlertTriggered: false, CaregiverNotified: false},
			{DeviceID: "D1003", Timestamp: "1/1/2025 22:36", MovementActivity: "Lying", FallDetected: false, ImpactForceLevel: "-", PostFallInactivityDuration: 0, Location: "Kitchen", AlertTriggered: false, CaregiverNotified: false},
			{DeviceID: "D1004", Timestamp: "1/3/2025 16:30", MovementActivity: "No Movement", FallDetected: false, ImpactForceLevel: "-", PostFallInactivityDuration: 0, Location: "Bedroom", AlertTriggered: false, CaregiverNotified: false},
			{DeviceID: "D1005", Timestamp: "1/19/2025 12:13", MovementActivity: "Sitting", FallDetected: false, ImpactForceLevel: "-", PostFallInactivityDuration: 0, Location: "Bedroom", AlertTriggered: false, CaregiverNotified: false},
			{DeviceID: "D1006", Timestamp: "1/4/2025 10:58", MovementActivity: "Lying", FallDetected: false, ImpactForceLevel: "-", PostFallInactivityDuration: 0, Location: "Living Room", AlertTriggered: false, CaregiverNotified: false},
			{DeviceID: "D1010", Timestamp: "1/11/2025 8:22", MovementActivity: "Walking", FallDetected: true, ImpactForceLevel: "Low", PostFallInactivityDuration: 35, Location: "Kitchen", AlertTriggered: true, CaregiverNotified: true},
			{DeviceID: "D1022", Timestamp: "1/19/2025 19:46", MovementActivity: "No Movement", FallDetected: true, ImpactForceLevel: "Medium", PostFallInactivityDuration: 463, Location: "Bathroom", AlertTriggered: true, CaregiverNotified: true},
		},
		Reminder: []core.Reminder{
			{DeviceID: "D1000", Timestamp: "1/2/2025 11:25", ReminderType: core.ReminderExercise, ScheduledTime: "13:00:00", ReminderSent: false, Acknowledged: false, Title: "Morning Walk", ContextualTrigger: "after breakfast"},
			{DeviceID: "D1001", Timestamp: "1/3/2025 2:52", ReminderType: core.ReminderHydration, ScheduledTime: "13:00:00", ReminderSent: true, Acknowledged: true, Title: "Drink Water", ContextualTrigger: "after lunch"},
			{DeviceID: "D1002", Timestamp: "1/8/2025 13:50", ReminderType: core.ReminderAppointment, ScheduledTime: "13:30:00", ReminderSent: false, Acknowledged: false, Title: "Doctor Appointment", ContextualTrigger: "specific time"},
			{DeviceID: "D1003", Timestamp: "1/5/2025 5:16", ReminderType: core.ReminderExercise, ScheduledTime: "8:00:00", ReminderSent: false, Acknowledged: false, Title: "Stretching Routine", ContextualTrigger: "after waking up"},
			{DeviceID: "D1004", Timestamp: "1/1/2025 4:20", ReminderType: core.ReminderMedication, ScheduledTime: "11:30:00", ReminderSent: false, Acknowledged: false, Title: "Blood Pressure Medication", ContextualTrigger: "before lunch"},
			{DeviceID: "D1005", Timestamp: "1/20/2025 10:39", ReminderType: core.ReminderHydration, ScheduledTime: "14:30:00", ReminderSent: false, Acknowledged: false, Title: "Drink Water", ContextualTrigger: "afternoon"},
			{DeviceID: "D1006", Timestamp: "1/25/2025 10:05", ReminderType: core.ReminderMedication, ScheduledTime: "15:30:00", ReminderSent: true, Acknowledged: false, Title: "Heart Medication", ContextualTrigger: "mid afternoon"},
		},
		Patterns: []core.BehavioralPattern{
			{DeviceID: "D1000", PatternType: "sleep", StartTime: "22:00:00", EndTime: "07:00:00", DaysOfWeek: allWeek, Location: "Bedroom", Confidence: 0.92, LastUpdated: "1/30/2025"},
			{DeviceID: "D1000", PatternType: "meal", StartTime: "08:00:00", EndTime: "08:30:00", DaysOfWeek: allWeek, Location: "Kitchen", Confidence: 0.85, LastUpdated: "1/30/2025"},
			{DeviceID: "D1000", PatternType: "meal", StartTime: "12:30:00", EndTime: "13:15:00", DaysOfWeek: allWeek, Location: "Kitchen", Confidence: 0.78, LastUpdated: "1/30/2025"},
			{DeviceID: "D1000", PatternType: "meal", StartTime: "18:00:00", EndTime: "18:45:00", DaysOfWeek: allWeek, Location: "Kitchen", Confidence: 0.88, LastUpdated: "1/30/2025"},
			{DeviceID: "D1000", PatternType: "bathroom", StartTime: "07:15:00", EndTime: "07:30:00", DaysOfWeek: allWeek, Location: "Bathroom", Confidence: 0.95, LastUpdated: "1/30/2025"},
			{DeviceID: "D1000", PatternType: "bathroom", StartTime: "13:30:00", EndTime: "13:40:00", DaysOfWeek: allWeek, Location: "Bathroom", Confidence: 0.82, LastUpdated: "1/30/2025"},
			{DeviceID: "D1000", PatternType: "activity", StartTime: "09:30:00", EndTime: "10:30:00", DaysOfWeek: []string{"Monday", "Wednesday", "Friday"}, Location: "Living Room", Confidence: 0.75, LastUpdated: "1/30/2025"},
			{DeviceID: "D1000", PatternType: "nap", StartTime: "14:00:00", EndTime: "15:00:00", DaysOfWeek: []string{"Monday", "Wednesday", "Friday", "Sunday"}, Location: "Bedroom", Confidence: 0.68, LastUpdated: "1/30/2025"},
		},
		Gait: []core.GaitSample{
			{DeviceID: "D1000", Timestamp: "1/2/2025 09:30:00", StepLength: 0.58, StepTime: 0.62, StepVariability: 0.12, WalkingSpeed: 0.94, TurnTime: 2.8, RiskScore: 25},
			{DeviceID: "D1000", Timestamp: "1/5/2025 10:15:00", StepLength: 0.56, StepTime: 0.65, StepVariability: 0.14, WalkingSpeed: 0.86, TurnTime: 3.1, RiskScore: 28},
			{DeviceID: "D1000", Timestamp: "1/9/2025 15:45:00", StepLength: 0.54, StepTime: 0.68, StepVariability: 0.15, WalkingSpeed: 0.79, TurnTime: 3.4, RiskScore: 35},
			{DeviceID: "D1000", Timestamp: "1/12/2025 09:20:00", StepLength: 0.52, StepTime: 0.70, StepVariability: 0.18, WalkingSpeed: 0.74, TurnTime: 3.7, RiskScore: 42},
			{DeviceID: "D1000", Timestamp: "1/16/2025 14:30:00", StepLength: 0.50, StepTime: 0.72, StepVariability: 0.20, WalkingSpeed: 0.69, TurnTime: 4.0, RiskScore: 48},
			{DeviceID: "D1000", Timestamp: "1/20/2025 10:10:00", StepLength: 0.48, StepTime: 0.75, StepVariability: 0.22, WalkingSpeed: 0.64, TurnTime: 4.3, RiskScore: 55},
			{DeviceID: "D1000", Timestamp: "1/24/2025 16:00:00", StepLength: 0.46, StepTime: 0.78, StepVariability: 0.25, WalkingSpeed: 0.59, TurnTime: 4.8, RiskScore: 62},
			{DeviceID: "D1000", Timestamp: "1/28/2025 11:45:00", StepLength: 0.44, StepTime: 0.82, StepVariability: 0.28, WalkingSpeed: 0.54, TurnTime: 5.2, RiskScore: 70},
		},
	}
}

var allWeek = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

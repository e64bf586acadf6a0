package agents

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/eldersense/eldersense/internal/core"
	"github.com/eldersense/eldersense/internal/llm"
	"github.com/eldersense/eldersense/internal/store"
)

// ReminderAgent turns reminder requests into scheduled reminders and reports
// on compliance.
type ReminderAgent struct {
	store    store.Store
	provider llm.Provider
	now      func() time.Time
}

func NewReminderAgent(s store.Store, p llm.Provider) *ReminderAgent {
	return &ReminderAgent{store: s, provider: p, now: time.Now}
}

// ReminderDecision is the structured plan for a reminder request.
type ReminderDecision struct {
	ReminderType     core.ReminderType     `json:"reminderType"`
	Priority         core.ReminderPriority `json:"priority"`
	ScheduledTime    string                `json:"scheduledTime"`
	RequiresFollowUp bool                  `json:"requiresFollowUp"`
}

type ReminderResult struct {
	Status   string           `json:"status"`
	Decision ReminderDecision `json:"decision"`
	Reminder *core.Reminder   `json:"reminder,omitempty"`
	Message  string           `json:"message,omitempty"`
}

// ProcessReminderEvent plans a reminder from the event, stores it, and drafts
// the message shown to the resident.
func (a *ReminderAgent) ProcessReminderEvent(ctx context.Context, event Event) (*ReminderResult, error) {
	prompt := fmt.Sprintf(`You are a reminder management agent for an elderly care system.

Plan a reminder for this request:

Event: %s

Respond with ONLY a JSON object:
{
  "reminderType": "Medication" | "Appointment" | "Exercise" | "Hydration" | "Other",
  "priority": "low" | "medium" | "high",
  "scheduledTime": "HH:MM:SS",
  "requiresFollowUp": boolean
}`, event.JSON())

	response, err := a.provider.Generate(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("reminder planning failed: %w", err)
	}

	var decision ReminderDecision
	if err := decodeDecision(response, &decision); err != nil {
		return nil, err
	}

	reminder := core.Reminder{
		DeviceID:      event.DeviceID(),
		Timestamp:     store.FormatTimestamp(a.now()),
		ReminderType:  decision.ReminderType,
		ScheduledTime: decision.ScheduledTime,
	}
	if err := a.store.AddReminder(reminder); err != nil {
		return nil, fmt.Errorf("failed to store reminder: %w", err)
	}

	result := &ReminderResult{
		Status:   "reminder_created",
		Decision: decision,
		Reminder: &reminder,
	}

	message, err := a.draftMessage(ctx, reminder, decision)
	if err == nil {
		result.Message = message
	}
	return result, nil
}

func (a *ReminderAgent) draftMessage(ctx context.Context, r core.Reminder, d ReminderDecision) (string, error) {
	prompt := fmt.Sprintf(`Write a short, friendly reminder message for an elderly resident.

Reminder type: %s
Scheduled time: %s
Priority: %s

One or two sentences, warm and clear. Plain text only.`,
		r.ReminderType, r.ScheduledTime, d.Priority)

	message, err := a.provider.Generate(ctx, prompt)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(message), nil
}

// PendingReminders lists unsent reminders ordered by scheduled time.
func (a *ReminderAgent) PendingReminders() []core.Reminder {
	return a.store.GetPendingReminders()
}

// Stats returns aggregate reminder compliance numbers.
func (a *ReminderAgent) Stats() core.ReminderStats {
	return a.store.GetReminderStats()
}

// ComplianceReport summarizes adherence for caregivers.
func (a *ReminderAgent) ComplianceReport(ctx context.Context) (string, error) {
	stats := a.store.GetReminderStats()

	prompt := fmt.Sprintf(`You are a reminder management agent for an elderly care system.

Summarize this reminder compliance data for a caregiver. Note which reminder
types are being missed and whether adherence is acceptable.

Stats: %s

Respond in plain text, at most one short paragraph.`, mustJSON(stats))

	report, err := a.provider.Generate(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("compliance report failed: %w", err)
	}
	return report, nil
}

// OptimizeSchedule suggests better reminder times based on the resident's
// behavioral patterns.
func (a *ReminderAgent) OptimizeSchedule(ctx context.Context, deviceID string) (string, error) {
	reminders := a.store.GetReminderData(deviceID, 0)
	patterns := a.store.GetBehavioralPatterns(deviceID)

	prompt := fmt.Sprintf(`You are a reminder management agent for an elderly care system.

Given the resident's reminders and daily routines, suggest schedule changes
that would improve acknowledgment. Anchor suggestions to routine events such
as meals and waking.

Reminders: %s

Routines: %s

Respond in plain text with one suggestion per line.`,
		mustJSON(reminders), mustJSON(patterns))

	plan, err := a.provider.Generate(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("schedule optimization failed: %w", err)
	}
	return plan, nil
}

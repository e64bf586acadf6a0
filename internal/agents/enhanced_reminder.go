package agents

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/eldersense/eldersense/internal/core"
	"github.com/eldersense/eldersense/internal/llm"
	"github.com/eldersense/eldersense/internal/logging"
	"github.com/eldersense/eldersense/internal/store"
)

// EnhancedReminderAgent layers contextual triggers, voice prompts and
// conversational responses on top of basic reminder handling.
type EnhancedReminderAgent struct {
	store    store.Store
	provider llm.Provider
	now      func() time.Time
}

func NewEnhancedReminderAgent(s store.Store, p llm.Provider) *EnhancedReminderAgent {
	return &EnhancedReminderAgent{store: s, provider: p, now: time.Now}
}

// EnhancedReminderDecision extends the basic plan with delivery hints.
type EnhancedReminderDecision struct {
	ReminderDecision
	ContextualTrigger  string `json:"contextualTrigger"`
	VoicePrompt        string `json:"voicePrompt"`
	AdaptiveScheduling bool   `json:"adaptiveScheduling"`
}

type EnhancedReminderResult struct {
	Status   string                   `json:"status"`
	Decision EnhancedReminderDecision `json:"decision"`
	Reminder *core.Reminder           `json:"reminder,omitempty"`
}

// ResponseDecision is the interpreted intent of the resident's reply to a
// reminder.
type ResponseDecision struct {
	Intent          core.ResponseIntent `json:"intent"`
	DelayDuration   int                 `json:"delayDuration"` // minutes
	Questions       []string            `json:"questions"`
	Sentiment       string              `json:"sentiment"`
	SuggestedAction string              `json:"suggestedAction"`
}

type ResponseResult struct {
	Status   string           `json:"status"`
	Response ResponseDecision `json:"response"`
	Answer   string           `json:"answer,omitempty"`
	Reminder *core.Reminder   `json:"reminder,omitempty"`
}

// ProcessReminderEvent plans a reminder with contextual delivery hints,
// anchored to the resident's routines, and stores it.
func (a *EnhancedReminderAgent) ProcessReminderEvent(ctx context.Context, event Event) (*EnhancedReminderResult, error) {
	patterns := a.store.GetBehavioralPatterns(event.DeviceID())

	prompt := fmt.Sprintf(`You are an adaptive reminder agent for an elderly care system.

Plan a reminder for this request, anchoring it to the resident's routines
where possible (for example "after breakfast" instead of a fixed clock time).

Event: %s

Routines: %s

Respond with ONLY a JSON object:
{
  "reminderType": "Medication" | "Appointment" | "Exercise" | "Hydration" | "Other",
  "priority": "low" | "medium" | "high",
  "scheduledTime": "HH:MM:SS",
  "requiresFollowUp": boolean,
  "contextualTrigger": "routine anchor, empty if none",
  "voicePrompt": "short spoken version of the reminder",
  "adaptiveScheduling": boolean
}`, event.JSON(), mustJSON(patterns))

	response, err := a.provider.Generate(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("reminder planning failed: %w", err)
	}

	var decision EnhancedReminderDecision
	if err := decodeDecision(response, &decision); err != nil {
		return nil, err
	}

	reminder := core.Reminder{
		DeviceID:          event.DeviceID(),
		Timestamp:         store.FormatTimestamp(a.now()),
		ReminderType:      decision.ReminderType,
		ScheduledTime:     decision.ScheduledTime,
		ContextualTrigger: decision.ContextualTrigger,
	}
	if title, ok := event["title"].(string); ok {
		reminder.Title = title
	}
	if err := a.store.AddReminder(reminder); err != nil {
		return nil, fmt.Errorf("failed to store reminder: %w", err)
	}

	return &EnhancedReminderResult{
		Status:   "reminder_created",
		Decision: decision,
		Reminder: &reminder,
	}, nil
}

// ContextualReminderDecision is the planned reminder anchored to routines.
type ContextualReminderDecision struct {
	Title             string            `json:"title"`
	ReminderType      core.ReminderType `json:"reminderType"`
	ContextualTrigger string            `json:"contextualTrigger"`
	ScheduledTime     string            `json:"scheduledTime"`
	Reasoning         string            `json:"reasoning"`
	VoicePrompt       string            `json:"voicePrompt"`
}

type ContextualReminderResult struct {
	Status   string                     `json:"status"`
	Decision ContextualReminderDecision `json:"decision"`
	Reminder *core.Reminder             `json:"reminder"`
}

// GenerateContextualReminder plans a reminder of the given type from the
// resident's routines and existing reminders, and stores it.
func (a *EnhancedReminderAgent) GenerateContextualReminder(ctx context.Context, deviceID string, reminderType core.ReminderType) (*ContextualReminderResult, error) {
	patterns := a.store.GetBehavioralPatterns(deviceID)
	existing := a.store.GetReminderData(deviceID, 0)

	prompt := fmt.Sprintf(`You are an adaptive reminder agent for an elderly care system.

Create a %s reminder anchored to this resident's routines. Avoid times that
collide with existing reminders.

Routines: %s

Existing reminders: %s

Respond with ONLY a JSON object:
{
  "title": "short reminder title",
  "reminderType": %q,
  "contextualTrigger": "routine anchor such as 'after breakfast'",
  "scheduledTime": "HH:MM:SS",
  "reasoning": "why this timing fits the resident's routine",
  "voicePrompt": "short spoken version of the reminder"
}`, reminderType, mustJSON(patterns), mustJSON(existing), reminderType)

	response, err := a.provider.Generate(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("contextual reminder generation failed: %w", err)
	}

	var decision ContextualReminderDecision
	if err := decodeDecision(response, &decision); err != nil {
		return nil, err
	}

	reminder := core.Reminder{
		DeviceID:          deviceID,
		Timestamp:         store.FormatTimestamp(a.now()),
		ReminderType:      decision.ReminderType,
		ScheduledTime:     decision.ScheduledTime,
		Title:             decision.Title,
		ContextualTrigger: decision.ContextualTrigger,
	}
	if err := a.store.AddReminder(reminder); err != nil {
		return nil, fmt.Errorf("failed to store contextual reminder: %w", err)
	}

	return &ContextualReminderResult{
		Status:   "contextual_reminder_created",
		Decision: decision,
		Reminder: &reminder,
	}, nil
}

// FeedbackChange is one suggested adjustment derived from feedback.
type FeedbackChange struct {
	Aspect           string `json:"aspect"`
	CurrentValue     string `json:"currentValue"`
	RecommendedValue string `json:"recommendedValue"`
	Reason           string `json:"reason"`
}

// FeedbackAnalysis is the interpreted feedback used to tune later reminders.
type FeedbackAnalysis struct {
	Sentiment        string           `json:"sentiment"`
	AdjustmentNeeded bool             `json:"adjustmentNeeded"`
	SuggestedChanges []FeedbackChange `json:"suggestedChanges"`
	LearningInsights string           `json:"learningInsights"`
}

type FeedbackResult struct {
	Status   string           `json:"status"`
	Reminder core.Reminder    `json:"reminder"`
	Analysis FeedbackAnalysis `json:"feedbackAnalysis"`
}

// ProcessFeedback records free-text feedback against a reminder, leaving its
// delivery flags untouched, and interprets it for schedule tuning. Returns
// core.ErrReminderNotFound when no reminder matches.
func (a *EnhancedReminderAgent) ProcessFeedback(ctx context.Context, deviceID, timestamp, feedback string) (*FeedbackResult, error) {
	var reminder *core.Reminder
	for _, r := range a.store.GetReminderData(deviceID, 0) {
		if r.Timestamp == timestamp {
			found := r
			reminder = &found
			break
		}
	}
	if reminder == nil {
		return nil, core.ErrReminderNotFound
	}

	// Feedback never fakes a delivery or an acknowledgement.
	a.store.UpdateReminderStatus(deviceID, timestamp, reminder.ReminderSent, reminder.Acknowledged, feedback)

	prompt := fmt.Sprintf(`You are an adaptive reminder agent for an elderly care system.

The resident gave feedback on this reminder:

Reminder: %s
Feedback: %q

Respond with ONLY a JSON object:
{
  "sentiment": "positive" | "neutral" | "negative",
  "adjustmentNeeded": boolean,
  "suggestedChanges": [
    {
      "aspect": "timing" | "wording" | "context" | "other",
      "currentValue": "what it is now",
      "recommendedValue": "what it should be",
      "reason": "why"
    }
  ],
  "learningInsights": "what this teaches about the resident's preferences"
}`, mustJSON(reminder), feedback)

	response, err := a.provider.Generate(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("feedback analysis failed: %w", err)
	}

	var analysis FeedbackAnalysis
	if err := decodeDecision(response, &analysis); err != nil {
		return nil, err
	}

	reminder.Feedback = feedback
	return &FeedbackResult{
		Status:   "feedback_processed",
		Reminder: *reminder,
		Analysis: analysis,
	}, nil
}

// ProcessResponse interprets the resident's reply to a reminder and acts on
// the intent: acknowledge, reschedule, record a decline, or answer questions.
func (a *EnhancedReminderAgent) ProcessResponse(ctx context.Context, reminder core.Reminder, responseText string) (*ResponseResult, error) {
	prompt := fmt.Sprintf(`You are an adaptive reminder agent for an elderly care system.

The resident replied to this reminder:

Reminder: %s
Reply: %q

Respond with ONLY a JSON object:
{
  "intent": "accept" | "delay" | "decline" | "question" | "other",
  "delayDuration": minutes to delay (0 if not delaying),
  "questions": ["any questions the resident asked"],
  "sentiment": "positive" | "neutral" | "negative",
  "suggestedAction": "short next step for the system"
}`, mustJSON(reminder), responseText)

	raw, err := a.provider.Generate(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("response interpretation failed: %w", err)
	}

	var decision ResponseDecision
	if err := decodeDecision(raw, &decision); err != nil {
		return nil, err
	}

	result := &ResponseResult{Response: decision}

	switch {
	case decision.Intent == core.IntentAccept:
		result.Status = "reminder_accepted"
		if !a.store.UpdateReminderStatus(reminder.DeviceID, reminder.Timestamp, true, true, "") {
			logging.WithField("device", reminder.DeviceID).Warn("Accepted reminder not found in store")
		}

	case decision.Intent == core.IntentDelay && decision.DelayDuration > 0:
		result.Status = "reminder_delayed"
		delayed, err := a.rescheduleReminder(reminder, decision.DelayDuration)
		if err != nil {
			return nil, err
		}
		result.Reminder = delayed

		note := fmt.Sprintf("Delayed to %s", delayed.ScheduledTime)
		if !a.store.UpdateReminderStatus(reminder.DeviceID, reminder.Timestamp, true, false, note) {
			logging.WithField("device", reminder.DeviceID).Warn("Delayed reminder not found in store")
		}

	case decision.Intent == core.IntentQuestion && len(decision.Questions) > 0:
		result.Status = "question_answered"
		answer, err := a.answerQuestions(ctx, reminder, decision.Questions)
		if err != nil {
			return nil, err
		}
		result.Answer = answer

	default:
		// Declines, and delays or questions missing their details, are all
		// recorded the same way, with the resident's own words as feedback.
		result.Status = "reminder_declined"
		if !a.store.UpdateReminderStatus(reminder.DeviceID, reminder.Timestamp, true, false, responseText) {
			logging.WithField("device", reminder.DeviceID).Warn("Declined reminder not found in store")
		}
	}

	return result, nil
}

// rescheduleReminder stores a copy of the reminder pushed out by the delay.
func (a *EnhancedReminderAgent) rescheduleReminder(r core.Reminder, delayMinutes int) (*core.Reminder, error) {
	scheduled := a.now().Add(time.Duration(delayMinutes) * time.Minute)
	delayed := core.Reminder{
		DeviceID:          r.DeviceID,
		Timestamp:         store.FormatTimestamp(a.now()),
		ReminderType:      r.ReminderType,
		ScheduledTime:     scheduled.Format("15:04:05"),
		Title:             r.Title,
		ContextualTrigger: r.ContextualTrigger,
	}
	if err := a.store.AddReminder(delayed); err != nil {
		return nil, fmt.Errorf("failed to store delayed reminder: %w", err)
	}
	return &delayed, nil
}

func (a *EnhancedReminderAgent) answerQuestions(ctx context.Context, r core.Reminder, questions []string) (string, error) {
	prompt := fmt.Sprintf(`An elderly resident asked about their reminder.

Reminder: %s
Questions: %s

Answer simply and reassuringly for the resident. Do not give medical advice
beyond restating the reminder; suggest asking a caregiver for anything
clinical. Plain text, at most three sentences.`,
		mustJSON(r), strings.Join(questions, "; "))

	return a.provider.Generate(ctx, prompt)
}

// GenerateTTSReminder produces spoken-prompt text for the next pending
// reminder on a device. Returns empty text when nothing is pending.
func (a *EnhancedReminderAgent) GenerateTTSReminder(ctx context.Context, deviceID string) (string, *core.Reminder, error) {
	pending := a.store.GetPendingReminders()
	for i := range pending {
		if deviceID != "" && pending[i].DeviceID != deviceID {
			continue
		}
		text, err := a.draftSpeech(ctx, pending[i])
		if err != nil {
			return "", nil, err
		}
		return text, &pending[i], nil
	}
	return "", nil, nil
}

// draftSpeech writes the spoken form of a reminder: a warm greeting, the
// purpose, the routine anchor if present, and a closing question.
func (a *EnhancedReminderAgent) draftSpeech(ctx context.Context, r core.Reminder) (string, error) {
	prompt := fmt.Sprintf(`Write a short, friendly spoken reminder for an elderly resident.

Reminder type: %s
Title: %s
Scheduled time: %s
Routine anchor: %s

Open with a warm greeting, state the purpose, mention the routine anchor
naturally if present, and close with a gentle question. Plain text only,
two or three sentences.`, r.ReminderType, r.Title, r.ScheduledTime, r.ContextualTrigger)

	text, err := a.provider.Generate(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("speech drafting failed: %w", err)
	}
	return strings.TrimSpace(text), nil
}

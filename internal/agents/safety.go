package agents

import (
	"context"
	"fmt"
	"time"

	"github.com/eldersense/eldersense/internal/core"
	"github.com/eldersense/eldersense/internal/llm"
	"github.com/eldersense/eldersense/internal/store"
)

// SafetyAgent evaluates fall and inactivity events and drives the emergency
// escalation path.
type SafetyAgent struct {
	store    store.Store
	provider llm.Provider
	now      func() time.Time
}

func NewSafetyAgent(s store.Store, p llm.Provider) *SafetyAgent {
	return &SafetyAgent{store: s, provider: p, now: time.Now}
}

// SafetyDecision is the structured verdict for a single safety event.
type SafetyDecision struct {
	EventType                 core.SafetyEventType `json:"eventType"`
	RiskLevel                 core.RiskLevel       `json:"riskLevel"`
	RequiresEmergencyResponse bool                 `json:"requiresEmergencyResponse"`
	RecommendedAction         string               `json:"recommendedAction"`
}

type SafetyResult struct {
	Status        string         `json:"status"`
	Assessment    SafetyDecision `json:"assessment"`
	EmergencyPlan string         `json:"emergencyPlan,omitempty"`
}

// RoomActivity pairs a monitored room with its most recent activity and a
// staleness status.
type RoomActivity struct {
	Room         string          `json:"room"`
	Count        int             `json:"count"`
	LastActivity string          `json:"lastActivity"`
	Status       core.RoomStatus `json:"status"`
}

// SafetyContext summarizes recent safety history for prompt construction.
type SafetyContext struct {
	RecentFalls    []core.SafetyReading `json:"recentFalls"`
	RoomActivity   []RoomActivity       `json:"roomActivity"`
	MovementStats  map[string]int       `json:"movementStats"`
	RecentActivity []core.SafetyReading `json:"recentActivity"`
}

// roomStatusAt grades a room's last-seen timestamp. Rooms never seen are a
// warning, not an alert; an unparseable timestamp is treated as never seen.
func roomStatusAt(lastActivity string, now time.Time) core.RoomStatus {
	if lastActivity == store.NoData {
		return core.RoomWarning
	}
	ts := store.ParseTimestamp(lastActivity)
	if ts.IsZero() {
		return core.RoomWarning
	}
	since := now.Sub(ts)
	switch {
	case since > 24*time.Hour:
		return core.RoomAlert
	case since > 12*time.Hour:
		return core.RoomWarning
	default:
		return core.RoomNormal
	}
}

// BuildContext gathers recent falls, per-room activity with staleness, and
// movement counts over the latest readings.
func (a *SafetyAgent) BuildContext() SafetyContext {
	falls := a.store.GetFallEvents(5)
	activity := a.store.GetLocationActivity()
	recent := a.store.GetSafetyData("", 10)

	now := a.now()
	rooms := make([]RoomActivity, 0, len(store.Rooms))
	for _, room := range store.Rooms {
		la := activity[room]
		rooms = append(rooms, RoomActivity{
			Room:         room,
			Count:        la.Count,
			LastActivity: la.LastActivity,
			Status:       roomStatusAt(la.LastActivity, now),
		})
	}

	stats := make(map[string]int)
	for _, r := range recent {
		stats[r.MovementActivity]++
	}
	if len(recent) > 5 {
		recent = recent[:5]
	}

	return SafetyContext{
		RecentFalls:    falls,
		RoomActivity:   rooms,
		MovementStats:  stats,
		RecentActivity: recent,
	}
}

// ProcessSafetyEvent assesses a safety event. High and critical risk levels
// get a second completion pass to draft the emergency response plan.
func (a *SafetyAgent) ProcessSafetyEvent(ctx context.Context, event Event) (*SafetyResult, error) {
	sctx := a.BuildContext()

	prompt := fmt.Sprintf(`You are a safety monitoring agent for an elderly care system.

Assess this safety event:

Event: %s

Recent context: %s

Respond with ONLY a JSON object:
{
  "eventType": "movement" | "fall" | "inactivity" | "unusual_behavior" | "other",
  "riskLevel": "low" | "medium" | "high" | "critical",
  "requiresEmergencyResponse": boolean,
  "recommendedAction": "short action for caregivers"
}`, event.JSON(), mustJSON(sctx))

	response, err := a.provider.Generate(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("safety assessment failed: %w", err)
	}

	var decision SafetyDecision
	if err := decodeDecision(response, &decision); err != nil {
		return nil, err
	}

	result := &SafetyResult{Status: "processed", Assessment: decision}
	if decision.RiskLevel != core.RiskHigh && decision.RiskLevel != core.RiskCritical {
		return result, nil
	}

	result.Status = "emergency"
	plan, err := a.emergencyPlan(ctx, event, decision)
	if err != nil {
		return nil, fmt.Errorf("emergency plan generation failed: %w", err)
	}
	result.EmergencyPlan = plan
	return result, nil
}

func (a *SafetyAgent) emergencyPlan(ctx context.Context, event Event, decision SafetyDecision) (string, error) {
	prompt := fmt.Sprintf(`An elderly resident needs an emergency response.

Event: %s
Event type: %s
Risk level: %s

Write a numbered emergency response plan for the caregiver: immediate checks,
who to contact, and follow-up. Keep it under six steps.`,
		event.JSON(), decision.EventType, decision.RiskLevel)

	return a.provider.Generate(ctx, prompt)
}

// AnalyzeInactivityPatterns reviews room activity for concerning gaps.
func (a *SafetyAgent) AnalyzeInactivityPatterns(ctx context.Context) (string, error) {
	sctx := a.BuildContext()

	prompt := fmt.Sprintf(`You are a safety monitoring agent for an elderly care system.

Review per-room activity and flag concerning inactivity. Rooms marked
"warning" or "alert" have gone too long without motion.

Room activity: %s

Respond in plain text, at most one short paragraph.`, mustJSON(sctx.RoomActivity))

	analysis, err := a.provider.Generate(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("inactivity analysis failed: %w", err)
	}
	return analysis, nil
}

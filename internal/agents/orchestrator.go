package agents

import (
	"context"
	"fmt"
	"strings"

	"github.com/eldersense/eldersense/internal/llm"
	"github.com/eldersense/eldersense/internal/logging"
	"github.com/eldersense/eldersense/internal/store"
)

// Route identifies which domain agent handles an event.
type Route string

const (
	RouteHealth    Route = "health"
	RouteSafety    Route = "safety"
	RouteReminder  Route = "reminder"
	RouteUnhandled Route = "unhandled"
)

// UnhandledResult is returned for events no agent claims.
type UnhandledResult struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// Orchestrator classifies inbound events and dispatches them to the domain
// agents.
type Orchestrator struct {
	provider llm.Provider
	health   *HealthAgent
	safety   *SafetyAgent
	reminder *ReminderAgent
}

func NewOrchestrator(s store.Store, p llm.Provider) *Orchestrator {
	return &Orchestrator{
		provider: p,
		health:   NewHealthAgent(s, p),
		safety:   NewSafetyAgent(s, p),
		reminder: NewReminderAgent(s, p),
	}
}

// Health exposes the health agent for direct analysis endpoints.
func (o *Orchestrator) Health() *HealthAgent { return o.health }

// Safety exposes the safety agent for direct analysis endpoints.
func (o *Orchestrator) Safety() *SafetyAgent { return o.safety }

// Reminder exposes the reminder agent for direct reminder endpoints.
func (o *Orchestrator) Reminder() *ReminderAgent { return o.reminder }

// classifyRoute maps classifier output onto a route. Matching is ordered and
// case-sensitive: a response mentioning both Health and Safety routes to the
// health agent, and lowercase mentions do not match.
func classifyRoute(response string) Route {
	switch {
	case strings.Contains(response, "Health"):
		return RouteHealth
	case strings.Contains(response, "Safety"):
		return RouteSafety
	case strings.Contains(response, "Reminder"):
		return RouteReminder
	default:
		return RouteUnhandled
	}
}

// Classify asks the provider which agent should handle the event.
func (o *Orchestrator) Classify(ctx context.Context, event Event) (Route, error) {
	prompt := fmt.Sprintf(`You are the coordinator of an elderly care monitoring system.

Classify this event into exactly one category:
- Health: vital signs, medical readings, symptoms
- Safety: falls, movement, inactivity, location
- Reminder: medication, appointments, schedules, tasks

Event: %s

Respond with ONLY the category name.`, event.JSON())

	response, err := o.provider.Generate(ctx, prompt)
	if err != nil {
		return RouteUnhandled, fmt.Errorf("event classification failed: %w", err)
	}
	return classifyRoute(response), nil
}

// ProcessEvent classifies the event and runs the matching agent. Events no
// agent claims return an unhandled result rather than an error.
func (o *Orchestrator) ProcessEvent(ctx context.Context, event Event) (interface{}, error) {
	route, err := o.Classify(ctx, event)
	if err != nil {
		return nil, err
	}

	logging.WithFields(map[string]interface{}{
		"route":  string(route),
		"device": event.DeviceID(),
	}).Debug("Dispatching event")

	switch route {
	case RouteHealth:
		return o.health.ProcessHealthEvent(ctx, event)
	case RouteSafety:
		return o.safety.ProcessSafetyEvent(ctx, event)
	case RouteReminder:
		return o.reminder.ProcessReminderEvent(ctx, event)
	default:
		return &UnhandledResult{
			Status:  "unhandled",
			Message: "No agent is responsible for this event type.",
		}, nil
	}
}

// EmergencyResponse is the result of a forced emergency escalation.
type EmergencyResponse struct {
	Status string `json:"status"`
	Plan   string `json:"plan"`
}

// CoordinateEmergencyResponse skips classification: it gathers health and
// safety context and asks the provider for a prioritized response plan.
func (o *Orchestrator) CoordinateEmergencyResponse(ctx context.Context, alert Event) (*EmergencyResponse, error) {
	hctx := o.health.BuildContext(alert.DeviceID())
	sctx := o.safety.BuildContext()

	prompt := fmt.Sprintf(`You are the coordinator of an elderly care monitoring system.
An emergency alert was raised for a resident.

Alert: %s

Health context: %s

Safety context: %s

Write a prioritized list of response actions and who to notify for each.
Plain text, numbered, most urgent first.`,
		alert.JSON(), mustJSON(hctx), mustJSON(sctx))

	plan, err := o.provider.Generate(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("emergency coordination failed: %w", err)
	}
	return &EmergencyResponse{
		Status: "emergency_response_initiated",
		Plan:   plan,
	}, nil
}

package agents

import (
	"context"
	"fmt"
	"strings"

	"github.com/eldersense/eldersense/internal/core"
	"github.com/eldersense/eldersense/internal/llm"
	"github.com/eldersense/eldersense/internal/store"
)

// HealthAgent evaluates vital-sign events against recent history.
type HealthAgent struct {
	store    store.Store
	provider llm.Provider
}

func NewHealthAgent(s store.Store, p llm.Provider) *HealthAgent {
	return &HealthAgent{store: s, provider: p}
}

// HealthDecision is the structured verdict for a single health event.
type HealthDecision struct {
	IsAnomaly         bool          `json:"isAnomaly"`
	Severity          core.Severity `json:"severity"`
	AnomalyType       []string      `json:"anomalyType"`
	Recommendation    string        `json:"recommendation"`
	RequiresAttention bool          `json:"requiresAttention"`
}

// HealthResult is returned to the orchestrator and serialized to the caller.
type HealthResult struct {
	Status           string         `json:"status"`
	Analysis         HealthDecision `json:"analysis"`
	DetailedAnalysis string         `json:"detailedAnalysis,omitempty"`
}

// HealthContext summarizes recent readings for prompt construction.
type HealthContext struct {
	RecentReadings      []core.HealthReading `json:"recentReadings"`
	RecentAlerts        []core.HealthReading `json:"recentAlerts,omitempty"`
	AvgHeartRate        float64              `json:"avgHeartRate"`
	AvgOxygenSaturation float64              `json:"avgOxygenSaturation"`
	ReadingCount        int                  `json:"readingCount"`
}

// BuildContext gathers the device's recent readings, their averages, and any
// readings that already triggered an alert. An empty deviceID summarizes
// across all devices.
func (a *HealthAgent) BuildContext(deviceID string) HealthContext {
	readings := a.store.GetHealthData(deviceID, 20)

	hctx := HealthContext{
		RecentReadings: readings,
		RecentAlerts:   a.store.GetHealthAlerts(5),
		ReadingCount:   len(readings),
	}
	if len(readings) == 0 {
		return hctx
	}

	var hrSum, oxSum float64
	for _, r := range readings {
		hrSum += float64(r.HeartRate)
		oxSum += float64(r.OxygenSaturation)
	}
	hctx.AvgHeartRate = hrSum / float64(len(readings))
	hctx.AvgOxygenSaturation = oxSum / float64(len(readings))
	return hctx
}

// ProcessHealthEvent classifies a vital-sign event. Any anomaly gets a
// second completion pass for a detailed caregiver briefing.
func (a *HealthAgent) ProcessHealthEvent(ctx context.Context, event Event) (*HealthResult, error) {
	hctx := a.BuildContext(event.DeviceID())

	prompt := fmt.Sprintf(`You are a health monitoring agent for an elderly care system.

Analyze this health event against the resident's recent history:

Event: %s

Recent context: %s

Respond with ONLY a JSON object:
{
  "isAnomaly": boolean,
  "severity": "normal" | "mild" | "moderate" | "severe",
  "anomalyType": ["heartRate" | "bloodPressure" | "glucoseLevels" | "oxygenSaturation", empty if none],
  "recommendation": "short recommendation for caregivers",
  "requiresAttention": boolean
}`, event.JSON(), mustJSON(hctx))

	response, err := a.provider.Generate(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("health analysis failed: %w", err)
	}

	var decision HealthDecision
	if err := decodeDecision(response, &decision); err != nil {
		return nil, err
	}

	result := &HealthResult{Status: "normal", Analysis: decision}
	if !decision.IsAnomaly {
		return result, nil
	}

	result.Status = "anomaly_detected"
	detail, err := a.detailedAnalysis(ctx, event, decision)
	if err != nil {
		return nil, fmt.Errorf("detailed health analysis failed: %w", err)
	}
	result.DetailedAnalysis = detail
	return result, nil
}

func (a *HealthAgent) detailedAnalysis(ctx context.Context, event Event, decision HealthDecision) (string, error) {
	prompt := fmt.Sprintf(`A health anomaly was detected for an elderly resident.

Event: %s
Severity: %s
Anomaly types: %s

Write a concise briefing for the caregiver: what was observed, why it matters,
and what to do in the next hour. Plain text, no more than four sentences.`,
		event.JSON(), decision.Severity, strings.Join(decision.AnomalyType, ", "))

	return a.provider.Generate(ctx, prompt)
}

// AnalyzeHealthTrends produces a free-text trend summary over the device's
// full reading history.
func (a *HealthAgent) AnalyzeHealthTrends(ctx context.Context, deviceID string) (string, error) {
	readings := a.store.GetHealthData(deviceID, 0)
	if len(readings) == 0 {
		return "No health data available for analysis.", nil
	}

	prompt := fmt.Sprintf(`You are a health monitoring agent for an elderly care system.

Review these readings and summarize trends in heart rate, blood pressure,
oxygen level, and glucose. Note anything a caregiver should watch.

Readings: %s

Respond in plain text, at most one short paragraph.`, mustJSON(readings))

	analysis, err := a.provider.Generate(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("trend analysis failed: %w", err)
	}
	return strings.TrimSpace(analysis), nil
}

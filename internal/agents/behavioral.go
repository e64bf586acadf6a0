package agents

import (
	"context"
	"fmt"
	"time"

	"github.com/eldersense/eldersense/internal/core"
	"github.com/eldersense/eldersense/internal/llm"
	"github.com/eldersense/eldersense/internal/logging"
	"github.com/eldersense/eldersense/internal/store"
)

// BehavioralAgent learns daily routines from sensor history and watches for
// deviations and gait decline.
type BehavioralAgent struct {
	store    store.Store
	provider llm.Provider
	now      func() time.Time
}

func NewBehavioralAgent(s store.Store, p llm.Provider) *BehavioralAgent {
	return &BehavioralAgent{store: s, provider: p, now: time.Now}
}

// BehavioralAnomaly is one deviation from a learned routine.
type BehavioralAnomaly struct {
	Timestamp         string `json:"timestamp"`
	Description       string `json:"description"`
	Severity          string `json:"severity"`
	RecommendedAction string `json:"recommendedAction"`
}

// PatternFinding is a routine pattern plus the explanation that is reported
// but not persisted.
type PatternFinding struct {
	core.BehavioralPattern
	Description string `json:"description"`
}

type PatternAnalysis struct {
	Status    string              `json:"status"`
	Patterns  []PatternFinding    `json:"patterns"`
	Anomalies []BehavioralAnomaly `json:"anomalies"`
}

type AnomalyReport struct {
	Status    string              `json:"status"`
	Anomalies []BehavioralAnomaly `json:"anomalies"`
}

// FallRiskAssessment grades fall risk from gait measurements.
type FallRiskAssessment struct {
	Status         string           `json:"status"`
	RiskScore      int              `json:"riskScore"`
	RiskLevel      core.RiskLevel   `json:"riskLevel"`
	Factors        []string         `json:"factors"`
	Recommendation string           `json:"recommendation"`
	Trend          []core.RiskPoint `json:"trend"`
}

// AnalyzePatterns derives routine patterns from recent sensor activity,
// persists each one, and reports any deviations it noticed along the way.
// Existing patterns with the same type and start time are refreshed.
func (a *BehavioralAgent) AnalyzePatterns(ctx context.Context, deviceID string) (*PatternAnalysis, error) {
	safety := a.store.GetSafetyData(deviceID, 50)
	existing := a.store.GetBehavioralPatterns(deviceID)

	prompt := fmt.Sprintf(`You are a behavioral analysis agent for an elderly care system.

Derive the resident's daily routine patterns from this sensor activity.
Refine the existing patterns rather than inventing unrelated ones, and flag
any activity that deviates from the routines.

Activity: %s

Existing patterns: %s

Respond with ONLY a JSON object:
{
  "patterns": [
    {
      "deviceId": "%s",
      "patternType": "sleep" | "meal" | "bathroom" | "activity" | "nap",
      "startTime": "HH:MM",
      "endTime": "HH:MM",
      "daysOfWeek": ["Mon", ...],
      "location": "room name",
      "confidence": 0.0 to 1.0,
      "description": "one sentence describing the routine"
    }
  ],
  "anomalies": [
    {
      "timestamp": "when it happened",
      "description": "what deviated from the routine",
      "severity": "low" | "medium" | "high",
      "recommendedAction": "what a caregiver should do"
    }
  ]
}`, mustJSON(safety), mustJSON(existing), deviceID)

	response, err := a.provider.Generate(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("pattern analysis failed: %w", err)
	}

	var decision struct {
		Patterns  []PatternFinding    `json:"patterns"`
		Anomalies []BehavioralAnomaly `json:"anomalies"`
	}
	if err := decodeDecision(response, &decision); err != nil {
		return nil, err
	}

	updated := a.now().Format("2006-01-02")
	for i := range decision.Patterns {
		p := &decision.Patterns[i]
		if p.DeviceID == "" {
			p.DeviceID = deviceID
		}
		p.LastUpdated = updated
		if err := a.store.UpdateBehavioralPattern(p.BehavioralPattern); err != nil {
			logging.WithFields(map[string]interface{}{
				"device":  p.DeviceID,
				"pattern": p.PatternType,
			}).Warn("Failed to persist pattern: %v", err)
		}
	}

	return &PatternAnalysis{
		Status:    "patterns_analyzed",
		Patterns:  decision.Patterns,
		Anomalies: decision.Anomalies,
	}, nil
}

// DetectAnomalies compares recent activity against the learned routines.
func (a *BehavioralAgent) DetectAnomalies(ctx context.Context, deviceID string) (*AnomalyReport, error) {
	patterns := a.store.GetBehavioralPatterns(deviceID)
	recent := a.store.GetSafetyData(deviceID, 20)

	prompt := fmt.Sprintf(`You are a behavioral analysis agent for an elderly care system.

Compare recent activity to the resident's learned routines and list any
deviations worth a caregiver's attention. An empty list is a valid answer.

Routines: %s

Recent activity: %s

Respond with ONLY a JSON object:
{
  "anomalies": [
    {
      "timestamp": "when the deviation was observed",
      "description": "what changed",
      "severity": "low" | "medium" | "high",
      "recommendedAction": "short next step for caregivers"
    }
  ]
}`, mustJSON(patterns), mustJSON(recent))

	response, err := a.provider.Generate(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("anomaly detection failed: %w", err)
	}

	var decision struct {
		Anomalies []BehavioralAnomaly `json:"anomalies"`
	}
	if err := decodeDecision(response, &decision); err != nil {
		return nil, err
	}

	return &AnomalyReport{Status: "anomalies_detected", Anomalies: decision.Anomalies}, nil
}

// PredictFallRisk assesses gait measurements and grades the fall risk.
func (a *BehavioralAgent) PredictFallRisk(ctx context.Context, deviceID string) (*FallRiskAssessment, error) {
	gait := a.store.GetGaitData(deviceID, 10)
	trend := a.store.GetFallRiskTrend(deviceID)

	if len(gait) == 0 {
		return &FallRiskAssessment{
			Status:         "insufficient_data",
			RiskLevel:      core.RiskLow,
			Recommendation: "No gait data available; continue monitoring.",
			Trend:          trend,
		}, nil
	}

	prompt := fmt.Sprintf(`You are a behavioral analysis agent for an elderly care system.

Assess fall risk from these gait measurements. Rising step variability,
slowing walking speed and longer turn times indicate decline.

Gait samples (newest first): %s

Respond with ONLY a JSON object:
{
  "riskScore": 0 to 100,
  "riskLevel": "low" | "medium" | "high" | "critical",
  "factors": ["contributing factors"],
  "recommendation": "short recommendation for caregivers"
}`, mustJSON(gait))

	response, err := a.provider.Generate(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("fall risk prediction failed: %w", err)
	}

	var decision struct {
		RiskScore      int            `json:"riskScore"`
		RiskLevel      core.RiskLevel `json:"riskLevel"`
		Factors        []string       `json:"factors"`
		Recommendation string         `json:"recommendation"`
	}
	if err := decodeDecision(response, &decision); err != nil {
		return nil, err
	}

	return &FallRiskAssessment{
		Status:         "risk_assessed",
		RiskScore:      decision.RiskScore,
		RiskLevel:      decision.RiskLevel,
		Factors:        decision.Factors,
		Recommendation: decision.Recommendation,
		Trend:          trend,
	}, nil
}

// OptimizeRoutine suggests routine adjustments that would reduce risk, based
// on learned patterns and the current fall-risk trend.
func (a *BehavioralAgent) OptimizeRoutine(ctx context.Context, deviceID string) (string, error) {
	patterns := a.store.GetBehavioralPatterns(deviceID)
	trend := a.store.GetFallRiskTrend(deviceID)

	prompt := fmt.Sprintf(`You are a behavioral analysis agent for an elderly care system.

Suggest small routine adjustments that would reduce risk for this resident.
Prefer changes tied to existing habits.

Routines: %s

Fall risk trend: %s

Respond in plain text with one suggestion per line.`,
		mustJSON(patterns), mustJSON(trend))

	plan, err := a.provider.Generate(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("routine optimization failed: %w", err)
	}
	return plan, nil
}

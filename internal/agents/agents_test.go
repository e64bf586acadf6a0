package agents

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/eldersense/eldersense/internal/core"
	"github.com/eldersense/eldersense/internal/store"
	"github.com/eldersense/eldersense/internal/testutil"
)

// flakyProvider serves its scripted responses and then fails.
type flakyProvider struct {
	responses []string
	calls     int
}

func (p *flakyProvider) Generate(ctx context.Context, prompt string) (string, error) {
	p.calls++
	if p.calls <= len(p.responses) {
		return p.responses[p.calls-1], nil
	}
	return "", errors.New("model unavailable")
}

func (p *flakyProvider) Name() string { return "flaky" }

func TestDecodeDecision_StripsMarkdownFences(t *testing.T) {
	cases := []string{
		`{"isAnomaly": true}`,
		"```json\n{\"isAnomaly\": true}\n```",
		"```\n{\"isAnomaly\": true}\n```",
		"  \n```json\n{\"isAnomaly\": true}\n```\n  ",
	}
	for _, raw := range cases {
		var d HealthDecision
		if err := decodeDecision(raw, &d); err != nil {
			t.Errorf("decodeDecision(%q): %v", raw, err)
		}
		if !d.IsAnomaly {
			t.Errorf("decodeDecision(%q): isAnomaly not set", raw)
		}
	}
}

func TestDecodeDecision_BadJSON(t *testing.T) {
	var d HealthDecision
	err := decodeDecision("the patient looks fine to me", &d)
	if err == nil {
		t.Fatal("expected error for non-JSON response")
	}
}

func TestClassifyRoute_PriorityOrder(t *testing.T) {
	cases := []struct {
		response string
		want     Route
	}{
		{"Health", RouteHealth},
		{"Safety", RouteSafety},
		{"Reminder", RouteReminder},
		{"This event concerns Safety and nothing else.", RouteSafety},
		{"Both Health and Safety apply here", RouteHealth},
		{"Safety or maybe a Reminder", RouteSafety},
		{"no idea", RouteUnhandled},
		{"", RouteUnhandled},
		{"this is about health, probably", RouteUnhandled},
		{"safety reminder health", RouteUnhandled},
	}
	for _, c := range cases {
		if got := classifyRoute(c.response); got != c.want {
			t.Errorf("classifyRoute(%q) = %q, want %q", c.response, got, c.want)
		}
	}
}

func TestRoomStatusAt_StalenessTiers(t *testing.T) {
	now := time.Date(2025, 1, 22, 20, 0, 0, 0, time.UTC)

	cases := []struct {
		lastActivity string
		want         core.RoomStatus
	}{
		{store.FormatTimestamp(now.Add(-10 * time.Hour)), core.RoomNormal},
		{store.FormatTimestamp(now.Add(-13 * time.Hour)), core.RoomWarning},
		{store.FormatTimestamp(now.Add(-30 * time.Hour)), core.RoomAlert},
		{store.NoData, core.RoomWarning},
		{"garbage", core.RoomWarning},
	}
	for _, c := range cases {
		if got := roomStatusAt(c.lastActivity, now); got != c.want {
			t.Errorf("roomStatusAt(%q) = %q, want %q", c.lastActivity, got, c.want)
		}
	}
}

func TestSafetyAgent_BuildContext_FourRooms(t *testing.T) {
	agent := NewSafetyAgent(testutil.TestStore(t), testutil.NewMockProvider())

	sctx := agent.BuildContext()
	if len(sctx.RoomActivity) != len(store.Rooms) {
		t.Fatalf("expected %d rooms, got %d", len(store.Rooms), len(sctx.RoomActivity))
	}
	for i, room := range store.Rooms {
		if sctx.RoomActivity[i].Room != room {
			t.Errorf("room[%d] = %q, want %q", i, sctx.RoomActivity[i].Room, room)
		}
	}

	if len(sctx.MovementStats) == 0 {
		t.Error("expected movement stats from recent activity")
	}
	total := 0
	for _, n := range sctx.MovementStats {
		total += n
	}
	if total == 0 || total > 10 {
		t.Errorf("movement stats cover %d readings, want 1-10", total)
	}
	if len(sctx.RecentActivity) > 5 {
		t.Errorf("recent activity has %d entries, want at most 5", len(sctx.RecentActivity))
	}
}

func TestHealthAgent_NormalEvent(t *testing.T) {
	provider := testutil.NewMockProvider(
		`{"isAnomaly": false, "severity": "normal", "anomalyType": [], "recommendation": "none", "requiresAttention": false}`,
	)
	agent := NewHealthAgent(testutil.TestStore(t), provider)

	result, err := agent.ProcessHealthEvent(testutil.TestContext(t), Event{"deviceId": "D1000", "heartRate": 72})
	if err != nil {
		t.Fatalf("ProcessHealthEvent: %v", err)
	}
	if result.Status != "normal" {
		t.Errorf("status = %q, want normal", result.Status)
	}
	if provider.CallCount() != 1 {
		t.Errorf("expected one completion call, got %d", provider.CallCount())
	}
}

func TestHealthAgent_MildAnomalyGetsDetail(t *testing.T) {
	provider := testutil.NewMockProvider(
		`{"isAnomaly": true, "severity": "mild", "anomalyType": ["oxygenSaturation"], "recommendation": "monitor", "requiresAttention": false}`,
		"Oxygen saturation dipped slightly overnight; keep an eye on it.",
	)
	agent := NewHealthAgent(testutil.TestStore(t), provider)

	result, err := agent.ProcessHealthEvent(testutil.TestContext(t), Event{"deviceId": "D1000", "oxygenSaturation": 93})
	if err != nil {
		t.Fatalf("ProcessHealthEvent: %v", err)
	}
	if result.Status != "anomaly_detected" {
		t.Errorf("status = %q, want anomaly_detected", result.Status)
	}
	if result.DetailedAnalysis == "" {
		t.Error("expected a detailed analysis even when attention is not required")
	}
	if provider.CallCount() != 2 {
		t.Errorf("expected two completion calls, got %d", provider.CallCount())
	}
}

func TestHealthAgent_DetailFailurePropagates(t *testing.T) {
	provider := &flakyProvider{responses: []string{
		`{"isAnomaly": true, "severity": "severe", "anomalyType": ["heartRate"], "recommendation": "call the doctor", "requiresAttention": true}`,
	}}
	agent := NewHealthAgent(testutil.TestStore(t), provider)

	_, err := agent.ProcessHealthEvent(testutil.TestContext(t), Event{"deviceId": "D1000", "heartRate": 160})
	if err == nil {
		t.Fatal("expected the detailed-analysis failure to propagate")
	}
}

func TestHealthAgent_AnomalyGetsDetail(t *testing.T) {
	provider := testutil.NewMockProvider(
		`{"isAnomaly": true, "severity": "severe", "anomalyType": ["heartRate"], "recommendation": "call the doctor", "requiresAttention": true}`,
		"The resident's heart rate is dangerously elevated.",
	)
	agent := NewHealthAgent(testutil.TestStore(t), provider)

	result, err := agent.ProcessHealthEvent(testutil.TestContext(t), Event{"deviceId": "D1000", "heartRate": 160})
	if err != nil {
		t.Fatalf("ProcessHealthEvent: %v", err)
	}
	if result.Status != "anomaly_detected" {
		t.Errorf("status = %q, want anomaly_detected", result.Status)
	}
	if result.DetailedAnalysis == "" {
		t.Error("expected a detailed analysis for a severe anomaly")
	}
	if provider.CallCount() != 2 {
		t.Errorf("expected two completion calls, got %d", provider.CallCount())
	}
}

func TestSafetyAgent_EmergencyGetsPlan(t *testing.T) {
	provider := testutil.NewMockProvider(
		`{"eventType": "fall", "riskLevel": "critical", "requiresEmergencyResponse": true, "recommendedAction": "dispatch caregiver"}`,
		"1. Check on the resident immediately.",
	)
	agent := NewSafetyAgent(testutil.TestStore(t), provider)

	result, err := agent.ProcessSafetyEvent(testutil.TestContext(t), Event{"deviceId": "D1022", "type": "fall", "location": "Bathroom"})
	if err != nil {
		t.Fatalf("ProcessSafetyEvent: %v", err)
	}
	if result.Status != "emergency" {
		t.Errorf("status = %q, want emergency", result.Status)
	}
	if result.EmergencyPlan == "" {
		t.Error("expected an emergency plan")
	}
	if result.Assessment.RiskLevel != core.RiskCritical {
		t.Errorf("riskLevel = %q, want critical", result.Assessment.RiskLevel)
	}
}

func TestSafetyAgent_HighRiskGetsPlan(t *testing.T) {
	provider := testutil.NewMockProvider(
		`{"eventType": "wandering", "riskLevel": "high", "requiresEmergencyResponse": false, "recommendedAction": "locate the resident"}`,
		"1. Check the last known location.",
	)
	agent := NewSafetyAgent(testutil.TestStore(t), provider)

	result, err := agent.ProcessSafetyEvent(testutil.TestContext(t), Event{"deviceId": "D1022", "type": "wandering"})
	if err != nil {
		t.Fatalf("ProcessSafetyEvent: %v", err)
	}
	if result.Status != "emergency" {
		t.Errorf("status = %q, want emergency", result.Status)
	}
	if result.EmergencyPlan == "" {
		t.Error("expected a plan for high risk regardless of the emergency flag")
	}
}

func TestSafetyAgent_PlanFailurePropagates(t *testing.T) {
	provider := &flakyProvider{responses: []string{
		`{"eventType": "fall", "riskLevel": "critical", "requiresEmergencyResponse": true, "recommendedAction": "dispatch caregiver"}`,
	}}
	agent := NewSafetyAgent(testutil.TestStore(t), provider)

	_, err := agent.ProcessSafetyEvent(testutil.TestContext(t), Event{"deviceId": "D1022", "type": "fall"})
	if err == nil {
		t.Fatal("expected the plan-generation failure to propagate")
	}
}

func TestReminderAgent_CreatesReminder(t *testing.T) {
	st := testutil.EmptyStore(t)
	provider := testutil.NewMockProvider(
		`{"reminderType": "Medication", "priority": "high", "scheduledTime": "09:00:00", "requiresFollowUp": true}`,
		"Time for your morning medication!",
	)
	agent := NewReminderAgent(st, provider)

	result, err := agent.ProcessReminderEvent(testutil.TestContext(t), Event{"deviceId": "D5", "request": "morning pills"})
	if err != nil {
		t.Fatalf("ProcessReminderEvent: %v", err)
	}
	if result.Status != "reminder_created" {
		t.Errorf("status = %q, want reminder_created", result.Status)
	}
	if result.Message == "" {
		t.Error("expected a drafted message")
	}

	stored := st.GetReminderData("D5", 0)
	if len(stored) != 1 {
		t.Fatalf("expected 1 stored reminder, got %d", len(stored))
	}
	if stored[0].ReminderType != core.ReminderMedication || stored[0].ScheduledTime != "09:00:00" {
		t.Errorf("stored reminder mismatch: %+v", stored[0])
	}
}

func TestOrchestrator_DispatchAndFallback(t *testing.T) {
	st := testutil.TestStore(t)

	provider := testutil.NewMockProvider(
		"Safety",
		`{"eventType": "fall", "riskLevel": "low", "requiresEmergencyResponse": false, "recommendedAction": "check in"}`,
	)
	orch := NewOrchestrator(st, provider)

	result, err := orch.ProcessEvent(testutil.TestContext(t), Event{"deviceId": "D1022", "type": "fall"})
	if err != nil {
		t.Fatalf("ProcessEvent: %v", err)
	}
	safety, ok := result.(*SafetyResult)
	if !ok {
		t.Fatalf("expected *SafetyResult, got %T", result)
	}
	if safety.Status != "processed" {
		t.Errorf("status = %q, want processed", safety.Status)
	}

	fallback := NewOrchestrator(st, testutil.NewMockProvider("I cannot tell"))
	result, err = fallback.ProcessEvent(testutil.TestContext(t), Event{"foo": "bar"})
	if err != nil {
		t.Fatalf("ProcessEvent fallback: %v", err)
	}
	unhandled, ok := result.(*UnhandledResult)
	if !ok {
		t.Fatalf("expected *UnhandledResult, got %T", result)
	}
	if unhandled.Status != "unhandled" {
		t.Errorf("status = %q, want unhandled", unhandled.Status)
	}
}

func TestOrchestrator_EmergencyCoordination(t *testing.T) {
	provider := testutil.NewMockProvider("1. Call the caregiver.\n2. Call emergency services.")
	orch := NewOrchestrator(testutil.TestStore(t), provider)

	resp, err := orch.CoordinateEmergencyResponse(testutil.TestContext(t), Event{"deviceId": "D1022", "type": "fall"})
	if err != nil {
		t.Fatalf("CoordinateEmergencyResponse: %v", err)
	}
	if resp.Status != "emergency_response_initiated" {
		t.Errorf("status = %q, want emergency_response_initiated", resp.Status)
	}
	if resp.Plan == "" {
		t.Error("expected a plan")
	}
}

func TestEnhancedReminder_ResponseIntents(t *testing.T) {
	makeReminder := func(st store.Store) core.Reminder {
		r := core.Reminder{
			DeviceID:      "D7",
			Timestamp:     "2/1/2025 08:00",
			ReminderType:  core.ReminderMedication,
			ScheduledTime: "09:00:00",
		}
		if err := st.AddReminder(r); err != nil {
			t.Fatalf("AddReminder: %v", err)
		}
		return r
	}

	t.Run("accept acknowledges", func(t *testing.T) {
		st := testutil.EmptyStore(t)
		r := makeReminder(st)
		agent := NewEnhancedReminderAgent(st, testutil.NewMockProvider(
			`{"intent": "accept", "delayDuration": 0, "questions": [], "sentiment": "positive", "suggestedAction": "none"}`,
		))

		result, err := agent.ProcessResponse(testutil.TestContext(t), r, "okay, taking them now")
		if err != nil {
			t.Fatalf("ProcessResponse: %v", err)
		}
		if result.Status != "reminder_accepted" {
			t.Errorf("status = %q, want reminder_accepted", result.Status)
		}
		got := st.GetReminderData("D7", 0)
		if !got[0].Acknowledged || !got[0].ReminderSent {
			t.Errorf("reminder not acknowledged: %+v", got[0])
		}
	})

	t.Run("delay reschedules", func(t *testing.T) {
		st := testutil.EmptyStore(t)
		r := makeReminder(st)
		agent := NewEnhancedReminderAgent(st, testutil.NewMockProvider(
			`{"intent": "delay", "delayDuration": 30, "questions": [], "sentiment": "neutral", "suggestedAction": "reschedule"}`,
		))

		result, err := agent.ProcessResponse(testutil.TestContext(t), r, "ask me again in half an hour")
		if err != nil {
			t.Fatalf("ProcessResponse: %v", err)
		}
		if result.Status != "reminder_delayed" {
			t.Errorf("status = %q, want reminder_delayed", result.Status)
		}
		if result.Reminder == nil {
			t.Fatal("expected the delayed reminder in the result")
		}
		if len(st.GetReminderData("D7", 0)) != 2 {
			t.Error("expected the delayed copy to be stored")
		}
	})

	t.Run("question is answered", func(t *testing.T) {
		st := testutil.EmptyStore(t)
		r := makeReminder(st)
		agent := NewEnhancedReminderAgent(st, testutil.NewMockProvider(
			`{"intent": "question", "delayDuration": 0, "questions": ["What is this pill for?"], "sentiment": "neutral", "suggestedAction": "answer"}`,
			"This is your blood pressure medication. Ask your caregiver for details.",
		))

		result, err := agent.ProcessResponse(testutil.TestContext(t), r, "what is this pill for?")
		if err != nil {
			t.Fatalf("ProcessResponse: %v", err)
		}
		if result.Status != "question_answered" {
			t.Errorf("status = %q, want question_answered", result.Status)
		}
		if result.Answer == "" {
			t.Error("expected an answer")
		}
	})

	t.Run("delay without a duration declines", func(t *testing.T) {
		st := testutil.EmptyStore(t)
		r := makeReminder(st)
		agent := NewEnhancedReminderAgent(st, testutil.NewMockProvider(
			`{"intent": "delay", "delayDuration": 0, "questions": [], "sentiment": "neutral", "suggestedAction": "reschedule"}`,
		))

		result, err := agent.ProcessResponse(testutil.TestContext(t), r, "later, maybe")
		if err != nil {
			t.Fatalf("ProcessResponse: %v", err)
		}
		if result.Status != "reminder_declined" {
			t.Errorf("status = %q, want reminder_declined", result.Status)
		}
		if len(st.GetReminderData("D7", 0)) != 1 {
			t.Error("no delayed copy should be stored without a duration")
		}
	})

	t.Run("question without questions declines", func(t *testing.T) {
		st := testutil.EmptyStore(t)
		r := makeReminder(st)
		agent := NewEnhancedReminderAgent(st, testutil.NewMockProvider(
			`{"intent": "question", "delayDuration": 0, "questions": [], "sentiment": "neutral", "suggestedAction": "answer"}`,
		))

		result, err := agent.ProcessResponse(testutil.TestContext(t), r, "hmm?")
		if err != nil {
			t.Fatalf("ProcessResponse: %v", err)
		}
		if result.Status != "reminder_declined" {
			t.Errorf("status = %q, want reminder_declined", result.Status)
		}
	})

	t.Run("decline records feedback", func(t *testing.T) {
		st := testutil.EmptyStore(t)
		r := makeReminder(st)
		agent := NewEnhancedReminderAgent(st, testutil.NewMockProvider(
			`{"intent": "decline", "delayDuration": 0, "questions": [], "sentiment": "negative", "suggestedAction": "notify caregiver"}`,
		))

		result, err := agent.ProcessResponse(testutil.TestContext(t), r, "no, I feel sick")
		if err != nil {
			t.Fatalf("ProcessResponse: %v", err)
		}
		if result.Status != "reminder_declined" {
			t.Errorf("status = %q, want reminder_declined", result.Status)
		}
		got := st.GetReminderData("D7", 0)
		if got[0].Acknowledged {
			t.Error("declined reminder must not be acknowledged")
		}
		if got[0].Feedback != "no, I feel sick" {
			t.Errorf("feedback = %q, want resident's words", got[0].Feedback)
		}
	})
}

func TestEnhancedReminder_FeedbackNotFound(t *testing.T) {
	agent := NewEnhancedReminderAgent(testutil.EmptyStore(t), testutil.NewMockProvider())

	_, err := agent.ProcessFeedback(testutil.TestContext(t), "D404", "1/1/2025 00:00", "note")
	if err == nil {
		t.Fatal("expected error for unknown reminder")
	}
	if !strings.Contains(err.Error(), "not found") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestEnhancedReminder_FeedbackKeepsDeliveryFlags(t *testing.T) {
	st := testutil.EmptyStore(t)
	r := core.Reminder{
		DeviceID:      "D7",
		Timestamp:     "2/1/2025 08:00",
		ReminderType:  core.ReminderMedication,
		ScheduledTime: "09:00:00",
	}
	if err := st.AddReminder(r); err != nil {
		t.Fatalf("AddReminder: %v", err)
	}

	agent := NewEnhancedReminderAgent(st, testutil.NewMockProvider(
		`{"sentiment": "negative", "adjustmentNeeded": true, "suggestedChanges": [{"aspect": "timing", "currentValue": "09:00:00", "recommendedValue": "10:00:00", "reason": "resident sleeps late"}], "learningInsights": "prefers later mornings"}`,
	))

	result, err := agent.ProcessFeedback(testutil.TestContext(t), "D7", "2/1/2025 08:00", "too early for me")
	if err != nil {
		t.Fatalf("ProcessFeedback: %v", err)
	}
	if result.Status != "feedback_processed" {
		t.Errorf("status = %q, want feedback_processed", result.Status)
	}
	if !result.Analysis.AdjustmentNeeded || len(result.Analysis.SuggestedChanges) != 1 {
		t.Errorf("analysis not decoded: %+v", result.Analysis)
	}

	stored := st.GetReminderData("D7", 0)
	if stored[0].ReminderSent || stored[0].Acknowledged {
		t.Errorf("feedback must not mark the reminder delivered: %+v", stored[0])
	}
	if stored[0].Feedback != "too early for me" {
		t.Errorf("feedback = %q, want resident's words", stored[0].Feedback)
	}
}

func TestEnhancedReminder_ContextualReminderStored(t *testing.T) {
	st := testutil.EmptyStore(t)
	agent := NewEnhancedReminderAgent(st, testutil.NewMockProvider(
		`{"title": "Drink a glass of water", "reminderType": "Hydration", "contextualTrigger": "after lunch", "scheduledTime": "13:00:00", "reasoning": "lunch ends around 12:45", "voicePrompt": "How about a glass of water now that lunch is done?"}`,
	))

	result, err := agent.GenerateContextualReminder(testutil.TestContext(t), "D7", core.ReminderHydration)
	if err != nil {
		t.Fatalf("GenerateContextualReminder: %v", err)
	}
	if result.Status != "contextual_reminder_created" {
		t.Errorf("status = %q, want contextual_reminder_created", result.Status)
	}
	if result.Decision.VoicePrompt == "" {
		t.Error("expected a voice prompt in the decision")
	}

	stored := st.GetReminderData("D7", 0)
	if len(stored) != 1 {
		t.Fatalf("expected 1 stored reminder, got %d", len(stored))
	}
	if stored[0].ReminderType != core.ReminderHydration || stored[0].ContextualTrigger != "after lunch" {
		t.Errorf("stored reminder mismatch: %+v", stored[0])
	}
	if stored[0].ReminderSent || stored[0].Acknowledged {
		t.Errorf("new reminder must start undelivered: %+v", stored[0])
	}
}

func TestBehavioralAgent_PersistsPatterns(t *testing.T) {
	st := testutil.EmptyStore(t)
	provider := testutil.NewMockProvider(`{
		"patterns": [
			{"deviceId": "D1000", "patternType": "sleep", "startTime": "22:00", "endTime": "06:00", "daysOfWeek": ["Mon"], "location": "Bedroom", "confidence": 0.8, "description": "Sleeps from ten to six"},
			{"patternType": "meal", "startTime": "12:00", "endTime": "12:30", "daysOfWeek": ["Mon"], "location": "Kitchen", "confidence": 0.7, "description": "Lunch at noon"}
		],
		"anomalies": [
			{"timestamp": "1/20/2025 03:00", "description": "Kitchen activity at 3am", "severity": "medium", "recommendedAction": "ask about sleep quality"}
		]
	}`)
	agent := NewBehavioralAgent(st, provider)

	result, err := agent.AnalyzePatterns(testutil.TestContext(t), "D1000")
	if err != nil {
		t.Fatalf("AnalyzePatterns: %v", err)
	}
	if result.Status != "patterns_analyzed" {
		t.Errorf("status = %q, want patterns_analyzed", result.Status)
	}
	for _, p := range result.Patterns {
		if p.Description == "" {
			t.Errorf("pattern missing description: %+v", p)
		}
	}
	if len(result.Anomalies) != 1 {
		t.Fatalf("expected 1 anomaly, got %d", len(result.Anomalies))
	}
	if result.Anomalies[0].Severity != "medium" {
		t.Errorf("anomaly severity = %q, want medium", result.Anomalies[0].Severity)
	}

	stored := st.GetBehavioralPatterns("D1000")
	if len(stored) != 2 {
		t.Fatalf("expected 2 persisted patterns, got %d", len(stored))
	}
	for _, p := range stored {
		if p.DeviceID != "D1000" {
			t.Errorf("device not defaulted: %+v", p)
		}
		if p.LastUpdated == "" {
			t.Errorf("lastUpdated not stamped: %+v", p)
		}
	}
}

func TestBehavioralAgent_FallRiskInsufficientData(t *testing.T) {
	agent := NewBehavioralAgent(testutil.EmptyStore(t), testutil.NewMockProvider())

	result, err := agent.PredictFallRisk(testutil.TestContext(t), "D404")
	if err != nil {
		t.Fatalf("PredictFallRisk: %v", err)
	}
	if result.Status != "insufficient_data" {
		t.Errorf("status = %q, want insufficient_data", result.Status)
	}
}

func TestBehavioralAgent_FallRiskAssessment(t *testing.T) {
	provider := testutil.NewMockProvider(
		`{"riskScore": 70, "riskLevel": "high", "factors": ["rising step variability"], "recommendation": "supervised walking"}`,
	)
	agent := NewBehavioralAgent(testutil.TestStore(t), provider)

	result, err := agent.PredictFallRisk(testutil.TestContext(t), "D1000")
	if err != nil {
		t.Fatalf("PredictFallRisk: %v", err)
	}
	if result.Status != "risk_assessed" || result.RiskLevel != core.RiskHigh {
		t.Errorf("unexpected assessment: %+v", result)
	}
	if len(result.Trend) == 0 {
		t.Error("expected the risk trend alongside the assessment")
	}
}

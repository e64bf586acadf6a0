package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/eldersense/eldersense/internal/agents"
	"github.com/eldersense/eldersense/internal/core"
	"github.com/eldersense/eldersense/internal/notify"
)

// handleProcessEvent routes an arbitrary event through the orchestrator.
func (s *Server) handleProcessEvent(w http.ResponseWriter, r *http.Request) {
	var event agents.Event
	if err := json.NewDecoder(r.Body).Decode(&event); err != nil {
		s.respondJSON(w, http.StatusBadRequest, map[string]interface{}{
			"success": false,
			"error":   "invalid event payload",
		})
		return
	}

	result, err := s.orchestrator.ProcessEvent(r.Context(), event)
	if err != nil {
		s.respondJSON(w, http.StatusInternalServerError, map[string]interface{}{
			"success": false,
			"error":   "event processing failed",
		})
		return
	}

	s.raiseAlertsFor(event, result)
	s.respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"result":  result,
	})
}

// raiseAlertsFor turns elevated agent results into caregiver alerts.
func (s *Server) raiseAlertsFor(event agents.Event, result interface{}) {
	switch res := result.(type) {
	case *agents.HealthResult:
		if res.Status == "anomaly_detected" && res.Analysis.RequiresAttention {
			urgency := notify.UrgencyHigh
			if res.Analysis.Severity == core.SeveritySevere {
				urgency = notify.UrgencyCritical
			}
			s.alerts.RaiseHealthAnomaly(event.DeviceID(), res.DetailedAnalysis, res.Analysis.Recommendation, urgency)
		}
	case *agents.SafetyResult:
		if res.Status == "emergency" {
			if res.Assessment.EventType == core.SafetyEventFall {
				s.alerts.RaiseFall(event.DeviceID(), res.EmergencyPlan, res.Assessment.RecommendedAction, notify.UrgencyCritical)
			} else {
				s.alerts.RaiseEmergency(event.DeviceID(), res.Assessment.RecommendedAction, res.EmergencyPlan)
			}
		}
	}
}

// handleEmergency escalates directly, skipping classification.
func (s *Server) handleEmergency(w http.ResponseWriter, r *http.Request) {
	var alert agents.Event
	if err := json.NewDecoder(r.Body).Decode(&alert); err != nil {
		s.respondJSON(w, http.StatusBadRequest, map[string]interface{}{
			"success": false,
			"error":   "invalid alert payload",
		})
		return
	}

	response, err := s.orchestrator.CoordinateEmergencyResponse(r.Context(), alert)
	if err != nil {
		s.respondJSON(w, http.StatusInternalServerError, map[string]interface{}{
			"success": false,
			"error":   "emergency coordination failed",
		})
		return
	}

	s.alerts.RaiseEmergency(alert.DeviceID(), "Manual emergency escalation", response.Plan)
	s.respondJSON(w, http.StatusOK, map[string]interface{}{
		"success":  true,
		"response": response,
	})
}

// handleCreateReminder plans and stores a reminder with contextual hints.
func (s *Server) handleCreateReminder(w http.ResponseWriter, r *http.Request) {
	var event agents.Event
	if err := json.NewDecoder(r.Body).Decode(&event); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid reminder payload")
		return
	}

	result, err := s.enhanced.ProcessReminderEvent(r.Context(), event)
	if err != nil {
		s.respondError(w, http.StatusInternalServerError, "reminder creation failed")
		return
	}
	s.respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"result":  result,
	})
}

type reminderResponseRequest struct {
	DeviceID  string `json:"deviceId"`
	Timestamp string `json:"timestamp"`
	Response  string `json:"response"`
}

// handleReminderResponse interprets the resident's reply to a reminder.
// A missing reminder is reported in the result status, not as an HTTP error.
func (s *Server) handleReminderResponse(w http.ResponseWriter, r *http.Request) {
	var req reminderResponseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid response payload")
		return
	}

	reminder, ok := s.findReminder(req.DeviceID, req.Timestamp)
	if !ok {
		s.respondJSON(w, http.StatusOK, map[string]string{
			"status":  "error",
			"message": "reminder not found",
		})
		return
	}

	result, err := s.enhanced.ProcessResponse(r.Context(), reminder, req.Response)
	if err != nil {
		s.respondError(w, http.StatusInternalServerError, "response processing failed")
		return
	}
	s.respondJSON(w, http.StatusOK, result)
}

func (s *Server) findReminder(deviceID, timestamp string) (core.Reminder, bool) {
	for _, rem := range s.store.GetReminderData(deviceID, 0) {
		if rem.DeviceID == deviceID && rem.Timestamp == timestamp {
			return rem, true
		}
	}
	return core.Reminder{}, false
}

type reminderFeedbackRequest struct {
	DeviceID  string `json:"deviceId"`
	Timestamp string `json:"timestamp"`
	Feedback  string `json:"feedback"`
}

func (s *Server) handleReminderFeedback(w http.ResponseWriter, r *http.Request) {
	var req reminderFeedbackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid feedback payload")
		return
	}

	result, err := s.enhanced.ProcessFeedback(r.Context(), req.DeviceID, req.Timestamp, req.Feedback)
	if err != nil {
		if errors.Is(err, core.ErrReminderNotFound) {
			s.respondJSON(w, http.StatusOK, map[string]string{
				"status":  "error",
				"message": "reminder not found",
			})
			return
		}
		s.respondError(w, http.StatusInternalServerError, "feedback processing failed")
		return
	}
	s.respondJSON(w, http.StatusOK, result)
}

type contextualReminderRequest struct {
	DeviceID     string            `json:"deviceId"`
	ReminderType core.ReminderType `json:"reminderType"`
}

// handleContextualReminder plans and stores a reminder of the requested type
// anchored to the resident's routines.
func (s *Server) handleContextualReminder(w http.ResponseWriter, r *http.Request) {
	var req contextualReminderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid reminder payload")
		return
	}
	if req.DeviceID == "" {
		s.respondError(w, http.StatusBadRequest, "deviceId is required")
		return
	}
	if req.ReminderType == "" {
		req.ReminderType = core.ReminderOther
	}

	result, err := s.enhanced.GenerateContextualReminder(r.Context(), req.DeviceID, req.ReminderType)
	if err != nil {
		s.respondError(w, http.StatusInternalServerError, "reminder generation failed")
		return
	}
	s.respondJSON(w, http.StatusOK, result)
}

// handleTTSReminder returns spoken-prompt text for the device's next pending
// reminder. No audio is generated.
func (s *Server) handleTTSReminder(w http.ResponseWriter, r *http.Request) {
	deviceID := r.URL.Query().Get("id")
	if deviceID == "" {
		s.respondError(w, http.StatusBadRequest, "id is required")
		return
	}

	text, reminder, err := s.enhanced.GenerateTTSReminder(r.Context(), deviceID)
	if err != nil {
		s.respondError(w, http.StatusInternalServerError, "reminder generation failed")
		return
	}
	if reminder == nil {
		s.respondJSON(w, http.StatusOK, map[string]string{
			"status":  "no_pending",
			"message": "no pending reminders for device",
		})
		return
	}
	s.respondJSON(w, http.StatusOK, map[string]string{
		"status":       "ok",
		"message":      "text-to-speech audio is not generated",
		"reminderText": text,
	})
}

func (s *Server) handleAckAlert(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if !s.alerts.Acknowledge(id) {
		s.respondError(w, http.StatusNotFound, "alert not found")
		return
	}
	s.respondJSON(w, http.StatusOK, map[string]string{"status": "acknowledged"})
}

package api

import (
	"net/http"
)

func (s *Server) handleGetHealthTrends(w http.ResponseWriter, r *http.Request) {
	analysis, err := s.orchestrator.Health().AnalyzeHealthTrends(r.Context(), queryDevice(r))
	if err != nil {
		s.respondError(w, http.StatusInternalServerError, "trend analysis failed")
		return
	}
	s.respondJSON(w, http.StatusOK, map[string]string{"analysis": analysis})
}

func (s *Server) handleGetInactivityAnalysis(w http.ResponseWriter, r *http.Request) {
	analysis, err := s.orchestrator.Safety().AnalyzeInactivityPatterns(r.Context())
	if err != nil {
		s.respondError(w, http.StatusInternalServerError, "inactivity analysis failed")
		return
	}
	s.respondJSON(w, http.StatusOK, map[string]string{"analysis": analysis})
}

func (s *Server) handleGetComplianceReport(w http.ResponseWriter, r *http.Request) {
	report, err := s.orchestrator.Reminder().ComplianceReport(r.Context())
	if err != nil {
		s.respondError(w, http.StatusInternalServerError, "compliance report failed")
		return
	}
	s.respondJSON(w, http.StatusOK, map[string]interface{}{
		"stats":  s.store.GetReminderStats(),
		"report": report,
	})
}

func (s *Server) handleOptimizeSchedule(w http.ResponseWriter, r *http.Request) {
	plan, err := s.orchestrator.Reminder().OptimizeSchedule(r.Context(), queryDevice(r))
	if err != nil {
		s.respondError(w, http.StatusInternalServerError, "schedule optimization failed")
		return
	}
	s.respondJSON(w, http.StatusOK, map[string]string{"plan": plan})
}

func (s *Server) handleAnalyzePatterns(w http.ResponseWriter, r *http.Request) {
	deviceID := queryDevice(r)
	if deviceID == "" {
		s.respondError(w, http.StatusBadRequest, "deviceId is required")
		return
	}

	result, err := s.behavioral.AnalyzePatterns(r.Context(), deviceID)
	if err != nil {
		s.respondError(w, http.StatusInternalServerError, "pattern analysis failed")
		return
	}
	s.respondJSON(w, http.StatusOK, result)
}

func (s *Server) handleDetectAnomalies(w http.ResponseWriter, r *http.Request) {
	deviceID := queryDevice(r)
	if deviceID == "" {
		s.respondError(w, http.StatusBadRequest, "deviceId is required")
		return
	}

	result, err := s.behavioral.DetectAnomalies(r.Context(), deviceID)
	if err != nil {
		s.respondError(w, http.StatusInternalServerError, "anomaly detection failed")
		return
	}
	s.respondJSON(w, http.StatusOK, result)
}

func (s *Server) handlePredictFallRisk(w http.ResponseWriter, r *http.Request) {
	deviceID := queryDevice(r)
	if deviceID == "" {
		s.respondError(w, http.StatusBadRequest, "deviceId is required")
		return
	}

	result, err := s.behavioral.PredictFallRisk(r.Context(), deviceID)
	if err != nil {
		s.respondError(w, http.StatusInternalServerError, "fall risk prediction failed")
		return
	}
	s.respondJSON(w, http.StatusOK, result)
}

func (s *Server) handleOptimizeRoutine(w http.ResponseWriter, r *http.Request) {
	deviceID := queryDevice(r)
	if deviceID == "" {
		s.respondError(w, http.StatusBadRequest, "deviceId is required")
		return
	}

	plan, err := s.behavioral.OptimizeRoutine(r.Context(), deviceID)
	if err != nil {
		s.respondError(w, http.StatusInternalServerError, "routine optimization failed")
		return
	}
	s.respondJSON(w, http.StatusOK, map[string]string{"plan": plan})
}

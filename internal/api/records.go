package api

import (
	"net/http"
	"strconv"
)

// queryLimit reads the limit query parameter, falling back to def.
func queryLimit(r *http.Request, def int) int {
	v := r.URL.Query().Get("limit")
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return def
	}
	return n
}

func queryDevice(r *http.Request) string {
	return r.URL.Query().Get("deviceId")
}

func (s *Server) handleGetHealthData(w http.ResponseWriter, r *http.Request) {
	data := s.store.GetHealthData(queryDevice(r), queryLimit(r, 50))
	s.respondJSON(w, http.StatusOK, data)
}

func (s *Server) handleGetHealthAlerts(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, s.store.GetHealthAlerts(queryLimit(r, 10)))
}

func (s *Server) handleGetSafetyData(w http.ResponseWriter, r *http.Request) {
	data := s.store.GetSafetyData(queryDevice(r), queryLimit(r, 50))
	s.respondJSON(w, http.StatusOK, data)
}

func (s *Server) handleGetFallEvents(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, s.store.GetFallEvents(queryLimit(r, 10)))
}

// handleGetLocationActivity reports the four monitored rooms with activity
// counts and a staleness status each.
func (s *Server) handleGetLocationActivity(w http.ResponseWriter, r *http.Request) {
	sctx := s.orchestrator.Safety().BuildContext()
	s.respondJSON(w, http.StatusOK, sctx.RoomActivity)
}

func (s *Server) handleGetReminderData(w http.ResponseWriter, r *http.Request) {
	data := s.store.GetReminderData(queryDevice(r), queryLimit(r, 50))
	s.respondJSON(w, http.StatusOK, data)
}

func (s *Server) handleGetPendingReminders(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, s.store.GetPendingReminders())
}

func (s *Server) handleGetReminderStats(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, s.store.GetReminderStats())
}

func (s *Server) handleGetPatterns(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, s.store.GetBehavioralPatterns(queryDevice(r)))
}

func (s *Server) handleGetFallRiskTrend(w http.ResponseWriter, r *http.Request) {
	deviceID := queryDevice(r)
	if deviceID == "" {
		s.respondError(w, http.StatusBadRequest, "deviceId is required")
		return
	}
	s.respondJSON(w, http.StatusOK, s.store.GetFallRiskTrend(deviceID))
}

// handleGetAlerts lists recent caregiver alerts, newest first.
func (s *Server) handleGetAlerts(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, s.alerts.Recent(queryLimit(r, 50)))
}

func (s *Server) handleGetAlertStats(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, s.alerts.Stats())
}

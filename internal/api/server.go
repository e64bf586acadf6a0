// Package api provides the HTTP API server for ElderSense.
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/eldersense/eldersense/internal/agents"
	"github.com/eldersense/eldersense/internal/llm"
	"github.com/eldersense/eldersense/internal/logging"
	"github.com/eldersense/eldersense/internal/notify"
	"github.com/eldersense/eldersense/internal/store"
)

// Server is the HTTP API server
type Server struct {
	router     *chi.Mux
	httpServer *http.Server

	store        store.Store
	orchestrator *agents.Orchestrator
	enhanced     *agents.EnhancedReminderAgent
	behavioral   *agents.BehavioralAgent
	alerts       *notify.Service
	wsHub        *WebSocketHub
}

// Config for the server
type Config struct {
	Host     string
	Port     int
	Store    store.Store
	Provider llm.Provider
	Alerts   *notify.Service
}

// New creates a new API server
func New(cfg Config) *Server {
	alerts := cfg.Alerts
	if alerts == nil {
		alerts = notify.NewService()
	}

	s := &Server{
		store:        cfg.Store,
		orchestrator: agents.NewOrchestrator(cfg.Store, cfg.Provider),
		enhanced:     agents.NewEnhancedReminderAgent(cfg.Store, cfg.Provider),
		behavioral:   agents.NewBehavioralAgent(cfg.Store, cfg.Provider),
		alerts:       alerts,
		wsHub:        NewWebSocketHub(),
	}

	// Alerts reach WebSocket clients as they are raised.
	alerts.Subscribe(&hubSubscriber{hub: s.wsHub})

	s.setupRouter()

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 150 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s
}

// Alerts returns the alert service the server raises caregiver alerts on.
func (s *Server) Alerts() *notify.Service {
	return s.alerts
}

// setupRouter configures all routes
func (s *Server) setupRouter() {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	// Completion calls can take up to two minutes on local models.
	r.Use(middleware.Timeout(150 * time.Second))

	// CORS
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// API routes
	r.Route("/api/v1", func(r chi.Router) {
		// Event processing
		r.Post("/agent", s.handleProcessEvent)
		r.Post("/emergency", s.handleEmergency)
		r.Post("/chatbot", s.handleChatbot)

		// Health
		r.Get("/health/data", s.handleGetHealthData)
		r.Get("/health/alerts", s.handleGetHealthAlerts)
		r.Get("/health/trends", s.handleGetHealthTrends)

		// Safety
		r.Get("/safety/data", s.handleGetSafetyData)
		r.Get("/safety/falls", s.handleGetFallEvents)
		r.Get("/safety/locations", s.handleGetLocationActivity)
		r.Get("/safety/inactivity", s.handleGetInactivityAnalysis)

		// Reminders
		r.Get("/reminders/data", s.handleGetReminderData)
		r.Get("/reminders/pending", s.handleGetPendingReminders)
		r.Get("/reminders/stats", s.handleGetReminderStats)
		r.Get("/reminders/compliance", s.handleGetComplianceReport)
		r.Get("/reminders/optimize", s.handleOptimizeSchedule)
		r.Post("/reminders", s.handleCreateReminder)
		r.Post("/reminders/response", s.handleReminderResponse)
		r.Post("/reminders/feedback", s.handleReminderFeedback)
		r.Post("/reminders/contextual", s.handleContextualReminder)

		// Behavioral patterns and gait
		r.Get("/patterns", s.handleGetPatterns)
		r.Post("/patterns/analyze", s.handleAnalyzePatterns)
		r.Get("/patterns/anomalies", s.handleDetectAnomalies)
		r.Get("/gait/trend", s.handleGetFallRiskTrend)
		r.Get("/gait/risk", s.handlePredictFallRisk)
		r.Get("/routine/optimize", s.handleOptimizeRoutine)

		// TTS
		r.Get("/tts/reminder", s.handleTTSReminder)

		// Caregiver alerts
		r.Get("/notifications", s.handleGetAlerts)
		r.Get("/notifications/stats", s.handleGetAlertStats)
		r.Post("/notifications/{id}/ack", s.handleAckAlert)
	})

	// WebSocket
	r.Get("/ws", s.handleWebSocket)

	s.router = r
}

// Start starts the HTTP server
func (s *Server) Start() error {
	go s.wsHub.Run()

	logging.Info("API server listening on http://%s", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop gracefully stops the server
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// Broadcast sends a message to all WebSocket clients
func (s *Server) Broadcast(msgType string, data interface{}) {
	s.wsHub.Broadcast(WebSocketMessage{
		Type:      msgType,
		Data:      data,
		Timestamp: time.Now(),
	})
}

// --- Response helpers ---

func (s *Server) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func (s *Server) respondError(w http.ResponseWriter, status int, message string) {
	s.respondJSON(w, status, map[string]string{"error": message})
}

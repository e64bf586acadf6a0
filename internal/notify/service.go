package notify

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// maxRetained caps the in-memory alert history.
const maxRetained = 200

// Subscriber receives alerts in real-time
type Subscriber interface {
	Send(alert Alert) error
	ID() string
}

// Service manages caregiver alerts. Alerts are held in memory, newest first,
// and fanned out to subscribers as they are raised.
type Service struct {
	mu          sync.RWMutex
	alerts      []Alert
	subscribers map[string]Subscriber
}

// NewService creates a new alert service
func NewService() *Service {
	return &Service{
		subscribers: make(map[string]Subscriber),
	}
}

// Subscribe adds a subscriber for real-time alerts
func (s *Service) Subscribe(sub Subscriber) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subscribers[sub.ID()] = sub
}

// Unsubscribe removes a subscriber
func (s *Service) Unsubscribe(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.subscribers, id)
}

// Raise records and broadcasts a new alert
func (s *Service) Raise(req CreateAlertRequest) *Alert {
	alert := Alert{
		ID:              uuid.New().String(),
		Type:            req.Type,
		DeviceID:        req.DeviceID,
		Title:           req.Title,
		Body:            req.Body,
		Urgency:         req.Urgency,
		RecommendedStep: req.RecommendedStep,
		CreatedAt:       time.Now().UTC(),
	}
	if alert.Urgency == 0 {
		alert.Urgency = UrgencyMedium
	}

	s.mu.Lock()
	s.alerts = append([]Alert{alert}, s.alerts...)
	if len(s.alerts) > maxRetained {
		s.alerts = s.alerts[:maxRetained]
	}
	s.mu.Unlock()

	s.broadcast(alert)
	return &alert
}

// broadcast sends the alert to all subscribers
func (s *Service) broadcast(a Alert) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, sub := range s.subscribers {
		go func(subscriber Subscriber) {
			subscriber.Send(a)
		}(sub)
	}
}

// Recent returns the most recent alerts, newest first
func (s *Service) Recent(limit int) []Alert {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if limit <= 0 || limit > len(s.alerts) {
		limit = len(s.alerts)
	}
	out := make([]Alert, limit)
	copy(out, s.alerts[:limit])
	return out
}

// Unacknowledged returns alerts no caregiver has acknowledged yet
func (s *Service) Unacknowledged() []Alert {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []Alert
	for _, a := range s.alerts {
		if !a.Acknowledged {
			out = append(out, a)
		}
	}
	return out
}

// Acknowledge marks an alert as seen. Returns false if the ID is unknown.
func (s *Service) Acknowledge(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.alerts {
		if s.alerts[i].ID == id {
			if !s.alerts[i].Acknowledged {
				now := time.Now().UTC()
				s.alerts[i].Acknowledged = true
				s.alerts[i].AcknowledgedAt = &now
			}
			return true
		}
	}
	return false
}

// Stats returns alert statistics
func (s *Service) Stats() AlertStats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := AlertStats{
		Total:     len(s.alerts),
		ByType:    make(map[string]int),
		ByUrgency: make(map[int]int),
	}
	for _, a := range s.alerts {
		stats.ByType[string(a.Type)]++
		stats.ByUrgency[a.Urgency]++
		if !a.Acknowledged {
			stats.Unacknowledged++
		}
	}
	return stats
}

// RaiseHealthAnomaly raises a health anomaly alert
func (s *Service) RaiseHealthAnomaly(deviceID, body, recommendation string, urgency int) *Alert {
	return s.Raise(CreateAlertRequest{
		Type:            AlertHealthAnomaly,
		DeviceID:        deviceID,
		Title:           "Health anomaly detected",
		Body:            body,
		Urgency:         urgency,
		RecommendedStep: recommendation,
	})
}

// RaiseFall raises a fall alert
func (s *Service) RaiseFall(deviceID, body, action string, urgency int) *Alert {
	return s.Raise(CreateAlertRequest{
		Type:            AlertFallDetected,
		DeviceID:        deviceID,
		Title:           "Fall detected",
		Body:            body,
		Urgency:         urgency,
		RecommendedStep: action,
	})
}

// RaiseEmergency raises a critical-urgency emergency alert
func (s *Service) RaiseEmergency(deviceID, body, plan string) *Alert {
	return s.Raise(CreateAlertRequest{
		Type:            AlertEmergency,
		DeviceID:        deviceID,
		Title:           "Emergency response required",
		Body:            body,
		Urgency:         UrgencyCritical,
		RecommendedStep: plan,
	})
}

// RaiseSystem raises a system alert
func (s *Service) RaiseSystem(title, body string) *Alert {
	return s.Raise(CreateAlertRequest{
		Type:    AlertSystem,
		Title:   title,
		Body:    body,
		Urgency: UrgencyMedium,
	})
}

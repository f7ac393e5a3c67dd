package store

import (
	"fmt"

	"backend-checkin/internal/models"
)

func (s *Store) GetAnomaly(id int) (models.Anomaly, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.anomalies.get(id)
}

func (s *Store) CreateAnomaly(in models.InsertAnomaly) models.Anomaly {
	s.mu.Lock()
	defer s.mu.Unlock()

	severity := in.Severity
	if severity == "" {
		severity = "low"
	}

	return s.anomalies.insert(func(id int) models.Anomaly {
		return models.Anomaly{
			ID:          id,
			Type:        in.Type,
			Description: in.Description,
			Severity:    severity,
			Status:      "detected",
			DetectedAt:  s.now(),
			Metadata:    in.Metadata,
			Actions:     []string{},
		}
	})
}

func (s *Store) GetAllAnomalies() []models.Anomaly {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.anomalies.all()
}

// ResolveAnomaly appends the resolution to the action log and marks
// the anomaly resolved. Resolving again appends another entry; the
// log is never overwritten.
func (s *Store) ResolveAnomaly(id, userID int, resolution string) (models.Anomaly, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	anomaly, ok := s.anomalies.get(id)
	if !ok {
		return models.Anomaly{}, fmt.Errorf("anomaly %d: %w", id, ErrNotFound)
	}

	now := s.now()
	anomaly.Status = "resolved"
	anomaly.ResolvedAt = &now
	anomaly.ResolvedBy = &userID
	anomaly.Actions = append(append([]string{}, anomaly.Actions...), resolution)
	s.anomalies.put(id, anomaly)
	return anomaly, nil
}

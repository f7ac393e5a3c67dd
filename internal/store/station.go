package store

import (
	"fmt"

	"backend-checkin/internal/models"
)

func (s *Store) GetStation(id int) (models.Station, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stations.get(id)
}

func (s *Store) CreateStation(in models.InsertStation) models.Station {
	s.mu.Lock()
	defer s.mu.Unlock()

	status := in.Status
	if status == "" {
		status = "inactive"
	}

	return s.stations.insert(func(id int) models.Station {
		return models.Station{
			ID:         id,
			Number:     in.Number,
			Status:     status,
			OperatorID: in.OperatorID,
		}
	})
}

func (s *Store) GetAllStations() []models.Station {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stations.all()
}

func (s *Store) UpdateStationStatus(id int, status string, operatorID *int) (models.Station, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	station, ok := s.stations.get(id)
	if !ok {
		return models.Station{}, fmt.Errorf("station %d: %w", id, ErrNotFound)
	}

	station.Status = status
	if operatorID != nil {
		station.OperatorID = operatorID
	}
	s.stations.put(id, station)
	return station, nil
}

// IncrementStationVotersProcessed bumps the monotonic processed
// counter by one.
func (s *Store) IncrementStationVotersProcessed(id int) (models.Station, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	station, ok := s.stations.get(id)
	if !ok {
		return models.Station{}, fmt.Errorf("station %d: %w", id, ErrNotFound)
	}

	station.VotersProcessed++
	s.stations.put(id, station)
	return station, nil
}

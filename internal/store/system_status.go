package store

import (
	"fmt"

	"backend-checkin/internal/models"
)

func (s *Store) GetSystemStatus(id int) (models.SystemStatus, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.systemStatuses.get(id)
}

func (s *Store) GetSystemStatusByComponent(component string) (models.SystemStatus, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.systemStatuses.find(func(st models.SystemStatus) bool {
		return st.Component == component
	})
}

func (s *Store) CreateSystemStatus(in models.InsertSystemStatus) models.SystemStatus {
	s.mu.Lock()
	defer s.mu.Unlock()

	status := in.Status
	if status == "" {
		status = "operational"
	}

	return s.systemStatuses.insert(func(id int) models.SystemStatus {
		return models.SystemStatus{
			ID:          id,
			Component:   in.Component,
			Status:      status,
			LastChecked: s.now(),
			Notes:       in.Notes,
		}
	})
}

func (s *Store) GetAllSystemStatuses() []models.SystemStatus {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.systemStatuses.all()
}

func (s *Store) UpdateSystemStatus(id int, status, notes string) (models.SystemStatus, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, ok := s.systemStatuses.get(id)
	if !ok {
		return models.SystemStatus{}, fmt.Errorf("system status %d: %w", id, ErrNotFound)
	}

	st.Status = status
	st.LastChecked = s.now()
	if notes != "" {
		st.Notes = notes
	}
	s.systemStatuses.put(id, st)
	return st, nil
}

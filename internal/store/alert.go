package store

import "backend-checkin/internal/models"

func (s *Store) GetAlert(id int) (models.Alert, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.alerts.get(id)
}

func (s *Store) CreateAlert(in models.InsertAlert) models.Alert {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.alerts.insert(func(id int) models.Alert {
		return models.Alert{
			ID:        id,
			Type:      in.Type,
			Title:     in.Title,
			Message:   in.Message,
			Timestamp: s.now(),
		}
	})
}

func (s *Store) GetAllAlerts() []models.Alert {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.alerts.all()
}

func (s *Store) GetMessage(id int) (models.Message, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.messages.get(id)
}

func (s *Store) CreateMessage(in models.InsertMessage) models.Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.messages.insert(func(id int) models.Message {
		return models.Message{
			ID:        id,
			Sender:    in.Sender,
			Message:   in.Message,
			Timestamp: s.now(),
		}
	})
}

func (s *Store) GetAllMessages() []models.Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.messages.all()
}

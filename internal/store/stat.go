package store

import (
	"time"

	"backend-checkin/internal/models"
)

func (s *Store) GetStat(id int) (models.Stat, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stats.get(id)
}

func (s *Store) CreateStat(in models.InsertStat) models.Stat {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stats.insert(func(id int) models.Stat {
		return models.Stat{
			ID:                    id,
			Date:                  s.now(),
			Hour:                  in.Hour,
			VotersProcessed:       in.VotersProcessed,
			AverageProcessingTime: in.AverageProcessingTime,
			WaitTime:              in.WaitTime,
			Throughput:            in.Throughput,
		}
	})
}

// GetTodayStats returns the hourly rows stamped since local midnight.
func (s *Store) GetTodayStats() []models.Stat {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return s.stats.filter(func(st models.Stat) bool {
		return !st.Date.Before(midnight)
	})
}

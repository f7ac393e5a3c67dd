package store

import (
	"fmt"

	"backend-checkin/internal/models"
)

func (s *Store) GetQueueItem(id int) (models.QueueItem, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.queueItems.get(id)
}

func (s *Store) CreateQueueItem(in models.InsertQueueItem) models.QueueItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	status := in.Status
	if status == "" {
		status = "waiting"
	}
	qtype := in.Type
	if qtype == "" {
		qtype = "standard"
	}

	return s.queueItems.insert(func(id int) models.QueueItem {
		return models.QueueItem{
			ID:              id,
			VoterID:         in.VoterID,
			Number:          in.Number,
			Status:          status,
			Type:            qtype,
			WaitTimeMinutes: in.WaitTimeMinutes,
			EnteredAt:       s.now(),
		}
	})
}

func (s *Store) GetAllQueueItems() []models.QueueItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.queueItems.all()
}

// UpdateQueueItemStatus moves an entry to the given status. Reaching
// completed or issue also stamps processedAt/processedBy.
func (s *Store) UpdateQueueItemStatus(id int, status string, userID *int) (models.QueueItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, ok := s.queueItems.get(id)
	if !ok {
		return models.QueueItem{}, fmt.Errorf("queue item %d: %w", id, ErrNotFound)
	}

	item.Status = status
	if status == "completed" || status == "issue" {
		now := s.now()
		item.ProcessedAt = &now
		item.ProcessedBy = userID
	}
	s.queueItems.put(id, item)
	return item, nil
}

// GetQueueStats counts entries per status. Recomputed on every call,
// O(n) over the queue.
func (s *Store) GetQueueStats() models.QueueStats {
	s.mu.Lock()
	defer s.mu.Unlock()

	var stats models.QueueStats
	for _, item := range s.queueItems.all() {
		switch item.Status {
		case "waiting":
			stats.Waiting++
		case "in_progress":
			stats.InProgress++
		case "completed":
			stats.Completed++
		}
	}
	return stats
}

package store

import (
	"fmt"

	"backend-checkin/internal/models"
)

func (s *Store) GetIssue(id int) (models.Issue, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.issues.get(id)
}

func (s *Store) CreateIssue(in models.InsertIssue) models.Issue {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.issues.insert(func(id int) models.Issue {
		return models.Issue{
			ID:          id,
			Type:        in.Type,
			Description: in.Description,
			Status:      "open",
			ReportedAt:  s.now(),
			ReportedBy:  in.ReportedBy,
		}
	})
}

func (s *Store) GetAllIssues() []models.Issue {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.issues.all()
}

// ResolveIssue closes the issue and records how long it was open,
// floored to whole minutes.
func (s *Store) ResolveIssue(id, userID int) (models.Issue, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	issue, ok := s.issues.get(id)
	if !ok {
		return models.Issue{}, fmt.Errorf("issue %d: %w", id, ErrNotFound)
	}

	resolvedAt := s.now()
	resolutionTime := int(resolvedAt.Sub(issue.ReportedAt).Milliseconds() / 60000)

	issue.Status = "resolved"
	issue.ResolvedAt = &resolvedAt
	issue.ResolvedBy = &userID
	issue.ResolutionTime = &resolutionTime
	s.issues.put(id, issue)
	return issue, nil
}

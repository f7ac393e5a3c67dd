package store

import (
	"fmt"

	"backend-checkin/internal/models"
)

func (s *Store) GetVoter(id int) (models.Voter, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.voters.get(id)
}

func (s *Store) GetVoterByVoterID(voterID string) (models.Voter, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.voters.find(func(v models.Voter) bool {
		return v.VoterID == voterID
	})
}

func (s *Store) CreateVoter(in models.InsertVoter) models.Voter {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.voters.insert(func(id int) models.Voter {
		return models.Voter{
			ID:          id,
			VoterID:     in.VoterID,
			Name:        in.Name,
			DateOfBirth: in.DateOfBirth,
			Address:     in.Address,
			Precinct:    in.Precinct,
			CheckedIn:   false,
		}
	})
}

func (s *Store) GetAllVoters() []models.Voter {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.voters.all()
}

// CheckInVoter flips checkedIn to true and stamps the time and
// operator. Checking in an already checked-in voter re-stamps both;
// the transition never reverses.
func (s *Store) CheckInVoter(id, userID int) (models.Voter, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	voter, ok := s.voters.get(id)
	if !ok {
		return models.Voter{}, fmt.Errorf("voter %d: %w", id, ErrNotFound)
	}

	now := s.now()
	voter.CheckedIn = true
	voter.CheckedInAt = &now
	voter.CheckedInBy = &userID
	s.voters.put(id, voter)
	return voter, nil
}

package store

import (
	"fmt"

	"github.com/google/uuid"

	"backend-checkin/internal/models"
)

func (s *Store) GetBiometric(id int) (models.Biometric, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.biometrics.get(id)
}

func (s *Store) GetBiometricByVoterID(voterID int) (models.Biometric, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.biometrics.find(func(b models.Biometric) bool {
		return b.VoterID == voterID
	})
}

// CreateBiometric stores an unverified record. When the caller omits
// the data reference a placeholder is generated; the actual capture
// hardware does not exist in this demo.
func (s *Store) CreateBiometric(in models.InsertBiometric) models.Biometric {
	s.mu.Lock()
	defer s.mu.Unlock()

	ref := in.DataReference
	if ref == "" {
		ref = in.Type + "_" + uuid.NewString()
	}

	now := s.now()
	return s.biometrics.insert(func(id int) models.Biometric {
		return models.Biometric{
			ID:            id,
			VoterID:       in.VoterID,
			Type:          in.Type,
			DataReference: ref,
			Verified:      false,
			CreatedAt:     now,
			UpdatedAt:     now,
		}
	})
}

// VerifyBiometric is a one-way flip; there is no un-verify.
func (s *Store) VerifyBiometric(id, userID int) (models.Biometric, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	biometric, ok := s.biometrics.get(id)
	if !ok {
		return models.Biometric{}, fmt.Errorf("biometric %d: %w", id, ErrNotFound)
	}

	now := s.now()
	biometric.Verified = true
	biometric.VerifiedAt = &now
	biometric.VerifiedBy = &userID
	biometric.UpdatedAt = now
	s.biometrics.put(id, biometric)
	return biometric, nil
}

package store

import (
	"fmt"

	"backend-checkin/internal/models"
)

func (s *Store) GetAccessibilityPreference(id int) (models.AccessibilityPreference, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.accessibilityPrefs.get(id)
}

func (s *Store) GetAccessibilityPreferenceByVoterID(voterID int) (models.AccessibilityPreference, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.accessibilityPrefs.find(func(p models.AccessibilityPreference) bool {
		return p.VoterID == voterID
	})
}

func (s *Store) CreateAccessibilityPreference(in models.InsertAccessibilityPreference) models.AccessibilityPreference {
	s.mu.Lock()
	defer s.mu.Unlock()

	lang := in.LanguagePreference
	if lang == "" {
		lang = "english"
	}

	now := s.now()
	return s.accessibilityPrefs.insert(func(id int) models.AccessibilityPreference {
		return models.AccessibilityPreference{
			ID:                 id,
			VoterID:            in.VoterID,
			VisualAssistance:   in.VisualAssistance,
			HearingAssistance:  in.HearingAssistance,
			MobilityAssistance: in.MobilityAssistance,
			LanguagePreference: lang,
			OtherNeeds:         in.OtherNeeds,
			CreatedAt:          now,
			UpdatedAt:          now,
		}
	})
}

// UpdateAccessibilityPreference applies a partial update; nil fields
// keep the stored value.
func (s *Store) UpdateAccessibilityPreference(id int, in models.UpdateAccessibilityPreference) (models.AccessibilityPreference, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	pref, ok := s.accessibilityPrefs.get(id)
	if !ok {
		return models.AccessibilityPreference{}, fmt.Errorf("accessibility preference %d: %w", id, ErrNotFound)
	}

	if in.VisualAssistance != nil {
		pref.VisualAssistance = *in.VisualAssistance
	}
	if in.HearingAssistance != nil {
		pref.HearingAssistance = *in.HearingAssistance
	}
	if in.MobilityAssistance != nil {
		pref.MobilityAssistance = *in.MobilityAssistance
	}
	if in.LanguagePreference != nil {
		pref.LanguagePreference = *in.LanguagePreference
	}
	if in.OtherNeeds != nil {
		pref.OtherNeeds = *in.OtherNeeds
	}
	pref.UpdatedAt = s.now()
	s.accessibilityPrefs.put(id, pref)
	return pref, nil
}

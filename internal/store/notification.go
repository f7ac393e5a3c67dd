package store

import (
	"fmt"
	"strconv"

	"backend-checkin/internal/models"
)

func (s *Store) GetMobileNotification(id int) (models.MobileNotification, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mobileNotifications.get(id)
}

func (s *Store) GetMobileNotificationByVoterID(voterID int) (models.MobileNotification, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mobileNotifications.find(func(n models.MobileNotification) bool {
		return n.VoterID == voterID
	})
}

// CreateMobileNotification registers a contact and generates a six
// digit verification code from the store's random source.
func (s *Store) CreateMobileNotification(in models.InsertMobileNotification) models.MobileNotification {
	s.mu.Lock()
	defer s.mu.Unlock()

	ntype := in.NotificationType
	if ntype == "" {
		ntype = "sms"
	}
	code := strconv.Itoa(100000 + s.rng.Intn(900000))

	return s.mobileNotifications.insert(func(id int) models.MobileNotification {
		return models.MobileNotification{
			ID:               id,
			VoterID:          in.VoterID,
			PhoneNumber:      in.PhoneNumber,
			Email:            in.Email,
			OptedIn:          in.OptedIn,
			VerificationCode: code,
			Verified:         false,
			NotificationType: ntype,
			CreatedAt:        s.now(),
		}
	})
}

// VerifyMobileNotification flips verified on an exact code match.
// A mismatch leaves the record untouched.
func (s *Store) VerifyMobileNotification(id int, code string) (models.MobileNotification, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	notification, ok := s.mobileNotifications.get(id)
	if !ok {
		return models.MobileNotification{}, fmt.Errorf("mobile notification %d: %w", id, ErrNotFound)
	}
	if notification.VerificationCode != code {
		return models.MobileNotification{}, ErrInvalidCode
	}

	notification.Verified = true
	s.mobileNotifications.put(id, notification)
	return notification, nil
}

// SendNotification simulates an SMS/email delivery. Real delivery
// would call out to a provider here; the demo only stamps
// lastNotified on verified contacts.
func (s *Store) SendNotification(id int, message string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	notification, ok := s.mobileNotifications.get(id)
	if !ok {
		return fmt.Errorf("mobile notification %d: %w", id, ErrNotFound)
	}
	if !notification.Verified {
		return fmt.Errorf("mobile notification %d: %w", id, ErrNotVerified)
	}

	now := s.now()
	notification.LastNotified = &now
	s.mobileNotifications.put(id, notification)
	return nil
}

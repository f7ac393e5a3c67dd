package models

import "time"

type MobileNotification struct {
	ID               int        `json:"id"`
	VoterID          int        `json:"voterId"`
	PhoneNumber      string     `json:"phoneNumber"`
	Email            string     `json:"email"`
	OptedIn          bool       `json:"optedIn"`
	VerificationCode string     `json:"verificationCode"`
	Verified         bool       `json:"verified"`
	NotificationType string     `json:"notificationType"` // sms, email
	LastNotified     *time.Time `json:"lastNotified"`
	CreatedAt        time.Time  `json:"createdAt"`
}

type InsertMobileNotification struct {
	VoterID          int    `json:"voterId"`
	PhoneNumber      string `json:"phoneNumber"`
	Email            string `json:"email"`
	OptedIn          bool   `json:"optedIn"`
	NotificationType string `json:"notificationType"`
}

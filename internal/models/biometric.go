package models

import "time"

type Biometric struct {
	ID            int        `json:"id"`
	VoterID       int        `json:"voterId"`
	Type          string     `json:"type"` // fingerprint, facial_recognition
	DataReference string     `json:"dataReference"`
	Verified      bool       `json:"verified"`
	VerifiedAt    *time.Time `json:"verifiedAt"`
	VerifiedBy    *int       `json:"verifiedBy"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
}

type InsertBiometric struct {
	VoterID       int    `json:"voterId"`
	Type          string `json:"type"`
	DataReference string `json:"dataReference"`
}

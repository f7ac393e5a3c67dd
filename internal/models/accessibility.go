package models

import "time"

type AccessibilityPreference struct {
	ID                 int       `json:"id"`
	VoterID            int       `json:"voterId"`
	VisualAssistance   bool      `json:"visualAssistance"`
	HearingAssistance  bool      `json:"hearingAssistance"`
	MobilityAssistance bool      `json:"mobilityAssistance"`
	LanguagePreference string    `json:"languagePreference"`
	OtherNeeds         string    `json:"otherNeeds"`
	CreatedAt          time.Time `json:"createdAt"`
	UpdatedAt          time.Time `json:"updatedAt"`
}

type InsertAccessibilityPreference struct {
	VoterID            int    `json:"voterId"`
	VisualAssistance   bool   `json:"visualAssistance"`
	HearingAssistance  bool   `json:"hearingAssistance"`
	MobilityAssistance bool   `json:"mobilityAssistance"`
	LanguagePreference string `json:"languagePreference"`
	OtherNeeds         string `json:"otherNeeds"`
}

// UpdateAccessibilityPreference carries a partial update; nil fields
// keep the stored value.
type UpdateAccessibilityPreference struct {
	VisualAssistance   *bool   `json:"visualAssistance"`
	HearingAssistance  *bool   `json:"hearingAssistance"`
	MobilityAssistance *bool   `json:"mobilityAssistance"`
	LanguagePreference *string `json:"languagePreference"`
	OtherNeeds         *string `json:"otherNeeds"`
}

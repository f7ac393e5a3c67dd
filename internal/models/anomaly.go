package models

import "time"

type Anomaly struct {
	ID          int            `json:"id"`
	Type        string         `json:"type"`     // unusual_pattern, security_threat, performance_issue
	Description string         `json:"description"`
	Severity    string         `json:"severity"` // low, medium, high
	Status      string         `json:"status"`   // detected, investigating, resolved, false_positive
	DetectedAt  time.Time      `json:"detectedAt"`
	ResolvedAt  *time.Time     `json:"resolvedAt"`
	ResolvedBy  *int           `json:"resolvedBy"`
	Metadata    map[string]any `json:"metadata"`
	Actions     []string       `json:"actions"`
}

type InsertAnomaly struct {
	Type        string         `json:"type"`
	Description string         `json:"description"`
	Severity    string         `json:"severity"`
	Metadata    map[string]any `json:"metadata"`
}

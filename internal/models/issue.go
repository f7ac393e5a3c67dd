package models

import "time"

type Issue struct {
	ID             int        `json:"id"`
	Type           string     `json:"type"` // id_verification, address_discrepancy, scanner_malfunction, ...
	Description    string     `json:"description"`
	Status         string     `json:"status"` // open, resolved
	ReportedAt     time.Time  `json:"reportedAt"`
	ReportedBy     *int       `json:"reportedBy"`
	ResolvedAt     *time.Time `json:"resolvedAt"`
	ResolvedBy     *int       `json:"resolvedBy"`
	ResolutionTime *int       `json:"resolutionTime"` // minutes
}

type InsertIssue struct {
	Type        string `json:"type"`
	Description string `json:"description"`
	ReportedBy  *int   `json:"reportedBy"`
}

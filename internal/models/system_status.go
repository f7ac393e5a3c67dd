package models

import "time"

type SystemStatus struct {
	ID          int       `json:"id"`
	Component   string    `json:"component"` // voter_database, id_scanner, internet, ...
	Status      string    `json:"status"`    // operational, degraded, down
	LastChecked time.Time `json:"lastChecked"`
	Notes       string    `json:"notes"`
}

type InsertSystemStatus struct {
	Component string `json:"component"`
	Status    string `json:"status"`
	Notes     string `json:"notes"`
}

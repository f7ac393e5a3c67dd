package models

import "time"

type Voter struct {
	ID          int        `json:"id"`
	VoterID     string     `json:"voterId"`
	Name        string     `json:"name"`
	DateOfBirth string     `json:"dateOfBirth"`
	Address     string     `json:"address"`
	Precinct    string     `json:"precinct"`
	CheckedIn   bool       `json:"checkedIn"`
	CheckedInAt *time.Time `json:"checkedInAt"`
	CheckedInBy *int       `json:"checkedInBy"`
}

type InsertVoter struct {
	VoterID     string `json:"voterId"`
	Name        string `json:"name"`
	DateOfBirth string `json:"dateOfBirth"`
	Address     string `json:"address"`
	Precinct    string `json:"precinct"`
}

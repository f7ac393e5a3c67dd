package models

import "time"

type QueueItem struct {
	ID              int        `json:"id"`
	VoterID         int        `json:"voterId"`
	Number          int        `json:"number"`
	Status          string     `json:"status"` // waiting, in_progress, completed, issue, special_assistance
	Type            string     `json:"type"`   // standard, provisional, special_assistance
	WaitTimeMinutes *int       `json:"waitTimeMinutes"`
	EnteredAt       time.Time  `json:"enteredAt"`
	ProcessedAt     *time.Time `json:"processedAt"`
	ProcessedBy     *int       `json:"processedBy"`
}

type InsertQueueItem struct {
	VoterID         int    `json:"voterId"`
	Number          int    `json:"number"`
	Status          string `json:"status"`
	Type            string `json:"type"`
	WaitTimeMinutes *int   `json:"waitTimeMinutes"`
}

// QueueItemWithVoter joins the queue entry with its voter record
// for the queue listing endpoint.
type QueueItemWithVoter struct {
	QueueItem
	Voter *Voter `json:"voter"`
}

type QueueStats struct {
	Waiting    int `json:"waiting"`
	InProgress int `json:"inProgress"`
	Completed  int `json:"completed"`
}

package models

import "time"

type BlockchainTransaction struct {
	ID               int            `json:"id"`
	TransactionType  string         `json:"transactionType"` // voter_verification, check_in, vote_cast
	TransactionHash  string         `json:"transactionHash"`
	BlockNumber      *int           `json:"blockNumber"`
	VoterID          *int           `json:"voterId"`
	PollingStationID string         `json:"pollingStationId"`
	Timestamp        time.Time      `json:"timestamp"`
	Metadata         map[string]any `json:"metadata"`
	Verified         bool           `json:"verified"`
}

type InsertBlockchainTransaction struct {
	TransactionType  string         `json:"transactionType"`
	TransactionHash  string         `json:"transactionHash"`
	BlockNumber      *int           `json:"blockNumber"`
	VoterID          *int           `json:"voterId"`
	PollingStationID string         `json:"pollingStationId"`
	Metadata         map[string]any `json:"metadata"`
}

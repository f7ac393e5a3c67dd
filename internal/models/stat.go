package models

import "time"

type Stat struct {
	ID                    int       `json:"id"`
	Date                  time.Time `json:"date"`
	Hour                  int       `json:"hour"`
	VotersProcessed       int       `json:"votersProcessed"`
	AverageProcessingTime *int      `json:"averageProcessingTime"` // seconds
	WaitTime              *int      `json:"waitTime"`              // minutes
	Throughput            *int      `json:"throughput"`            // voters per hour
}

type InsertStat struct {
	Hour                  int  `json:"hour"`
	VotersProcessed       int  `json:"votersProcessed"`
	AverageProcessingTime *int `json:"averageProcessingTime"`
	WaitTime              *int `json:"waitTime"`
	Throughput            *int `json:"throughput"`
}

// StatsSummary aggregates today's hourly rows for the dashboard header.
type StatsSummary struct {
	TotalVotersProcessed int     `json:"totalVotersProcessed"`
	AvgProcessingTime    float64 `json:"avgProcessingTime"` // minutes, one decimal
	CurrentWaitTime      int     `json:"currentWaitTime"`
	CurrentThroughput    int     `json:"currentThroughput"`
	PeakHour             string  `json:"peakHour"`
	SpecialCases         int     `json:"specialCases"`
}

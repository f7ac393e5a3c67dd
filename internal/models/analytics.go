package models

import "time"

type PredictiveAnalytic struct {
	ID                   int       `json:"id"`
	Date                 time.Time `json:"date"`
	HourOfDay            int       `json:"hourOfDay"`
	DayOfWeek            int       `json:"dayOfWeek"`
	PredictedVoterVolume int       `json:"predictedVoterVolume"`
	ActualVoterVolume    *int      `json:"actualVoterVolume"`
	PredictedWaitTime    int       `json:"predictedWaitTime"` // minutes
	ActualWaitTime       *int      `json:"actualWaitTime"`    // minutes
	FactorsConsidered    []string  `json:"factorsConsidered"`
	AccuracyPercentage   *int      `json:"accuracyPercentage"`
	CreatedAt            time.Time `json:"createdAt"`
}

type InsertPredictiveAnalytic struct {
	HourOfDay            int      `json:"hourOfDay"`
	DayOfWeek            int      `json:"dayOfWeek"`
	PredictedVoterVolume int      `json:"predictedVoterVolume"`
	PredictedWaitTime    int      `json:"predictedWaitTime"`
	FactorsConsidered    []string `json:"factorsConsidered"`
}

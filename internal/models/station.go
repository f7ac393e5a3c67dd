package models

type Station struct {
	ID              int    `json:"id"`
	Number          int    `json:"number"`
	Status          string `json:"status"` // active, inactive
	OperatorID      *int   `json:"operatorId"`
	VotersProcessed int    `json:"votersProcessed"`
}

type InsertStation struct {
	Number     int    `json:"number"`
	Status     string `json:"status"`
	OperatorID *int   `json:"operatorId"`
}

// StationWithOperator joins the station with its operator (password
// stripped) for the station listing endpoint.
type StationWithOperator struct {
	Station
	Operator *UserResponse `json:"operator,omitempty"`
}

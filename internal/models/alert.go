package models

import "time"

type Alert struct {
	ID        int       `json:"id"`
	Type      string    `json:"type"` // warning, info, error
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

type InsertAlert struct {
	Type    string `json:"type"`
	Title   string `json:"title"`
	Message string `json:"message"`
}

type Message struct {
	ID        int       `json:"id"`
	Sender    string    `json:"sender"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

type InsertMessage struct {
	Sender  string `json:"sender"`
	Message string `json:"message"`
}

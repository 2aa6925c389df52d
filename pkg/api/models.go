package api

import (
	"time"

	"github.com/metrue/discussing/pkg/models"
)

type CommentsResponse struct {
	Comments []models.Comment `json:"comments"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

type LogEntry struct {
	Timestamp  time.Time `json:"timestamp"`
	IP         string    `json:"ip"`
	StatusCode int       `json:"status_code"`
	RequestID  string    `json:"request_id"`
	Method     string    `json:"method"`
	Path       string    `json:"path"`
	Duration   float64   `json:"duration_sec"`
	Bytes      int       `json:"bytes"`
	Service    string    `json:"service"`
}

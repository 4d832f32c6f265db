// internal/model/job.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// JobStatus represents the status of a print job.
type JobStatus string

const (
	JobStatusPending   JobStatus = "PENDING"
	JobStatusCompleted JobStatus = "COMPLETED"
	JobStatusFailed    JobStatus = "FAILED"
)

// PrintJob records one encode-and-transmit cycle. Jobs are not persisted;
// they exist for the response payload and the event stream.
type PrintJob struct {
	ID             uuid.UUID      `json:"id"`
	Protocol       Protocol       `json:"protocol"`
	Template       string         `json:"template,omitempty"`
	ConnectionType ConnectionType `json:"connection_type"`
	Status         JobStatus      `json:"status"`
	BytesWritten   int            `json:"bytes_written"`
	DurationMs     int64          `json:"duration_ms"`
	ErrorMessage   string         `json:"error_message,omitempty"`
	CreatedAt      time.Time      `json:"created_at"`
}

// IsCompleted checks if the job reached a terminal state.
func (j *PrintJob) IsCompleted() bool {
	return j.Status == JobStatusCompleted || j.Status == JobStatusFailed
}

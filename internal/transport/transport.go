// internal/transport/transport.go
package transport

import (
	"context"
	"errors"
	"time"

	"printer-service/internal/model"
)

// ErrConnection is the single failure kind of the I/O boundary. Every
// transport error wraps it; encoding itself never fails.
var ErrConnection = errors.New("printer connection failure")

// Connection carries finalized encoder output to a physical printer.
type Connection interface {
	// Connection lifecycle
	Open(ctx context.Context) error
	Close() error
	IsOpen() bool

	// Data communication. Write reports transmission acceptance, not
	// printer-side success.
	Write(ctx context.Context, data []byte) error
	Read(ctx context.Context, maxBytes int) ([]byte, error)

	// Transport information
	Type() model.ConnectionType

	// Health check
	Ping(ctx context.Context) error
}

// Stats provides transport-level statistics.
type Stats struct {
	BytesWritten   int64         `json:"bytes_written"`
	BytesRead      int64         `json:"bytes_read"`
	OperationCount int64         `json:"operation_count"`
	ErrorCount     int64         `json:"error_count"`
	LastActivity   time.Time     `json:"last_activity"`
	AverageLatency time.Duration `json:"average_latency"`
	IsConnected    bool          `json:"is_connected"`
}

func (s *Stats) recordWrite(n int, latency time.Duration) {
	s.BytesWritten += int64(n)
	s.OperationCount++
	s.LastActivity = time.Now()
	if s.AverageLatency == 0 {
		s.AverageLatency = latency
	} else {
		s.AverageLatency = (s.AverageLatency + latency) / 2
	}
}

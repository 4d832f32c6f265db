// internal/transport/tcp_connection.go
package transport

import (
	"context"
	"fmt"
	"net"
	"sync"
	"time"

	"go.uber.org/zap"

	"printer-service/internal/model"
)

const (
	tcpDialTimeout  = 10 * time.Second
	tcpWriteTimeout = 30 * time.Second
	tcpReadTimeout  = 5 * time.Second
)

// TCPConnection writes to a network printer, typically on raw port 9100.
type TCPConnection struct {
	config *model.TCPConfig
	conn   net.Conn
	logger *zap.Logger
	mutex  sync.Mutex
	isOpen bool
	stats  *Stats
}

// NewTCPConnection creates a TCP connection for the given address.
func NewTCPConnection(config *model.TCPConfig, logger *zap.Logger) Connection {
	return &TCPConnection{
		config: config,
		logger: logger.With(
			zap.String("transport", "tcp"),
			zap.String("host", config.Host),
			zap.Int("port", config.Port),
		),
		stats: &Stats{},
	}
}

// Open dials the printer.
func (tc *TCPConnection) Open(ctx context.Context) error {
	tc.mutex.Lock()
	defer tc.mutex.Unlock()

	if tc.isOpen {
		return nil
	}

	dialer := &net.Dialer{
		Timeout:   tcpDialTimeout,
		KeepAlive: 30 * time.Second,
	}

	address := net.JoinHostPort(tc.config.Host, fmt.Sprintf("%d", tc.config.Port))
	conn, err := dialer.DialContext(ctx, "tcp", address)
	if err != nil {
		tc.logger.Error("Failed to open TCP connection", zap.Error(err))
		return fmt.Errorf("%w: failed to connect to %s: %v", ErrConnection, address, err)
	}

	tc.conn = conn
	tc.isOpen = true
	tc.stats.IsConnected = true
	tc.stats.LastActivity = time.Now()

	tc.logger.Info("TCP connection opened", zap.String("address", address))
	return nil
}

// Close closes the TCP connection.
func (tc *TCPConnection) Close() error {
	tc.mutex.Lock()
	defer tc.mutex.Unlock()

	if !tc.isOpen || tc.conn == nil {
		return nil
	}

	if err := tc.conn.Close(); err != nil {
		tc.logger.Error("Failed to close TCP connection", zap.Error(err))
		return fmt.Errorf("%w: failed to close connection: %v", ErrConnection, err)
	}

	tc.conn = nil
	tc.isOpen = false
	tc.stats.IsConnected = false

	tc.logger.Info("TCP connection closed")
	return nil
}

// IsOpen returns whether the connection is open.
func (tc *TCPConnection) IsOpen() bool {
	tc.mutex.Lock()
	defer tc.mutex.Unlock()
	return tc.isOpen && tc.conn != nil
}

// Write sends finalized command bytes to the socket.
func (tc *TCPConnection) Write(ctx context.Context, data []byte) error {
	tc.mutex.Lock()
	defer tc.mutex.Unlock()

	if !tc.isOpen || tc.conn == nil {
		return fmt.Errorf("%w: TCP connection not open", ErrConnection)
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	if deadline, ok := ctx.Deadline(); ok {
		tc.conn.SetWriteDeadline(deadline)
	} else {
		tc.conn.SetWriteDeadline(time.Now().Add(tcpWriteTimeout))
	}

	startTime := time.Now()
	n, err := tc.conn.Write(data)
	if err != nil {
		tc.stats.ErrorCount++
		tc.logger.Error("TCP write failed", zap.Error(err))
		return fmt.Errorf("%w: tcp write: %v", ErrConnection, err)
	}
	if n != len(data) {
		tc.stats.ErrorCount++
		return fmt.Errorf("%w: incomplete write: wrote %d of %d bytes", ErrConnection, n, len(data))
	}

	tc.stats.recordWrite(n, time.Since(startTime))
	tc.logger.Debug("TCP write completed", zap.Int("bytes", n))
	return nil
}

// Read reads status bytes from the socket.
func (tc *TCPConnection) Read(ctx context.Context, maxBytes int) ([]byte, error) {
	tc.mutex.Lock()
	defer tc.mutex.Unlock()

	if !tc.isOpen || tc.conn == nil {
		return nil, fmt.Errorf("%w: TCP connection not open", ErrConnection)
	}

	if deadline, ok := ctx.Deadline(); ok {
		tc.conn.SetReadDeadline(deadline)
	} else {
		tc.conn.SetReadDeadline(time.Now().Add(tcpReadTimeout))
	}

	buffer := make([]byte, maxBytes)
	n, err := tc.conn.Read(buffer)
	if err != nil {
		tc.stats.ErrorCount++
		return nil, fmt.Errorf("%w: tcp read: %v", ErrConnection, err)
	}

	data := make([]byte, n)
	copy(data, buffer[:n])

	tc.stats.BytesRead += int64(n)
	tc.stats.OperationCount++
	tc.stats.LastActivity = time.Now()

	return data, nil
}

// Type returns the transport kind.
func (tc *TCPConnection) Type() model.ConnectionType {
	return model.ConnectionTypeTCP
}

// Ping sends a DLE EOT real-time status request.
func (tc *TCPConnection) Ping(ctx context.Context) error {
	if !tc.IsOpen() {
		return fmt.Errorf("%w: TCP connection not open", ErrConnection)
	}
	return tc.Write(ctx, []byte{0x10, 0x04, 0x01})
}

// internal/transport/serial_connection.go
package transport

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"go.bug.st/serial"
	"go.uber.org/zap"

	"printer-service/internal/model"
)

const serialReadTimeout = 5 * time.Second

// SerialConnection writes to a printer on an RS-232 port.
type SerialConnection struct {
	config *model.SerialConfig
	port   serial.Port
	logger *zap.Logger
	mutex  sync.Mutex
	isOpen bool
	stats  *Stats
}

// NewSerialConnection creates a serial connection for the given port.
func NewSerialConnection(config *model.SerialConfig, logger *zap.Logger) Connection {
	return &SerialConnection{
		config: config,
		logger: logger.With(
			zap.String("transport", "serial"),
			zap.String("port", config.Port),
		),
		stats: &Stats{},
	}
}

// Open opens the serial port with the configured line settings.
func (sc *SerialConnection) Open(ctx context.Context) error {
	sc.mutex.Lock()
	defer sc.mutex.Unlock()

	if sc.isOpen {
		return nil
	}

	mode := &serial.Mode{
		BaudRate: sc.config.BaudRate,
		DataBits: sc.config.DataBits,
		StopBits: serial.StopBits(sc.config.StopBits),
	}

	switch sc.config.Parity {
	case "odd":
		mode.Parity = serial.OddParity
	case "even":
		mode.Parity = serial.EvenParity
	default:
		mode.Parity = serial.NoParity
	}

	port, err := serial.Open(sc.config.Port, mode)
	if err != nil {
		sc.logger.Error("Failed to open serial port", zap.Error(err))
		return fmt.Errorf("%w: failed to open serial port %s: %v", ErrConnection, sc.config.Port, err)
	}

	if err := port.SetReadTimeout(serialReadTimeout); err != nil {
		port.Close()
		return fmt.Errorf("%w: failed to set read timeout: %v", ErrConnection, err)
	}

	sc.port = port
	sc.isOpen = true
	sc.stats.IsConnected = true
	sc.stats.LastActivity = time.Now()

	sc.logger.Info("Serial port opened", zap.Int("baud_rate", sc.config.BaudRate))
	return nil
}

// Close closes the serial port.
func (sc *SerialConnection) Close() error {
	sc.mutex.Lock()
	defer sc.mutex.Unlock()

	if !sc.isOpen || sc.port == nil {
		return nil
	}

	if err := sc.port.Close(); err != nil {
		sc.logger.Error("Failed to close serial port", zap.Error(err))
		return fmt.Errorf("%w: failed to close serial port: %v", ErrConnection, err)
	}

	sc.port = nil
	sc.isOpen = false
	sc.stats.IsConnected = false

	sc.logger.Info("Serial port closed")
	return nil
}

// IsOpen returns whether the connection is open.
func (sc *SerialConnection) IsOpen() bool {
	sc.mutex.Lock()
	defer sc.mutex.Unlock()
	return sc.isOpen && sc.port != nil
}

// Write sends finalized command bytes to the port.
func (sc *SerialConnection) Write(ctx context.Context, data []byte) error {
	sc.mutex.Lock()
	defer sc.mutex.Unlock()

	if !sc.isOpen || sc.port == nil {
		return fmt.Errorf("%w: serial port not open", ErrConnection)
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	startTime := time.Now()
	n, err := sc.port.Write(data)
	if err != nil {
		sc.stats.ErrorCount++
		sc.logger.Error("Serial write failed", zap.Error(err))
		return fmt.Errorf("%w: serial write: %v", ErrConnection, err)
	}
	if n != len(data) {
		sc.stats.ErrorCount++
		return fmt.Errorf("%w: incomplete write: wrote %d of %d bytes", ErrConnection, n, len(data))
	}

	sc.stats.recordWrite(n, time.Since(startTime))
	sc.logger.Debug("Serial write completed", zap.Int("bytes", n))
	return nil
}

// Read reads status bytes from the port.
func (sc *SerialConnection) Read(ctx context.Context, maxBytes int) ([]byte, error) {
	sc.mutex.Lock()
	defer sc.mutex.Unlock()

	if !sc.isOpen || sc.port == nil {
		return nil, fmt.Errorf("%w: serial port not open", ErrConnection)
	}

	buffer := make([]byte, maxBytes)

	type readResult struct {
		data []byte
		err  error
	}
	done := make(chan readResult, 1)

	go func() {
		n, err := sc.port.Read(buffer)
		if err != nil && err != io.EOF {
			done <- readResult{err: fmt.Errorf("%w: serial read: %v", ErrConnection, err)}
			return
		}
		data := make([]byte, n)
		copy(data, buffer[:n])
		done <- readResult{data: data}
	}()

	select {
	case result := <-done:
		if result.err != nil {
			sc.stats.ErrorCount++
			return nil, result.err
		}
		sc.stats.BytesRead += int64(len(result.data))
		sc.stats.OperationCount++
		sc.stats.LastActivity = time.Now()
		return result.data, nil

	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Type returns the transport kind.
func (sc *SerialConnection) Type() model.ConnectionType {
	return model.ConnectionTypeSerial
}

// Ping sends a DLE EOT real-time status request.
func (sc *SerialConnection) Ping(ctx context.Context) error {
	if !sc.IsOpen() {
		return fmt.Errorf("%w: serial port not open", ErrConnection)
	}
	return sc.Write(ctx, []byte{0x10, 0x04, 0x01})
}

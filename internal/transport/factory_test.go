package transport

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"printer-service/internal/model"
)

func TestCreateRejectsUnknownConnectionType(t *testing.T) {
	_, err := Create("BLUETOOTH", map[string]interface{}{}, zap.NewNop())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported connection type")
}

func TestCreateTCPRequiresHost(t *testing.T) {
	_, err := Create(model.ConnectionTypeTCP, map[string]interface{}{}, zap.NewNop())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "host is required")
}

func TestCreateTCPDefaultsToRawPort(t *testing.T) {
	conn, err := Create(model.ConnectionTypeTCP, map[string]interface{}{
		"host": "192.168.1.50",
	}, zap.NewNop())
	require.NoError(t, err)

	assert.Equal(t, model.ConnectionTypeTCP, conn.Type())
	assert.False(t, conn.IsOpen())

	tcp, ok := conn.(*TCPConnection)
	require.True(t, ok)
	assert.Equal(t, 9100, tcp.config.Port)
}

func TestCreateTCPAcceptsJSONNumbers(t *testing.T) {
	// encoding/json delivers numbers as float64.
	conn, err := Create(model.ConnectionTypeTCP, map[string]interface{}{
		"host": "192.168.1.50",
		"port": float64(6101),
	}, zap.NewNop())
	require.NoError(t, err)

	tcp := conn.(*TCPConnection)
	assert.Equal(t, 6101, tcp.config.Port)
}

func TestCreateTCPRejectsInvalidPort(t *testing.T) {
	_, err := Create(model.ConnectionTypeTCP, map[string]interface{}{
		"host": "192.168.1.50",
		"port": 70000,
	}, zap.NewNop())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid port number")
}

func TestCreateUSBRequiresIDs(t *testing.T) {
	_, err := Create(model.ConnectionTypeUSB, map[string]interface{}{
		"vendor_id": "0x04b8",
	}, zap.NewNop())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "product_id is required")
}

func TestCreateUSBDefaults(t *testing.T) {
	conn, err := Create(model.ConnectionTypeUSB, map[string]interface{}{
		"vendor_id":  "0x04b8",
		"product_id": "0x0202",
	}, zap.NewNop())
	require.NoError(t, err)

	assert.Equal(t, model.ConnectionTypeUSB, conn.Type())
	usb := conn.(*USBConnection)
	assert.Equal(t, 1, usb.config.Endpoint)
}

func TestCreateSerialRequiresPort(t *testing.T) {
	_, err := Create(model.ConnectionTypeSerial, map[string]interface{}{}, zap.NewNop())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "port is required")
}

func TestCreateSerialDefaults(t *testing.T) {
	conn, err := Create(model.ConnectionTypeSerial, map[string]interface{}{
		"port": "/dev/ttyUSB0",
	}, zap.NewNop())
	require.NoError(t, err)

	serial := conn.(*SerialConnection)
	assert.Equal(t, 9600, serial.config.BaudRate)
	assert.Equal(t, 8, serial.config.DataBits)
	assert.Equal(t, 1, serial.config.StopBits)
	assert.Equal(t, "none", serial.config.Parity)
}

func TestParseHexID(t *testing.T) {
	id, err := parseHexID("0x04b8")
	require.NoError(t, err)
	assert.Equal(t, uint16(0x04b8), uint16(id))

	id, err = parseHexID("04b8")
	require.NoError(t, err)
	assert.Equal(t, uint16(0x04b8), uint16(id))

	_, err = parseHexID("zz")
	assert.Error(t, err)
}

func TestWriteOnClosedConnectionsFails(t *testing.T) {
	tcp := NewTCPConnection(&model.TCPConfig{Host: "localhost", Port: 9100}, zap.NewNop())
	err := tcp.Write(t.Context(), []byte{0x1B, 0x40})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConnection)
}

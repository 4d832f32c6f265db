package transport

import (
	"io"
	"net"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"printer-service/internal/model"
)

// startSink accepts one connection and returns everything written to it.
func startSink(t *testing.T) (host string, port int, received <-chan []byte) {
	t.Helper()

	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	t.Cleanup(func() { listener.Close() })

	out := make(chan []byte, 1)
	go func() {
		conn, err := listener.Accept()
		if err != nil {
			out <- nil
			return
		}
		defer conn.Close()
		data, _ := io.ReadAll(conn)
		out <- data
	}()

	hostStr, portStr, err := net.SplitHostPort(listener.Addr().String())
	require.NoError(t, err)
	portNum, err := strconv.Atoi(portStr)
	require.NoError(t, err)

	return hostStr, portNum, out
}

func TestTCPConnectionRoundTrip(t *testing.T) {
	host, port, received := startSink(t)

	conn := NewTCPConnection(&model.TCPConfig{Host: host, Port: port}, zap.NewNop())
	ctx := t.Context()

	require.NoError(t, conn.Open(ctx))
	assert.True(t, conn.IsOpen())

	payload := []byte{0x1B, 0x40, 'h', 'i', 0x1D, 0x56, 0x00}
	require.NoError(t, conn.Write(ctx, payload))
	require.NoError(t, conn.Close())
	assert.False(t, conn.IsOpen())

	assert.Equal(t, payload, <-received)
}

func TestTCPConnectionOpenIsIdempotent(t *testing.T) {
	host, port, _ := startSink(t)

	conn := NewTCPConnection(&model.TCPConfig{Host: host, Port: port}, zap.NewNop())
	ctx := t.Context()

	require.NoError(t, conn.Open(ctx))
	require.NoError(t, conn.Open(ctx))
	require.NoError(t, conn.Close())
	require.NoError(t, conn.Close())
}

func TestTCPConnectionOpenFailsOnRefusedPort(t *testing.T) {
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := listener.Addr().String()
	listener.Close()

	hostStr, portStr, err := net.SplitHostPort(addr)
	require.NoError(t, err)
	portNum, _ := strconv.Atoi(portStr)

	conn := NewTCPConnection(&model.TCPConfig{Host: hostStr, Port: portNum}, zap.NewNop())
	err = conn.Open(t.Context())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConnection)
}

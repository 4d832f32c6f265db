package command

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBufferPreservesAppendOrder(t *testing.T) {
	buf := NewBuffer()
	buf.Append([]byte{0x1B, 0x40})
	buf.AppendString("hello")
	buf.Append([]byte{0x0A})

	assert.Equal(t, []byte("\x1b@hello\n"), buf.Bytes())
}

func TestBufferFinalizeIsIdempotent(t *testing.T) {
	buf := NewBuffer()
	buf.AppendString("abc")

	first := buf.Bytes()
	second := buf.Bytes()

	assert.Equal(t, first, second)

	// Finalizing must not disturb later appends.
	buf.AppendString("def")
	assert.Equal(t, []byte("abcdef"), buf.Bytes())
}

func TestBufferClearYieldsEmptyOutput(t *testing.T) {
	buf := NewBuffer()
	buf.AppendString("abc")
	buf.Clear()

	assert.Empty(t, buf.Bytes())
	assert.Zero(t, buf.Len())
}

func TestBufferAppendCopiesInput(t *testing.T) {
	data := []byte{1, 2, 3}
	buf := NewBuffer()
	buf.Append(data)

	data[0] = 9

	assert.Equal(t, []byte{1, 2, 3}, buf.Bytes())
}

func TestTerminatedBufferTerminatesEveryToken(t *testing.T) {
	buf := NewTerminatedBuffer("\r\n")
	buf.AppendString("SIZE 100 mm,50 mm")
	buf.AppendString("CLS")

	assert.Equal(t, "SIZE 100 mm,50 mm\r\nCLS\r\n", buf.String())
}

func TestTerminatedBufferEmptyYieldsEmptyOutput(t *testing.T) {
	buf := NewTerminatedBuffer("\r\n")
	assert.Empty(t, buf.Bytes())
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 5, Clamp(5, 0, 10))
	assert.Equal(t, 0, Clamp(-3, 0, 10))
	assert.Equal(t, 10, Clamp(42, 0, 10))
}

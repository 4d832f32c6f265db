package tspl

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMmToDots(t *testing.T) {
	assert.Equal(t, 203, MmToDots(25.4, 203))
	// 101.5 rounds half away from zero.
	assert.Equal(t, 102, MmToDots(12.7, 203))
	assert.Equal(t, 0, MmToDots(0, 203))
}

func TestEveryStatementIsTerminated(t *testing.T) {
	out := NewEncoder().
		Size(100, 50).
		Gap(2, 0).
		Cls().
		String()

	assert.Equal(t, "SIZE 100 mm,50 mm\r\nGAP 2 mm,0 mm\r\nCLS\r\n", out)
}

func TestClearThenFinalizeYieldsEmptyOutput(t *testing.T) {
	e := NewEncoder().Size(100, 50)
	e.Clear()
	assert.Empty(t, e.Bytes())
}

func TestFinalizeIsIdempotent(t *testing.T) {
	e := NewEncoder().Cls()
	assert.Equal(t, e.String(), e.String())
}

func TestSizeRendersFractionalMillimeters(t *testing.T) {
	out := NewEncoder().Size(57.5, 32).String()
	assert.Equal(t, "SIZE 57.5 mm,32 mm\r\n", out)
}

func TestSpeedClampsHigh(t *testing.T) {
	out := NewEncoder().Speed(99).String()
	assert.Equal(t, "SPEED 10\r\n", out)
}

func TestDensityClamps(t *testing.T) {
	assert.Equal(t, "DENSITY 15\r\n", NewEncoder().Density(99).String())
	assert.Equal(t, "DENSITY 0\r\n", NewEncoder().Density(-3).String())
}

func TestTextStatement(t *testing.T) {
	out := NewEncoder().Text(10, 20, "3", 0, 1, 1, "Hello").String()
	assert.Equal(t, "TEXT 10,20,\"3\",0,1,1,\"Hello\"\r\n", out)
}

func TestBoxTranslatesWidthHeightToEndCorner(t *testing.T) {
	out := NewEncoder().Box(10, 20, 100, 50, 2).String()
	assert.Equal(t, "BOX 10,20,110,70,2\r\n", out)
}

func TestBarcode128Defaults(t *testing.T) {
	out := NewEncoder().Barcode128(16, 120, 64, "SKU-1").String()
	assert.Equal(t, "BARCODE 16,120,\"128\",64,1,0,2,2,\"SKU-1\"\r\n", out)
}

func TestQRCodeFallsBackToLowestCorrection(t *testing.T) {
	out := NewEncoder().QRCode(0, 0, "X", 4, "Z", 0, "data").String()
	assert.True(t, strings.HasPrefix(out, "QRCODE 0,0,L,4,A,0,"))
}

func TestVerticalAndHorizontalLinesSwapDimensions(t *testing.T) {
	horizontal := NewEncoder().HorizontalLine(0, 0, 100, 2).String()
	vertical := NewEncoder().VerticalLine(0, 0, 100, 2).String()

	assert.Equal(t, "BAR 0,0,100,2\r\n", horizontal)
	assert.Equal(t, "BAR 0,0,2,100\r\n", vertical)
}

func TestPrintFloorsCounts(t *testing.T) {
	out := NewEncoder().Print(0, -1).String()
	assert.Equal(t, "PRINT 1,1\r\n", out)
}

func TestRawStatementPassthrough(t *testing.T) {
	out := NewEncoder().Raw("SELFTEST").String()
	assert.Equal(t, "SELFTEST\r\n", out)
}

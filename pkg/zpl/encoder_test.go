package zpl

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatBracketing(t *testing.T) {
	out := NewEncoder().StartFormat().EndFormat().String()
	assert.Equal(t, "^XA^XZ", out)
}

func TestClearThenFinalizeYieldsEmptyOutput(t *testing.T) {
	e := NewEncoder().StartFormat()
	e.Clear()
	assert.Empty(t, e.Bytes())
}

func TestFinalizeIsIdempotent(t *testing.T) {
	e := NewEncoder().StartFormat().LabelWidth(812)
	assert.Equal(t, e.String(), e.String())
}

func TestMediaDarknessClampsAndZeroPads(t *testing.T) {
	assert.Equal(t, "^MD00", NewEncoder().MediaDarkness(-5).String())
	assert.Equal(t, "^MD30", NewEncoder().MediaDarkness(99).String())
	assert.Equal(t, "^MD07", NewEncoder().MediaDarkness(7).String())
}

func TestPrintSpeedClamps(t *testing.T) {
	assert.Equal(t, "^PR14", NewEncoder().PrintSpeed(50).String())
	assert.Equal(t, "^PR1", NewEncoder().PrintSpeed(0).String())
}

func TestTextEmitsOriginFontData(t *testing.T) {
	out := NewEncoder().Text(30, 40, "0", 28, "HELLO", 28).String()
	assert.Equal(t, "^FO30,40^A0N,28,28^FDHELLO^FS", out)
}

func TestRotatedTextFoldsRotationIntoFont(t *testing.T) {
	out := NewEncoder().RotatedText(30, 40, "0", 28, OrientRotated, "UP", 28).String()
	assert.Equal(t, "^FO30,40^A0R,28,28^FDUP^FS", out)
}

func TestRotatedTextRejectsUnknownOrientation(t *testing.T) {
	out := NewEncoder().RotatedText(0, 0, "0", 28, "X", "A", 28).String()
	assert.Contains(t, out, "^A0N,28,28")
}

func TestTextBlockSitsBetweenFontAndData(t *testing.T) {
	out := NewEncoder().TextBlock(10, 10, "0", 24, 400, 3, 0, AlignCenter, "wrapped").String()
	assert.Equal(t, "^FO10,10^A0N,24,24^FB400,3,0,C^FDwrapped^FS", out)
}

func TestTextBlockFallsBackToLeftAlignment(t *testing.T) {
	out := NewEncoder().TextBlock(0, 0, "0", 24, 400, 3, 0, "Q", "x").String()
	assert.Contains(t, out, "^FB400,3,0,L")
}

func TestQRCodeCarriesCorrectionPrefixInFieldData(t *testing.T) {
	out := NewEncoder().QRCode(50, 50, "tracking", 5, "H").String()
	assert.Equal(t, "^FO50,50^BQN,2,5^FDHA,tracking^FS", out)
}

func TestQRCodeFallsBackToMediumCorrection(t *testing.T) {
	out := NewEncoder().QRCode(0, 0, "x", 5, "Z").String()
	assert.Contains(t, out, "^FDMA,x^FS")
}

func TestQRCodeClampsMagnification(t *testing.T) {
	out := NewEncoder().QRCode(0, 0, "x", 99, "M").String()
	assert.Contains(t, out, "^BQN,2,10")
}

func TestGraphicBoxClampsRounding(t *testing.T) {
	out := NewEncoder().GraphicBox(0, 0, 100, 50, 2, ColorBlack, 99).String()
	assert.Equal(t, "^FO0,0^GB100,50,2,B,8^FS", out)
}

func TestLinesDeriveFromGraphicBox(t *testing.T) {
	horizontal := NewEncoder().HorizontalLine(30, 220, 540, 12).String()
	vertical := NewEncoder().VerticalLine(30, 220, 540, 12).String()

	assert.Equal(t, "^FO30,220^GB540,12,12,B,0^FS", horizontal)
	assert.Equal(t, "^FO30,220^GB12,540,12,B,0^FS", vertical)
}

func TestBarcode128(t *testing.T) {
	out := NewEncoder().Barcode128(30, 600, "1Z999", 140).String()
	assert.Equal(t, "^FO30,600^BCN,140,Y,N,N^FD1Z999^FS", out)
}

func TestPrintQuantityFloorsAtOne(t *testing.T) {
	out := NewEncoder().PrintQuantity(0, 0, 0).String()
	assert.Equal(t, "^PQ1,0,0,N", out)
}

func TestCommentIsClosedField(t *testing.T) {
	out := NewEncoder().Comment("note").String()
	assert.Equal(t, "^FXnote^FS", out)
}

func TestFullLabelOrderFollowsCallOrder(t *testing.T) {
	out := NewEncoder().
		StartFormat().
		LabelWidth(812).
		Text(10, 10, "0", 24, "A", 24).
		Text(10, 40, "0", 24, "B", 24).
		EndFormat().
		String()

	assert.True(t, strings.HasPrefix(out, "^XA^PW812"))
	assert.True(t, strings.HasSuffix(out, "^XZ"))
	assert.Less(t, strings.Index(out, "^FDA^FS"), strings.Index(out, "^FDB^FS"))
}

// pkg/zpl/encoder.go
package zpl

import (
	"fmt"

	"printer-service/pkg/command"
)

// Field orientations: normal, rotated 90, inverted 180, bottom-up 270.
const (
	OrientNormal   = "N"
	OrientRotated  = "R"
	OrientInverted = "I"
	OrientBottomUp = "B"
)

// Media types for MediaType.
const (
	MediaThermalTransfer = "T"
	MediaDirectThermal   = "D"
)

// Colors for GraphicBox.
const (
	ColorBlack = "B"
	ColorWhite = "W"
)

// Text block alignments.
const (
	AlignLeft      = "L"
	AlignCenter    = "C"
	AlignRight     = "R"
	AlignJustified = "J"
)

// Encoder builds ZPL field statements for industrial label printers. A well
// formed label brackets everything between StartFormat and EndFormat; the
// encoder does not enforce the bracketing, or that every field origin and
// font selection is closed by FieldData. Operations never fail and clamp
// out-of-range numerics.
type Encoder struct {
	buf *command.Buffer
}

// NewEncoder creates an empty ZPL encoder.
func NewEncoder() *Encoder {
	return &Encoder{buf: command.NewBuffer()}
}

func (e *Encoder) emit(format string, args ...interface{}) *Encoder {
	e.buf.AppendString(fmt.Sprintf(format, args...))
	return e
}

// StartFormat opens a label format.
func (e *Encoder) StartFormat() *Encoder {
	e.buf.AppendString("^XA")
	return e
}

// EndFormat closes a label format.
func (e *Encoder) EndFormat() *Encoder {
	e.buf.AppendString("^XZ")
	return e
}

// LabelHome sets the label home position in dots.
func (e *Encoder) LabelHome(x, y int) *Encoder {
	return e.emit("^LH%d,%d", x, y)
}

// LabelWidth sets the print width in dots.
func (e *Encoder) LabelWidth(w int) *Encoder {
	return e.emit("^PW%d", w)
}

// LabelLength sets the label length in dots.
func (e *Encoder) LabelLength(h int) *Encoder {
	return e.emit("^LL%d", h)
}

// MediaType selects thermal transfer (T) or direct thermal (D) media;
// unrecognized selectors fall back to thermal transfer.
func (e *Encoder) MediaType(t string) *Encoder {
	if t != MediaDirectThermal {
		t = MediaThermalTransfer
	}
	return e.emit("^MT%s", t)
}

// PrintSpeed sets the print speed in inches per second, clamped to 1-14.
func (e *Encoder) PrintSpeed(s int) *Encoder {
	return e.emit("^PR%d", command.Clamp(s, 1, 14))
}

// MediaDarkness sets the darkness, clamped to 0-30 and rendered as a
// two-digit zero-padded decimal.
func (e *Encoder) MediaDarkness(d int) *Encoder {
	return e.emit("^MD%02d", command.Clamp(d, 0, 30))
}

// PrintQuantity sets the total quantity, the pause interval and the number
// of replicates per serial number.
func (e *Encoder) PrintQuantity(qty, pause, replicates int) *Encoder {
	if qty < 1 {
		qty = 1
	}
	return e.emit("^PQ%d,%d,%d,N", qty, pause, replicates)
}

// FieldOrigin positions the next data-bearing statement. Fields are
// origin-then-content pairs; emit the origin immediately before the
// matching data statement.
func (e *Encoder) FieldOrigin(x, y int) *Encoder {
	return e.emit("^FO%d,%d", x, y)
}

// Font selects a bitmap font by letter with the given cell height and
// width, in normal orientation.
func (e *Encoder) Font(font string, height, width int) *Encoder {
	return e.emit("^A%s%s,%d,%d", font, OrientNormal, height, width)
}

// fontOriented selects a font with an explicit orientation letter.
func (e *Encoder) fontOriented(font, orientation string, height, width int) *Encoder {
	return e.emit("^A%s%s,%d,%d", font, fieldOrientation(orientation), height, width)
}

// ScalableFont selects a downloaded scalable font by name.
func (e *Encoder) ScalableFont(font string, height, width int) *Encoder {
	return e.emit("^A@%s,%d,%d,%s", OrientNormal, height, width, font)
}

// FieldOrientation sets the default orientation for following fields;
// rotation is N, R, I or B for 0/90/180/270 degrees.
func (e *Encoder) FieldOrientation(rotation string) *Encoder {
	return e.emit("^FW%s", fieldOrientation(rotation))
}

func fieldOrientation(rotation string) string {
	switch rotation {
	case OrientRotated, OrientInverted, OrientBottomUp:
		return rotation
	default:
		return OrientNormal
	}
}

// FieldData closes the current field with its content and the field
// separator. Every origin plus style sequence must be closed by exactly one
// FieldData call.
func (e *Encoder) FieldData(content string) *Encoder {
	return e.emit("^FD%s^FS", content)
}

// Text places a single text field: origin, font, data in that order.
func (e *Encoder) Text(x, y int, font string, height int, content string, width int) *Encoder {
	return e.FieldOrigin(x, y).Font(font, height, width).FieldData(content)
}

// RotatedText places a text field with the rotation letter folded into the
// font selection, keeping the origin-font-data ordering.
func (e *Encoder) RotatedText(x, y int, font string, height int, rotation, content string, width int) *Encoder {
	return e.FieldOrigin(x, y).fontOriented(font, rotation, height, width).FieldData(content)
}

// TextBlock places an auto-wrapped text field. The block directive sits
// between font selection and data: maximum width in dots, maximum line
// count, additional line spacing and alignment (L/C/R/J).
func (e *Encoder) TextBlock(x, y int, font string, height, maxWidth, maxLines, lineSpacing int, align, content string) *Encoder {
	switch align {
	case AlignLeft, AlignCenter, AlignRight, AlignJustified:
	default:
		align = AlignLeft
	}
	e.FieldOrigin(x, y).Font(font, height, height)
	e.emit("^FB%d,%d,%d,%s", maxWidth, maxLines, lineSpacing, align)
	return e.FieldData(content)
}

// GraphicBox draws a rectangle, or a line when one dimension equals the
// border thickness. Rounding is clamped to 0-8.
func (e *Encoder) GraphicBox(x, y, width, height, thickness int, color string, rounding int) *Encoder {
	if color != ColorWhite {
		color = ColorBlack
	}
	e.FieldOrigin(x, y)
	return e.emit("^GB%d,%d,%d,%s,%d^FS",
		width, height, thickness, color, command.Clamp(rounding, 0, 8))
}

// HorizontalLine draws a horizontal rule of the given length and thickness.
func (e *Encoder) HorizontalLine(x, y, length, thickness int) *Encoder {
	return e.GraphicBox(x, y, length, thickness, thickness, ColorBlack, 0)
}

// VerticalLine draws a vertical rule of the given length and thickness.
func (e *Encoder) VerticalLine(x, y, length, thickness int) *Encoder {
	return e.GraphicBox(x, y, thickness, length, thickness, ColorBlack, 0)
}

// Barcode128 places a Code128 barcode with interpretation line below.
func (e *Encoder) Barcode128(x, y int, data string, height int) *Encoder {
	e.FieldOrigin(x, y)
	e.emit("^BC%s,%d,Y,N,N", OrientNormal, height)
	return e.FieldData(data)
}

// Barcode39 places a Code39 barcode with interpretation line below.
func (e *Encoder) Barcode39(x, y int, data string, height int) *Encoder {
	e.FieldOrigin(x, y)
	e.emit("^B3%s,N,%d,Y,N", OrientNormal, height)
	return e.FieldData(data)
}

// BarcodeEAN13 places an EAN-13 barcode with interpretation line below.
func (e *Encoder) BarcodeEAN13(x, y int, data string, height int) *Encoder {
	e.FieldOrigin(x, y)
	e.emit("^BE%s,%d,Y,N", OrientNormal, height)
	return e.FieldData(data)
}

// QRCode places a QR symbol. errorCorrection is H, Q, M or L (falling back
// to M) and rides inside the field data as a one-letter prefix ahead of the
// payload; size is the magnification, clamped to 1-10.
func (e *Encoder) QRCode(x, y int, data string, size int, errorCorrection string) *Encoder {
	switch errorCorrection {
	case "H", "Q", "M", "L":
	default:
		errorCorrection = "M"
	}
	e.FieldOrigin(x, y)
	e.emit("^BQ%s,2,%d", OrientNormal, command.Clamp(size, 1, 10))
	return e.FieldData(errorCorrection + "A," + data)
}

// DataMatrix places a Data Matrix symbol with the given module size.
func (e *Encoder) DataMatrix(x, y int, data string, size int) *Encoder {
	e.FieldOrigin(x, y)
	e.emit("^BX%s,%d,200", OrientNormal, size)
	return e.FieldData(data)
}

// FieldReversePrint toggles reverse video for the next field.
func (e *Encoder) FieldReversePrint() *Encoder {
	e.buf.AppendString("^FR")
	return e
}

// Comment emits a non-printing annotation field.
func (e *Encoder) Comment(text string) *Encoder {
	return e.emit("^FX%s^FS", text)
}

// String finalizes the accumulated statements by direct concatenation.
func (e *Encoder) String() string {
	return e.buf.String()
}

// Bytes finalizes the accumulated statements as raw bytes.
func (e *Encoder) Bytes() []byte {
	return e.buf.Bytes()
}

// Clear empties the buffer; the encoder remains usable.
func (e *Encoder) Clear() *Encoder {
	e.buf.Clear()
	return e
}
